package services

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/vehicle"
)

// ErrVehicleNotFound is returned when no idle vehicle can take the order:
// either none were provided or none has sufficient capacity.
var ErrVehicleNotFound = errors.New("vehicle not found")

// VehicleDispatcher selects the best vehicle for a pending order from a set of
// candidates. Used by the automatic dispatch job; manual assignment names its
// vehicle explicitly and goes through OrderAssignment directly.
//
// Selection rule: among Idle vehicles whose capacity fits the cargo, pick the
// one with the smallest capacity headroom (weight headroom first, volume as the
// tie-breaker), so large vehicles stay free for large loads.
type VehicleDispatcher struct{}

// NewVehicleDispatcher creates a new VehicleDispatcher service.
func NewVehicleDispatcher() VehicleDispatcher {
	return VehicleDispatcher{}
}

// Dispatch returns the best-fit vehicle for the order without mutating anything.
// Returns ErrVehicleNotFound when no candidate qualifies.
func (VehicleDispatcher) Dispatch(o *order.Order, vehicles []*vehicle.Vehicle) (*vehicle.Vehicle, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := o.ValidateAssign(); err != nil {
		return nil, err
	}

	var best *vehicle.Vehicle
	bestWeight, bestVolume := 0, 0

	for _, v := range vehicles {
		if err := v.Validate(); err != nil {
			return nil, err
		}
		if v.Status() != vehicle.Idle {
			continue
		}
		if !v.Capacity().Fits(o.Cargo()) {
			continue
		}

		weightHeadroom := v.Capacity().MaxWeight() - o.Cargo().Weight()
		volumeHeadroom := v.Capacity().MaxVolume() - o.Cargo().Volume()

		if best == nil ||
			weightHeadroom < bestWeight ||
			(weightHeadroom == bestWeight && volumeHeadroom < bestVolume) {
			best = v
			bestWeight = weightHeadroom
			bestVolume = volumeHeadroom
		}
	}

	if best == nil {
		return nil, ErrVehicleNotFound
	}

	return best, nil
}
