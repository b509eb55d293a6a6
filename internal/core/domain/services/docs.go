// Package services contains stateless domain services that coordinate multiple
// aggregates: OrderAssignment applies the assignment precondition chain across
// order, vehicle, and driver, and VehicleDispatcher selects a best-fit vehicle
// for automatic dispatch.
package services
