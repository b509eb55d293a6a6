package queries

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/guard"
)

var ErrListPendingOrdersQueryIsNotConstructed = errors.New(
	"ListPendingOrdersQuery must be created via NewListPendingOrdersQuery constructor",
)

// ListPendingOrdersQuery retrieves the dispatch backlog: every order still
// waiting for a vehicle.
type ListPendingOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewListPendingOrdersQuery creates a query to retrieve pending orders.
func NewListPendingOrdersQuery() ListPendingOrdersQuery {
	return ListPendingOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListPendingOrdersQueryIsNotConstructed)
}

// ListPendingOrdersQueryResponse represents one order awaiting assignment.
type ListPendingOrdersQueryResponse struct {
	ID          kernel.OrderID
	Destination string
	CargoWeight int
	CargoVolume int
}
