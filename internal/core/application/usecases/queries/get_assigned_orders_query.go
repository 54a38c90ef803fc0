package queries

import (
	"errors"

	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/pkg/guard"
)

var ErrGetAssignedOrdersQueryIsNotConstructed = errors.New(
	"GetAssignedOrdersQuery must be created via NewGetAssignedOrdersQuery constructor",
)

// GetAssignedOrdersQuery retrieves the orders assigned to one delivery
// person, newest first.
type GetAssignedOrdersQuery struct { //nolint:recvcheck //using for validation
	assigneeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAssignedOrdersQuery creates a query scoped to one delivery person.
func NewGetAssignedOrdersQuery(assigneeID kernel.UUID) (GetAssignedOrdersQuery, error) {
	query := GetAssignedOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setAssigneeID(assigneeID); err != nil {
		return GetAssignedOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAssignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignedOrdersQueryIsNotConstructed)
}

// AssigneeID returns the delivery person whose assignments are listed.
func (q GetAssignedOrdersQuery) AssigneeID() kernel.UUID {
	return q.assigneeID
}

func (q *GetAssignedOrdersQuery) setAssigneeID(assigneeID kernel.UUID) error {
	if err := assigneeID.Validate(); err != nil {
		return err
	}

	q.assigneeID = assigneeID
	return nil
}
