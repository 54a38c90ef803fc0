package queries

import (
	"errors"

	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/pkg/guard"
)

var ErrGetOrdersByOwnerQueryIsNotConstructed = errors.New(
	"GetOrdersByOwnerQuery must be created via NewGetOrdersByOwnerQuery constructor",
)

// GetOrdersByOwnerQuery retrieves a customer's own orders, newest first.
type GetOrdersByOwnerQuery struct { //nolint:recvcheck //using for validation
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersByOwnerQuery creates a query scoped to one customer.
func NewGetOrdersByOwnerQuery(ownerID kernel.UUID) (GetOrdersByOwnerQuery, error) {
	query := GetOrdersByOwnerQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOwnerID(ownerID); err != nil {
		return GetOrdersByOwnerQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByOwnerQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByOwnerQueryIsNotConstructed)
}

// OwnerID returns the customer whose orders are listed.
func (q GetOrdersByOwnerQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

func (q *GetOrdersByOwnerQuery) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	q.ownerID = ownerID
	return nil
}
