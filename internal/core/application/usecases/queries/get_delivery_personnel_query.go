package queries

import (
	"errors"

	"gasdelivery/internal/pkg/guard"
)

var ErrGetDeliveryPersonnelQueryIsNotConstructed = errors.New(
	"GetDeliveryPersonnelQuery must be created via NewGetDeliveryPersonnelQuery constructor",
)

// GetDeliveryPersonnelQuery lists actors with the delivery role, the pool an
// admin picks an assignee from.
type GetDeliveryPersonnelQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDeliveryPersonnelQuery creates a parameterless personnel query.
func NewGetDeliveryPersonnelQuery() GetDeliveryPersonnelQuery {
	return GetDeliveryPersonnelQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryPersonnelQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryPersonnelQueryIsNotConstructed)
}
