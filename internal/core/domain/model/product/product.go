// Package product defines the cylinder catalog: the closed set of LPG SKUs a
// customer may order and their unit prices. Prices are static configuration;
// an order never stores a price, it is always derived from the catalog.
package product

import (
	"fmt"

	"gasdelivery/internal/pkg/errs"
)

// Kind identifies an LPG cylinder SKU from the catalog.
type Kind string

const (
	// Kind6KG is the small household cylinder.
	Kind6KG Kind = "6kg"
	// Kind12KG is the medium household cylinder.
	Kind12KG Kind = "12kg"
	// Kind25KG is the large commercial cylinder.
	Kind25KG Kind = "25kg"
)

// KindFromString parses a catalog kind from client input.
// Returns a value-is-invalid error for anything outside the catalog.
func KindFromString(s string) (Kind, error) {
	kind := Kind(s)
	if err := kind.Validate(); err != nil {
		return "", err
	}
	return kind, nil
}

// Validate checks that the kind belongs to the catalog.
func (k Kind) Validate() error {
	switch k {
	case Kind6KG, Kind12KG, Kind25KG:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("product kind",
			fmt.Errorf("%q is not a catalog SKU", string(k)))
	}
}

// String returns the wire representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// Catalog maps cylinder kinds to unit prices in minor currency units (cents).
type Catalog map[Kind]int64

// DefaultCatalog returns the fixed price table.
// 6kg refills at $25.00, 12kg at $45.00, 25kg at $85.00.
func DefaultCatalog() Catalog {
	return Catalog{
		Kind6KG:  2500,
		Kind12KG: 4500,
		Kind25KG: 8500,
	}
}

// UnitPriceMinor returns the unit price for a kind in minor units.
func (c Catalog) UnitPriceMinor(kind Kind) (int64, error) {
	price, ok := c[kind]
	if !ok {
		return 0, errs.NewObjectNotFoundError("product kind", kind.String())
	}
	return price, nil
}

// TotalPriceMinor derives the total price for a quantity of one kind.
// Quantity validation is the order aggregate's concern; this only multiplies.
func (c Catalog) TotalPriceMinor(kind Kind, quantity int) (int64, error) {
	unit, err := c.UnitPriceMinor(kind)
	if err != nil {
		return 0, err
	}
	return unit * int64(quantity), nil
}
