// Package types provides common type aliases and utilities.
package types

import (
	"github.com/shopspring/decimal"
)

// Quantity represents a stock quantity with full precision.
// Uses decimal.Decimal to avoid floating-point errors; the ledger rounds
// every stored quantity to 2 decimal places.
type Quantity = decimal.Decimal

// Money represents a monetary value (unit cost, line price).
type Money = decimal.Decimal

// Qty creates a Quantity from a float.
// WARNING: Use QtyFromString for precise values.
func Qty(f float64) Quantity {
	return decimal.NewFromFloat(f)
}

// QtyFromString creates a Quantity from a string.
// This is the preferred method for seed data and tests.
func QtyFromString(s string) (Quantity, error) {
	return decimal.NewFromString(s)
}

// MustQty creates a Quantity from a string, panics on error.
// Use only for constants and seed data.
func MustQty(s string) Quantity {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Zero returns the zero Quantity.
func Zero() Quantity {
	return decimal.Zero
}

// Round2 rounds a quantity to the ledger scale of 2 decimal places.
func Round2(q Quantity) Quantity {
	return q.Round(2)
}

// ClampFloor2 applies the ledger storage rule: round2(max(0, q)).
func ClampFloor2(q Quantity) Quantity {
	if q.IsNegative() {
		return decimal.Zero
	}
	return q.Round(2)
}
