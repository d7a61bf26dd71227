// Package domain holds the storefront's core types: the fixed pre-order
// inventory, the sanitized order projection, and the sentinel errors shared
// by services and handlers.
package domain

import "fmt"

// UnitStatus is the sale state of a numbered unit.
type UnitStatus string

const (
	UnitSold     UnitStatus = "Sold"
	UnitPreOrder UnitStatus = "Pre-Order"
)

// Unit is a single numbered spinner from the limited run. The run is fixed
// at build time; there is no dynamic inventory.
type Unit struct {
	Number   int
	Status   UnitStatus
	ImageURL string
}

// ID renders the unit's display identifier, e.g. "#03".
func (u Unit) ID() string {
	return fmt.Sprintf("#%02d", u.Number)
}

// Sold reports whether the unit is no longer available for pre-order.
func (u Unit) Sold() bool {
	return u.Status == UnitSold
}

// UnitByID looks up a unit by its display identifier ("#01".."#05").
func UnitByID(id string) (Unit, bool) {
	for _, u := range Units() {
		if u.ID() == id {
			return u, true
		}
	}
	return Unit{}, false
}

// Units returns the full limited run in display order.
func Units() []Unit {
	return []Unit{
		{Number: 1, Status: UnitSold, ImageURL: "/images/01.svg"},
		{Number: 2, Status: UnitSold, ImageURL: "/images/02.svg"},
		{Number: 3, Status: UnitPreOrder, ImageURL: "/images/03.svg"},
		{Number: 4, Status: UnitPreOrder, ImageURL: "/images/04.svg"},
		{Number: 5, Status: UnitPreOrder, ImageURL: "/images/05.svg"},
	}
}
