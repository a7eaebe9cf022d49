// Package domain holds the pharmacy entity types and the purchase pricing
// engine. The types are plain values with no UI or storage wiring; derived
// amounts are always recomputed from current field values.
package domain

import "fmt"

// Address is a postal address embedded in persons and mutuals.
type Address struct {
	Street  string `json:"street"`
	ZipCode string `json:"zipCode"`
	City    string `json:"city"`
}

func (a Address) String() string {
	return fmt.Sprintf("%s, %s %s", a.Street, a.ZipCode, a.City)
}
