package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Customer is a pharmacy customer. The mutual and referring doctor are
// live references into their stores, so rate or doctor edits are visible
// without copying.
type Customer struct {
	ID uuid.UUID `json:"id"`
	Person
	SocialSecurityNumber string    `json:"socialSecurityNumber"`
	BirthDate            time.Time `json:"birthDate"`
	Mutual               *Mutual   `json:"mutual,omitempty"`
	ReferringDoctor      *Doctor   `json:"referringDoctor,omitempty"`
}

func (c *Customer) String() string {
	return fmt.Sprintf("%s %s", c.FullName(), c.SocialSecurityNumber)
}
