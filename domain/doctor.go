package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Doctor is a prescriber. The specialty tag selects between the two
// prescriber variants: SpecialtyGenerale (or empty) is a general
// practitioner, anything else promotes the doctor to a specialist.
type Doctor struct {
	ID uuid.UUID `json:"id"`
	Person
	RegistrationNumber string    `json:"registrationNumber"`
	Specialty          Specialty `json:"specialty,omitempty"`
}

// IsSpecialist reports whether the doctor carries a specialty other than
// the general practice tag.
func (d *Doctor) IsSpecialist() bool {
	return d.Specialty != "" && d.Specialty != SpecialtyGenerale
}

func (d *Doctor) String() string {
	return fmt.Sprintf("%s %s", d.FullName(), d.RegistrationNumber)
}
