package domain

import "github.com/google/uuid"

// Mutual is a supplementary health-insurance provider. ReimbursementRate
// is a percentage, nominally 0-100; the model does not clamp it, the
// validation layer rejects out-of-range submissions before they get here.
type Mutual struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	Address           Address    `json:"address"`
	Department        Department `json:"department"`
	PhoneNumber       string     `json:"phoneNumber"`
	Email             string     `json:"email"`
	ReimbursementRate float64    `json:"reimbursementRate"`
}

func (m *Mutual) String() string {
	return m.Name
}
