package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Medication is a sellable product. Quantity is the on-hand stock for
// inventory display; basket quantities live on purchases.
type Medication struct {
	ID         uuid.UUID          `json:"id"`
	Name       string             `json:"name"`
	Category   MedicationCategory `json:"category"`
	Price      float64            `json:"price"`
	Quantity   int                `json:"quantity"`
	LaunchDate time.Time          `json:"launchDate"`
}

// StockValue returns price times on-hand quantity, recomputed from the
// current field values.
func (m *Medication) StockValue() float64 {
	return m.Price * float64(m.Quantity)
}

func (m *Medication) String() string {
	return fmt.Sprintf("%s (%s) %s", m.Name, m.Category, FormatAmount(m.Price))
}
