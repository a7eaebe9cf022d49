package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNilMedication rejects basket operations without a medication.
	ErrNilMedication = errors.New("medication is nil")
	// ErrQuantityNotPositive rejects basket quantities below 1.
	ErrQuantityNotPositive = errors.New("basket quantity must be positive")
	// ErrEmptyBasket rejects purchases without any basket entry.
	ErrEmptyBasket = errors.New("basket cannot be empty")
	// ErrPrescriptionPair rejects a prescribing doctor without a
	// prescription date, and the other way around.
	ErrPrescriptionPair = errors.New("prescribing doctor and prescription date must both be set or both be absent")
)

// BasketLine is one basket entry: a medication reference and the purchased
// quantity. The medication is shared with the medication store, so a price
// edit is immediately visible in every total derived from it.
type BasketLine struct {
	Medication *Medication
	Quantity   int
}

// Purchase is one sale: an optional customer (nil for an anonymous direct
// sale), a purchase date, a basket keyed by medication, and an optional
// prescription context. Totals are never stored; every amount accessor
// recomputes from the basket's current prices.
type Purchase struct {
	ID                uuid.UUID
	Customer          *Customer
	PurchaseDate      time.Time
	PrescribingDoctor *Doctor
	PrescriptionDate  time.Time

	basket map[uuid.UUID]BasketLine
}

// NewPurchase builds a purchase from a pre-validated submission. It still
// defensively rejects a half-set prescription pair, an empty basket and
// non-positive quantities, since those break structural invariants rather
// than field formats.
func NewPurchase(customer *Customer, purchaseDate time.Time, basket []BasketLine, prescribingDoctor *Doctor, prescriptionDate time.Time) (*Purchase, error) {
	if (prescribingDoctor == nil) != prescriptionDate.IsZero() {
		return nil, ErrPrescriptionPair
	}
	if len(basket) == 0 {
		return nil, ErrEmptyBasket
	}

	p := &Purchase{
		Customer:          customer,
		PurchaseDate:      purchaseDate,
		PrescribingDoctor: prescribingDoctor,
		PrescriptionDate:  prescriptionDate,
		basket:            make(map[uuid.UUID]BasketLine, len(basket)),
	}

	for _, line := range basket {
		if err := p.AddMedication(line.Medication, line.Quantity); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// AddMedication sets the basket entry for the medication. Re-adding a
// medication already in the basket replaces its quantity (last-write-wins,
// no summing).
func (p *Purchase) AddMedication(med *Medication, quantity int) error {
	if med == nil {
		return ErrNilMedication
	}
	if quantity <= 0 {
		return ErrQuantityNotPositive
	}

	p.basket[med.ID] = BasketLine{Medication: med, Quantity: quantity}
	return nil
}

// RemoveFromBasket drops the entry for the medication if present.
func (p *Purchase) RemoveFromBasket(medicationID uuid.UUID) {
	delete(p.basket, medicationID)
}

// Quantity returns the basket quantity for a medication, zero if absent.
func (p *Purchase) Quantity(medicationID uuid.UUID) int {
	return p.basket[medicationID].Quantity
}

// Basket returns a copy of the basket lines. Order is unspecified; basket
// keys are unique per medication.
func (p *Purchase) Basket() []BasketLine {
	lines := make([]BasketLine, 0, len(p.basket))
	for _, line := range p.basket {
		lines = append(lines, line)
	}
	return lines
}

// BasketSize returns the number of distinct medications in the basket.
func (p *Purchase) BasketSize() int {
	return len(p.basket)
}

// TotalAmount is the pre-reimbursement total, recomputed on demand from
// the current medication prices.
func (p *Purchase) TotalAmount() float64 {
	var total float64
	for _, line := range p.basket {
		total += line.Medication.Price * float64(line.Quantity)
	}
	return total
}

// ReimbursedAmount is the share of the total covered by the customer's
// mutual, zero when there is no customer or no mutual.
func (p *Purchase) ReimbursedAmount() float64 {
	if p.Customer == nil || p.Customer.Mutual == nil {
		return 0
	}
	return p.TotalAmount() * p.Customer.Mutual.ReimbursementRate / 100
}

// NetAmount is what the customer pays after reimbursement.
func (p *Purchase) NetAmount() float64 {
	return p.TotalAmount() - p.ReimbursedAmount()
}

// IsPrescriptionBased reports whether the purchase carries a prescription
// context.
func (p *Purchase) IsPrescriptionBased() bool {
	return p.PrescribingDoctor != nil
}

// Type returns the purchase type display label.
func (p *Purchase) Type() string {
	if p.IsPrescriptionBased() {
		return "Avec Ordonnance"
	}
	return "Direct"
}
