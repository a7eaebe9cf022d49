package domain

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
)

func testMedication(name string, price float64) *Medication {
	return &Medication{
		ID:         uuid.New(),
		Name:       name,
		Category:   CategoryAnalgesique,
		Price:      price,
		Quantity:   100,
		LaunchDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.Local),
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPurchaseTotalAmount(t *testing.T) {
	paracetamol := testMedication("Paracétamol", 2.50)
	ibuprofen := testMedication("Ibuprofène", 3.00)

	p, err := NewPurchase(nil, time.Now(), []BasketLine{
		{Medication: paracetamol, Quantity: 2},
		{Medication: ibuprofen, Quantity: 1},
	}, nil, time.Time{})
	if err != nil {
		t.Fatalf("NewPurchase failed: %v", err)
	}

	if got := p.TotalAmount(); !almostEqual(got, 8.00) {
		t.Errorf("Expected total 8.00, got %.2f", got)
	}
	if got := FormatAmount(p.TotalAmount()); got != "8.00 €" {
		t.Errorf("Expected display 8.00 €, got %q", got)
	}
}

func TestAddMedicationOverwritesQuantity(t *testing.T) {
	med := testMedication("Paracétamol", 2.50)

	p, err := NewPurchase(nil, time.Now(), []BasketLine{
		{Medication: med, Quantity: 2},
	}, nil, time.Time{})
	if err != nil {
		t.Fatalf("NewPurchase failed: %v", err)
	}

	if err := p.AddMedication(med, 5); err != nil {
		t.Fatalf("AddMedication failed: %v", err)
	}

	if got := p.Quantity(med.ID); got != 5 {
		t.Errorf("Expected quantity 5 after re-add (no summing), got %d", got)
	}
	if p.BasketSize() != 1 {
		t.Errorf("Expected one distinct medication, got %d", p.BasketSize())
	}
	if got := p.TotalAmount(); !almostEqual(got, 12.50) {
		t.Errorf("Expected total 12.50, got %.2f", got)
	}
}

func TestTotalRecomputedAfterPriceEdit(t *testing.T) {
	med := testMedication("Amoxicilline", 7.50)

	p, err := NewPurchase(nil, time.Now(), []BasketLine{
		{Medication: med, Quantity: 2},
	}, nil, time.Time{})
	if err != nil {
		t.Fatalf("NewPurchase failed: %v", err)
	}

	if got := p.TotalAmount(); !almostEqual(got, 15.00) {
		t.Fatalf("Expected total 15.00, got %.2f", got)
	}

	// The basket shares the medication pointer, so a price edit is
	// visible on the next total.
	med.Price = 10.00
	if got := p.TotalAmount(); !almostEqual(got, 20.00) {
		t.Errorf("Expected total 20.00 after price edit, got %.2f", got)
	}
}

func TestPrescriptionPairInvariant(t *testing.T) {
	med := testMedication("Paracétamol", 2.50)
	doctor := &Doctor{
		Person:             Person{FirstName: "Anne", LastName: "Martin"},
		RegistrationNumber: "10123456789",
	}
	basket := []BasketLine{{Medication: med, Quantity: 1}}

	tests := []struct {
		name    string
		doctor  *Doctor
		date    time.Time
		wantErr error
	}{
		{"doctor without date", doctor, time.Time{}, ErrPrescriptionPair},
		{"date without doctor", nil, time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local), ErrPrescriptionPair},
		{"both absent", nil, time.Time{}, nil},
		{"both present", doctor, time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPurchase(nil, time.Now(), basket, tt.doctor, tt.date)
			if tt.wantErr == nil && err != nil {
				t.Errorf("Expected success, got %v", err)
			}
			if tt.wantErr != nil && err != tt.wantErr {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestPurchaseRejectsEmptyBasket(t *testing.T) {
	_, err := NewPurchase(nil, time.Now(), nil, nil, time.Time{})
	if err != ErrEmptyBasket {
		t.Errorf("Expected ErrEmptyBasket, got %v", err)
	}
}

func TestPurchaseRejectsBadBasketLines(t *testing.T) {
	med := testMedication("Paracétamol", 2.50)

	if _, err := NewPurchase(nil, time.Now(), []BasketLine{{Medication: nil, Quantity: 1}}, nil, time.Time{}); err != ErrNilMedication {
		t.Errorf("Expected ErrNilMedication, got %v", err)
	}
	if _, err := NewPurchase(nil, time.Now(), []BasketLine{{Medication: med, Quantity: 0}}, nil, time.Time{}); err != ErrQuantityNotPositive {
		t.Errorf("Expected ErrQuantityNotPositive for zero quantity, got %v", err)
	}
	if _, err := NewPurchase(nil, time.Now(), []BasketLine{{Medication: med, Quantity: -3}}, nil, time.Time{}); err != ErrQuantityNotPositive {
		t.Errorf("Expected ErrQuantityNotPositive for negative quantity, got %v", err)
	}
}

func TestReimbursementAmounts(t *testing.T) {
	med := testMedication("Statine", 12.00)
	mutual := &Mutual{Name: "MGEN", ReimbursementRate: 80}
	customer := &Customer{
		Person: Person{FirstName: "Paul", LastName: "Durand"},
		Mutual: mutual,
	}

	p, err := NewPurchase(customer, time.Now(), []BasketLine{
		{Medication: med, Quantity: 1},
	}, nil, time.Time{})
	if err != nil {
		t.Fatalf("NewPurchase failed: %v", err)
	}

	if got := p.TotalAmount(); !almostEqual(got, 12.00) {
		t.Errorf("Expected pre-reimbursement total 12.00, got %.2f", got)
	}
	if got := p.ReimbursedAmount(); !almostEqual(got, 9.60) {
		t.Errorf("Expected reimbursed 9.60, got %.2f", got)
	}
	if got := p.NetAmount(); !almostEqual(got, 2.40) {
		t.Errorf("Expected net 2.40, got %.2f", got)
	}
}

func TestReimbursementWithoutMutual(t *testing.T) {
	med := testMedication("Paracétamol", 2.50)

	anonymous, _ := NewPurchase(nil, time.Now(), []BasketLine{{Medication: med, Quantity: 1}}, nil, time.Time{})
	if got := anonymous.ReimbursedAmount(); got != 0 {
		t.Errorf("Expected zero reimbursement without customer, got %.2f", got)
	}

	uninsured := &Customer{Person: Person{FirstName: "Luc", LastName: "Morel"}}
	p, _ := NewPurchase(uninsured, time.Now(), []BasketLine{{Medication: med, Quantity: 1}}, nil, time.Time{})
	if got := p.ReimbursedAmount(); got != 0 {
		t.Errorf("Expected zero reimbursement without mutual, got %.2f", got)
	}
	if got := p.NetAmount(); !almostEqual(got, 2.50) {
		t.Errorf("Expected net equal to total, got %.2f", got)
	}
}

func TestRemoveFromBasket(t *testing.T) {
	paracetamol := testMedication("Paracétamol", 2.50)
	ibuprofen := testMedication("Ibuprofène", 3.00)

	p, _ := NewPurchase(nil, time.Now(), []BasketLine{
		{Medication: paracetamol, Quantity: 2},
		{Medication: ibuprofen, Quantity: 1},
	}, nil, time.Time{})

	p.RemoveFromBasket(ibuprofen.ID)
	if p.BasketSize() != 1 {
		t.Errorf("Expected basket size 1 after removal, got %d", p.BasketSize())
	}
	if got := p.TotalAmount(); !almostEqual(got, 5.00) {
		t.Errorf("Expected total 5.00 after removal, got %.2f", got)
	}

	// Removing an absent medication is a no-op.
	p.RemoveFromBasket(ibuprofen.ID)
	if p.BasketSize() != 1 {
		t.Errorf("Expected basket size unchanged, got %d", p.BasketSize())
	}
}

func TestPurchaseType(t *testing.T) {
	med := testMedication("Paracétamol", 2.50)
	doctor := &Doctor{Person: Person{FirstName: "Anne", LastName: "Martin"}}

	direct, _ := NewPurchase(nil, time.Now(), []BasketLine{{Medication: med, Quantity: 1}}, nil, time.Time{})
	if direct.Type() != "Direct" {
		t.Errorf("Expected Direct, got %s", direct.Type())
	}
	if direct.IsPrescriptionBased() {
		t.Error("Expected direct sale to not be prescription based")
	}

	prescribed, _ := NewPurchase(nil, time.Now(), []BasketLine{{Medication: med, Quantity: 1}},
		doctor, time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local))
	if prescribed.Type() != "Avec Ordonnance" {
		t.Errorf("Expected Avec Ordonnance, got %s", prescribed.Type())
	}
	if !prescribed.IsPrescriptionBased() {
		t.Error("Expected prescribed sale to be prescription based")
	}
}
