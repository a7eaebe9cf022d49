package domain

import (
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	if got := FormatDate(time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)); got != "15/01/2024" {
		t.Errorf("Expected 15/01/2024, got %s", got)
	}
	if got := FormatDate(time.Time{}); got != "" {
		t.Errorf("Expected empty string for zero date, got %q", got)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("15/01/2024")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if d.Day() != 15 || d.Month() != time.January || d.Year() != 2024 {
		t.Errorf("Unexpected parsed date: %v", d)
	}

	if _, err := ParseDate("2024-01-15"); err == nil {
		t.Error("Expected error for ISO date input")
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{8, "8.00 €"},
		{2.5, "2.50 €"},
		{0, "0.00 €"},
		{12.345, "12.35 €"},
	}

	for _, tt := range tests {
		if got := FormatAmount(tt.amount); got != tt.expected {
			t.Errorf("FormatAmount(%v) = %q, expected %q", tt.amount, got, tt.expected)
		}
	}
}

func TestAddressString(t *testing.T) {
	a := Address{Street: "12 rue de la Paix", ZipCode: "75002", City: "Paris"}
	if got := a.String(); got != "12 rue de la Paix, 75002 Paris" {
		t.Errorf("Unexpected address display: %q", got)
	}
}

func TestFullName(t *testing.T) {
	p := Person{FirstName: "Marie", LastName: "Lefevre"}
	if got := p.FullName(); got != "Marie Lefevre" {
		t.Errorf("Expected Marie Lefevre, got %q", got)
	}
}

func TestDoctorIsSpecialist(t *testing.T) {
	tests := []struct {
		specialty Specialty
		expected  bool
	}{
		{"", false},
		{SpecialtyGenerale, false},
		{SpecialtyCardiologie, true},
		{SpecialtyDermatologie, true},
	}

	for _, tt := range tests {
		d := &Doctor{Specialty: tt.specialty}
		if got := d.IsSpecialist(); got != tt.expected {
			t.Errorf("IsSpecialist with specialty %q = %v, expected %v", tt.specialty, got, tt.expected)
		}
	}
}

func TestPrescriptionSpecialty(t *testing.T) {
	patient := &Customer{Person: Person{FirstName: "Paul", LastName: "Durand"}}
	med := testMedication("Paracétamol", 2.50)
	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.Local)

	generalist := &Doctor{Person: Person{FirstName: "Anne", LastName: "Martin"}}
	p, err := NewPrescription(date, generalist, patient, []*Medication{med})
	if err != nil {
		t.Fatalf("NewPrescription failed: %v", err)
	}
	if got := p.Specialty(); got != SpecialtyGenerale {
		t.Errorf("Expected Générale for generalist, got %s", got)
	}

	cardiologist := &Doctor{Person: Person{FirstName: "Claire", LastName: "Dubois"}, Specialty: SpecialtyCardiologie}
	p, err = NewPrescription(date, cardiologist, patient, []*Medication{med})
	if err != nil {
		t.Fatalf("NewPrescription failed: %v", err)
	}
	if got := p.Specialty(); got != SpecialtyCardiologie {
		t.Errorf("Expected Cardiologie for specialist, got %s", got)
	}
}

func TestNewPrescriptionRejectsMissingParts(t *testing.T) {
	patient := &Customer{Person: Person{FirstName: "Paul", LastName: "Durand"}}
	doctor := &Doctor{Person: Person{FirstName: "Anne", LastName: "Martin"}}
	med := testMedication("Paracétamol", 2.50)
	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.Local)

	if _, err := NewPrescription(date, nil, patient, []*Medication{med}); err != ErrPrescriptionDoctorRequired {
		t.Errorf("Expected ErrPrescriptionDoctorRequired, got %v", err)
	}
	if _, err := NewPrescription(date, doctor, nil, []*Medication{med}); err != ErrPrescriptionPatientRequired {
		t.Errorf("Expected ErrPrescriptionPatientRequired, got %v", err)
	}
	if _, err := NewPrescription(date, doctor, patient, nil); err != ErrPrescriptionNoMedications {
		t.Errorf("Expected ErrPrescriptionNoMedications, got %v", err)
	}
}

func TestPrescriptionKeepsOrderAndDuplicates(t *testing.T) {
	patient := &Customer{Person: Person{FirstName: "Paul", LastName: "Durand"}}
	doctor := &Doctor{Person: Person{FirstName: "Anne", LastName: "Martin"}}
	a := testMedication("Amoxicilline", 7.50)
	b := testMedication("Paracétamol", 2.50)

	p, err := NewPrescription(time.Date(2024, 1, 10, 0, 0, 0, 0, time.Local), doctor, patient, []*Medication{a, b, a})
	if err != nil {
		t.Fatalf("NewPrescription failed: %v", err)
	}

	if len(p.Medications) != 3 {
		t.Fatalf("Expected 3 entries including the duplicate, got %d", len(p.Medications))
	}
	if p.Medications[0] != a || p.Medications[1] != b || p.Medications[2] != a {
		t.Error("Expected medication list to keep submission order")
	}
}

func TestDepartment(t *testing.T) {
	d := Department("75")
	if !d.IsValid() {
		t.Error("Expected 75 to be a valid department")
	}
	if d.Name() != "Paris" {
		t.Errorf("Expected Paris, got %s", d.Name())
	}

	if Department("00").IsValid() {
		t.Error("Expected 00 to be invalid")
	}

	parsed, err := ParseDepartment("val de marne")
	if err != nil {
		t.Fatalf("ParseDepartment by name failed: %v", err)
	}
	if parsed != Department("94") {
		t.Errorf("Expected department 94, got %s", parsed)
	}

	parsed, err = ParseDepartment("2a")
	if err != nil {
		t.Fatalf("ParseDepartment by code failed: %v", err)
	}
	if parsed.Name() != "Corse Du Sud" {
		t.Errorf("Expected Corse Du Sud, got %s", parsed.Name())
	}

	if _, err := ParseDepartment("Atlantide"); err == nil {
		t.Error("Expected error for unknown department")
	}
}

func TestSpecialtyValidation(t *testing.T) {
	if !Specialty("").IsValid() {
		t.Error("Expected empty specialty to be valid (general practice)")
	}
	if !SpecialtyCardiologie.IsValid() {
		t.Error("Expected Cardiologie to be valid")
	}
	if Specialty("Alchimie").IsValid() {
		t.Error("Expected unknown specialty to be invalid")
	}
}

func TestCategoryValidation(t *testing.T) {
	if !CategoryAntibiotique.IsValid() {
		t.Error("Expected Antibiotique to be valid")
	}
	if MedicationCategory("Potion").IsValid() {
		t.Error("Expected unknown category to be invalid")
	}

	parsed, err := ParseMedicationCategory("vaccin")
	if err != nil {
		t.Fatalf("ParseMedicationCategory failed: %v", err)
	}
	if parsed != CategoryVaccin {
		t.Errorf("Expected Vaccin, got %s", parsed)
	}
}

func TestMedicationStockValue(t *testing.T) {
	m := testMedication("Paracétamol", 2.50)
	m.Quantity = 4
	if got := m.StockValue(); got != 10.0 {
		t.Errorf("Expected stock value 10.00, got %.2f", got)
	}
}
