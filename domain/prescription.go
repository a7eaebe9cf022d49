package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrPrescriptionDoctorRequired rejects prescriptions without a
	// prescriber.
	ErrPrescriptionDoctorRequired = errors.New("prescription requires a doctor")
	// ErrPrescriptionPatientRequired rejects prescriptions without a
	// patient.
	ErrPrescriptionPatientRequired = errors.New("prescription requires a patient")
	// ErrPrescriptionNoMedications rejects prescriptions with an empty
	// medication list.
	ErrPrescriptionNoMedications = errors.New("prescription requires at least one medication")
)

// Prescription records a doctor prescribing medications to a patient,
// independent of any purchase fulfilling it. The medication list is
// order-preserving and may repeat entries.
type Prescription struct {
	ID          uuid.UUID     `json:"id"`
	Date        time.Time     `json:"date"`
	Doctor      *Doctor       `json:"doctor"`
	Patient     *Customer     `json:"patient"`
	Medications []*Medication `json:"medications"`
}

// NewPrescription builds a prescription, rejecting missing references and
// an empty medication list.
func NewPrescription(date time.Time, doctor *Doctor, patient *Customer, medications []*Medication) (*Prescription, error) {
	if doctor == nil {
		return nil, ErrPrescriptionDoctorRequired
	}
	if patient == nil {
		return nil, ErrPrescriptionPatientRequired
	}
	if len(medications) == 0 {
		return nil, ErrPrescriptionNoMedications
	}

	return &Prescription{
		Date:        date,
		Doctor:      doctor,
		Patient:     patient,
		Medications: medications,
	}, nil
}

// Specialty returns the specialty annotation: the prescriber's specialty
// when the doctor is a specialist, SpecialtyGenerale otherwise.
func (p *Prescription) Specialty() Specialty {
	if p.Doctor != nil && p.Doctor.IsSpecialist() {
		return p.Doctor.Specialty
	}
	return SpecialtyGenerale
}
