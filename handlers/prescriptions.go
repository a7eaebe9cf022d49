package handlers

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/sparadrap/pharmacie-api/domain"
	"github.com/sparadrap/pharmacie-api/logging"
	"github.com/sparadrap/pharmacie-api/store"
	"github.com/sparadrap/pharmacie-api/validation"
)

// prescriptionRequest is a prescription form submission. The medication
// list keeps submission order and may repeat an ID.
type prescriptionRequest struct {
	Date          string   `json:"date"`
	DoctorID      string   `json:"doctorId"`
	PatientID     string   `json:"patientId"`
	MedicationIDs []string `json:"medicationIds"`
}

func errMedicationUnknown(id string) error {
	return fmt.Errorf("unknown medication: %s", id)
}

func prescriptionFromRequest(registry *store.Registry, req prescriptionRequest) (*domain.Prescription, fieldErrors) {
	fe := fieldErrors{}

	date, err := parseFormDate(req.Date)
	if err != nil {
		fe["date"] = "date must be dd/MM/yyyy"
	} else {
		fe.check("date", validation.ValidatePrescriptionDate(date))
	}

	doctor := lookupDoctor(registry, req.DoctorID)
	fe.check("doctor", validation.ValidateDoctorRef(doctor))

	var patient *domain.Customer
	if parsed, err := uuid.Parse(req.PatientID); err == nil {
		patient, _ = registry.Customers.FindByID(parsed)
	}
	fe.check("patient", validation.ValidateCustomerRef(patient))

	var medications []*domain.Medication
	if len(req.MedicationIDs) == 0 {
		fe["medications"] = "a prescription requires at least one medication"
	}
	for _, rawID := range req.MedicationIDs {
		parsed, err := uuid.Parse(rawID)
		if err != nil {
			fe.check("medications", errMedicationUnknown(rawID))
			continue
		}
		medication, err := registry.Medications.FindByID(parsed)
		if err != nil {
			fe.check("medications", errMedicationUnknown(rawID))
			continue
		}
		medications = append(medications, medication)
	}

	if !fe.ok() {
		return nil, fe
	}

	prescription, err := domain.NewPrescription(date, doctor, patient, medications)
	if err != nil {
		fe["prescription"] = err.Error()
		return nil, fe
	}
	return prescription, nil
}

// ListPrescriptions serves the prescription collection.
func ListPrescriptions(registry *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prescriptions := registry.Prescriptions.List()
		views := make([]prescriptionView, 0, len(prescriptions))
		for _, p := range prescriptions {
			views = append(views, newPrescriptionView(p))
		}
		RespondWithJSON(w, http.StatusOK, views)
	}
}

// GetPrescription serves one prescription by ID.
func GetPrescription(registry *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r)
		if !ok {
			return
		}

		prescription, err := registry.Prescriptions.FindByID(id)
		if err != nil {
			notFoundOrError(w, err, "prescription")
			return
		}
		RespondWithJSON(w, http.StatusOK, newPrescriptionView(prescription))
	}
}

// CreatePrescription validates and stores a new prescription.
func CreatePrescription(registry *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req prescriptionRequest
		if !decodeBody(w, r, &req) {
			return
		}

		prescription, fe := prescriptionFromRequest(registry, req)
		if !fe.ok() {
			fe.respond(w)
			return
		}

		registry.Prescriptions.Add(prescription)
		logging.Info("Prescription created", "id", prescription.ID,
			"doctor", prescription.Doctor.FullName(), "patient", prescription.Patient.FullName())
		RespondWithJSON(w, http.StatusCreated, newPrescriptionView(prescription))
	}
}

// UpdatePrescription validates and replaces an existing prescription.
func UpdatePrescription(registry *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r)
		if !ok {
			return
		}

		var req prescriptionRequest
		if !decodeBody(w, r, &req) {
			return
		}

		prescription, fe := prescriptionFromRequest(registry, req)
		if !fe.ok() {
			fe.respond(w)
			return
		}

		if err := registry.Prescriptions.Update(id, prescription); err != nil {
			notFoundOrError(w, err, "prescription")
			return
		}
		logging.Info("Prescription updated", "id", id)
		RespondWithJSON(w, http.StatusOK, newPrescriptionView(prescription))
	}
}

// DeletePrescription removes a prescription.
func DeletePrescription(registry *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r)
		if !ok {
			return
		}

		if err := registry.Prescriptions.Remove(id); err != nil {
			notFoundOrError(w, err, "prescription")
			return
		}
		logging.Info("Prescription deleted", "id", id)
		w.WriteHeader(http.StatusNoContent)
	}
}
