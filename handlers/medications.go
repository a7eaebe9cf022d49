package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/sparadrap/pharmacie-api/domain"
	"github.com/sparadrap/pharmacie-api/logging"
	"github.com/sparadrap/pharmacie-api/store"
	"github.com/sparadrap/pharmacie-api/validation"
)

// medicationRequest is a medication form submission. Price and quantity
// arrive as raw strings so the field validators see exactly what was
// typed.
type medicationRequest struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	Price      string `json:"price"`
	Quantity   string `json:"quantity"`
	LaunchDate string `json:"launchDate"`
}

func medicationFromRequest(req medicationRequest) (*domain.Medication, fieldErrors) {
	fe := fieldErrors{}

	fe.check("name", validation.ValidateName(req.Name))
	fe.check("category", validation.ValidateCategory(domain.MedicationCategory(req.Category)))
	fe.check("price", validation.ValidatePrice(req.Price))
	fe.check("quantity", validation.ValidateQuantity(req.Quantity))

	launchDate, err := parseFormDate(req.LaunchDate)
	if err != nil {
		fe["launchDate"] = "launch date must be dd/MM/yyyy"
	} else {
		fe.check("launchDate", validation.ValidateLaunchDate(launchDate))
	}

	if !fe.ok() {
		return nil, fe
	}

	price, _ := strconv.ParseFloat(strings.TrimSpace(req.Price), 64)
	quantity, _ := strconv.Atoi(strings.TrimSpace(req.Quantity))

	return &domain.Medication{
		Name:       req.Name,
		Category:   domain.MedicationCategory(req.Category),
		Price:      price,
		Quantity:   quantity,
		LaunchDate: launchDate,
	}, nil
}

// ListMedications serves the medication collection, filtered by the
// optional accent-insensitive ?search= term.
func ListMedications(registry *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		medications := registry.Medications.List()
		if term := r.URL.Query().Get("search"); term != "" {
			medications = registry.Medications.Search(term)
		}

		views := make([]medicationView, 0, len(medications))
		for _, m := range medications {
			views = append(views, newMedicationView(m))
		}
		RespondWithJSON(w, http.StatusOK, views)
	}
}

// GetMedication serves one medication by ID.
func GetMedication(registry *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r)
		if !ok {
			return
		}

		medication, err := registry.Medications.FindByID(id)
		if err != nil {
			notFoundOrError(w, err, "medication")
			return
		}
		RespondWithJSON(w, http.StatusOK, newMedicationView(medication))
	}
}

// CreateMedication validates and stores a new medication.
func CreateMedication(registry *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req medicationRequest
		if !decodeBody(w, r, &req) {
			return
		}

		medication, fe := medicationFromRequest(req)
		if !fe.ok() {
			fe.respond(w)
			return
		}

		registry.Medications.Add(medication)
		logging.Info("Medication created", "id", medication.ID, "name", medication.Name)
		RespondWithJSON(w, http.StatusCreated, newMedicationView(medication))
	}
}

// UpdateMedication validates and replaces an existing medication. The
// stored pointer keeps its identity, so baskets holding the medication
// see the new price on their next total.
func UpdateMedication(registry *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r)
		if !ok {
			return
		}

		var req medicationRequest
		if !decodeBody(w, r, &req) {
			return
		}

		updated, fe := medicationFromRequest(req)
		if !fe.ok() {
			fe.respond(w)
			return
		}

		existing, err := registry.Medications.FindByID(id)
		if err != nil {
			notFoundOrError(w, err, "medication")
			return
		}

		existing.Name = updated.Name
		existing.Category = updated.Category
		existing.Price = updated.Price
		existing.Quantity = updated.Quantity
		existing.LaunchDate = updated.LaunchDate

		logging.Info("Medication updated", "id", id, "price", existing.Price)
		RespondWithJSON(w, http.StatusOK, newMedicationView(existing))
	}
}

// DeleteMedication removes a medication from the inventory. Baskets that
// already hold it keep their reference.
func DeleteMedication(registry *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r)
		if !ok {
			return
		}

		if err := registry.Medications.Remove(id); err != nil {
			notFoundOrError(w, err, "medication")
			return
		}
		logging.Info("Medication deleted", "id", id)
		w.WriteHeader(http.StatusNoContent)
	}
}
