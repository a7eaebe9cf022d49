package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sparadrap/pharmacie-api/domain"
	"github.com/sparadrap/pharmacie-api/logging"
	"github.com/sparadrap/pharmacie-api/metrics"
	"github.com/sparadrap/pharmacie-api/store"
	"github.com/sparadrap/pharmacie-api/validation"
)

// purchaseRequest is a purchase form submission. The customer is optional
// (anonymous direct sale); the prescribing doctor and prescription date
// must both be present or both be absent. An empty purchase date means
// now.
type purchaseRequest struct {
	CustomerID          string              `json:"customerId,omitempty"`
	PurchaseDate        string              `json:"purchaseDate,omitempty"`
	PrescribingDoctorID string              `json:"prescribingDoctorId,omitempty"`
	PrescriptionDate    string              `json:"prescriptionDate,omitempty"`
	Basket              []basketLineRequest `json:"basket"`
}

type basketLineRequest struct {
	MedicationID string `json:"medicationId"`
	Quantity     int    `json:"quantity"`
}

func purchaseFromRequest(registry *store.Registry, req purchaseRequest) (*domain.Purchase, fieldErrors) {
	fe := fieldErrors{}

	// Optional customer: when an ID is submitted it must resolve.
	var customer *domain.Customer
	if req.CustomerID != "" {
		if parsed, err := uuid.Parse(req.CustomerID); err == nil {
			customer, _ = registry.Customers.FindByID(parsed)
		}
		fe.check("customer", validation.ValidateCustomerRef(customer))
	}

	purchaseDate, err := parseFormDate(req.PurchaseDate)
	if err != nil {
		fe["purchaseDate"] = "purchase date must be dd/MM/yyyy"
	} else if purchaseDate.IsZero() {
		purchaseDate = time.Now()
	}

	// Optional prescription context, both fields or neither.
	var prescribingDoctor *domain.Doctor
	if req.PrescribingDoctorID != "" {
		prescribingDoctor = lookupDoctor(registry, req.PrescribingDoctorID)
		fe.check("prescribingDoctor", validation.ValidateDoctorRef(prescribingDoctor))
	}

	prescriptionDate, err := parseFormDate(req.PrescriptionDate)
	if err != nil {
		fe["prescriptionDate"] = "prescription date must be dd/MM/yyyy"
	} else if !prescriptionDate.IsZero() {
		fe.check("prescriptionDate", validation.ValidatePrescriptionDate(prescriptionDate))
	}

	if (prescribingDoctor == nil) != prescriptionDate.IsZero() {
		fe.check("prescription", domain.ErrPrescriptionPair)
	}

	basket := make([]domain.BasketLine, 0, len(req.Basket))
	for _, line := range req.Basket {
		parsed, err := uuid.Parse(line.MedicationID)
		if err != nil {
			fe.check("basket", errMedicationUnknown(line.MedicationID))
			continue
		}
		medication, err := registry.Medications.FindByID(parsed)
		if err != nil {
			fe.check("basket", errMedicationUnknown(line.MedicationID))
			continue
		}
		basket = append(basket, domain.BasketLine{Medication: medication, Quantity: line.Quantity})
	}
	fe.check("basket", validation.ValidateBasket(basket))

	if !fe.ok() {
		return nil, fe
	}

	purchase, err := domain.NewPurchase(customer, purchaseDate, basket, prescribingDoctor, prescriptionDate)
	if err != nil {
		fe["purchase"] = err.Error()
		return nil, fe
	}
	return purchase, nil
}

// ListPurchases serves the purchase collection.
func ListPurchases(registry *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		purchases := registry.Purchases.List()
		views := make([]purchaseView, 0, len(purchases))
		for _, p := range purchases {
			views = append(views, newPurchaseView(p))
		}
		RespondWithJSON(w, http.StatusOK, views)
	}
}

// GetPurchase serves one purchase by ID, amounts recomputed from current
// prices.
func GetPurchase(registry *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r)
		if !ok {
			return
		}

		purchase, err := registry.Purchases.FindByID(id)
		if err != nil {
			notFoundOrError(w, err, "purchase")
			return
		}
		RespondWithJSON(w, http.StatusOK, newPurchaseView(purchase))
	}
}

// CreatePurchase validates and stores a new purchase.
func CreatePurchase(registry *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req purchaseRequest
		if !decodeBody(w, r, &req) {
			return
		}

		purchase, fe := purchaseFromRequest(registry, req)
		if !fe.ok() {
			fe.respond(w)
			return
		}

		registry.Purchases.Add(purchase)
		metrics.RecordPurchaseCreated(purchase.Type(), purchase.BasketSize())

		logging.Info("Purchase created", "id", purchase.ID, "type", purchase.Type(),
			"basketSize", purchase.BasketSize(), "total", purchase.TotalAmount())
		RespondWithJSON(w, http.StatusCreated, newPurchaseView(purchase))
	}
}

// UpdatePurchase validates and replaces an existing purchase as a whole:
// customer, dates, prescription context and basket.
func UpdatePurchase(registry *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r)
		if !ok {
			return
		}

		var req purchaseRequest
		if !decodeBody(w, r, &req) {
			return
		}

		purchase, fe := purchaseFromRequest(registry, req)
		if !fe.ok() {
			fe.respond(w)
			return
		}

		if err := registry.Purchases.Update(id, purchase); err != nil {
			notFoundOrError(w, err, "purchase")
			return
		}
		logging.Info("Purchase updated", "id", id, "type", purchase.Type(),
			"total", purchase.TotalAmount())
		RespondWithJSON(w, http.StatusOK, newPurchaseView(purchase))
	}
}

// SetBasketLine adds or replaces a basket line on an existing purchase.
// Re-adding a medication overwrites its quantity.
func SetBasketLine(registry *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r)
		if !ok {
			return
		}

		purchase, err := registry.Purchases.FindByID(id)
		if err != nil {
			notFoundOrError(w, err, "purchase")
			return
		}

		var req basketLineRequest
		if !decodeBody(w, r, &req) {
			return
		}

		medicationID, err := uuid.Parse(req.MedicationID)
		if err != nil {
			RespondWithError(w, http.StatusBadRequest, "invalid medication id")
			return
		}

		medication, err := registry.Medications.FindByID(medicationID)
		if err != nil {
			notFoundOrError(w, err, "medication")
			return
		}

		if err := purchase.AddMedication(medication, req.Quantity); err != nil {
			if errors.Is(err, domain.ErrQuantityNotPositive) {
				RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		logging.Info("Basket line set", "purchase", id,
			"medication", medication.Name, "quantity", req.Quantity)
		RespondWithJSON(w, http.StatusOK, newPurchaseView(purchase))
	}
}

// RemoveBasketLine drops one medication from an existing purchase's
// basket. Removing an absent medication is a no-op.
func RemoveBasketLine(registry *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r)
		if !ok {
			return
		}

		purchase, err := registry.Purchases.FindByID(id)
		if err != nil {
			notFoundOrError(w, err, "purchase")
			return
		}

		medicationID, err := uuid.Parse(chi.URLParam(r, "medicationID"))
		if err != nil {
			RespondWithError(w, http.StatusBadRequest, "invalid medication id")
			return
		}

		purchase.RemoveFromBasket(medicationID)
		logging.Info("Basket line removed", "purchase", id, "medication", medicationID)
		RespondWithJSON(w, http.StatusOK, newPurchaseView(purchase))
	}
}

// DeletePurchase removes a purchase.
func DeletePurchase(registry *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r)
		if !ok {
			return
		}

		if err := registry.Purchases.Remove(id); err != nil {
			notFoundOrError(w, err, "purchase")
			return
		}
		logging.Info("Purchase deleted", "id", id)
		w.WriteHeader(http.StatusNoContent)
	}
}
