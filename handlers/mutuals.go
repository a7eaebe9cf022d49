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

// mutualRequest is a mutual form submission. The department is submitted
// as its 2-3 character code and the rate as a raw string.
type mutualRequest struct {
	Name              string `json:"name"`
	Street            string `json:"street"`
	ZipCode           string `json:"zipCode"`
	City              string `json:"city"`
	Department        string `json:"department"`
	PhoneNumber       string `json:"phoneNumber"`
	Email             string `json:"email"`
	ReimbursementRate string `json:"reimbursementRate"`
}

func mutualFromRequest(req mutualRequest) (*domain.Mutual, fieldErrors) {
	fe := fieldErrors{}

	fe.check("name", validation.ValidateName(req.Name))
	fe.check("street", validation.ValidateStreet(req.Street))
	fe.check("zipCode", validation.ValidateZipCode(req.ZipCode))
	fe.check("city", validation.ValidateCity(req.City))
	fe.check("phoneNumber", validation.ValidatePhoneNumber(req.PhoneNumber))
	fe.check("email", validation.ValidateEmail(req.Email))
	fe.check("reimbursementRate", validation.ValidateReimbursementRate(req.ReimbursementRate))

	department, err := domain.ParseDepartment(req.Department)
	if err != nil {
		fe["department"] = err.Error()
	}

	if !fe.ok() {
		return nil, fe
	}

	rate, _ := strconv.ParseFloat(strings.TrimSpace(req.ReimbursementRate), 64)

	return &domain.Mutual{
		Name:              req.Name,
		Address:           domain.Address{Street: req.Street, ZipCode: req.ZipCode, City: req.City},
		Department:        department,
		PhoneNumber:       req.PhoneNumber,
		Email:             req.Email,
		ReimbursementRate: rate,
	}, nil
}

// mirrorMutual applies a write-through to the SQL store when one is
// configured. Mirror failures are logged, never surfaced; the in-memory
// registry stays the source of truth.
func mirrorMutual(sqlStore *store.MutualSQLStore, op string, fn func() error) {
	if sqlStore == nil {
		return
	}
	if err := fn(); err != nil {
		logging.Warn("Mutual SQL mirror failed", "op", op, "error", err)
	}
}

// ListMutuals serves the mutual collection, filtered by the optional
// accent-insensitive ?search= term.
func ListMutuals(registry *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mutuals := registry.Mutuals.List()
		if term := r.URL.Query().Get("search"); term != "" {
			mutuals = registry.Mutuals.Search(term)
		}

		views := make([]*mutualView, 0, len(mutuals))
		for _, m := range mutuals {
			views = append(views, newMutualView(m))
		}
		RespondWithJSON(w, http.StatusOK, views)
	}
}

// GetMutual serves one mutual by ID.
func GetMutual(registry *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r)
		if !ok {
			return
		}

		mutual, err := registry.Mutuals.FindByID(id)
		if err != nil {
			notFoundOrError(w, err, "mutual")
			return
		}
		RespondWithJSON(w, http.StatusOK, newMutualView(mutual))
	}
}

// CreateMutual validates and stores a new mutual, mirroring it to the SQL
// store when one is configured.
func CreateMutual(registry *store.Registry, sqlStore *store.MutualSQLStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req mutualRequest
		if !decodeBody(w, r, &req) {
			return
		}

		mutual, fe := mutualFromRequest(req)
		if !fe.ok() {
			fe.respond(w)
			return
		}

		registry.Mutuals.Add(mutual)
		mirrorMutual(sqlStore, "insert", func() error {
			return sqlStore.Insert(r.Context(), mutual)
		})

		logging.Info("Mutual created", "id", mutual.ID, "name", mutual.Name)
		RespondWithJSON(w, http.StatusCreated, newMutualView(mutual))
	}
}

// UpdateMutual validates and replaces an existing mutual in place, so
// customers referencing it see the new rate immediately.
func UpdateMutual(registry *store.Registry, sqlStore *store.MutualSQLStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r)
		if !ok {
			return
		}

		var req mutualRequest
		if !decodeBody(w, r, &req) {
			return
		}

		updated, fe := mutualFromRequest(req)
		if !fe.ok() {
			fe.respond(w)
			return
		}

		existing, err := registry.Mutuals.FindByID(id)
		if err != nil {
			notFoundOrError(w, err, "mutual")
			return
		}

		existing.Name = updated.Name
		existing.Address = updated.Address
		existing.Department = updated.Department
		existing.PhoneNumber = updated.PhoneNumber
		existing.Email = updated.Email
		existing.ReimbursementRate = updated.ReimbursementRate

		mirrorMutual(sqlStore, "update", func() error {
			return sqlStore.Update(r.Context(), existing)
		})

		logging.Info("Mutual updated", "id", id, "rate", existing.ReimbursementRate)
		RespondWithJSON(w, http.StatusOK, newMutualView(existing))
	}
}

// DeleteMutual removes a mutual. Customers referencing it keep their
// reference.
func DeleteMutual(registry *store.Registry, sqlStore *store.MutualSQLStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r)
		if !ok {
			return
		}

		if err := registry.Mutuals.Remove(id); err != nil {
			notFoundOrError(w, err, "mutual")
			return
		}

		mirrorMutual(sqlStore, "delete", func() error {
			return sqlStore.Delete(r.Context(), id)
		})

		logging.Info("Mutual deleted", "id", id)
		w.WriteHeader(http.StatusNoContent)
	}
}
