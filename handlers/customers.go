package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/sparadrap/pharmacie-api/domain"
	"github.com/sparadrap/pharmacie-api/logging"
	"github.com/sparadrap/pharmacie-api/store"
	"github.com/sparadrap/pharmacie-api/validation"
)

// customerRequest is a customer form submission. Dates are dd/MM/yyyy,
// references are store IDs; both the mutual and the referring doctor are
// required selections.
type customerRequest struct {
	FirstName            string `json:"firstName"`
	LastName             string `json:"lastName"`
	Street               string `json:"street"`
	ZipCode              string `json:"zipCode"`
	City                 string `json:"city"`
	PhoneNumber          string `json:"phoneNumber"`
	Email                string `json:"email"`
	SocialSecurityNumber string `json:"socialSecurityNumber"`
	BirthDate            string `json:"birthDate"`
	MutualID             string `json:"mutualId"`
	ReferringDoctorID    string `json:"referringDoctorId"`
}

// customerFromRequest validates every submitted field, resolves the
// references and builds the customer. A non-empty error map means the
// submission is rejected as a whole.
func customerFromRequest(registry *store.Registry, req customerRequest) (*domain.Customer, fieldErrors) {
	fe := fieldErrors{}

	fe.check("firstName", validation.ValidateName(req.FirstName))
	fe.check("lastName", validation.ValidateName(req.LastName))
	fe.check("street", validation.ValidateStreet(req.Street))
	fe.check("zipCode", validation.ValidateZipCode(req.ZipCode))
	fe.check("city", validation.ValidateCity(req.City))
	fe.check("phoneNumber", validation.ValidatePhoneNumber(req.PhoneNumber))
	fe.check("email", validation.ValidateEmail(req.Email))
	fe.check("socialSecurityNumber", validation.ValidateSocialSecurityNumber(req.SocialSecurityNumber))

	birthDate, err := parseFormDate(req.BirthDate)
	if err != nil {
		fe["birthDate"] = "birth date must be dd/MM/yyyy"
	} else {
		fe.check("birthDate", validation.ValidateBirthDate(birthDate))
	}

	mutual := lookupMutual(registry, req.MutualID)
	fe.check("mutual", validation.ValidateMutualRef(mutual))

	doctor := lookupDoctor(registry, req.ReferringDoctorID)
	fe.check("referringDoctor", validation.ValidateDoctorRef(doctor))

	if !fe.ok() {
		return nil, fe
	}

	return &domain.Customer{
		Person: domain.Person{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			Address:     domain.Address{Street: req.Street, ZipCode: req.ZipCode, City: req.City},
			PhoneNumber: req.PhoneNumber,
			Email:       req.Email,
		},
		SocialSecurityNumber: req.SocialSecurityNumber,
		BirthDate:            birthDate,
		Mutual:               mutual,
		ReferringDoctor:      doctor,
	}, nil
}

// lookupMutual resolves a submitted mutual ID, nil when absent or unknown.
func lookupMutual(registry *store.Registry, id string) *domain.Mutual {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil
	}
	m, err := registry.Mutuals.FindByID(parsed)
	if err != nil {
		return nil
	}
	return m
}

// lookupDoctor resolves a submitted doctor ID, nil when absent or unknown.
func lookupDoctor(registry *store.Registry, id string) *domain.Doctor {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil
	}
	d, err := registry.Doctors.FindByID(parsed)
	if err != nil {
		return nil
	}
	return d
}

// ListCustomers serves the customer collection, filtered by the optional
// accent-insensitive ?search= term.
func ListCustomers(registry *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customers := registry.Customers.List()
		if term := r.URL.Query().Get("search"); term != "" {
			customers = registry.Customers.Search(term)
		}

		views := make([]*customerView, 0, len(customers))
		for _, c := range customers {
			views = append(views, newCustomerView(c))
		}
		RespondWithJSON(w, http.StatusOK, views)
	}
}

// GetCustomer serves one customer by ID.
func GetCustomer(registry *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r)
		if !ok {
			return
		}

		customer, err := registry.Customers.FindByID(id)
		if err != nil {
			notFoundOrError(w, err, "customer")
			return
		}
		RespondWithJSON(w, http.StatusOK, newCustomerView(customer))
	}
}

// CreateCustomer validates and stores a new customer.
func CreateCustomer(registry *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req customerRequest
		if !decodeBody(w, r, &req) {
			return
		}

		customer, fe := customerFromRequest(registry, req)
		if !fe.ok() {
			fe.respond(w)
			return
		}

		registry.Customers.Add(customer)
		logging.Info("Customer created", "id", customer.ID, "name", customer.FullName())
		RespondWithJSON(w, http.StatusCreated, newCustomerView(customer))
	}
}

// UpdateCustomer validates and replaces an existing customer.
func UpdateCustomer(registry *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r)
		if !ok {
			return
		}

		var req customerRequest
		if !decodeBody(w, r, &req) {
			return
		}

		customer, fe := customerFromRequest(registry, req)
		if !fe.ok() {
			fe.respond(w)
			return
		}

		if err := registry.Customers.Update(id, customer); err != nil {
			notFoundOrError(w, err, "customer")
			return
		}
		logging.Info("Customer updated", "id", id)
		RespondWithJSON(w, http.StatusOK, newCustomerView(customer))
	}
}

// DeleteCustomer removes a customer.
func DeleteCustomer(registry *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r)
		if !ok {
			return
		}

		if err := registry.Customers.Remove(id); err != nil {
			notFoundOrError(w, err, "customer")
			return
		}
		logging.Info("Customer deleted", "id", id)
		w.WriteHeader(http.StatusNoContent)
	}
}
