package handlers

import (
	"net/http"

	"github.com/sparadrap/pharmacie-api/domain"
	"github.com/sparadrap/pharmacie-api/logging"
	"github.com/sparadrap/pharmacie-api/store"
	"github.com/sparadrap/pharmacie-api/validation"
)

// doctorRequest is a doctor form submission. An empty specialty means a
// general practitioner.
type doctorRequest struct {
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	Street             string `json:"street"`
	ZipCode            string `json:"zipCode"`
	City               string `json:"city"`
	PhoneNumber        string `json:"phoneNumber"`
	Email              string `json:"email"`
	RegistrationNumber string `json:"registrationNumber"`
	Specialty          string `json:"specialty"`
}

func doctorFromRequest(req doctorRequest) (*domain.Doctor, fieldErrors) {
	fe := fieldErrors{}

	fe.check("firstName", validation.ValidateName(req.FirstName))
	fe.check("lastName", validation.ValidateName(req.LastName))
	fe.check("street", validation.ValidateStreet(req.Street))
	fe.check("zipCode", validation.ValidateZipCode(req.ZipCode))
	fe.check("city", validation.ValidateCity(req.City))
	fe.check("phoneNumber", validation.ValidatePhoneNumber(req.PhoneNumber))
	fe.check("email", validation.ValidateEmail(req.Email))
	fe.check("registrationNumber", validation.ValidateRegistrationNumber(req.RegistrationNumber))

	specialty := domain.Specialty(req.Specialty)
	fe.check("specialty", validation.ValidateSpecialty(specialty))

	if !fe.ok() {
		return nil, fe
	}

	return &domain.Doctor{
		Person: domain.Person{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			Address:     domain.Address{Street: req.Street, ZipCode: req.ZipCode, City: req.City},
			PhoneNumber: req.PhoneNumber,
			Email:       req.Email,
		},
		RegistrationNumber: req.RegistrationNumber,
		Specialty:          specialty,
	}, nil
}

// ListDoctors serves the doctor collection, filtered by the optional
// accent-insensitive ?search= term.
func ListDoctors(registry *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doctors := registry.Doctors.List()
		if term := r.URL.Query().Get("search"); term != "" {
			doctors = registry.Doctors.Search(term)
		}

		views := make([]*doctorView, 0, len(doctors))
		for _, d := range doctors {
			views = append(views, newDoctorView(d))
		}
		RespondWithJSON(w, http.StatusOK, views)
	}
}

// GetDoctor serves one doctor by ID.
func GetDoctor(registry *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r)
		if !ok {
			return
		}

		doctor, err := registry.Doctors.FindByID(id)
		if err != nil {
			notFoundOrError(w, err, "doctor")
			return
		}
		RespondWithJSON(w, http.StatusOK, newDoctorView(doctor))
	}
}

// CreateDoctor validates and stores a new doctor.
func CreateDoctor(registry *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req doctorRequest
		if !decodeBody(w, r, &req) {
			return
		}

		doctor, fe := doctorFromRequest(req)
		if !fe.ok() {
			fe.respond(w)
			return
		}

		registry.Doctors.Add(doctor)
		logging.Info("Doctor created", "id", doctor.ID, "name", doctor.FullName())
		RespondWithJSON(w, http.StatusCreated, newDoctorView(doctor))
	}
}

// UpdateDoctor validates and replaces an existing doctor.
func UpdateDoctor(registry *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r)
		if !ok {
			return
		}

		var req doctorRequest
		if !decodeBody(w, r, &req) {
			return
		}

		doctor, fe := doctorFromRequest(req)
		if !fe.ok() {
			fe.respond(w)
			return
		}

		if err := registry.Doctors.Update(id, doctor); err != nil {
			notFoundOrError(w, err, "doctor")
			return
		}
		logging.Info("Doctor updated", "id", id)
		RespondWithJSON(w, http.StatusOK, newDoctorView(doctor))
	}
}

// DeleteDoctor removes a doctor.
func DeleteDoctor(registry *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r)
		if !ok {
			return
		}

		if err := registry.Doctors.Remove(id); err != nil {
			notFoundOrError(w, err, "doctor")
			return
		}
		logging.Info("Doctor deleted", "id", id)
		w.WriteHeader(http.StatusNoContent)
	}
}
