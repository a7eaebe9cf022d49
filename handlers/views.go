package handlers

import (
	"sort"

	"github.com/google/uuid"

	"github.com/sparadrap/pharmacie-api/domain"
)

// View types rendered to clients. Dates are formatted dd/MM/yyyy and
// every monetary amount carries a formatted display string next to the
// raw value.

type departmentView struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type mutualView struct {
	ID                uuid.UUID      `json:"id"`
	Name              string         `json:"name"`
	Address           domain.Address `json:"address"`
	Department        departmentView `json:"department"`
	PhoneNumber       string         `json:"phoneNumber"`
	Email             string         `json:"email"`
	ReimbursementRate float64        `json:"reimbursementRate"`
}

type doctorView struct {
	ID                 uuid.UUID      `json:"id"`
	FirstName          string         `json:"firstName"`
	LastName           string         `json:"lastName"`
	Address            domain.Address `json:"address"`
	PhoneNumber        string         `json:"phoneNumber"`
	Email              string         `json:"email"`
	RegistrationNumber string         `json:"registrationNumber"`
	Specialty          string         `json:"specialty"`
	Specialist         bool           `json:"specialist"`
}

type customerView struct {
	ID                   uuid.UUID      `json:"id"`
	FirstName            string         `json:"firstName"`
	LastName             string         `json:"lastName"`
	Address              domain.Address `json:"address"`
	PhoneNumber          string         `json:"phoneNumber"`
	Email                string         `json:"email"`
	SocialSecurityNumber string         `json:"socialSecurityNumber"`
	BirthDate            string         `json:"birthDate"`
	Mutual               *mutualView    `json:"mutual,omitempty"`
	ReferringDoctor      *doctorView    `json:"referringDoctor,omitempty"`
}

type medicationView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Price        float64   `json:"price"`
	PriceDisplay string    `json:"priceDisplay"`
	Quantity     int       `json:"quantity"`
	StockValue   float64   `json:"stockValue"`
	LaunchDate   string    `json:"launchDate"`
}

type prescriptionView struct {
	ID          uuid.UUID        `json:"id"`
	Date        string           `json:"date"`
	Doctor      *doctorView      `json:"doctor"`
	Patient     *customerView    `json:"patient"`
	Specialty   string           `json:"specialty"`
	Medications []medicationView `json:"medications"`
}

type basketLineView struct {
	Medication       medicationView `json:"medication"`
	Quantity         int            `json:"quantity"`
	LineTotal        float64        `json:"lineTotal"`
	LineTotalDisplay string         `json:"lineTotalDisplay"`
}

type purchaseView struct {
	ID                uuid.UUID        `json:"id"`
	Type              string           `json:"type"`
	PurchaseDate      string           `json:"purchaseDate"`
	Customer          *customerView    `json:"customer,omitempty"`
	PrescribingDoctor *doctorView      `json:"prescribingDoctor,omitempty"`
	PrescriptionDate  string           `json:"prescriptionDate,omitempty"`
	Basket            []basketLineView `json:"basket"`
	BasketSize        int              `json:"basketSize"`
	TotalAmount       float64          `json:"totalAmount"`
	TotalDisplay      string           `json:"totalDisplay"`
	ReimbursedAmount  float64          `json:"reimbursedAmount"`
	ReimbursedDisplay string           `json:"reimbursedDisplay"`
	NetAmount         float64          `json:"netAmount"`
	NetDisplay        string           `json:"netDisplay"`
}

func newMutualView(m *domain.Mutual) *mutualView {
	if m == nil {
		return nil
	}
	return &mutualView{
		ID:      m.ID,
		Name:    m.Name,
		Address: m.Address,
		Department: departmentView{
			Code: m.Department.String(),
			Name: m.Department.Name(),
		},
		PhoneNumber:       m.PhoneNumber,
		Email:             m.Email,
		ReimbursementRate: m.ReimbursementRate,
	}
}

func newDoctorView(d *domain.Doctor) *doctorView {
	if d == nil {
		return nil
	}
	specialty := d.Specialty
	if specialty == "" {
		specialty = domain.SpecialtyGenerale
	}
	return &doctorView{
		ID:                 d.ID,
		FirstName:          d.FirstName,
		LastName:           d.LastName,
		Address:            d.Address,
		PhoneNumber:        d.PhoneNumber,
		Email:              d.Email,
		RegistrationNumber: d.RegistrationNumber,
		Specialty:          string(specialty),
		Specialist:         d.IsSpecialist(),
	}
}

func newCustomerView(c *domain.Customer) *customerView {
	if c == nil {
		return nil
	}
	return &customerView{
		ID:                   c.ID,
		FirstName:            c.FirstName,
		LastName:             c.LastName,
		Address:              c.Address,
		PhoneNumber:          c.PhoneNumber,
		Email:                c.Email,
		SocialSecurityNumber: c.SocialSecurityNumber,
		BirthDate:            domain.FormatDate(c.BirthDate),
		Mutual:               newMutualView(c.Mutual),
		ReferringDoctor:      newDoctorView(c.ReferringDoctor),
	}
}

func newMedicationView(m *domain.Medication) medicationView {
	return medicationView{
		ID:           m.ID,
		Name:         m.Name,
		Category:     string(m.Category),
		Price:        m.Price,
		PriceDisplay: domain.FormatAmount(m.Price),
		Quantity:     m.Quantity,
		StockValue:   m.StockValue(),
		LaunchDate:   domain.FormatDate(m.LaunchDate),
	}
}

func newPrescriptionView(p *domain.Prescription) prescriptionView {
	medications := make([]medicationView, 0, len(p.Medications))
	for _, m := range p.Medications {
		medications = append(medications, newMedicationView(m))
	}
	return prescriptionView{
		ID:          p.ID,
		Date:        domain.FormatDate(p.Date),
		Doctor:      newDoctorView(p.Doctor),
		Patient:     newCustomerView(p.Patient),
		Specialty:   string(p.Specialty()),
		Medications: medications,
	}
}

func newPurchaseView(p *domain.Purchase) purchaseView {
	lines := p.Basket()
	// Basket iteration order is unspecified; render by medication name.
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Medication.Name < lines[j].Medication.Name
	})
	basket := make([]basketLineView, 0, len(lines))
	for _, line := range lines {
		lineTotal := line.Medication.Price * float64(line.Quantity)
		basket = append(basket, basketLineView{
			Medication:       newMedicationView(line.Medication),
			Quantity:         line.Quantity,
			LineTotal:        lineTotal,
			LineTotalDisplay: domain.FormatAmount(lineTotal),
		})
	}

	total := p.TotalAmount()
	reimbursed := p.ReimbursedAmount()
	net := p.NetAmount()

	return purchaseView{
		ID:                p.ID,
		Type:              p.Type(),
		PurchaseDate:      domain.FormatDate(p.PurchaseDate),
		Customer:          newCustomerView(p.Customer),
		PrescribingDoctor: newDoctorView(p.PrescribingDoctor),
		PrescriptionDate:  domain.FormatDate(p.PrescriptionDate),
		Basket:            basket,
		BasketSize:        p.BasketSize(),
		TotalAmount:       total,
		TotalDisplay:      domain.FormatAmount(total),
		ReimbursedAmount:  reimbursed,
		ReimbursedDisplay: domain.FormatAmount(reimbursed),
		NetAmount:         net,
		NetDisplay:        domain.FormatAmount(net),
	}
}
