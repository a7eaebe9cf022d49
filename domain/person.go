package domain

// Person is the field-set shared by customers and doctors. It is composed
// into both instead of being a base class.
type Person struct {
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Address     Address `json:"address"`
	PhoneNumber string  `json:"phoneNumber"`
	Email       string  `json:"email"`
}

// FullName returns "firstName lastName", the display name used by
// name-based repository lookups.
func (p Person) FullName() string {
	return p.FirstName + " " + p.LastName
}
