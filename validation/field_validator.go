// Package validation provides the pure field validators used before any
// entity submission is accepted. Every function maps a raw value to nil
// (accepted) or an error carrying the rejection reason; none of them
// panics or mutates its input. Handlers aggregate all applicable results
// and block the whole submission if any rejects.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sparadrap/pharmacie-api/domain"
)

// Pre-compiled patterns, built once at package initialization.
var (
	// Permissive name pattern: letters with accents, digits, spaces,
	// hyphens and apostrophes, 2 to 50 characters.
	nameRegex = regexp.MustCompile(`^[\p{L}0-9' -]{2,50}$`)

	zipCodeRegex = regexp.MustCompile(`^\d{5}$`)

	// Optional +<1-3 digit> country prefix, then exactly 10 digits.
	phoneRegex = regexp.MustCompile(`^(\+\d{1,3}[- ]?)?\d{10}$`)

	emailRegex = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.[a-zA-Z]{2,}$`)

	digitsOnlyRegex = regexp.MustCompile(`^\d+$`)
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidateName validates person, city-like and product names.
func ValidateName(s string) error {
	if isBlank(s) {
		return fmt.Errorf("name cannot be empty")
	}
	if !nameRegex.MatchString(s) {
		return fmt.Errorf("name is invalid")
	}
	return nil
}

// ValidateStreet validates a street line.
func ValidateStreet(s string) error {
	if isBlank(s) {
		return fmt.Errorf("street cannot be empty")
	}
	if len(s) < 5 {
		return fmt.Errorf("street must have at least 5 characters")
	}
	return nil
}

// ValidateZipCode validates a 5-digit French postal code.
func ValidateZipCode(s string) error {
	if isBlank(s) {
		return fmt.Errorf("zip code cannot be empty")
	}
	if !zipCodeRegex.MatchString(s) {
		return fmt.Errorf("zip code is invalid")
	}
	return nil
}

// ValidateCity validates a city name against the name pattern.
func ValidateCity(s string) error {
	if isBlank(s) {
		return fmt.Errorf("city cannot be empty")
	}
	if !nameRegex.MatchString(s) {
		return fmt.Errorf("city is invalid")
	}
	return nil
}

// ValidatePhoneNumber validates a 10-digit phone number with an optional
// international prefix.
func ValidatePhoneNumber(s string) error {
	if isBlank(s) {
		return fmt.Errorf("phone number cannot be empty")
	}
	if !phoneRegex.MatchString(s) {
		return fmt.Errorf("phone number is invalid")
	}
	return nil
}

// ValidateEmail validates a local@domain.tld address with a 2+ letter TLD.
func ValidateEmail(s string) error {
	if isBlank(s) {
		return fmt.Errorf("email cannot be empty")
	}
	if !emailRegex.MatchString(s) {
		return fmt.Errorf("email is invalid")
	}
	return nil
}

// SocialSecurityKey computes the 2-digit control key for the first 13
// digits of a French social security number: 97 - (n mod 97), with 97
// mapped to 0. The result is always in [0, 96].
func SocialSecurityKey(first13 string) (int, error) {
	if len(first13) != 13 || !digitsOnlyRegex.MatchString(first13) {
		return -1, fmt.Errorf("social security prefix must have 13 digits")
	}

	n, err := strconv.ParseInt(first13, 10, 64)
	if err != nil {
		return -1, fmt.Errorf("social security prefix is invalid: %w", err)
	}

	key := 97 - int(n%97)
	if key == 97 {
		key = 0
	}
	return key, nil
}

// ValidateSocialSecurityNumber validates a 15-digit social security
// number: 13 digits plus the 2-digit control key.
func ValidateSocialSecurityNumber(s string) error {
	if isBlank(s) {
		return fmt.Errorf("social security number cannot be empty")
	}

	// Spaces inside the number are tolerated on input.
	cleaned := strings.ReplaceAll(s, " ", "")
	if len(cleaned) != 15 || !digitsOnlyRegex.MatchString(cleaned) {
		return fmt.Errorf("social security number must have 15 digits")
	}

	expected, err := SocialSecurityKey(cleaned[:13])
	if err != nil {
		return fmt.Errorf("social security number is invalid")
	}

	provided, err := strconv.Atoi(cleaned[13:])
	if err != nil {
		return fmt.Errorf("social security number is invalid")
	}

	if provided != expected {
		return fmt.Errorf("social security key is invalid")
	}
	return nil
}

// ValidateBirthDate requires a customer to be an adult: the birth date
// must be strictly before today minus 18 years. The comparison is at
// date granularity, so the result does not depend on the time of day.
func ValidateBirthDate(birthDate time.Time) error {
	if birthDate.IsZero() {
		return fmt.Errorf("birth date cannot be empty")
	}
	now := time.Now()
	cutoff := time.Date(now.Year()-18, now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if !birthDate.Before(cutoff) {
		return fmt.Errorf("customer must be over 18 years old")
	}
	return nil
}

// ValidateRegistrationNumber validates an 11-digit doctor registration
// number.
func ValidateRegistrationNumber(s string) error {
	if isBlank(s) {
		return fmt.Errorf("registration number cannot be empty")
	}
	if len(s) != 11 || !digitsOnlyRegex.MatchString(s) {
		return fmt.Errorf("registration number must have 11 digits")
	}
	return nil
}

// ValidateQuantity validates a raw quantity field as a positive integer.
func ValidateQuantity(s string) error {
	if isBlank(s) {
		return fmt.Errorf("quantity cannot be empty")
	}
	qty, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("quantity must be a valid number")
	}
	if qty <= 0 {
		return fmt.Errorf("quantity must be a positive number")
	}
	return nil
}

// ValidatePrice validates a raw price field as a non-negative decimal.
func ValidatePrice(s string) error {
	if isBlank(s) {
		return fmt.Errorf("price cannot be empty")
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("price must be a valid number")
	}
	if price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	return nil
}

// ValidateReimbursementRate validates a raw rate field as a decimal
// percentage in [0, 100].
func ValidateReimbursementRate(s string) error {
	if isBlank(s) {
		return fmt.Errorf("reimbursement rate cannot be empty")
	}
	rate, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("reimbursement rate must be a valid number")
	}
	if rate < 0 || rate > 100 {
		return fmt.Errorf("reimbursement rate must be between 0 and 100")
	}
	return nil
}

// ValidateLaunchDate rejects empty or future launch dates.
func ValidateLaunchDate(launchDate time.Time) error {
	if launchDate.IsZero() {
		return fmt.Errorf("launch date cannot be empty")
	}
	if launchDate.After(time.Now()) {
		return fmt.Errorf("launch date cannot be in the future")
	}
	return nil
}

// ValidatePrescriptionDate rejects empty or future prescription dates.
func ValidatePrescriptionDate(prescriptionDate time.Time) error {
	if prescriptionDate.IsZero() {
		return fmt.Errorf("prescription date cannot be empty")
	}
	if prescriptionDate.After(time.Now()) {
		return fmt.Errorf("prescription date cannot be in the future")
	}
	return nil
}

// ValidateBasket rejects an empty basket and any non-positive quantity.
func ValidateBasket(basket []domain.BasketLine) error {
	if len(basket) == 0 {
		return fmt.Errorf("basket cannot be empty")
	}
	for _, line := range basket {
		if line.Medication == nil {
			return fmt.Errorf("basket entry is missing its medication")
		}
		if line.Quantity <= 0 {
			return fmt.Errorf("basket quantity must be positive")
		}
	}
	return nil
}

// Required-reference checks for form selections.

// ValidateCustomerRef rejects a missing customer selection.
func ValidateCustomerRef(c *domain.Customer) error {
	if c == nil {
		return fmt.Errorf("a customer must be selected")
	}
	return nil
}

// ValidateDoctorRef rejects a missing prescriber selection.
func ValidateDoctorRef(d *domain.Doctor) error {
	if d == nil {
		return fmt.Errorf("a prescriber must be selected")
	}
	return nil
}

// ValidateMutualRef rejects a missing mutual selection.
func ValidateMutualRef(m *domain.Mutual) error {
	if m == nil {
		return fmt.Errorf("a mutual must be selected")
	}
	return nil
}

// ValidateCategory rejects categories outside the closed enumeration.
func ValidateCategory(c domain.MedicationCategory) error {
	if c == "" {
		return fmt.Errorf("a category must be selected")
	}
	if !c.IsValid() {
		return fmt.Errorf("unknown medication category: %s", c)
	}
	return nil
}

// ValidateDepartment rejects department codes outside the known list.
func ValidateDepartment(d domain.Department) error {
	if d == "" {
		return fmt.Errorf("a department must be selected")
	}
	if !d.IsValid() {
		return fmt.Errorf("unknown department: %s", d)
	}
	return nil
}

// ValidateSpecialty rejects specialties outside the closed enumeration.
// The empty value is accepted and means general practice.
func ValidateSpecialty(s domain.Specialty) error {
	if !s.IsValid() {
		return fmt.Errorf("unknown specialty: %s", s)
	}
	return nil
}
