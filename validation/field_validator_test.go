package validation

import (
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/sparadrap/pharmacie-api/domain"
)

func TestValidateName(t *testing.T) {
	valid := []string{"Marie", "Jean-Pierre", "O'Neil", "Aésio Santé", "Doliprane 500"}
	for _, s := range valid {
		if err := ValidateName(s); err != nil {
			t.Errorf("Expected %q to be accepted, got %v", s, err)
		}
	}

	invalid := []string{"", "  ", "A", "name@with!chars"}
	for _, s := range invalid {
		if err := ValidateName(s); err == nil {
			t.Errorf("Expected %q to be rejected", s)
		}
	}
}

func TestValidateStreet(t *testing.T) {
	if err := ValidateStreet("12 rue de la Paix"); err != nil {
		t.Errorf("Expected street to be accepted, got %v", err)
	}
	for _, s := range []string{"", "   ", "1 ru"} {
		if err := ValidateStreet(s); err == nil {
			t.Errorf("Expected %q to be rejected", s)
		}
	}
}

func TestValidateZipCode(t *testing.T) {
	if err := ValidateZipCode("75002"); err != nil {
		t.Errorf("Expected 75002 to be accepted, got %v", err)
	}
	for _, s := range []string{"", "7500", "750020", "75O02", "75 02"} {
		if err := ValidateZipCode(s); err == nil {
			t.Errorf("Expected %q to be rejected", s)
		}
	}
}

func TestValidatePhoneNumber(t *testing.T) {
	valid := []string{"0612345678", "+33612345678", "+33 0612345678", "+1-0612345678"}
	for _, s := range valid {
		if err := ValidatePhoneNumber(s); err != nil {
			t.Errorf("Expected %q to be accepted, got %v", s, err)
		}
	}

	invalid := []string{"", "061234567", "06123456789", "06 12 34 56 78", "abcdefghij"}
	for _, s := range invalid {
		if err := ValidatePhoneNumber(s); err == nil {
			t.Errorf("Expected %q to be rejected", s)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"marie@example.com", "jean.dupont@cabinet-medical.fr", "a_b@x.io"}
	for _, s := range valid {
		if err := ValidateEmail(s); err != nil {
			t.Errorf("Expected %q to be accepted, got %v", s, err)
		}
	}

	invalid := []string{"", "marie", "marie@", "@example.com", "marie@example", "marie@example.c"}
	for _, s := range invalid {
		if err := ValidateEmail(s); err == nil {
			t.Errorf("Expected %q to be rejected", s)
		}
	}
}

func TestSocialSecurityKeyRange(t *testing.T) {
	// The control key is always in [0, 96] whatever the prefix.
	prefixes := []string{
		"1920734098123",
		"2830675098256",
		"0000000000000",
		"9999999999999",
		"1000000000096",
	}

	for _, prefix := range prefixes {
		key, err := SocialSecurityKey(prefix)
		if err != nil {
			t.Fatalf("SocialSecurityKey(%s) failed: %v", prefix, err)
		}
		if key < 0 || key > 96 {
			t.Errorf("Key for %s out of range: %d", prefix, key)
		}
	}
}

func TestSocialSecurityKeyKnownValue(t *testing.T) {
	// 97 - (1920734098123 mod 97) = 12
	key, err := SocialSecurityKey("1920734098123")
	if err != nil {
		t.Fatalf("SocialSecurityKey failed: %v", err)
	}
	if key != 12 {
		t.Errorf("Expected key 12, got %d", key)
	}
}

func TestSocialSecurityKeyRejectsBadPrefix(t *testing.T) {
	for _, prefix := range []string{"", "123", "12345678901234", "12a3456789012"} {
		if _, err := SocialSecurityKey(prefix); err == nil {
			t.Errorf("Expected prefix %q to be rejected", prefix)
		}
	}
}

func TestValidateSocialSecurityNumberRoundTrip(t *testing.T) {
	// Build numbers with the computed key; they must all validate.
	prefixes := []string{"1920734098123", "2830675098256", "1700234567890"}

	for _, prefix := range prefixes {
		key, err := SocialSecurityKey(prefix)
		if err != nil {
			t.Fatal(err)
		}
		full := prefix + fmt.Sprintf("%02d", key)
		if err := ValidateSocialSecurityNumber(full); err != nil {
			t.Errorf("Expected %s to validate, got %v", full, err)
		}

		// Any other key must fail.
		wrongKey := (key + 1) % 97
		wrong := prefix + fmt.Sprintf("%02d", wrongKey)
		if err := ValidateSocialSecurityNumber(wrong); err == nil {
			t.Errorf("Expected %s to be rejected", wrong)
		}
	}
}

func TestValidateSocialSecurityNumberFormat(t *testing.T) {
	invalid := []string{"", "12345", "1234567890123456", "1a2073409812312"}
	for _, s := range invalid {
		if err := ValidateSocialSecurityNumber(s); err == nil {
			t.Errorf("Expected %q to be rejected", s)
		}
	}

	// Spaces inside the number are tolerated.
	key, _ := SocialSecurityKey("1920734098123")
	spaced := "1 92 07 34 098 123 " + fmt.Sprintf("%02d", key)
	if err := ValidateSocialSecurityNumber(spaced); err != nil {
		t.Errorf("Expected spaced number to validate, got %v", err)
	}
}

func TestValidateBirthDate(t *testing.T) {
	if err := ValidateBirthDate(time.Time{}); err == nil {
		t.Error("Expected zero birth date to be rejected")
	}

	adult := time.Now().AddDate(-30, 0, 0)
	if err := ValidateBirthDate(adult); err != nil {
		t.Errorf("Expected adult birth date to be accepted, got %v", err)
	}

	minor := time.Now().AddDate(-17, 0, 0)
	if err := ValidateBirthDate(minor); err == nil {
		t.Error("Expected minor birth date to be rejected")
	}
}

func TestValidateBirthDateCutoffIsDateGranular(t *testing.T) {
	now := time.Now()

	// An 18th birthday today is rejected whatever the stored time of
	// day, midnight included.
	exactly18 := time.Date(now.Year()-18, now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if err := ValidateBirthDate(exactly18); err == nil {
		t.Error("Expected exact-18 birth date at midnight to be rejected")
	}
	if err := ValidateBirthDate(exactly18.Add(23 * time.Hour)); err == nil {
		t.Error("Expected exact-18 birth date late in the day to be rejected")
	}

	// One day past the 18th birthday is accepted.
	if err := ValidateBirthDate(exactly18.AddDate(0, 0, -1)); err != nil {
		t.Errorf("Expected 18-years-and-a-day birth date to be accepted, got %v", err)
	}
}

func TestValidateRegistrationNumber(t *testing.T) {
	if err := ValidateRegistrationNumber("10123456789"); err != nil {
		t.Errorf("Expected 11-digit number to be accepted, got %v", err)
	}
	for _, s := range []string{"", "1012345678", "101234567890", "1012345678a"} {
		if err := ValidateRegistrationNumber(s); err == nil {
			t.Errorf("Expected %q to be rejected", s)
		}
	}
}

func TestValidateQuantity(t *testing.T) {
	valid := []string{"1", "42", "1000", " 3 "}
	for _, s := range valid {
		if err := ValidateQuantity(s); err != nil {
			t.Errorf("Expected %q to be accepted, got %v", s, err)
		}
	}

	invalid := []string{"", "  ", "0", "-1", "abc", "1.5"}
	for _, s := range invalid {
		if err := ValidateQuantity(s); err == nil {
			t.Errorf("Expected %q to be rejected", s)
		}
	}
}

func TestValidatePrice(t *testing.T) {
	valid := []string{"0", "2.50", "1000", " 7.5 "}
	for _, s := range valid {
		if err := ValidatePrice(s); err != nil {
			t.Errorf("Expected %q to be accepted, got %v", s, err)
		}
	}

	invalid := []string{"", "-0.01", "abc", "2,50"}
	for _, s := range invalid {
		if err := ValidatePrice(s); err == nil {
			t.Errorf("Expected %q to be rejected", s)
		}
	}
}

func TestValidateReimbursementRate(t *testing.T) {
	for _, s := range []string{"0", "80", "100", "62.5"} {
		if err := ValidateReimbursementRate(s); err != nil {
			t.Errorf("Expected %q to be accepted, got %v", s, err)
		}
	}
	for _, s := range []string{"", "-1", "100.01", "abc"} {
		if err := ValidateReimbursementRate(s); err == nil {
			t.Errorf("Expected %q to be rejected", s)
		}
	}
}

func TestValidateDates(t *testing.T) {
	past := time.Now().AddDate(0, -1, 0)
	future := time.Now().AddDate(0, 1, 0)

	if err := ValidateLaunchDate(past); err != nil {
		t.Errorf("Expected past launch date to be accepted, got %v", err)
	}
	if err := ValidateLaunchDate(future); err == nil {
		t.Error("Expected future launch date to be rejected")
	}
	if err := ValidateLaunchDate(time.Time{}); err == nil {
		t.Error("Expected zero launch date to be rejected")
	}

	if err := ValidatePrescriptionDate(past); err != nil {
		t.Errorf("Expected past prescription date to be accepted, got %v", err)
	}
	if err := ValidatePrescriptionDate(future); err == nil {
		t.Error("Expected future prescription date to be rejected")
	}
}

func TestValidateBasket(t *testing.T) {
	med := &domain.Medication{Name: "Paracétamol", Price: 2.50}

	if err := ValidateBasket(nil); err == nil {
		t.Error("Expected empty basket to be rejected")
	}
	if err := ValidateBasket([]domain.BasketLine{{Medication: nil, Quantity: 1}}); err == nil {
		t.Error("Expected nil medication to be rejected")
	}
	if err := ValidateBasket([]domain.BasketLine{{Medication: med, Quantity: 0}}); err == nil {
		t.Error("Expected zero quantity to be rejected")
	}
	if err := ValidateBasket([]domain.BasketLine{{Medication: med, Quantity: 2}}); err != nil {
		t.Errorf("Expected valid basket to be accepted, got %v", err)
	}
}

func TestValidateRefs(t *testing.T) {
	if err := ValidateCustomerRef(nil); err == nil {
		t.Error("Expected nil customer to be rejected")
	}
	if err := ValidateCustomerRef(&domain.Customer{}); err != nil {
		t.Errorf("Expected customer to be accepted, got %v", err)
	}

	if err := ValidateDoctorRef(nil); err == nil {
		t.Error("Expected nil doctor to be rejected")
	}
	if err := ValidateMutualRef(nil); err == nil {
		t.Error("Expected nil mutual to be rejected")
	}
}

func TestValidateEnums(t *testing.T) {
	if err := ValidateCategory(domain.CategoryVaccin); err != nil {
		t.Errorf("Expected known category to be accepted, got %v", err)
	}
	if err := ValidateCategory(""); err == nil {
		t.Error("Expected empty category to be rejected")
	}
	if err := ValidateCategory("Potion"); err == nil {
		t.Error("Expected unknown category to be rejected")
	}

	if err := ValidateDepartment("75"); err != nil {
		t.Errorf("Expected known department to be accepted, got %v", err)
	}
	if err := ValidateDepartment("00"); err == nil {
		t.Error("Expected unknown department to be rejected")
	}

	if err := ValidateSpecialty(""); err != nil {
		t.Errorf("Expected empty specialty to be accepted, got %v", err)
	}
	if err := ValidateSpecialty("Alchimie"); err == nil {
		t.Error("Expected unknown specialty to be rejected")
	}
}

func TestSocialSecurityKey97MapsToZero(t *testing.T) {
	// Find a prefix with n mod 97 == 0, whose key is then 0 (not 97).
	base, _ := strconv.ParseInt("1000000000000", 10, 64)
	rem := base % 97
	n := base + (97 - rem)
	prefix := strconv.FormatInt(n, 10)

	key, err := SocialSecurityKey(prefix)
	if err != nil {
		t.Fatalf("SocialSecurityKey(%s) failed: %v", prefix, err)
	}
	if key != 0 {
		t.Errorf("Expected key 0 for prefix %s, got %d", prefix, key)
	}
}
