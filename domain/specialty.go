package domain

import (
	"fmt"
	"strings"
)

// Specialty is a medical specialty tag carried by prescribers. The zero
// value SpecialtyGenerale marks a general practitioner; any other value
// makes the doctor a specialist.
type Specialty string

const (
	SpecialtyGenerale          Specialty = "Générale"
	SpecialtyCardiologie       Specialty = "Cardiologie"
	SpecialtyDermatologie      Specialty = "Dermatologie"
	SpecialtyGynecologie       Specialty = "Gynécologie"
	SpecialtyNeurologie        Specialty = "Neurologie"
	SpecialtyPediatrie         Specialty = "Pédiatrie"
	SpecialtyRadiologie        Specialty = "Radiologie"
	SpecialtyOrthopedie        Specialty = "Orthopédie"
	SpecialtyPsychiatrie       Specialty = "Psychiatrie"
	SpecialtyOncologie         Specialty = "Oncologie"
	SpecialtyOphtalmologie     Specialty = "Ophtalmologie"
	SpecialtyGastroenterologie Specialty = "Gastroentérologie"
	SpecialtyEndocrinologie    Specialty = "Endocrinologie"
	SpecialtyRhumatologie      Specialty = "Rhumatologie"
	SpecialtyPneumologie       Specialty = "Pneumologie"
	SpecialtyUrologie          Specialty = "Urologie"
	SpecialtyNephrologie       Specialty = "Néphrologie"
	SpecialtyHematologie       Specialty = "Hématologie"
	SpecialtyImmunologie       Specialty = "Immunologie"
	SpecialtyGerontologie      Specialty = "Gérontologie"
	SpecialtyInfectiologie     Specialty = "Infectiologie"
	SpecialtyAnesthesiologie   Specialty = "Anesthésiologie"
)

var specialties = []Specialty{
	SpecialtyGenerale,
	SpecialtyCardiologie,
	SpecialtyDermatologie,
	SpecialtyGynecologie,
	SpecialtyNeurologie,
	SpecialtyPediatrie,
	SpecialtyRadiologie,
	SpecialtyOrthopedie,
	SpecialtyPsychiatrie,
	SpecialtyOncologie,
	SpecialtyOphtalmologie,
	SpecialtyGastroenterologie,
	SpecialtyEndocrinologie,
	SpecialtyRhumatologie,
	SpecialtyPneumologie,
	SpecialtyUrologie,
	SpecialtyNephrologie,
	SpecialtyHematologie,
	SpecialtyImmunologie,
	SpecialtyGerontologie,
	SpecialtyInfectiologie,
	SpecialtyAnesthesiologie,
}

// IsValid reports whether the specialty belongs to the closed enumeration.
// The empty string is accepted as an alias for SpecialtyGenerale.
func (s Specialty) IsValid() bool {
	if s == "" {
		return true
	}
	for _, known := range specialties {
		if s == known {
			return true
		}
	}
	return false
}

func (s Specialty) String() string {
	if s == "" {
		return string(SpecialtyGenerale)
	}
	return string(s)
}

// ParseSpecialty resolves a specialty from its display name,
// case-insensitive. An empty input resolves to SpecialtyGenerale.
func ParseSpecialty(input string) (Specialty, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return SpecialtyGenerale, nil
	}

	for _, known := range specialties {
		if strings.EqualFold(string(known), trimmed) {
			return known, nil
		}
	}

	return "", fmt.Errorf("unknown specialty: %s", input)
}

// Specialties returns the closed list of specialties in declaration order.
func Specialties() []Specialty {
	out := make([]Specialty, len(specialties))
	copy(out, specialties)
	return out
}
