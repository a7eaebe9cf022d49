package domain

import (
	"fmt"
	"strings"
)

// MedicationCategory is the closed enumeration of medication categories.
type MedicationCategory string

const (
	CategoryAnalgesique       MedicationCategory = "Analgésique"
	CategoryAntiInflammatoire MedicationCategory = "Anti-inflammatoire"
	CategoryAntiviral         MedicationCategory = "Antiviral"
	CategoryAntibiotique      MedicationCategory = "Antibiotique"
	CategoryVaccin            MedicationCategory = "Vaccin"
	CategoryAntidepresseur    MedicationCategory = "Antidépresseur"
	CategoryAntihistaminique  MedicationCategory = "Antihistaminique"
	CategoryDiuretique        MedicationCategory = "Diurétique"
	CategoryAntifongique      MedicationCategory = "Antifongique"
	CategoryAntipyretique     MedicationCategory = "Antipyrétique"
	CategoryAntihypertenseur  MedicationCategory = "Antihypertenseur"
	CategoryAntidiabetique    MedicationCategory = "Antidiabétique"
	CategoryAntihelmintique   MedicationCategory = "Antihelmintique"
	CategoryBronchodilatateur MedicationCategory = "Bronchodilatateur"
	CategoryCorticosteroide   MedicationCategory = "Corticostéroïde"
	CategoryImmunosuppresseur MedicationCategory = "Immunosuppresseur"
	CategoryLaxatif           MedicationCategory = "Laxatif"
	CategorySedatif           MedicationCategory = "Sédatif"
	CategoryStatine           MedicationCategory = "Statine"
	CategoryVasodilatateur    MedicationCategory = "Vasodilatateur"
)

var medicationCategories = []MedicationCategory{
	CategoryAnalgesique,
	CategoryAntiInflammatoire,
	CategoryAntiviral,
	CategoryAntibiotique,
	CategoryVaccin,
	CategoryAntidepresseur,
	CategoryAntihistaminique,
	CategoryDiuretique,
	CategoryAntifongique,
	CategoryAntipyretique,
	CategoryAntihypertenseur,
	CategoryAntidiabetique,
	CategoryAntihelmintique,
	CategoryBronchodilatateur,
	CategoryCorticosteroide,
	CategoryImmunosuppresseur,
	CategoryLaxatif,
	CategorySedatif,
	CategoryStatine,
	CategoryVasodilatateur,
}

// IsValid reports whether the category belongs to the closed enumeration.
func (c MedicationCategory) IsValid() bool {
	for _, known := range medicationCategories {
		if c == known {
			return true
		}
	}
	return false
}

func (c MedicationCategory) String() string {
	return string(c)
}

// ParseMedicationCategory resolves a category from its display name,
// case-insensitive.
func ParseMedicationCategory(input string) (MedicationCategory, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", fmt.Errorf("medication category cannot be empty")
	}

	for _, known := range medicationCategories {
		if strings.EqualFold(string(known), trimmed) {
			return known, nil
		}
	}

	return "", fmt.Errorf("unknown medication category: %s", input)
}

// MedicationCategories returns the closed category list in declaration order.
func MedicationCategories() []MedicationCategory {
	out := make([]MedicationCategory, len(medicationCategories))
	copy(out, medicationCategories)
	return out
}
