package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Department is a French administrative department, identified by its code
// ("01" to "95", "2A"/"2B" for Corsica and "971"+ for overseas territories).
type Department string

var departmentNames = map[Department]string{
	"01":  "Ain",
	"02":  "Aisne",
	"03":  "Allier",
	"04":  "Alpes De Haute Provence",
	"05":  "Hautes Alpes",
	"06":  "Alpes Maritimes",
	"07":  "Ardeche",
	"08":  "Ardennes",
	"09":  "Ariege",
	"10":  "Aube",
	"11":  "Aude",
	"12":  "Aveyron",
	"13":  "Bouches Du Rhone",
	"14":  "Calvados",
	"15":  "Cantal",
	"16":  "Charente",
	"17":  "Charente Maritime",
	"18":  "Cher",
	"19":  "Correze",
	"2A":  "Corse Du Sud",
	"2B":  "Haute Corse",
	"21":  "Cote D Or",
	"22":  "Cotes D Armor",
	"23":  "Creuse",
	"24":  "Dordogne",
	"25":  "Doubs",
	"26":  "Drome",
	"27":  "Eure",
	"28":  "Eure Et Loir",
	"29":  "Finistere",
	"30":  "Gard",
	"31":  "Haute Garonne",
	"32":  "Gers",
	"33":  "Gironde",
	"34":  "Herault",
	"35":  "Ille Et Vilaine",
	"36":  "Indre",
	"37":  "Indre Et Loire",
	"38":  "Isere",
	"39":  "Jura",
	"40":  "Landes",
	"41":  "Loir Et Cher",
	"42":  "Loire",
	"43":  "Haute Loire",
	"44":  "Loire Atlantique",
	"45":  "Loiret",
	"46":  "Lot",
	"47":  "Lot Et Garonne",
	"48":  "Lozere",
	"49":  "Maine Et Loire",
	"50":  "Manche",
	"51":  "Marne",
	"52":  "Haute Marne",
	"53":  "Mayenne",
	"54":  "Meurthe Et Moselle",
	"55":  "Meuse",
	"56":  "Morbihan",
	"57":  "Moselle",
	"58":  "Nievre",
	"59":  "Nord",
	"60":  "Oise",
	"61":  "Orne",
	"62":  "Pas De Calais",
	"63":  "Puy De Dome",
	"64":  "Pyrenees Atlantiques",
	"65":  "Hautes Pyrenees",
	"66":  "Pyrenees Orientales",
	"67":  "Bas Rhin",
	"68":  "Haut Rhin",
	"69":  "Rhone",
	"70":  "Haute Saone",
	"71":  "Saone Et Loire",
	"72":  "Sarthe",
	"73":  "Savoie",
	"74":  "Haute Savoie",
	"75":  "Paris",
	"76":  "Seine Maritime",
	"77":  "Seine Et Marne",
	"78":  "Yvelines",
	"79":  "Deux Sevres",
	"80":  "Somme",
	"81":  "Tarn",
	"82":  "Tarn Et Garonne",
	"83":  "Var",
	"84":  "Vaucluse",
	"85":  "Vendee",
	"86":  "Vienne",
	"87":  "Haute Vienne",
	"88":  "Vosges",
	"89":  "Yonne",
	"90":  "Territoire De Belfort",
	"91":  "Essonne",
	"92":  "Hauts De Seine",
	"93":  "Seine Saint Denis",
	"94":  "Val De Marne",
	"95":  "Val D Oise",
	"971": "Guadeloupe",
	"972": "Martinique",
	"973": "Guyane",
	"974": "Reunion",
	"976": "Mayotte",
}

// Name returns the department display name, or an empty string for an
// unknown code.
func (d Department) Name() string {
	return departmentNames[d]
}

// IsValid reports whether the code belongs to the known department list.
func (d Department) IsValid() bool {
	_, ok := departmentNames[d]
	return ok
}

func (d Department) String() string {
	return string(d)
}

// ParseDepartment resolves a department from its code or its display name
// (case-insensitive). Returns an error when no department matches.
func ParseDepartment(s string) (Department, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", fmt.Errorf("department cannot be empty")
	}

	if d := Department(strings.ToUpper(trimmed)); d.IsValid() {
		return d, nil
	}

	for code, name := range departmentNames {
		if strings.EqualFold(name, trimmed) {
			return code, nil
		}
	}

	return "", fmt.Errorf("unknown department: %s", s)
}

// Departments returns all department codes in ascending code order.
func Departments() []Department {
	codes := make([]Department, 0, len(departmentNames))
	for code := range departmentNames {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
