package store

import (
	"time"

	"github.com/sparadrap/pharmacie-api/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

// Seed loads the fixture data set: five mutuals, seven prescribers (five
// general practitioners, two specialists), eight customers, five
// medications, two prescriptions and four purchases. The original fixture
// social security numbers carried invalid control keys; the seeds below
// use the recomputed keys so every seeded customer passes validation.
func (r *Registry) Seed() error {
	mgen := &domain.Mutual{
		Name:              "Mutuelle MGEN",
		Address:           domain.Address{Street: "3 Square Max Hymans", ZipCode: "75748", City: "Paris"},
		Department:        "75",
		PhoneNumber:       "0140621220",
		Email:             "contact@mgen.fr",
		ReimbursementRate: 80.0,
	}
	harmonie := &domain.Mutual{
		Name:              "Mutuelle Harmonie",
		Address:           domain.Address{Street: "143 Rue Blomet", ZipCode: "75015", City: "Paris"},
		Department:        "75",
		PhoneNumber:       "0144885555",
		Email:             "contact@harmonie.fr",
		ReimbursementRate: 85.0,
	}
	macif := &domain.Mutual{
		Name:              "Mutuelle MACIF",
		Address:           domain.Address{Street: "17-21 Place Etienne Pernet", ZipCode: "75015", City: "Paris"},
		Department:        "75",
		PhoneNumber:       "0970809809",
		Email:             "contact@macif.fr",
		ReimbursementRate: 78.0,
	}
	ag2r := &domain.Mutual{
		Name:              "Mutuelle AG2R La Mondiale",
		Address:           domain.Address{Street: "104-110 Boulevard Haussmann", ZipCode: "75008", City: "Paris"},
		Department:        "75",
		PhoneNumber:       "0144218800",
		Email:             "contact@ag2rlamondiale.fr",
		ReimbursementRate: 82.0,
	}
	aesio := &domain.Mutual{
		Name:              "Mutuelle AÉSIO",
		Address:           domain.Address{Street: "37 Rue de Villeneuve", ZipCode: "94200", City: "Ivry-sur-Seine"},
		Department:        "94",
		PhoneNumber:       "0149225000",
		Email:             "contact@aesio.fr",
		ReimbursementRate: 88.0,
	}
	for _, m := range []*domain.Mutual{mgen, harmonie, macif, ag2r, aesio} {
		r.Mutuals.Add(m)
	}

	martin := &domain.Doctor{
		Person: domain.Person{
			FirstName:   "Bernard",
			LastName:    "Martin",
			Address:     domain.Address{Street: "10 rue de la Santé", ZipCode: "75001", City: "Paris"},
			PhoneNumber: "0612345678",
			Email:       "bernard.martin@example.com",
		},
		RegistrationNumber: "10123456789",
	}
	dupuis := &domain.Doctor{
		Person: domain.Person{
			FirstName:   "Anne",
			LastName:    "Dupuis",
			Address:     domain.Address{Street: "5 avenue des Hôpitaux", ZipCode: "75002", City: "Paris"},
			PhoneNumber: "0623456789",
			Email:       "anne.dupuis@example.com",
		},
		RegistrationNumber: "10234567890",
	}
	girard := &domain.Doctor{
		Person: domain.Person{
			FirstName:   "Sophie",
			LastName:    "Girard",
			Address:     domain.Address{Street: "3 rue des Médecins", ZipCode: "69001", City: "Lyon"},
			PhoneNumber: "0634567890",
			Email:       "sophie.girard@example.com",
		},
		RegistrationNumber: "10345678901",
	}
	lefevre := &domain.Doctor{
		Person: domain.Person{
			FirstName:   "Pierre",
			LastName:    "Lefevre",
			Address:     domain.Address{Street: "8 boulevard des Cliniques", ZipCode: "06000", City: "Nice"},
			PhoneNumber: "0645678901",
			Email:       "pierre.lefevre@example.com",
		},
		RegistrationNumber: "10456789012",
	}
	bernard := &domain.Doctor{
		Person: domain.Person{
			FirstName:   "Jacques",
			LastName:    "Bernard",
			Address:     domain.Address{Street: "12 rue de la Médecine", ZipCode: "13001", City: "Marseille"},
			PhoneNumber: "0656789012",
			Email:       "jacques.bernard@example.com",
		},
		RegistrationNumber: "10567890123",
	}
	dubois := &domain.Doctor{
		Person: domain.Person{
			FirstName:   "Claire",
			LastName:    "Dubois",
			Address:     domain.Address{Street: "21 rue du Coeur", ZipCode: "44000", City: "Nantes"},
			PhoneNumber: "0667890123",
			Email:       "claire.dubois@example.com",
		},
		RegistrationNumber: "10678901234",
		Specialty:          domain.SpecialtyCardiologie,
	}
	leroy := &domain.Doctor{
		Person: domain.Person{
			FirstName:   "Philippe",
			LastName:    "Leroy",
			Address:     domain.Address{Street: "9 allée de la Peau", ZipCode: "33000", City: "Bordeaux"},
			PhoneNumber: "0678901234",
			Email:       "philippe.leroy@example.com",
		},
		RegistrationNumber: "10789012345",
		Specialty:          domain.SpecialtyDermatologie,
	}
	for _, d := range []*domain.Doctor{martin, dupuis, girard, lefevre, bernard, dubois, leroy} {
		r.Doctors.Add(d)
	}

	customers := []*domain.Customer{
		{
			Person: domain.Person{
				FirstName:   "Jean",
				LastName:    "Dupont",
				Address:     domain.Address{Street: "12 rue de la Paix", ZipCode: "75002", City: "Paris"},
				PhoneNumber: "0612345678",
				Email:       "jean.dupont@example.com",
			},
			SocialSecurityNumber: "192073409812312",
			BirthDate:            date(1980, time.May, 12),
			Mutual:               mgen,
			ReferringDoctor:      martin,
		},
		{
			Person: domain.Person{
				FirstName:   "Marie",
				LastName:    "Lefevre",
				Address:     domain.Address{Street: "25 avenue des Champs-Élysées", ZipCode: "75008", City: "Paris"},
				PhoneNumber: "0623456789",
				Email:       "marie.lefevre@example.com",
			},
			SocialSecurityNumber: "283067509825620",
			BirthDate:            date(1975, time.March, 22),
			Mutual:               harmonie,
			ReferringDoctor:      dupuis,
		},
		{
			Person: domain.Person{
				FirstName:   "Paul",
				LastName:    "Moreau",
				Address:     domain.Address{Street: "14 rue des Fleurs", ZipCode: "69002", City: "Lyon"},
				PhoneNumber: "0645678910",
				Email:       "paul.moreau@example.com",
			},
			SocialSecurityNumber: "170023456789044",
			BirthDate:            date(1990, time.November, 3),
			Mutual:               macif,
			ReferringDoctor:      girard,
		},
		{
			Person: domain.Person{
				FirstName:   "Lucie",
				LastName:    "Durand",
				Address:     domain.Address{Street: "58 boulevard Victor Hugo", ZipCode: "06000", City: "Nice"},
				PhoneNumber: "0654321098",
				Email:       "lucie.durand@example.com",
			},
			SocialSecurityNumber: "185089012345607",
			BirthDate:            date(1985, time.August, 15),
			Mutual:               ag2r,
			ReferringDoctor:      lefevre,
		},
		{
			Person: domain.Person{
				FirstName:   "Pierre",
				LastName:    "Dubois",
				Address:     domain.Address{Street: "34 rue de la République", ZipCode: "13001", City: "Marseille"},
				PhoneNumber: "0678912345",
				Email:       "pierre.dubois@example.com",
			},
			SocialSecurityNumber: "197054308765467",
			BirthDate:            date(1970, time.December, 7),
			Mutual:               aesio,
			ReferringDoctor:      bernard,
		},
		{
			Person: domain.Person{
				FirstName:   "Sophie",
				LastName:    "Martin",
				Address:     domain.Address{Street: "45 rue des Lilas", ZipCode: "44000", City: "Nantes"},
				PhoneNumber: "0678901234",
				Email:       "sophie.martin@example.com",
			},
			SocialSecurityNumber: "185072309854338",
			BirthDate:            date(1987, time.June, 22),
			Mutual:               mgen,
			ReferringDoctor:      dubois,
		},
		{
			Person: domain.Person{
				FirstName:   "Antoine",
				LastName:    "Rousseau",
				Address:     domain.Address{Street: "13 avenue des Acacias", ZipCode: "33000", City: "Bordeaux"},
				PhoneNumber: "0678909876",
				Email:       "antoine.rousseau@example.com",
			},
			SocialSecurityNumber: "197052408765101",
			BirthDate:            date(1979, time.November, 17),
			Mutual:               harmonie,
			ReferringDoctor:      leroy,
		},
		{
			Person: domain.Person{
				FirstName:   "Isabelle",
				LastName:    "Petit",
				Address:     domain.Address{Street: "75 boulevard de la Liberté", ZipCode: "59000", City: "Lille"},
				PhoneNumber: "0687654321",
				Email:       "isabelle.petit@example.com",
			},
			SocialSecurityNumber: "186054309872511",
			BirthDate:            date(1992, time.February, 10),
			Mutual:               macif,
			ReferringDoctor:      martin,
		},
	}
	for _, c := range customers {
		r.Customers.Add(c)
	}

	paracetamol := &domain.Medication{
		Name:       "Paracétamol",
		Category:   domain.CategoryAnalgesique,
		Price:      2.50,
		Quantity:   100,
		LaunchDate: date(2010, time.May, 1),
	}
	ibuprofene := &domain.Medication{
		Name:       "Ibuprofène",
		Category:   domain.CategoryAntiInflammatoire,
		Price:      3.00,
		Quantity:   50,
		LaunchDate: date(2012, time.August, 15),
	}
	amoxicilline := &domain.Medication{
		Name:       "Amoxicilline",
		Category:   domain.CategoryAntibiotique,
		Price:      7.50,
		Quantity:   30,
		LaunchDate: date(2015, time.June, 1),
	}
	vaccinGrippe := &domain.Medication{
		Name:       "Vaccin grippe",
		Category:   domain.CategoryVaccin,
		Price:      25.00,
		Quantity:   5,
		LaunchDate: date(2018, time.September, 1),
	}
	statine := &domain.Medication{
		Name:       "Statine",
		Category:   domain.CategoryStatine,
		Price:      12.00,
		Quantity:   30,
		LaunchDate: date(2011, time.March, 10),
	}
	for _, m := range []*domain.Medication{paracetamol, ibuprofene, amoxicilline, vaccinGrippe, statine} {
		r.Medications.Add(m)
	}

	prescription1, err := domain.NewPrescription(date(2024, time.January, 19), dupuis, customers[0],
		[]*domain.Medication{paracetamol, ibuprofene})
	if err != nil {
		return err
	}
	prescription2, err := domain.NewPrescription(date(2024, time.March, 3), dubois, customers[1],
		[]*domain.Medication{ibuprofene})
	if err != nil {
		return err
	}
	r.Prescriptions.Add(prescription1)
	r.Prescriptions.Add(prescription2)

	type purchaseSeed struct {
		customer   *domain.Customer
		date       time.Time
		basket     []domain.BasketLine
		doctor     *domain.Doctor
		prescribed time.Time
	}
	seeds := []purchaseSeed{
		{customers[0], date(2024, time.January, 15), []domain.BasketLine{{Medication: paracetamol, Quantity: 2}}, nil, time.Time{}},
		{customers[0], date(2024, time.January, 20), []domain.BasketLine{{Medication: ibuprofene, Quantity: 1}}, dupuis, date(2024, time.January, 19)},
		{customers[1], date(2024, time.February, 10), []domain.BasketLine{{Medication: amoxicilline, Quantity: 3}}, nil, time.Time{}},
		{customers[1], date(2024, time.March, 5), []domain.BasketLine{{Medication: paracetamol, Quantity: 5}}, martin, date(2024, time.March, 3)},
	}
	for _, seed := range seeds {
		purchase, err := domain.NewPurchase(seed.customer, seed.date, seed.basket, seed.doctor, seed.prescribed)
		if err != nil {
			return err
		}
		r.Purchases.Add(purchase)
	}

	return nil
}
