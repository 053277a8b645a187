package seed

import (
	"context"
	"fmt"
	"io"
	"log"

	"autoparts-storefront/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

type CategoryWriter interface {
	Upsert(ctx context.Context, c domain.Category) (*domain.Category, error)
}

type FitmentWriter interface {
	UpsertBrand(ctx context.Context, name string) (*domain.VehicleBrand, error)
	UpsertModel(ctx context.Context, m domain.VehicleModel) (*domain.VehicleModel, error)
	LinkProduct(ctx context.Context, productID, modelID string, yearFrom, yearTo int) error
}

type RateWriter interface {
	SetRate(ctx context.Context, rate, markup float64) (*domain.ExchangeRate, error)
}

// Repos groups the writers the demo catalogue goes through.
type Repos struct {
	Products   ProductWriter
	Categories CategoryWriter
	Fitment    FitmentWriter
	Rates      RateWriter
}

type categorySeed struct {
	Key, Name, NameAr, Icon string
}

type vehicleSeed struct {
	Brand, Model, Chassis string
	YearFrom, YearTo      int
}

type partSeed struct {
	OEM        string
	Name       string
	NameAr     string
	Category   string
	PriceCents int64
	Vehicle    int
	YearFrom   int
	YearTo     int
}

var categories = []categorySeed{
	{"bumper_front", "Front Bumper", "اكصدام امامي", "fa-car"},
	{"bumper_rear", "Rear Bumper", "اكصدام خلفي", "fa-car-rear"},
	{"fender", "Fender", "رفرف", "fa-shield-halved"},
	{"hood", "Hood / Bonnet", "كبوت", "fa-car-on"},
	{"trunk", "Trunk Lid", "شنطة", "fa-box"},
	{"door", "Door", "باب", "fa-door-open"},
	{"headlamp", "Headlamp", "فانوس امامي", "fa-lightbulb"},
	{"taillight", "Tail Light", "فانوس خلفي", "fa-circle-half-stroke"},
	{"foglamp", "Fog Lamp", "فانوس شبورة", "fa-smog"},
	{"mirror", "Side Mirror", "مرايا جانبية", "fa-clone"},
	{"grille", "Front Grille", "شبكة امامية", "fa-grip"},
	{"radiator", "Radiator", "ريداتير", "fa-temperature-high"},
	{"cooler", "Oil Cooler", "مبرد ماتور", "fa-droplet"},
	{"brakes", "Brake Pads", "تيل فرامل", "fa-circle-stop"},
	{"indicator", "Turn Indicator", "اشارة", "fa-arrow-right"},
}

const (
	w205 = iota
	f30
)

var vehicles = []vehicleSeed{
	w205: {"Mercedes-Benz", "C-Class", "W205", 2014, 2021},
	f30:  {"BMW", "3-Series", "F30", 2012, 2019},
}

var parts = []partSeed{
	{"A2058800118", "Front Fender Left", "رفرف امامي يسار", "fender", 32278, w205, 2014, 2021},
	{"A2058800218", "Front Fender Right", "رفرف امامي يمين", "fender", 32278, w205, 2014, 2021},
	{"A2058890125", "Fender Gap Cover Left", "غطاء فتحة رفرف يسار", "fender", 788, w205, 2014, 2021},
	{"A2058800140", "Front Bumper Trim", "اكصدام امامي", "bumper_front", 52924, w205, 2014, 2021},
	{"A2058801940", "Front Bumper Trim (Facelift)", "اكصدام امامي (فيس ليفت)", "bumper_front", 52924, w205, 2018, 2021},
	{"A2058800340", "Front Bumper Trim AMG Line", "اكصدام امامي AMG", "bumper_front", 55330, w205, 2014, 2021},
	{"A2058800447", "Rear Bumper Trim", "اكصدام خلفي", "bumper_rear", 57111, w205, 2014, 2021},
	{"A2058806400", "Rear Bumper Trim AMG", "اكصدام خلفي AMG", "bumper_rear", 61382, w205, 2014, 2021},
	{"A2058800057", "Hood / Bonnet", "كبوت", "hood", 48500, w205, 2014, 2021},
	{"A2059067803", "Headlamp LED Left", "فانوس امامي LED يسار", "headlamp", 125000, w205, 2014, 2018},
	{"A2059069003", "Headlamp MULTIBEAM LED Left", "فانوس امامي ملتي بيم يسار", "headlamp", 185000, w205, 2018, 2021},
	{"A2059063106", "Tail Light Left Outer", "فانوس خلفي يسار خارجي", "taillight", 28500, w205, 2014, 2018},
	{"A2058851521", "Fog Lamp Left", "فانوس شبورة يسار", "foglamp", 7800, w205, 2014, 2018},
	{"A2058107300", "Side Mirror Assembly Left", "مرايا جانبية يسار", "mirror", 34500, w205, 2014, 2021},
	{"A2058880260", "Front Grille AMG Diamond", "شبكة امامية AMG دايموند", "grille", 38500, w205, 2014, 2021},
	{"A2057200105", "Front Door Shell Left", "باب امامي يسار", "door", 62000, w205, 2014, 2021},
	{"A2057500075", "Trunk Lid", "شنطة (غطاء صندوق)", "trunk", 75000, w205, 2014, 2021},
	{"A2055000293", "Radiator Assembly", "ريداتير", "radiator", 32000, w205, 2014, 2021},
	{"A2055001400", "Engine Oil Cooler", "مبرد زيت ماتور", "cooler", 18500, w205, 2014, 2021},
	{"A0074209020", "Front Brake Pad Set", "تيل فرامل امامي", "brakes", 9200, w205, 2014, 2021},
	{"A2058200521", "Mirror Turn Indicator Left", "اشارة مرايا يسار", "indicator", 4500, w205, 2014, 2021},
	{"41357298027", "Side panel, front left", "رفرف يسار", "fender", 17594, f30, 2012, 2019},
	{"41357298028", "Side panel, front right", "رفرف يمين", "fender", 17594, f30, 2012, 2019},
	{"51117275178", "Mount, bumper, front, top", "اكصدام امامي", "bumper_front", 12483, f30, 2012, 2019},
	{"51128056497", "Bumper trim panel, primered, rear", "اكصدام خلفي", "bumper_rear", 54798, f30, 2012, 2019},
	{"41007290944", "Hood", "كبوت", "hood", 26846, f30, 2012, 2019},
	// Listed without a price so the storefront shows "call for price".
	{"51237239233", "Gas strut, hood", "كبوت", "hood", 0, f30, 2012, 2019},
}

// DemoRate is the seeded USD to EGP rate.
const DemoRate = 50

// Apply writes the demo catalogue. Every write is an upsert, so running it twice is harmless.
func Apply(ctx context.Context, r Repos, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	categoryIDs := make(map[string]string, len(categories))
	for _, c := range categories {
		saved, err := r.Categories.Upsert(ctx, domain.Category{Key: c.Key, Name: c.Name, NameAr: c.NameAr, Icon: c.Icon})
		if err != nil {
			return fmt.Errorf("upsert category %s: %w", c.Key, err)
		}
		categoryIDs[c.Key] = saved.ID
	}

	modelIDs := make([]string, len(vehicles))
	for i, v := range vehicles {
		brand, err := r.Fitment.UpsertBrand(ctx, v.Brand)
		if err != nil {
			return fmt.Errorf("upsert brand %s: %w", v.Brand, err)
		}
		model, err := r.Fitment.UpsertModel(ctx, domain.VehicleModel{
			BrandID:  brand.ID,
			Name:     v.Model,
			Chassis:  v.Chassis,
			YearFrom: v.YearFrom,
			YearTo:   v.YearTo,
		})
		if err != nil {
			return fmt.Errorf("upsert model %s %s: %w", v.Model, v.Chassis, err)
		}
		modelIDs[i] = model.ID
	}

	for _, p := range parts {
		saved, err := r.Products.Upsert(ctx, domain.Product{
			OEM:            p.OEM,
			Name:           p.Name,
			NameAr:         p.NameAr,
			CategoryID:     categoryIDs[p.Category],
			BasePriceCents: p.PriceCents,
			Stock:          1,
			Specifications: domain.Specifications{
				OEMNumber:    p.OEM,
				Condition:    "new",
				Origin:       "genuine",
				LeadTimeDays: 7,
			},
		})
		if err != nil {
			return fmt.Errorf("upsert product %s: %w", p.OEM, err)
		}
		if err := r.Fitment.LinkProduct(ctx, saved.ID, modelIDs[p.Vehicle], p.YearFrom, p.YearTo); err != nil {
			return fmt.Errorf("link product %s: %w", p.OEM, err)
		}
	}

	if _, err := r.Rates.SetRate(ctx, DemoRate, 1); err != nil {
		return fmt.Errorf("upsert rate: %w", err)
	}

	logger.Printf("seed: applied categories=%d models=%d parts=%d", len(categories), len(vehicles), len(parts))
	return nil
}
