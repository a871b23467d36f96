// Package pricing - Quotation engine for print products
// Calculators are pure functions of a configuration and a rate card section.
// All pricing policy (tables, multipliers, fees) lives in the RateCard.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"printquote/core/catalog"
	"printquote/core/money"
	"printquote/core/ratetable"
	"printquote/internal/errors"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// RateCard is a versioned, immutable pricing policy
type RateCard struct {
	Version  string
	Currency money.Currency
	Poster   PosterRates
	Banner   BannerRates
	Flyer    FlyerRates
	Brochure BrochureRates
}

// PosterKey addresses one cell of the poster price table
type PosterKey struct {
	Material string
	Size     string
}

// String renders the key as material/size
func (k PosterKey) String() string {
	return k.Material + "/" + k.Size
}

// RigidVariant prices a heavy material off a lighter base material
type RigidVariant struct {
	Base       string
	Multiplier decimal.Decimal
}

// PosterRates prices posters per piece
type PosterRates struct {
	// Prices is sparse; absent cells use FallbackPrice
	Prices        ratetable.Table[PosterKey, decimal.Decimal]
	Variants      map[string]RigidVariant
	FallbackPrice decimal.Decimal
}

// BannerRates prices banners per square meter of total area
type BannerRates struct {
	Bands                    ratetable.Schedule[decimal.Decimal]
	MaterialMultipliers      map[string]decimal.Decimal
	HemAndGrommetsMultiplier decimal.Decimal
	WindHolesMultiplier      decimal.Decimal
	ProDesignFee             decimal.Decimal

	// BreakpointFloor never lets a larger order cost less than the most
	// expensive earlier band's upper bound.
	BreakpointFloor bool
}

// FlyerRate is the per-piece rate of one quantity band
type FlyerRate struct {
	OneSided decimal.Decimal
	TwoSided decimal.Decimal
}

// FlyerRates prices flyers per piece
type FlyerRates struct {
	Sizes                  ratetable.Table[string, FlyerRate]
	PaperWeightMultipliers map[string]decimal.Decimal
	ProFeePerFace          decimal.Decimal
}

// BrochureRates prices folded brochures per piece
type BrochureRates struct {
	Weights ratetable.Table[string, decimal.Decimal]
	// ProFees is keyed by fold; fold complexity drives design cost
	ProFees map[string]decimal.Decimal
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func flatByQuantity(price string) ratetable.Schedule[decimal.Decimal] {
	return ratetable.Flat(ratetable.ByQuantity, dec(price))
}

// DefaultRateCard returns the storefront's current price list
func DefaultRateCard() *RateCard {
	return &RateCard{
		Version:  "2024.1",
		Currency: money.RON,
		Poster:   defaultPosterRates(),
		Banner:   defaultBannerRates(),
		Flyer:    defaultFlyerRates(),
		Brochure: defaultBrochureRates(),
	}
}

func defaultPosterRates() PosterRates {
	paper150 := map[string]string{"A3": "3.0", "A2": "9.98", "A1": "39.96", "A0": "80.0", "S5": "28.0", "S7": "56.0"}
	cells := map[string]map[string]string{
		"paper_150_lucioasa":     paper150,
		"paper_150_mata":         paper150,
		"blueback_115":           {"A0": "70.0", "A1": "17.48", "A2": "17.46"},
		"whiteback_150_material": {"A0": "80.0"},
	}

	schedules := make(map[PosterKey]ratetable.Schedule[decimal.Decimal])
	for material, sizes := range cells {
		for size, price := range sizes {
			schedules[PosterKey{Material: material, Size: size}] = flatByQuantity(price)
		}
	}

	return PosterRates{
		Prices: ratetable.MustTable(ratetable.ByQuantity, schedules),
		Variants: map[string]RigidVariant{
			"paper_300_lucioasa": {Base: "paper_150_lucioasa", Multiplier: dec("2")},
			"paper_300_mata":     {Base: "paper_150_mata", Multiplier: dec("2")},
		},
		FallbackPrice: dec("10"),
	}
}

func defaultBannerRates() BannerRates {
	return BannerRates{
		Bands: ratetable.MustSchedule(ratetable.ByArea,
			ratetable.Band[decimal.Decimal]{UpTo: dec("1"), Rate: dec("100")},
			ratetable.Band[decimal.Decimal]{UpTo: dec("5"), Rate: dec("75")},
			ratetable.Band[decimal.Decimal]{UpTo: dec("20"), Rate: dec("60")},
			ratetable.Band[decimal.Decimal]{UpTo: dec("50"), Rate: dec("45")},
			ratetable.Band[decimal.Decimal]{Rate: dec("35")},
		),
		MaterialMultipliers: map[string]decimal.Decimal{
			"frontlit_440": dec("1"),
			"frontlit_510": dec("1.15"),
		},
		HemAndGrommetsMultiplier: dec("1.10"),
		WindHolesMultiplier:      dec("1.10"),
		ProDesignFee:             dec("50"),
	}
}

func flyerBrackets(oneSided, twoSided string) ratetable.Schedule[FlyerRate] {
	rate := FlyerRate{OneSided: dec(oneSided), TwoSided: dec(twoSided)}
	return ratetable.MustSchedule(ratetable.ByQuantity,
		ratetable.Band[FlyerRate]{UpTo: dec("5000"), Rate: rate},
		ratetable.Band[FlyerRate]{Rate: rate},
	)
}

func defaultFlyerRates() FlyerRates {
	return FlyerRates{
		Sizes: ratetable.MustTable(ratetable.ByQuantity, map[string]ratetable.Schedule[FlyerRate]{
			"A6":    flyerBrackets("0.22", "0.28"),
			"A5":    flyerBrackets("0.28", "0.32"),
			"21x10": flyerBrackets("0.22", "0.28"),
		}),
		PaperWeightMultipliers: map[string]decimal.Decimal{
			"135": dec("1.0"),
			"250": dec("1.2"),
		},
		ProFeePerFace: dec("50"),
	}
}

func defaultBrochureRates() BrochureRates {
	return BrochureRates{
		Weights: ratetable.MustTable(ratetable.ByQuantity, map[string]ratetable.Schedule[decimal.Decimal]{
			"115": flatByQuantity("3.2"),
			"170": flatByQuantity("3.5"),
			"250": flatByQuantity("3.7"),
		}),
		ProFees: map[string]decimal.Decimal{
			"simplu":    dec("100"),
			"fereastra": dec("135"),
			"paralel":   dec("175"),
			"fluture":   dec("200"),
		},
	}
}

// Validate checks the card is internally consistent and prices every option
// the catalog offers. Poster tables may stay sparse; the fallback covers them.
func (c *RateCard) Validate(cat *catalog.Catalog) error {
	if c.Version == "" {
		return errors.RateCard("rate card version is required")
	}
	if c.Currency == "" {
		return errors.RateCard("rate card currency is required")
	}

	checks := []func(*catalog.Catalog) error{
		c.Poster.validate,
		c.Banner.validate,
		c.Flyer.validate,
		c.Brochure.validate,
	}
	for _, check := range checks {
		if err := check(cat); err != nil {
			return err
		}
	}
	return nil
}

func positive(section, name string, d decimal.Decimal) error {
	if !d.IsPositive() {
		return errors.RateCardf("%s: %s must be positive, got %s", section, name, d)
	}
	return nil
}

func nonNegative(section, name string, d decimal.Decimal) error {
	if d.IsNegative() {
		return errors.RateCardf("%s: %s must not be negative, got %s", section, name, d)
	}
	return nil
}

func (r PosterRates) validate(cat *catalog.Catalog) error {
	entry := cat.MustEntry(catalog.Poster)

	if err := positive("poster", "fallback price", r.FallbackPrice); err != nil {
		return err
	}
	if r.Prices.Measure() != ratetable.ByQuantity {
		return errors.RateCard("poster: price table must be banded by quantity")
	}
	for _, key := range r.Prices.Keys() {
		if !entry.HasMaterial(key.Material) || !entry.HasSize(key.Size) {
			return errors.RateCardf("poster: price cell %s is not a catalog option", key)
		}
		if err := validateRates("poster "+key.String(), r.Prices, key); err != nil {
			return err
		}
	}
	for material, v := range r.Variants {
		if !entry.HasMaterial(material) || !entry.HasMaterial(v.Base) {
			return errors.RateCardf("poster: variant %s -> %s is not a catalog option", material, v.Base)
		}
		if err := positive("poster", "multiplier of "+material, v.Multiplier); err != nil {
			return err
		}
	}
	return nil
}

func validateRates[K comparable](section string, table ratetable.Table[K, decimal.Decimal], key K) error {
	s, _ := table.Schedule(key)
	for i, band := range s.Bands() {
		if err := positive(section, fmt.Sprintf("band %d rate", i), band.Rate); err != nil {
			return err
		}
	}
	return nil
}

func (r BannerRates) validate(cat *catalog.Catalog) error {
	entry := cat.MustEntry(catalog.Banner)

	bands := r.Bands.Bands()
	if len(bands) == 0 {
		return errors.RateCard("banner: area bands are required")
	}
	if r.Bands.Measure() != ratetable.ByArea {
		return errors.RateCard("banner: bands must be banded by area")
	}
	for i, band := range bands {
		if err := positive("banner", fmt.Sprintf("band %d rate", i), band.Rate); err != nil {
			return err
		}
	}
	for _, m := range entry.Materials {
		mult, ok := r.MaterialMultipliers[m.Key]
		if !ok {
			return errors.RateCardf("banner: no multiplier for material %s", m.Key)
		}
		if err := positive("banner", "multiplier of "+m.Key, mult); err != nil {
			return err
		}
	}
	if err := positive("banner", "hem and grommets multiplier", r.HemAndGrommetsMultiplier); err != nil {
		return err
	}
	if err := positive("banner", "wind holes multiplier", r.WindHolesMultiplier); err != nil {
		return err
	}
	return nonNegative("banner", "professional design fee", r.ProDesignFee)
}

func (r FlyerRates) validate(cat *catalog.Catalog) error {
	entry := cat.MustEntry(catalog.Flyer)

	if r.Sizes.Measure() != ratetable.ByQuantity {
		return errors.RateCard("flyer: size table must be banded by quantity")
	}
	for _, size := range entry.Sizes {
		s, ok := r.Sizes.Schedule(size.Key)
		if !ok {
			return errors.RateCardf("flyer: no brackets for size %s", size.Key)
		}
		for i, band := range s.Bands() {
			if err := positive("flyer "+size.Key, fmt.Sprintf("band %d one-sided rate", i), band.Rate.OneSided); err != nil {
				return err
			}
			if err := positive("flyer "+size.Key, fmt.Sprintf("band %d two-sided rate", i), band.Rate.TwoSided); err != nil {
				return err
			}
		}
	}
	for _, w := range entry.Weights {
		mult, ok := r.PaperWeightMultipliers[w.Key]
		if !ok {
			return errors.RateCardf("flyer: no multiplier for paper weight %s", w.Key)
		}
		if err := positive("flyer", "multiplier of "+w.Key, mult); err != nil {
			return err
		}
	}
	return nonNegative("flyer", "design fee per face", r.ProFeePerFace)
}

func (r BrochureRates) validate(cat *catalog.Catalog) error {
	entry := cat.MustEntry(catalog.Brochure)

	if r.Weights.Measure() != ratetable.ByQuantity {
		return errors.RateCard("brochure: weight table must be banded by quantity")
	}
	for _, w := range entry.Weights {
		if _, ok := r.Weights.Schedule(w.Key); !ok {
			return errors.RateCardf("brochure: no tiers for weight %s", w.Key)
		}
		if err := validateRates("brochure "+w.Key, r.Weights, w.Key); err != nil {
			return err
		}
	}
	for _, f := range entry.Folds {
		fee, ok := r.ProFees[f.Key]
		if !ok {
			return errors.RateCardf("brochure: no design fee for fold %s", f.Key)
		}
		if err := nonNegative("brochure", "design fee of "+f.Key, fee); err != nil {
			return err
		}
	}
	return nil
}
