package hcl

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"

	"printquote/core/catalog"
	"printquote/core/money"
	"printquote/core/pricing"
	"printquote/core/ratetable"
	"printquote/internal/errors"
)

// Load reads and validates a rate card file
func Load(path string) (*pricing.RateCard, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("rate card", path)
		}
		return nil, errors.Wrapf(errors.TypeParsing, err, "failed to read rate card %s", path)
	}
	return Parse(src, path)
}

// Parse decodes a rate card from HCL source.
// The decoded card is validated against the storefront catalog.
func Parse(src []byte, filename string) (*pricing.RateCard, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagError(filename, diags)
	}

	var raw rateCardFile
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, diagError(filename, diags)
	}

	card, err := raw.build()
	if err != nil {
		return nil, errors.Wrapf(errors.TypeParsing, err, "invalid rate card %s", filename)
	}
	if err := card.Validate(catalog.Default()); err != nil {
		return nil, err
	}
	return card, nil
}

func diagError(filename string, diags hcl.Diagnostics) error {
	var msgs []string
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		msg := diag.Summary
		if diag.Detail != "" {
			msg += ": " + diag.Detail
		}
		if diag.Subject != nil {
			msg = fmt.Sprintf("line %d: %s", diag.Subject.Start.Line, msg)
		}
		msgs = append(msgs, msg)
	}
	return errors.Parsing(fmt.Sprintf("failed to parse rate card %s", filename), diags).
		WithContext("diagnostics", strings.Join(msgs, "; "))
}

func (f rateCardFile) build() (*pricing.RateCard, error) {
	poster, err := f.Poster.build()
	if err != nil {
		return nil, err
	}
	banner, err := f.Banner.build()
	if err != nil {
		return nil, err
	}
	flyer, err := f.Flyer.build()
	if err != nil {
		return nil, err
	}
	brochure, err := f.Brochure.build()
	if err != nil {
		return nil, err
	}

	return &pricing.RateCard{
		Version:  f.Version,
		Currency: money.Currency(f.Currency),
		Poster:   poster,
		Banner:   banner,
		Flyer:    flyer,
		Brochure: brochure,
	}, nil
}

func (b posterBlock) build() (pricing.PosterRates, error) {
	var rates pricing.PosterRates

	fallback, err := ctyToDecimal(b.FallbackPrice, "poster.fallback_price")
	if err != nil {
		return rates, err
	}

	schedules := make(map[pricing.PosterKey]ratetable.Schedule[decimal.Decimal], len(b.Prices))
	for _, p := range b.Prices {
		key := pricing.PosterKey{Material: p.Material, Size: p.Size}
		if _, dup := schedules[key]; dup {
			return rates, fmt.Errorf("poster: duplicate price %s", key)
		}
		s, err := schedule(ratetable.ByQuantity, p.Rate, p.Bands, "poster.price."+key.String())
		if err != nil {
			return rates, err
		}
		schedules[key] = s
	}
	prices, err := ratetable.NewTable(ratetable.ByQuantity, schedules)
	if err != nil {
		return rates, err
	}

	variants := make(map[string]pricing.RigidVariant, len(b.Variants))
	for _, v := range b.Variants {
		if _, dup := variants[v.Material]; dup {
			return rates, fmt.Errorf("poster: duplicate variant %s", v.Material)
		}
		mult, err := ctyToDecimal(v.Multiplier, "poster.variant."+v.Material+".multiplier")
		if err != nil {
			return rates, err
		}
		variants[v.Material] = pricing.RigidVariant{Base: v.Base, Multiplier: mult}
	}

	return pricing.PosterRates{Prices: prices, Variants: variants, FallbackPrice: fallback}, nil
}

func (b bannerBlock) build() (pricing.BannerRates, error) {
	var rates pricing.BannerRates
	var err error

	if rates.HemAndGrommetsMultiplier, err = ctyToDecimal(b.HemAndGrommets, "banner.hem_and_grommets_multiplier"); err != nil {
		return rates, err
	}
	if rates.WindHolesMultiplier, err = ctyToDecimal(b.WindHoles, "banner.wind_holes_multiplier"); err != nil {
		return rates, err
	}
	if rates.ProDesignFee, err = ctyToDecimal(b.ProDesignFee, "banner.pro_design_fee"); err != nil {
		return rates, err
	}
	if rates.MaterialMultipliers, err = multipliers(b.Materials, "banner.material"); err != nil {
		return rates, err
	}
	if rates.Bands, err = schedule(ratetable.ByArea, cty.NilVal, b.Bands, "banner"); err != nil {
		return rates, err
	}
	rates.BreakpointFloor = b.BreakpointFloor
	return rates, nil
}

func (b flyerBlock) build() (pricing.FlyerRates, error) {
	var rates pricing.FlyerRates

	fee, err := ctyToDecimal(b.ProFeePerFace, "flyer.pro_fee_per_face")
	if err != nil {
		return rates, err
	}

	schedules := make(map[string]ratetable.Schedule[pricing.FlyerRate], len(b.Sizes))
	for _, size := range b.Sizes {
		if _, dup := schedules[size.Key]; dup {
			return rates, fmt.Errorf("flyer: duplicate size %s", size.Key)
		}
		context := "flyer.size." + size.Key
		bands := make([]ratetable.Band[pricing.FlyerRate], 0, len(size.Bands))
		for i, band := range size.Bands {
			bctx := fmt.Sprintf("%s.band[%d]", context, i)
			upTo, _, err := optionalDecimal(band.UpTo, bctx+".up_to")
			if err != nil {
				return rates, err
			}
			oneSided, err := ctyToDecimal(band.OneSided, bctx+".one_sided")
			if err != nil {
				return rates, err
			}
			twoSided, err := ctyToDecimal(band.TwoSided, bctx+".two_sided")
			if err != nil {
				return rates, err
			}
			bands = append(bands, ratetable.Band[pricing.FlyerRate]{
				UpTo: upTo,
				Rate: pricing.FlyerRate{OneSided: oneSided, TwoSided: twoSided},
			})
		}
		s, err := ratetable.NewSchedule(ratetable.ByQuantity, bands...)
		if err != nil {
			return rates, fmt.Errorf("%s: %w", context, err)
		}
		schedules[size.Key] = s
	}
	sizes, err := ratetable.NewTable(ratetable.ByQuantity, schedules)
	if err != nil {
		return rates, err
	}

	weights, err := multipliers(b.PaperWeights, "flyer.paper_weight")
	if err != nil {
		return rates, err
	}

	return pricing.FlyerRates{Sizes: sizes, PaperWeightMultipliers: weights, ProFeePerFace: fee}, nil
}

func (b brochureBlock) build() (pricing.BrochureRates, error) {
	var rates pricing.BrochureRates

	schedules := make(map[string]ratetable.Schedule[decimal.Decimal], len(b.Weights))
	for _, w := range b.Weights {
		if _, dup := schedules[w.Key]; dup {
			return rates, fmt.Errorf("brochure: duplicate weight %s", w.Key)
		}
		s, err := schedule(ratetable.ByQuantity, w.Rate, w.Bands, "brochure.weight."+w.Key)
		if err != nil {
			return rates, err
		}
		schedules[w.Key] = s
	}
	weights, err := ratetable.NewTable(ratetable.ByQuantity, schedules)
	if err != nil {
		return rates, err
	}

	fees := make(map[string]decimal.Decimal, len(b.Folds))
	for _, f := range b.Folds {
		if _, dup := fees[f.Key]; dup {
			return rates, fmt.Errorf("brochure: duplicate fold %s", f.Key)
		}
		fee, err := ctyToDecimal(f.ProFee, "brochure.fold."+f.Key+".pro_fee")
		if err != nil {
			return rates, err
		}
		fees[f.Key] = fee
	}

	return pricing.BrochureRates{Weights: weights, ProFees: fees}, nil
}

// schedule builds a decimal schedule from either a flat rate or band blocks
func schedule(measure ratetable.Measure, flat cty.Value, blocks []bandBlock, context string) (ratetable.Schedule[decimal.Decimal], error) {
	rate, hasFlat, err := optionalDecimal(flat, context+".rate")
	if err != nil {
		return ratetable.Schedule[decimal.Decimal]{}, err
	}
	if hasFlat {
		if len(blocks) > 0 {
			return ratetable.Schedule[decimal.Decimal]{}, fmt.Errorf("%s: set either rate or band blocks, not both", context)
		}
		return ratetable.Flat(measure, rate), nil
	}

	bands := make([]ratetable.Band[decimal.Decimal], 0, len(blocks))
	for i, block := range blocks {
		bctx := fmt.Sprintf("%s.band[%d]", context, i)
		upTo, _, err := optionalDecimal(block.UpTo, bctx+".up_to")
		if err != nil {
			return ratetable.Schedule[decimal.Decimal]{}, err
		}
		r, err := ctyToDecimal(block.Rate, bctx+".rate")
		if err != nil {
			return ratetable.Schedule[decimal.Decimal]{}, err
		}
		bands = append(bands, ratetable.Band[decimal.Decimal]{UpTo: upTo, Rate: r})
	}

	s, err := ratetable.NewSchedule(measure, bands...)
	if err != nil {
		return s, fmt.Errorf("%s: %w", context, err)
	}
	return s, nil
}

func multipliers(blocks []multiplierBlock, context string) (map[string]decimal.Decimal, error) {
	out := make(map[string]decimal.Decimal, len(blocks))
	for _, b := range blocks {
		if _, dup := out[b.Key]; dup {
			return nil, fmt.Errorf("%s: duplicate %s", context, b.Key)
		}
		m, err := ctyToDecimal(b.Multiplier, context+"."+b.Key+".multiplier")
		if err != nil {
			return nil, err
		}
		out[b.Key] = m
	}
	return out, nil
}
