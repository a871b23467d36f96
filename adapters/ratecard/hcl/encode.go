package hcl

import (
	"maps"
	"slices"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"

	"printquote/core/pricing"
	"printquote/core/ratetable"
)

// Encode renders a rate card as HCL.
// Output is deterministic: keys are written in sorted order.
func Encode(card *pricing.RateCard) []byte {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	root.SetAttributeValue("version", cty.StringVal(card.Version))
	root.SetAttributeValue("currency", cty.StringVal(string(card.Currency)))

	root.AppendNewline()
	encodePoster(root.AppendNewBlock("poster", nil).Body(), card.Poster)
	root.AppendNewline()
	encodeBanner(root.AppendNewBlock("banner", nil).Body(), card.Banner)
	root.AppendNewline()
	encodeFlyer(root.AppendNewBlock("flyer", nil).Body(), card.Flyer)
	root.AppendNewline()
	encodeBrochure(root.AppendNewBlock("brochure", nil).Body(), card.Brochure)

	return hclwrite.Format(f.Bytes())
}

func encodePoster(body *hclwrite.Body, r pricing.PosterRates) {
	body.SetAttributeValue("fallback_price", decimalToCty(r.FallbackPrice))

	for _, key := range r.Prices.Keys() {
		s, _ := r.Prices.Schedule(key)
		encodeSchedule(body.AppendNewBlock("price", []string{key.Material, key.Size}).Body(), s)
	}
	for _, material := range slices.Sorted(maps.Keys(r.Variants)) {
		v := r.Variants[material]
		vb := body.AppendNewBlock("variant", []string{material}).Body()
		vb.SetAttributeValue("base", cty.StringVal(v.Base))
		vb.SetAttributeValue("multiplier", decimalToCty(v.Multiplier))
	}
}

func encodeBanner(body *hclwrite.Body, r pricing.BannerRates) {
	body.SetAttributeValue("hem_and_grommets_multiplier", decimalToCty(r.HemAndGrommetsMultiplier))
	body.SetAttributeValue("wind_holes_multiplier", decimalToCty(r.WindHolesMultiplier))
	body.SetAttributeValue("pro_design_fee", decimalToCty(r.ProDesignFee))
	body.SetAttributeValue("breakpoint_floor", cty.BoolVal(r.BreakpointFloor))

	encodeMultipliers(body, "material", r.MaterialMultipliers)
	for _, band := range r.Bands.Bands() {
		bb := body.AppendNewBlock("band", nil).Body()
		setUpTo(bb, band.UpTo)
		bb.SetAttributeValue("rate", decimalToCty(band.Rate))
	}
}

func encodeFlyer(body *hclwrite.Body, r pricing.FlyerRates) {
	body.SetAttributeValue("pro_fee_per_face", decimalToCty(r.ProFeePerFace))

	for _, size := range r.Sizes.Keys() {
		s, _ := r.Sizes.Schedule(size)
		sb := body.AppendNewBlock("size", []string{size}).Body()
		for _, band := range s.Bands() {
			bb := sb.AppendNewBlock("band", nil).Body()
			setUpTo(bb, band.UpTo)
			bb.SetAttributeValue("one_sided", decimalToCty(band.Rate.OneSided))
			bb.SetAttributeValue("two_sided", decimalToCty(band.Rate.TwoSided))
		}
	}
	encodeMultipliers(body, "paper_weight", r.PaperWeightMultipliers)
}

func encodeBrochure(body *hclwrite.Body, r pricing.BrochureRates) {
	for _, weight := range r.Weights.Keys() {
		s, _ := r.Weights.Schedule(weight)
		encodeSchedule(body.AppendNewBlock("weight", []string{weight}).Body(), s)
	}
	for _, fold := range slices.Sorted(maps.Keys(r.ProFees)) {
		fb := body.AppendNewBlock("fold", []string{fold}).Body()
		fb.SetAttributeValue("pro_fee", decimalToCty(r.ProFees[fold]))
	}
}

// encodeSchedule writes a single unbounded band as the rate shorthand
func encodeSchedule(body *hclwrite.Body, s ratetable.Schedule[decimal.Decimal]) {
	bands := s.Bands()
	if len(bands) == 1 && bands[0].Unbounded() {
		body.SetAttributeValue("rate", decimalToCty(bands[0].Rate))
		return
	}
	for _, band := range bands {
		bb := body.AppendNewBlock("band", nil).Body()
		setUpTo(bb, band.UpTo)
		bb.SetAttributeValue("rate", decimalToCty(band.Rate))
	}
}

func encodeMultipliers(body *hclwrite.Body, blockType string, m map[string]decimal.Decimal) {
	for _, key := range slices.Sorted(maps.Keys(m)) {
		mb := body.AppendNewBlock(blockType, []string{key}).Body()
		mb.SetAttributeValue("multiplier", decimalToCty(m[key]))
	}
}

func setUpTo(body *hclwrite.Body, upTo decimal.Decimal) {
	if !upTo.IsZero() {
		body.SetAttributeValue("up_to", decimalToCty(upTo))
	}
}
