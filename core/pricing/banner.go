package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"printquote/core/catalog"
	"printquote/core/money"
)

// QuoteBanner prices banners by total area.
//
// The per-m² rate comes from the area band of the whole order, then the
// material, hem+grommets and wind-holes multipliers are applied independently.
// The professional design fee is added after the area price is rounded and is
// never scaled by area or multipliers.
func QuoteBanner(cfg BannerConfig, rates BannerRates) Breakdown {
	if cfg.WidthCm <= 0 || cfg.HeightCm <= 0 || cfg.Quantity <= 0 {
		return zeroBreakdown(catalog.Banner, cfg.Quantity)
	}
	qty := decimal.NewFromInt(int64(cfg.Quantity))

	width := money.FromFloat(cfg.WidthCm).Div(hundred)
	height := money.FromFloat(cfg.HeightCm).Div(hundred)
	totalArea := money.Round(width.Mul(height).Mul(qty))

	baseRate, ok := rates.Bands.Lookup(totalArea)
	if !ok {
		return zeroBreakdown(catalog.Banner, cfg.Quantity)
	}

	multiplier := rates.multiplier(cfg)
	pricePerSqm := money.Round(baseRate.Mul(multiplier))
	areaPrice := money.Round(totalArea.Mul(pricePerSqm))

	b := Breakdown{
		Product:     catalog.Banner,
		Quantity:    cfg.Quantity,
		Multiplier:  multiplier,
		TotalArea:   totalArea,
		PricePerSqm: pricePerSqm,
		DesignFee:   decimal.Zero,
	}
	b.add("print", fmt.Sprintf("%s m² × %s", totalArea.StringFixed(2), pricePerSqm.StringFixed(2)), areaPrice)

	if rates.BreakpointFloor {
		if floor := rates.breakpointFloor(totalArea, multiplier); floor.GreaterThan(areaPrice) {
			b.add("breakpoint floor", fmt.Sprintf("raised to %s", floor.StringFixed(2)), floor.Sub(areaPrice))
			areaPrice = floor
		}
	}

	if cfg.Design == catalog.DesignPro {
		b.DesignFee = rates.ProDesignFee
		b.add("design", "professional design", rates.ProDesignFee)
	}

	b.Subtotal = areaPrice
	b.FinalPrice = money.Round(areaPrice.Add(b.DesignFee))
	b.UnitPrice = money.Round(areaPrice.Div(qty))
	return b
}

func (r BannerRates) multiplier(cfg BannerConfig) decimal.Decimal {
	m := one
	if mm, ok := r.MaterialMultipliers[cfg.Material]; ok {
		m = m.Mul(mm)
	}
	if cfg.WantHemAndGrommets {
		m = m.Mul(r.HemAndGrommetsMultiplier)
	}
	if cfg.WantWindHoles {
		m = m.Mul(r.WindHolesMultiplier)
	}
	return m
}

// breakpointFloor is the highest area price reachable at the upper bound of
// any band below the one totalArea falls in.
func (r BannerRates) breakpointFloor(totalArea, multiplier decimal.Decimal) decimal.Decimal {
	floor := decimal.Zero
	for _, band := range r.Bands.Bands() {
		if band.Unbounded() || !band.UpTo.LessThan(totalArea) {
			break
		}
		atBound := money.Round(band.UpTo.Mul(money.Round(band.Rate.Mul(multiplier))))
		if atBound.GreaterThan(floor) {
			floor = atBound
		}
	}
	return floor
}
