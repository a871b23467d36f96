package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"printquote/core/catalog"
	"printquote/core/money"
)

// QuoteFlyer prices flyers per piece. The design fee is charged per printed
// face, so a two-sided professional design costs twice the flat fee.
func QuoteFlyer(cfg FlyerConfig, rates FlyerRates) Breakdown {
	if cfg.Quantity <= 0 {
		return zeroBreakdown(catalog.Flyer, cfg.Quantity)
	}
	schedule, ok := rates.Sizes.Schedule(cfg.Size)
	if !ok {
		return zeroBreakdown(catalog.Flyer, cfg.Quantity)
	}
	qty := decimal.NewFromInt(int64(cfg.Quantity))

	band, ok := schedule.Lookup(qty)
	if !ok {
		band, _ = schedule.First()
	}
	baseRate := band.OneSided
	if cfg.TwoSided {
		baseRate = band.TwoSided
	}

	multiplier := one
	if m, ok := rates.PaperWeightMultipliers[cfg.PaperWeight]; ok {
		multiplier = m
	}
	unitPrice := money.Round(baseRate.Mul(multiplier))
	subtotal := money.Round(unitPrice.Mul(qty))

	b := Breakdown{
		Product:    catalog.Flyer,
		Quantity:   cfg.Quantity,
		UnitPrice:  unitPrice,
		Subtotal:   subtotal,
		DesignFee:  decimal.Zero,
		Multiplier: multiplier,
	}
	b.add("print", fmt.Sprintf("%d × %s", cfg.Quantity, unitPrice.StringFixed(2)), subtotal)

	if cfg.Design == catalog.DesignPro {
		faces := cfg.Faces()
		b.DesignFee = rates.ProFeePerFace.Mul(decimal.NewFromInt(int64(faces)))
		b.add("design", fmt.Sprintf("%d × %s per face", faces, rates.ProFeePerFace.StringFixed(2)), b.DesignFee)
	}

	b.FinalPrice = money.Round(unitPrice.Mul(qty).Add(b.DesignFee))
	return b
}
