package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"printquote/core/catalog"
	"printquote/core/money"
)

// QuoteBrochure prices folded brochures. The professional design fee depends
// only on the fold.
func QuoteBrochure(cfg BrochureConfig, rates BrochureRates) Breakdown {
	if cfg.Quantity <= 0 {
		return zeroBreakdown(catalog.Brochure, cfg.Quantity)
	}
	qty := decimal.NewFromInt(int64(cfg.Quantity))

	unitPrice, ok := rates.Weights.Lookup(cfg.Weight, qty)
	if !ok {
		return zeroBreakdown(catalog.Brochure, cfg.Quantity)
	}
	subtotal := money.Round(unitPrice.Mul(qty))

	b := Breakdown{
		Product:    catalog.Brochure,
		Quantity:   cfg.Quantity,
		UnitPrice:  money.Round(unitPrice),
		Subtotal:   subtotal,
		DesignFee:  decimal.Zero,
		Multiplier: one,
	}
	b.add("print", fmt.Sprintf("%d × %s", cfg.Quantity, unitPrice.StringFixed(2)), subtotal)

	if cfg.Design == catalog.DesignPro {
		if fee, ok := rates.ProFees[cfg.Fold]; ok {
			b.DesignFee = fee
			b.add("design", "professional design, "+cfg.Fold+" fold", fee)
		}
	}

	b.FinalPrice = money.Round(subtotal.Add(b.DesignFee))
	return b
}
