package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"printquote/core/catalog"
	"printquote/core/money"
)

// QuotePoster prices posters.
//
// Heavy "300g" materials are looked up under their 150g base material and
// multiplied. A size/material cell missing from the sparse table is priced at
// the fallback base price rather than failing.
func QuotePoster(cfg PosterConfig, rates PosterRates) Breakdown {
	if cfg.Quantity <= 0 {
		return zeroBreakdown(catalog.Poster, cfg.Quantity)
	}
	qty := decimal.NewFromInt(int64(cfg.Quantity))

	lookupMaterial := cfg.Material
	multiplier := one
	if v, ok := rates.Variants[cfg.Material]; ok {
		lookupMaterial = v.Base
		multiplier = v.Multiplier
	}

	key := PosterKey{Material: lookupMaterial, Size: cfg.Size}
	basePrice, ok := rates.Prices.Lookup(key, qty)
	if !ok {
		basePrice = rates.FallbackPrice
	}

	unitPrice := basePrice.Mul(multiplier)
	finalPrice := money.Round(unitPrice.Mul(qty))

	b := Breakdown{
		Product:      catalog.Poster,
		Quantity:     cfg.Quantity,
		FinalPrice:   finalPrice,
		UnitPrice:    money.Round(unitPrice),
		Subtotal:     finalPrice,
		DesignFee:    decimal.Zero,
		Multiplier:   multiplier,
		FallbackUsed: !ok,
	}

	formula := fmt.Sprintf("%d × %s × %s", cfg.Quantity, basePrice.StringFixed(2), multiplier.String())
	if !ok {
		formula += " (fallback base price)"
	}
	b.add("print", formula, finalPrice)
	return b
}
