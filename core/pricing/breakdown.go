package pricing

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"printquote/core/catalog"
	"printquote/core/money"
)

// Component is one priced line of a breakdown
type Component struct {
	Name    string          `json:"name"`
	Formula string          `json:"formula"`
	Amount  decimal.Decimal `json:"amount"`
}

// Breakdown is the result of pricing one configuration.
// Every monetary field is cent exact; FinalPrice is never negative and is zero
// only for degenerate input.
type Breakdown struct {
	Product  catalog.Product `json:"product"`
	Currency money.Currency  `json:"currency"`
	Quantity int             `json:"quantity"`

	FinalPrice decimal.Decimal `json:"final_price"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	DesignFee  decimal.Decimal `json:"design_fee"`
	Multiplier decimal.Decimal `json:"multiplier"`

	// Banner only
	TotalArea   decimal.Decimal `json:"total_sqm"`
	PricePerSqm decimal.Decimal `json:"price_per_sqm"`

	// FallbackUsed marks a poster priced with the fallback base price
	FallbackUsed bool `json:"fallback_used,omitempty"`

	Components []Component `json:"components,omitempty"`
}

// MarshalJSON writes monetary fields with exactly two decimals
func (c Component) MarshalJSON() ([]byte, error) {
	type plain Component
	return json.Marshal(struct {
		plain
		Amount string `json:"amount"`
	}{plain(c), money.Fixed(c.Amount)})
}

// MarshalJSON writes monetary fields with exactly two decimals, matching
// what the storefront shows. The multiplier keeps its full precision.
func (b Breakdown) MarshalJSON() ([]byte, error) {
	type plain Breakdown
	return json.Marshal(struct {
		plain
		FinalPrice  string `json:"final_price"`
		UnitPrice   string `json:"unit_price"`
		Subtotal    string `json:"subtotal"`
		DesignFee   string `json:"design_fee"`
		TotalArea   string `json:"total_sqm"`
		PricePerSqm string `json:"price_per_sqm"`
	}{
		plain:       plain(b),
		FinalPrice:  money.Fixed(b.FinalPrice),
		UnitPrice:   money.Fixed(b.UnitPrice),
		Subtotal:    money.Fixed(b.Subtotal),
		DesignFee:   money.Fixed(b.DesignFee),
		TotalArea:   money.Fixed(b.TotalArea),
		PricePerSqm: money.Fixed(b.PricePerSqm),
	})
}

// IsZero reports whether the breakdown is the degenerate zero quote
func (b Breakdown) IsZero() bool {
	return b.FinalPrice.IsZero()
}

func zeroBreakdown(p catalog.Product, quantity int) Breakdown {
	return Breakdown{Product: p, Quantity: quantity}
}

func (b *Breakdown) add(name, formula string, amount decimal.Decimal) {
	b.Components = append(b.Components, Component{Name: name, Formula: formula, Amount: amount})
}
