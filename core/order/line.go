// Package order - Cart line payloads
// A Line is what the storefront sends to the cart: a priced, described
// configuration that can be re-identified by its stable ID.
package order

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"printquote/core/catalog"
	"printquote/core/determinism"
	"printquote/core/money"
	"printquote/core/pricing"
	"printquote/internal/errors"
)

var lineIDs = determinism.NewIDGenerator("printquote/line")

// Line is one cart line
type Line struct {
	ID            determinism.StableID  `json:"id"`
	Product       catalog.Product       `json:"product"`
	Description   string                `json:"description"`
	Quantity      int                   `json:"quantity"`
	UnitPrice     decimal.Decimal       `json:"unit_price"`
	Total         decimal.Decimal       `json:"total"`
	Currency      money.Currency        `json:"currency"`
	RateCard      string                `json:"rate_card"`
	Configuration pricing.Configuration `json:"configuration"`
}

// BuildLine turns a priced configuration into a cart line.
// A zero-priced breakdown cannot be ordered.
func BuildLine(cfg pricing.Configuration, b *pricing.Breakdown, card *pricing.RateCard) (*Line, error) {
	if cfg == nil {
		return nil, errors.Input("configuration is required")
	}
	if b == nil || b.IsZero() || b.Quantity <= 0 {
		return nil, errors.Input("price not calculated").WithContext("product", string(cfg.Product()))
	}
	if b.Product != cfg.Product() {
		return nil, errors.Newf(errors.TypeInput, "breakdown is for %s, configuration is for %s", b.Product, cfg.Product())
	}
	if card == nil {
		return nil, errors.RateCard("rate card is required")
	}

	id, err := lineIDs.GenerateFor(string(cfg.Product())+"@"+card.Version, cfg)
	if err != nil {
		return nil, errors.Internal("failed to identify cart line", err)
	}

	qty := decimal.NewFromInt(int64(b.Quantity))
	return &Line{
		ID:            id,
		Product:       cfg.Product(),
		Description:   Describe(catalog.Default(), cfg),
		Quantity:      b.Quantity,
		UnitPrice:     money.Round(b.FinalPrice.Div(qty)),
		Total:         b.FinalPrice,
		Currency:      b.Currency,
		RateCard:      card.Version,
		Configuration: cfg,
	}, nil
}

// Summary renders the confirmation text shown before adding to cart:
//
//	Afiș A2 - Hârtie 150g lucioasă
//	50 buc × 9.98 RON
//	Total: 499.00 RON
func (l *Line) Summary() string {
	var sb strings.Builder
	sb.WriteString(l.Description)
	fmt.Fprintf(&sb, "\n%d buc × %s", l.Quantity, money.Format(l.UnitPrice, l.Currency))
	fmt.Fprintf(&sb, "\nTotal: %s", money.Format(l.Total, l.Currency))
	return sb.String()
}

// MarshalJSON writes prices with exactly two decimals
func (l Line) MarshalJSON() ([]byte, error) {
	type plain Line
	return json.Marshal(struct {
		plain
		UnitPrice string `json:"unit_price"`
		Total     string `json:"total"`
	}{plain(l), money.Fixed(l.UnitPrice), money.Fixed(l.Total)})
}

// Describe labels a configuration with the catalog's display names.
// Unknown keys are shown as-is.
func Describe(cat *catalog.Catalog, cfg pricing.Configuration) string {
	entry := cat.MustEntry(cfg.Product())

	switch c := cfg.(type) {
	case pricing.PosterConfig:
		size, _ := entry.Size(c.Size)
		material, _ := entry.Material(c.Material)
		return fmt.Sprintf("%s %s - %s", entry.Label, label(size, c.Size), label(material, c.Material))

	case pricing.BannerConfig:
		material, _ := entry.Material(c.Material)
		parts := []string{
			fmt.Sprintf("%s %s×%s cm", entry.Label, dims(c.WidthCm), dims(c.HeightCm)),
			label(material, c.Material),
		}
		if c.WantHemAndGrommets {
			parts = append(parts, "Tiv și capse")
		}
		if c.WantWindHoles {
			parts = append(parts, "Găuri de vânt")
		}
		return strings.Join(parts, " • ")

	case pricing.FlyerConfig:
		size, _ := entry.Size(c.Size)
		weight, _ := entry.Weight(c.PaperWeight)
		sides := "Față"
		if c.TwoSided {
			sides = "Față-verso"
		}
		return fmt.Sprintf("%s %s • %s • %s", entry.Label, label(size, c.Size), label(weight, c.PaperWeight), sides)

	case pricing.BrochureConfig:
		fold, ok := entry.Fold(c.Fold)
		foldLabel := c.Fold
		if ok {
			foldLabel = fold.Label
		}
		weight, _ := entry.Weight(c.Weight)
		return fmt.Sprintf("%s %s • %s", entry.Label, foldLabel, label(weight, c.Weight))
	}

	return entry.Label
}

func label(o catalog.Option, key string) string {
	if o.Label == "" {
		return key
	}
	return o.Label
}

func dims(cm float64) string {
	return money.FromFloat(cm).String()
}
