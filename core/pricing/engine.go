package pricing

import (
	"go.uber.org/zap"

	"printquote/core/catalog"
	"printquote/internal/errors"
)

// Engine quotes configurations against one validated rate card.
// It is immutable after construction and safe for concurrent use.
type Engine struct {
	card    *RateCard
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// NewEngine validates the card against the storefront catalog
func NewEngine(card *RateCard, logger *zap.Logger) (*Engine, error) {
	if card == nil {
		return nil, errors.RateCard("rate card is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	cat := catalog.Default()
	if err := card.Validate(cat); err != nil {
		return nil, err
	}

	return &Engine{
		card:    card,
		catalog: cat,
		logger:  logger.With(zap.String("rate_card", card.Version)),
	}, nil
}

// Card returns the rate card the engine prices with
func (e *Engine) Card() *RateCard {
	return e.card
}

// Catalog returns the option catalog used for input checks
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Quote prices one configuration.
// Unknown option keys are rejected; degenerate numeric input yields a zero
// breakdown without error.
func (e *Engine) Quote(cfg Configuration) (*Breakdown, error) {
	if cfg == nil {
		return nil, errors.Input("configuration is required")
	}

	entry, ok := e.catalog.Entry(cfg.Product())
	if !ok {
		return nil, errors.Newf(errors.TypeInput, "unsupported product %q", cfg.Product())
	}
	if err := cfg.validate(entry); err != nil {
		return nil, err
	}

	var b Breakdown
	switch c := cfg.(type) {
	case PosterConfig:
		b = QuotePoster(c, e.card.Poster)
	case BannerConfig:
		b = QuoteBanner(c, e.card.Banner)
	case FlyerConfig:
		b = QuoteFlyer(c, e.card.Flyer)
	case BrochureConfig:
		b = QuoteBrochure(c, e.card.Brochure)
	default:
		return nil, errors.Newf(errors.TypeInput, "unsupported configuration %T", cfg)
	}
	b.Currency = e.card.Currency

	if b.FallbackUsed {
		e.logger.Warn("poster priced with fallback base price",
			zap.Any("configuration", cfg),
			zap.String("fallback_price", e.card.Poster.FallbackPrice.String()),
		)
	}
	e.logger.Debug("quoted",
		zap.String("product", string(b.Product)),
		zap.Int("quantity", b.Quantity),
		zap.String("final_price", b.FinalPrice.StringFixed(2)),
	)

	return &b, nil
}
