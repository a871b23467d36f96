package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"printquote/core/catalog"
	"printquote/core/order"
	"printquote/core/pricing"
	"printquote/internal/errors"
)

func posterResult(t *testing.T, cfg pricing.PosterConfig) *QuoteResult {
	t.Helper()
	card := pricing.DefaultRateCard()
	engine, err := pricing.NewEngine(card, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := engine.Quote(cfg)
	if err != nil {
		t.Fatal(err)
	}
	line, err := order.BuildLine(cfg, b, card)
	if err != nil {
		t.Fatal(err)
	}
	return &QuoteResult{Breakdown: b, Line: line, Metadata: QuoteMetadata{RateCard: card.Version, Version: "test"}}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(true, false, false)

	for _, format := range []Format{FormatCLI, FormatJSON} {
		f, err := r.Get(format)
		if err != nil {
			t.Fatalf("Get(%s): %v", format, err)
		}
		if f.Format() != format {
			t.Errorf("Get(%s) returned %s", format, f.Format())
		}
	}

	if _, err := r.Get("html"); !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("expected NOT_FOUND for html, got %v", err)
	}
	if err := r.Register(NewJSONFormatter()); err == nil {
		t.Error("expected duplicate registration to fail")
	}
	if got := r.Formats(); len(got) != 2 || got[0] != FormatCLI {
		t.Errorf("Formats() = %v", got)
	}
}

func TestJSONQuote(t *testing.T) {
	result := posterResult(t, pricing.PosterConfig{Size: "A2", Material: "paper_150_lucioasa", Quantity: 50})

	var buf bytes.Buffer
	if err := NewJSONFormatter().RenderQuote(&buf, result); err != nil {
		t.Fatal(err)
	}

	var decoded struct {
		Breakdown struct {
			FinalPrice string `json:"final_price"`
			Currency   string `json:"currency"`
		} `json:"breakdown"`
		Line struct {
			Description   string         `json:"description"`
			UnitPrice     string         `json:"unit_price"`
			Total         string         `json:"total"`
			Configuration map[string]any `json:"configuration"`
		} `json:"line"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if decoded.Breakdown.FinalPrice != "499.00" || decoded.Breakdown.Currency != "RON" {
		t.Errorf("breakdown = %+v", decoded.Breakdown)
	}
	if decoded.Line.UnitPrice != "9.98" || decoded.Line.Total != "499.00" {
		t.Errorf("line prices = %s, %s", decoded.Line.UnitPrice, decoded.Line.Total)
	}
	if decoded.Line.Description != "Afiș A2 - Hârtie 150g lucioasă" {
		t.Errorf("description = %q", decoded.Line.Description)
	}
	if decoded.Line.Configuration["size"] != "A2" {
		t.Errorf("configuration = %v", decoded.Line.Configuration)
	}
}

func TestCLIQuote(t *testing.T) {
	result := posterResult(t, pricing.PosterConfig{Size: "A1", Material: "whiteback_150_material", Quantity: 2})

	var buf bytes.Buffer
	if err := NewCLIFormatter(true, true, false).RenderQuote(&buf, result); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"Afiș A1 - Whiteback 150g", "20.00 RON", "fallback base price used", "Component", "print"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCLIQuoteVerbose(t *testing.T) {
	result := posterResult(t, pricing.PosterConfig{Size: "A2", Material: "paper_150_lucioasa", Quantity: 50})
	detail := "line " + string(result.Line.ID)

	var quiet bytes.Buffer
	if err := NewCLIFormatter(true, false, false).RenderQuote(&quiet, result); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(quiet.String(), detail) {
		t.Errorf("line ID shown without verbose:\n%s", quiet.String())
	}
	if strings.HasSuffix(quiet.String(), "\n\n") {
		t.Errorf("trailing blank line without verbose:\n%q", quiet.String())
	}

	var verbose bytes.Buffer
	if err := NewCLIFormatter(true, false, true).RenderQuote(&verbose, result); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(verbose.String(), detail) {
		t.Errorf("verbose output missing %q:\n%s", detail, verbose.String())
	}
}

func TestCLIQuoteZeroPrice(t *testing.T) {
	b := pricing.QuoteBanner(pricing.BannerConfig{WidthCm: 0, HeightCm: 100, Quantity: 1}, pricing.DefaultRateCard().Banner)

	var buf bytes.Buffer
	if err := NewCLIFormatter(true, false, false).RenderQuote(&buf, &QuoteResult{Breakdown: &b}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "price not calculated") {
		t.Errorf("expected zero price warning:\n%s", buf.String())
	}
}

func TestRenderCatalog(t *testing.T) {
	cat := catalog.Default()

	var cli bytes.Buffer
	if err := NewCLIFormatter(true, false, false).RenderCatalog(&cli, cat); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Afiș (poster)", "frontlit_510", "3 biguri (Paralel)", "Design profesional"} {
		if !strings.Contains(cli.String(), want) {
			t.Errorf("catalog missing %q", want)
		}
	}

	var js bytes.Buffer
	if err := NewJSONFormatter().RenderCatalog(&js, cat); err != nil {
		t.Fatal(err)
	}
	var entries []catalog.ProductEntry
	if err := json.Unmarshal(js.Bytes(), &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != len(catalog.Products) {
		t.Errorf("expected %d entries, got %d", len(catalog.Products), len(entries))
	}
}
