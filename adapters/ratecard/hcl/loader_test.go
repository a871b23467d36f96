package hcl

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"printquote/core/catalog"
	"printquote/core/pricing"
	"printquote/internal/errors"
)

func TestLoadTestdata(t *testing.T) {
	card, err := Load(filepath.Join("testdata", "ratecard.hcl"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if card.Version != "2025.spring" {
		t.Errorf("Version = %s", card.Version)
	}
	if !card.Banner.BreakpointFloor {
		t.Error("expected breakpoint floor enabled")
	}

	engine, err := pricing.NewEngine(card, nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	tests := []struct {
		name string
		cfg  pricing.Configuration
		want string
	}{
		{"tiered A3 at bound", pricing.PosterConfig{Size: "A3", Material: "paper_150_lucioasa", Quantity: 100}, "300.00"},
		{"tiered A3 past bound", pricing.PosterConfig{Size: "A3", Material: "paper_150_lucioasa", Quantity: 200}, "500.00"},
		{"string rate", pricing.PosterConfig{Size: "A2", Material: "paper_150_mata", Quantity: 50}, "499.00"},
		{"missing cell falls back", pricing.PosterConfig{Size: "A3", Material: "paper_150_mata", Quantity: 5}, "50.00"},
		{"banner floor", pricing.BannerConfig{WidthCm: 100, HeightCm: 100, Quantity: 6, Material: "frontlit_440", Design: catalog.DesignUpload}, "375.00"},
		{"flyer second bracket", pricing.FlyerConfig{Size: "21x10", Quantity: 2000, PaperWeight: "135", Design: catalog.DesignUpload}, "400.00"},
		{"brochure", pricing.BrochureConfig{Weight: "170", Quantity: 100, Fold: "paralel", Design: catalog.DesignPro}, "525.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := engine.Quote(tt.cfg)
			if err != nil {
				t.Fatalf("Quote: %v", err)
			}
			if !b.FinalPrice.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("final = %s, want %s", b.FinalPrice.StringFixed(2), tt.want)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	original := pricing.DefaultRateCard()
	src := Encode(original)

	parsed, err := Parse(src, "default.hcl")
	if err != nil {
		t.Fatalf("Parse of encoded default card: %v\n%s", err, src)
	}
	if parsed.Version != original.Version || parsed.Currency != original.Currency {
		t.Errorf("header mismatch: %s %s", parsed.Version, parsed.Currency)
	}
	if again := Encode(parsed); !bytes.Equal(src, again) {
		t.Errorf("re-encoding differs:\n%s\n---\n%s", src, again)
	}

	configs := []pricing.Configuration{
		pricing.PosterConfig{Size: "A2", Material: "paper_150_lucioasa", Quantity: 50},
		pricing.PosterConfig{Size: "A1", Material: "whiteback_150_material", Quantity: 3},
		pricing.PosterConfig{Size: "S7", Material: "paper_300_mata", Quantity: 2},
		pricing.BannerConfig{WidthCm: 200, HeightCm: 100, Quantity: 1, Material: "frontlit_440", WantHemAndGrommets: true, Design: catalog.DesignUpload},
		pricing.BannerConfig{WidthCm: 310, HeightCm: 95, Quantity: 9, Material: "frontlit_510", WantWindHoles: true, Design: catalog.DesignPro},
		pricing.FlyerConfig{Size: "A6", Quantity: 100, PaperWeight: "135", Design: catalog.DesignUpload},
		pricing.FlyerConfig{Size: "A5", Quantity: 7000, TwoSided: true, PaperWeight: "250", Design: catalog.DesignPro},
		pricing.BrochureConfig{Weight: "170", Quantity: 100, Fold: "paralel", Design: catalog.DesignPro},
	}

	want, _ := pricing.NewEngine(original, nil)
	got, err := pricing.NewEngine(parsed, nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	for _, cfg := range configs {
		a, _ := want.Quote(cfg)
		b, _ := got.Quote(cfg)
		if !a.FinalPrice.Equal(b.FinalPrice) || !a.UnitPrice.Equal(b.UnitPrice) {
			t.Errorf("%T %+v: default %s, round trip %s", cfg, cfg, a.FinalPrice, b.FinalPrice)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		errType errors.Type
	}{
		{
			name:    "syntax",
			src:     `version = `,
			errType: errors.TypeParsing,
		},
		{
			name:    "missing sections",
			src:     "version = \"x\"\ncurrency = \"RON\"\n",
			errType: errors.TypeParsing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "bad.hcl")
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.IsType(err, tt.errType) {
				t.Errorf("expected %s, got %v", tt.errType, err)
			}
		})
	}
}

func TestParseRejectsRateAndBands(t *testing.T) {
	src, err := os.ReadFile(filepath.Join("testdata", "ratecard.hcl"))
	if err != nil {
		t.Fatal(err)
	}
	bad := bytes.Replace(src,
		[]byte(`weight "115" { rate = 3.2 }`),
		[]byte("weight \"115\" {\n    rate = 3.2\n    band {\n      rate = 3\n    }\n  }"), 1)

	_, err = Parse(bad, "bad.hcl")
	if !errors.IsType(err, errors.TypeParsing) {
		t.Errorf("expected PARSING_ERROR, got %v", err)
	}
}

func TestParseRejectsDuplicateBlocks(t *testing.T) {
	src, err := os.ReadFile(filepath.Join("testdata", "ratecard.hcl"))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		anchor string
		extra  string
	}{
		{"poster variant", `variant "paper_300_lucioasa" {`, "variant \"paper_300_lucioasa\" {\n    base       = \"paper_150_lucioasa\"\n    multiplier = 3\n  }\n  "},
		{"flyer size", `size "A5" {`, "size \"A5\" {\n    band {\n      one_sided = 1\n      two_sided = 1\n    }\n  }\n  "},
		{"brochure weight", `weight "170" { rate = 3.5 }`, "weight \"170\" { rate = 9 }\n  "},
		{"brochure fold", `fold "fluture" { pro_fee = 200 }`, "fold \"fluture\" { pro_fee = 1 }\n  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !bytes.Contains(src, []byte(tt.anchor)) {
				t.Fatalf("testdata has no %s", tt.anchor)
			}
			bad := bytes.Replace(src, []byte(tt.anchor), []byte(tt.extra+tt.anchor), 1)

			card, err := Parse(bad, "duplicate.hcl")
			if !errors.IsType(err, errors.TypeParsing) {
				t.Fatalf("expected PARSING_ERROR, got card=%v err=%v", card != nil, err)
			}
		})
	}
}

func TestParseValidatesAgainstCatalog(t *testing.T) {
	card := pricing.DefaultRateCard()
	delete(card.Brochure.ProFees, "fluture")

	_, err := Parse(Encode(card), "incomplete.hcl")
	if !errors.IsType(err, errors.TypeRateCard) {
		t.Errorf("expected RATE_CARD_ERROR, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	if !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}
