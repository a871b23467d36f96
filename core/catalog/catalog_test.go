package catalog

import "testing"

func TestDefaultCatalogCoversEveryProduct(t *testing.T) {
	c := Default()
	for _, p := range Products {
		if _, ok := c.Entry(p); !ok {
			t.Errorf("missing catalog entry for %s", p)
		}
	}
	if got := len(c.Entries()); got != len(Products) {
		t.Errorf("Entries() returned %d entries, want %d", got, len(Products))
	}
}

func TestProductOptionSets(t *testing.T) {
	c := Default()

	tests := []struct {
		name  string
		check func() bool
		want  bool
	}{
		{"poster size A2", func() bool { return c.MustEntry(Poster).HasSize("A2") }, true},
		{"poster size A4", func() bool { return c.MustEntry(Poster).HasSize("A4") }, false},
		{"poster rigid material", func() bool { return c.MustEntry(Poster).HasMaterial("paper_300_mata") }, true},
		{"banner premium material", func() bool { return c.MustEntry(Banner).HasMaterial("frontlit_510") }, true},
		{"banner text only design", func() bool { return c.MustEntry(Banner).HasDesign(DesignTextOnly) }, true},
		{"flyer text only design", func() bool { return c.MustEntry(Flyer).HasDesign(DesignTextOnly) }, false},
		{"flyer weight 250", func() bool { return c.MustEntry(Flyer).HasWeight("250") }, true},
		{"flyer size 21x10", func() bool { return c.MustEntry(Flyer).HasSize("21x10") }, true},
		{"brochure weight 170", func() bool { return c.MustEntry(Brochure).HasWeight("170") }, true},
		{"brochure weight 135", func() bool { return c.MustEntry(Brochure).HasWeight("135") }, false},
		{"brochure fold paralel", func() bool { return c.MustEntry(Brochure).HasFold("paralel") }, true},
		{"brochure fold zigzag", func() bool { return c.MustEntry(Brochure).HasFold("zigzag") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFoldDimensions(t *testing.T) {
	fold, ok := Default().MustEntry(Brochure).Fold("fluture")
	if !ok {
		t.Fatal("fold fluture not found")
	}
	if fold.Open != "297×210mm" || fold.Closed != "74.25×210mm" {
		t.Errorf("unexpected fluture dims: %+v", fold)
	}
}

func TestDesignOptionLabel(t *testing.T) {
	if got := DesignPro.Label(); got != "Design profesional" {
		t.Errorf("DesignPro.Label() = %q", got)
	}
	if got := DesignOption("custom").Label(); got != "custom" {
		t.Errorf("unknown design label = %q", got)
	}
}

func TestMustEntryPanicsOnUnknownProduct(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown product")
		}
	}()
	Default().MustEntry(Product("canvas"))
}
