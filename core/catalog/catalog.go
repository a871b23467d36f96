// Package catalog - Storefront option catalog
// Defines the closed option sets each product configurator offers.
// This is the source of truth for which keys a configuration may carry.
package catalog

import "slices"

// Product identifies a product family
type Product string

const (
	Poster   Product = "poster"
	Banner   Product = "banner"
	Flyer    Product = "flyer"
	Brochure Product = "brochure"
)

// Products lists every product family in storefront order
var Products = []Product{Poster, Banner, Flyer, Brochure}

// DesignOption selects how the artwork is supplied
type DesignOption string

const (
	// DesignUpload means the customer supplies print-ready files
	DesignUpload DesignOption = "upload"
	// DesignPro means the shop's designers produce the artwork
	DesignPro DesignOption = "pro"
	// DesignTextOnly means a text-only layout (banners only)
	DesignTextOnly DesignOption = "text_only"
)

// Option is a selectable configurator choice
type Option struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Dims        string `json:"dims,omitempty"`
}

// Fold is a brochure fold style
type Fold struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Open   string `json:"open"`
	Closed string `json:"closed"`
}

// ProductEntry groups the option sets of one product family
type ProductEntry struct {
	Product   Product        `json:"product"`
	Label     string         `json:"label"`
	Sizes     []Option       `json:"sizes,omitempty"`
	Materials []Option       `json:"materials,omitempty"`
	Weights   []Option       `json:"weights,omitempty"`
	Folds     []Fold         `json:"folds,omitempty"`
	Designs   []DesignOption `json:"designs,omitempty"`
}

// HasSize reports whether key is one of the product's sizes
func (e *ProductEntry) HasSize(key string) bool {
	_, ok := find(e.Sizes, key)
	return ok
}

// HasMaterial reports whether key is one of the product's materials
func (e *ProductEntry) HasMaterial(key string) bool {
	_, ok := find(e.Materials, key)
	return ok
}

// HasWeight reports whether key is one of the product's paper weights
func (e *ProductEntry) HasWeight(key string) bool {
	_, ok := find(e.Weights, key)
	return ok
}

// HasFold reports whether key is one of the product's folds
func (e *ProductEntry) HasFold(key string) bool {
	_, ok := e.Fold(key)
	return ok
}

// HasDesign reports whether the product offers the design option
func (e *ProductEntry) HasDesign(d DesignOption) bool {
	return slices.Contains(e.Designs, d)
}

// Size returns the size option for key
func (e *ProductEntry) Size(key string) (Option, bool) {
	return find(e.Sizes, key)
}

// Material returns the material option for key
func (e *ProductEntry) Material(key string) (Option, bool) {
	return find(e.Materials, key)
}

// Weight returns the paper weight option for key
func (e *ProductEntry) Weight(key string) (Option, bool) {
	return find(e.Weights, key)
}

// Fold returns the fold for key
func (e *ProductEntry) Fold(key string) (Fold, bool) {
	for _, f := range e.Folds {
		if f.Key == key {
			return f, true
		}
	}
	return Fold{}, false
}

func find(options []Option, key string) (Option, bool) {
	for _, o := range options {
		if o.Key == key {
			return o, true
		}
	}
	return Option{}, false
}

// Catalog is the full set of product entries
type Catalog struct {
	entries map[Product]*ProductEntry
}

// Entry returns the entry for a product family
func (c *Catalog) Entry(p Product) (*ProductEntry, bool) {
	e, ok := c.entries[p]
	return e, ok
}

// MustEntry returns the entry for a product family that is known to exist
func (c *Catalog) MustEntry(p Product) *ProductEntry {
	e, ok := c.entries[p]
	if !ok {
		panic("catalog: no entry for product " + string(p))
	}
	return e
}

// Entries returns every entry in storefront order
func (c *Catalog) Entries() []*ProductEntry {
	out := make([]*ProductEntry, 0, len(Products))
	for _, p := range Products {
		if e, ok := c.entries[p]; ok {
			out = append(out, e)
		}
	}
	return out
}

var defaultCatalog = &Catalog{entries: map[Product]*ProductEntry{
	Poster:   posterEntry(),
	Banner:   bannerEntry(),
	Flyer:    flyerEntry(),
	Brochure: brochureEntry(),
}}

// Default returns the storefront catalog. It must not be mutated.
func Default() *Catalog {
	return defaultCatalog
}

var designLabels = map[DesignOption]string{
	DesignUpload:   "Am grafică proprie",
	DesignPro:      "Design profesional",
	DesignTextOnly: "Doar text",
}

// Label returns the storefront label of a design option
func (d DesignOption) Label() string {
	if l, ok := designLabels[d]; ok {
		return l
	}
	return string(d)
}

func posterEntry() *ProductEntry {
	return &ProductEntry{
		Product: Poster,
		Label:   "Afiș",
		Sizes: []Option{
			{Key: "A3", Label: "A3", Dims: "297×420 mm"},
			{Key: "A2", Label: "A2", Dims: "420×594 mm"},
			{Key: "A1", Label: "A1", Dims: "594×841 mm"},
			{Key: "A0", Label: "A0", Dims: "841×1189 mm"},
			{Key: "S5", Label: "S5", Dims: "500×700 mm"},
			{Key: "S7", Label: "S7", Dims: "700×1000 mm"},
		},
		Materials: []Option{
			{Key: "paper_150_lucioasa", Label: "Hârtie 150g lucioasă", Description: "Standard"},
			{Key: "paper_150_mata", Label: "Hârtie 150g mată", Description: "Elegant"},
			{Key: "paper_300_lucioasa", Label: "Carton 300g lucios", Description: "Rigid"},
			{Key: "paper_300_mata", Label: "Carton 300g mat", Description: "Premium"},
			{Key: "blueback_115", Label: "Blueback 115g", Description: "Outdoor"},
			{Key: "whiteback_150_material", Label: "Whiteback 150g", Description: "Indoor"},
			{Key: "satin_170", Label: "Satin 170g", Description: "Foto"},
			{Key: "foto_220", Label: "Hârtie Foto 220g", Description: "Foto Premium"},
		},
	}
}

func bannerEntry() *ProductEntry {
	return &ProductEntry{
		Product: Banner,
		Label:   "Banner",
		Materials: []Option{
			{Key: "frontlit_440", Label: "Frontlit 440g (Standard)", Description: "Material PVC flexibil și rezistent, ideal pentru uz exterior"},
			{Key: "frontlit_510", Label: "Frontlit 510g (Premium)", Description: "Material mai gros și durabil, perfect pentru utilizare pe termen lung"},
		},
		Designs: []DesignOption{DesignUpload, DesignPro, DesignTextOnly},
	}
}

func flyerEntry() *ProductEntry {
	return &ProductEntry{
		Product: Flyer,
		Label:   "Flyere",
		Sizes: []Option{
			{Key: "A6", Label: "A6", Dims: "105 × 148 mm"},
			{Key: "A5", Label: "A5", Dims: "148 × 210 mm"},
			{Key: "21x10", Label: "21 × 10 cm", Dims: "210 × 100 mm"},
		},
		Weights: []Option{
			{Key: "135", Label: "135 g/mp (Standard)"},
			{Key: "250", Label: "250 g/mp (Premium)"},
		},
		Designs: []DesignOption{DesignUpload, DesignPro},
	}
}

func brochureEntry() *ProductEntry {
	return &ProductEntry{
		Product: Brochure,
		Label:   "Pliante",
		Weights: []Option{
			{Key: "115", Label: "115g"},
			{Key: "170", Label: "170g"},
			{Key: "250", Label: "250g"},
		},
		Folds: []Fold{
			{Key: "simplu", Label: "1 big (Simplu)", Open: "297×210mm", Closed: "148.5×210mm"},
			{Key: "fereastra", Label: "2 biguri (Fereastră)", Open: "297×210mm", Closed: "148.5×210mm"},
			{Key: "paralel", Label: "3 biguri (Paralel)", Open: "297×210mm", Closed: "75×210mm"},
			{Key: "fluture", Label: "4 biguri (Fluture)", Open: "297×210mm", Closed: "74.25×210mm"},
		},
		Designs: []DesignOption{DesignUpload, DesignPro},
	}
}
