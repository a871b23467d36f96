package pricing

import (
	"printquote/core/catalog"
	"printquote/internal/errors"
)

// Configuration is a product configuration built from UI state.
// It is a closed set: only the four product configs below implement it.
type Configuration interface {
	Product() catalog.Product
	validate(entry *catalog.ProductEntry) error
}

// PosterConfig configures a poster (afiș)
type PosterConfig struct {
	Size     string `json:"size"`
	Material string `json:"material"`
	Quantity int    `json:"quantity"`
}

// Product implements Configuration
func (PosterConfig) Product() catalog.Product { return catalog.Poster }

func (c PosterConfig) validate(entry *catalog.ProductEntry) error {
	if !entry.HasSize(c.Size) {
		return errors.UnknownOption(string(catalog.Poster), "size", c.Size)
	}
	if !entry.HasMaterial(c.Material) {
		return errors.UnknownOption(string(catalog.Poster), "material", c.Material)
	}
	return nil
}

// BannerConfig configures a PVC banner
type BannerConfig struct {
	WidthCm            float64              `json:"width_cm"`
	HeightCm           float64              `json:"height_cm"`
	Quantity           int                  `json:"quantity"`
	Material           string               `json:"material"`
	WantWindHoles      bool                 `json:"want_wind_holes"`
	WantHemAndGrommets bool                 `json:"want_hem_and_grommets"`
	Design             catalog.DesignOption `json:"design_option"`
}

// Product implements Configuration
func (BannerConfig) Product() catalog.Product { return catalog.Banner }

func (c BannerConfig) validate(entry *catalog.ProductEntry) error {
	if !entry.HasMaterial(c.Material) {
		return errors.UnknownOption(string(catalog.Banner), "material", c.Material)
	}
	if !entry.HasDesign(c.Design) {
		return errors.UnknownOption(string(catalog.Banner), "design option", string(c.Design))
	}
	return nil
}

// FlyerConfig configures flyers
type FlyerConfig struct {
	Size        string               `json:"size"`
	Quantity    int                  `json:"quantity"`
	TwoSided    bool                 `json:"two_sided"`
	PaperWeight string               `json:"paper_weight"`
	Design      catalog.DesignOption `json:"design_option"`
}

// Product implements Configuration
func (FlyerConfig) Product() catalog.Product { return catalog.Flyer }

// Faces is the number of printed faces
func (c FlyerConfig) Faces() int {
	if c.TwoSided {
		return 2
	}
	return 1
}

func (c FlyerConfig) validate(entry *catalog.ProductEntry) error {
	if !entry.HasSize(c.Size) {
		return errors.UnknownOption(string(catalog.Flyer), "size", c.Size)
	}
	if !entry.HasWeight(c.PaperWeight) {
		return errors.UnknownOption(string(catalog.Flyer), "paper weight", c.PaperWeight)
	}
	if !entry.HasDesign(c.Design) {
		return errors.UnknownOption(string(catalog.Flyer), "design option", string(c.Design))
	}
	return nil
}

// BrochureConfig configures folded brochures (pliante)
type BrochureConfig struct {
	Weight   string               `json:"weight"`
	Quantity int                  `json:"quantity"`
	Fold     string               `json:"fold"`
	Design   catalog.DesignOption `json:"design_option"`
}

// Product implements Configuration
func (BrochureConfig) Product() catalog.Product { return catalog.Brochure }

func (c BrochureConfig) validate(entry *catalog.ProductEntry) error {
	if !entry.HasWeight(c.Weight) {
		return errors.UnknownOption(string(catalog.Brochure), "weight", c.Weight)
	}
	if !entry.HasFold(c.Fold) {
		return errors.UnknownOption(string(catalog.Brochure), "fold", c.Fold)
	}
	if !entry.HasDesign(c.Design) {
		return errors.UnknownOption(string(catalog.Brochure), "design option", string(c.Design))
	}
	return nil
}
