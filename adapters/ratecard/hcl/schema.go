package hcl

import "github.com/zclconf/go-cty/cty"

// rateCardFile is the top-level layout of a rate card file:
//
//	version  = "2024.1"
//	currency = "RON"
//
//	poster   { ... }
//	banner   { ... }
//	flyer    { ... }
//	brochure { ... }
type rateCardFile struct {
	Version  string        `hcl:"version"`
	Currency string        `hcl:"currency"`
	Poster   posterBlock   `hcl:"poster,block"`
	Banner   bannerBlock   `hcl:"banner,block"`
	Flyer    flyerBlock    `hcl:"flyer,block"`
	Brochure brochureBlock `hcl:"brochure,block"`
}

// bandBlock is one tier; an omitted up_to is the unbounded last tier
type bandBlock struct {
	UpTo cty.Value `hcl:"up_to,optional"`
	Rate cty.Value `hcl:"rate"`
}

type posterBlock struct {
	FallbackPrice cty.Value      `hcl:"fallback_price"`
	Prices        []priceBlock   `hcl:"price,block"`
	Variants      []variantBlock `hcl:"variant,block"`
}

// priceBlock takes either a flat rate or band blocks, never both
type priceBlock struct {
	Material string      `hcl:"material,label"`
	Size     string      `hcl:"size,label"`
	Rate     cty.Value   `hcl:"rate,optional"`
	Bands    []bandBlock `hcl:"band,block"`
}

type variantBlock struct {
	Material   string    `hcl:"material,label"`
	Base       string    `hcl:"base"`
	Multiplier cty.Value `hcl:"multiplier"`
}

type multiplierBlock struct {
	Key        string    `hcl:"key,label"`
	Multiplier cty.Value `hcl:"multiplier"`
}

type bannerBlock struct {
	HemAndGrommets  cty.Value         `hcl:"hem_and_grommets_multiplier"`
	WindHoles       cty.Value         `hcl:"wind_holes_multiplier"`
	ProDesignFee    cty.Value         `hcl:"pro_design_fee"`
	BreakpointFloor bool              `hcl:"breakpoint_floor,optional"`
	Materials       []multiplierBlock `hcl:"material,block"`
	Bands           []bandBlock       `hcl:"band,block"`
}

type flyerBandBlock struct {
	UpTo     cty.Value `hcl:"up_to,optional"`
	OneSided cty.Value `hcl:"one_sided"`
	TwoSided cty.Value `hcl:"two_sided"`
}

type flyerSizeBlock struct {
	Key   string           `hcl:"key,label"`
	Bands []flyerBandBlock `hcl:"band,block"`
}

type flyerBlock struct {
	ProFeePerFace cty.Value         `hcl:"pro_fee_per_face"`
	Sizes         []flyerSizeBlock  `hcl:"size,block"`
	PaperWeights  []multiplierBlock `hcl:"paper_weight,block"`
}

type weightBlock struct {
	Key   string      `hcl:"key,label"`
	Rate  cty.Value   `hcl:"rate,optional"`
	Bands []bandBlock `hcl:"band,block"`
}

type foldBlock struct {
	Key    string    `hcl:"key,label"`
	ProFee cty.Value `hcl:"pro_fee"`
}

type brochureBlock struct {
	Weights []weightBlock `hcl:"weight,block"`
	Folds   []foldBlock   `hcl:"fold,block"`
}
