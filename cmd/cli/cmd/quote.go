// Package cmd - quote commands
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	hclcard "printquote/adapters/ratecard/hcl"
	"printquote/core/catalog"
	"printquote/core/determinism"
	"printquote/core/order"
	"printquote/core/output"
	"printquote/core/pricing"
	"printquote/internal/logging"
)

var (
	quoteQuantity int
	quoteDesign   string

	posterSize     string
	posterMaterial string

	bannerWidth       float64
	bannerHeight      float64
	bannerMaterial    string
	bannerWindHoles   bool
	bannerHemGrommets bool

	flyerSize     string
	flyerTwoSided bool
	flyerWeight   string

	brochureWeight string
	brochureFold   string
)

// quoteCmd groups the per-product quote commands
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Price a product configuration",
}

var quotePosterCmd = &cobra.Command{
	Use:   "poster",
	Short: "Price posters (afișe)",
	Long: `Price posters by size and material.

Sizes and materials without a table price are quoted at the fallback
base price and flagged in the output.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuote(cmd, pricing.PosterConfig{
			Size:     posterSize,
			Material: posterMaterial,
			Quantity: quoteQuantity,
		})
	},
}

var quoteBannerCmd = &cobra.Command{
	Use:   "banner",
	Short: "Price PVC banners by area",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuote(cmd, pricing.BannerConfig{
			WidthCm:            bannerWidth,
			HeightCm:           bannerHeight,
			Quantity:           quoteQuantity,
			Material:           bannerMaterial,
			WantWindHoles:      bannerWindHoles,
			WantHemAndGrommets: bannerHemGrommets,
			Design:             catalog.DesignOption(quoteDesign),
		})
	},
}

var quoteFlyerCmd = &cobra.Command{
	Use:   "flyer",
	Short: "Price flyers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuote(cmd, pricing.FlyerConfig{
			Size:        flyerSize,
			Quantity:    quoteQuantity,
			TwoSided:    flyerTwoSided,
			PaperWeight: flyerWeight,
			Design:      catalog.DesignOption(quoteDesign),
		})
	},
}

var quoteBrochureCmd = &cobra.Command{
	Use:   "brochure",
	Short: "Price folded brochures (pliante)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuote(cmd, pricing.BrochureConfig{
			Weight:   brochureWeight,
			Quantity: quoteQuantity,
			Fold:     brochureFold,
			Design:   catalog.DesignOption(quoteDesign),
		})
	},
}

func init() {
	rootCmd.AddCommand(quoteCmd)
	quoteCmd.AddCommand(quotePosterCmd, quoteBannerCmd, quoteFlyerCmd, quoteBrochureCmd)

	quoteCmd.PersistentFlags().IntVarP(&quoteQuantity, "quantity", "q", 1, "number of pieces")

	quotePosterCmd.Flags().StringVar(&posterSize, "size", "A2", "poster size (A3, A2, A1, A0, S5, S7)")
	quotePosterCmd.Flags().StringVar(&posterMaterial, "material", "paper_150_lucioasa", "poster material")

	quoteBannerCmd.Flags().Float64Var(&bannerWidth, "width", 0, "width in cm")
	quoteBannerCmd.Flags().Float64Var(&bannerHeight, "height", 0, "height in cm")
	quoteBannerCmd.Flags().StringVar(&bannerMaterial, "material", "frontlit_440", "banner material (frontlit_440, frontlit_510)")
	quoteBannerCmd.Flags().BoolVar(&bannerWindHoles, "wind-holes", false, "add wind holes")
	quoteBannerCmd.Flags().BoolVar(&bannerHemGrommets, "hem-grommets", false, "add hem and grommets")
	quoteBannerCmd.Flags().StringVar(&quoteDesign, "design", string(catalog.DesignUpload), "design option (upload, pro, text_only)")

	quoteFlyerCmd.Flags().StringVar(&flyerSize, "size", "A6", "flyer size (A6, A5, 21x10)")
	quoteFlyerCmd.Flags().BoolVar(&flyerTwoSided, "two-sided", false, "print both faces")
	quoteFlyerCmd.Flags().StringVar(&flyerWeight, "paper-weight", "135", "paper weight (135, 250)")
	quoteFlyerCmd.Flags().StringVar(&quoteDesign, "design", string(catalog.DesignUpload), "design option (upload, pro)")

	quoteBrochureCmd.Flags().StringVar(&brochureWeight, "weight", "170", "paper weight (115, 170, 250)")
	quoteBrochureCmd.Flags().StringVar(&brochureFold, "fold", "simplu", "fold (simplu, fereastra, paralel, fluture)")
	quoteBrochureCmd.Flags().StringVar(&quoteDesign, "design", string(catalog.DesignUpload), "design option (upload, pro)")
}

func runQuote(cmd *cobra.Command, cfg pricing.Configuration) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}
	f, err := formatter()
	if err != nil {
		return err
	}

	b, err := engine.Quote(cfg)
	if err != nil {
		return err
	}

	card := engine.Card()
	result := &output.QuoteResult{
		Breakdown: b,
		Metadata: output.QuoteMetadata{
			RateCard:     card.Version,
			RateCardHash: determinism.ComputeHash(hclcard.Encode(card)).Short(),
			Version:      Version,
		},
	}
	if !b.IsZero() {
		line, err := order.BuildLine(cfg, b, card)
		if err != nil {
			return err
		}
		result.Line = line
		logging.Debug("cart line built", zap.String("id", string(line.ID)))
	}

	return f.RenderQuote(cmd.OutOrStdout(), result)
}
