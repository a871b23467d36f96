// Package cmd provides the CLI commands for printquote.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	hclcard "printquote/adapters/ratecard/hcl"
	"printquote/core/output"
	"printquote/core/pricing"
	"printquote/internal/config"
	"printquote/internal/logging"
)

// Version is the CLI version, set at build time
var Version = "0.1.0"

var (
	cfgFile      string
	verbose      bool
	rateCardPath string
	outputFormat string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "printquote",
	Short: "Price print products: posters, banners, flyers and brochures",
	Long: `printquote prices print-on-demand products against a versioned rate card.

Every quote is deterministic: the same configuration and rate card always
produce the same price, rounded to the cent.

Examples:
  printquote quote poster --size A2 --material paper_150_lucioasa --quantity 50
  printquote quote banner --width 200 --height 100 --hem-grommets
  printquote quote brochure --weight 170 --fold paralel --design pro --format json
  printquote ratecard export > ratecard.hcl
  printquote catalog`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.printquote.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&rateCardPath, "rate-card", "", "HCL rate card (default is the built-in card)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	// Initialize logging
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// loadRateCard resolves the rate card: --rate-card, then config, then built-in
func loadRateCard() (*pricing.RateCard, error) {
	cfg := config.Get()

	path := rateCardPath
	if path == "" {
		path = cfg.Pricing.RateCardPath
	}

	var card *pricing.RateCard
	if path != "" {
		loaded, err := hclcard.Load(path)
		if err != nil {
			return nil, err
		}
		logging.Debug("loaded rate card", zap.String("path", path), zap.String("version", loaded.Version))
		card = loaded
	} else {
		card = pricing.DefaultRateCard()
		card.Currency = cfg.Pricing.Currency
	}

	if cfg.Pricing.BannerBreakpointFloor {
		card.Banner.BreakpointFloor = true
	}
	return card, nil
}

func newEngine() (*pricing.Engine, error) {
	card, err := loadRateCard()
	if err != nil {
		return nil, err
	}
	return pricing.NewEngine(card, logging.Named("pricing"))
}

func formatter() (output.Formatter, error) {
	cfg := config.Get()

	format := outputFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	return output.NewRegistry(cfg.Output.NoColor, cfg.Output.ShowDetails || verbose, verbose).Get(output.Format(format))
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "printquote version %s\n", Version)
	},
}
