// Package cmd - rate card management
package cmd

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	hclcard "printquote/adapters/ratecard/hcl"
	"printquote/core/determinism"
	"printquote/core/ui"
	"printquote/internal/config"
	"printquote/internal/errors"
)

var ratecardOutput string

var ratecardCmd = &cobra.Command{
	Use:   "ratecard",
	Short: "Export and validate HCL rate cards",
	Long: `Rate cards hold every price, multiplier and fee the calculators use.

Export the active card, edit it, validate it, then point --rate-card
(or PRINTQUOTE_RATE_CARD) at the file.`,
}

var ratecardExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the active rate card as HCL",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		card, err := loadRateCard()
		if err != nil {
			return err
		}
		src := hclcard.Encode(card)

		if ratecardOutput == "" {
			_, err := cmd.OutOrStdout().Write(src)
			return err
		}
		if err := os.WriteFile(ratecardOutput, src, 0644); err != nil {
			return errors.Wrapf(errors.TypeInternal, err, "failed to write %s", ratecardOutput)
		}
		ui.NewWriter(cmd.ErrOrStderr(), config.Get().Output.NoColor).
			Success("rate card %s written to %s", card.Version, ratecardOutput)
		return nil
	},
}

var ratecardValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check an HCL rate card against the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := ui.NewWriter(cmd.OutOrStdout(), config.Get().Output.NoColor)

		card, err := hclcard.Load(args[0])
		if err != nil {
			out.Error("%v", err)
			return err
		}

		out.Success("%s is valid", args[0])
		table := out.NewTable("Field", "Value")
		table.AddRow("version", card.Version)
		table.AddRow("currency", string(card.Currency))
		table.AddRow("poster prices", strconv.Itoa(card.Poster.Prices.Len()))
		table.AddRow("banner bands", strconv.Itoa(len(card.Banner.Bands.Bands())))
		table.AddRow("flyer sizes", strconv.Itoa(card.Flyer.Sizes.Len()))
		table.AddRow("brochure weights", strconv.Itoa(card.Brochure.Weights.Len()))
		table.AddRow("fingerprint", determinism.ComputeHash(hclcard.Encode(card)).Short())
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ratecardCmd)
	ratecardCmd.AddCommand(ratecardExportCmd, ratecardValidateCmd)

	ratecardExportCmd.Flags().StringVarP(&ratecardOutput, "output", "o", "", "write to file instead of stdout")
}
