package output

import (
	"fmt"
	"io"

	"printquote/core/catalog"
	"printquote/core/money"
	"printquote/core/ui"
)

// CLIFormatter renders quotes for the terminal
type CLIFormatter struct {
	noColor     bool
	showDetails bool
	verbose     bool
}

// NewCLIFormatter creates a CLI formatter.
// verbose adds the cart line ID and rate card to quotes.
func NewCLIFormatter(noColor, showDetails, verbose bool) *CLIFormatter {
	return &CLIFormatter{noColor: noColor, showDetails: showDetails, verbose: verbose}
}

// Format implements Formatter
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// RenderQuote implements Formatter
func (f *CLIFormatter) RenderQuote(w io.Writer, result *QuoteResult) error {
	b := result.Breakdown
	out := ui.NewWriter(w, f.noColor)
	if f.verbose {
		out.SetVerbosity(2)
	}
	entry := catalog.Default().MustEntry(b.Product)

	summary := out.NewQuoteSummary(entry.Label)
	summary.Total = money.Format(b.FinalPrice, b.Currency)
	summary.UnitPrice = money.Format(b.UnitPrice, b.Currency)
	summary.Quantity = b.Quantity
	if result.Line != nil {
		summary.Description = result.Line.Description
		summary.UnitPrice = money.Format(result.Line.UnitPrice, b.Currency)
	}
	if b.IsZero() {
		summary.Warnings = append(summary.Warnings, "price not calculated: check dimensions and quantity")
	}
	if b.FallbackUsed {
		summary.Warnings = append(summary.Warnings, "no table price for this size and material; fallback base price used")
	}
	summary.Render()

	if f.showDetails && len(b.Components) > 0 {
		out.Println("")
		out.SubHeader("Breakdown")
		table := out.NewTable("Component", "Formula", "Amount")
		for _, c := range b.Components {
			table.AddRow(c.Name, c.Formula, money.Format(c.Amount, b.Currency))
		}
		table.Render()

		if !b.TotalArea.IsZero() {
			out.Println("")
			out.Info("Total area %s m², %s/m²", b.TotalArea.StringFixed(2), money.Format(b.PricePerSqm, b.Currency))
		}
	}

	if result.Line != nil && f.verbose {
		out.Println("")
		out.Debug("line %s, rate card %s", result.Line.ID, result.Metadata.RateCard)
	}
	return nil
}

// RenderCatalog implements Formatter
func (f *CLIFormatter) RenderCatalog(w io.Writer, cat *catalog.Catalog) error {
	out := ui.NewWriter(w, f.noColor)
	out.Header("Catalog")

	for _, entry := range cat.Entries() {
		out.SubHeader(fmt.Sprintf("%s (%s)", entry.Label, entry.Product))
		table := out.NewTable("Option", "Key", "Label", "Details")
		for _, o := range entry.Sizes {
			table.AddRow("size", o.Key, o.Label, o.Dims)
		}
		for _, o := range entry.Materials {
			table.AddRow("material", o.Key, o.Label, o.Description)
		}
		for _, o := range entry.Weights {
			table.AddRow("weight", o.Key, o.Label, "")
		}
		for _, fold := range entry.Folds {
			table.AddRow("fold", fold.Key, fold.Label, fold.Open+" → "+fold.Closed)
		}
		for _, d := range entry.Designs {
			table.AddRow("design", string(d), d.Label(), "")
		}
		table.Render()
		out.Println("")
	}
	return nil
}
