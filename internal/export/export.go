// Package export renders a build as human-readable text. Pure formatting:
// it sums prices and echoes the power analysis it is given, but never calls
// into compatibility logic.
package export

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/spec-logic/speclogic-api/internal/models"
)

// TotalPrice sums the prices of all selected components.
func TotalPrice(build *models.Build) decimal.Decimal {
	total := decimal.Zero
	for _, c := range build.Selected() {
		total = total.Add(decimal.NewFromFloat(float64(c.PriceUSD)))
	}
	return total
}

// FormatBuild produces the exportable build sheet: one line per populated
// slot, the price total, and the estimated power draw.
func FormatBuild(build *models.Build, power models.PowerAnalysis) string {
	var b strings.Builder

	b.WriteString("PC Build Summary\n")
	b.WriteString("================\n")

	for _, t := range models.ComponentTypes {
		c := build.Slot(t)
		if c == nil {
			continue
		}
		price := decimal.NewFromFloat(float64(c.PriceUSD))
		fmt.Fprintf(&b, "%-12s %s ($%s)\n", string(t)+":", c.DisplayName(), price.StringFixed(2))
	}

	fmt.Fprintf(&b, "\nTotal price: $%s\n", TotalPrice(build).StringFixed(2))
	fmt.Fprintf(&b, "Estimated draw: %dW (recommended PSU: %s)\n", power.TotalTDP, power.RecommendedTier)

	return b.String()
}
