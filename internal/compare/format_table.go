package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing plans
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("INSURANCE PLAN COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 88) + "\n")
	sb.WriteString(fmt.Sprintf("Base Premium: ₹%s  |  Requested Term: %d years  |  Base Plan: %s\n",
		compSet.BasePremium.StringFixed(0), compSet.RequestedTerm, compSet.BasePlanID))
	sb.WriteString("\n")

	nameWidth := 20
	numWidth := 12

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s %*s %*s\n",
		nameWidth, "Plan",
		8, "Coverage",
		numWidth, "Annual",
		numWidth, "Monthly",
		6, "Term",
		numWidth, "Claimable",
		8, "Return"))
	sb.WriteString(strings.Repeat("-", 88) + "\n")

	sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 88) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 88) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 88) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.PlanName))
			sb.WriteString(fmt.Sprintf("  Annual Premium:  %s₹%s (%s%%)\n",
				tf.deltaSymbol(alt.PremiumDiffFromBase),
				tf.formatDecimal(alt.PremiumDiffFromBase),
				alt.PremiumPctFromBase.StringFixed(1)))
			if !alt.ClaimableDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Claimable:       %s₹%s\n",
					tf.deltaSymbol(alt.ClaimableDiffFromBase),
					tf.formatDecimal(alt.ClaimableDiffFromBase)))
			}
			if !alt.RatioDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Return Ratio:    %s%s\n",
					tf.deltaSymbol(alt.RatioDiffFromBase),
					alt.RatioDiffFromBase.Abs().StringFixed(2)))
			}
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 88) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single plan row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.PlanName
	if isBase {
		name += " (base)"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		8, fmt.Sprintf("%d%%", result.CoveragePercentage),
		numWidth, "₹"+tf.formatDecimal(result.AnnualPremium),
		numWidth, "₹"+tf.formatDecimal(result.MonthlyPremium),
		6, fmt.Sprintf("%dy", result.Term),
		numWidth, "₹"+tf.formatDecimal(result.Claimable),
		8, result.ReturnRatio.StringFixed(2)+"x")
}

// formatDecimal formats an absolute amount in K/M units above a thousand
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	d = d.Abs()
	if d.GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		return d.Div(decimal.NewFromInt(1000000)).StringFixed(2) + "M"
	} else if d.GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		return d.Div(decimal.NewFromInt(1000)).StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

// deltaSymbol returns the sign shown in front of a delta
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a single-line premium summary for each alternative
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BasePlanID))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if !alt.PremiumDiffFromBase.IsZero() {
			change = fmt.Sprintf("%s₹%s", tf.deltaSymbol(alt.PremiumDiffFromBase), tf.formatDecimal(alt.PremiumDiffFromBase))
		}
		sb.WriteString(fmt.Sprintf("%s: %s", alt.PlanID, change))
	}

	return sb.String()
}
