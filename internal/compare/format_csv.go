package compare

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Plan",
		"Plan Name",
		"Type",
		"Coverage %",
		"Coverage Limit",
		"Term",
		"Annual Premium",
		"Monthly Premium",
		"Total Paid",
		"Claimable",
		"Return Ratio",
		"Premium Diff from Base",
		"Premium % Change",
		"Claimable Diff from Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}

	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, planType string) []string {
	return []string{
		result.PlanID,
		result.PlanName,
		planType,
		formatInt(result.CoveragePercentage),
		result.CoverageLimit.StringFixed(2),
		formatInt(result.Term),
		result.AnnualPremium.StringFixed(2),
		result.MonthlyPremium.StringFixed(2),
		result.TotalPaid.StringFixed(2),
		result.Claimable.StringFixed(2),
		result.ReturnRatio.StringFixed(2),
		result.PremiumDiffFromBase.StringFixed(2),
		result.PremiumPctFromBase.StringFixed(2),
		result.ClaimableDiffFromBase.StringFixed(2),
	}
}

func formatInt(i int) string {
	return fmt.Sprintf("%d", i)
}
