package output

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/rgehrsitz/mediquote/internal/domain"
)

// FormatPlanQuote renders one priced plan with its claimable schedule
func FormatPlanQuote(q domain.PlanQuote) string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "%s - %s\n", q.Plan.Name, q.Plan.Description)
	fmt.Fprintf(&buf, "Coverage: %s up to %s  |  Term options: %s years\n",
		FormatPercentage(q.Plan.CoveragePercentage), FormatCurrency(q.Plan.CoverageLimit), joinInts(q.TermOptions))
	fmt.Fprintf(&buf, "Annual premium: %s  |  Monthly: %s\n\n",
		FormatCurrency(q.AdjustedPremium), FormatCurrency(q.MonthlyPremium))

	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Years\tTotal Paid\tClaimable\tReturn Ratio\t")
	for _, row := range q.Schedule {
		marker := ""
		if row.Selected {
			marker = " *"
		}
		fmt.Fprintf(tw, "%d%s\t%s\t%s\t%s\t\n", row.Years, marker,
			FormatCurrency(row.TotalPaid), FormatCurrency(row.Claimable), FormatRatio(row.Ratio))
	}
	tw.Flush()

	fmt.Fprintf(&buf, "\nOver %d years you pay %s and can claim up to %s.\n",
		q.Term, FormatCurrency(q.TotalPaid), FormatCurrency(q.Claimable))
	fmt.Fprintln(&buf, "Features:")
	for _, f := range q.Plan.Features {
		fmt.Fprintf(&buf, "  ✓ %s\n", f)
	}
	return buf.String()
}

// FormatConfirmation renders a simulated policy confirmation
func FormatConfirmation(c domain.PolicyConfirmation) string {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "Purchase Successful!")
	fmt.Fprintln(&buf, strings.Repeat("-", 20))
	fmt.Fprintf(&buf, "Policy Number:  %s\n", c.PolicyNumber)
	fmt.Fprintf(&buf, "Plan:           %s\n", c.Plan.Name)
	fmt.Fprintf(&buf, "Coverage:       %s up to %s\n", FormatPercentage(c.Plan.CoveragePercentage), FormatCurrency(c.Plan.CoverageLimit))
	fmt.Fprintf(&buf, "Term:           %d years\n", c.Term)
	fmt.Fprintf(&buf, "Annual Premium: %s\n", FormatCurrency(c.AnnualPremium))
	fmt.Fprintf(&buf, "Start Date:     %s\n", c.StartDate.Format(domain.PolicyDateLayout))
	fmt.Fprintf(&buf, "End Date:       %s\n", c.EndDate.Format(domain.PolicyDateLayout))
	return buf.String()
}

func joinInts(values []int) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, fmt.Sprint(v))
	}
	return strings.Join(parts, ", ")
}
