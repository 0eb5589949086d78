package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/rgehrsitz/mediquote/internal/domain"
)

// CSVSummarizer writes one row per priced plan
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(est *domain.Estimate) ([]byte, error) {
	if est == nil {
		return nil, fmt.Errorf("no estimate to format")
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Plan", "Status", "Source", "BasePremium", "AnnualPremium", "MonthlyPremium", "Term", "TotalPaid", "Claimable", "ReturnRatio"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	source, base := "", ""
	if est.HasQuote() {
		source = string(est.Quote.Source)
		base = est.Quote.Amount.StringFixed(2)
	}
	for _, p := range est.Plans {
		row := []string{
			p.Plan.ID,
			string(est.Status),
			source,
			base,
			p.AdjustedPremium.StringFixed(2),
			p.MonthlyPremium.StringFixed(2),
			strconv.Itoa(p.Term),
			p.TotalPaid.StringFixed(2),
			p.Claimable.StringFixed(2),
			p.Ratio.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
