package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/rgehrsitz/mediquote/internal/domain"
)

// HTMLFormatter produces a standalone HTML estimate report
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/estimate.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("estimate").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"pct":   FormatPercentage,
	"ratio": FormatRatio,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(est *domain.Estimate) ([]byte, error) {
	if est == nil {
		return nil, fmt.Errorf("no estimate to format")
	}
	var buf bytes.Buffer
	data := struct {
		*domain.Estimate
		Assumptions []string
	}{est, DefaultAssumptions}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
