package output

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/rgehrsitz/mediquote/internal/domain"
)

// JSONFormatter renders the estimate as indented JSON
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(est *domain.Estimate) ([]byte, error) {
	if est == nil {
		return nil, fmt.Errorf("no estimate to format")
	}
	data, err := json.MarshalIndent(est, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal estimate: %w", err)
	}
	return append(data, '\n'), nil
}

// MarshalJSON renders any value as indented JSON for CLI subcommands
func MarshalJSON(v interface{}) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
