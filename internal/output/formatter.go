package output

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/rgehrsitz/mediquote/internal/domain"
)

// Formatter renders an estimate into bytes
type Formatter interface {
	Name() string
	Format(est *domain.Estimate) ([]byte, error)
}

// FormatterFunc adapts a function into a Formatter
type FormatterFunc struct {
	ID string
	F  func(est *domain.Estimate) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(est *domain.Estimate) ([]byte, error) { return f.F(est) }

var registry = map[string]Formatter{}

// Register adds a formatter, replacing any formatter of the same name
func Register(f Formatter) {
	registry[f.Name()] = f
}

func init() {
	Register(ConsoleFormatter{})
	Register(JSONFormatter{})
	Register(CSVSummarizer{})
	Register(HTMLFormatter{})
}

// GetFormatterByName returns the registered formatter, or nil
func GetFormatterByName(name string) Formatter {
	return registry[name]
}

// AvailableFormatterNames lists registered formatters alphabetically
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteFormatted renders est and saves it to a timestamped file in the
// working directory, returning the file name.
func WriteFormatted(f Formatter, est *domain.Estimate, ext string) (string, error) {
	data, err := f.Format(est)
	if err != nil {
		return "", fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	filename := fmt.Sprintf("mediquote_estimate_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}
