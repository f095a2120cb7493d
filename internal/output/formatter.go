package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/aslearntocode/financial-health-sub000/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(results *domain.CalculationResults) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.CalculationResults) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.CalculationResults) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                                        { return ff.ID }

// WriteFormatted runs a formatter and writes output to a timestamped file in dir.
// The timestamp comes from the results so repeated renders of one run share it.
func WriteFormatted(f Formatter, results *domain.CalculationResults, dir, ext string) (string, error) {
	data, err := f.Format(results)
	if err != nil {
		return "", err
	}
	stamp := results.GeneratedAt
	if stamp.IsZero() {
		stamp = time.Now()
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	filename := filepath.Join(dir, fmt.Sprintf("finhealth_%s_%s.%s", f.Name(), stamp.Format("20060102_150405"), ext))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVSummarizer{},
	SimulationsCSVExporter{},
	HTMLFormatter{},
	JSONFormatter{},
	MarkdownFormatter{},
	PDFFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == name {
			return f
		}
	}
	// try normalized name
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":            "console",
	"txt":             "console",
	"csv-summary":     "csv",
	"csv-simulations": "simulations-csv",
	"actions-csv":     "simulations-csv",
	"md":              "markdown",
	"html-report":     "html",
	"json-pretty":     "json",
}

// extensions maps canonical formatter names to file extensions when they differ.
var extensions = map[string]string{
	"console":         "txt",
	"simulations-csv": "csv",
	"markdown":        "md",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// ExtensionFor returns the file extension written for a formatter name.
func ExtensionFor(name string) string {
	n := NormalizeFormatName(name)
	if ext, ok := extensions[n]; ok {
		return ext
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
