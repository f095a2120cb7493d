package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/aslearntocode/financial-health-sub000/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport renders results with the named formatter and writes a
// timestamped file into dir. It returns the path written.
func GenerateReport(results *domain.CalculationResults, format, dir string) (string, error) {
	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return "", fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	return WriteFormatted(f, results, dir, ExtensionFor(f.Name()))
}

// GenerateAllReports writes one file per registered formatter.
func GenerateAllReports(results *domain.CalculationResults, dir string) ([]string, error) {
	paths := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		path, err := WriteFormatted(f, results, dir, ExtensionFor(f.Name()))
		if err != nil {
			return paths, fmt.Errorf("%s report: %w", f.Name(), err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// SaveConfiguration writes config as YAML to filename.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
