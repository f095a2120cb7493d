package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aslearntocode/financial-health-sub000/internal/config"
	"github.com/aslearntocode/financial-health-sub000/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "12.35%", FormatPercentage(dec(t, "12.3456")))
	assert.Equal(t, "$1,234.57", FormatCurrency(dec(t, "1234.567"), "USD"))
	assert.Equal(t, "+14", FormatImpact(14))
	assert.Equal(t, "-252", FormatImpact(-252))
	assert.Equal(t, "0", FormatImpact(0))
}

func TestGenerateReport(t *testing.T) {
	results := buildTestResults(t)
	dir := t.TempDir()

	path, err := GenerateReport(results, "md", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "finhealth_markdown_20260501_093000.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Financial Health Report")
}

func TestGenerateReportCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports", "2026")
	path, err := GenerateReport(buildTestResults(t), "csv", dir)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestGenerateAllReports(t *testing.T) {
	dir := t.TempDir()
	paths, err := GenerateAllReports(buildTestResults(t), dir)
	require.NoError(t, err)
	assert.Len(t, paths, len(AvailableFormatterNames()))

	seen := map[string]bool{}
	for _, p := range paths {
		assert.FileExists(t, p)
		assert.False(t, seen[p], "duplicate report path %s", p)
		seen[p] = true
	}
}

func TestUnknownFormatErrorIncludesSuggestions(t *testing.T) {
	_, err := GenerateReport(&domain.CalculationResults{}, "definitely-not-a-format", t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "Try one of:")
}

func TestSaveConfigurationRoundTrip(t *testing.T) {
	parser := config.NewInputParser()
	cfg := parser.CreateExampleConfiguration()
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SaveConfiguration(cfg, path))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.True(t, cfg.BaseScore.Equal(loaded.BaseScore))
	assert.Len(t, loaded.Simulations, len(cfg.Simulations))
	require.Len(t, loaded.CorpusPlans, len(cfg.CorpusPlans))
	assert.Equal(t, cfg.CorpusPlans[0].Name, loaded.CorpusPlans[0].Name)
	assert.True(t, cfg.CorpusPlans[0].MonthlySavings.Equal(loaded.CorpusPlans[0].MonthlySavings))
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}
