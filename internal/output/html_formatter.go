package output

import (
	"bytes"
	"fmt"

	"github.com/aslearntocode/financial-health-sub000/internal/domain"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// HTMLFormatter produces a standalone HTML page from the markdown report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

var markdownToHTML = goldmark.New(goldmark.WithExtensions(extension.Table))

const htmlHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Financial Health Report</title>
<style>
body { font-family: sans-serif; max-width: 960px; margin: 2em auto; color: #222; }
table { border-collapse: collapse; margin: 1em 0; }
th, td { border: 1px solid #ccc; padding: 4px 10px; }
th { background: #003366; color: #fff; }
</style>
</head>
<body>
`

func (h HTMLFormatter) Format(results *domain.CalculationResults) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(htmlHead)
	if err := markdownToHTML.Convert([]byte(renderMarkdown(results)), &buf); err != nil {
		return nil, fmt.Errorf("failed to render HTML: %w", err)
	}
	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes(), nil
}
