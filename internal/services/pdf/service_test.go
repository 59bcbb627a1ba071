package pdf

import (
	"bytes"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
)

func TestConvertMarkdownToPDF(t *testing.T) {
	logger := arbor.NewLogger()
	service := NewService(logger)

	tests := []struct {
		name     string
		markdown string
		title    string
	}{
		{
			name:     "basic report structure",
			markdown: "# Acme Industries - Quarterly Risk Review\n\n## Financial Summary\n\nRevenue: 500.00\n\nEBITDA: 80.00\n",
			title:    "Acme Industries - Quarterly Risk Review",
		},
		{
			name:     "empty markdown",
			markdown: "",
			title:    "Empty Doc",
		},
		{
			name:     "bullet list",
			markdown: "## Key Highlights\n\n- EBITDA is below covenant minimum requirement.\n- Loan utilization exceeds 80% of sanctioned limit.\n",
			title:    "Highlights",
		},
		{
			name:     "bold and italic",
			markdown: "Normal **Bold** *Italic*",
			title:    "Styling",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pdfBytes, err := service.ConvertMarkdownToPDF(tt.markdown, tt.title)
			require.NoError(t, err)
			require.NotEmpty(t, pdfBytes)

			assert.Equal(t, "%PDF", string(pdfBytes[:4]))
		})
	}
}

func TestConvertMarkdownToPDF_OutputValidates(t *testing.T) {
	logger := arbor.NewLogger()
	service := NewService(logger)

	markdown := `# Acme Industries - Quarterly Risk Review

Sector: Manufacturing

## Financial Summary

Revenue: 500.00

EBITDA: 80.00

## Risk Summary

Risk Score: 0.45

Risk Rating: Medium

## Key Highlights

- EBITDA is below covenant minimum requirement.
- High severity alert: Missed payment on 2024-01-01.
`

	pdfBytes, err := service.ConvertMarkdownToPDF(markdown, "Acme Industries - Quarterly Risk Review")
	require.NoError(t, err)

	// Full structural validation of the generated document
	err = api.Validate(bytes.NewReader(pdfBytes), model.NewDefaultConfiguration())
	assert.NoError(t, err)

	pdfCtx, err := api.ReadContext(bytes.NewReader(pdfBytes), model.NewDefaultConfiguration())
	require.NoError(t, err)
	// PageCount is only populated during validation, not by ReadContext.
	require.NoError(t, api.ValidateContext(pdfCtx))
	assert.GreaterOrEqual(t, pdfCtx.PageCount, 1)
}
