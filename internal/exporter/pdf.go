package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"relatorioadmin/internal/config"
	apperrors "relatorioadmin/internal/errors"
	"relatorioadmin/pkg/contracts/domain"
)

// Page layout in points, portrait A4 (595 x 842).
const (
	pdfTitleX = 200.0
	pdfTitleY = 42.0

	pdfMetricX    = 100.0
	pdfMetricY    = 82.0
	pdfMetricStep = 20.0
	pdfTitleSize  = 16.0
	pdfMetricSize = 12.0
)

// PDFExporter draws the indicator summary on a single A4 page.
type PDFExporter struct {
	logger *slog.Logger
}

// NewPDFExporter creates a new PDF exporter.
func NewPDFExporter(logger *slog.Logger) *PDFExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFExporter{logger: logger}
}

// Export writes relatorio_administrativo.pdf into outputDir: a title line
// followed by one "<name>: <value>" line per indicator at a fixed vertical
// step. The fixed indicator list fits one page; pagination is not handled.
func (p *PDFExporter) Export(ctx context.Context, metrics domain.Metrics, outputDir string) error {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetTitle(config.PDFReportTitle, true)
	pdf.AddPage()

	// The core fonts are cp1252; translate the accented labels.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", pdfTitleSize)
	pdf.Text(pdfTitleX, pdfTitleY, tr(config.PDFReportTitle))

	pdf.SetFont("Helvetica", "", pdfMetricSize)
	y := pdfMetricY
	for _, metric := range metrics {
		line := fmt.Sprintf("%s: %s", metric.Name, formatMetricValue(metric.Value))
		pdf.Text(pdfMetricX, y, tr(line))
		y += pdfMetricStep
	}

	path := filepath.Join(outputDir, config.PDFReportFileName)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return apperrors.NewExportError("failed to write PDF report", err).
			WithContext("path", path)
	}

	p.logger.InfoContext(ctx, "pdf report written",
		slog.String("path", path),
		slog.Int("indicators", len(metrics)))

	return nil
}
