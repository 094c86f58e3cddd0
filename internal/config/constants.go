package config

// Application constants - all hardcoded values for the reporting pipeline
const (
	// Application Info
	AppName = "relatorio"

	// Artifact file names, fixed so downstream consumers can rely on them
	ChartReceitaFileName = "grafico_receita.html"
	ChartDespesaFileName = "grafico_despesa.html"
	ExcelReportFileName  = "relatorio_administrativo.xlsx"
	PDFReportFileName    = "relatorio_administrativo.pdf"

	// Workbook sheet names
	ConsolidatedSheetName = "Dados Consolidados"
	IndicatorsSheetName   = "Indicadores"

	// Report headings
	PDFReportTitle    = "Relatório Administrativo"
	ChartReceitaTitle = "Evolução da Receita Mensal"
	ChartDespesaTitle = "Custos Operacionais por Mês"

	// Indicator sheet headers
	IndicatorNameHeader  = "Métrica"
	IndicatorValueHeader = "Valor"

	// Default directories and files
	DefaultOutputDirName = "saida_relatorio"
	DefaultLogFile       = "logs/relatorio.log"

	// Log settings
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultLogOutput = "stdout"

	// Input settings
	DefaultEncoding     = "utf-8"
	DefaultCSVDelimiter = ","
)

// Recognized input file extensions, matched case-insensitively.
var RecognizedExtensions = []string{".csv", ".xlsx", ".xls"}

// DateLayouts are tried in order when interpreting date columns for the
// monthly chart buckets.
var DateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
}
