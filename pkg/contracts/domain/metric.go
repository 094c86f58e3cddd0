package domain

// Indicator names exactly as they appear in every report artifact.
// The declaration order here is the order indicators are evaluated and
// rendered: spreadsheet rows, PDF lines and log output all follow it.
const (
	MetricReceitaTotal       = "Receita Total"
	MetricCustoOperacional   = "Custo Operacional Total"
	MetricProdutividadeMedia = "Produtividade Média"
	MetricLucroLiquido       = "Lucro Líquido"
	MetricTicketMedio        = "Ticket Médio"
)

// Metric is a single computed business indicator.
type Metric struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Metrics is an ordered collection of computed indicators. Insertion
// order is preserved so every consumer renders indicators the same way.
type Metrics []Metric

// Add appends an indicator, keeping insertion order.
func (m *Metrics) Add(name string, value float64) {
	*m = append(*m, Metric{Name: name, Value: value})
}

// Value returns the value of the named indicator and whether it is present.
func (m Metrics) Value(name string) (float64, bool) {
	for _, item := range m {
		if item.Name == name {
			return item.Value, true
		}
	}
	return 0, false
}

// Has reports whether the named indicator was computed.
func (m Metrics) Has(name string) bool {
	_, ok := m.Value(name)
	return ok
}

// Names returns the indicator names in insertion order.
func (m Metrics) Names() []string {
	names := make([]string, len(m))
	for i, item := range m {
		names[i] = item.Name
	}
	return names
}
