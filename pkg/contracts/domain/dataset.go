package domain

import "strings"

// SourceFileColumn is appended to every loaded table before consolidation
// and holds the name of the file each row came from.
const SourceFileColumn = "Origem_Arquivo"

// Column vocabulary recognized in consolidated tables. Matching against
// actual column names is case-insensitive; files are never required to
// carry any of these.
const (
	ColumnReceita     = "receita"
	ColumnDespesa     = "despesa"
	ColumnFuncionario = "funcionario"
	ColumnProducao    = "producao"
	ColumnVendas      = "vendas"
	ColumnQuantidade  = "quantidade"
	ColumnData        = "data"
)

// ColumnIndex maps the lowercase form of every column name to the original
// spelling. When two columns share a lowercase form the first one wins, so
// lookups stay deterministic for any column order.
type ColumnIndex map[string]string

// NewColumnIndex builds a ColumnIndex from the column names of a table.
func NewColumnIndex(names []string) ColumnIndex {
	idx := make(ColumnIndex, len(names))
	for _, name := range names {
		key := strings.ToLower(name)
		if _, seen := idx[key]; !seen {
			idx[key] = name
		}
	}
	return idx
}

// Resolve returns the original spelling of a vocabulary column and whether
// the table has it.
func (ci ColumnIndex) Resolve(vocab string) (string, bool) {
	name, ok := ci[strings.ToLower(vocab)]
	return name, ok
}
