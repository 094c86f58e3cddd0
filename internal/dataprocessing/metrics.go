package dataprocessing

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/floats"

	"relatorioadmin/pkg/contracts/domain"
)

// Engine derives the business indicators from a consolidated dataframe.
// Column names are matched against the recognized vocabulary without
// regard to case; indicators whose columns are absent are simply omitted.
type Engine struct {
	logger *slog.Logger
}

// NewEngine creates a new metrics engine.
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

// Compute evaluates the indicators in their fixed presentation order:
// Receita Total, Custo Operacional Total, Produtividade Média,
// Lucro Líquido and Ticket Médio. A table with none of the recognized
// columns yields an empty mapping and no error.
func (e *Engine) Compute(ctx context.Context, df dataframe.DataFrame) (domain.Metrics, error) {
	metrics := domain.Metrics{}
	idx := domain.NewColumnIndex(df.Names())

	var receitaTotal, custoTotal float64
	var hasReceita, hasDespesa bool

	if name, ok := idx.Resolve(domain.ColumnReceita); ok {
		receitaTotal = sumColumn(df.Col(name))
		metrics.Add(domain.MetricReceitaTotal, receitaTotal)
		hasReceita = true
	}

	if name, ok := idx.Resolve(domain.ColumnDespesa); ok {
		custoTotal = sumColumn(df.Col(name))
		metrics.Add(domain.MetricCustoOperacional, custoTotal)
		hasDespesa = true
	}

	funcName, okFunc := idx.Resolve(domain.ColumnFuncionario)
	prodName, okProd := idx.Resolve(domain.ColumnProducao)
	if okFunc && okProd {
		distinct := distinctCount(df.Col(funcName))
		if distinct == 0 {
			e.logger.WarnContext(ctx, "indicator skipped: no funcionario values to average over",
				slog.String("indicator", domain.MetricProdutividadeMedia))
		} else {
			media := sumColumn(df.Col(prodName)) / float64(distinct)
			metrics.Add(domain.MetricProdutividadeMedia, media)
		}
	}

	// Lucro Líquido only exists when both sides of the subtraction do
	if hasReceita && hasDespesa {
		metrics.Add(domain.MetricLucroLiquido, receitaTotal-custoTotal)
	}

	vendasName, okVendas := idx.Resolve(domain.ColumnVendas)
	qtdName, okQtd := idx.Resolve(domain.ColumnQuantidade)
	if okVendas && okQtd {
		qtdTotal := sumColumn(df.Col(qtdName))
		if qtdTotal == 0 {
			e.logger.WarnContext(ctx, "indicator skipped: quantidade sums to zero",
				slog.String("indicator", domain.MetricTicketMedio))
		} else {
			metrics.Add(domain.MetricTicketMedio, sumColumn(df.Col(vendasName))/qtdTotal)
		}
	}

	e.logger.InfoContext(ctx, "indicators computed",
		slog.Int("indicator_count", len(metrics)),
		slog.Any("indicators", metrics.Names()))

	return metrics, nil
}

// sumColumn adds every numeric value in the column. Cells that are missing
// or not interpretable as numbers contribute zero to the total.
func sumColumn(col series.Series) float64 {
	values := col.Float()
	kept := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			kept = append(kept, v)
		}
	}
	return floats.Sum(kept)
}

// distinctCount counts the distinct non-missing values in the column.
// Empty cells count as missing.
func distinctCount(col series.Series) int {
	seen := make(map[string]struct{})
	for i := 0; i < col.Len(); i++ {
		elem := col.Elem(i)
		if elem.IsNA() {
			continue
		}
		value := strings.TrimSpace(elem.String())
		if value == "" {
			continue
		}
		seen[value] = struct{}{}
	}
	return len(seen)
}
