package dataprocessing

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"relatorioadmin/internal/files"
	"relatorioadmin/pkg/contracts/domain"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", name, err)
	}
}

func newTestLoader(dir string) *Loader {
	return NewLoader(slog.Default(), files.NewDiscovery(dir), LoaderOptions{})
}

func TestNewLoader_Defaults(t *testing.T) {
	loader := NewLoader(nil, files.NewDiscovery(""), LoaderOptions{})

	require.NotNil(t, loader)
	assert.NotNil(t, loader.logger)
	assert.Equal(t, ',', loader.opts.Delimiter)
	assert.Equal(t, "utf-8", loader.opts.Encoding)
}

func TestLoader_Load_ConsolidatesFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	// Created out of lexical order on purpose; rows must still come out
	// file by file in name order.
	writeFixture(t, dir, "fevereiro.csv", "Data,Despesa\n2024-02-10,100\n")
	writeFixture(t, dir, "janeiro.csv", "Data,Receita\n2024-01-10,100\n2024-01-20,250\n")

	df, err := newTestLoader(dir).Load(ctx, dir)
	require.NoError(t, err)

	assert.Equal(t, 3, df.Nrow())
	assert.ElementsMatch(t, []string{"Data", "Despesa", "Receita", domain.SourceFileColumn}, df.Names())

	origem := df.Col(domain.SourceFileColumn)
	assert.Equal(t, "fevereiro.csv", origem.Elem(0).String())
	assert.Equal(t, "janeiro.csv", origem.Elem(1).String())
	assert.Equal(t, "janeiro.csv", origem.Elem(2).String())

	// Union columns: cells a file never had are missing, not zero.
	receita := df.Col("Receita")
	assert.True(t, receita.Elem(0).IsNA())
	assert.InDelta(t, 100, receita.Elem(1).Float(), 1e-9)
	assert.InDelta(t, 250, receita.Elem(2).Float(), 1e-9)

	despesa := df.Col("Despesa")
	assert.InDelta(t, 100, despesa.Elem(0).Float(), 1e-9)
	assert.True(t, despesa.Elem(1).IsNA())
}

func TestLoader_Load_MixedFormats(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	writeFixture(t, dir, "a_vendas.csv", "Receita\n10\n")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Receita"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{20}))
	require.NoError(t, f.SaveAs(filepath.Join(dir, "b_vendas.xlsx")))

	df, err := newTestLoader(dir).Load(ctx, dir)
	require.NoError(t, err)

	require.Equal(t, 2, df.Nrow())
	receita := df.Col("Receita")
	assert.InDelta(t, 10, receita.Elem(0).Float(), 1e-9)
	assert.InDelta(t, 20, receita.Elem(1).Float(), 1e-9)
}

func TestLoader_Load_SkipsUnparseableFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	writeFixture(t, dir, "bom.csv", "Receita\n10\n25\n")
	writeFixture(t, dir, "quebrado.xlsx", "not a workbook")
	writeFixture(t, dir, "so_cabecalho.csv", "Receita\n")

	df, err := newTestLoader(dir).Load(ctx, dir)
	require.NoError(t, err)

	assert.Equal(t, 2, df.Nrow())
	origem := df.Col(domain.SourceFileColumn)
	for i := 0; i < origem.Len(); i++ {
		assert.Equal(t, "bom.csv", origem.Elem(i).String())
	}
}

func TestLoader_Load_NoInputFiles(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		setup func(t *testing.T, dir string)
	}{
		{
			name:  "empty directory",
			setup: func(t *testing.T, dir string) {},
		},
		{
			name: "only unrecognized extensions",
			setup: func(t *testing.T, dir string) {
				writeFixture(t, dir, "notas.txt", "Receita\n10\n")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			tt.setup(t, dir)

			_, err := newTestLoader(dir).Load(ctx, dir)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNoInputFiles)
		})
	}
}

func TestLoader_Load_NoLoadableData(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	writeFixture(t, dir, "quebrado.xlsx", "not a workbook")
	writeFixture(t, dir, "vazio.csv", "Receita\n")

	_, err := newTestLoader(dir).Load(ctx, dir)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoLoadableData)
}

func TestLoader_Load_MissingDirectory(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "nao_existe")

	_, err := newTestLoader(dir).Load(ctx, dir)

	require.Error(t, err)
}

func TestLoader_Load_RespectsDelimiterAndEncoding(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	// 0xE3 is "ã" in Windows-1252.
	if err := os.WriteFile(filepath.Join(dir, "legado.csv"),
		[]byte("Funcionario;Producao\nJo\xe3o;10\n"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	loader := NewLoader(slog.Default(), files.NewDiscovery(dir), LoaderOptions{
		Encoding:  "windows-1252",
		Delimiter: ';',
	})

	df, err := loader.Load(ctx, dir)
	require.NoError(t, err)

	require.Equal(t, 1, df.Nrow())
	assert.Equal(t, "João", df.Col("Funcionario").Elem(0).String())
}
