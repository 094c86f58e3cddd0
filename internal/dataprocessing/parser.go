package dataprocessing

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

// parseCSV reads a CSV file into a dataframe. The encoding applies to the
// whole file; Brazilian exports are frequently Windows-1252.
func parseCSV(path, encoding string, delimiter rune) (dataframe.DataFrame, error) {
	file, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var reader io.Reader = file
	switch strings.ToLower(encoding) {
	case "windows-1252":
		reader = charmap.Windows1252.NewDecoder().Reader(file)
	case "latin-1":
		reader = charmap.ISO8859_1.NewDecoder().Reader(file)
	}

	df := dataframe.ReadCSV(reader,
		dataframe.WithDelimiter(delimiter),
		dataframe.WithLazyQuotes(true),
		dataframe.HasHeader(true),
	)
	if df.Err != nil {
		return df, fmt.Errorf("failed to read CSV: %w", df.Err)
	}
	if df.Nrow() == 0 {
		return df, fmt.Errorf("file has no data rows")
	}

	return df, nil
}

// parseXLSX reads an XLSX workbook into a dataframe using the first sheet
// that carries a header row and at least one data row.
func parseXLSX(path string) (dataframe.DataFrame, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			continue
		}
		if len(rows) >= 2 {
			return frameFromRecords(rows)
		}
	}

	return dataframe.DataFrame{}, fmt.Errorf("no sheet with data rows")
}

// parseXLS reads a legacy XLS workbook into a dataframe using the first
// sheet that carries a header row and at least one data row.
func parseXLS(path string) (dataframe.DataFrame, error) {
	workbook, err := xls.OpenFile(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to open file: %w", err)
	}

	for sheetIndex := 0; sheetIndex < workbook.GetNumberSheets(); sheetIndex++ {
		sheet, err := workbook.GetSheet(sheetIndex)
		if err != nil {
			continue
		}

		var rows [][]string
		for i := 0; i <= int(sheet.GetNumberRows()); i++ {
			row, err := sheet.GetRow(i)
			if err != nil {
				continue
			}

			var record []string
			for _, col := range row.GetCols() {
				if col == nil {
					record = append(record, "")
					continue
				}
				record = append(record, col.GetString())
			}
			rows = append(rows, record)
		}

		if len(rows) >= 2 {
			return frameFromRecords(rows)
		}
	}

	return dataframe.DataFrame{}, fmt.Errorf("no sheet with data rows")
}

// frameFromRecords converts raw sheet rows into a dataframe. The first row
// is the header. Rows are padded to a common width because spreadsheet
// readers trim trailing empty cells.
func frameFromRecords(rows [][]string) (dataframe.DataFrame, error) {
	if len(rows) < 2 {
		return dataframe.DataFrame{}, fmt.Errorf("file has no data rows")
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("file has no columns")
	}

	normalized := make([][]string, len(rows))
	for i, row := range rows {
		padded := make([]string, width)
		copy(padded, row)
		normalized[i] = padded
	}

	df := dataframe.LoadRecords(normalized)
	if df.Err != nil {
		return df, fmt.Errorf("failed to build table: %w", df.Err)
	}

	return df, nil
}
