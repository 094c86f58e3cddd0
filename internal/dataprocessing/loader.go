package dataprocessing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	apperrors "relatorioadmin/internal/errors"
	"relatorioadmin/internal/files"
	"relatorioadmin/pkg/contracts/domain"
)

// Sentinel errors for the fatal loading conditions. Both are wrapped in an
// AppError by Load, so callers can match them with errors.Is.
var (
	// ErrNoInputFiles indicates the input directory contains no recognized
	// tabular files at all.
	ErrNoInputFiles = errors.New("no recognized input files")

	// ErrNoLoadableData indicates recognized files were found but every one
	// of them failed to parse.
	ErrNoLoadableData = errors.New("no file could be loaded")
)

// LoaderOptions controls how individual files are read.
type LoaderOptions struct {
	// Encoding applies to CSV files: utf-8 (default), windows-1252 or latin-1.
	Encoding string
	// Delimiter is the CSV field separator. Defaults to comma.
	Delimiter rune
}

// Loader consolidates every tabular file of a directory into one dataframe.
type Loader struct {
	logger    *slog.Logger
	discovery *files.Discovery
	opts      LoaderOptions
}

// NewLoader creates a loader over the given discovery instance.
func NewLoader(logger *slog.Logger, discovery *files.Discovery, opts LoaderOptions) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}
	if opts.Encoding == "" {
		opts.Encoding = "utf-8"
	}
	return &Loader{
		logger:    logger,
		discovery: discovery,
		opts:      opts,
	}
}

// Load reads every recognized file in dir and concatenates them into a
// single dataframe. Columns are the union of all file columns in order of
// first appearance; rows from files missing a column hold NA there. Every
// row carries the name of its source file in the Origem_Arquivo column.
//
// Files that fail to parse are logged and skipped. Load fails only when
// the directory has no recognized files (ErrNoInputFiles) or when none of
// them could be parsed (ErrNoLoadableData).
func (l *Loader) Load(ctx context.Context, dir string) (dataframe.DataFrame, error) {
	found, err := l.discovery.FindTabularFiles(dir)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("discover input files: %w", err)
	}

	if len(found) == 0 {
		appErr := apperrors.NewAppError(apperrors.ErrTypeNotFound,
			fmt.Sprintf("no CSV or spreadsheet files in %s", dir), ErrNoInputFiles)
		return dataframe.DataFrame{}, appErr.WithContext("directory", dir)
	}

	l.logger.InfoContext(ctx, "loading input files",
		slog.String("directory", dir),
		slog.Int("file_count", len(found)))

	var consolidated dataframe.DataFrame
	loaded := 0

	for _, file := range found {
		df, err := l.parseFile(file)
		if err != nil {
			l.logger.WarnContext(ctx, "skipping file that could not be parsed",
				slog.String("file", file.Name),
				slog.String("error", err.Error()))
			continue
		}

		// Stamp every row with its source file
		origem := make([]string, df.Nrow())
		for i := range origem {
			origem[i] = file.Name
		}
		df = df.Mutate(series.New(origem, series.String, domain.SourceFileColumn))
		if df.Err != nil {
			l.logger.WarnContext(ctx, "skipping file that could not be stamped",
				slog.String("file", file.Name),
				slog.String("error", df.Err.Error()))
			continue
		}

		l.logger.DebugContext(ctx, "file loaded",
			slog.String("file", file.Name),
			slog.Int("rows", df.Nrow()),
			slog.Int("columns", df.Ncol()))

		if loaded == 0 {
			consolidated = df
		} else {
			consolidated = consolidated.Concat(df)
			if consolidated.Err != nil {
				return dataframe.DataFrame{}, apperrors.NewParsingError(
					fmt.Sprintf("failed to concatenate %s", file.Name), consolidated.Err)
			}
		}
		loaded++
	}

	if loaded == 0 {
		appErr := apperrors.NewAppError(apperrors.ErrTypeParsing,
			fmt.Sprintf("every recognized file in %s failed to parse", dir), ErrNoLoadableData)
		return dataframe.DataFrame{}, appErr.WithContext("attempted", len(found))
	}

	l.logger.InfoContext(ctx, "input files consolidated",
		slog.Int("files_loaded", loaded),
		slog.Int("files_skipped", len(found)-loaded),
		slog.Int("rows", consolidated.Nrow()),
		slog.Int("columns", consolidated.Ncol()))

	return consolidated, nil
}

// parseFile dispatches to the reader matching the file extension.
func (l *Loader) parseFile(file files.FileInfo) (dataframe.DataFrame, error) {
	switch strings.ToLower(filepath.Ext(file.Name)) {
	case ".csv":
		return parseCSV(file.Path, l.opts.Encoding, l.opts.Delimiter)
	case ".xlsx":
		return parseXLSX(file.Path)
	case ".xls":
		return parseXLS(file.Path)
	default:
		// Discovery only hands over recognized extensions
		return dataframe.DataFrame{}, fmt.Errorf("unsupported extension %s", filepath.Ext(file.Name))
	}
}
