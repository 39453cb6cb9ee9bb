package converter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ryabkov82/price-converter/internal/config"
	"github.com/ryabkov82/price-converter/internal/product"
)

var (
	ErrInputNotFound     = errors.New("input file not found")
	ErrUnsupportedFormat = errors.New("unsupported input format")
)

type Converter interface {
	ConvertFile(cfg *config.Config) (*Result, error)
}

// RowReader loads every row of a table into memory, in source order.
type RowReader interface {
	ReadRows(path string) ([][]product.Cell, error)
}

type Result struct {
	Products   []product.Product
	InputPath  string
	OutputPath string
	RowCount   int64 // rows read, skipped ones included
}

type FileConverter struct {
	log zerolog.Logger
}

func NewFileConverter(log zerolog.Logger) Converter {
	return &FileConverter{log: log}
}

// ConvertFile reads cfg.InputPath, normalizes its rows and writes the
// product list to cfg.OutputPath. A missing input yields ErrInputNotFound
// and leaves the output untouched.
func (c *FileConverter) ConvertFile(cfg *config.Config) (*Result, error) {
	c.log.Info().Msgf("Reading %s...", cfg.InputPath)

	if _, err := os.Stat(cfg.InputPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, cfg.InputPath)
		}
		return nil, fmt.Errorf("stat %s: %w", cfg.InputPath, err)
	}

	reader, err := readerFor(cfg)
	if err != nil {
		return nil, err
	}

	rows, err := reader.ReadRows(cfg.InputPath)
	if err != nil {
		return nil, err
	}

	products := product.NormalizeAll(rows)
	c.log.Debug().
		Int("rows", len(rows)).
		Int("skipped", len(rows)-len(products)).
		Msg("rows normalized")

	if err := WriteJSON(cfg.OutputPath, products); err != nil {
		return nil, err
	}

	c.log.Info().Msgf("Success! Converted %d items.", len(products))
	c.log.Info().Msgf("Saved to %s", cfg.OutputPath)

	return &Result{
		Products:   products,
		InputPath:  cfg.InputPath,
		OutputPath: cfg.OutputPath,
		RowCount:   int64(len(rows)),
	}, nil
}

func readerFor(cfg *config.Config) (RowReader, error) {
	switch ext := strings.ToLower(filepath.Ext(cfg.InputPath)); ext {
	case ".xlsx", ".xlsm":
		return SheetReader{}, nil
	case ".csv", ".txt":
		return CSVReader{Delimiter: cfg.Delimiter(), Encoding: cfg.Encoding}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
