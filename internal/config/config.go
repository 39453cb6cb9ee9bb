package config

import (
	"errors"
	"flag"
	"fmt"
	"path/filepath"
	"unicode/utf8"
)

const (
	DefaultInputPath  = "ikea_prices.xlsx"
	DefaultOutputPath = "data.json"
)

type Config struct {
	InputPath    string
	OutputPath   string
	CSVDelimiter string
	Encoding     string // charset label for CSV input
	LogFile      string
	StatusJSON   bool
}

// Default returns the configuration used when no flags are given.
func Default() *Config {
	return &Config{
		InputPath:    DefaultInputPath,
		OutputPath:   DefaultOutputPath,
		CSVDelimiter: ";",
		Encoding:     "utf-8",
	}
}

// Parse reads cfg from args. Without arguments it yields Default().
func Parse(args []string) (*Config, error) {

	cfg := Default()

	fs := flag.NewFlagSet("price-converter", flag.ContinueOnError)
	fs.StringVar(&cfg.InputPath, "in", cfg.InputPath, "input price list (.xlsx, .xlsm, .csv)")
	fs.StringVar(&cfg.OutputPath, "out", cfg.OutputPath, "output JSON file")
	fs.StringVar(&cfg.CSVDelimiter, "csv-delimiter", cfg.CSVDelimiter, "field delimiter for CSV input")
	fs.StringVar(&cfg.Encoding, "encoding", cfg.Encoding, "character set of CSV input")
	fs.StringVar(&cfg.LogFile, "log-file", "", "also append log lines to this file")
	fs.BoolVar(&cfg.StatusJSON, "status-json", false, "print a JSON run summary to stdout")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Normalize paths
	cfg.InputPath = filepath.Clean(cfg.InputPath)
	cfg.OutputPath = filepath.Clean(cfg.OutputPath)
	if cfg.LogFile != "" {
		cfg.LogFile = filepath.Clean(cfg.LogFile)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.InputPath == "" {
		return errors.New("input path must not be empty (-in)")
	}
	if c.OutputPath == "" {
		return errors.New("output path must not be empty (-out)")
	}
	if utf8.RuneCountInString(c.CSVDelimiter) != 1 {
		return fmt.Errorf("csv delimiter must be a single character, got %q", c.CSVDelimiter)
	}
	if c.Encoding == "" {
		return errors.New("encoding must not be empty (-encoding)")
	}
	return nil
}

// Delimiter returns the CSV delimiter as a rune. Validate must pass first.
func (c *Config) Delimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.CSVDelimiter)
	return r
}
