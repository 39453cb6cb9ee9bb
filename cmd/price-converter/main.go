package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ryabkov82/price-converter/internal/config"
	"github.com/ryabkov82/price-converter/internal/converter"
	"github.com/ryabkov82/price-converter/internal/logs"
)

// Output is the run summary printed with -status-json.
type Output struct {
	Success     bool     `json:"success"`
	OutputFiles []string `json:"output_files,omitempty"`
	Error       string   `json:"error,omitempty"`
	Duration    string   `json:"duration"`
	RowCount    int64    `json:"row_count,omitempty"`
	ItemCount   int      `json:"item_count"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {

	start := time.Now()

	cfg, err := config.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "configuration error: %v\n", err)
		return 2
	}

	// Keep stdout machine-readable when the JSON summary is requested.
	console := stdout
	if cfg.StatusJSON {
		console = stderr
	}
	log, closer, err := logs.New(console, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(stderr, "cannot open log file: %v\n", err)
		return 1
	}
	defer closer.Close()

	res, err := converter.NewFileConverter(log).ConvertFile(cfg)
	if err != nil {
		if errors.Is(err, converter.ErrInputNotFound) {
			log.Error().Msgf("Error: Could not find %s", cfg.InputPath)
		} else {
			log.Error().Err(err).Msg("conversion failed")
		}
		if cfg.StatusJSON {
			emitJSON(stdout, Output{
				Success:  false,
				Error:    err.Error(),
				Duration: time.Since(start).String(),
			})
		}
		return 1
	}

	if cfg.StatusJSON {
		emitJSON(stdout, Output{
			Success:     true,
			OutputFiles: []string{res.OutputPath},
			RowCount:    res.RowCount,
			ItemCount:   len(res.Products),
			Duration:    time.Since(start).String(),
		})
	}
	return 0
}

func emitJSON(w io.Writer, out Output) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "status output: %v\n", err)
	}
}
