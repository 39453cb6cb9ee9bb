package config

import "testing"

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.InputPath != DefaultInputPath || cfg.OutputPath != DefaultOutputPath {
		t.Errorf("paths = %q, %q; want %q, %q", cfg.InputPath, cfg.OutputPath, DefaultInputPath, DefaultOutputPath)
	}
	if cfg.Delimiter() != ';' {
		t.Errorf("Delimiter() = %q, want ';'", cfg.Delimiter())
	}
	if cfg.Encoding != "utf-8" || cfg.LogFile != "" || cfg.StatusJSON {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestParse_Flags(t *testing.T) {
	cfg, err := Parse([]string{
		"-in", "exports/./prices.csv",
		"-out", "out//data.json",
		"-csv-delimiter", ",",
		"-encoding", "windows-1254",
		"-log-file", "logs/run.log",
		"-status-json",
	})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.InputPath != "exports/prices.csv" {
		t.Errorf("InputPath = %q", cfg.InputPath)
	}
	if cfg.OutputPath != "out/data.json" {
		t.Errorf("OutputPath = %q", cfg.OutputPath)
	}
	if cfg.Delimiter() != ',' || cfg.Encoding != "windows-1254" || cfg.LogFile != "logs/run.log" || !cfg.StatusJSON {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty input", func(c *Config) { c.InputPath = "" }, true},
		{"empty output", func(c *Config) { c.OutputPath = "" }, true},
		{"empty delimiter", func(c *Config) { c.CSVDelimiter = "" }, true},
		{"long delimiter", func(c *Config) { c.CSVDelimiter = ";;" }, true},
		{"tab delimiter", func(c *Config) { c.CSVDelimiter = "\t" }, false},
		{"empty encoding", func(c *Config) { c.Encoding = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParse_UnknownFlag(t *testing.T) {
	if _, err := Parse([]string{"-dir", "x"}); err == nil {
		t.Error("expected error for unknown flag")
	}
}
