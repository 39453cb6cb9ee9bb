package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestRun_MissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "data.json")
	var stdout, stderr bytes.Buffer

	code := run([]string{"-in", filepath.Join(dir, "ikea_prices.xlsx"), "-out", out}, &stdout, &stderr)
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stdout.String(), "Error: Could not find") {
		t.Errorf("stdout = %q", stdout.String())
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output must not exist, stat err = %v", err)
	}
}

func TestRun_StatusJSON(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "prices.xlsx")
	out := filepath.Join(dir, "data.json")

	f := excelize.NewFile()
	_ = f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Barkod", "Ad", "Eski", "Yeni"})
	_ = f.SetSheetRow("Sheet1", "A2", &[]interface{}{"1.001", "MALM", "2.000,00 TL", 1750})
	if err := f.SaveAs(in); err != nil {
		t.Fatal(err)
	}
	_ = f.Close()

	var stdout, stderr bytes.Buffer
	code := run([]string{"-in", in, "-out", out, "-status-json"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr.String())
	}

	var status Output
	if err := json.Unmarshal(stdout.Bytes(), &status); err != nil {
		t.Fatalf("stdout is not a JSON summary: %v\n%s", err, stdout.String())
	}
	if !status.Success || status.ItemCount != 1 || status.RowCount != 2 {
		t.Errorf("status = %+v", status)
	}
	if len(status.OutputFiles) != 1 || status.OutputFiles[0] != out {
		t.Errorf("OutputFiles = %v", status.OutputFiles)
	}
	if !strings.Contains(stderr.String(), "Success! Converted 1 items.") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRun_BadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-csv-delimiter", ";;"}, &stdout, &stderr); code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
}
