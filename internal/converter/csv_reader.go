package converter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ryabkov82/price-converter/internal/product"
)

// CSVReader reads delimited text exports. All cells are text, so prices go
// through the locale-aware string path.
type CSVReader struct {
	Delimiter rune
	Encoding  string
}

func (r CSVReader) ReadRows(path string) ([][]product.Cell, error) {
	enc, _ := charset.Lookup(normalizeCharset(r.Encoding))
	if enc == nil {
		return nil, fmt.Errorf("unknown encoding %q", r.Encoding)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	// A byte order mark wins over the configured charset.
	src := transform.NewReader(f, unicode.BOMOverride(enc.NewDecoder()))

	cr := csv.NewReader(src)
	cr.Comma = r.Delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var table [][]product.Cell
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		row := make([]product.Cell, len(record))
		for i, v := range record {
			if v == "" {
				row[i] = product.Empty()
				continue
			}
			row[i] = product.Text(v)
		}
		table = append(table, row)
	}
	return table, nil
}

// normalizeCharset maps labels seen in vendor exports onto names
// charset.Lookup knows.
func normalizeCharset(cs string) string {
	c := strings.TrimSpace(strings.ToLower(cs))
	switch c {
	case "turkish", "cp-1254", "win-1254", "windows1254":
		return "windows-1254"
	case "latin-5", "iso8859-9", "iso_8859-9":
		return "iso-8859-9"
	default:
		return c
	}
}
