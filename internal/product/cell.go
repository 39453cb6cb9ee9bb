package product

import (
	"strconv"
	"strings"
)

type Kind int

const (
	KindEmpty Kind = iota
	KindNumber
	KindText
)

// Cell is a single spreadsheet value as read from the source table.
// Number cells keep the value the table stored natively; text cells keep the
// string exactly as exported.
type Cell struct {
	Kind Kind
	Num  float64
	Str  string
}

func Empty() Cell { return Cell{Kind: KindEmpty} }

func Number(v float64) Cell { return Cell{Kind: KindNumber, Num: v} }

func Text(s string) Cell { return Cell{Kind: KindText, Str: s} }

// String returns the text form of the cell. Numbers use the shortest decimal
// representation, so an integer-valued barcode stays free of a trailing ".0".
func (c Cell) String() string {
	switch c.Kind {
	case KindNumber:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	case KindText:
		return c.Str
	}
	return ""
}

// IsBlank reports whether the cell carries no data.
func (c Cell) IsBlank() bool {
	switch c.Kind {
	case KindEmpty:
		return true
	case KindText:
		return strings.TrimSpace(c.Str) == ""
	}
	return false
}
