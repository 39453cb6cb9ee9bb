package product

import (
	"regexp"
	"strconv"
	"strings"
)

// Price is an amount in the source currency. It always marshals with a
// fractional part (100.0, not 100) so the review file reads like a price list.
type Price float64

func (p Price) MarshalJSON() ([]byte, error) {
	s := strconv.FormatFloat(float64(p), 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return []byte(s), nil
}

var (
	currencyReplacer = strings.NewReplacer("TL", "", "tl", "", "Tl", "", "tL", "", " ", "")
	reNonDecimal     = regexp.MustCompile(`[^0-9.]`)
)

// ParsePrice converts a price cell into an amount. Native numbers are taken
// as is. Text is read with Turkish punctuation: "." groups thousands and ","
// marks decimals ("22.499,00 TL" is 22499). Anything unparseable is 0.
func ParsePrice(c Cell) Price {
	switch c.Kind {
	case KindEmpty:
		return 0
	case KindNumber:
		return Price(c.Num)
	}

	s := currencyReplacer.Replace(c.Str)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	s = reNonDecimal.ReplaceAllString(s, "")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return Price(v)
}
