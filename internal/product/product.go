package product

import "strings"

// Product is one row of the price list after normalization.
type Product struct {
	Barcode  string `json:"barcode"`
	Name     string `json:"name"`
	OldPrice Price  `json:"old_price"`
	NewPrice Price  `json:"new_price"`
}

// minCells is barcode, name, old price and new price.
const minCells = 4

// HeaderMarkers identify label rows in the English and Turkish exports.
var HeaderMarkers = []string{"Article", "Barkod"}

// Normalize maps a raw row onto a Product. The first non-blank cell is the
// barcode, the last two are the old and new price, and everything in between
// is the name (names are sometimes split over several columns).
// The second result is false when the row is too short or is a header row.
func Normalize(row []Cell) (Product, bool) {
	cells := make([]Cell, 0, len(row))
	for _, c := range row {
		if c.IsBlank() {
			continue
		}
		cells = append(cells, c)
	}
	if len(cells) < minCells {
		return Product{}, false
	}

	rawBarcode := strings.TrimSpace(cells[0].String())
	if isHeader(rawBarcode) {
		return Product{}, false
	}

	n := len(cells)
	nameParts := make([]string, 0, n-3)
	for _, c := range cells[1 : n-2] {
		nameParts = append(nameParts, strings.TrimSpace(c.String()))
	}

	return Product{
		Barcode:  strings.ReplaceAll(rawBarcode, ".", ""),
		Name:     strings.Join(nameParts, " "),
		OldPrice: ParsePrice(cells[n-2]),
		NewPrice: ParsePrice(cells[n-1]),
	}, true
}

// NormalizeAll normalizes rows in order, dropping skipped ones.
// The result is never nil.
func NormalizeAll(rows [][]Cell) []Product {
	products := make([]Product, 0, len(rows))
	for _, row := range rows {
		if p, ok := Normalize(row); ok {
			products = append(products, p)
		}
	}
	return products
}

func isHeader(s string) bool {
	for _, m := range HeaderMarkers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
