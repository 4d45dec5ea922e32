package shopping

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

type lineKey struct {
	name string
	unit string
}

// Aggregate groups rows by (name, unit), sums their amounts and sorts the
// result by name under the collation of tag. Ties fall back to byte order of
// name, then unit, so the output is deterministic for any input order.
func Aggregate(rows []domain.CartIngredient, tag language.Tag) domain.ShoppingList {
	sums := make(map[lineKey]int64, len(rows))
	for _, row := range rows {
		sums[lineKey{name: row.Name, unit: row.MeasurementUnit}] += int64(row.Amount)
	}

	lines := make([]domain.ShoppingLine, 0, len(sums))
	for k, amount := range sums {
		lines = append(lines, domain.ShoppingLine{Name: k.name, MeasurementUnit: k.unit, Amount: amount})
	}

	// Collators keep internal buffers and are not safe for concurrent use
	col := collate.New(tag)
	slices.SortFunc(lines, func(a, b domain.ShoppingLine) int {
		if c := col.CompareString(a.Name, b.Name); c != 0 {
			return c
		}
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.MeasurementUnit, b.MeasurementUnit)
	})

	return domain.ShoppingList{Lines: lines}
}

// Render writes list as plain text: the header, then one line per ingredient
func Render(list domain.ShoppingList) string {
	var b strings.Builder
	b.WriteString(domain.ShoppingListHeader)
	for _, line := range list.Lines {
		b.WriteByte('\n')
		fmt.Fprintf(&b, domain.ShoppingLineFormat, line.Name, line.MeasurementUnit, line.Amount)
	}
	return b.String()
}
