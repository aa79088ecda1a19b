package order

import (
	"strings"

	"github.com/shopspring/decimal"
)

func newLine(id, name string, unitPrice decimal.Decimal, quantity int) LineItem {
	return LineItem{
		ID:        id,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  quantity,
		Subtotal:  unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

// AddLine returns lines with entry added once: an existing line for entry.ID gets its
// quantity bumped by one, otherwise a new line with quantity 1 is appended.
// The input slice is never modified.
func AddLine(lines []LineItem, entry CatalogEntry) []LineItem {
	out := make([]LineItem, 0, len(lines)+1)
	found := false

	for _, l := range lines {
		if l.ID == entry.ID {
			l = newLine(l.ID, l.Name, l.UnitPrice, l.Quantity+1)
			found = true
		}
		out = append(out, l)
	}

	if !found {
		out = append(out, newLine(entry.ID, entry.Name, entry.UnitPrice, 1))
	}
	return out
}

// SetLineQuantity sets the quantity of the line with the given id. A quantity of zero or
// less removes the line. Unknown ids leave lines unchanged. Order is preserved.
func SetLineQuantity(lines []LineItem, id string, quantity int) []LineItem {
	out := make([]LineItem, 0, len(lines))

	for _, l := range lines {
		if l.ID != id {
			out = append(out, l)
			continue
		}
		if quantity <= 0 {
			continue
		}
		out = append(out, newLine(l.ID, l.Name, l.UnitPrice, quantity))
	}
	return out
}

// Total sums line subtotals. An empty sequence totals zero.
func Total(lines []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal)
	}
	return total
}

// normalizeLines recomputes every subtotal and drops lines whose quantity is not positive.
// Lines sharing an id are merged into the first one, keeping its name and price snapshot,
// so every dish appears at most once.
func normalizeLines(lines []LineItem) ([]LineItem, error) {
	out := make([]LineItem, 0, len(lines))
	index := make(map[string]int, len(lines))

	for _, l := range lines {
		l.ID = strings.TrimSpace(l.ID)
		if l.ID == "" || l.Name == "" || l.UnitPrice.IsNegative() {
			return nil, ErrInvalidLine
		}
		if l.Quantity <= 0 {
			continue
		}
		if i, ok := index[l.ID]; ok {
			first := out[i]
			out[i] = newLine(first.ID, first.Name, first.UnitPrice, first.Quantity+l.Quantity)
			continue
		}
		index[l.ID] = len(out)
		out = append(out, newLine(l.ID, l.Name, l.UnitPrice, l.Quantity))
	}
	return out, nil
}

func quantityOf(lines []LineItem, id string) int {
	for _, l := range lines {
		if l.ID == id {
			return l.Quantity
		}
	}
	return 0
}
