package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	burger = CatalogEntry{ID: "d1", Name: "Burger", UnitPrice: decimal.RequireFromString("12.50"), CategoryTag: "principal"}
	fries  = CatalogEntry{ID: "d2", Name: "Fries", UnitPrice: decimal.RequireFromString("5.00"), CategoryTag: "entrada"}
	soda   = CatalogEntry{ID: "d3", Name: "Soda", UnitPrice: decimal.RequireFromString("2.75"), CategoryTag: "bebida"}
)

func TestAddLine(t *testing.T) {
	t.Run("AppendsNewLine", func(t *testing.T) {
		lines := AddLine(nil, burger)

		assert.Len(t, lines, 1)
		assert.Equal(t, "d1", lines[0].ID)
		assert.Equal(t, 1, lines[0].Quantity)
		assert.True(t, lines[0].Subtotal.Equal(burger.UnitPrice))
	})

	t.Run("IncrementsExistingLine", func(t *testing.T) {
		lines := AddLine(AddLine(nil, burger), burger)

		assert.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].Quantity)
		assert.Equal(t, "25", lines[0].Subtotal.String())
	})

	t.Run("TwiceEqualsSetQuantityTwo", func(t *testing.T) {
		base := AddLine(nil, fries)

		twice := AddLine(AddLine(base, burger), burger)
		set := SetLineQuantity(AddLine(base, burger), burger.ID, 2)

		assert.Equal(t, set, twice)
	})

	t.Run("DoesNotModifyInput", func(t *testing.T) {
		in := AddLine(nil, burger)
		_ = AddLine(in, burger)

		assert.Equal(t, 1, in[0].Quantity)
	})

	t.Run("KeepsSnapshotPrice", func(t *testing.T) {
		lines := AddLine(nil, burger)
		repriced := burger
		repriced.UnitPrice = decimal.NewFromInt(99)

		lines = AddLine(lines, repriced)

		assert.True(t, lines[0].UnitPrice.Equal(burger.UnitPrice))
		assert.Equal(t, "25", lines[0].Subtotal.String())
	})
}

func TestSetLineQuantity(t *testing.T) {
	lines := AddLine(AddLine(AddLine(nil, burger), fries), soda)

	t.Run("Zero removes only that line", func(t *testing.T) {
		out := SetLineQuantity(lines, fries.ID, 0)

		assert.Len(t, out, 2)
		assert.Equal(t, lines[0], out[0])
		assert.Equal(t, lines[2], out[1])
	})

	t.Run("Negative removes", func(t *testing.T) {
		out := SetLineQuantity(lines, burger.ID, -3)
		assert.Len(t, out, 2)
		assert.Equal(t, fries.ID, out[0].ID)
	})

	t.Run("Recomputes subtotal", func(t *testing.T) {
		out := SetLineQuantity(lines, soda.ID, 4)
		assert.Equal(t, 4, out[2].Quantity)
		assert.Equal(t, "11", out[2].Subtotal.String())
	})

	t.Run("Idempotent", func(t *testing.T) {
		once := SetLineQuantity(lines, soda.ID, 3)
		twice := SetLineQuantity(once, soda.ID, 3)
		assert.Equal(t, once, twice)
	})

	t.Run("UnknownIDLeavesLines", func(t *testing.T) {
		assert.Equal(t, lines, SetLineQuantity(lines, "missing", 5))
	})
}

func TestTotal(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.True(t, Total(nil).IsZero())
	})

	t.Run("SumOfQuantityTimesPrice", func(t *testing.T) {
		lines := SetLineQuantity(AddLine(AddLine(nil, burger), fries), burger.ID, 2)

		expected := decimal.Zero
		for _, l := range lines {
			expected = expected.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
		}

		assert.True(t, Total(lines).Equal(expected))
		assert.Equal(t, "30.00", Total(lines).StringFixed(2))
	})
}

func TestNormalizeLines(t *testing.T) {
	t.Run("DropsNonPositiveAndRecomputes", func(t *testing.T) {
		out, err := normalizeLines([]LineItem{
			{ID: "a", Name: "A", UnitPrice: decimal.NewFromInt(3), Quantity: 2, Subtotal: decimal.NewFromInt(1)},
			{ID: "b", Name: "B", UnitPrice: decimal.NewFromInt(3), Quantity: 0},
		})

		assert.NoError(t, err)
		assert.Len(t, out, 1)
		assert.Equal(t, "6", out[0].Subtotal.String())
	})

	t.Run("RejectsMissingName", func(t *testing.T) {
		_, err := normalizeLines([]LineItem{{ID: "a", UnitPrice: decimal.NewFromInt(1), Quantity: 1}})
		assert.ErrorIs(t, err, ErrInvalidLine)
	})

	t.Run("RejectsNegativePrice", func(t *testing.T) {
		_, err := normalizeLines([]LineItem{{ID: "a", Name: "A", UnitPrice: decimal.NewFromInt(-1), Quantity: 1}})
		assert.ErrorIs(t, err, ErrInvalidLine)
	})

	t.Run("RejectsMissingID", func(t *testing.T) {
		_, err := normalizeLines([]LineItem{{ID: " ", Name: "A", UnitPrice: decimal.NewFromInt(1), Quantity: 1}})
		assert.ErrorIs(t, err, ErrInvalidLine)
	})

	t.Run("MergesDuplicateIDs", func(t *testing.T) {
		out, err := normalizeLines([]LineItem{
			{ID: "a", Name: "A", UnitPrice: decimal.NewFromInt(3), Quantity: 1},
			{ID: "b", Name: "B", UnitPrice: decimal.NewFromInt(2), Quantity: 1},
			{ID: "a", Name: "A bis", UnitPrice: decimal.NewFromInt(9), Quantity: 2},
		})

		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, "a", out[0].ID)
		assert.Equal(t, "A", out[0].Name)
		assert.Equal(t, 3, out[0].Quantity)
		assert.Equal(t, "9", out[0].Subtotal.String())
		assert.Equal(t, "b", out[1].ID)
	})
}
