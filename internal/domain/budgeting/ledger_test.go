package budgeting

import (
	"math/rand"
	"testing"

	"rebobinagem/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, money(want).Equal(got), "expected %s, got %s", want, got.String())
}

func TestLedger_Add(t *testing.T) {
	t.Run("computes subtotal", func(t *testing.T) {
		l := NewLedger("b-1", nil)
		it, err := l.Add("part-1", "Rolamento 6205", 2, money("45.00"))
		require.NoError(t, err)

		assert.NotEmpty(t, it.ID)
		assert.Equal(t, "b-1", it.BudgetID)
		assert.Equal(t, "Rolamento 6205", it.PartName)
		assertMoney(t, "90.00", it.Subtotal)
		assertMoney(t, "90.00", l.Subtotal())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name  string
			part  string
			qty   int
			price decimal.Decimal
			want  error
		}{
			{"zero quantity", "p", 0, money("1"), ErrInvalidQuantity},
			{"negative quantity", "p", -3, money("1"), ErrInvalidQuantity},
			{"zero price", "p", 1, decimal.Zero, ErrInvalidPrice},
			{"negative price", "p", 1, money("-0.01"), ErrInvalidPrice},
			{"missing part", "  ", 1, money("1"), ErrMissingPart},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				l := NewLedger("b-1", nil)
				_, err := l.Add(tc.part, "", tc.qty, tc.price)
				assert.ErrorIs(t, err, tc.want)
				assert.Equal(t, 0, l.Len())
			})
		}
	})

	t.Run("same part twice yields two items", func(t *testing.T) {
		l := NewLedger("b-1", nil)
		_, err := l.Add("p", "", 1, money("10"))
		require.NoError(t, err)
		_, err = l.Add("p", "", 1, money("10"))
		require.NoError(t, err)
		assert.Equal(t, 2, l.Len())
	})

	t.Run("sub-cent price is kept in cents", func(t *testing.T) {
		l := NewLedger("b-1", nil)
		it, err := l.Add("p", "", 3, money("0.333"))
		require.NoError(t, err)
		assertMoney(t, "0.33", it.UnitPrice)
		assertMoney(t, "0.99", it.Subtotal)
		assertMoney(t, "0.99", l.Subtotal())

		_, err = l.Add("p", "", 1, money("0.004"))
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})
}

func TestLedger_UpdateAndRemove(t *testing.T) {
	l := NewLedger("b-1", nil)
	a, _ := l.Add("a", "", 1, money("10"))
	b, _ := l.Add("b", "", 2, money("20"))
	c, _ := l.Add("c", "", 3, money("30"))

	t.Run("update quantity", func(t *testing.T) {
		qty := 4
		it, err := l.Update(b.ID, &qty, nil)
		require.NoError(t, err)
		assertMoney(t, "80", it.Subtotal)
		assertMoney(t, "180", l.Subtotal())
	})

	t.Run("update price", func(t *testing.T) {
		price := money("12.50")
		it, err := l.Update(a.ID, nil, &price)
		require.NoError(t, err)
		assertMoney(t, "12.50", it.Subtotal)

		price = money("12.505")
		it, err = l.Update(a.ID, nil, &price)
		require.NoError(t, err)
		assertMoney(t, "12.51", it.UnitPrice)
		assertMoney(t, "12.51", it.Subtotal)
	})

	t.Run("update validation leaves item untouched", func(t *testing.T) {
		qty := 0
		_, err := l.Update(a.ID, &qty, nil)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		it, ok := l.Find(a.ID)
		require.True(t, ok)
		assert.Equal(t, 1, it.Quantity)
	})

	t.Run("update unknown item", func(t *testing.T) {
		_, err := l.Update("nope", nil, nil)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("remove keeps order", func(t *testing.T) {
		require.NoError(t, l.Remove(b.ID))
		items := l.Items()
		require.Len(t, items, 2)
		assert.Equal(t, a.ID, items[0].ID)
		assert.Equal(t, c.ID, items[1].ID)
		assert.ErrorIs(t, l.Remove(b.ID), ErrItemNotFound)
	})

	t.Run("empty ledger subtotal is zero", func(t *testing.T) {
		assertMoney(t, "0", NewLedger("x", nil).Subtotal())
	})
}

func TestNewLedger_OrdersByPositionAndContinuesNumbering(t *testing.T) {
	l := NewLedger("b-1", []entities.LineItem{
		{ID: "2", PartID: "p", Quantity: 1, UnitPrice: money("1"), Subtotal: money("1"), Position: 5},
		{ID: "1", PartID: "p", Quantity: 1, UnitPrice: money("1"), Subtotal: money("1"), Position: 1},
	})
	it, err := l.Add("p", "", 1, money("1"))
	require.NoError(t, err)

	items := l.Items()
	assert.Equal(t, []string{"1", "2", it.ID}, []string{items[0].ID, items[1].ID, items[2].ID})
	assert.Equal(t, 6, it.Position)
}

func TestLedger_FindByPart(t *testing.T) {
	l := NewLedger("b-1", nil)
	first, _ := l.Add("p-1", "", 1, money("5"))
	_, _ = l.Add("p-2", "", 1, money("5"))

	it, ok := l.FindByPart("p-1")
	require.True(t, ok)
	assert.Equal(t, first.ID, it.ID)

	_, ok = l.FindByPart("p-3")
	assert.False(t, ok)
}

// The subtotal must equal an independent recomputation after any mutation sequence.
func TestLedger_SubtotalMatchesItemsForRandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	l := NewLedger("b-1", nil)

	for step := 0; step < 500; step++ {
		items := l.Items()
		switch op := rng.Intn(3); {
		case op == 0 || len(items) == 0:
			price := decimal.New(int64(rng.Intn(100000)), -2)
			_, _ = l.Add("p", "", rng.Intn(6)-1, price)
		case op == 1:
			qty := rng.Intn(6) - 1
			price := decimal.New(int64(rng.Intn(100000)), -2)
			_, _ = l.Update(items[rng.Intn(len(items))].ID, &qty, &price)
		default:
			_ = l.Remove(items[rng.Intn(len(items))].ID)
		}

		want := decimal.Zero
		for _, it := range l.Items() {
			require.True(t, it.Subtotal.Equal(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))))
			want = want.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
		require.Truef(t, want.Equal(l.Subtotal()), "step %d: want %s got %s", step, want, l.Subtotal())
	}
}
