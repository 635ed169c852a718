package quote

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestPrice(t *testing.T) {
	t.Run("rejects non-positive cost", func(t *testing.T) {
		_, err := SuggestPrice(decimal.Zero)
		assert.ErrorIs(t, err, ErrNonPositiveCost)

		_, err = SuggestPrice(d("-3"))
		assert.ErrorIs(t, err, ErrNonPositiveCost)
	})

	t.Run("margin floor re-charms from cost plus twenty", func(t *testing.T) {
		// cost 8: base 24 -> charm 23.99, margin 15.99 < 20,
		// recompute from 28 -> 27.99
		price, err := SuggestPrice(d("8"))
		require.NoError(t, err)
		assert.True(t, price.Equal(d("27.99")), "got %s", price)
	})

	t.Run("mid bracket uses 2.5x multiplier", func(t *testing.T) {
		// cost 60: base 150 -> charm 149.99, margin 89.99 >= 20
		price, err := SuggestPrice(d("60"))
		require.NoError(t, err)
		assert.True(t, price.Equal(d("149.99")), "got %s", price)
	})

	t.Run("high bracket uses 2x multiplier", func(t *testing.T) {
		// cost 120: base 240 -> charm 239.99
		price, err := SuggestPrice(d("120"))
		require.NoError(t, err)
		assert.True(t, price.Equal(d("239.99")), "got %s", price)
	})

	t.Run("bracket boundaries are exclusive", func(t *testing.T) {
		// cost 50 stays in the 3x bracket: base 150 -> 149.99
		price, err := SuggestPrice(d("50"))
		require.NoError(t, err)
		assert.True(t, price.Equal(d("149.99")), "got %s", price)

		// cost 100 stays in the 2.5x bracket: base 250 -> 249.99
		price, err = SuggestPrice(d("100"))
		require.NoError(t, err)
		assert.True(t, price.Equal(d("249.99")), "got %s", price)
	})

	t.Run("result always ends in a charm pattern", func(t *testing.T) {
		for _, cost := range []string{"1", "7.35", "12.50", "33.33", "55", "80.10", "101", "250"} {
			price, err := SuggestPrice(d(cost))
			require.NoError(t, err)
			cents := price.Sub(price.Floor())
			assert.True(t, cents.Equal(d("0.99")), "cost %s -> price %s", cost, price)
			assert.True(t, price.Sub(d(cost)).GreaterThanOrEqual(d("19.99")),
				"cost %s -> price %s violates margin floor", cost, price)
		}
	})
}

func TestCharmPrice(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"4.20", "4.99"},   // under 10 rounds up to next X.99
		{"9.10", "9.99"},   // under 10, close to boundary
		{"24", "23.99"},    // integers snap down a cent
		{"23.60", "23.99"}, // within 0.51 of ceil
		{"23.20", "23.99"}, // otherwise floor + .99
		{"150", "149.99"},
		{"10", "9.99"},
	}

	for _, tc := range cases {
		got := charmPrice(d(tc.in))
		assert.True(t, got.Equal(d(tc.want)), "charm(%s) = %s, want %s", tc.in, got, tc.want)
	}
}
