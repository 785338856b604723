package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterFixture() []Trade {
	return []Trade{
		{ID: 1, Asset: "EUR/USD", Type: Buy, Date: "2024-01-15", Result: 2},
		{ID: 2, Asset: "XAU/USD", Type: Sell, Date: "2024-01-15", Result: -1},
		{ID: 3, Asset: "EUR/USD", Type: Sell, Date: "2024-01-16", Result: 0},
		{ID: 4, Asset: "EUR/USD", Type: Buy, Date: "2024-01-17", Result: -3},
	}
}

func TestFilterEmptyReturnsAllReversed(t *testing.T) {
	t.Parallel()

	got := Filter{}.Apply(filterFixture())

	require.Len(t, got, 4)
	assert.Equal(t, int64(4), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
	assert.Equal(t, int64(2), got[2].ID)
	assert.Equal(t, int64(1), got[3].ID)
}

func TestFilterComposition(t *testing.T) {
	t.Parallel()

	got := Filter{Asset: "EUR/USD", Type: Buy}.Apply(filterFixture())

	require.Len(t, got, 2)
	assert.Equal(t, int64(4), got[0].ID)
	assert.Equal(t, int64(1), got[1].ID)
}

func TestFilterResult(t *testing.T) {
	t.Parallel()

	profit := Filter{Result: Profit}.Apply(filterFixture())
	require.Len(t, profit, 1)
	assert.Equal(t, int64(1), profit[0].ID)

	// zero-result trades match the loss side
	loss := Filter{Result: Loss}.Apply(filterFixture())
	require.Len(t, loss, 3)
	assert.Equal(t, int64(4), loss[0].ID)
	assert.Equal(t, int64(3), loss[1].ID)
	assert.Equal(t, int64(2), loss[2].ID)
}

func TestFilterDate(t *testing.T) {
	t.Parallel()

	got := Filter{Date: "2024-01-15"}.Apply(filterFixture())

	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(1), got[1].ID)
}

func TestFilterNoMatch(t *testing.T) {
	t.Parallel()

	got := Filter{Asset: "BTC/USD"}.Apply(filterFixture())
	assert.Empty(t, got)
}

// The presentation order is a reversal of insertion position, not a date
// sort: a backdated trade added last still comes out first.
func TestFilterReversalIsNotChronological(t *testing.T) {
	t.Parallel()

	trades := []Trade{
		{ID: 1, Date: "2024-03-10", Result: 1},
		{ID: 2, Date: "2024-03-01", Result: 1}, // backdated, added later
	}

	got := Filter{}.Apply(trades)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, "2024-03-01", got[0].Date)
}
