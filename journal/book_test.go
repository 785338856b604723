package journal_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradebook/journal"
	"github.com/rustyeddy/tradebook/store"
)

func newTestBook(t *testing.T) (*journal.Book, *store.Scoped) {
	t.Helper()

	sc := store.NewScoped(store.NewMemory(), "tester", nil)
	b, err := journal.Open(context.Background(), sc, nil)
	require.NoError(t, err)
	return b, sc
}

func TestAddTrade(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b, _ := newTestBook(t)

	added, err := b.AddTrade(ctx, journal.Trade{
		Date:       "2024-01-15",
		Asset:      "EUR/USD",
		Type:       journal.Buy,
		LotSize:    0.1,
		EntryTime:  "09:30",
		ExitTime:   "11:45",
		EntryPrice: 1.0850,
		ExitPrice:  1.0875,
		ExitReason: journal.TakeProfit,
	})
	require.NoError(t, err)

	assert.NotZero(t, added.ID)
	assert.False(t, added.CreatedAt.IsZero())
	assert.InDelta(t, 0.00025, added.Result, 1e-9)

	trades := b.Trades()
	require.Len(t, trades, 1)
	assert.Equal(t, added, trades[0])
}

func TestAddTradeIDsStrictlyIncrease(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b, _ := newTestBook(t)

	var last int64
	for i := 0; i < 10; i++ {
		tr, err := b.AddTrade(ctx, journal.Trade{Asset: "EUR/USD", Type: journal.Buy})
		require.NoError(t, err)
		assert.Greater(t, tr.ID, last)
		last = tr.ID
	}
}

func TestBookPersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b, sc := newTestBook(t)

	added, err := b.AddTrade(ctx, journal.Trade{
		Date:        "2024-01-16",
		Asset:       "XAU/USD",
		Type:        journal.Sell,
		LotSize:     0.05,
		EntryTime:   "14:20",
		ExitTime:    "16:30",
		EntryPrice:  2050.00,
		ExitPrice:   2045.00,
		ExitReason:  journal.TakeProfit,
		EntryReason: "strong signal",
		Comment:     "hit the target",
	})
	require.NoError(t, err)

	note, err := b.AddNote(ctx, journal.Note{
		Title:    "process",
		Category: journal.Psychology,
		Content:  "stick to the plan",
	})
	require.NoError(t, err)

	review, err := b.AddReview(ctx, journal.Review{
		Discipline:   8,
		Plan:         7,
		Risk:         9,
		Achievements: "followed stops",
	})
	require.NoError(t, err)

	reopened, err := journal.Open(ctx, sc, nil)
	require.NoError(t, err)

	trades := reopened.Trades()
	require.Len(t, trades, 1)
	assert.Equal(t, added, trades[0])

	notes := reopened.Notes()
	require.Len(t, notes, 1)
	assert.Equal(t, note, notes[0])

	reviews := reopened.Reviews()
	require.Len(t, reviews, 1)
	assert.Equal(t, review, reviews[0])
}

func TestDeleteTrade(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b, sc := newTestBook(t)

	first, err := b.AddTrade(ctx, journal.Trade{Asset: "EUR/USD", Type: journal.Buy})
	require.NoError(t, err)
	second, err := b.AddTrade(ctx, journal.Trade{Asset: "XAU/USD", Type: journal.Sell})
	require.NoError(t, err)

	require.NoError(t, b.DeleteTrade(ctx, first.ID))

	trades := b.Trades()
	require.Len(t, trades, 1)
	assert.Equal(t, second.ID, trades[0].ID)

	// the deletion was persisted, not just in memory
	reopened, err := journal.Open(ctx, sc, nil)
	require.NoError(t, err)
	assert.Len(t, reopened.Trades(), 1)
}

func TestDeleteUnknownIDIsNoOp(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b, _ := newTestBook(t)

	added, err := b.AddTrade(ctx, journal.Trade{Asset: "EUR/USD", Type: journal.Buy})
	require.NoError(t, err)

	require.NoError(t, b.DeleteTrade(ctx, added.ID+12345))
	require.NoError(t, b.DeleteNote(ctx, 999))
	require.NoError(t, b.DeleteReview(ctx, 999))

	trades := b.Trades()
	require.Len(t, trades, 1)
	assert.Equal(t, added, trades[0])
}

func TestSnapshotsAreCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b, _ := newTestBook(t)

	_, err := b.AddTrade(ctx, journal.Trade{Asset: "EUR/USD", Type: journal.Buy})
	require.NoError(t, err)

	snap := b.Trades()
	snap[0].Asset = "mutated"

	assert.Equal(t, "EUR/USD", b.Trades()[0].Asset)
}

func TestRecentTrades(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b, _ := newTestBook(t)

	assets := []string{"a", "b", "c"}
	for _, a := range assets {
		_, err := b.AddTrade(ctx, journal.Trade{Asset: a, Type: journal.Buy})
		require.NoError(t, err)
	}

	recent := b.RecentTrades(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "c", recent[0].Asset)
	assert.Equal(t, "b", recent[1].Asset)

	// n beyond the collection returns everything, newest first
	all := b.RecentTrades(10)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].Asset)
	assert.Equal(t, "a", all[2].Asset)
}

func TestAssets(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b, _ := newTestBook(t)

	for _, a := range []string{"EUR/USD", "XAU/USD", "EUR/USD"} {
		_, err := b.AddTrade(ctx, journal.Trade{Asset: a, Type: journal.Buy})
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"EUR/USD", "XAU/USD"}, b.Assets())
}

func TestBookQueries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b, _ := newTestBook(t)

	_, err := b.AddTrade(ctx, journal.Trade{
		Date: "2024-01-15", Asset: "EUR/USD", Type: journal.Buy,
		LotSize: 1, EntryPrice: 1.0, ExitPrice: 3.0, EntryTime: "09:00",
	})
	require.NoError(t, err)
	_, err = b.AddTrade(ctx, journal.Trade{
		Date: "2024-01-16", Asset: "XAU/USD", Type: journal.Buy,
		LotSize: 1, EntryPrice: 5.0, ExitPrice: 4.0, EntryTime: "14:00",
	})
	require.NoError(t, err)

	s := b.Summary()
	assert.Equal(t, 2, s.TotalCount)
	assert.InDelta(t, 1.0, s.TotalPnL, 1e-9)
	assert.InDelta(t, 50.0, s.WinRate, 1e-9)

	best := b.BestAssets(5)
	require.NotEmpty(t, best)
	assert.Equal(t, "EUR/USD", best[0].Key)

	worst, ok := b.WorstAsset()
	require.True(t, ok)
	assert.Equal(t, "XAU/USD", worst)

	losses, ok := b.Losses()
	require.True(t, ok)
	assert.Equal(t, 1, losses.Count)
	assert.InDelta(t, -1.0, losses.AvgLoss, 1e-9)

	filtered := b.Filtered(journal.Filter{Asset: "EUR/USD"})
	require.Len(t, filtered, 1)
	assert.Equal(t, "EUR/USD", filtered[0].Asset)

	charts := b.Charts()
	assert.Len(t, charts.Scatter, 6)
	assert.Equal(t, 1, charts.Split.Wins)
	assert.Equal(t, 1, charts.Split.Losses)
}
