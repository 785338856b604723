// journal/book.go
package journal

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"
)

// Book owns one user's collections. It hydrates from the store when
// opened, keeps the collections in memory, and writes a whole collection
// back after every add or delete. Queries return snapshots; callers never
// observe the Book's internal slices.
//
// A Book is single-threaded by contract: every operation runs to
// completion before the next begins. The store underneath may be shared
// with other processes, in which case the last writer wins an overwrite of
// the whole collection.
type Book struct {
	store Store
	log   *zap.Logger

	trades  []Trade
	notes   []Note
	reviews []Review

	lastID int64
	now    func() time.Time
}

// Open loads the user's collections from st and returns a Book over them.
func Open(ctx context.Context, st Store, log *zap.Logger) (*Book, error) {
	if log == nil {
		log = zap.NewNop()
	}

	trades, err := st.LoadTrades(ctx)
	if err != nil {
		return nil, fmt.Errorf("load trades: %w", err)
	}
	notes, err := st.LoadNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("load notes: %w", err)
	}
	reviews, err := st.LoadReviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	b := &Book{
		store:   st,
		log:     log,
		trades:  trades,
		notes:   notes,
		reviews: reviews,
		now:     time.Now,
	}

	for _, t := range trades {
		b.lastID = max(b.lastID, t.ID)
	}
	for _, n := range notes {
		b.lastID = max(b.lastID, n.ID)
	}
	for _, r := range reviews {
		b.lastID = max(b.lastID, r.ID)
	}

	log.Debug("journal opened",
		zap.Int("trades", len(trades)),
		zap.Int("notes", len(notes)),
		zap.Int("reviews", len(reviews)))

	return b, nil
}

// nextID returns the current time in Unix milliseconds, bumped past the
// last issued id so ids stay strictly increasing even within the same
// millisecond.
func (b *Book) nextID() int64 {
	id := b.now().UnixMilli()
	if id <= b.lastID {
		id = b.lastID + 1
	}
	b.lastID = id
	return id
}

// AddTrade stamps the record's id, creation time and derived result, then
// appends it and persists the collection. The returned Trade is the stored
// record.
func (b *Book) AddTrade(ctx context.Context, t Trade) (Trade, error) {
	t.ID = b.nextID()
	t.CreatedAt = b.now().UTC()
	t.Result = ComputeResult(t)

	b.trades = append(b.trades, t)
	if err := b.store.SaveTrades(ctx, b.trades); err != nil {
		b.trades = b.trades[:len(b.trades)-1]
		return Trade{}, fmt.Errorf("save trades: %w", err)
	}

	b.log.Info("trade recorded",
		zap.Int64("id", t.ID),
		zap.String("asset", t.Asset),
		zap.String("type", string(t.Type)),
		zap.Float64("result", t.Result))

	return t, nil
}

// DeleteTrade removes the trade with the given id. Deleting an id that is
// not present is a no-op, not an error.
func (b *Book) DeleteTrade(ctx context.Context, id int64) error {
	kept := slices.DeleteFunc(slices.Clone(b.trades), func(t Trade) bool { return t.ID == id })
	if len(kept) == len(b.trades) {
		return nil
	}
	if err := b.store.SaveTrades(ctx, kept); err != nil {
		return fmt.Errorf("save trades: %w", err)
	}
	b.trades = kept
	b.log.Info("trade deleted", zap.Int64("id", id))
	return nil
}

// AddNote stamps and persists a note.
func (b *Book) AddNote(ctx context.Context, n Note) (Note, error) {
	n.ID = b.nextID()
	n.CreatedAt = b.now().UTC()

	b.notes = append(b.notes, n)
	if err := b.store.SaveNotes(ctx, b.notes); err != nil {
		b.notes = b.notes[:len(b.notes)-1]
		return Note{}, fmt.Errorf("save notes: %w", err)
	}

	b.log.Info("note recorded", zap.Int64("id", n.ID), zap.String("category", string(n.Category)))
	return n, nil
}

// DeleteNote removes a note by id; absent ids are a no-op.
func (b *Book) DeleteNote(ctx context.Context, id int64) error {
	kept := slices.DeleteFunc(slices.Clone(b.notes), func(n Note) bool { return n.ID == id })
	if len(kept) == len(b.notes) {
		return nil
	}
	if err := b.store.SaveNotes(ctx, kept); err != nil {
		return fmt.Errorf("save notes: %w", err)
	}
	b.notes = kept
	b.log.Info("note deleted", zap.Int64("id", id))
	return nil
}

// AddReview stamps and persists a self review.
func (b *Book) AddReview(ctx context.Context, r Review) (Review, error) {
	r.ID = b.nextID()
	r.CreatedAt = b.now().UTC()

	b.reviews = append(b.reviews, r)
	if err := b.store.SaveReviews(ctx, b.reviews); err != nil {
		b.reviews = b.reviews[:len(b.reviews)-1]
		return Review{}, fmt.Errorf("save reviews: %w", err)
	}

	b.log.Info("review recorded", zap.Int64("id", r.ID))
	return r, nil
}

// DeleteReview removes a review by id; absent ids are a no-op.
func (b *Book) DeleteReview(ctx context.Context, id int64) error {
	kept := slices.DeleteFunc(slices.Clone(b.reviews), func(r Review) bool { return r.ID == id })
	if len(kept) == len(b.reviews) {
		return nil
	}
	if err := b.store.SaveReviews(ctx, kept); err != nil {
		return fmt.Errorf("save reviews: %w", err)
	}
	b.reviews = kept
	b.log.Info("review deleted", zap.Int64("id", id))
	return nil
}

// Trades returns a snapshot of the trade collection in insertion order.
func (b *Book) Trades() []Trade {
	return slices.Clone(b.trades)
}

// Notes returns a snapshot of the note collection in insertion order.
func (b *Book) Notes() []Note {
	return slices.Clone(b.notes)
}

// Reviews returns a snapshot of the review collection in insertion order.
func (b *Book) Reviews() []Review {
	return slices.Clone(b.reviews)
}

// RecentTrades returns the last n trades, newest first.
func (b *Book) RecentTrades(n int) []Trade {
	start := len(b.trades) - n
	if start < 0 {
		start = 0
	}
	recent := slices.Clone(b.trades[start:])
	slices.Reverse(recent)
	return recent
}

// Assets returns the distinct asset names in order of first appearance.
func (b *Book) Assets() []string {
	seen := make(map[string]bool)
	var assets []string
	for _, t := range b.trades {
		if !seen[t.Asset] {
			seen[t.Asset] = true
			assets = append(assets, t.Asset)
		}
	}
	return assets
}

// Summary computes whole-collection statistics over the current trades.
func (b *Book) Summary() Summary {
	return Summarize(b.trades)
}

// Filtered returns the trades matching f, most recently added first.
func (b *Book) Filtered(f Filter) []Trade {
	return f.Apply(b.trades)
}

// GroupedByAsset buckets the trades by asset name.
func (b *Book) GroupedByAsset() map[string]Bucket {
	return GroupAndSum(b.trades, ByAsset)
}

// GroupedByHour buckets the trades by entry hour.
func (b *Book) GroupedByHour() map[int]Bucket {
	return GroupAndSum(b.trades, ByEntryHour)
}

// BestAssets ranks assets by summed result, best first.
func (b *Book) BestAssets(n int) []Group[string] {
	return TopN(b.GroupedByAsset(), n)
}

// BestHours ranks entry hours by summed result, best first.
func (b *Book) BestHours(n int) []Group[int] {
	return TopN(b.GroupedByHour(), n)
}

// WorstAsset returns the asset with the lowest summed result. The second
// return is false when there are no trades.
func (b *Book) WorstAsset() (string, bool) {
	worst := BottomN(b.GroupedByAsset(), 1)
	if len(worst) == 0 {
		return "", false
	}
	return worst[0].Key, true
}

// Losses reports on the losing trades. The second return is false when
// there are none.
func (b *Book) Losses() (LossReport, bool) {
	return AnalyzeLosses(b.trades)
}

// WeeklySeries sums results per week over the current trades.
func (b *Book) WeeklySeries() []SeriesPoint {
	return WeeklySeries(b.trades)
}

// MonthlySeries sums results per month over the current trades.
func (b *Book) MonthlySeries() []SeriesPoint {
	return MonthlySeries(b.trades)
}

// Charts builds every chart-ready dataset from the current trades.
func (b *Book) Charts() ChartData {
	return BuildCharts(b.trades)
}
