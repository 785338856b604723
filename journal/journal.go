// Package journal keeps a discretionary trader's records: individual
// trades, free-form notes and periodic self reviews, all owned by a single
// user identity. The package also derives everything the record shell
// displays: summary statistics, groupings by asset and time, filtered
// views and chart-ready datasets. Derivations are pure functions over an
// in-memory snapshot; persistence goes through the Store contract.
package journal

import "context"

// Store persists one user's three collections. Implementations substitute
// an empty collection when a stored payload cannot be decoded; a non-nil
// load error means the store itself was unreachable, never that the data
// was malformed.
type Store interface {
	LoadTrades(ctx context.Context) ([]Trade, error)
	SaveTrades(ctx context.Context, trades []Trade) error

	LoadNotes(ctx context.Context) ([]Note, error)
	SaveNotes(ctx context.Context, notes []Note) error

	LoadReviews(ctx context.Context) ([]Review, error)
	SaveReviews(ctx context.Context, reviews []Review) error
}
