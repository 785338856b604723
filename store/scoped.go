// store/scoped.go
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/rustyeddy/tradebook/journal"
)

// DefaultLanguage is the locale tag returned before a user has chosen one.
const DefaultLanguage = "ar"

// Scoped binds a KV to one user identity and owns the journal key scheme:
// trades_{user}, notes_{user}, reviews_{user} and language_{user}, each
// collection a JSON array in insertion order. A stored payload that fails
// to decode degrades to an empty collection; the caller never sees it as
// an error, only the log does.
//
// Every collection save also stamps rev_{user} with a fresh ULID. The
// store stays last-writer-wins, but a lost update becomes detectable.
type Scoped struct {
	kv   KV
	user string
	log  *zap.Logger
}

func NewScoped(kv KV, user string, log *zap.Logger) *Scoped {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scoped{kv: kv, user: user, log: log}
}

// User returns the identity this store is scoped to.
func (s *Scoped) User() string {
	return s.user
}

func (s *Scoped) key(ns string) string {
	return ns + "_" + s.user
}

// load decodes one namespace. A payload that fails to decode is dropped
// wholesale; partial decodes never surface.
func load[T any](ctx context.Context, s *Scoped, ns string) ([]T, error) {
	raw, ok, err := s.kv.Get(ctx, s.key(ns))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", ns, err)
	}
	if !ok || len(raw) == 0 {
		return nil, nil
	}

	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		s.log.Warn("discarding unreadable collection",
			zap.String("namespace", ns),
			zap.String("user", s.user),
			zap.Error(err))
		return nil, nil
	}
	return out, nil
}

func (s *Scoped) save(ctx context.Context, ns string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", ns, err)
	}
	if err := s.kv.Set(ctx, s.key(ns), raw); err != nil {
		return fmt.Errorf("save %s: %w", ns, err)
	}

	rev := newRevision()
	if err := s.kv.Set(ctx, s.key("rev"), []byte(rev)); err != nil {
		// The write itself succeeded; a missing revision stamp only costs
		// diagnosability.
		s.log.Warn("revision stamp failed", zap.String("namespace", ns), zap.Error(err))
	}
	return nil
}

func (s *Scoped) LoadTrades(ctx context.Context) ([]journal.Trade, error) {
	return load[journal.Trade](ctx, s, "trades")
}

func (s *Scoped) SaveTrades(ctx context.Context, trades []journal.Trade) error {
	return s.save(ctx, "trades", trades)
}

func (s *Scoped) LoadNotes(ctx context.Context) ([]journal.Note, error) {
	return load[journal.Note](ctx, s, "notes")
}

func (s *Scoped) SaveNotes(ctx context.Context, notes []journal.Note) error {
	return s.save(ctx, "notes", notes)
}

func (s *Scoped) LoadReviews(ctx context.Context) ([]journal.Review, error) {
	return load[journal.Review](ctx, s, "reviews")
}

func (s *Scoped) SaveReviews(ctx context.Context, reviews []journal.Review) error {
	return s.save(ctx, "reviews", reviews)
}

// Language returns the user's stored locale tag. The tag is opaque to the
// core; only the presentation shell interprets it.
func (s *Scoped) Language(ctx context.Context) (string, error) {
	raw, ok, err := s.kv.Get(ctx, s.key("language"))
	if err != nil {
		return "", fmt.Errorf("load language: %w", err)
	}
	if !ok || len(raw) == 0 {
		return DefaultLanguage, nil
	}
	return string(raw), nil
}

func (s *Scoped) SetLanguage(ctx context.Context, lang string) error {
	if err := s.kv.Set(ctx, s.key("language"), []byte(lang)); err != nil {
		return fmt.Errorf("save language: %w", err)
	}
	return nil
}

// Revision returns the ULID of the most recent collection save for this
// user. The second return is false before the first save.
func (s *Scoped) Revision(ctx context.Context) (string, bool, error) {
	raw, ok, err := s.kv.Get(ctx, s.key("rev"))
	if err != nil {
		return "", false, fmt.Errorf("load revision: %w", err)
	}
	if !ok {
		return "", false, nil
	}
	return string(raw), true, nil
}
