// journal/note.go
package journal

import "time"

// NoteCategory classifies a free-form journal note.
type NoteCategory string

const (
	General    NoteCategory = "general"
	Strategy   NoteCategory = "strategy"
	Psychology NoteCategory = "psychology"
	Market     NoteCategory = "market"
	Goals      NoteCategory = "goals"
)

// Note is a free-form observation attached to the journal.
type Note struct {
	ID        int64        `json:"id"`
	Title     string       `json:"title"`
	Category  NoteCategory `json:"category"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"createdAt"`
}

// Review is a periodic self-assessment: three 0-10 ratings plus narrative
// fields.
type Review struct {
	ID           int64     `json:"id"`
	Discipline   int       `json:"discipline"`
	Plan         int       `json:"plan"`
	Risk         int       `json:"risk"`
	Achievements string    `json:"achievements"`
	Mistakes     string    `json:"mistakes"`
	Improvements string    `json:"improvements"`
	CreatedAt    time.Time `json:"createdAt"`
}
