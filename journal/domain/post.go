package domain

import (
	"strings"
	"time"
)

const (
	// DefaultCategory is assigned to posts created without a category.
	DefaultCategory = "EXCLUSIVE"

	// CategoryAll is the sentinel filter value meaning "no category filter".
	// It is never stored as an actual category.
	CategoryAll = "ALL"

	// TimeFormat is the wire and storage format for post timestamps.
	// Fixed millisecond precision in UTC so that lexicographic order of
	// stored values matches chronological order.
	TimeFormat = "2006-01-02T15:04:05.000Z"
)

// Post is the single content record managed by the journal.
// Timestamps are stored as formatted strings (see TimeFormat); Date is set
// once at creation and never changes, UpdatedAt is refreshed on every update.
type Post struct {
	ID        string `json:"id"`
	Headline  string `json:"headline"`
	Deck      string `json:"deck"`
	Author    string `json:"author"`
	Category  string `json:"category"`
	Body      string `json:"body"`
	Date      string `json:"date"`
	UpdatedAt string `json:"updated_at"`
}

// PostFields is the client-writable subset of a Post, shared by the create
// and update paths.
type PostFields struct {
	Headline string
	Deck     string
	Author   string
	Category string
	Body     string
}

// Normalize fills defaults for absent optional fields. Headline is passed
// through verbatim; it is validated, not trimmed.
func (f PostFields) Normalize() PostFields {
	if f.Category == "" {
		f.Category = DefaultCategory
	}
	return f
}

// Validate enforces the sole validation rule: a post must have a headline
// with at least one non-whitespace character.
func (f PostFields) Validate() error {
	if strings.TrimSpace(f.Headline) == "" {
		return ErrHeadlineRequired
	}
	return nil
}

// FormatTime renders t in the canonical timestamp format.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}

// parseTime interprets a stored timestamp as an instant. Unparsable values
// sort as the zero time rather than failing the query.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
