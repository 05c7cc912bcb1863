package domain

import "context"

// PostRepository is the storage contract shared by every backend. It deals
// in storage verbs only; id assignment, timestamps, and validation belong
// to the application layer so that backends stay interchangeable.
type PostRepository interface {
	// List returns the posts matching filter, newest first.
	List(ctx context.Context, filter ListFilter) ([]Post, error)

	// Get returns the post with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (*Post, error)

	// Insert persists a fully-populated new post.
	Insert(ctx context.Context, p *Post) error

	// Replace overwrites the mutable fields and UpdatedAt of the stored
	// post with p.ID, keeping the stored Date. On success p reflects the
	// stored record. Returns ErrNotFound if no such post exists.
	Replace(ctx context.Context, p *Post) error

	// Delete removes the post with the given id, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Stats summarizes the full collection, ignoring any filter.
	Stats(ctx context.Context) (*Stats, error)
}
