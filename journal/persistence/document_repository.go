package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/dailyjournal/journal/journal/domain"
)

var _ domain.PostRepository = (*DocumentPostRepository)(nil)

// documentRoot is the on-disk shape of the whole-document store.
type documentRoot struct {
	Posts []domain.Post `json:"posts"`
}

// DocumentPostRepository implements domain.PostRepository over a single
// JSON file rewritten in full on every mutation. Reads always go back to
// disk so external edits to the file are picked up on the next request.
// A missing or unparsable file reads as an empty collection.
//
// Writes are serialized by a single mutex: each mutation is a
// read-modify-write of the entire document, and without the lock two
// concurrent writers would silently drop each other's changes.
type DocumentPostRepository struct {
	path string
	mu   sync.Mutex
}

func NewDocumentPostRepository(path string) *DocumentPostRepository {
	return &DocumentPostRepository{path: path}
}

func (r *DocumentPostRepository) load() (*documentRoot, error) {
	root := &documentRoot{Posts: []domain.Post{}}

	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return root, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read document store: %w", err)
	}

	// Corrupt content is treated the same as a missing file.
	if err := json.Unmarshal(data, root); err != nil {
		return &documentRoot{Posts: []domain.Post{}}, nil
	}
	if root.Posts == nil {
		root.Posts = []domain.Post{}
	}

	return root, nil
}

// store rewrites the whole document. It writes to a temp file in the same
// directory and renames it into place so readers never see a torn write.
func (r *DocumentPostRepository) store(root *documentRoot) error {
	data, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document store: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".journal-*")
	if err != nil {
		return fmt.Errorf("failed to create temp document: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write document store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp document: %w", err)
	}

	if err := os.Rename(tmpPath, r.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace document store: %w", err)
	}

	return nil
}

// List filters and sorts in memory; the document store has no query layer.
func (r *DocumentPostRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Post, error) {
	root, err := r.load()
	if err != nil {
		return nil, err
	}

	posts := domain.FilterPosts(root.Posts, filter)
	domain.SortNewestFirst(posts)
	return posts, nil
}

func (r *DocumentPostRepository) Get(ctx context.Context, id string) (*domain.Post, error) {
	root, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range root.Posts {
		if root.Posts[i].ID == id {
			p := root.Posts[i]
			return &p, nil
		}
	}

	return nil, domain.ErrNotFound
}

func (r *DocumentPostRepository) Insert(ctx context.Context, p *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	root, err := r.load()
	if err != nil {
		return err
	}

	root.Posts = append(root.Posts, *p)
	return r.store(root)
}

func (r *DocumentPostRepository) Replace(ctx context.Context, p *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	root, err := r.load()
	if err != nil {
		return err
	}

	for i := range root.Posts {
		if root.Posts[i].ID != p.ID {
			continue
		}
		p.Date = root.Posts[i].Date
		root.Posts[i] = *p
		return r.store(root)
	}

	return domain.ErrNotFound
}

func (r *DocumentPostRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	root, err := r.load()
	if err != nil {
		return err
	}

	for i := range root.Posts {
		if root.Posts[i].ID == id {
			root.Posts = append(root.Posts[:i], root.Posts[i+1:]...)
			return r.store(root)
		}
	}

	return domain.ErrNotFound
}

func (r *DocumentPostRepository) Stats(ctx context.Context) (*domain.Stats, error) {
	root, err := r.load()
	if err != nil {
		return nil, err
	}

	stats := domain.Aggregate(root.Posts)
	return &stats, nil
}
