package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dailyjournal/journal/journal/domain"
	"github.com/dailyjournal/journal/shared/db"
)

var _ domain.PostRepository = (*SQLitePostRepository)(nil)

// SQLitePostRepository implements domain.PostRepository over a posts table
// with id as primary key and a descending index on date. Filtering,
// ordering, and aggregation are pushed into the query layer instead of
// being done in process memory.
type SQLitePostRepository struct {
	db *sql.DB
}

func NewSQLitePostRepository(db *sql.DB) *SQLitePostRepository {
	return &SQLitePostRepository{db: db}
}

const postColumns = "id, headline, deck, author, category, body, date, updated_at"

const listPostsQuery = "SELECT " + postColumns + " FROM posts"

// List builds the WHERE clause from the filter. LIKE is case-insensitive
// for ASCII in SQLite, which is exactly the search behavior we want.
func (r *SQLitePostRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Post, error) {
	query := listPostsQuery
	var conditions []string
	var args []any

	if filter.Category != "" && filter.Category != domain.CategoryAll {
		conditions = append(conditions, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.Search != "" {
		conditions = append(conditions, "(headline LIKE ? OR body LIKE ?)")
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]domain.Post, 0)
	for rows.Next() {
		var p domain.Post
		if err := scanPost(rows.Scan, &p); err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}

	return posts, nil
}

const getPostQuery = "SELECT " + postColumns + " FROM posts WHERE id = ?"

func (r *SQLitePostRepository) Get(ctx context.Context, id string) (*domain.Post, error) {
	var p domain.Post
	err := scanPost(r.db.QueryRowContext(ctx, getPostQuery, id).Scan, &p)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &p, nil
}

const insertPostQuery = `
	INSERT INTO posts (` + postColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`

func (r *SQLitePostRepository) Insert(ctx context.Context, p *domain.Post) error {
	_, err := r.db.ExecContext(ctx, insertPostQuery,
		p.ID,
		p.Headline,
		p.Deck,
		p.Author,
		p.Category,
		p.Body,
		p.Date,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

const replacePostQuery = `
	UPDATE posts
	SET headline = ?, deck = ?, author = ?, category = ?, body = ?, updated_at = ?
	WHERE id = ?
`

// Replace updates the mutable columns and rereads the stored row within a
// single transaction, so p comes back with the original creation date.
func (r *SQLitePostRepository) Replace(ctx context.Context, p *domain.Post) error {
	return db.RunInTransaction(ctx, r.db, func(txCtx context.Context) error {
		executor := db.GetExecutor(txCtx, r.db)

		result, err := executor.ExecContext(txCtx, replacePostQuery,
			p.Headline,
			p.Deck,
			p.Author,
			p.Category,
			p.Body,
			p.UpdatedAt,
			p.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update post: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read update result: %w", err)
		}
		if affected == 0 {
			return domain.ErrNotFound
		}

		if err := scanPost(executor.QueryRowContext(txCtx, getPostQuery, p.ID).Scan, p); err != nil {
			return fmt.Errorf("failed to reread updated post: %w", err)
		}

		return nil
	})
}

const deletePostQuery = "DELETE FROM posts WHERE id = ?"

func (r *SQLitePostRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, deletePostQuery, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

const (
	countPostsQuery = "SELECT COUNT(*) FROM posts"

	countByCategoryQuery = `
		SELECT category, COUNT(*) AS n
		FROM posts
		GROUP BY category
		ORDER BY n DESC
	`

	// Dates share a fixed-width UTC format, so the string order used by
	// the index matches chronological order.
	latestDateQuery = "SELECT date FROM posts ORDER BY date DESC LIMIT 1"
)

func (r *SQLitePostRepository) Stats(ctx context.Context) (*domain.Stats, error) {
	stats := &domain.Stats{ByCategory: []domain.CategoryCount{}}

	if err := r.db.QueryRowContext(ctx, countPostsQuery).Scan(&stats.Total); err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, countByCategoryQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to count posts by category: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var cc domain.CategoryCount
		if err := rows.Scan(&cc.Category, &cc.N); err != nil {
			return nil, fmt.Errorf("failed to scan category count: %w", err)
		}
		stats.ByCategory = append(stats.ByCategory, cc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category counts: %w", err)
	}

	err = r.db.QueryRowContext(ctx, latestDateQuery).Scan(&stats.LatestDate)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to get latest post date: %w", err)
	}

	return stats, nil
}

// scanPost reads one posts row into p using the column order of postColumns.
func scanPost(scan func(dest ...any) error, p *domain.Post) error {
	return scan(
		&p.ID,
		&p.Headline,
		&p.Deck,
		&p.Author,
		&p.Category,
		&p.Body,
		&p.Date,
		&p.UpdatedAt,
	)
}
