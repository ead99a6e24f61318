package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/qna"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ qna.HistoryService = (*HistoryService)(nil)

// HistoryService implements qna.HistoryService using SQLite.
type HistoryService struct {
	db *DB
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(db *DB) *HistoryService {
	return &HistoryService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateSearch records a submitted query.
func (s *HistoryService) CreateSearch(ctx context.Context, search *qna.Search) error {
	if err := search.Validate(); err != nil {
		return err
	}

	search.ID = uuid.New().String()
	search.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO searches (id, query, results, created_at)
		VALUES (?, ?, ?, ?)
	`, search.ID, search.Query, search.Results, search.CreatedAt.Format(time.RFC3339))

	return err
}

// CreatePage records a resolved page under a search.
func (s *HistoryService) CreatePage(ctx context.Context, page *qna.ArchivedPage) error {
	if err := page.Validate(); err != nil {
		return err
	}

	page.ID = uuid.New().String()
	page.FetchedAt = time.Now().UTC()
	page.ContentHash = hashContent(page.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pages (id, search_id, url, position, question, content, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, page.ID, page.SearchID, page.URL, page.Position, page.Question, page.Content,
		page.ContentHash, page.FetchedAt.Format(time.RFC3339))

	return err
}

// RecentSearches returns up to limit searches, newest first.
func (s *HistoryService) RecentSearches(ctx context.Context, limit int) ([]*qna.Search, error) {
	query := `
		SELECT id, query, results, created_at
		FROM searches
		ORDER BY created_at DESC, rowid DESC
	`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var searches []*qna.Search
	for rows.Next() {
		var search qna.Search
		var createdAt string

		if err := rows.Scan(&search.ID, &search.Query, &search.Results, &createdAt); err != nil {
			return nil, err
		}

		search.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}

		searches = append(searches, &search)
	}

	return searches, rows.Err()
}

// FindPagesBySearch returns archived pages for a search in candidate order.
func (s *HistoryService) FindPagesBySearch(ctx context.Context, searchID string) ([]*qna.ArchivedPage, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM searches WHERE id = ?", searchID).Scan(&exists)
	if err == sql.ErrNoRows {
		return nil, qna.Errorf(qna.ENOTFOUND, "search not found")
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, search_id, url, position, question, content, content_hash, fetched_at
		FROM pages
		WHERE search_id = ?
		ORDER BY position ASC
	`, searchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*qna.ArchivedPage
	for rows.Next() {
		var page qna.ArchivedPage
		var fetchedAt string

		if err := rows.Scan(&page.ID, &page.SearchID, &page.URL, &page.Position,
			&page.Question, &page.Content, &page.ContentHash, &fetchedAt); err != nil {
			return nil, err
		}

		page.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse fetched_at: %w", err)
		}

		pages = append(pages, &page)
	}

	return pages, rows.Err()
}
