package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/inklet-labs/inklet/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/inklet-labs/inklet/internal/core/domain"
	"github.com/inklet-labs/inklet/internal/core/ports/driven"
)

// Store is a SQLite-based metadata store. It provides access to the
// publication store interface through a wrapper type.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.inklet/data/inklet.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".inklet", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "inklet.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// PublicationStore returns a PublicationStore interface backed by this store.
func (s *Store) PublicationStore() driven.PublicationStore {
	return &publicationStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// publicationStore implements driven.PublicationStore.
type publicationStore struct {
	store *Store
}

var _ driven.PublicationStore = (*publicationStore)(nil)

// SavePublication stores a publication record.
func (p *publicationStore) SavePublication(ctx context.Context, pub *domain.Publication) error {
	if pub == nil || pub.ID == "" {
		return fmt.Errorf("saving publication: %w", domain.ErrInvalidInput)
	}

	_, err := p.store.db.ExecContext(ctx, `
		INSERT INTO publications (id, memo_id, page_id, url, title, block_count, published_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			memo_id = excluded.memo_id,
			page_id = excluded.page_id,
			url = excluded.url,
			title = excluded.title,
			block_count = excluded.block_count,
			published_at = excluded.published_at
	`, pub.ID, pub.MemoID, pub.PageID, pub.URL, pub.Title, pub.BlockCount, pub.PublishedAt.UTC())

	if err != nil {
		return fmt.Errorf("saving publication: %w", err)
	}
	return nil
}

// GetPublication retrieves a publication by ID.
func (p *publicationStore) GetPublication(ctx context.Context, id string) (*domain.Publication, error) {
	row := p.store.db.QueryRowContext(ctx, `
		SELECT id, memo_id, page_id, url, title, block_count, published_at
		FROM publications WHERE id = ?
	`, id)

	pub, err := scanPublication(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning publication: %w", err)
	}
	return pub, nil
}

// ListPublications returns the most recent publications, newest first.
func (p *publicationStore) ListPublications(ctx context.Context, limit int) ([]domain.Publication, error) {
	query := `
		SELECT id, memo_id, page_id, url, title, block_count, published_at
		FROM publications ORDER BY published_at DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := p.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying publications: %w", err)
	}
	defer rows.Close()

	var pubs []domain.Publication //nolint:prealloc // size unknown from query
	for rows.Next() {
		pub, err := scanPublication(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning publication: %w", err)
		}
		pubs = append(pubs, *pub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating publications: %w", err)
	}

	return pubs, nil
}

// scanPublication reads one publication row via the given scan function.
func scanPublication(scan func(dest ...any) error) (*domain.Publication, error) {
	var pub domain.Publication
	var publishedAt sql.NullTime
	if err := scan(&pub.ID, &pub.MemoID, &pub.PageID, &pub.URL, &pub.Title,
		&pub.BlockCount, &publishedAt); err != nil {
		return nil, err
	}
	if publishedAt.Valid {
		pub.PublishedAt = publishedAt.Time
	}
	return &pub, nil
}
