// Package sqlite implements the chunk index on an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/core/domain"
	"github.com/HollyGM/Arquivos-em-JSON-AI/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ChunkIndex = (*Store)(nil)

// Store is a SQLite-backed chunk index. Every chunk of every written
// batch gets a metadata row plus term-frequency postings; search ranks
// chunks by summed occurrences of the query terms.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (or creates) the index database under dataDir.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "chunks.db")
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{db: db, path: dbPath}
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

// IndexBatch records the batch's chunks and their term postings in one
// transaction. Re-indexing the same batch ID is rejected by the primary key.
func (s *Store) IndexBatch(ctx context.Context, b *domain.Batch, artifactPath string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO batches (id, path, created_at, document_count) VALUES (?, ?, ?, ?)",
		b.ID, artifactPath, b.CreatedAt.Format(time.RFC3339), len(b.Documents))
	if err != nil {
		return fmt.Errorf("insert batch %s: %w", b.ID, err)
	}

	for i := range b.Documents {
		c := &b.Documents[i]
		_, err = tx.ExecContext(ctx,
			"INSERT INTO chunks (id, batch_id, source_path, filename, filetype, chunk_index, char_count) VALUES (?, ?, ?, ?, ?, ?, ?)",
			c.ID, b.ID, c.Source.Path, c.Source.Filename, c.Source.Type.String(), c.ChunkIndex, c.CharCount)
		if err != nil {
			return fmt.Errorf("insert chunk %s: %w", c.ID, err)
		}
		for term, count := range tokenize(c.Text) {
			_, err = tx.ExecContext(ctx,
				"INSERT INTO postings (term, chunk_id, occurrences) VALUES (?, ?, ?)",
				term, c.ID, count)
			if err != nil {
				return fmt.Errorf("insert posting for chunk %s: %w", c.ID, err)
			}
		}
	}

	return tx.Commit()
}

// Search ranks chunks by the summed occurrences of the query terms.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error) {
	terms := tokenize(query)
	if len(terms) == 0 {
		return nil, fmt.Errorf("%w: query has no searchable terms", domain.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = 10
	}

	ordered := make([]string, 0, len(terms))
	for term := range terms {
		ordered = append(ordered, term)
	}
	sort.Strings(ordered)

	placeholders := strings.Repeat("?,", len(ordered))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, 0, len(ordered)+1)
	for _, term := range ordered {
		args = append(args, term)
	}
	args = append(args, limit)

	//nolint:gosec // placeholders contains only "?" separators
	q := fmt.Sprintf(`
		SELECT c.id, c.source_path, c.filename, c.filetype, c.chunk_index, c.char_count, b.path,
		       SUM(p.occurrences) AS score
		FROM postings p
		JOIN chunks c ON c.id = p.chunk_id
		JOIN batches b ON b.id = c.batch_id
		WHERE p.term IN (%s)
		GROUP BY c.id
		ORDER BY score DESC, c.filename ASC, c.chunk_index ASC
		LIMIT ?`, placeholders)

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("search query: %w", err)
	}
	defer rows.Close()

	var results []domain.SearchResult
	for rows.Next() {
		var r domain.SearchResult
		var filetype string
		if err := rows.Scan(&r.ChunkID, &r.SourcePath, &r.Filename, &filetype,
			&r.ChunkIndex, &r.CharCount, &r.ArtifactPath, &r.Score); err != nil {
			return nil, fmt.Errorf("scan search result: %w", err)
		}
		r.Filetype = domain.FileType(filetype)
		results = append(results, r)
	}
	return results, rows.Err()
}

// migrate applies pending migrations in version order.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var current int
	if err := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&current); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".up.sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for i, name := range names {
		version := i + 1
		if version <= current {
			continue
		}
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("applying migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}
	return nil
}

// tokenize lowercases the text and counts runs of letters and digits.
func tokenize(text string) map[string]int {
	counts := make(map[string]int)
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			counts[current.String()]++
			current.Reset()
		}
	}
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			current.WriteRune(unicode.ToLower(r))
			continue
		}
		flush()
	}
	flush()
	return counts
}
