package archive

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

	"github.com/nfrund/studiosite/internal/domain"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// SQLite stores submissions in a local SQLite database.
type SQLite struct {
	sqlDB *sql.DB
}

var _ domain.SubmissionArchive = (*SQLite)(nil)

// OpenSQLite opens, creating if needed, and migrates the archive at path.
func OpenSQLite(path string) (*SQLite, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("archive path is required")
	}

	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create archive dir: %w", err)
		}
	}

	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &SQLite{sqlDB: sqlDB}
	if err := store.runMigrations(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

func (s *SQLite) runMigrations() error {
	names, err := fs.Glob(migrationFS, "migrations/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)
	for _, name := range names {
		stmt, err := migrationFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if _, err := s.sqlDB.Exec(string(stmt)); err != nil {
			return fmt.Errorf("apply %s: %w", name, err)
		}
	}
	return nil
}

// Close releases the underlying SQLite connection.
func (s *SQLite) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Save inserts a submission. Saving the same ID twice is a no-op.
func (s *SQLite) Save(ctx context.Context, sub domain.Submission) error {
	if strings.TrimSpace(sub.ID) == "" {
		return fmt.Errorf("submission id is required")
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO submissions (id, client_id, full_name, email, subject, content, submitted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO NOTHING`,
		sub.ID,
		sub.ClientID,
		sub.Fields.FullName,
		sub.Fields.Email,
		sub.Fields.Subject,
		sub.Fields.Content,
		sub.SubmittedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}

// List returns up to limit submissions, newest first. A limit of zero or less returns all.
func (s *SQLite) List(ctx context.Context, limit int) ([]domain.Submission, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, client_id, full_name, email, subject, content, submitted_at
		 FROM submissions
		 ORDER BY submitted_at DESC, id
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	var out []domain.Submission
	for rows.Next() {
		var sub domain.Submission
		var submittedAt int64
		if err := rows.Scan(
			&sub.ID,
			&sub.ClientID,
			&sub.Fields.FullName,
			&sub.Fields.Email,
			&sub.Fields.Subject,
			&sub.Fields.Content,
			&submittedAt,
		); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		sub.SubmittedAt = time.UnixMilli(submittedAt).UTC()
		out = append(out, sub)
	}
	return out, rows.Err()
}
