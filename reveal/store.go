package reveal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/gommon/log"
	_ "modernc.org/sqlite"
)

const dayLayout = "2006-01-02"

// Store counts first reveals per section per day in SQLite. Only counts
// are kept; nothing identifies the visitor.
type Store struct {
	db *sql.DB
}

// SectionCount is the number of page views in which a section was revealed.
type SectionCount struct {
	Section string
	Count   int
}

// DailyCount is the number of reveals of a section on one day.
type DailyCount struct {
	Day     string
	Section string
	Count   int
}

// NewStore opens (or creates) the reveal database at path.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open reveal db: %w", err)
	}
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("configure reveal db: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS reveals (
			day TEXT NOT NULL,
			section TEXT NOT NULL,
			count INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (day, section)
		);
	`)
	return err
}

// RecordReveal adds one reveal of section on the day of at (UTC).
func (s *Store) RecordReveal(ctx context.Context, section string, at time.Time) error {
	if !KnownSection(section) {
		return ErrUnknownSection
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO reveals (day, section, count) VALUES (?, ?, 1)
		ON CONFLICT(day, section) DO UPDATE SET count = count + 1
	`, at.UTC().Format(dayLayout), section)
	return err
}

// Counts returns reveal totals over the last days days (including today),
// one entry per section in composition order, zero-filled.
func (s *Store) Counts(ctx context.Context, days int) ([]SectionCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT section, SUM(count) FROM reveals WHERE day >= ? GROUP BY section
	`, since(days))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]int)
	for rows.Next() {
		var section string
		var n int
		if err := rows.Scan(&section, &n); err != nil {
			return nil, err
		}
		totals[section] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	out := make([]SectionCount, 0, len(Sections))
	for _, sec := range Sections {
		out = append(out, SectionCount{Section: sec, Count: totals[sec]})
	}
	return out, nil
}

// Daily returns per-day reveal counts over the last days days, oldest first.
func (s *Store) Daily(ctx context.Context, days int) ([]DailyCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT day, section, count FROM reveals WHERE day >= ? ORDER BY day ASC, section ASC
	`, since(days))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DailyCount
	for rows.Next() {
		var d DailyCount
		if err := rows.Scan(&d.Day, &d.Section, &d.Count); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Cleanup deletes counts older than retentionDays.
func (s *Store) Cleanup(ctx context.Context, retentionDays int) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM reveals WHERE day < ?`, since(retentionDays))
	return err
}

// StartCleanupScheduler runs Cleanup every interval. Returns a stop function.
func (s *Store) StartCleanupScheduler(retentionDays int, interval time.Duration) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				if err := s.Cleanup(context.Background(), retentionDays); err != nil {
					log.Errorf("reveal cleanup: %v", err)
				}
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()

	return func() { close(done) }
}

func since(days int) string {
	if days < 1 {
		days = 1
	}
	return time.Now().UTC().AddDate(0, 0, -(days - 1)).Format(dayLayout)
}
