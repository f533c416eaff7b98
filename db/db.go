package db

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/runsha/sketchfolio/logging"
	"github.com/runsha/sketchfolio/model"

	_ "github.com/mattn/go-sqlite3"
)

var logCtx = logging.PackageCtx("db")

// ErrInvalidRetention is returned for purge windows that would delete every view.
var ErrInvalidRetention = errors.New("retention must be positive")

type SQLiteStorage struct {
	db *sql.DB
}

func NewStorage(db *sql.DB) (*SQLiteStorage, error) {
	if err := InitDBStorage(db); err != nil {
		return nil, err
	}

	return &SQLiteStorage{db}, nil
}

func InitDBStorage(db *sql.DB) error {
	statements := []string{
		`create table if not exists section_views(section text not null, visitor text not null, ts datetime);`,
		`create index if not exists section_views_sectionix on section_views (section);`,
		`create index if not exists section_views_tsix on section_views (ts ASC);`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("could not run %q: %w", stmt, err)
		}
	}

	return nil
}

// NewStorageFromPath opens (or creates) the sqlite file at path.
func NewStorageFromPath(path string) (*SQLiteStorage, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}

	// :memory: databases are per connection.
	conn.SetMaxOpenConns(1)

	storage, err := NewStorage(conn)
	if err != nil {
		conn.Close()

		return nil, err
	}

	return storage, nil
}

func (s *SQLiteStorage) RecordView(section model.Section, visitor string) error {
	_, err := s.db.Exec(`insert into section_views(section, visitor, ts)
	    values(?, ?, datetime('now', 'subsec'))`,
		section.Slug(), visitor)
	if err != nil {
		return fmt.Errorf("could not record view of %s: %w", section, err)
	}

	return nil
}

// GatherViews returns one row per section in display order, including unseen sections.
func (s *SQLiteStorage) GatherViews() ([]model.SectionViews, error) {
	rows, err := s.db.Query(
		`select section, count(*) as cnt, count(distinct visitor) as uniq
        from section_views
        group by section`)
	if err != nil {
		return nil, fmt.Errorf("could not query views: %w", err)
	}

	defer rows.Close()

	counts := make(map[model.Section]model.SectionViews)

	for rows.Next() {
		var slug string

		var views, unique int

		if err := rows.Scan(&slug, &views, &unique); err != nil {
			return nil, fmt.Errorf("could not scan views: %w", err)
		}

		section, err := model.ParseSection(slug)
		if err != nil {
			slog.WarnContext(logCtx, "Skipping views of unknown section", "section", slug)

			continue
		}

		counts[section] = model.SectionViews{Section: section, Views: views, UniqueVisitors: unique}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not iterate views: %w", err)
	}

	sections := model.AllSections()
	result := make([]model.SectionViews, 0, len(sections))

	for _, section := range sections {
		row, ok := counts[section]
		if !ok {
			row = model.SectionViews{Section: section}
		}

		result = append(result, row)
	}

	return result, nil
}

// PurgeOlderThan deletes views recorded more than age ago.
func (s *SQLiteStorage) PurgeOlderThan(age time.Duration) (int64, error) {
	if age <= 0 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidRetention, age)
	}

	cutoff := time.Now().UTC().Add(-age).Format("2006-01-02 15:04:05")

	result, err := s.db.Exec(`delete from section_views where ts < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("could not purge views: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count purged views: %w", err)
	}

	return deleted, nil
}

func (s *SQLiteStorage) Close() {
	if err := s.db.Close(); err != nil {
		slog.ErrorContext(logCtx, "Failed to close storage", "error", err)
	}
}
