// Package store is the local SQLite journal: quiz sessions, their events,
// unsent submissions and the LLM request log.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	_ "modernc.org/sqlite" // driver: sqlite

	"github.com/abhisek/quizdeck/ent"
	"github.com/abhisek/quizdeck/ent/migrate"
)

// pragmas are applied by the driver to every new connection.
var pragmas = []string{
	"busy_timeout(5000)",
	"journal_mode(WAL)",
	"foreign_keys(1)",
	"synchronous(NORMAL)",
}

type Store struct {
	db     *sql.DB
	client *ent.Client
	seq    *sequence
}

// Open opens or creates the journal at path and migrates it to the current
// schema.
func Open(path string) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One connection: writes are serialized and rows must be drained before
	// the next query.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	if err := client.Schema.Create(ctx, migrate.WithForeignKeys(false)); err != nil {
		client.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	seq, err := newSequence(ctx, client, journalSequence)
	if err != nil {
		client.Close()
		return nil, err
	}
	return &Store{db: db, client: client, seq: seq}, nil
}

func dsn(path string) string {
	q := url.Values{}
	for _, p := range pragmas {
		q.Add("_pragma", p)
	}
	return "file:" + path + "?" + q.Encode()
}

// DB exposes the connection for ad-hoc queries in tests and tools.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Close() error { return s.client.Close() }

func (s *Store) JournalRepo() JournalRepo {
	return &journalRepo{client: s.client, seq: s.seq}
}

func (s *Store) EventRepo() EventRepo {
	return &eventRepo{client: s.client, seq: s.seq}
}

// ResolvePath picks the journal location: the first non-empty candidate
// (e.g. the --db flag, then QUIZDECK_DB), else quizdeck.db under
// $XDG_DATA_HOME or ~/.local/share. The parent directory is created.
func ResolvePath(candidates ...string) (string, error) {
	for _, c := range candidates {
		if c != "" {
			return c, ensureDir(c)
		}
	}

	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".local", "share")
	}
	p := filepath.Join(base, "quizdeck", "quizdeck.db")
	return p, ensureDir(p)
}

func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
