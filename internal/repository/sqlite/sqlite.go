// Package sqlite implements the repository interfaces using SQLite as the
// storage backend.
//
// WHY modernc.org/sqlite INSTEAD OF github.com/mattn/go-sqlite3?
// mattn/go-sqlite3 uses CGo, which means you need a C compiler installed and
// cross-compilation becomes painful. modernc.org/sqlite is a pure Go
// translation of the SQLite C code — no C compiler needed, works everywhere
// Go works. For a single-binary personal site that matters: one `go build`,
// one file to deploy.
package sqlite

import (
	"database/sql"
	"fmt"

	// Blank import: the driver registers itself with database/sql under the
	// name "sqlite" in its init function.
	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB connection pool. The per-entity repositories (Videos,
// Comments, Acknowledgements) share this pool; DB owns its lifecycle.
type DB struct {
	conn *sql.DB
}

// Videos returns the video repository backed by this database.
func (db *DB) Videos() *VideoRepo {
	return &VideoRepo{conn: db.conn}
}

// Comments returns the comment repository backed by this database.
func (db *DB) Comments() *CommentRepo {
	return &CommentRepo{conn: db.conn}
}

// Acknowledgements returns the acknowledgement repository backed by this
// database.
func (db *DB) Acknowledgements() *AcknowledgementRepo {
	return &AcknowledgementRepo{conn: db.conn}
}

// New opens (or creates) the database at dbPath and runs migrations.
// Use ":memory:" in tests for a throwaway database.
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// A single connection avoids SQLITE_BUSY under concurrent writes, and it
	// is required for ":memory:" databases, where every pooled connection
	// would otherwise see its own empty database.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL keeps writes from rewriting the whole journal on every commit.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	// Foreign keys are OFF by default in SQLite. We need them ON for the
	// comments.video_id ON DELETE SET NULL behaviour.
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: enabling foreign keys: %w", err)
	}

	db := &DB{conn: conn}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the database connection pool.
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates the schema. CREATE TABLE IF NOT EXISTS keeps this safe to
// run on every start.
func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS videos (
			id          TEXT PRIMARY KEY,
			filename    TEXT NOT NULL DEFAULT '',
			title       TEXT NOT NULL DEFAULT '',
			publish_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			author_note TEXT NOT NULL DEFAULT '',
			created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_videos_publish_at ON videos(publish_at);
	`)
	if err != nil {
		return fmt.Errorf("creating videos table: %w", err)
	}

	// video_id is nullable: deleting a video orphans its comments rather
	// than deleting them (ON DELETE SET NULL).
	// The UNIQUE index is the backstop for duplicate submissions — the
	// service checks first, but two racing identical POSTs both pass that
	// check and the index catches the second insert.
	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS comments (
			id          TEXT PRIMARY KEY,
			video_id    TEXT REFERENCES videos(id) ON DELETE SET NULL,
			author      TEXT NOT NULL DEFAULT 'anonymous',
			text        TEXT NOT NULL,
			posted_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			is_approved BOOLEAN NOT NULL DEFAULT 1,
			UNIQUE(video_id, author, text)
		);
		CREATE INDEX IF NOT EXISTS idx_comments_video_id ON comments(video_id);
	`)
	if err != nil {
		return fmt.Errorf("creating comments table: %w", err)
	}

	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS acknowledgements (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL DEFAULT '',
			link        TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT ''
		);
	`)
	if err != nil {
		return fmt.Errorf("creating acknowledgements table: %w", err)
	}

	return nil
}
