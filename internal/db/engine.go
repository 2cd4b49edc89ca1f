// Package db owns the embedded database image: a single SQLite database held
// in memory, restored from a file at startup and written back to that file
// after every mutation.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mattn/go-sqlite3"
	"github.com/natefinch/atomic"
)

// Row is one result row, keyed by column name.
type Row map[string]any

// Result reports the outcome of a mutating call. Changes is fixed at 1 per
// call; the true affected-row count is deliberately not reported.
type Result struct {
	ID      int64
	Changes int64
}

// Engine is the storage engine. It holds the live database image in memory
// and persists a full snapshot to Path after every mutation issued through
// Run. The connection pool is capped at one connection so the in-memory
// database is shared and all operations serialize by construction.
type Engine struct {
	db     *sql.DB
	path   string
	fts    bool
	lastID int64
}

// Open creates an Engine backed by an in-memory database. If path names an
// existing file, its image is restored into memory via the SQLite online
// backup API. The parent directory is created if absent.
func Open(path string) (*Engine, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	mem, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	mem.SetMaxOpenConns(1)

	if _, err := mem.Exec("PRAGMA foreign_keys = ON"); err != nil {
		mem.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	e := &Engine{db: mem, path: path}

	if _, err := os.Stat(path); err == nil {
		if err := e.restore(path); err != nil {
			mem.Close()
			return nil, fmt.Errorf("failed to load database image: %w", err)
		}
	}

	return e, nil
}

// Close releases the in-memory image. It does not persist; callers that need
// durability rely on the persist-after-write policy.
func (e *Engine) Close() error {
	return e.db.Close()
}

// Path returns the location of the persistent database file.
func (e *Engine) Path() string {
	return e.path
}

// FullTextAvailable reports whether the FTS5 virtual table was created.
// When false the search index is a plain table and only substring matching
// works.
func (e *Engine) FullTextAvailable() bool {
	return e.fts
}

// Exec runs a statement without triggering a persist. Schema setup uses this
// and persists once at the end; everything else should go through Run.
func (e *Engine) Exec(ctx context.Context, stmt string, args ...any) error {
	res, err := e.db.ExecContext(ctx, stmt, args...)
	if err != nil {
		return err
	}
	if id, err := res.LastInsertId(); err == nil {
		e.lastID = id
	}
	return nil
}

// Run executes a mutating statement, records the last insert id, and
// persists the full image. A persist failure is logged but does not roll
// back the in-memory mutation.
func (e *Engine) Run(ctx context.Context, stmt string, args ...any) (Result, error) {
	if err := e.Exec(ctx, stmt, args...); err != nil {
		return Result{}, err
	}
	if err := e.Persist(); err != nil {
		log.Printf("warning: failed to persist database: %v", err)
	}
	return Result{ID: e.lastID, Changes: 1}, nil
}

// QueryAll runs a read statement and collects every row into an ordered
// slice of column-name keyed maps. BLOB/TEXT values arrive as strings.
func (e *Engine) QueryAll(ctx context.Context, stmt string, args ...any) ([]Row, error) {
	rows, err := e.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []Row
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(Row, len(cols))
		for i, c := range cols {
			v := vals[i]
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			row[c] = v
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// QueryOne returns the first row of QueryAll, or nil if there is no match.
func (e *Engine) QueryOne(ctx context.Context, stmt string, args ...any) (Row, error) {
	rows, err := e.QueryAll(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// LastInsertID returns the row id generated by the most recent insert.
func (e *Engine) LastInsertID() int64 {
	return e.lastID
}

// Persist serializes the current image next to the target file and swaps it
// into place atomically. A crash between an in-memory commit and Persist
// loses that one mutation but never corrupts the previously persisted file.
func (e *Engine) Persist() error {
	tmp := e.path + ".tmp"
	if err := os.Remove(tmp); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear snapshot temp file: %w", err)
	}

	// VACUUM INTO writes a compact copy of the whole image.
	if _, err := e.db.Exec("VACUUM INTO ?", tmp); err != nil {
		return fmt.Errorf("failed to snapshot database: %w", err)
	}

	if err := atomic.ReplaceFile(tmp, e.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace database file: %w", err)
	}
	return nil
}

// restore copies the on-disk image into the in-memory database using the
// SQLite online backup API.
func (e *Engine) restore(path string) error {
	src, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to open database file: %w", err)
	}
	defer src.Close()

	ctx := context.Background()

	destConn, err := e.db.Conn(ctx)
	if err != nil {
		return err
	}
	defer destConn.Close()

	srcConn, err := src.Conn(ctx)
	if err != nil {
		return err
	}
	defer srcConn.Close()

	return destConn.Raw(func(dc any) error {
		return srcConn.Raw(func(sc any) error {
			dst, ok := dc.(*sqlite3.SQLiteConn)
			if !ok {
				return fmt.Errorf("unexpected destination driver connection %T", dc)
			}
			from, ok := sc.(*sqlite3.SQLiteConn)
			if !ok {
				return fmt.Errorf("unexpected source driver connection %T", sc)
			}

			bk, err := dst.Backup("main", from, "main")
			if err != nil {
				return fmt.Errorf("failed to start backup: %w", err)
			}
			if _, err := bk.Step(-1); err != nil {
				bk.Finish()
				return fmt.Errorf("failed to copy database pages: %w", err)
			}
			return bk.Finish()
		})
	})
}
