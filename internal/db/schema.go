package db

import (
	"context"
	"fmt"
	"log"
)

// createTables holds the "create if absent" statements, in dependency order.
// Each carries the full modern column set; older on-disk images pick up
// later columns through the probe-then-patch migrations below.
var createTables = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		platform TEXT DEFAULT 'Custom',
		scheduled_date TEXT,
		scheduled_time TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS ideas (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		project_id INTEGER NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		status TEXT DEFAULT 'idea',
		priority TEXT DEFAULT 'medium',
		workflow_stage TEXT DEFAULT 'idea',
		scheduled_date TEXT,
		scheduled_time TEXT,
		output_path TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (project_id) REFERENCES projects (id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS scripts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		idea_id INTEGER NOT NULL UNIQUE,
		content TEXT,
		notes TEXT,
		word_count INTEGER DEFAULT 0,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (idea_id) REFERENCES ideas (id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS assets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		idea_id INTEGER NOT NULL,
		type TEXT NOT NULL CHECK(type IN ('image', 'file', 'link')),
		label TEXT,
		path_or_url TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (idea_id) REFERENCES ideas (id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
}

// columnMigration is one additive patch: if the probe column is missing from
// the table, every alter statement in the group is applied.
type columnMigration struct {
	table  string
	probe  string
	alters []string
}

// columnMigrations lists every column introduced after a table's original
// revision. There is no version table; current state is inferred by probing
// (a narrow select that fails exactly when the column is absent). Order
// matters: projects before ideas before scripts.
var columnMigrations = []columnMigration{
	{
		table: "projects",
		probe: "platform",
		alters: []string{
			"ALTER TABLE projects ADD COLUMN platform TEXT DEFAULT 'Custom'",
		},
	},
	{
		table: "projects",
		probe: "scheduled_date",
		alters: []string{
			"ALTER TABLE projects ADD COLUMN scheduled_date TEXT",
			"ALTER TABLE projects ADD COLUMN scheduled_time TEXT",
		},
	},
	{
		table: "ideas",
		probe: "workflow_stage",
		alters: []string{
			"ALTER TABLE ideas ADD COLUMN workflow_stage TEXT DEFAULT 'idea'",
			"ALTER TABLE ideas ADD COLUMN scheduled_date TEXT",
			"ALTER TABLE ideas ADD COLUMN scheduled_time TEXT",
			"ALTER TABLE ideas ADD COLUMN updated_at DATETIME DEFAULT CURRENT_TIMESTAMP",
		},
	},
	{
		table: "ideas",
		probe: "output_path",
		alters: []string{
			"ALTER TABLE ideas ADD COLUMN output_path TEXT",
		},
	},
	{
		table: "scripts",
		probe: "notes",
		alters: []string{
			"ALTER TABLE scripts ADD COLUMN notes TEXT",
		},
	},
}

// defaultSettings are seeded once per key; existing values are never
// overwritten.
var defaultSettings = map[string]string{
	"shortcut_search":   "Ctrl+K",
	"shortcut_sidebar":  "Ctrl+B",
	"shortcut_schedule": "Alt+S",
	"theme_mode":        "system",
}

// Migrate brings the database image up to the current schema. It is safe to
// run against a fresh image or one created at any prior revision, and has no
// observable effect when re-run on a current image. It must complete before
// any other component touches the engine.
func Migrate(e *Engine) error {
	ctx := context.Background()

	for _, stmt := range createTables {
		if err := e.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	for _, m := range columnMigrations {
		if hasColumn(ctx, e, m.table, m.probe) {
			continue
		}
		log.Printf("migrating %s table: adding %s", m.table, m.probe)
		for _, alter := range m.alters {
			if err := e.Exec(ctx, alter); err != nil {
				return fmt.Errorf("failed to migrate %s table: %w", m.table, err)
			}
		}
	}

	if err := seedSettings(ctx, e); err != nil {
		return err
	}

	if err := EnsureSearchIndex(e); err != nil {
		return err
	}

	if err := e.Persist(); err != nil {
		log.Printf("warning: failed to persist database after migration: %v", err)
	}
	return nil
}

// hasColumn probes for a column with a narrow read. A failed probe signals
// "column missing", not an error to propagate.
func hasColumn(ctx context.Context, e *Engine, table, column string) bool {
	_, err := e.QueryAll(ctx, fmt.Sprintf("SELECT %s FROM %s LIMIT 1", column, table))
	return err == nil
}

func seedSettings(ctx context.Context, e *Engine) error {
	for key, value := range defaultSettings {
		existing, err := e.QueryOne(ctx, "SELECT key FROM settings WHERE key = ?", key)
		if err != nil {
			return fmt.Errorf("failed to check setting %s: %w", key, err)
		}
		if existing != nil {
			continue
		}
		if err := e.Exec(ctx, "INSERT INTO settings (key, value) VALUES (?, ?)", key, value); err != nil {
			return fmt.Errorf("failed to seed setting %s: %w", key, err)
		}
	}
	return nil
}
