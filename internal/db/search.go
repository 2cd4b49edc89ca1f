package db

import (
	"context"
	"fmt"
	"log"
)

// createSearchIndexFTS is the preferred form: an FTS5 virtual table with the
// routing columns unindexed and title/content indexed for matching.
const createSearchIndexFTS = `CREATE VIRTUAL TABLE IF NOT EXISTS search_index USING fts5(
	item_type UNINDEXED,
	item_id UNINDEXED,
	project_id UNINDEXED,
	idea_id UNINDEXED,
	title,
	content
)`

// createSearchIndexPlain is the degraded form used when the driver was built
// without FTS5. Same shape, so the triggers and the substring fallback keep
// working against synchronized rows.
const createSearchIndexPlain = `CREATE TABLE IF NOT EXISTS search_index (
	item_type TEXT,
	item_id INTEGER,
	project_id INTEGER,
	idea_id INTEGER,
	title TEXT,
	content TEXT
)`

// searchTriggers keep search_index an exact mirror of projects, ideas and
// scripts. Updates are modeled as delete+reinsert so continuous
// synchronization and a full rebuild produce identical rows.
var searchTriggers = []string{
	`CREATE TRIGGER IF NOT EXISTS projects_ai AFTER INSERT ON projects BEGIN
		INSERT INTO search_index(item_type, item_id, project_id, title, content)
		VALUES ('project', new.id, new.id, new.name, new.platform);
	END`,
	`CREATE TRIGGER IF NOT EXISTS projects_au AFTER UPDATE ON projects BEGIN
		DELETE FROM search_index WHERE item_type = 'project' AND item_id = old.id;
		INSERT INTO search_index(item_type, item_id, project_id, title, content)
		VALUES ('project', new.id, new.id, new.name, new.platform);
	END`,
	`CREATE TRIGGER IF NOT EXISTS projects_ad AFTER DELETE ON projects BEGIN
		DELETE FROM search_index WHERE item_type = 'project' AND item_id = old.id;
	END`,
	`CREATE TRIGGER IF NOT EXISTS ideas_ai AFTER INSERT ON ideas BEGIN
		INSERT INTO search_index(item_type, item_id, project_id, idea_id, title, content)
		VALUES ('idea', new.id, new.project_id, new.id, new.title, new.description);
	END`,
	`CREATE TRIGGER IF NOT EXISTS ideas_au AFTER UPDATE ON ideas BEGIN
		DELETE FROM search_index WHERE item_type = 'idea' AND item_id = old.id;
		INSERT INTO search_index(item_type, item_id, project_id, idea_id, title, content)
		VALUES ('idea', new.id, new.project_id, new.id, new.title, new.description);
	END`,
	`CREATE TRIGGER IF NOT EXISTS ideas_ad AFTER DELETE ON ideas BEGIN
		DELETE FROM search_index WHERE item_type = 'idea' AND item_id = old.id;
	END`,
	`CREATE TRIGGER IF NOT EXISTS scripts_ai AFTER INSERT ON scripts BEGIN
		INSERT INTO search_index(item_type, item_id, project_id, idea_id, title, content)
		SELECT 'script', new.id, i.project_id, new.idea_id, i.title, (new.content || ' ' || COALESCE(new.notes, ''))
		FROM ideas i WHERE i.id = new.idea_id;
	END`,
	`CREATE TRIGGER IF NOT EXISTS scripts_au AFTER UPDATE ON scripts BEGIN
		DELETE FROM search_index WHERE item_type = 'script' AND item_id = old.id;
		INSERT INTO search_index(item_type, item_id, project_id, idea_id, title, content)
		SELECT 'script', new.id, i.project_id, new.idea_id, i.title, (new.content || ' ' || COALESCE(new.notes, ''))
		FROM ideas i WHERE i.id = new.idea_id;
	END`,
	`CREATE TRIGGER IF NOT EXISTS scripts_ad AFTER DELETE ON scripts BEGIN
		DELETE FROM search_index WHERE item_type = 'script' AND item_id = old.id;
	END`,
}

// rebuildInserts repopulate the index in three passes using the same field
// mapping as the triggers.
var rebuildInserts = []string{
	`INSERT INTO search_index(item_type, item_id, project_id, title, content)
	 SELECT 'project', id, id, name, platform FROM projects`,
	`INSERT INTO search_index(item_type, item_id, project_id, idea_id, title, content)
	 SELECT 'idea', id, project_id, id, title, description FROM ideas`,
	`INSERT INTO search_index(item_type, item_id, project_id, idea_id, title, content)
	 SELECT 'script', s.id, i.project_id, s.idea_id, i.title, (COALESCE(s.content, '') || ' ' || COALESCE(s.notes, ''))
	 FROM scripts s JOIN ideas i ON s.idea_id = i.id`,
}

// EnsureSearchIndex creates the search index table and its synchronization
// triggers, then performs an initial build if the index is empty (first run
// against pre-existing data). FTS5 being unavailable is not fatal: the plain
// table keeps the substring fallback operational.
func EnsureSearchIndex(e *Engine) error {
	ctx := context.Background()

	if err := e.Exec(ctx, createSearchIndexFTS); err != nil {
		log.Printf("full-text engine unavailable, using plain search index: %v", err)
		if err := e.Exec(ctx, createSearchIndexPlain); err != nil {
			return fmt.Errorf("failed to create search index table: %w", err)
		}
		e.fts = false
	} else {
		e.fts = true
	}

	for _, trigger := range searchTriggers {
		if err := e.Exec(ctx, trigger); err != nil {
			return fmt.Errorf("failed to create search trigger: %w", err)
		}
	}

	row, err := e.QueryOne(ctx, "SELECT count(*) AS count FROM search_index")
	if err != nil {
		return fmt.Errorf("failed to count search index: %w", err)
	}
	if count, _ := row["count"].(int64); count == 0 {
		return RebuildSearchIndex(e)
	}
	return nil
}

// RebuildSearchIndex deletes every index row and repopulates from the source
// tables. Safe to call at any time; the result is identical to what
// continuous trigger synchronization would have produced.
func RebuildSearchIndex(e *Engine) error {
	ctx := context.Background()

	if err := e.Exec(ctx, "DELETE FROM search_index"); err != nil {
		return fmt.Errorf("failed to clear search index: %w", err)
	}
	for _, stmt := range rebuildInserts {
		if err := e.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to rebuild search index: %w", err)
		}
	}

	if err := e.Persist(); err != nil {
		log.Printf("warning: failed to persist database after reindex: %v", err)
	}
	return nil
}
