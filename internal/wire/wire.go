// Package wire provides dependency injection for the CreatorVault
// application. It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"sync"

	"github.com/example/creatorvault/internal/adapters/filesystem"
	"github.com/example/creatorvault/internal/adapters/process"
	"github.com/example/creatorvault/internal/adapters/sqlite"
	"github.com/example/creatorvault/internal/adapters/term"
	"github.com/example/creatorvault/internal/app"
	"github.com/example/creatorvault/internal/config"
	"github.com/example/creatorvault/internal/db"
	"github.com/example/creatorvault/internal/ports/primary"
	"github.com/example/creatorvault/internal/ports/secondary"
	"github.com/example/creatorvault/internal/version"
)

var (
	cfg             *config.Config
	engine          *db.Engine
	projectService  primary.ProjectService
	ideaService     primary.IdeaService
	scriptService   primary.ScriptService
	assetService    primary.AssetService
	searchService   primary.SearchService
	settingsService primary.SettingsService
	backupService   primary.BackupService
	exportService   primary.ExportService
	once            sync.Once
)

// ProjectService returns the singleton ProjectService instance.
func ProjectService() primary.ProjectService {
	once.Do(initServices)
	return projectService
}

// IdeaService returns the singleton IdeaService instance.
func IdeaService() primary.IdeaService {
	once.Do(initServices)
	return ideaService
}

// ScriptService returns the singleton ScriptService instance.
func ScriptService() primary.ScriptService {
	once.Do(initServices)
	return scriptService
}

// AssetService returns the singleton AssetService instance.
func AssetService() primary.AssetService {
	once.Do(initServices)
	return assetService
}

// SearchService returns the singleton SearchService instance.
func SearchService() primary.SearchService {
	once.Do(initServices)
	return searchService
}

// SettingsService returns the singleton SettingsService instance.
func SettingsService() primary.SettingsService {
	once.Do(initServices)
	return settingsService
}

// BackupService returns the singleton BackupService instance.
func BackupService() primary.BackupService {
	once.Do(initServices)
	return backupService
}

// ExportService returns the singleton ExportService instance.
func ExportService() primary.ExportService {
	once.Do(initServices)
	return exportService
}

// AssetServiceWithDialogs builds an AssetService on the shared engine but
// with the given dialogs. This variant serves flag-driven commands that
// answer the file picker from arguments.
func AssetServiceWithDialogs(dialogs secondary.Dialogs) primary.AssetService {
	once.Do(initServices)
	return app.NewAssetService(
		sqlite.NewAssetRepo(engine),
		filesystem.NewAssetStore(cfg.AssetsDir()),
		dialogs,
	)
}

// IdeaServiceWithDialogs builds an IdeaService with the given dialogs.
func IdeaServiceWithDialogs(dialogs secondary.Dialogs) primary.IdeaService {
	once.Do(initServices)
	return app.NewIdeaService(sqlite.NewIdeaRepo(engine), dialogs)
}

// BackupServiceWithDialogs builds a BackupService with the given dialogs.
func BackupServiceWithDialogs(dialogs secondary.Dialogs) primary.BackupService {
	once.Do(initServices)
	return app.NewBackupService(newBackupStore(), dialogs, process.New())
}

// ExportServiceWithDialogs builds an ExportService with the given dialogs.
func ExportServiceWithDialogs(dialogs secondary.Dialogs) primary.ExportService {
	once.Do(initServices)
	return app.NewExportService(filesystem.NewExportWriter(), dialogs)
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	var err error
	cfg, err = config.Resolve()
	if err != nil {
		log.Fatalf("failed to resolve data directory: %v", err)
	}

	engine, err = db.Open(cfg.DatabasePath())
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	if err := db.Migrate(engine); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Repository adapters (secondary ports) on the shared engine
	projectRepo := sqlite.NewProjectRepo(engine)
	ideaRepo := sqlite.NewIdeaRepo(engine)
	scriptRepo := sqlite.NewScriptRepo(engine)
	assetRepo := sqlite.NewAssetRepo(engine)
	settingRepo := sqlite.NewSettingRepo(engine)
	searchRepo := sqlite.NewSearchRepo(engine)

	// Shell collaborators
	dialogs := term.New()
	assetStore := filesystem.NewAssetStore(cfg.AssetsDir())
	exportWriter := filesystem.NewExportWriter()

	// Services (primary ports implementation)
	projectService = app.NewProjectService(projectRepo)
	ideaService = app.NewIdeaService(ideaRepo, dialogs)
	scriptService = app.NewScriptService(scriptRepo)
	assetService = app.NewAssetService(assetRepo, assetStore, dialogs)
	searchService = app.NewSearchService(searchRepo)
	settingsService = app.NewSettingsService(settingRepo)
	backupService = app.NewBackupService(newBackupStore(), dialogs, process.New())
	exportService = app.NewExportService(exportWriter, dialogs)
}

func newBackupStore() *filesystem.BackupStore {
	return filesystem.NewBackupStore(cfg.DatabasePath(), cfg.AssetsDir(), version.String())
}
