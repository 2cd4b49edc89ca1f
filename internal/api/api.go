// Package api wraps the services in a uniform response envelope for
// embedding hosts. Every operation resolves to a Response; user cancellation
// of a dialog is a distinct signal, never an error.
package api

import (
	"context"

	"github.com/example/creatorvault/internal/ports/primary"
)

// Response is the envelope every operation resolves to.
type Response struct {
	Success  bool   `json:"success"`
	Data     any    `json:"data,omitempty"`
	Error    string `json:"error,omitempty"`
	Canceled bool   `json:"canceled,omitempty"`
	ID       int64  `json:"id,omitempty"`
	Path     string `json:"path,omitempty"`
}

// API exposes every service operation in envelope form.
type API struct {
	Projects primary.ProjectService
	Ideas    primary.IdeaService
	Scripts  primary.ScriptService
	Assets   primary.AssetService
	Searcher primary.SearchService
	Settings primary.SettingsService
	Backups  primary.BackupService
	Exports  primary.ExportService
}

func ok(data any) Response {
	return Response{Success: true, Data: data}
}

func fail(err error) Response {
	return Response{Success: false, Error: err.Error()}
}

func canceled() Response {
	return Response{Success: false, Canceled: true}
}

// CreateProject handles project creation.
func (a *API) CreateProject(ctx context.Context, req primary.CreateProjectRequest) Response {
	id, err := a.Projects.CreateProject(ctx, req)
	if err != nil {
		return fail(err)
	}
	return Response{Success: true, ID: id}
}

// ListProjects handles the project list view.
func (a *API) ListProjects(ctx context.Context) Response {
	list, err := a.Projects.ListProjects(ctx)
	if err != nil {
		return fail(err)
	}
	return ok(list)
}

// UpdateProject handles a partial project update.
func (a *API) UpdateProject(ctx context.Context, req primary.UpdateProjectRequest) Response {
	if err := a.Projects.UpdateProject(ctx, req); err != nil {
		return fail(err)
	}
	return ok(nil)
}

// DeleteProject handles project deletion.
func (a *API) DeleteProject(ctx context.Context, id int64) Response {
	if err := a.Projects.DeleteProject(ctx, id); err != nil {
		return fail(err)
	}
	return ok(nil)
}

// CreateIdea handles idea creation.
func (a *API) CreateIdea(ctx context.Context, req primary.CreateIdeaRequest) Response {
	id, err := a.Ideas.CreateIdea(ctx, req)
	if err != nil {
		return fail(err)
	}
	return Response{Success: true, ID: id}
}

// ListIdeas handles the idea list view.
func (a *API) ListIdeas(ctx context.Context, projectID int64) Response {
	list, err := a.Ideas.ListIdeas(ctx, projectID)
	if err != nil {
		return fail(err)
	}
	return ok(list)
}

// GetIdea handles single-idea retrieval.
func (a *API) GetIdea(ctx context.Context, id int64) Response {
	idea, err := a.Ideas.GetIdea(ctx, id)
	if err != nil {
		return fail(err)
	}
	return ok(idea)
}

// UpdateIdea handles a partial idea update.
func (a *API) UpdateIdea(ctx context.Context, req primary.UpdateIdeaRequest) Response {
	if err := a.Ideas.UpdateIdea(ctx, req); err != nil {
		return fail(err)
	}
	return ok(nil)
}

// DeleteIdea handles idea deletion.
func (a *API) DeleteIdea(ctx context.Context, id int64) Response {
	if err := a.Ideas.DeleteIdea(ctx, id); err != nil {
		return fail(err)
	}
	return ok(nil)
}

// ListScheduled handles the schedule view.
func (a *API) ListScheduled(ctx context.Context) Response {
	items, err := a.Ideas.ListScheduled(ctx)
	if err != nil {
		return fail(err)
	}
	return ok(items)
}

// PickOutputPath handles recording an idea's produced artifact.
func (a *API) PickOutputPath(ctx context.Context, ideaID int64) Response {
	res, err := a.Ideas.PickOutputPath(ctx, ideaID)
	if err != nil {
		return fail(err)
	}
	if res.Canceled {
		return canceled()
	}
	return Response{Success: true, Path: res.Path}
}

// GetScript handles script retrieval.
func (a *API) GetScript(ctx context.Context, ideaID int64) Response {
	s, err := a.Scripts.GetScript(ctx, ideaID)
	if err != nil {
		return fail(err)
	}
	return ok(s)
}

// SaveScript handles the script upsert.
func (a *API) SaveScript(ctx context.Context, req primary.SaveScriptRequest) Response {
	s, err := a.Scripts.SaveScript(ctx, req)
	if err != nil {
		return fail(err)
	}
	return ok(s)
}

// AddFileAsset handles the pick-copy-catalog flow.
func (a *API) AddFileAsset(ctx context.Context, ideaID int64) Response {
	res, err := a.Assets.AddFileAsset(ctx, ideaID)
	if err != nil {
		return fail(err)
	}
	if res.Canceled {
		return canceled()
	}
	return Response{Success: true, ID: res.ID, Path: res.Path, Data: res.Type}
}

// AddLinkAsset handles link cataloging.
func (a *API) AddLinkAsset(ctx context.Context, req primary.AddLinkAssetRequest) Response {
	id, err := a.Assets.AddLinkAsset(ctx, req)
	if err != nil {
		return fail(err)
	}
	return Response{Success: true, ID: id}
}

// ListAssets handles the asset list view.
func (a *API) ListAssets(ctx context.Context, ideaID int64) Response {
	list, err := a.Assets.ListAssets(ctx, ideaID)
	if err != nil {
		return fail(err)
	}
	return ok(list)
}

// DeleteAsset handles asset deletion.
func (a *API) DeleteAsset(ctx context.Context, req primary.DeleteAssetRequest) Response {
	if err := a.Assets.DeleteAsset(ctx, req); err != nil {
		return fail(err)
	}
	return ok(nil)
}

// Search handles free-text queries.
func (a *API) Search(ctx context.Context, query string) Response {
	results, err := a.Searcher.Search(ctx, query)
	if err != nil {
		return fail(err)
	}
	return ok(results)
}

// RebuildSearchIndex handles the manual reindex.
func (a *API) RebuildSearchIndex(ctx context.Context) Response {
	if err := a.Searcher.RebuildIndex(ctx); err != nil {
		return fail(err)
	}
	return ok(nil)
}

// GetSettings handles settings retrieval.
func (a *API) GetSettings(ctx context.Context) Response {
	settings, err := a.Settings.GetSettings(ctx)
	if err != nil {
		return fail(err)
	}
	return ok(settings)
}

// UpdateSetting handles a settings upsert.
func (a *API) UpdateSetting(ctx context.Context, key, value string) Response {
	if err := a.Settings.UpdateSetting(ctx, key, value); err != nil {
		return fail(err)
	}
	return ok(nil)
}

// CreateBackup handles backup creation.
func (a *API) CreateBackup(ctx context.Context) Response {
	res, err := a.Backups.CreateBackup(ctx)
	if err != nil {
		return fail(err)
	}
	if res.Canceled {
		return canceled()
	}
	return Response{Success: true, Path: res.Path}
}

// RestoreBackup handles the restore flow.
func (a *API) RestoreBackup(ctx context.Context) Response {
	res, err := a.Backups.RestoreBackup(ctx)
	if err != nil {
		return fail(err)
	}
	if res.Canceled {
		return canceled()
	}
	return Response{Success: true, Path: res.Path}
}

// ExportScript handles script export.
func (a *API) ExportScript(ctx context.Context, req primary.ExportScriptRequest) Response {
	res, err := a.Exports.ExportScript(ctx, req)
	if err != nil {
		return fail(err)
	}
	if res.Canceled {
		return canceled()
	}
	return Response{Success: true, Path: res.Path}
}

// ExportMetadata handles metadata export.
func (a *API) ExportMetadata(ctx context.Context, req primary.ExportMetadataRequest) Response {
	res, err := a.Exports.ExportMetadata(ctx, req)
	if err != nil {
		return fail(err)
	}
	if res.Canceled {
		return canceled()
	}
	return Response{Success: true, Path: res.Path}
}
