package app_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/creatorvault/internal/models"
)

var errRemove = errors.New("permission denied")

// mockDialogs scripts dialog answers for a single test.
type mockDialogs struct {
	pickPath     string
	pickCanceled bool
	savePath     string
	saveCanceled bool
	confirmOK    bool

	saveDefaultName string
}

func (m *mockDialogs) PickFile(title string) (string, bool, error) {
	return m.pickPath, m.pickCanceled, nil
}

func (m *mockDialogs) PickDirectory(title string) (string, bool, error) {
	return m.pickPath, m.pickCanceled, nil
}

func (m *mockDialogs) SaveFile(title, defaultName string) (string, bool, error) {
	m.saveDefaultName = defaultName
	return m.savePath, m.saveCanceled, nil
}

func (m *mockDialogs) Confirm(message, detail string) (bool, error) {
	return m.confirmOK, nil
}

// mockAssetRepo records calls against an in-memory slice.
type mockAssetRepo struct {
	assets  []*models.Asset
	nextID  int64
	deleted []int64
}

func (m *mockAssetRepo) Add(ctx context.Context, ideaID int64, assetType, label, pathOrURL string) (int64, error) {
	m.nextID++
	m.assets = append(m.assets, &models.Asset{
		ID: m.nextID, IdeaID: ideaID, Type: assetType, Label: label, PathOrURL: pathOrURL,
	})
	return m.nextID, nil
}

func (m *mockAssetRepo) ListByIdea(ctx context.Context, ideaID int64) ([]*models.Asset, error) {
	return m.assets, nil
}

func (m *mockAssetRepo) Delete(ctx context.Context, id int64) error {
	m.deleted = append(m.deleted, id)
	return nil
}

// mockAssetStore records copies and removals.
type mockAssetStore struct {
	copied    []string
	removed   []string
	removeErr error
}

func (m *mockAssetStore) CopyIn(src string, ideaID int64) (string, error) {
	dest := fmt.Sprintf("/data/assets/%d/%s", ideaID, src)
	m.copied = append(m.copied, dest)
	return dest, nil
}

func (m *mockAssetStore) Remove(path string) error {
	m.removed = append(m.removed, path)
	return m.removeErr
}

// mockBackupStore records store calls.
type mockBackupStore struct {
	created     string
	validateErr error
	restored    string
}

func (m *mockBackupStore) Create(destDir string) (string, error) {
	m.created = destDir + "/CreatorVault_Backup_test"
	return m.created, nil
}

func (m *mockBackupStore) Validate(backupPath string) error {
	return m.validateErr
}

func (m *mockBackupStore) Restore(backupPath string) error {
	m.restored = backupPath
	return nil
}

// mockRestarter records whether a restart was requested.
type mockRestarter struct {
	restarted bool
}

func (m *mockRestarter) Restart() error {
	m.restarted = true
	return nil
}

// mockFileWriter captures the last write.
type mockFileWriter struct {
	path string
	data []byte
}

func (m *mockFileWriter) WriteFile(path string, data []byte) error {
	m.path = path
	m.data = data
	return nil
}

// mockScriptRepo holds at most one script per idea.
type mockScriptRepo struct {
	scripts map[int64]*models.Script
}

func newMockScriptRepo() *mockScriptRepo {
	return &mockScriptRepo{scripts: map[int64]*models.Script{}}
}

func (m *mockScriptRepo) GetByIdea(ctx context.Context, ideaID int64) (*models.Script, error) {
	return m.scripts[ideaID], nil
}

func (m *mockScriptRepo) Save(ctx context.Context, ideaID int64, content, notes string) error {
	words := int64(0)
	if content != "" {
		words = 1
		for _, c := range content {
			if c == ' ' {
				words++
			}
		}
	}
	m.scripts[ideaID] = &models.Script{
		ID: 1, IdeaID: ideaID, Content: content, Notes: notes, WordCount: words,
	}
	return nil
}
