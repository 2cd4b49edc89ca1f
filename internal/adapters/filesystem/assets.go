// Package filesystem implements the on-disk stores: the asset tree, backup
// folders, and export file writing.
package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// AssetStore keeps asset copies under root, one subdirectory per idea id.
type AssetStore struct {
	root string
}

// NewAssetStore creates a store rooted at dir.
func NewAssetStore(dir string) *AssetStore {
	return &AssetStore{root: dir}
}

// CopyIn copies src into the idea's subdirectory. A file with the same name
// is overwritten silently.
func (s *AssetStore) CopyIn(src string, ideaID int64) (string, error) {
	dir := filepath.Join(s.root, strconv.FormatInt(ideaID, 10))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create asset directory: %w", err)
	}

	dest := filepath.Join(dir, filepath.Base(src))
	if err := copyFile(src, dest); err != nil {
		return "", fmt.Errorf("failed to copy asset: %w", err)
	}
	return dest, nil
}

// Remove deletes an asset file. Removing a file that is already gone is not
// an error.
func (s *AssetStore) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove asset file: %w", err)
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// copyTree mirrors a directory recursively, overwriting existing files.
func copyTree(from, to string) error {
	if _, err := os.Stat(from); os.IsNotExist(err) {
		return nil
	}
	if err := os.MkdirAll(to, 0755); err != nil {
		return err
	}
	entries, err := os.ReadDir(from)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(from, entry.Name())
		destPath := filepath.Join(to, entry.Name())
		if entry.IsDir() {
			if err := copyTree(srcPath, destPath); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(srcPath, destPath); err != nil {
			return err
		}
	}
	return nil
}
