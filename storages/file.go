package storages

import (
	"context"
	"os"
	"path/filepath"
)

// File stores one file per key under a root directory. Key path
// separators become directories.
type File struct {
	root string
}

var _ Store = new(File)

func NewFile(root string) *File {
	return &File{
		root: root,
	}
}

func (f *File) path(key string) string {
	return filepath.Join(f.root, filepath.FromSlash(key))
}

func (f *File) Get(ctx context.Context, key string) (string, bool, error) {
	content, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(content), true, nil
}

func (f *File) Set(ctx context.Context, key string, value string) error {
	path := f.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(value), 0644)
}
