package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

type LocalFileSystemDriver struct {
	basePath string
}

func NewLocalFileSystemDriver(basePath string) *LocalFileSystemDriver {
	return &LocalFileSystemDriver{
		basePath: basePath,
	}
}

func (fs *LocalFileSystemDriver) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Open(fs.Path(path))
}

// Path resolves path against the base path. Absolute paths and drivers without
// a base path use the path as given.
func (fs *LocalFileSystemDriver) Path(path string) string {
	if fs.basePath == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(fs.basePath, path)
}
