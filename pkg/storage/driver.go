package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/litebase/csvpager/pkg/config"
)

// The Driver interface defines the methods that must be implemented by a
// backing store for datasets.
type Driver interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// NewDriver returns the driver selected by the storage configuration.
func NewDriver(ctx context.Context, c *config.Config) (Driver, error) {
	switch c.StorageDriver {
	case config.StorageDriverLocal, "":
		return NewLocalFileSystemDriver(c.DataPath), nil
	case config.StorageDriverObject:
		driver, err := NewObjectFileSystemDriver(ctx, c)

		if err != nil {
			return nil, err
		}

		return driver, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}
}
