package storage

import (
	"context"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2"
)

const (
	CompressionGzip = ".gz"
	CompressionS2   = ".s2"
)

type decompressedFile struct {
	io.Reader
	closers []io.Closer
}

func (f *decompressedFile) Close() error {
	var err error

	for _, closer := range f.closers {
		if closeErr := closer.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}

	return err
}

// Decompress wraps file in a decompressing reader chosen by the extension of
// path. Closing the result also closes file. Paths without a known extension
// are returned unchanged.
func Decompress(path string, file io.ReadCloser) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(path, CompressionGzip):
		reader, err := gzip.NewReader(file)

		if err != nil {
			file.Close()
			return nil, err
		}

		return &decompressedFile{Reader: reader, closers: []io.Closer{reader, file}}, nil
	case strings.HasSuffix(path, CompressionS2):
		return &decompressedFile{Reader: s2.NewReader(file), closers: []io.Closer{file}}, nil
	default:
		return file, nil
	}
}

// Open opens path with driver and decompresses it by extension.
func Open(ctx context.Context, driver Driver, path string) (io.ReadCloser, error) {
	file, err := driver.Open(ctx, path)

	if err != nil {
		return nil, err
	}

	return Decompress(path, file)
}
