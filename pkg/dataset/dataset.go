package dataset

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	csv "github.com/minio/csvparser"

	"github.com/litebase/csvpager/pkg/pagination"
	"github.com/litebase/csvpager/pkg/storage"
)

type Rows = [][]string

// Dataset serves pages of a CSV file. The file is read on first use and the
// rows after the header are cached for the lifetime of the Dataset.
type Dataset struct {
	Id     string
	driver storage.Driver
	header []string
	loaded bool
	mutex  sync.Mutex
	path   string
	rows   Rows
}

func New(driver storage.Driver, path string) *Dataset {
	return &Dataset{
		Id:     uuid.NewString(),
		driver: driver,
		path:   path,
	}
}

func (d *Dataset) Path() string {
	return d.path
}

// Loaded reports whether the rows have been read and cached.
func (d *Dataset) Loaded() bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	return d.loaded
}

// Load returns the cached rows, reading the file on the first call. A failed
// read leaves the dataset unloaded so a later call may try again.
func (d *Dataset) Load(ctx context.Context) (Rows, error) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.loaded {
		return d.rows, nil
	}

	header, rows, err := d.read(ctx)

	if err != nil {
		slog.Error("Error loading dataset", "dataset", d.Id, "path", d.path, "error", err)

		return nil, &FileAccessError{Path: d.path, Err: err}
	}

	d.header = header
	d.rows = rows
	d.loaded = true

	slog.Debug("Dataset loaded", "dataset", d.Id, "path", d.path, "rows", len(rows))

	return d.rows, nil
}

func (d *Dataset) read(ctx context.Context) ([]string, Rows, error) {
	file, err := storage.Open(ctx, d.driver, d.path)

	if err != nil {
		return nil, nil, err
	}

	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	var header []string
	rows := Rows{}

	for {
		record, err := reader.Read()

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, nil, err
		}

		if header == nil {
			header = record
			continue
		}

		rows = append(rows, record)
	}

	return header, rows, nil
}

// Header returns the discarded first row of the file.
func (d *Dataset) Header(ctx context.Context) ([]string, error) {
	if _, err := d.Load(ctx); err != nil {
		return nil, err
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	return d.header, nil
}

// Len returns the number of data rows.
func (d *Dataset) Len(ctx context.Context) (int, error) {
	rows, err := d.Load(ctx)

	if err != nil {
		return 0, err
	}

	return len(rows), nil
}

// GetPage returns the rows of a 1-indexed page. Pages past the end of the data
// are empty; the last page is truncated to the rows available. The returned
// slice shares storage with the cache and must not be modified.
func (d *Dataset) GetPage(ctx context.Context, page, pageSize int) (Rows, error) {
	request, err := pagination.NewPageRequest(page, pageSize)

	if err != nil {
		return nil, err
	}

	return d.page(ctx, request)
}

func (d *Dataset) page(ctx context.Context, request pagination.PageRequest) (Rows, error) {
	start, end := request.Range()

	rows, err := d.Load(ctx)

	if err != nil {
		return nil, err
	}

	if start >= len(rows) {
		return Rows{}, nil
	}

	end = min(end, len(rows))

	return rows[start:end:end], nil
}

// GetHyper returns a page together with its navigation metadata.
func (d *Dataset) GetHyper(ctx context.Context, page, pageSize int) (pagination.Hyper, error) {
	request, err := pagination.NewPageRequest(page, pageSize)

	if err != nil {
		return pagination.Hyper{}, err
	}

	data, err := d.page(ctx, request)

	if err != nil {
		return pagination.Hyper{}, err
	}

	total, err := d.Len(ctx)

	if err != nil {
		return pagination.Hyper{}, err
	}

	return pagination.NewHyper(request, data, total), nil
}
