package dataset_test

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"testing/quick"

	"github.com/litebase/csvpager/internal/test"
	"github.com/litebase/csvpager/pkg/dataset"
	"github.com/litebase/csvpager/pkg/pagination"
	"github.com/litebase/csvpager/pkg/storage"
)

// countingDriver records how often the backing file is opened.
type countingDriver struct {
	storage.Driver
	opens atomic.Int64
}

func (d *countingDriver) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	d.opens.Add(1)

	return d.Driver.Open(ctx, path)
}

func newNamesDataset(t *testing.T, n int) (*dataset.Dataset, *countingDriver) {
	t.Helper()

	dir := test.WriteNamesCSV(t, "Popular_Baby_Names.csv", n)
	driver := &countingDriver{Driver: storage.NewLocalFileSystemDriver(dir)}

	return dataset.New(driver, "Popular_Baby_Names.csv"), driver
}

func TestGetPage(t *testing.T) {
	ds, _ := newNamesDataset(t, 25)
	rows := test.NameRows(25)
	ctx := context.Background()

	tests := []struct {
		name     string
		page     int
		pageSize int
		want     [][]string
	}{
		{name: "first page", page: 1, pageSize: 10, want: rows[0:10]},
		{name: "middle page", page: 2, pageSize: 10, want: rows[10:20]},
		{name: "truncated last page", page: 3, pageSize: 10, want: rows[20:25]},
		{name: "past the end", page: 4, pageSize: 10, want: [][]string{}},
		{name: "far past the end", page: 3000, pageSize: 100, want: [][]string{}},
		{name: "exact fit", page: 1, pageSize: 25, want: rows},
		{name: "oversized page", page: 1, pageSize: 100, want: rows},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ds.GetPage(ctx, tt.page, tt.pageSize)

			if err != nil {
				t.Fatalf("GetPage(%d, %d) returned an error: %v", tt.page, tt.pageSize, err)
			}

			if got == nil {
				t.Fatalf("GetPage(%d, %d) returned nil, want a non-nil slice", tt.page, tt.pageSize)
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GetPage(%d, %d) = %v, want %v", tt.page, tt.pageSize, got, tt.want)
			}
		})
	}
}

func TestGetPageDiscardsHeader(t *testing.T) {
	ds, _ := newNamesDataset(t, 3)

	rows, err := ds.GetPage(context.Background(), 1, 10)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	if reflect.DeepEqual(rows[0], test.NamesHeader) {
		t.Error("expected the header row to be discarded")
	}

	header, err := ds.Header(context.Background())

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !reflect.DeepEqual(header, test.NamesHeader) {
		t.Errorf("Header() = %v, want %v", header, test.NamesHeader)
	}
}

func TestGetPageInvalidArgument(t *testing.T) {
	ds, driver := newNamesDataset(t, 25)

	for _, args := range [][2]int{{0, 10}, {1, -5}, {-1, 1}, {1, 0}} {
		_, err := ds.GetPage(context.Background(), args[0], args[1])

		if !errors.Is(err, pagination.ErrInvalidArgument) {
			t.Errorf("GetPage(%d, %d) error = %v, want ErrInvalidArgument", args[0], args[1], err)
		}
	}

	if driver.opens.Load() != 0 {
		t.Errorf("expected invalid requests not to load the dataset, got %d opens", driver.opens.Load())
	}
}

func TestLoadCachesRows(t *testing.T) {
	dir := test.WriteNamesCSV(t, "Popular_Baby_Names.csv", 25)
	driver := &countingDriver{Driver: storage.NewLocalFileSystemDriver(dir)}
	ds := dataset.New(driver, "Popular_Baby_Names.csv")
	ctx := context.Background()

	if ds.Loaded() {
		t.Fatal("expected a new dataset to be unloaded")
	}

	first, err := ds.GetPage(ctx, 2, 5)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !ds.Loaded() {
		t.Fatal("expected the dataset to be loaded after GetPage")
	}

	// The cache must be used even when the file is gone.
	if err := os.Remove(filepath.Join(dir, "Popular_Baby_Names.csv")); err != nil {
		t.Fatalf("failed to remove fixture: %v", err)
	}

	for i := 0; i < 3; i++ {
		again, err := ds.GetPage(ctx, 2, 5)

		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !reflect.DeepEqual(first, again) {
			t.Fatalf("expected identical pages, got %v and %v", first, again)
		}
	}

	if opens := driver.opens.Load(); opens != 1 {
		t.Errorf("expected the file to be opened once, got %d", opens)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	ds := dataset.New(storage.NewLocalFileSystemDriver(dir), "Popular_Baby_Names.csv")

	_, err := ds.GetPage(context.Background(), 1, 10)

	if !errors.Is(err, dataset.ErrFileAccess) {
		t.Fatalf("expected ErrFileAccess, got %v", err)
	}

	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected the cause to be fs.ErrNotExist, got %v", err)
	}

	var accessErr *dataset.FileAccessError

	if !errors.As(err, &accessErr) || accessErr.Path != "Popular_Baby_Names.csv" {
		t.Errorf("expected a *FileAccessError for the dataset path, got %v", err)
	}

	if ds.Loaded() {
		t.Fatal("expected a failed load to leave the dataset unloaded")
	}

	// Once the file exists the next call loads it.
	if err := os.WriteFile(filepath.Join(dir, "Popular_Baby_Names.csv"), test.NamesCSV(t, 4), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	rows, err := ds.GetPage(context.Background(), 1, 10)

	if err != nil {
		t.Fatalf("expected the retry to succeed, got %v", err)
	}

	if len(rows) != 4 {
		t.Errorf("expected 4 rows, got %d", len(rows))
	}
}

func TestLoadMalformedCSV(t *testing.T) {
	dir := test.WriteFile(t, "broken.csv", []byte("a,b\n\"unterminated,1\n"))
	ds := dataset.New(storage.NewLocalFileSystemDriver(dir), "broken.csv")

	if _, err := ds.Load(context.Background()); !errors.Is(err, dataset.ErrFileAccess) {
		t.Fatalf("expected ErrFileAccess, got %v", err)
	}
}

func TestLoadVariableFieldCounts(t *testing.T) {
	dir := test.WriteFile(t, "ragged.csv", []byte("a,b,c\n1,2\n3,4,5,6\n"))
	ds := dataset.New(storage.NewLocalFileSystemDriver(dir), "ragged.csv")

	rows, err := ds.Load(context.Background())

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := [][]string{{"1", "2"}, {"3", "4", "5", "6"}}

	if !reflect.DeepEqual(rows, want) {
		t.Errorf("Load() = %v, want %v", rows, want)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	dir := test.WriteFile(t, "empty.csv", []byte{})
	ds := dataset.New(storage.NewLocalFileSystemDriver(dir), "empty.csv")

	rows, err := ds.GetPage(context.Background(), 1, 10)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(rows) != 0 {
		t.Errorf("expected no rows, got %v", rows)
	}
}

func TestLoadConcurrent(t *testing.T) {
	ds, driver := newNamesDataset(t, 100)

	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)

		go func(page int) {
			defer wg.Done()

			rows, err := ds.GetPage(context.Background(), page%5+1, 20)

			if err != nil {
				t.Errorf("expected no error, got %v", err)
				return
			}

			if len(rows) != 20 {
				t.Errorf("expected 20 rows, got %d", len(rows))
			}
		}(i)
	}

	wg.Wait()

	if opens := driver.opens.Load(); opens != 1 {
		t.Errorf("expected the file to be opened once, got %d", opens)
	}
}

func TestGetPageAppendDoesNotCorruptCache(t *testing.T) {
	ds, _ := newNamesDataset(t, 25)
	ctx := context.Background()

	page, err := ds.GetPage(ctx, 1, 10)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	_ = append(page, []string{"intruder"})

	next, err := ds.GetPage(ctx, 2, 10)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if strings.Join(next[0], ",") != strings.Join(test.NameRows(25)[10], ",") {
		t.Errorf("expected row 10 to be intact, got %v", next[0])
	}
}

// TestPropertyPagesTileDataset concatenates consecutive pages and checks they
// reproduce a prefix of the dataset with no gaps or overlaps.
func TestPropertyPagesTileDataset(t *testing.T) {
	ds, _ := newNamesDataset(t, 97)
	all := test.NameRows(97)
	ctx := context.Background()

	f := func(size, count uint8) bool {
		pageSize := int(size)%30 + 1
		pages := int(count)%10 + 1

		var joined [][]string

		for page := 1; page <= pages; page++ {
			rows, err := ds.GetPage(ctx, page, pageSize)

			if err != nil || len(rows) > pageSize {
				return false
			}

			start, end := pagination.IndexRange(page, pageSize)

			if end <= len(all) && len(rows) != pageSize {
				return false
			}

			if start >= len(all) && len(rows) != 0 {
				return false
			}

			joined = append(joined, rows...)
		}

		want := min(pages*pageSize, len(all))

		return reflect.DeepEqual(joined, all[:want])
	}

	if err := quick.Check(f, &quick.Config{MaxCount: 200}); err != nil {
		t.Error(err)
	}
}

func TestGetHyper(t *testing.T) {
	ds, _ := newNamesDataset(t, 25)
	ctx := context.Background()

	hyper, err := ds.GetHyper(ctx, 1, 10)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if hyper.Page != 1 || hyper.PageSize != 10 || hyper.TotalPages != 3 {
		t.Errorf("unexpected metadata: %+v", hyper)
	}

	if hyper.PrevPage != nil || hyper.NextPage == nil || *hyper.NextPage != 2 {
		t.Errorf("unexpected navigation: prev=%v next=%v", hyper.PrevPage, hyper.NextPage)
	}

	hyper, err = ds.GetHyper(ctx, 3, 10)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if hyper.PageSize != 5 || hyper.NextPage != nil || hyper.PrevPage == nil || *hyper.PrevPage != 2 {
		t.Errorf("unexpected last page metadata: %+v", hyper)
	}

	if _, err := ds.GetHyper(ctx, 0, 10); !errors.Is(err, pagination.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestLen(t *testing.T) {
	ds, _ := newNamesDataset(t, 25)

	n, err := ds.Len(context.Background())

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if n != 25 {
		t.Errorf("Len() = %d, want 25", n)
	}
}
