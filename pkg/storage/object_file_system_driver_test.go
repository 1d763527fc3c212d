package storage_test

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/litebase/csvpager/pkg/config"
	"github.com/litebase/csvpager/pkg/storage"
)

const noSuchKeyResponse = `<?xml version="1.0" encoding="UTF-8"?>
<Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`

// newObjectStorageServer serves objects by "/bucket/key" path, the way a path
// style S3 endpoint does.
func newObjectStorageServer(t *testing.T, objects map[string]string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		body, ok := objects[r.URL.Path]

		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(noSuchKeyResponse))
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(body))
	}))

	t.Cleanup(server.Close)

	return server
}

func newObjectDriver(t *testing.T, endpoint string) *storage.ObjectFileSystemDriver {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "credentials"))
	t.Setenv("AWS_EC2_METADATA_DISABLED", "true")

	driver, err := storage.NewObjectFileSystemDriver(context.Background(), &config.Config{
		DataPath:               "/fixtures/",
		StorageAccessKeyId:     "csvpager_test",
		StorageBucket:          "datasets",
		StorageEndpoint:        endpoint,
		StorageRegion:          "us-east-1",
		StorageSecretAccessKey: "csvpager_test",
	})

	if err != nil {
		t.Fatalf("NewObjectFileSystemDriver() returned an error: %v", err)
	}

	return driver
}

func TestObjectFileSystemDriverKey(t *testing.T) {
	driver := newObjectDriver(t, "http://127.0.0.1:1")

	if got := driver.Key("names.csv"); got != "fixtures/names.csv" {
		t.Errorf("Key() = %q, want %q", got, "fixtures/names.csv")
	}

	if got := driver.Key("/names.csv"); got != "fixtures/names.csv" {
		t.Errorf("Key() = %q, want %q", got, "fixtures/names.csv")
	}
}

func TestObjectFileSystemDriverOpen(t *testing.T) {
	server := newObjectStorageServer(t, map[string]string{
		"/datasets/fixtures/names.csv": "Year of Birth,Gender\n2016,FEMALE\n",
	})

	driver := newObjectDriver(t, server.URL)

	file, err := driver.Open(context.Background(), "names.csv")

	if err != nil {
		t.Fatalf("Open() returned an error: %v", err)
	}

	if got := readAll(t, file); got != "Year of Birth,Gender\n2016,FEMALE\n" {
		t.Errorf("unexpected contents %q", got)
	}
}

func TestObjectFileSystemDriverOpenMissing(t *testing.T) {
	server := newObjectStorageServer(t, map[string]string{})
	driver := newObjectDriver(t, server.URL)

	_, err := driver.Open(context.Background(), "missing.csv")

	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}
