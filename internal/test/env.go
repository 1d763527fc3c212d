package test

import (
	"testing"
)

var envVars = []string{
	"CSVPAGER_DATA_FILE",
	"CSVPAGER_DATA_PATH",
	"CSVPAGER_DEBUG",
	"CSVPAGER_PAGE_SIZE",
	"CSVPAGER_STORAGE_ACCESS_KEY_ID",
	"CSVPAGER_STORAGE_BUCKET",
	"CSVPAGER_STORAGE_DRIVER",
	"CSVPAGER_STORAGE_ENDPOINT",
	"CSVPAGER_STORAGE_REGION",
	"CSVPAGER_STORAGE_SECRET_ACCESS_KEY",
}

// ClearEnv blanks every csvpager variable for the duration of the test so the
// config defaults apply regardless of the host environment.
func ClearEnv(t testing.TB) {
	for _, key := range envVars {
		t.Setenv(key, "")
	}
}

// SetupEnv points the config at a fixture file on the local driver.
func SetupEnv(t testing.TB, dataPath, dataFile string) {
	ClearEnv(t)
	t.Setenv("CSVPAGER_DATA_PATH", dataPath)
	t.Setenv("CSVPAGER_DATA_FILE", dataFile)
	t.Setenv("CSVPAGER_STORAGE_DRIVER", "local")
}
