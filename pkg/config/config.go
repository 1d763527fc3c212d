package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultDataFile = "Popular_Baby_Names.csv"
	DefaultPageSize = 10

	StorageDriverLocal  = "local"
	StorageDriverObject = "object"
)

type Config struct {
	DataFile               string
	DataPath               string
	Debug                  bool
	PageSize               int
	StorageAccessKeyId     string
	StorageBucket          string
	StorageDriver          string
	StorageEndpoint        string
	StorageRegion          string
	StorageSecretAccessKey string
}

func env(key string, defaultValue string) string {
	if os.Getenv(key) != "" {
		return os.Getenv(key)
	}

	return defaultValue
}

// NewConfig builds the configuration from the environment. Values from a .env
// file in the working directory are loaded first when the file exists.
func NewConfig() *Config {
	godotenv.Load()

	pageSize, err := strconv.Atoi(env("CSVPAGER_PAGE_SIZE", strconv.Itoa(DefaultPageSize)))

	if err != nil || pageSize < 1 {
		pageSize = DefaultPageSize
	}

	return &Config{
		DataFile:               env("CSVPAGER_DATA_FILE", DefaultDataFile),
		DataPath:               env("CSVPAGER_DATA_PATH", ""),
		Debug:                  env("CSVPAGER_DEBUG", "false") == "true",
		PageSize:               pageSize,
		StorageAccessKeyId:     env("CSVPAGER_STORAGE_ACCESS_KEY_ID", ""),
		StorageBucket:          env("CSVPAGER_STORAGE_BUCKET", ""),
		StorageDriver:          env("CSVPAGER_STORAGE_DRIVER", StorageDriverLocal),
		StorageEndpoint:        env("CSVPAGER_STORAGE_ENDPOINT", ""),
		StorageRegion:          env("CSVPAGER_STORAGE_REGION", "us-east-1"),
		StorageSecretAccessKey: env("CSVPAGER_STORAGE_SECRET_ACCESS_KEY", ""),
	}
}
