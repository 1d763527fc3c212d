package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/litebase/csvpager/pkg/config"
)

// ObjectFileSystemDriver reads datasets from an S3 compatible bucket. Keys are
// the dataset path joined to the configured data path prefix.
type ObjectFileSystemDriver struct {
	bucket   string
	prefix   string
	S3Client *s3.Client
}

func NewObjectFileSystemDriver(ctx context.Context, c *config.Config) (*ObjectFileSystemDriver, error) {
	if c.StorageBucket == "" {
		return nil, errors.New("object storage requires CSVPAGER_STORAGE_BUCKET")
	}

	options := []func(*awsConfig.LoadOptions) error{
		awsConfig.WithRegion(c.StorageRegion),
	}

	if c.StorageAccessKeyId != "" {
		options = append(options, awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				c.StorageAccessKeyId,
				c.StorageSecretAccessKey,
				"",
			),
		))
	}

	sdkConfig, err := awsConfig.LoadDefaultConfig(ctx, options...)

	if err != nil {
		return nil, fmt.Errorf("loading object storage configuration: %w", err)
	}

	s3Client := s3.NewFromConfig(sdkConfig, func(o *s3.Options) {
		if c.StorageEndpoint != "" {
			o.UsePathStyle = true
			o.BaseEndpoint = aws.String(c.StorageEndpoint)
		}
	})

	return &ObjectFileSystemDriver{
		bucket:   c.StorageBucket,
		prefix:   strings.Trim(c.DataPath, "/"),
		S3Client: s3Client,
	}, nil
}

func (driver *ObjectFileSystemDriver) Key(path string) string {
	path = strings.TrimPrefix(path, "/")

	if driver.prefix == "" {
		return path
	}

	return driver.prefix + "/" + path
}

func (driver *ObjectFileSystemDriver) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	output, err := driver.S3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(driver.bucket),
		Key:    aws.String(driver.Key(path)),
	})

	if err != nil {
		if isNotFound(err) {
			return nil, &fs.PathError{Op: "open", Path: driver.Key(path), Err: fs.ErrNotExist}
		}

		return nil, err
	}

	return output.Body, nil
}

func isNotFound(err error) bool {
	var noKey *s3types.NoSuchKey
	var notFound *s3types.NotFound

	if errors.As(err, &noKey) || errors.As(err, &notFound) {
		return true
	}

	var apiErr smithy.APIError

	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound", "NoSuchBucket":
			return true
		}
	}

	return false
}
