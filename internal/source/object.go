package source

import (
	"context"
	"errors"
	"net/http"
	"strings"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/bjaus/feather/internal/errs"
)

// S3Config holds the settings needed to reach an S3-compatible store.
type S3Config struct {
	// Endpoint is the host:port of the storage server.
	Endpoint  string
	AccessKey string
	SecretKey string
	// Region is used by region-aware backends. Leave empty for MinIO.
	Region string
	UseSSL bool
}

// ParseObjectURL splits "bucket/key/parts" into its bucket and key.
func ParseObjectURL(rest string) (bucket, key string, err error) {
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", errs.Newf(errs.ErrKindUsage, "invalid object path %q: want s3://bucket/key", s3Scheme+rest)
	}
	return bucket, key, nil
}

// object wraps a MinIO GetObject response. *miniogo.Object already reads,
// seeks, and reads at offsets; it only lacks a size and a name.
type object struct {
	*miniogo.Object
	name string
	size int64
}

func (o *object) Size() int64  { return o.size }
func (o *object) Name() string { return o.name }

func openObject(ctx context.Context, name, rest string, cfg S3Config) (Blob, error) {
	bucket, key, err := ParseObjectURL(rest)
	if err != nil {
		return nil, err
	}
	if cfg.Endpoint == "" {
		return nil, errs.New(errs.ErrKindUsage, "s3 endpoint is not configured (set FEATHER_CLI_S3_ENDPOINT)")
	}

	client, err := miniogo.New(cfg.Endpoint, &miniogo.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, errs.Wrap(errs.ErrKindReadError, "failed to create s3 client", err)
	}

	obj, err := client.GetObject(ctx, bucket, key, miniogo.GetObjectOptions{})
	if err != nil {
		return nil, mapError(err, name)
	}
	stat, err := obj.Stat()
	if err != nil {
		obj.Close()
		return nil, mapError(err, name)
	}
	return &object{Object: obj, name: name, size: stat.Size}, nil
}

// mapError translates a MinIO SDK error into a *errs.Error.
func mapError(err error, name string) *errs.Error {
	var resp miniogo.ErrorResponse
	if errors.As(err, &resp) {
		switch resp.Code {
		case "NoSuchBucket", "NoSuchKey":
			return errs.Wrap(errs.ErrKindFileNotFound, "object "+name+" not found", err)
		}
		if resp.StatusCode == http.StatusNotFound {
			return errs.Wrap(errs.ErrKindFileNotFound, "object "+name+" not found", err)
		}
	}
	return errs.Wrap(errs.ErrKindReadError, "failed to read "+name, err)
}
