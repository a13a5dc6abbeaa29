// Package source opens the bytes of a data file, either from the local
// filesystem or from an S3-compatible object store.
//
// Usage:
//
//	blob, err := source.Open(ctx, "s3://bucket/data.feather", source.S3Config{Endpoint: "localhost:9000"})
//	if err != nil { ... }
//	defer blob.Close()
package source

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/bjaus/feather/internal/errs"
	"github.com/bjaus/feather/internal/logger"
)

// Blob is random-access file content.
type Blob interface {
	io.Reader
	io.ReaderAt
	io.Seeker
	io.Closer

	// Size returns the content length in bytes.
	Size() int64
	// Name returns the path or URL the blob was opened from.
	Name() string
}

const s3Scheme = "s3://"

// Open opens path. Paths starting with s3:// are fetched from the object
// store described by s3; anything else is a local file.
func Open(ctx context.Context, path string, s3 S3Config) (Blob, error) {
	var (
		b   Blob
		err error
	)
	if rest, ok := strings.CutPrefix(path, s3Scheme); ok {
		b, err = openObject(ctx, path, rest, s3)
	} else {
		b, err = openFile(path)
	}
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug().
		Str("source", b.Name()).
		Str("size", humanize.Bytes(uint64(max(b.Size(), 0)))).
		Msg("source opened")
	return b, nil
}

type localFile struct {
	*os.File
	size int64
}

func (f *localFile) Size() int64  { return f.size }
func (f *localFile) Name() string { return f.File.Name() }

func openFile(path string) (Blob, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.Wrap(errs.ErrKindFileNotFound, "file "+path+" not found", err)
		}
		return nil, errs.Wrap(errs.ErrKindReadError, "failed to open "+path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errs.Wrap(errs.ErrKindReadError, "failed to stat "+path, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, errs.Newf(errs.ErrKindReadError, "%s is a directory", path)
	}
	return &localFile{File: f, size: info.Size()}, nil
}
