package repository

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
)

// gcsObject is the part of *storage.ObjectHandle the GCS document uses.
type gcsObject interface {
	NewReader(ctx context.Context) (io.ReadCloser, error)
	NewWriter(ctx context.Context) io.WriteCloser
}

type gcsHandle struct {
	h *storage.ObjectHandle
}

func (g gcsHandle) NewReader(ctx context.Context) (io.ReadCloser, error) {
	r, err := g.h.NewReader(ctx)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (g gcsHandle) NewWriter(ctx context.Context) io.WriteCloser {
	w := g.h.NewWriter(ctx)
	w.ContentType = "application/json"
	return w
}

// GCS keeps the document in a bucket object. The object only becomes visible
// once the writer is closed, so an interrupted upload leaves the old document.
type GCS struct {
	object gcsObject
	uri    string
}

func NewGCS(client *storage.Client, bucket, object string) *GCS {
	return &GCS{
		object: gcsHandle{h: client.Bucket(bucket).Object(object)},
		uri:    fmt.Sprintf("gs://%s/%s", bucket, object),
	}
}

func (g *GCS) Read(ctx context.Context) ([]byte, error) {
	r, err := g.object.NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, NotFoundErr
	}
	if err != nil {
		return nil, fmt.Errorf("repository.GCS, open reader %s: %w", g.uri, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("repository.GCS, read %s: %w", g.uri, err)
	}
	return data, nil
}

func (g *GCS) Write(ctx context.Context, data []byte) error {
	w := g.object.NewWriter(ctx)
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("repository.GCS, write %s: %w", g.uri, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("repository.GCS, finalize %s: %w", g.uri, err)
	}
	return nil
}

var _ Document = (*GCS)(nil)
