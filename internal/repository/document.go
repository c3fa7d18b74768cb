package repository

import (
	"context"
	"errors"
)

var NotFoundErr = errors.New("ledger document doesn't exist")

//go:generate mockery --name=Document

// Document is a durable slot holding the serialized ledger.
// Read returns NotFoundErr when nothing has been written yet.
// Write replaces the whole previous content.
type Document interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}
