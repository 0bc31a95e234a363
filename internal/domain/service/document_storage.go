package service

import (
	"context"
)

// DocumentStorage persists uploaded document bytes under opaque keys.
type DocumentStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// DocumentInfo is what inspection learned about an uploaded file.
type DocumentInfo struct {
	MimeType  string
	Extension string
	PageCount int
}

// DocumentInspector sniffs and sanity-checks uploaded bytes.
type DocumentInspector interface {
	Inspect(data []byte) (*DocumentInfo, error)
}
