package storage

import (
	"errors"
	"io"
)

// ErrNotImage 表示上传内容无法被解码为图片。
var ErrNotImage = errors.New("uploaded file is not a valid image")

// Upload carries an uploaded file payload, decoupled from the HTTP layer.
type Upload struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}

// BlobStore is the object storage capability consumed by the services.
// Put stores a file under the given key prefix and returns the generated
// object key (never a URL). SignedURL derives a fresh, time-limited display
// URL for a previously stored key; both operations are fallible and callers
// decide whether a failure aborts the request.
type BlobStore interface {
	Put(prefix string, upload Upload) (string, error)
	SignedURL(prefix, key string) (string, error)
}
