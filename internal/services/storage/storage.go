package storage

import (
	"context"
	"io"
)

// Uploader guarda um arquivo e devolve a URL pública.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, data io.Reader) (string, error)
}
