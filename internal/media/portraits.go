package media

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// ObjectStore is satisfied by S3Store.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// Portraits stores staff photos as WebP objects.
type Portraits struct {
	store    ObjectStore
	maxWidth int
}

func NewPortraits(store ObjectStore) *Portraits {
	return &Portraits{store: store, maxWidth: MaxWidth}
}

// Save transcodes r and uploads it, returning the public URL.
func (p *Portraits) Save(ctx context.Context, physiotherapistID string, r io.Reader) (string, error) {
	data, err := Transcode(r, p.maxWidth)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("physiotherapists/%s/%s.webp", physiotherapistID, uuid.NewString())
	return p.store.Put(ctx, key, data, "image/webp")
}
