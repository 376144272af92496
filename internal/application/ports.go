package application

import (
	"context"
	"io"

	"github.com/oksasatya/famjamjam/internal/domain/entity"
)

// Publisher puts a JSON job on the notification queue.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// Uploader stores an object and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

// GroupIndex is the full-text search side of groups.
type GroupIndex interface {
	Index(ctx context.Context, g entity.Group) error
	Search(ctx context.Context, q string, size int) ([]entity.Group, error)
}

// ProfileReader looks up a profile row.
type ProfileReader interface {
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
}
