package ports

import (
	"context"

	"github.com/supportdesk/deskclient/internal/core/domain"
)

// TagAddInput names a new tag.
type TagAddInput struct {
	Name string `json:"name" validate:"required"`
}

// TagAPI is the backend surface behind the tag slice. Remove returns the
// deleted tag so the slice can drop it from its collection.
type TagAPI interface {
	ListAll(ctx context.Context) ([]domain.Tag, error)
	Add(ctx context.Context, in TagAddInput, token string) (*domain.Tag, error)
	Remove(ctx context.Context, id, token string) (*domain.Tag, error)
}
