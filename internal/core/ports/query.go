package ports

import (
	"context"

	"github.com/supportdesk/deskclient/internal/core/domain"
)

// QueryInput is a new support query raised by a customer.
type QueryInput struct {
	Title   string `json:"title" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// ReplyInput appends one staff reply to a query.
type ReplyInput struct {
	QueryID string `json:"-" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// TagInput replaces a query's tag set wholesale with the given tag ids.
type TagInput struct {
	QueryID string   `json:"-" validate:"required"`
	Tags    []string `json:"tags" validate:"required"`
}

// QueryAPI is the backend surface behind the query slice. Reply and Tag
// return the full updated query.
type QueryAPI interface {
	ListAll(ctx context.Context) ([]domain.Query, error)
	ListForCustomer(ctx context.Context, customerID string) ([]domain.Query, error)
	Add(ctx context.Context, in QueryInput, token string) (*domain.Query, error)
	Reply(ctx context.Context, in ReplyInput, token string) (*domain.Query, error)
	Tag(ctx context.Context, in TagInput, token string) (*domain.Query, error)
}
