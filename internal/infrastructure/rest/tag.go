package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/supportdesk/deskclient/internal/core/domain"
	"github.com/supportdesk/deskclient/internal/core/ports"
)

// TagClient implements ports.TagAPI.
type TagClient struct {
	c *Client
}

func NewTagClient(c *Client) *TagClient {
	return &TagClient{c: c}
}

func (t *TagClient) ListAll(ctx context.Context) ([]domain.Tag, error) {
	var out []domain.Tag
	if err := t.c.do(ctx, http.MethodGet, "/tags", nil, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (t *TagClient) Add(ctx context.Context, in ports.TagAddInput, token string) (*domain.Tag, error) {
	var out domain.Tag
	if err := t.c.do(ctx, http.MethodPost, "/tags", in, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (t *TagClient) Remove(ctx context.Context, id, token string) (*domain.Tag, error) {
	var out domain.Tag
	if err := t.c.do(ctx, http.MethodDelete, "/tags/"+url.PathEscape(id), nil, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
