package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/supportdesk/deskclient/internal/core/domain"
	"github.com/supportdesk/deskclient/internal/core/ports"
)

// QueryClient implements ports.QueryAPI.
type QueryClient struct {
	c *Client
}

func NewQueryClient(c *Client) *QueryClient {
	return &QueryClient{c: c}
}

func (q *QueryClient) ListAll(ctx context.Context) ([]domain.Query, error) {
	var out []domain.Query
	if err := q.c.do(ctx, http.MethodGet, "/queries", nil, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (q *QueryClient) ListForCustomer(ctx context.Context, customerID string) ([]domain.Query, error) {
	var out []domain.Query
	if err := q.c.do(ctx, http.MethodGet, "/queries/customer/"+url.PathEscape(customerID), nil, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (q *QueryClient) Add(ctx context.Context, in ports.QueryInput, token string) (*domain.Query, error) {
	var out domain.Query
	if err := q.c.do(ctx, http.MethodPost, "/queries", in, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (q *QueryClient) Reply(ctx context.Context, in ports.ReplyInput, token string) (*domain.Query, error) {
	var out domain.Query
	if err := q.c.do(ctx, http.MethodPut, "/queries/"+url.PathEscape(in.QueryID)+"/reply", in, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (q *QueryClient) Tag(ctx context.Context, in ports.TagInput, token string) (*domain.Query, error) {
	var out domain.Query
	if err := q.c.do(ctx, http.MethodPut, "/queries/"+url.PathEscape(in.QueryID)+"/tag", in, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
