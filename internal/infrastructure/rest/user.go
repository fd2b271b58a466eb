package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/supportdesk/deskclient/internal/core/domain"
	"github.com/supportdesk/deskclient/internal/core/ports"
)

// UserClient implements ports.UserAPI.
type UserClient struct {
	c *Client
}

func NewUserClient(c *Client) *UserClient {
	return &UserClient{c: c}
}

func (u *UserClient) ListAll(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	if err := u.c.do(ctx, http.MethodGet, "/users", nil, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Add creates an account through the signup endpoint, which is the one
// backend route that mints users. The issued token belongs to the new
// account and is discarded by the caller.
func (u *UserClient) Add(ctx context.Context, in ports.UserAddInput, token string) (*ports.SessionPayload, error) {
	var out ports.SessionPayload
	if err := u.c.do(ctx, http.MethodPost, "/users/signup", in, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (u *UserClient) Edit(ctx context.Context, in ports.UserEditInput, token string) (*domain.User, error) {
	var out domain.User
	if err := u.c.do(ctx, http.MethodPut, "/users/"+url.PathEscape(in.ID), in, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (u *UserClient) Remove(ctx context.Context, id, token string) (*domain.User, error) {
	var out domain.User
	if err := u.c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), nil, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
