package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/supportdesk/deskclient/internal/core/domain"
	"github.com/supportdesk/deskclient/internal/core/ports"
)

// SessionClient implements ports.SessionAPI.
type SessionClient struct {
	c *Client
}

func NewSessionClient(c *Client) *SessionClient {
	return &SessionClient{c: c}
}

func (s *SessionClient) Login(ctx context.Context, in ports.LoginInput) (*ports.SessionPayload, error) {
	var out ports.SessionPayload
	if err := s.c.do(ctx, http.MethodPost, "/users/login", in, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SessionClient) Signup(ctx context.Context, in ports.SignupInput) (*ports.SessionPayload, error) {
	var out ports.SessionPayload
	if err := s.c.do(ctx, http.MethodPost, "/users/signup", in, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SessionClient) Edit(ctx context.Context, in ports.UserEditInput, token string) (*domain.User, error) {
	var out domain.User
	if err := s.c.do(ctx, http.MethodPut, "/users/"+url.PathEscape(in.ID), in, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SessionClient) Remove(ctx context.Context, id, token string) (*domain.User, error) {
	var out domain.User
	if err := s.c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), nil, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
