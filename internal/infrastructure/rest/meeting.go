package rest

import (
	"context"
	"net/http"

	"github.com/supportdesk/deskclient/internal/core/domain"
	"github.com/supportdesk/deskclient/internal/core/ports"
)

// MeetingClient implements ports.MeetingAPI.
type MeetingClient struct {
	c *Client
}

func NewMeetingClient(c *Client) *MeetingClient {
	return &MeetingClient{c: c}
}

func (m *MeetingClient) ListAll(ctx context.Context) ([]domain.Meeting, error) {
	var out []domain.Meeting
	if err := m.c.do(ctx, http.MethodGet, "/meetings", nil, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *MeetingClient) Add(ctx context.Context, in ports.MeetingInput, token string) (*domain.Meeting, error) {
	var out domain.Meeting
	if err := m.c.do(ctx, http.MethodPost, "/meetings", in, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
