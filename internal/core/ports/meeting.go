package ports

import (
	"context"
	"time"

	"github.com/supportdesk/deskclient/internal/core/domain"
)

// MeetingInput records a new meeting.
type MeetingInput struct {
	Date    time.Time `json:"date" validate:"required"`
	Subject string    `json:"subject" validate:"required"`
	Notes   string    `json:"notes"`
}

// MeetingAPI is the backend surface behind the meeting slice.
type MeetingAPI interface {
	ListAll(ctx context.Context) ([]domain.Meeting, error)
	Add(ctx context.Context, in MeetingInput, token string) (*domain.Meeting, error)
}
