package store

import (
	"github.com/supportdesk/deskclient/internal/core/domain"
	"github.com/supportdesk/deskclient/internal/core/state"
)

// RootState aggregates every slice's state under its well-known key. It is
// the value serialized to the persist engine; statuses carry `json:"-"`
// tags so loading and error flags never survive a restart.
type RootState struct {
	Session SessionState `json:"session"`
	Query   QueryState   `json:"query"`
	Tag     TagState     `json:"tag"`
	User    UserState    `json:"user"`
	Meeting MeetingState `json:"meeting"`
}

// SessionState holds the authenticated identity. User and Token are present
// together or absent together; every reducer that touches one touches both,
// except the profile edit which by contract replaces User only.
type SessionState struct {
	User   *domain.User `json:"user,omitempty"`
	Token  string       `json:"token,omitempty"`
	Status state.Status `json:"-"`
}

type QueryState struct {
	Items  state.Collection[domain.Query] `json:"items"`
	Status state.Status                   `json:"-"`
}

type TagState struct {
	Items  state.Collection[domain.Tag] `json:"items"`
	Status state.Status                 `json:"-"`
}

type UserState struct {
	Items  state.Collection[domain.User] `json:"items"`
	Status state.Status                  `json:"-"`
}

type MeetingState struct {
	Items  state.Collection[domain.Meeting] `json:"items"`
	Status state.Status                     `json:"-"`
}
