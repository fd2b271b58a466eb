package ports

import (
	"context"

	"github.com/supportdesk/deskclient/internal/core/domain"
)

// LoginInput carries the credentials for an email/password login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignupInput carries the self-service signup form. The backend assigns the
// customer role.
type SignupInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// SessionPayload is the authenticated identity plus its bearer token. The
// backend always issues both together.
type SessionPayload struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

// SessionAPI is the backend surface behind the session slice.
type SessionAPI interface {
	Login(ctx context.Context, in LoginInput) (*SessionPayload, error)
	Signup(ctx context.Context, in SignupInput) (*SessionPayload, error)
	// Edit updates the caller's own profile and returns the updated user.
	Edit(ctx context.Context, in UserEditInput, token string) (*domain.User, error)
	// Remove deletes the account and returns the deleted user.
	Remove(ctx context.Context, id, token string) (*domain.User, error)
}
