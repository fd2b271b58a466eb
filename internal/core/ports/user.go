package ports

import (
	"context"

	"github.com/supportdesk/deskclient/internal/core/domain"
)

// UserAddInput is the admin new-account form.
type UserAddInput struct {
	FirstName string      `json:"firstName" validate:"required"`
	LastName  string      `json:"lastName" validate:"required"`
	Email     string      `json:"email" validate:"required,email"`
	Password  string      `json:"password" validate:"required,min=6"`
	Phone     string      `json:"phone"`
	Address   string      `json:"address"`
	City      string      `json:"city"`
	Country   string      `json:"country"`
	Zip       int         `json:"zip"`
	Role      domain.Role `json:"role" validate:"required,oneof=admin user customer"`
}

// UserEditInput is the profile update form. Password is optional; an empty
// value leaves the stored credential untouched.
type UserEditInput struct {
	ID        string      `json:"-" validate:"required"`
	FirstName string      `json:"firstName" validate:"required"`
	LastName  string      `json:"lastName" validate:"required"`
	Email     string      `json:"email" validate:"required,email"`
	Password  string      `json:"password,omitempty" validate:"omitempty,min=6"`
	Phone     string      `json:"phone"`
	Address   string      `json:"address"`
	City      string      `json:"city"`
	Country   string      `json:"country"`
	Zip       int         `json:"zip"`
	Role      domain.Role `json:"role" validate:"required,oneof=admin user customer"`
}

// UserAPI is the backend surface behind the user administration slice.
// Add reuses the signup endpoint, so its payload carries a token the slice
// discards.
type UserAPI interface {
	ListAll(ctx context.Context) ([]domain.User, error)
	Add(ctx context.Context, in UserAddInput, token string) (*SessionPayload, error)
	Edit(ctx context.Context, in UserEditInput, token string) (*domain.User, error)
	Remove(ctx context.Context, id, token string) (*domain.User, error)
}
