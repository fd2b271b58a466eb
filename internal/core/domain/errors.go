package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrTagExists          = errors.New("tag already exists")
	ErrTagNotFound        = errors.New("tag not found")
	ErrQueryNotFound      = errors.New("query not found")
	ErrForbidden          = errors.New("access forbidden")
)
