package users

import (
	"context"
)

// Repository stores users. Usernames and emails are unique, compared
// case-insensitively; violations return common.ErrorAlreadyExists.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetUserByLogin(ctx context.Context, login string) (*User, error)
	Update(ctx context.Context, user *User) error
}
