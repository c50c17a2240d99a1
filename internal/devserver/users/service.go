package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/portal/internal/common"
	"github.com/dmitrijs2005/portal/internal/cryptox"
	"github.com/dmitrijs2005/portal/internal/devserver/auth"
)

type RegisterInput struct {
	Username string
	Password string
	Email    string
	Phone    string
}

type UpdateInput struct {
	Username string
	Email    string
	Phone    string
}

type Service struct {
	repo     Repository
	secret   []byte
	tokenTTL time.Duration
}

func NewService(repo Repository, secret []byte, tokenTTL time.Duration) *Service {
	return &Service{repo: repo, secret: secret, tokenTTL: tokenTTL}
}

// Register creates the user and signs a credential for it.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*User, string, error) {
	salt, hash := cryptox.HashPassword([]byte(in.Password))
	user, err := s.repo.Create(ctx, &User{
		UserName:     in.Username,
		Email:        in.Email,
		Phone:        in.Phone,
		Salt:         salt,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := auth.GenerateToken(user.ID, s.secret, s.tokenTTL)
	if err != nil {
		return nil, "", common.ErrorInternal
	}
	return user, token, nil
}

// Login checks the password and signs a fresh credential. Unknown users and
// wrong passwords both yield common.ErrorUnauthorized.
func (s *Service) Login(ctx context.Context, username, password string) (*User, string, error) {
	user, err := s.repo.GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorUnauthorized
		}
		return nil, "", common.ErrorInternal
	}

	if !s.checkPassword(user, password) {
		return nil, "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.secret, s.tokenTTL)
	if err != nil {
		return nil, "", common.ErrorInternal
	}
	return user, token, nil
}

func (s *Service) checkPassword(user *User, password string) bool {
	return cryptox.VerifyPassword([]byte(password), user.Salt, user.PasswordHash)
}

// CanRegister reports whether username is still free.
func (s *Service) CanRegister(ctx context.Context, username string) (bool, error) {
	_, err := s.repo.GetUserByLogin(ctx, username)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return true, nil
	case err != nil:
		return false, common.ErrorInternal
	default:
		return false, nil
	}
}

// UserIDFromToken validates a credential issued by this service.
func (s *Service) UserIDFromToken(token string) (string, error) {
	return auth.GetUserIDFromToken(token, s.secret)
}

func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateInfo(ctx context.Context, id string, in UpdateInput) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.UserName, user.Email, user.Phone = in.Username, in.Email, in.Phone
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) UpdateAvatar(ctx context.Context, id, avatarURL string) error {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	user.AvatarURL = avatarURL
	return s.repo.Update(ctx, user)
}

// UpdatePassword replaces the password after checking the old one. A wrong
// old password yields common.ErrorUnauthorized.
func (s *Service) UpdatePassword(ctx context.Context, id, oldPassword, newPassword string) error {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !s.checkPassword(user, oldPassword) {
		return common.ErrorUnauthorized
	}

	user.Salt, user.PasswordHash = cryptox.HashPassword([]byte(newPassword))
	return s.repo.Update(ctx, user)
}
