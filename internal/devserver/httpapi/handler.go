package httpapi

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/portal/internal/common"
	"github.com/dmitrijs2005/portal/internal/devserver/users"
	"github.com/dmitrijs2005/portal/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// UserService is the part of users.Service the handlers need.
type UserService interface {
	Register(ctx context.Context, in users.RegisterInput) (*users.User, string, error)
	Login(ctx context.Context, username, password string) (*users.User, string, error)
	CanRegister(ctx context.Context, username string) (bool, error)
	UserIDFromToken(token string) (string, error)
	Get(ctx context.Context, id string) (*users.User, error)
	UpdateInfo(ctx context.Context, id string, in users.UpdateInput) (*users.User, error)
	UpdateAvatar(ctx context.Context, id, avatarURL string) error
	UpdatePassword(ctx context.Context, id, oldPassword, newPassword string) error
}

type Handler struct {
	svc      UserService
	log      logging.Logger
	validate *validator.Validate
}

func NewHandler(svc UserService, log logging.Logger) *Handler {
	if log == nil {
		log = logging.Nop()
	}
	return &Handler{svc: svc, log: log.With("component", "httpapi"), validate: newValidator()}
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if !h.bind(c, &req) {
		return
	}

	u, token, err := h.svc.Register(c.Request.Context(), users.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		h.serviceError(c, err)
		return
	}
	ok(c, authResponse{Token: token, User: toUserResponse(u)})
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if !h.bind(c, &req) {
		return
	}

	u, token, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			fail(c, CodeBadRequest, "invalid username or password")
			return
		}
		h.serviceError(c, err)
		return
	}
	ok(c, authResponse{Token: token, User: toUserResponse(u)})
}

func (h *Handler) CanRegister(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		fail(c, CodeBadRequest, "username is required")
		return
	}

	free, err := h.svc.CanRegister(c.Request.Context(), username)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	ok(c, free)
}

func (h *Handler) GetUser(c *gin.Context) {
	u, err := h.svc.Get(c.Request.Context(), userID(c))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	ok(c, toUserResponse(u))
}

func (h *Handler) UpdateUserInfo(c *gin.Context) {
	var req updateUserInfoRequest
	if !h.bind(c, &req) {
		return
	}

	id := userID(c)
	if req.ID != id {
		fail(c, CodeForbidden, "cannot update another user")
		return
	}

	if _, err := h.svc.UpdateInfo(c.Request.Context(), id, users.UpdateInput{
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
	}); err != nil {
		h.serviceError(c, err)
		return
	}
	ok(c, nil)
}

func (h *Handler) UpdateAvatar(c *gin.Context) {
	var req updateAvatarRequest
	if !h.bind(c, &req) {
		return
	}

	if err := h.svc.UpdateAvatar(c.Request.Context(), userID(c), req.AvatarURL); err != nil {
		h.serviceError(c, err)
		return
	}
	ok(c, nil)
}

func (h *Handler) UpdatePassword(c *gin.Context) {
	var req updatePasswordRequest
	if !h.bind(c, &req) {
		return
	}

	err := h.svc.UpdatePassword(c.Request.Context(), userID(c), req.OldPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			fail(c, CodeBadRequest, "old password is incorrect")
			return
		}
		h.serviceError(c, err)
		return
	}
	ok(c, nil)
}

// serviceError maps the shared sentinel errors to envelope codes.
func (h *Handler) serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorAlreadyExists):
		fail(c, CodeConflict, "username or email already taken")
	case errors.Is(err, common.ErrorNotFound):
		fail(c, CodeNotFound, "user not found")
	default:
		h.log.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
		fail(c, CodeInternal, "internal error")
	}
}
