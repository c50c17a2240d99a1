package client

import (
	"errors"

	"github.com/dmitrijs2005/portal/internal/client/api"
)

var (
	ErrUnavailable  = api.ErrUnavailable
	ErrUnauthorized = api.ErrUnauthorized
	ErrEmptyToken   = errors.New("server returned an empty token")
)
