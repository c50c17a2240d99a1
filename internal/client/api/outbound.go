package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/portal/internal/requestid"
)

// AuthorizationHeader carries the raw credential, without a scheme prefix.
const AuthorizationHeader = "Authorization"

// Outbound adjusts a request before it is sent. Returning an error aborts
// the call before any network I/O.
type Outbound func(ctx context.Context, req *http.Request) error

// CredentialSource yields the current credential, "" when there is none.
type CredentialSource interface {
	Credential() string
}

// AttachCredential sets the Authorization header when a credential exists.
// A missing credential is not an error: login and register go out without one.
func AttachCredential(src CredentialSource) Outbound {
	return func(_ context.Context, req *http.Request) error {
		if token := src.Credential(); token != "" {
			req.Header.Set(AuthorizationHeader, token)
		}
		return nil
	}
}

// AttachRequestID tags the request with the id from ctx. The pipeline puts a
// fresh id into ctx for every call that does not already carry one.
func AttachRequestID() Outbound {
	return func(ctx context.Context, req *http.Request) error {
		if id := requestid.FromContext(ctx); id != "" {
			req.Header.Set(requestid.HeaderName, id)
		}
		return nil
	}
}

func SetUserAgent(ua string) Outbound {
	return func(_ context.Context, req *http.Request) error {
		req.Header.Set("User-Agent", ua)
		return nil
	}
}
