// Package client contains the typed wrappers for the portal backend API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     Register, Login, CanRegister, GetUser, UpdateUserInfo, UpdateAvatar
//     and UpdatePassword.
//  2. A concrete HTTP implementation (see HTTPClient) that sends every call
//     through an api.Pipeline. The pipeline attaches the credential, decodes
//     the response envelope and applies the shared failure policy, so the
//     wrappers here only name the endpoint and the payload types.
//
// # Error Handling
//
// Wrappers return whatever the pipeline returns. Callers match conditions with
// errors.Is (ErrUnavailable, ErrUnauthorized) or errors.As (*api.BusinessError,
// *api.TransportError). By the time an error reaches the caller the user has
// already been notified.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept a
// context.Context; cancelling it abandons the call without any notification.
//
// See Also
//
//   - Interface:  Client
//   - HTTP impl:  HTTPClient
//   - Errors:     ErrUnavailable, ErrUnauthorized, ErrEmptyToken
package client
