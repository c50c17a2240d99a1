// Package api is the request pipeline every backend call goes through.
//
// # Overview
//
// A Pipeline wraps a base address and an *http.Client. For each call it:
//  1. builds the HTTP request and runs the outbound transforms in order
//     (AttachCredential puts the session token into the Authorization header);
//  2. sends it and classifies the result into an Outcome: Success,
//     BusinessError or TransportError;
//  3. runs the inbound handlers in order (Notify shows a message for every
//     failure, ForceLogout drops the session on HTTP 401);
//  4. returns the decoded payload or an error.
//
// # Envelope
//
// The backend wraps every answer as {"code": int, "msg": string, "data": any}.
// code 200 is the only success, whatever the HTTP status line said. Any other
// code is a business failure delivered with HTTP 200. A 2xx body that is not
// an envelope is treated as a transport failure (see DecodeError).
//
// # Error Handling
//
// Failures come back as *BusinessError or *TransportError and can be matched
// with errors.As. errors.Is(err, ErrUnauthorized) holds for HTTP 401 and
// errors.Is(err, ErrUnavailable) for network failures and 5xx answers.
// Nothing is retried here.
//
// # Cancellation
//
// When the caller's context is cancelled the call returns the context error,
// produces no Outcome and runs no inbound handler, so no message is shown.
package api
