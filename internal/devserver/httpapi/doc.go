// Package httpapi exposes the dev backend over HTTP.
//
// Every business outcome travels as HTTP 200 with a {code,msg,data}
// envelope; code 200 means success. Only a missing, invalid or expired
// credential is answered with HTTP 401, which is what makes clients drop
// their session.
package httpapi
