package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

type Kind int

const (
	KindSuccess Kind = iota
	KindBusinessError
	KindTransportError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindBusinessError:
		return "business_error"
	case KindTransportError:
		return "transport_error"
	default:
		return "unknown"
	}
}

// Outcome is the classification of one finished call. Exactly one is
// produced per call that was not cancelled by its caller.
type Outcome struct {
	Kind   Kind
	Method string
	Path   string

	// HTTPStatus is the transport status, StatusUnknown when none arrived.
	HTTPStatus int

	// Envelope is set for Success and BusinessError.
	Envelope Envelope[json.RawMessage]

	// Cause is set for TransportError.
	Cause error

	Duration time.Duration
}

// Endpoint names the call, e.g. "POST /auth/login".
func (o *Outcome) Endpoint() string {
	return o.Method + " " + o.Path
}

// Unauthorized reports a transport-level 401.
func (o *Outcome) Unauthorized() bool {
	return o.Kind == KindTransportError && o.HTTPStatus == http.StatusUnauthorized
}

// Label is a short metric/log label: success, business_error, unauthorized,
// decode_error or transport_error.
func (o *Outcome) Label() string {
	if o.Unauthorized() {
		return "unauthorized"
	}
	var de *DecodeError
	if o.Kind == KindTransportError && errors.As(o.Cause, &de) {
		return "decode_error"
	}
	return o.Kind.String()
}

// Err converts the outcome into what the caller receives.
func (o *Outcome) Err() error {
	switch o.Kind {
	case KindSuccess:
		return nil
	case KindBusinessError:
		return &BusinessError{Code: o.Envelope.Code, Message: o.Envelope.Msg, Envelope: o.Envelope}
	default:
		return &TransportError{Status: o.HTTPStatus, Err: o.Cause}
	}
}

// Classify turns an HTTP status and body into an Outcome. Non-2xx statuses
// are transport failures whatever the body says.
func Classify(status int, body []byte) Outcome {
	if status < 200 || status > 299 {
		return Outcome{Kind: KindTransportError, HTTPStatus: status, Cause: errors.New(http.StatusText(status))}
	}

	env, err := parseEnvelope(body)
	if err != nil {
		return Outcome{Kind: KindTransportError, HTTPStatus: status, Cause: &DecodeError{Err: err}}
	}
	if env.Code != CodeOK {
		return Outcome{Kind: KindBusinessError, HTTPStatus: status, Envelope: env}
	}
	return Outcome{Kind: KindSuccess, HTTPStatus: status, Envelope: env}
}

// classifyNetworkError covers calls that never got an HTTP response.
func classifyNetworkError(err error) Outcome {
	return Outcome{Kind: KindTransportError, HTTPStatus: StatusUnknown, Cause: err}
}
