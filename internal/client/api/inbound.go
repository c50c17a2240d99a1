package api

import (
	"context"

	"github.com/dmitrijs2005/portal/internal/client/metrics"
	"github.com/dmitrijs2005/portal/internal/client/nav"
	"github.com/dmitrijs2005/portal/internal/client/notify"
	"github.com/dmitrijs2005/portal/internal/logging"
)

// Inbound reacts to a classified call. Handlers run in order and must not
// panic; they cannot change what the caller receives.
type Inbound func(ctx context.Context, out *Outcome)

// SessionClearer is the part of the session store a forced logout needs.
type SessionClearer interface {
	ClearCredential(ctx context.Context)
	ClearProfile(ctx context.Context)
}

// Notify shows one message per failed call.
func Notify(n notify.Notifier) Inbound {
	return func(ctx context.Context, out *Outcome) {
		switch {
		case out.Kind == KindSuccess:
		case out.Kind == KindBusinessError:
			msg := out.Envelope.Msg
			if msg == "" {
				msg = MsgServiceError
			}
			n.Error(ctx, msg)
		case out.Unauthorized():
			n.Error(ctx, MsgSessionExpired)
		default:
			n.Error(ctx, MsgServiceError)
		}
	}
}

// ForceLogout drops the session and sends the user to the login screen when
// the backend rejects the credential at transport level.
func ForceLogout(store SessionClearer, r nav.Redirector) Inbound {
	return func(ctx context.Context, out *Outcome) {
		if !out.Unauthorized() {
			return
		}
		store.ClearCredential(ctx)
		store.ClearProfile(ctx)
		r.Redirect(ctx, nav.LoginPath)
	}
}

// RecordMetrics counts calls by endpoint and outcome.
func RecordMetrics(m *metrics.Metrics) Inbound {
	return func(_ context.Context, out *Outcome) {
		m.Observe(out.Endpoint(), out.Label(), out.Duration)
		if out.Unauthorized() {
			m.ForcedLogouts.Inc()
		}
	}
}

// LogOutcome writes one line per call.
func LogOutcome(log logging.Logger) Inbound {
	return func(ctx context.Context, out *Outcome) {
		args := []any{
			"endpoint", out.Endpoint(),
			"outcome", out.Label(),
			"http_status", out.HTTPStatus,
			"duration", out.Duration,
		}
		switch out.Kind {
		case KindSuccess:
			log.Debug(ctx, "api call", args...)
		case KindBusinessError:
			log.Info(ctx, "api call rejected", append(args, "code", out.Envelope.Code, "msg", out.Envelope.Msg)...)
		default:
			log.Warn(ctx, "api call failed", append(args, "error", out.Cause)...)
		}
	}
}

// Session bundles what the default inbound chain needs.
type Session struct {
	Store      SessionClearer
	Redirector nav.Redirector
	Notifier   notify.Notifier
	Metrics    *metrics.Metrics
	Log        logging.Logger
}

// DefaultInbound returns the standard chain: log, metrics, notify, then
// forced logout. Nil collaborators are skipped.
func DefaultInbound(s Session) []Inbound {
	var chain []Inbound
	if s.Log != nil {
		chain = append(chain, LogOutcome(s.Log))
	}
	if s.Metrics != nil {
		chain = append(chain, RecordMetrics(s.Metrics))
	}
	if s.Notifier != nil {
		chain = append(chain, Notify(s.Notifier))
	}
	if s.Store != nil && s.Redirector != nil {
		chain = append(chain, ForceLogout(s.Store, s.Redirector))
	}
	return chain
}
