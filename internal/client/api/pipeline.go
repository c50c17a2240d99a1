package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/portal/internal/logging"
	"github.com/dmitrijs2005/portal/internal/requestid"
)

// maxBodySize caps how much of a response body is read. A longer 2xx body
// fails with ErrBodyTooLarge.
const maxBodySize = 4 << 20

// Request describes one backend operation.
type Request struct {
	Method string
	Path   string
	// Query is encoded into the URL; never concatenate parameters into Path.
	Query url.Values
	// Body, when non-nil, is sent as JSON.
	Body   any
	Header http.Header
}

type Pipeline struct {
	baseURL  string
	client   *http.Client
	timeout  time.Duration
	outbound []Outbound
	inbound  []Inbound
	log      logging.Logger
}

type Option func(*Pipeline)

func WithHTTPClient(c *http.Client) Option {
	return func(p *Pipeline) { p.client = c }
}

// WithTimeout bounds every call. Hitting it is a transport failure, unlike a
// deadline set by the caller.
func WithTimeout(d time.Duration) Option {
	return func(p *Pipeline) { p.timeout = d }
}

func WithOutbound(fns ...Outbound) Option {
	return func(p *Pipeline) { p.outbound = append(p.outbound, fns...) }
}

func WithInbound(fns ...Inbound) Option {
	return func(p *Pipeline) { p.inbound = append(p.inbound, fns...) }
}

func WithLogger(l logging.Logger) Option {
	return func(p *Pipeline) { p.log = l }
}

// New builds a pipeline rooted at baseURL, e.g. "http://127.0.0.1:8080/api".
func New(baseURL string, opts ...Option) *Pipeline {
	p := &Pipeline{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Do runs r and decodes the envelope payload into T. A missing or null
// payload yields the zero T.
func Do[T any](ctx context.Context, p *Pipeline, r Request) (T, error) {
	var v T
	err := p.execute(ctx, r, func(data json.RawMessage) error {
		return decodeData(data, &v)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Call runs r and ignores any payload.
func Call(ctx context.Context, p *Pipeline, r Request) error {
	return p.execute(ctx, r, nil)
}

func (p *Pipeline) execute(ctx context.Context, r Request, decode func(json.RawMessage) error) error {
	if requestid.FromContext(ctx) == "" {
		ctx = requestid.WithRequestID(ctx, requestid.New())
	}

	req, err := p.newRequest(ctx, r)
	if err != nil {
		return fmt.Errorf("%s %s: %w", r.Method, r.Path, err)
	}

	out := p.roundTrip(ctx, req)
	if err := ctx.Err(); err != nil {
		// the caller gave up: no outcome, no handlers
		p.log.Debug(ctx, "api call cancelled", "method", r.Method, "path", r.Path, "error", err)
		return fmt.Errorf("%s %s: %w", r.Method, r.Path, err)
	}
	out.Method, out.Path = r.Method, r.Path

	if out.Kind == KindSuccess && decode != nil {
		if err := decode(out.Envelope.Data); err != nil {
			out.Kind = KindTransportError
			out.Cause = &DecodeError{Err: err}
		}
	}

	for _, h := range p.inbound {
		h(ctx, &out)
	}
	return out.Err()
}

func (p *Pipeline) newRequest(ctx context.Context, r Request) (*http.Request, error) {
	u, err := url.Parse(p.baseURL + "/" + strings.TrimLeft(r.Path, "/"))
	if err != nil {
		return nil, fmt.Errorf("build url: %w", err)
	}
	if len(r.Query) > 0 {
		u.RawQuery = r.Query.Encode()
	}

	var body io.Reader
	if r.Body != nil {
		b, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for k, vs := range r.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if r.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	for _, fn := range p.outbound {
		if err := fn(ctx, req); err != nil {
			return nil, fmt.Errorf("outbound: %w", err)
		}
	}
	return req, nil
}

// roundTrip sends req and classifies whatever came back.
func (p *Pipeline) roundTrip(ctx context.Context, req *http.Request) Outcome {
	start := time.Now()

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
		req = req.WithContext(ctx)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		out := classifyNetworkError(err)
		out.Duration = time.Since(start)
		return out
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		out := Outcome{Kind: KindTransportError, HTTPStatus: resp.StatusCode, Cause: fmt.Errorf("read body: %w", err)}
		out.Duration = time.Since(start)
		return out
	}
	// only 2xx bodies are parsed
	if len(body) > maxBodySize && resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		out := Outcome{Kind: KindTransportError, HTTPStatus: resp.StatusCode, Cause: ErrBodyTooLarge}
		out.Duration = time.Since(start)
		return out
	}

	out := Classify(resp.StatusCode, body)
	out.Duration = time.Since(start)
	return out
}
