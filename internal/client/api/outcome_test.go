package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		kind   Kind
		label  string
		code   int
	}{
		{name: "success", status: 200, body: `{"code":200,"msg":"ok","data":{"a":1}}`, kind: KindSuccess, label: "success", code: 200},
		{name: "success with 201", status: 201, body: `{"code":200}`, kind: KindSuccess, label: "success", code: 200},
		{name: "business error", status: 200, body: `{"code":400,"msg":"bad"}`, kind: KindBusinessError, label: "business_error", code: 400},
		{name: "business code zero", status: 200, body: `{"code":0}`, kind: KindBusinessError, label: "business_error", code: 0},
		{name: "unauthorized ignores body", status: 401, body: `{"code":200}`, kind: KindTransportError, label: "unauthorized"},
		{name: "server error", status: 503, body: ``, kind: KindTransportError, label: "transport_error"},
		{name: "redirect status", status: 302, body: ``, kind: KindTransportError, label: "transport_error"},
		{name: "missing code", status: 200, body: `{"msg":"x"}`, kind: KindTransportError, label: "decode_error"},
		{name: "not json", status: 200, body: `<html>`, kind: KindTransportError, label: "decode_error"},
		{name: "json array", status: 200, body: `[1,2]`, kind: KindTransportError, label: "decode_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Classify(tt.status, []byte(tt.body))
			assert.Equal(t, tt.kind, out.Kind)
			assert.Equal(t, tt.label, out.Label())
			assert.Equal(t, tt.status, out.HTTPStatus)
			if tt.kind != KindTransportError {
				assert.Equal(t, tt.code, out.Envelope.Code)
			}
		})
	}
}

func TestOutcome_Err(t *testing.T) {
	ok := Classify(200, []byte(`{"code":200}`))
	assert.NoError(t, ok.Err())

	biz := Classify(200, []byte(`{"code":409,"msg":"taken","data":{"field":"email"}}`))
	var be *BusinessError
	require.ErrorAs(t, biz.Err(), &be)
	assert.Equal(t, "taken", be.Message)
	assert.JSONEq(t, `{"field":"email"}`, string(be.Envelope.Data))
	assert.Equal(t, "business error 409: taken", be.Error())

	unauth := Classify(401, nil)
	assert.True(t, unauth.Unauthorized())
	assert.ErrorIs(t, unauth.Err(), ErrUnauthorized)
	assert.False(t, errors.Is(unauth.Err(), ErrUnavailable))

	down := classifyNetworkError(errors.New("connection refused"))
	assert.Equal(t, StatusUnknown, down.HTTPStatus)
	assert.ErrorIs(t, down.Err(), ErrUnavailable)
	assert.ErrorContains(t, down.Err(), "connection refused")
}

func TestOutcome_Endpoint(t *testing.T) {
	out := Outcome{Method: http.MethodPatch, Path: "/user/updateAvatar"}
	assert.Equal(t, "PATCH /user/updateAvatar", out.Endpoint())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "success", KindSuccess.String())
	assert.Equal(t, "business_error", KindBusinessError.String())
	assert.Equal(t, "transport_error", KindTransportError.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
