package api

import (
	"encoding/json"
	"errors"
)

// CodeOK is the envelope code of a successful operation.
const CodeOK = 200

// Envelope is the uniform backend answer with a typed payload.
type Envelope[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg,omitempty"`
	Data T      `json:"data,omitempty"`
}

// wireEnvelope keeps code optional so a missing code can be told apart from 0.
type wireEnvelope struct {
	Code *int            `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

var errNoCode = errors.New("envelope has no code")

func parseEnvelope(body []byte) (Envelope[json.RawMessage], error) {
	var w wireEnvelope
	if err := json.Unmarshal(body, &w); err != nil {
		return Envelope[json.RawMessage]{}, err
	}
	if w.Code == nil {
		return Envelope[json.RawMessage]{}, errNoCode
	}
	return Envelope[json.RawMessage]{Code: *w.Code, Msg: w.Msg, Data: w.Data}, nil
}

// decodeData unmarshals an envelope payload. Absent or null data leaves v
// untouched.
func decodeData(data json.RawMessage, v any) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	return json.Unmarshal(data, v)
}
