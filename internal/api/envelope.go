package api

import (
	"encoding/json"
	"errors"
)

// envelope is the uniform wrapper every response body is expected to
// use: {success, message?, data}.
type envelope[T any] struct {
	Success bool    `json:"success"`
	Message *string `json:"message"`
	Data    *T      `json:"data"`
}

// decodeEnvelope unwraps a success-range response body. A false
// success flag becomes a *Failure carrying the server message, an
// absent data field becomes a decode failure, malformed JSON is
// wrapped as *DecodeError.
func decodeEnvelope[T any](body []byte) (T, error) {
	var zero T
	var env envelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		return zero, &DecodeError{Err: err}
	}
	if !env.Success {
		msg := ""
		if env.Message != nil {
			msg = *env.Message
		}
		return zero, &Failure{Message: msg}
	}
	if env.Data == nil {
		// an empty expected shape tolerates an absent data field
		if _, ok := any(zero).(struct{}); ok {
			return zero, nil
		}
		return zero, &DecodeError{Err: errors.New("no data returned")}
	}
	return *env.Data, nil
}
