package githook

import (
	"encoding/json"

	perr "workmonitor/internal/platform/errors"
	"workmonitor/internal/platform/net/http/bind"
)

// Decode unmarshals body into T and validates it
// type mismatches and schema violations are ErrorCodeValidation reading "Invalid <event> payload: ..."
// callers check syntax first, a syntax error here is reported the same way
func Decode[T any](event string, body []byte) (T, error) {
	v, err := Unmarshal[T](event, body)
	if err != nil {
		return v, err
	}
	if err := Validate(event, v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Unmarshal is Decode without the schema check, for callers that filter on a field first
func Unmarshal[T any](event string, body []byte) (T, error) {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		var zero T
		return zero, perr.Wrapf(err, perr.ErrorCodeValidation, "Invalid %s payload", event)
	}
	return v, nil
}

// Validate runs the schema check of v
func Validate(event string, v any) error {
	if err := bind.Validate(v); err != nil {
		return perr.Wrapf(perr.Root(err), perr.ErrorCodeValidation, "Invalid %s payload", event)
	}
	return nil
}

// DecodePing only fails on syntax, ping carries nothing that is required
func DecodePing(body []byte) (PingEvent, error) {
	var p PingEvent
	if err := json.Unmarshal(body, &p); err != nil {
		return PingEvent{}, perr.Wrapf(err, perr.ErrorCodeValidation, "Invalid %s payload", EventPing)
	}
	return p, nil
}
