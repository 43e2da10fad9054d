// Package httpkit is the routing and response surface modules use instead of the platform http package
package httpkit

import (
	"net/http"

	phttp "workmonitor/internal/platform/net/http"
)

type (
	// Envelope is the read API response body
	Envelope = phttp.Envelope

	// Response is returned by return style handlers
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is the platform router seam
	Router = phttp.Router
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// NoContent returns a 204 response
func NoContent() Response { return phttp.NoContent() }

// Error maps err to a status and error envelope
func Error(err error) Response { return phttp.Error(err) }

// WriteJSON writes v as is, without the envelope
func WriteJSON(w http.ResponseWriter, status int, v any) { phttp.JSON(w, status, v) }

// Call adapts a handler that takes no body
func Call(fn func(*http.Request) (any, error)) Handler { return phttp.NoBodyHandler(fn) }

// JSON adapts a handler that takes a validated JSON body
func JSON[T any](fn func(*http.Request, T) (any, error)) Handler { return phttp.JSONHandler(fn) }
