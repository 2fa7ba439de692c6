package domain

import "errors"

// ErrNotFound is returned when the requested resource does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails business rule validation
// (e.g. missing trip location, unknown duty status).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrInvalidRoute is returned when the route planner answers with a body that
// does not carry a stop list. The call is aborted; no state changes.
var ErrInvalidRoute = errors.New("invalid route response")

// ErrUpstream is returned when an external service cannot be reached or
// answers with a non-2xx status.
var ErrUpstream = errors.New("upstream service error")
