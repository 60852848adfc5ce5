// Package apperr defines the typed errors the service surfaces over HTTP.
// Each error carries the status code it maps to and serializes into the
// {"success":false,...} envelope written by the HTTP adapter.
package apperr

import (
	"fmt"
	"net/http"
	"time"
)

// Kind identifies the error category in the JSON envelope.
type Kind string

const (
	KindValidation     Kind = "validation_error"
	KindAuthentication Kind = "authentication_error"
	KindAuthorization  Kind = "authorization_error"
	KindNotFound       Kind = "not_found"
	KindConflict       Kind = "conflict"
	KindBusinessRule   Kind = "business_rule_violation"
	KindInternal       Kind = "internal_error"
)

// Error is the common error shape: a kind, a human-readable message, the
// HTTP status it maps to, the time it occurred and optional extra fields
// merged into the JSON envelope.
type Error struct {
	Kind      Kind
	Message   string
	Status    int
	Timestamp time.Time
	Details   map[string]any
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// WithStatus overrides the HTTP status the error maps to and returns the
// error for chaining.
func (e *Error) WithStatus(status int) *Error {
	e.Status = status
	return e
}

// WithDetail attaches an extra field to the envelope and returns the error
// for chaining.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

func newError(kind Kind, status int, message string) *Error {
	return &Error{Kind: kind, Message: message, Status: status, Timestamp: time.Now().UTC()}
}

// Validation reports malformed or missing input (HTTP 400).
func Validation(format string, args ...any) *Error {
	return newError(KindValidation, http.StatusBadRequest, fmt.Sprintf(format, args...))
}

// NotFound reports a missing resource (HTTP 404), recording what was
// looked up.
func NotFound(resource, id string) *Error {
	e := newError(KindNotFound, http.StatusNotFound, fmt.Sprintf("%s %s not found", resource, id))
	return e.WithDetail("resource", resource).WithDetail("id", id)
}

// Conflict reports a duplicate unique field (HTTP 409).
func Conflict(format string, args ...any) *Error {
	return newError(KindConflict, http.StatusConflict, fmt.Sprintf(format, args...))
}

// BusinessRule reports a violated domain rule (HTTP 422), naming the rule.
func BusinessRule(rule, format string, args ...any) *Error {
	e := newError(KindBusinessRule, http.StatusUnprocessableEntity, fmt.Sprintf(format, args...))
	return e.WithDetail("rule", rule)
}

// InvalidTransition reports a disallowed status transition. It keeps the
// business-rule kind but maps to HTTP 400, and carries the attempted move
// plus the transitions the current status does allow.
func InvalidTransition(entity, from, to string, allowed []string) *Error {
	e := newError(KindBusinessRule, http.StatusBadRequest,
		fmt.Sprintf("cannot transition %s from %s to %s", entity, from, to))
	if allowed == nil {
		allowed = []string{}
	}
	return e.WithDetail("rule", "status_transition").
		WithDetail("currentStatus", from).
		WithDetail("targetStatus", to).
		WithDetail("allowedTransitions", allowed)
}

// Internal reports an unexpected failure (HTTP 500).
func Internal(message string) *Error {
	return newError(KindInternal, http.StatusInternalServerError, message)
}
