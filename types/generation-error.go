package types

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies every failure the generation pipeline can produce.
// Provider-specific errors are folded into these kinds at the repository
// boundary, so nothing above it branches on transport error types.
type ErrorKind string

const (
	KindBadRequest         ErrorKind = "bad_request"
	KindMissingCredential  ErrorKind = "missing_credential"
	KindRateLimited        ErrorKind = "rate_limited"
	KindUnauthorized       ErrorKind = "unauthorized"
	KindNotFound           ErrorKind = "not_found"
	KindBadRequestUpstream ErrorKind = "bad_request_upstream"
	KindUnprocessable      ErrorKind = "unprocessable_upstream"
	KindConflict           ErrorKind = "conflict"
	KindInternalUpstream   ErrorKind = "internal_upstream"
	KindTimeout            ErrorKind = "timeout"
	KindConnection         ErrorKind = "connection_error"
	KindJSONDecode         ErrorKind = "json_decode_error"
	KindSchemaValidation   ErrorKind = "schema_validation_error"
	KindUnexpected         ErrorKind = "unexpected_error"
)

// GenerationError is the tagged failure of the generate pipeline. Details is
// populated for schema-validation failures only.
type GenerationError struct {
	Kind    ErrorKind
	Message string
	Details []string
	Err     error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error kind onto the response status. Upstream failures
// answer 502 because the defect is on the provider side, except rate limiting
// which keeps its own status, and a missing credential which is a local
// configuration defect.
func (e *GenerationError) HTTPStatus() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindMissingCredential:
		return http.StatusInternalServerError
	case KindRateLimited:
		return http.StatusTooManyRequests
	case KindSchemaValidation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

// AsGenerationError unwraps err into its GenerationError, folding anything
// unrecognized into the unexpected kind.
func AsGenerationError(err error) *GenerationError {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr
	}
	return &GenerationError{
		Kind:    KindUnexpected,
		Message: err.Error(),
		Err:     err,
	}
}

// KindFromUpstreamStatus subclassifies an upstream HTTP status into a kind.
func KindFromUpstreamStatus(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindUnauthorized
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusBadRequest:
		return KindBadRequestUpstream
	case status == http.StatusUnprocessableEntity:
		return KindUnprocessable
	case status == http.StatusConflict:
		return KindConflict
	case status == http.StatusRequestTimeout:
		return KindTimeout
	case status == http.StatusTooManyRequests:
		return KindRateLimited
	default:
		return KindInternalUpstream
	}
}
