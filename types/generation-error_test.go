package types

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerationErrorHTTPStatus(t *testing.T) {
	tests := []struct {
		kind   ErrorKind
		status int
	}{
		{KindBadRequest, http.StatusBadRequest},
		{KindMissingCredential, http.StatusInternalServerError},
		{KindRateLimited, http.StatusTooManyRequests},
		{KindSchemaValidation, http.StatusUnprocessableEntity},
		{KindUnauthorized, http.StatusBadGateway},
		{KindNotFound, http.StatusBadGateway},
		{KindBadRequestUpstream, http.StatusBadGateway},
		{KindUnprocessable, http.StatusBadGateway},
		{KindConflict, http.StatusBadGateway},
		{KindInternalUpstream, http.StatusBadGateway},
		{KindTimeout, http.StatusBadGateway},
		{KindConnection, http.StatusBadGateway},
		{KindJSONDecode, http.StatusBadGateway},
		{KindUnexpected, http.StatusBadGateway},
	}

	for _, tc := range tests {
		t.Run(string(tc.kind), func(t *testing.T) {
			err := &GenerationError{Kind: tc.kind, Message: "boom"}
			assert.Equal(t, tc.status, err.HTTPStatus())
		})
	}
}

func TestKindFromUpstreamStatus(t *testing.T) {
	tests := []struct {
		status int
		kind   ErrorKind
	}{
		{http.StatusUnauthorized, KindUnauthorized},
		{http.StatusForbidden, KindUnauthorized},
		{http.StatusNotFound, KindNotFound},
		{http.StatusBadRequest, KindBadRequestUpstream},
		{http.StatusUnprocessableEntity, KindUnprocessable},
		{http.StatusConflict, KindConflict},
		{http.StatusRequestTimeout, KindTimeout},
		{http.StatusTooManyRequests, KindRateLimited},
		{http.StatusInternalServerError, KindInternalUpstream},
		{http.StatusServiceUnavailable, KindInternalUpstream},
		{http.StatusBadGateway, KindInternalUpstream},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d", tc.status), func(t *testing.T) {
			assert.Equal(t, tc.kind, KindFromUpstreamStatus(tc.status))
		})
	}
}

func TestGenerationErrorMessageAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &GenerationError{Kind: KindConnection, Message: "upstream unreachable", Err: cause}

	assert.Equal(t, "connection_error: upstream unreachable", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestAsGenerationError(t *testing.T) {
	t.Run("returns the original through wrapping", func(t *testing.T) {
		original := &GenerationError{Kind: KindTimeout, Message: "deadline"}
		wrapped := fmt.Errorf("call failed: %w", original)

		assert.Same(t, original, AsGenerationError(wrapped))
	})

	t.Run("folds unknown errors into unexpected", func(t *testing.T) {
		err := AsGenerationError(errors.New("boom"))

		assert.Equal(t, KindUnexpected, err.Kind)
		assert.Equal(t, "boom", err.Message)
	})
}
