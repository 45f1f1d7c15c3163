package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError(t *testing.T) {
	cause := New("connection refused")
	err := NewAppError(ErrInternal, "failed to renew token", cause)

	assert.Equal(t, ErrInternal, err.Code())
	assert.Equal(t, "failed to renew token: connection refused", err.Error())
	assert.True(t, Is(err, cause))
}

func TestWrap_PreservesCode(t *testing.T) {
	inner := NewAppError(ErrNotFound, "spell not found", nil)
	wrapped := Wrap(inner, "lookup failed")

	assert.Equal(t, ErrNotFound, CodeOf(wrapped))
	assert.True(t, Is(wrapped, inner))
}

func TestWrap_PlainErrorBecomesInternal(t *testing.T) {
	wrapped := Wrap(New("boom"), "operation failed")
	assert.Equal(t, ErrInternal, CodeOf(wrapped))

	assert.Nil(t, Wrap(nil, "ignored"))
}

func TestToHTTPStatus(t *testing.T) {
	cases := map[string]int{
		ErrInternal:        http.StatusInternalServerError,
		ErrNotFound:        http.StatusNotFound,
		ErrInvalidArgument: http.StatusBadRequest,
		ErrUnauthenticated: http.StatusUnauthorized,
		ErrUnauthorized:    http.StatusForbidden,
		ErrConflict:        http.StatusConflict,
		ErrTimeout:         http.StatusGatewayTimeout,
		"SOMETHING_ELSE":   http.StatusInternalServerError,
	}

	for code, status := range cases {
		assert.Equal(t, status, ToHTTPStatus(code), code)
	}
}

func TestToHTTPError(t *testing.T) {
	httpErr := ToHTTPError(NewAppError(ErrUnauthenticated, "unknown user", nil))
	require.NotNil(t, httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)

	assert.Nil(t, ToHTTPError(nil))

	plain := ToHTTPError(New("boom"))
	require.NotNil(t, plain)
	assert.Equal(t, http.StatusInternalServerError, plain.Code)
}
