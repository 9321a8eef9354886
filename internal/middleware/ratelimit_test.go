package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/lifefin_backend/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRateLimiter_RejectsBadFormat(t *testing.T) {
	_, err := middleware.NewRateLimiter("five-per-minute")
	assert.Error(t, err)
}

func TestRateLimit_KeysByUser(t *testing.T) {
	lim, err := middleware.NewRateLimiter("2-M")
	require.NoError(t, err)
	r := identityRouter(middleware.AuthMiddleware(testSecret), middleware.RateLimit(lim))

	alice := signed(t, "alice", "merchant", time.Hour)
	bob := signed(t, "bob", "merchant", time.Hour)

	assert.Equal(t, http.StatusOK, call(r, alice).Code)
	assert.Equal(t, http.StatusOK, call(r, alice).Code)
	assert.Equal(t, http.StatusTooManyRequests, call(r, alice).Code)

	// A different user has their own budget.
	assert.Equal(t, http.StatusOK, call(r, bob).Code)
}

func TestRateLimit_AnonymousByIP(t *testing.T) {
	lim, err := middleware.NewRateLimiter("1-H")
	require.NoError(t, err)
	r := identityRouter(middleware.RateLimit(lim))

	assert.Equal(t, http.StatusOK, call(r, "").Code)
	assert.Equal(t, http.StatusTooManyRequests, call(r, "").Code)
}
