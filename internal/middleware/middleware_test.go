package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func identify(auth *JWTAuth, header string) (string, bool) {
	var userID string
	var found bool
	h := auth.Identify(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, found = GetUserID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/chat", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	h.ServeHTTP(httptest.NewRecorder(), req)
	return userID, found
}

func TestIdentify_ValidToken(t *testing.T) {
	auth := NewJWTAuth("secret")
	token := signToken(t, "secret", jwt.MapClaims{"id": "user-42", "exp": time.Now().Add(time.Hour).Unix()})

	userID, ok := identify(auth, "Bearer "+token)
	assert.True(t, ok)
	assert.Equal(t, "user-42", userID)
}

func TestIdentify_IgnoresBadTokens(t *testing.T) {
	auth := NewJWTAuth("secret")
	expired := signToken(t, "secret", jwt.MapClaims{"id": "user-42", "exp": time.Now().Add(-time.Hour).Unix()})
	wrongKey := signToken(t, "other", jwt.MapClaims{"id": "user-42"})
	noID := signToken(t, "secret", jwt.MapClaims{"sub": "user-42"})

	for name, header := range map[string]string{
		"missing":    "",
		"not bearer": "Token abc",
		"garbage":    "Bearer not-a-jwt",
		"expired":    "Bearer " + expired,
		"wrong key":  "Bearer " + wrongKey,
		"no id":      "Bearer " + noID,
	} {
		_, ok := identify(auth, header)
		assert.False(t, ok, name)
	}
}

func TestIdentify_DisabledWithoutSecret(t *testing.T) {
	token := signToken(t, "secret", jwt.MapClaims{"id": "user-42"})

	_, ok := identify(NewJWTAuth(""), "Bearer "+token)
	assert.False(t, ok)
}

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := rl.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok, "request %d", i+1)
	}

	ok, _ := rl.Allow(ctx, "10.0.0.1")
	assert.False(t, ok, "third request should be limited")

	ok, _ = rl.Allow(ctx, "10.0.0.2")
	assert.True(t, ok, "other clients have their own window")
}

func TestRateLimiter_SteadyClientNotLockedOut(t *testing.T) {
	rl := NewRateLimiter(2, 100*time.Millisecond)
	ctx := context.Background()

	// One request every 60ms stays under two per window, so every request
	// must pass even though consecutive requests are closer than a window.
	for i := 0; i < 8; i++ {
		ok, err := rl.Allow(ctx, "10.0.0.3")
		require.NoError(t, err)
		assert.True(t, ok, "request %d", i+1)
		time.Sleep(60 * time.Millisecond)
	}
}

func TestRateLimiter_RejectedRequestsDoNotExtendWindow(t *testing.T) {
	rl := NewRateLimiter(1, 200*time.Millisecond)
	ctx := context.Background()

	ok, _ := rl.Allow(ctx, "10.0.0.4")
	assert.True(t, ok)

	time.Sleep(100 * time.Millisecond)
	ok, _ = rl.Allow(ctx, "10.0.0.4")
	assert.False(t, ok, "second request inside the window is limited")

	time.Sleep(150 * time.Millisecond)
	ok, _ = rl.Allow(ctx, "10.0.0.4")
	assert.True(t, ok, "a new window opens once the first one has elapsed")
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (bool, error) {
	return false, errors.New("redis down")
}

func TestRateLimit_Middleware(t *testing.T) {
	h := RateLimit(NewRateLimiter(1, time.Minute), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/chat", nil)
		req.RemoteAddr = "192.0.2.1:5000"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimit_FailsOpen(t *testing.T) {
	h := RateLimit(failingLimiter{}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/chat", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.9:4431"
	assert.Equal(t, "203.0.113.9", clientIP(req))

	req.RemoteAddr = "203.0.113.9"
	assert.Equal(t, "203.0.113.9", clientIP(req))
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("X-Request-ID")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rr.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, "abc-123", rr.Header().Get("X-Request-ID"))
}

func TestCORS_Preflight(t *testing.T) {
	h := CORS([]string{"*"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("preflight should not reach the handler")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/chat", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type, X-Custom")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "POST", rr.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, X-Custom", rr.Header().Get("Access-Control-Allow-Headers"))
}

func TestCORS_RestrictedOrigins(t *testing.T) {
	h := CORS([]string{"https://app.example"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodPost, "/chat", nil)
	req.Header.Set("Origin", "https://app.example")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, "https://app.example", rr.Header().Get("Access-Control-Allow-Origin"))

	req.Header.Set("Origin", "https://evil.example")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}
