package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-launcher-api/internal/domain"
	"github.com/vfg2006/ads-launcher-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-launcher-api/pkg/apiErrors"
	"github.com/vfg2006/ads-launcher-api/pkg/log"
)

type fakeAuthenticator struct {
	claims *domain.Claims
	err    error
}

func (f fakeAuthenticator) ValidateToken(string) (*domain.Claims, error) {
	return f.claims, f.err
}

func okHandler(t *testing.T, check func(r *http.Request)) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthMiddleware(t *testing.T) {
	claims := &domain.Claims{LicenseKey: "JAN-1"}

	tests := []struct {
		name       string
		auth       authenticating.Authenticator
		path       string
		method     string
		header     string
		wantStatus int
	}{
		{
			name:       "healthcheck é público",
			auth:       fakeAuthenticator{err: assert.AnError},
			path:       "/healthcheck",
			method:     http.MethodGet,
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "metrics é público",
			auth:       fakeAuthenticator{err: assert.AnError},
			path:       "/metrics",
			method:     http.MethodGet,
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "preflight passa sem token",
			auth:       fakeAuthenticator{err: assert.AnError},
			path:       "/v1/deployments",
			method:     http.MethodOptions,
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "sem header",
			auth:       fakeAuthenticator{claims: claims},
			path:       "/v1/business",
			method:     http.MethodGet,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "sem Bearer",
			auth:       fakeAuthenticator{claims: claims},
			path:       "/v1/business",
			method:     http.MethodGet,
			header:     "Token abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token expirado",
			auth:       fakeAuthenticator{err: authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, "")},
			path:       "/v1/business",
			method:     http.MethodGet,
			header:     "Bearer abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "segredo não configurado",
			auth:       fakeAuthenticator{err: authenticating.NewAuthError(authenticating.ErrSecretNotConfigured, apiErrors.ErrNotConfigured, "")},
			path:       "/v1/business",
			method:     http.MethodGet,
			header:     "Bearer abc",
			wantStatus: http.StatusNotImplemented,
		},
		{
			name:       "token válido",
			auth:       fakeAuthenticator{claims: claims},
			path:       "/v1/business",
			method:     http.MethodGet,
			header:     "Bearer abc",
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := AuthMiddleware(tt.auth)(okHandler(t, nil))

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_PutsClaimsAndNamespaceInContext(t *testing.T) {
	claims := &domain.Claims{LicenseKey: "JAN-1"}

	handler := AuthMiddleware(fakeAuthenticator{claims: claims})(okHandler(t, func(r *http.Request) {
		got, ok := ClaimsFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, "JAN-1", got.Namespace())
		assert.Equal(t, "JAN-1", log.GetNamespace(r.Context()))
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/business", nil)
	req.Header.Set("Authorization", "Bearer abc")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAdminOnly(t *testing.T) {
	tests := []struct {
		name       string
		claims     *domain.Claims
		wantStatus int
	}{
		{name: "sem claims", claims: nil, wantStatus: http.StatusUnauthorized},
		{name: "licença comum", claims: &domain.Claims{LicenseKey: "JAN-1"}, wantStatus: http.StatusForbidden},
		{name: "administrador", claims: &domain.Claims{LicenseKey: "JAN-ADMIN", Admin: true}, wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var handler http.Handler = AdminOnly()(okHandler(t, nil))
			if tt.claims != nil {
				handler = AuthMiddleware(fakeAuthenticator{claims: tt.claims})(handler)
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/cron/orphan-audit/run", nil)
			req.Header.Set("Authorization", "Bearer abc")
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{" http://localhost:5173/ "})(okHandler(t, nil))

	req := httptest.NewRequest(http.MethodOptions, "/v1/deployments", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, RequestIDHeader, rec.Header().Get("Access-Control-Expose-Headers"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "X-Meta-Token")

	req = httptest.NewRequest(http.MethodGet, "/v1/deployments", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Origin", rec.Header().Get("Vary"))

	wildcard := Cors([]string{"*"})(okHandler(t, nil))
	req = httptest.NewRequest(http.MethodGet, "/v1/deployments", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec = httptest.NewRecorder()
	wildcard.ServeHTTP(rec, req)

	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoggingMiddleware_PropagatesRequestIDAndFlush(t *testing.T) {
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-42", log.GetCorrelationID(r.Context()))

		flusher, ok := w.(http.Flusher)
		require.True(t, ok)
		w.Write([]byte("{}\n"))
		flusher.Flush()
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/deployments", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	assert.Equal(t, "req-42", rec.Header().Get(RequestIDHeader))
	assert.True(t, rec.Flushed)
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/business", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}

func TestLoggingMiddleware_KeepsFirstStatus(t *testing.T) {
	var captured *loggingResponseWriter
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = w.(*loggingResponseWriter)
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte("abc"))
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/v1/deployments", nil))

	require.NotNil(t, captured)
	assert.Equal(t, http.StatusConflict, captured.statusCode)
	assert.Equal(t, 3, captured.bytes)
	assert.Zero(t, captured.flushes)
}
