package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"condopay-srv/pkg/response"
	"condopay-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// testLogger implements log.Logger for testing
type testLogger struct{}

func (m *testLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *testLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *testLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *testLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *testLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *testLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *testLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

const testSecret = "0123456789abcdef0123456789abcdef"

func newAuthRouter(t *testing.T) (*gin.Engine, scope.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtMgr := scope.New(testSecret)
	mw := New(&testLogger{}, jwtMgr)

	r := gin.New()
	protected := r.Group("/protected")
	protected.Use(mw.Auth())
	{
		protected.GET("", func(c *gin.Context) {
			payload, _ := scope.GetPayloadFromContext(c.Request.Context())
			response.OK(c, gin.H{"role": payload.Role})
		})

		admin := protected.Group("/admin")
		admin.Use(mw.RequireAdmin())
		admin.GET("", func(c *gin.Context) {
			response.OK(c, nil)
		})
	}
	return r, jwtMgr
}

func TestAuthBearerHeader(t *testing.T) {
	router, jwtMgr := newAuthRouter(t)

	token, err := jwtMgr.CreateToken(scope.Payload{Role: scope.RoleAdmin})
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthTokenQueryFallback(t *testing.T) {
	router, jwtMgr := newAuthRouter(t)

	token, err := jwtMgr.CreateToken(scope.Payload{Role: scope.RoleResident, Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	// EventSource clients cannot set headers; the token rides the query.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected?token="+token, nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthRejectsMissingAndInvalidTokens(t *testing.T) {
	router, _ := newAuthRouter(t)

	for _, target := range []string{"/protected", "/protected?token=garbage"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, target, nil)
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", target, rec.Code)
		}
	}
}

func TestRequireAdminRejectsResident(t *testing.T) {
	router, jwtMgr := newAuthRouter(t)

	token, err := jwtMgr.CreateToken(scope.Payload{Role: scope.RoleResident, Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", rec.Code, rec.Body.String())
	}
}
