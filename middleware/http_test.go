package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/authware/idtoken/authctx"
	"github.com/authware/idtoken/logger"
	"github.com/authware/idtoken/middleware"
	"github.com/authware/idtoken/strategy"
)

type testUser struct {
	ID string
}

func testStrategy(t *testing.T, resolver strategy.Resolver) *strategy.Strategy {
	t.Helper()
	if resolver == nil {
		resolver = func(context.Context, map[string]any, string) (any, strategy.Info, error) {
			return &testUser{ID: "42"}, strategy.Info{}, nil
		}
	}
	s, err := strategy.New(strategy.Config{
		Audiences: []string{"aud"},
		Verifier: strategy.VerifierFunc(func(_ context.Context, token string, _ []string) (*strategy.Ticket, error) {
			if token != "good" {
				return nil, errors.New("bad signature")
			}
			return &strategy.Ticket{Claims: map[string]any{"sub": "42"}}, nil
		}),
		Resolver: resolver,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func decodeError(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	errObj, ok := resp["error"].(map[string]any)
	if !ok {
		t.Fatalf("missing error object in %s", body)
	}
	return errObj
}

func TestAuthenticate_Success(t *testing.T) {
	s := testStrategy(t, nil)

	var identity authctx.Identity
	handler := middleware.Authenticate(s, logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, _ = authctx.Get(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", http.NoBody)
	req.Header.Set("Authorization", "Bearer good")
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rr.Code, rr.Body.String())
	}
	user, ok := identity.Principal.(*testUser)
	if !ok || user.ID != "42" {
		t.Fatalf("unexpected principal in context: %#v", identity.Principal)
	}
	if identity.Subject != "42" {
		t.Fatalf("expected subject 42, got %q", identity.Subject)
	}
}

func TestAuthenticate_NoToken(t *testing.T) {
	s := testStrategy(t, nil)

	handler := middleware.Authenticate(s, logger.Nop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run without a token")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", http.NoBody))

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	errObj := decodeError(t, rr.Body.Bytes())
	if errObj["code"] != "UNAUTHORIZED" {
		t.Fatalf("unexpected code: %v", errObj["code"])
	}
	if errObj["message"] != "no ID token provided" {
		t.Fatalf("unexpected message: %v", errObj["message"])
	}
}

func TestAuthenticate_Rejected(t *testing.T) {
	s := testStrategy(t, nil)

	handler := middleware.Authenticate(s, logger.Nop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run for a rejected token")
	}))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/?id_token=evil", http.NoBody)
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	if errObj := decodeError(t, rr.Body.Bytes()); errObj["message"] != "bad signature" {
		t.Fatalf("unexpected message: %v", errObj["message"])
	}
}

func TestAuthenticate_HostError(t *testing.T) {
	s := testStrategy(t, func(context.Context, map[string]any, string) (any, strategy.Info, error) {
		return nil, strategy.Info{}, errors.New("store down")
	})

	handler := middleware.Authenticate(s, logger.Nop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run on host error")
	}))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/?id_token=good", http.NoBody)
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	errObj := decodeError(t, rr.Body.Bytes())
	if errObj["code"] != "INTERNAL_ERROR" {
		t.Fatalf("unexpected code: %v", errObj["code"])
	}
}

func TestAuthenticateGin_RouteParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := testStrategy(t, nil)

	router := gin.New()
	router.GET("/auth/:id_token", middleware.AuthenticateGin(s, logger.Nop()), func(c *gin.Context) {
		user := authctx.MustPrincipal[*testUser](c.Request.Context())
		c.String(http.StatusOK, user.ID)
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/auth/good", http.NoBody))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rr.Code, rr.Body.String())
	}
	if rr.Body.String() != "42" {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

func TestAuthenticateGin_Aborts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := testStrategy(t, nil)

	router := gin.New()
	router.GET("/protected", middleware.AuthenticateGin(s, logger.Nop()), func(c *gin.Context) {
		t.Fatal("handler must not run without a token")
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/protected", http.NoBody))

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestRequestID_GeneratesID(t *testing.T) {
	handler := middleware.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Request-Id") == "" {
			t.Error("expected X-Request-Id in request headers")
		}
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", http.NoBody))

	if rr.Header().Get("X-Request-Id") == "" {
		t.Error("expected X-Request-Id in response headers")
	}
}

func TestRequestID_PreservesExisting(t *testing.T) {
	handler := middleware.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", http.NoBody)
	req.Header.Set("X-Request-Id", "custom-id-123")
	handler.ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Request-Id"); got != "custom-id-123" {
		t.Fatalf("expected custom-id-123, got %s", got)
	}
}

func TestRecovery_Panic(t *testing.T) {
	handler := middleware.Recovery(logger.Nop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("test panic")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/test", http.NoBody))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if body["error"] != "Internal server error" {
		t.Fatalf("unexpected error message: %s", body["error"])
	}
}
