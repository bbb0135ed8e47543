package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"khata/internal/credentials"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupProtectedRouter(strategy credentials.Strategy) *gin.Engine {
	r := gin.New()
	r.GET("/protected", Auth(strategy), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": c.GetString(UsernameKey)})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthMissingHeader(t *testing.T) {
	r := setupProtectedRouter(credentials.NewJWTStrategy("secret", time.Hour))

	rec := doRequest(r, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMalformedHeader(t *testing.T) {
	r := setupProtectedRouter(credentials.NewJWTStrategy("secret", time.Hour))

	for _, header := range []string{"Bearer", "Token abc", "Bearer a b c"} {
		rec := doRequest(r, header)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected 401, got %d", header, rec.Code)
		}
	}
}

func TestAuthInvalidToken(t *testing.T) {
	r := setupProtectedRouter(credentials.NewJWTStrategy("secret", time.Hour))

	rec := doRequest(r, "Bearer not-a-token")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthExpiredToken(t *testing.T) {
	strategy := credentials.NewJWTStrategy("secret", -time.Minute)
	r := setupProtectedRouter(strategy)

	token, err := strategy.Issue("alice")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	rec := doRequest(r, "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", rec.Code)
	}
}

func TestAuthValidToken(t *testing.T) {
	strategy := credentials.NewJWTStrategy("secret", time.Hour)
	r := setupProtectedRouter(strategy)

	token, err := strategy.Issue("alice")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	rec := doRequest(r, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if body := rec.Body.String(); body != `{"username":"alice"}` {
		t.Errorf("unexpected body: %s", body)
	}
}
