package middleware

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/valyala/fasthttp"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func runMiddleware(authorization string) (*fasthttp.RequestCtx, bool) {
	var called bool
	handler := JWTAuth(testSecret, nil)(func(ctx *fasthttp.RequestCtx) {
		called = true
	})

	ctx := &fasthttp.RequestCtx{}
	if authorization != "" {
		ctx.Request.Header.Set("Authorization", authorization)
	}
	handler(ctx)
	return ctx, called
}

func TestValidTokenInjectsUserID(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"user_id": "u1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	ctx, called := runMiddleware("Bearer " + token)
	if !called {
		t.Fatal("expected handler to be called")
	}
	if got := string(ctx.Request.Header.Peek(UserIDHeader)); got != "u1" {
		t.Errorf("expected user id u1, got %q", got)
	}
}

func TestMissingTokenRejected(t *testing.T) {
	ctx, called := runMiddleware("")
	if called {
		t.Fatal("handler must not run without a token")
	}
	if ctx.Response.StatusCode() != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", ctx.Response.StatusCode())
	}
}

func TestWrongSecretRejected(t *testing.T) {
	token := signToken(t, "other-secret", jwt.MapClaims{
		"user_id": "u1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	ctx, called := runMiddleware("Bearer " + token)
	if called {
		t.Fatal("handler must not run with a forged token")
	}
	if ctx.Response.StatusCode() != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", ctx.Response.StatusCode())
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"user_id": "u1",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})

	_, called := runMiddleware("Bearer " + token)
	if called {
		t.Fatal("handler must not run with an expired token")
	}
}

func TestSpoofedIdentityHeaderStripped(t *testing.T) {
	handler := JWTAuth(testSecret, nil)(func(ctx *fasthttp.RequestCtx) {})

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.Set(UserIDHeader, "attacker")
	handler(ctx)

	if got := string(ctx.Request.Header.Peek(UserIDHeader)); got == "attacker" {
		t.Error("client-supplied identity header must be stripped")
	}
}
