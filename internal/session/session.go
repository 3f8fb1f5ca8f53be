package session

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
)

var (
	ErrNoAuth           = errors.New("User not authenticated.")
	ErrUnexpectedMethod = errors.New("unexpected signing method")

	callerKey CallerKey = "callerKey"
)

type CallerKey string

// Caller - тот, кто вызвал эндпоинт, по данным его токена.
type Caller struct {
	UserID string `json:"user_id"`
	Admin  bool   `json:"admin"`
}

//go:generate mockgen -source=session.go -destination=mock_session.go -package=session

// CallerVerifier проверяет bearer токен и возвращает вызывающего.
type CallerVerifier interface {
	Verify(ctx context.Context, token string) (*Caller, error)
}

// IDTokenVerifier - часть *auth.Client из firebase.
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// BearerToken достает токен из заголовка Authorization.
func BearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoAuth
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", ErrNoAuth
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
	if token == "" {
		return "", ErrNoAuth
	}

	return token, nil
}

func ContextWithCaller(ctx context.Context, c *Caller) context.Context {
	return context.WithValue(ctx, callerKey, c)
}

func CallerFromContext(ctx context.Context) (*Caller, bool) {
	c, ok := ctx.Value(callerKey).(*Caller)
	return c, ok
}

// Значение claim admin может прийти как bool, проверяем строго.
func isAdminClaim(v interface{}) bool {
	admin, ok := v.(bool)
	return ok && admin
}
