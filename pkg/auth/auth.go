package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

// JWTKey signs access tokens. Overridden from config at startup.
var JWTKey = []byte("bookclub-secret")

type Claims struct {
	UserID int    `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type ctxKey int

const (
	userIDKey ctxKey = iota
	emailKey
)

var ErrNoAuthContext = errors.New("no authenticated user in context")

func SetAuthContext(ctx context.Context, userID int, email string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, emailKey, email)
}

func GetUserID(ctx context.Context) (int, error) {
	id, ok := ctx.Value(userIDKey).(int)
	if !ok {
		return 0, ErrNoAuthContext
	}
	return id, nil
}

func GetEmail(ctx context.Context) (string, error) {
	email, ok := ctx.Value(emailKey).(string)
	if !ok {
		return "", ErrNoAuthContext
	}
	return email, nil
}
