package credentials

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "khata/internal/errors"
)

// Claims represents the claims embedded in an issued token.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTStrategy implements Strategy with HMAC-signed stateless tokens.
// Tokens carry the username and an absolute expiry; Revoke is a no-op
// because there is no server-side state to clear.
type JWTStrategy struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTStrategy creates a JWTStrategy signing with the given secret.
// Tokens expire ttl after issue.
func NewJWTStrategy(secret string, ttl time.Duration) *JWTStrategy {
	return &JWTStrategy{secret: []byte(secret), ttl: ttl}
}

// Issue signs a new token for the given username.
func (s *JWTStrategy) Issue(username string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "khata-api",
			Subject:   username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and signature-checks a token, returning the username it was
// issued for. Malformed, tampered, or expired tokens all fail the same way.
func (s *JWTStrategy) Verify(credential string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(credential, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInvalidToken, err)
	}
	if !token.Valid || claims.Username == "" {
		return "", apperrors.ErrInvalidToken
	}

	return claims.Username, nil
}

// Revoke is a no-op: the token stays valid until expiry and the client is
// expected to discard it.
func (s *JWTStrategy) Revoke(string) error { return nil }
