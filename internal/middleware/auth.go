package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"khata/internal/credentials"
	apperrors "khata/internal/errors"
)

// Context keys set by the auth middleware.
const (
	UsernameKey   = "username"
	CredentialKey = "credential"
)

// Auth returns a Gin middleware that requires a valid bearer credential.
// On success it stores the authenticated username and the raw credential in
// the context; on failure it aborts with 401 before the handler runs.
func Auth(strategy credentials.Strategy) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithAppError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Authorization header is required"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortWithAppError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid authorization header format"))
			return
		}

		username, err := strategy.Verify(parts[1])
		if err != nil {
			var appErr *apperrors.AppError
			if !errors.As(err, &appErr) {
				appErr = apperrors.ErrInvalidToken
			}
			abortWithAppError(c, appErr)
			return
		}

		c.Set(UsernameKey, username)
		c.Set(CredentialKey, parts[1])
		c.Next()
	}
}

func abortWithAppError(c *gin.Context, appErr *apperrors.AppError) {
	c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}

// statusFor guards against a zero status sneaking into a response.
func statusFor(appErr *apperrors.AppError) int {
	if appErr.StatusCode == 0 {
		return http.StatusInternalServerError
	}
	return appErr.StatusCode
}
