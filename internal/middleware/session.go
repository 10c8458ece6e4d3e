package middleware

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "budgetdash/internal/errors"
	"budgetdash/internal/session"
)

// SessionProvider returns the current session.
type SessionProvider interface {
	Current(ctx context.Context) (session.Session, error)
}

// RequireSession rejects requests when no session is stored. Otherwise the
// session is placed on the request context for the budget service client and
// its username on the Gin context.
func RequireSession(sessions SessionProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := sessions.Current(c.Request.Context())
		if err != nil {
			var appErr *apperrors.AppError
			if !errors.As(err, &appErr) {
				appErr = apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			c.AbortWithStatusJSON(appErr.StatusCode, ErrorBody(appErr))
			return
		}

		c.Request = c.Request.WithContext(session.NewContext(c.Request.Context(), sess))
		c.Set("username", sess.Username)
		c.Next()
	}
}
