package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/pricex_locale/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionTokenHeader carries the signed session token in both directions.
const SessionTokenHeader = "X-Session-Token"

const sessionTokenIssuer = "pricex-locale"

// SessionMiddleware resolves the visitor's session from the X-Session-Token header.
// A missing, expired or tampered token starts a new session. The token in effect is
// always echoed back in the response header.
func SessionMiddleware(secret string, expiry time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		token := c.GetHeader(SessionTokenHeader)
		sessionID := ""
		if token != "" {
			id, err := utils.ParseSessionToken(token, secret)
			switch {
			case err == nil:
				sessionID = id
			case errors.Is(err, jwt.ErrTokenExpired):
				logger.Info("Session token expired, starting a new session")
			default:
				logger.Warn("Invalid session token, starting a new session", slog.String("error", err.Error()))
			}
		}

		if sessionID == "" {
			sessionID = uuid.NewString()
			issued, err := utils.GenerateSessionToken(sessionID, secret, expiry, sessionTokenIssuer)
			if err != nil {
				logger.Error("Failed to sign session token", slog.String("error", err.Error()))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
				return
			}
			token = issued
		}
		c.Header(SessionTokenHeader, token)

		enrichedLogger := logger.With(slog.String("session_id", sessionID))
		ctx := WithLogger(WithSessionID(c.Request.Context(), sessionID), enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
