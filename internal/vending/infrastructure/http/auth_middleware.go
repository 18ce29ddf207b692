package http

import (
	"net/http"
	"strings"

	"github.com/calinovidiu96/vending-machine/internal/pkg/jwt"
	"github.com/calinovidiu96/vending-machine/internal/pkg/logging"
	"github.com/calinovidiu96/vending-machine/internal/vending/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	authHeaderName = "Authorization"

	userIDContextKey    = "userId"
	sessionIDContextKey = "sessionId"
	roleContextKey      = "role"
)

// Caller is the identity the auth guard attached to a request.
type Caller struct {
	UserID    uuid.UUID
	SessionID string
	Role      domain.Role
}

type AuthGuard struct {
	tokenParser     jwt.TokenParser
	sessions        domain.SessionsRepository
	enforceSessions bool
	logger          logging.Logger
}

func NewAuthGuard(
	tokenParser jwt.TokenParser,
	sessions domain.SessionsRepository,
	enforceSessions bool,
	logger logging.Logger,
) *AuthGuard {
	return &AuthGuard{
		tokenParser:     tokenParser,
		sessions:        sessions,
		enforceSessions: enforceSessions,
		logger:          logger,
	}
}

// Middleware verifies the bearer token and, when sessions are enforced, that
// the session it was issued for has not been revoked.
func (g *AuthGuard) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		token, ok := bearerToken(c.GetHeader(authHeaderName))
		if !ok {
			abortWithError(c, g.logger, &domain.AuthenticationFailedError{Msg: authenticationMessage})
			return
		}

		claims, err := g.tokenParser.ParseToken(token)
		if err != nil {
			g.logger.Warn("failed to parse user token", "error", err.Error())
			abortWithError(c, g.logger, &domain.AuthenticationFailedError{Msg: authenticationMessage})
			return
		}

		c.Set(userIDContextKey, claims.UserID)
		c.Set(sessionIDContextKey, claims.SessionID)
		c.Set(roleContextKey, domain.Role(claims.Role))

		if g.enforceSessions {
			active, err := g.sessions.IsActive(c.Request.Context(), claims.SessionID)
			if err != nil {
				abortWithError(c, g.logger, err)
				return
			}

			if !active {
				abortWithError(c, g.logger, &domain.SessionInvalidError{Msg: "Session is no longer valid, please login again."})
				return
			}
		}

		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}

func callerFromContext(c *gin.Context) (Caller, bool) {
	userID, ok := c.Get(userIDContextKey)
	if !ok {
		return Caller{}, false
	}

	caller := Caller{
		UserID:    userID.(uuid.UUID),
		SessionID: c.GetString(sessionIDContextKey),
	}
	if role, ok := c.Get(roleContextKey); ok {
		caller.Role = role.(domain.Role)
	}

	return caller, true
}
