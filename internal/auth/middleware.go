package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const moderatorKey = "moderator"

// Identity is the authenticated moderator attached to a request.
type Identity struct {
	ID       uint
	Username string
}

// RequireModerator rejects requests without a valid bearer token.
func RequireModerator(tokens *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication credentials were not provided."})
			return
		}
		claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			log.Warn().Err(err).Str("client_ip", c.ClientIP()).Msg("Rejected moderator token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token."})
			return
		}
		c.Set(moderatorKey, Identity{ID: claims.ModeratorID, Username: claims.Username})
		c.Next()
	}
}

// CurrentModerator returns the identity stored by RequireModerator.
func CurrentModerator(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(moderatorKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}
