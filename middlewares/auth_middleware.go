package middlewares

import (
	"net/http"
	"strings"

	"nutritrack/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middlewares.
const (
	CtxUserID  = "userID"
	CtxEmail   = "email"
	CtxName    = "name"
	CtxPicture = "picture"
)

// bearerToken reads "Authorization: Bearer <t>", falling back to ?token=
// for websocket clients that cannot set headers.
func bearerToken(c *gin.Context) (string, bool) {
	if h := c.GetHeader("Authorization"); h != "" {
		if !strings.HasPrefix(h, "Bearer ") {
			return "", false
		}
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer ")), true
	}
	if t := c.Query("token"); t != "" {
		return t, true
	}
	return "", false
}

func setClaims(c *gin.Context, claims *utils.TokenClaims) {
	c.Set(CtxUserID, claims.UID())
	c.Set(CtxEmail, claims.Email)
	c.Set(CtxName, claims.Name)
	c.Set(CtxPicture, claims.Picture)
}

// AuthMiddleware rejects requests without a valid token.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured: JWT_SECRET not set"})
			return
		}
		tokenString, ok := bearerToken(c)
		if !ok || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		claims, err := utils.ParseJWT(secret, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth sets the caller identity when a valid bearer token is present
// and lets everything else through untouched.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearerToken(c); ok && secret != "" {
			if claims, err := utils.ParseJWT(secret, tokenString); err == nil {
				setClaims(c, claims)
			}
		}
		c.Next()
	}
}

// UserID returns the authenticated uid, or "".
func UserID(c *gin.Context) string {
	return c.GetString(CtxUserID)
}
