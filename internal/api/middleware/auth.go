package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DraymeM/tiomi/pkg/jwt"
	"github.com/DraymeM/tiomi/pkg/redis"
	"github.com/DraymeM/tiomi/pkg/response"
)

// JWTAuth extracts and validates the access token from
// Authorization: Bearer <token>. rdb may be nil; the blacklist check is then
// skipped (degraded mode).
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "malformed authorization header")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "invalid or expired token")
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			response.Unauthorized(c, 10002, "invalid token type")
			c.Abort()
			return
		}

		if rdb != nil {
			revoked, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && revoked {
				response.Unauthorized(c, 10002, "token revoked")
				c.Abort()
				return
			}
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("superuser", claims.Superuser)
		c.Set("jti", claims.ID)
		c.Set("token_expires_at", claims.ExpiresAt.Time)

		c.Next()
	}
}

// SuperuserOnly rejects callers without the superuser flag. This is the
// authoritative check for destructive operations; any client-side gate is
// presentation only.
func SuperuserOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get("superuser")
		if !exists {
			response.Unauthorized(c, 10002, "not authenticated")
			c.Abort()
			return
		}

		if superuser, ok := v.(bool); !ok || !superuser {
			response.Forbidden(c, 10003, "superuser required")
			c.Abort()
			return
		}

		c.Next()
	}
}
