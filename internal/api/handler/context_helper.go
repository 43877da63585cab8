package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DraymeM/tiomi/pkg/response"
)

// MustGetUserID extracts the authenticated user id from the Gin context.
// Returns false (after writing a 401) when the JWT middleware did not run;
// callers should return immediately in that case.
func MustGetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return 0, false
	}
	id, ok := v.(int64)
	if !ok || id <= 0 {
		response.Unauthorized(c, 10002, "not authenticated")
		return 0, false
	}
	return id, true
}

// MustGetTokenInfo extracts the token id and expiry needed for revocation.
func MustGetTokenInfo(c *gin.Context) (string, time.Time, bool) {
	jtiVal, exists := c.Get("jti")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", time.Time{}, false
	}
	jti, ok := jtiVal.(string)
	if !ok || jti == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", time.Time{}, false
	}

	expVal, exists := c.Get("token_expires_at")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", time.Time{}, false
	}
	expiresAt, ok := expVal.(time.Time)
	if !ok {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", time.Time{}, false
	}

	return jti, expiresAt, true
}
