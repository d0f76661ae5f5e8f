package Middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/DigesSuvagiya/meditrack-backend/Utils/Token"
)

// ResolveIdentity decodes the bearer token when one is present and valid,
// and attaches the caller id and role to the context. It never rejects the
// request: a missing or bad token just leaves the identity unset, and
// handlers fall back to a client-supplied userId. Kept open-by-default for
// compatibility with the existing clients.
func ResolveIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role, err := Token.ExtractTokenIdentity(c)
		if err == nil {
			c.Set("userID", userID)
			c.Set("userRole", role)
		}
		c.Next()
	}
}
