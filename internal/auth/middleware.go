package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ClaimsKey is the gin context key under which Gate stores the decoded
// token claims.
const ClaimsKey = "claims"

// Gate enforces bearer JWT tokens on protected routes. Any failure —
// missing header, malformed Bearer prefix, bad signature, unparseable
// payload — aborts with 403 before the handler runs. 401 is reserved
// for failed login credentials. No role check happens here: any
// authenticated identity passes.
func Gate(signingKey, issuer string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authz := c.GetHeader("Authorization")
		if authz == "" || !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied, token missing"})
			return
		}
		tokenStr := strings.TrimSpace(authz[len("bearer "):])
		claims, err := Parse(tokenStr, signingKey, issuer)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid token"})
			return
		}
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// FromContext returns the claims stored by Gate, or false when the
// request did not pass through it.
func FromContext(c *gin.Context) (Claims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return Claims{}, false
	}
	claims, ok := v.(Claims)
	return claims, ok
}
