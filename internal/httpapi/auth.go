package httpapi

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIKeyHeader carries the caller's API key.
const APIKeyHeader = "X-API-Key"

// KeyChecker decides whether an API key is accepted.
type KeyChecker interface {
	Valid(key string) bool
}

// StaticKey accepts exactly one configured key. An empty StaticKey accepts
// every request.
type StaticKey string

// Valid implements KeyChecker.
func (k StaticKey) Valid(key string) bool {
	if k == "" {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(k), []byte(key)) == 1
}

// RequireAPIKey rejects requests whose X-API-Key is not accepted by checker.
func RequireAPIKey(checker KeyChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !checker.Valid(c.GetHeader(APIKeyHeader)) {
			respondError(c, http.StatusUnauthorized, ErrNameUnauthorized, "Invalid or missing API key")
			return
		}
		c.Next()
	}
}
