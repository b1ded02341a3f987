package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comsvc/users-service/pkg/helpers"
	"github.com/comsvc/users-service/pkg/response"
)

// ComKeyHeader carries the shared secret that trusted internal callers
// present on every request.
const ComKeyHeader = "Com-X-Key"

// ComKey rejects any request whose Com-X-Key header does not match the
// shared secret. An absent header is treated as an empty key. Runs before
// any field validation or storage access.
func ComKey(keys *helpers.KeyValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := keys.Validate(c.GetHeader(ComKeyHeader)); err != nil {
			response.AbortErr(c, http.StatusUnauthorized, err.Error())
			return
		}
		c.Next()
	}
}
