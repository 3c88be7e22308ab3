package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"ppe-inventory/internal/model"
	"ppe-inventory/pkg/log"
	"ppe-inventory/pkg/response"
)

// Recovery turns a panic into a 500 carrying diagnostic context. The panic
// text is only exposed outside production. Nothing is retried.
func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			ctx := c.Request.Context()
			m.l.Errorf(ctx, "panic on %s %s: %v\n%s", c.Request.Method, c.Request.URL.Path, rec, debug.Stack())

			diag := gin.H{
				"request_id": log.RequestID(ctx),
				"path":       c.Request.URL.Path,
			}
			if !model.IsProduction(m.environment) {
				diag["panic"] = fmt.Sprint(rec)
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.Resp{
				ErrorCode: response.InternalServerErrorCode,
				Message:   response.DefaultErrorMessage,
				Data:      diag,
			})
		}()
		c.Next()
	}
}
