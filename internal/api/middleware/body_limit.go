package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CauehCraft/AgendaAberta/pkg/response"
)

// BodyLimit limite global de tamanho do corpo da requisição.
// maxBytes: tamanho máximo em bytes (ex.: 1<<20 = 1MB)
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()

		if c.IsAborted() {
			return
		}
		for _, err := range c.Errors {
			if err.Err != nil && err.Err.Error() == "http: request body too large" {
				response.Error(c, http.StatusRequestEntityTooLarge, 10005, "corpo da requisição muito grande")
				return
			}
		}
	}
}
