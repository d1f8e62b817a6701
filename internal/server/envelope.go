package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	dataKey    = "envelope.data"
	messageKey = "envelope.message"
)

// Envelope is the body of every API response.
type Envelope struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Data       any    `json:"data"`
}

// apiError carries a status code and a message that is safe to show to clients.
type apiError struct {
	status int
	detail string
}

func (e *apiError) Error() string { return e.detail }

// respond records a successful payload for EnvelopeMiddleware to write.
func respond(c *gin.Context, message string, data any) {
	c.Set(dataKey, data)
	if message != "" {
		c.Set(messageKey, message)
	}
	c.Status(http.StatusOK)
}

// fail records an error for EnvelopeMiddleware and stops the handler chain.
// An empty detail is replaced by the status text.
func fail(c *gin.Context, status int, detail string) {
	_ = c.Error(&apiError{status: status, detail: detail})
	c.Status(status)
	c.Abort()
}

// EnvelopeMiddleware writes the response of every request as an Envelope.
// Handlers call respond or fail instead of writing the body themselves.
func EnvelopeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if c.Writer.Written() {
			return
		}

		status := c.Writer.Status()
		env := Envelope{StatusCode: status, Message: "OK"}
		if data, ok := c.Get(dataKey); ok {
			env.Data = data
		}
		if msg := c.GetString(messageKey); msg != "" {
			env.Message = msg
		}
		if status >= http.StatusBadRequest {
			env.Message = http.StatusText(status)
			if last := c.Errors.Last(); last != nil {
				var apiErr *apiError
				if errors.As(last.Err, &apiErr) && apiErr.detail != "" {
					env.Message = apiErr.detail
				}
			}
		}
		c.JSON(status, env)
	}
}
