package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success wraps data under key.
func Success(key string, data any) Envelope {
	return Envelope{
		Status: StatusSuccess,
		Key:    key,
		Data:   data,
	}
}

// SuccessFields places the fields of data, which must encode as a JSON
// object, next to status.
func SuccessFields(data any) Envelope {
	return Envelope{
		Status: StatusSuccess,
		Data:   data,
	}
}

// Fail returns an error envelope carrying msg.
func Fail(msg string) Envelope {
	return Envelope{
		Status:  StatusError,
		Message: msg,
	}
}

// Failf formats an error envelope.
func Failf(format string, args ...any) Envelope {
	return Fail(fmt.Sprintf(format, args...))
}

// FromError converts err to an error envelope.
func FromError(err error) Envelope {
	return Fail(err.Error())
}

// InvalidJSON is the envelope for undecodable request lines.
func InvalidJSON() Envelope {
	return Fail(MessageInvalidJSON)
}

// Write sends env as the HTTP body: 200 for success, 400 otherwise.
func Write(c *gin.Context, env Envelope) {
	if env.OK() {
		c.JSON(http.StatusOK, env)
		return
	}
	c.JSON(http.StatusBadRequest, env)
}

// TooManyRequests sends 429 with an error envelope.
func TooManyRequests(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, FromError(err))
}
