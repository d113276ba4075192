package middleware

import (
	"assistant-tools/pkg/log"
)

// Middleware holds the gin middlewares of the HTTP gateway.
type Middleware struct {
	l           log.Logger
	rateLimiter *rateLimiter
}

// New creates a Middleware. requestsPerMin <= 0 disables rate limiting.
func New(l log.Logger, requestsPerMin int) Middleware {
	return Middleware{
		l:           l,
		rateLimiter: newRateLimiter(requestsPerMin),
	}
}
