package middleware

import (
	"day-planner/pkg/log"
)

type Middleware struct {
	l           log.Logger
	jwtSecret   []byte
	rateLimiter *rateLimiter
}

func New(l log.Logger, jwtSecret string, rateLimitPerMin int) Middleware {
	return Middleware{
		l:           l,
		jwtSecret:   []byte(jwtSecret),
		rateLimiter: newRateLimiter(rateLimitPerMin),
	}
}
