package middleware

import (
	"roa-expert-system/pkg/log"
)

// Middleware bundles the gin middlewares with their dependencies.
type Middleware struct {
	l log.Logger
}

// New creates a new Middleware.
func New(l log.Logger) Middleware {
	return Middleware{l: l}
}
