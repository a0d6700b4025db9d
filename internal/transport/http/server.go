// Package httptransport owns HTTP server construction and middleware.
package httptransport

import (
	"net/http"
	"time"
)

// ServerConfig contains tunables for the HTTP server.
type ServerConfig struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// NewServer creates *http.Server with the handler wrapped in the given
// middleware chain, first middleware outermost.
func NewServer(cfg ServerConfig, handler http.Handler, middlewares ...Middleware) *http.Server {
	return &http.Server{
		Addr:         cfg.Address,
		Handler:      Chain(handler, middlewares...),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}
