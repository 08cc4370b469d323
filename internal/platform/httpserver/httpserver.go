// Package httpserver builds the service's http.Server from config.
package httpserver

import (
	"net/http"
	"time"

	"estate/internal/platform/config"
)

const readHeaderTimeout = 5 * time.Second

// New returns a server listening on cfg.Addr. Zero timeouts in cfg are left
// unset on the server, which net/http treats as no limit.
func New(cfg config.Server, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}
