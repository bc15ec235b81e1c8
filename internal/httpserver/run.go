package httpserver

import (
	"context"
	"fmt"
)

// Run maps all handlers and starts serving. Blocks until the listener
// stops.
func (srv *HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return fmt.Errorf("failed to map handlers: %w", err)
	}

	addr := fmt.Sprintf(":%d", srv.port)
	srv.l.Infof(context.Background(), "HTTP server listening on %s", addr)

	return srv.gin.Run(addr)
}
