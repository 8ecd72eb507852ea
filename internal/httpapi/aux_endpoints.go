package httpapi

import (
	"context"
	"net/http"
)

// readyChecker is implemented by snapshot stores that can probe their backend.
type readyChecker interface {
	Ready(ctx context.Context) error
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

// readyz reports 503 while the persistence backend is unreachable. Backends
// without a probe are always ready.
func (s *Server) readyz(w http.ResponseWriter, r *http.Request) {
	if rc, ok := s.saver.(readyChecker); ok {
		if err := rc.Ready(r.Context()); err != nil {
			writeErr(w, http.StatusServiceUnavailable, "not ready", "")
			return
		}
	}
	w.WriteHeader(http.StatusOK)
}
