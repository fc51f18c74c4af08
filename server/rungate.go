package server

import (
	"context"
	"net/http"
	"time"
)

type RunGateOptions struct {
	Max     int
	Timeout time.Duration
}

// RunGateMiddleware limita execuções de alocação simultâneas com um semáforo
// de channel. Max <= 0 desliga o gate. Timeout 0 espera até o request cancelar.
func RunGateMiddleware(opts RunGateOptions) func(next http.Handler) http.Handler {
	if opts.Max <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	sem := make(chan struct{}, opts.Max)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if opts.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
				defer cancel()
			}

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
				next.ServeHTTP(w, r)
			case <-ctx.Done():
				http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			}
		})
	}
}
