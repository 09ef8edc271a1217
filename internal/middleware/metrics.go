package middleware

import (
	"net/http"
	"time"
)

// RequestObserver records finished requests.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, start time.Time)
}

// Metrics reports every request to observer, labelled by its route pattern
// so path parameters do not explode label cardinality.
func Metrics(observer RequestObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			capture := newResponseCapture(w, false)

			next.ServeHTTP(capture, r)

			observer.ObserveRequest(r.Method, routeOf(r), capture.statusCode, start)
		})
	}
}

// Chain wraps h so the first middleware is the outermost.
func Chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
