package server

import (
	"net/http"
	"time"

	"github.com/hupe1980/llmcouncil/logging"
)

type apiHandler func(http.ResponseWriter, *http.Request) *apiError

func jsonErrorMiddleware(logger logging.Logger, next apiHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := next(w, r); err != nil {
			if err.Status >= http.StatusInternalServerError {
				logger.Error("request failed", "path", r.URL.Path, "status", err.Status, "error", err.Message)
			}
			writeJSONError(w, err)
		}
	}
}

func methodNotAllowed(w http.ResponseWriter, allow string) *apiError {
	w.Header().Set("Allow", allow)
	return &apiError{Status: http.StatusMethodNotAllowed, Message: "method not allowed"}
}

// allowOnly answers every request with 405 and the given Allow header. It is
// registered on the method-less form of each route.
func allowOnly(allow string) apiHandler {
	return func(w http.ResponseWriter, _ *http.Request) *apiError {
		return methodNotAllowed(w, allow)
	}
}

// corsMiddleware allows any origin, method and header. Preflight requests
// never reach the router.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "*")
		h.Set("Access-Control-Expose-Headers", discussionIDHeader)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func loggingMiddleware(logger logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Debug("api request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
