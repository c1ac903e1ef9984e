package internal

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
)

func InitLogging() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// RequestLogger tags each request with a generated id, logs it on completion
// and records the HTTP metrics.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(sw, r)
		elapsed := time.Since(start)
		ObserveHTTPRequest(r.URL.Path, sw.status, elapsed)
		log.Printf("%s %s %d %s rid=%s", r.Method, r.URL.Path, sw.status, elapsed, requestID)
	})
}
