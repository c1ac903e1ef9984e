package logbook

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/azolika/LogbookTestApp/internal"
)

var (
	server *http.Server
)

// NewMux builds the HTTP routing for a Service: one endpoint per pipeline
// and output format, plus vehicles, health and metrics.
func NewMux(svc *Service) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", handleHealth)
	mux.HandleFunc("/api/vehicles.json", svc.handleVehicles)
	for _, format := range []string{"json", "csv", "xlsx", "pdf"} {
		mux.HandleFunc("/api/logbook/events."+format, svc.handleRun(pipelineEvents, format))
		mux.HandleFunc("/api/logbook/trips."+format, svc.handleRun(pipelineTrips, format))
	}
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func StartServer(svc *Service) {
	addr := fmt.Sprintf(":%d", svc.cfg.Server.Port)
	server = &http.Server{
		Addr:              addr,
		Handler:           internal.RequestLogger(NewMux(svc)),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", addr)
}

func HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("server shutdown error: %v", err)
		} else {
			log.Printf("server shut down successfully")
		}
	}
}
