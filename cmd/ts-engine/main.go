package main

import (
	"context"
	"encoding/json"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "TrafficScope/api/gen/v1"
	"TrafficScope/internal/collector"
	"TrafficScope/internal/config"
	"TrafficScope/internal/engine"
	"TrafficScope/internal/query"
	"TrafficScope/internal/snapshot"

	"github.com/gorilla/mux"
	"google.golang.org/grpc"
)

func main() {
	log.Println("Starting ts-engine...")

	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Println("Configuration loaded successfully.")

	col := collector.New()
	if err := col.ConfigureZone(cfg.Zone.Name, cfg.Zone.SizeBytes, cfg.Zone.NumShards); err != nil {
		log.Fatalf("Failed to configure zone: %v", err)
	}
	log.Printf("Zone %q configured with %d bytes.", cfg.Zone.Name, cfg.Zone.SizeBytes)

	eng, err := engine.NewEngine(cfg, col)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}
	if err := eng.Start(); err != nil {
		log.Fatalf("Failed to start engine: %v", err)
	}

	dumpWriter := snapshot.NewWriter()

	// Run gRPC server
	grpcServer := grpc.NewServer()
	v1.RegisterQueryServiceServer(grpcServer, query.NewService(col))

	lis, err := net.Listen("tcp", cfg.API.GrpcListenAddr)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", cfg.API.GrpcListenAddr, err)
	}
	go func() {
		log.Printf("gRPC API server starting on %s", cfg.API.GrpcListenAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC: %v", err)
		}
	}()

	// Run HTTP server
	httpServer := &http.Server{
		Addr:    cfg.API.HTTPListenAddr,
		Handler: newHTTPHandler(col, dumpWriter, cfg.Snapshot.RootPath),
	}
	go func() {
		log.Printf("HTTP server starting on %s", cfg.API.HTTPListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// SIGUSR1 triggers an on-disk dump; SIGINT/SIGTERM shut down.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGUSR1)

	for sig := range sigChan {
		if sig == syscall.SIGUSR1 {
			log.Println("SIGUSR1 received, dumping snapshot...")
			if err := dumpWriter.WriteSnapshot(col, cfg.Snapshot.RootPath); err != nil {
				log.Printf("Snapshot dump failed: %v", err)
			}
			continue
		}
		break
	}

	log.Println("Shutdown signal received, stopping...")

	grpcServer.GracefulStop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	httpServer.Shutdown(ctx)

	eng.Stop()

	if cfg.Snapshot.RootPath != "" {
		if err := dumpWriter.WriteSnapshot(col, cfg.Snapshot.RootPath); err != nil {
			log.Printf("Final snapshot dump failed: %v", err)
		}
	}

	if err := col.Shutdown(); err != nil {
		log.Printf("Collector shutdown failed: %v", err)
	}
	log.Println("Shutdown complete.")
}

func newHTTPHandler(col *collector.Collector, dumpWriter *snapshot.Writer, dumpRoot string) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4")
		if err := col.WriteSnapshot(w); err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
		}
	}).Methods("GET")

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods("GET")

	r.HandleFunc("/api/v1/zones/{zone}", func(w http.ResponseWriter, r *http.Request) {
		zone := mux.Vars(r)["zone"]
		view, ok := col.ZoneView(zone)
		if !ok {
			http.Error(w, "zone not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(view)
	}).Methods("GET")

	r.HandleFunc("/debug/dump", func(w http.ResponseWriter, r *http.Request) {
		if err := dumpWriter.WriteSnapshot(col, dumpRoot); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("snapshot written"))
	}).Methods("POST")

	return r
}
