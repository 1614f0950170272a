package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deidaraiorek/deistem/internal/api"
	"github.com/deidaraiorek/deistem/internal/storage"
)

func main() {
	port := flag.Int("port", 3000, "port")
	cachePath := flag.String("cache", "", "sqlite stem cache (optional)")
	logPath := flag.String("log", "", "also append log output to this file")
	flag.Parse()

	if *logPath != "" {
		logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer logFile.Close()

		log.SetOutput(io.MultiWriter(os.Stdout, logFile))
	}

	var cache *storage.StemCache
	if *cachePath != "" {
		log.Println("Opening stem cache...")
		var err error
		cache, err = storage.NewStemCache(*cachePath)
		if err != nil {
			log.Fatalf("Failed to open stem cache: %v", err)
		}
		defer cache.Close()
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           api.NewServer(cache).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopped := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer close(stopped)
		<-sigChan
		log.Println("Shutting down gracefully...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("API listening on :%d", *port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server error: %v", err)
	}

	<-stopped

	log.Println("Server stopped")
}
