package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/df07/glimmer/pkg/config"
	"github.com/df07/glimmer/pkg/output"
	"github.com/df07/glimmer/web/server"
)

func main() {
	// Parse command line flags
	envFile := flag.String("env", ".env", "Environment file to load")
	addr := flag.String("addr", "", "Listen address (overrides GLIMMER_ADDR)")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	if *addr != "" {
		cfg.ServerAddress = *addr
	}

	var sink output.Sink = output.FileSink{Dir: cfg.OutputDir}
	if cfg.S3.Enabled() {
		uploader, err := output.NewS3Uploader(cfg.S3, log.Default())
		if err != nil {
			log.Fatalf("S3 error: %v", err)
		}
		sink = uploader
	}

	webServer := server.NewServer(cfg, sink)
	log.Printf("Glimmer Web Server")

	go func() {
		if err := webServer.Start(); err != nil {
			log.Printf("Error starting server: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := webServer.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
