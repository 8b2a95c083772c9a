package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"mockup-editor-be/internal/bootstrap"
	"mockup-editor-be/internal/config"
	"mockup-editor-be/internal/server"
	"mockup-editor-be/internal/tracer"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(ctx, cfg)
	log := container.Logger
	defer log.Sync()
	defer container.Close()

	// 3. Initialize Tracer
	shutdownTracer := tracer.InitTracer(ctx, cfg.Tracing, log)
	defer shutdownTracer(context.Background())

	// 4. Start Background Services
	if err := container.ConsumerService.Consume(ctx); err != nil {
		log.Error("Main", "Failed to start consumer", map[string]interface{}{"error": err.Error()})
		return
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		<-ctx.Done()
		log.Info("Main", "Shutting down", nil)
		if err := srv.Shutdown(); err != nil {
			log.Error("Main", "Server shutdown failed", map[string]interface{}{"error": err.Error()})
		}
	}()

	// 6. Run Server
	if err := srv.Run(); err != nil {
		log.Error("Main", "Server stopped", map[string]interface{}{"error": err.Error()})
	}
}
