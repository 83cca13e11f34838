package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golden-wok/config"
	"golden-wok/dialogue"
	"golden-wok/gemini"
	"golden-wok/menu"
	"golden-wok/prompt"
	"golden-wok/server"
	"golden-wok/session"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	// Model transport
	model, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}

	// Session store and menu: Redis when reachable, in-memory/fallback
	// otherwise. The agent keeps serving either way.
	var store session.Store
	var menuProvider menu.Provider

	redisStore, err := session.NewRedisStore(cfg.RedisURL, cfg.RedisPassword, cfg.SessionTTL)
	if err != nil {
		log.Printf("Redis unavailable, using in-memory sessions: %v", err)
		store = session.NewMemoryStore()
		menuProvider = menu.Static("")
	} else {
		defer redisStore.Close()
		store = redisStore
		menuProvider = menu.NewRedisProvider(redisStore.Client())
	}

	// Routing table: deployed defaults plus any configured inquiry triggers
	routes := dialogue.DefaultRoutes()
	for _, trigger := range cfg.InquiryTriggers {
		routes[trigger] = prompt.ModeInquiry
	}

	orchestrator := dialogue.New(model, store, menuProvider, dialogue.Config{
		ModelID:     cfg.GeminiModel,
		Routes:      routes,
		DefaultMode: prompt.ModeOrdering,
	})

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	switch cfg.ServerType {
	case "http":
		srv := server.NewHTTP(cfg, orchestrator)

		go func() {
			<-sigChan
			log.Println("\nReceived shutdown signal...")
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Printf("Server shutdown error: %v", err)
			}
		}()

		if err := srv.Start(); err != nil && err.Error() != "http: Server closed" {
			log.Fatalf("Server error: %v", err)
		}

	case "websocket":
		wsSrv := server.NewWebsocket(cfg, orchestrator)

		go func() {
			<-sigChan
			log.Println("\nReceived shutdown signal...")
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			if err := wsSrv.Shutdown(shutdownCtx); err != nil {
				log.Printf("WebSocket server shutdown error: %v", err)
			}
		}()

		if err := wsSrv.Start(); err != nil && err.Error() != "http: Server closed" {
			log.Fatalf("WebSocket server error: %v", err)
		}

	case "both":
		srv := server.NewHTTP(cfg, orchestrator)
		wsSrv := server.NewWebsocket(cfg, orchestrator)

		go func() {
			<-sigChan
			log.Println("\nReceived shutdown signal...")
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Printf("HTTP server shutdown error: %v", err)
			}
			if err := wsSrv.Shutdown(shutdownCtx); err != nil {
				log.Printf("WebSocket server shutdown error: %v", err)
			}
		}()

		// Start WebSocket server in background
		go func() {
			if err := wsSrv.Start(); err != nil && err.Error() != "http: Server closed" {
				log.Fatalf("WebSocket server error: %v", err)
			}
		}()

		// Start HTTP server (blocks)
		if err := srv.Start(); err != nil && err.Error() != "http: Server closed" {
			log.Fatalf("Server error: %v", err)
		}

	default:
		log.Fatalf("Unknown SERVER_TYPE: %s", cfg.ServerType)
	}

	log.Println("Server stopped")
}
