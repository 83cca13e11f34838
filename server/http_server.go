package server

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"golden-wok/config"
	"golden-wok/dialogue"
	"golden-wok/messages"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

// HTTP hosts the turn endpoint: one POST /turn per utterance.
type HTTP struct {
	httpServer   *http.Server
	orchestrator *dialogue.Orchestrator
	config       *config.Config
}

func NewHTTP(cfg *config.Config, orchestrator *dialogue.Orchestrator) *HTTP {
	s := &HTTP{
		orchestrator: orchestrator,
		config:       cfg,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/turn", s.handleTurn)
	mux.HandleFunc("/health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second, // a turn blocks on the model call
	}

	return s
}

// Start begins listening for connections
func (s *HTTP) Start() error {
	log.Printf("HTTP server starting on port %d", s.config.Port)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server
func (s *HTTP) Shutdown(ctx context.Context) error {
	log.Println("Shutting down HTTP server...")
	return s.httpServer.Shutdown(ctx)
}

func (s *HTTP) handleTurn(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 64*1024))
	if err != nil {
		http.Error(w, "request too large", http.StatusRequestEntityTooLarge)
		return
	}

	var req messages.TurnRequest
	if err := sonic.Unmarshal(body, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
	}
	if req.InvocationSource == "" {
		req.InvocationSource = "FulfillmentCodeHook"
	}

	resp := s.orchestrator.HandleTurn(r.Context(), &req)

	data, err := sonic.Marshal(resp)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Session-Id", req.SessionID)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *HTTP) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, `{"status":"ok"}`)
}
