package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"golden-wok/config"
	"golden-wok/dialogue"
	"golden-wok/messages"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Websocket hosts an interactive chat: one connection is one session, each
// text frame is one turn. Turns run synchronously per connection.
type Websocket struct {
	httpServer   *http.Server
	upgrader     websocket.Upgrader
	orchestrator *dialogue.Orchestrator
	config       *config.Config
}

func NewWebsocket(cfg *config.Config, orchestrator *dialogue.Orchestrator) *Websocket {
	s := &Websocket{
		orchestrator: orchestrator,
		config:       cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 4 * 1024,
			CheckOrigin: func(r *http.Request) bool {
				// Check allowed origins
				origin := r.Header.Get("Origin")
				for _, allowed := range cfg.AllowedOrigins {
					if allowed == "*" || allowed == origin {
						return true
					}
				}
				return false
			},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)

	// Determine which port to use
	port := cfg.WSPort
	if cfg.ServerType == "websocket" {
		// When running as the only server, use the main port
		port = cfg.Port
	}

	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
		// No ReadTimeout/WriteTimeout; these interfere with long-lived
		// WebSocket connections.
	}

	return s
}

// Start begins listening for connections
func (s *Websocket) Start() error {
	log.Printf("WebSocket server starting on %s", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server
func (s *Websocket) Shutdown(ctx context.Context) error {
	log.Println("Shutting down WebSocket server...")
	return s.httpServer.Shutdown(ctx)
}

func (s *Websocket) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	sessionID := uuid.New().String()
	log.Printf("New chat session: %s", sessionID)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[%s] read error: %v", sessionID[:8], err)
			}
			break
		}

		var chatReq messages.ChatRequest
		if err := sonic.Unmarshal(data, &chatReq); err != nil || chatReq.Text == "" {
			s.writeReply(conn, sessionID, messages.NewChatError(sessionID, "invalid message format"))
			continue
		}

		trigger := chatReq.Trigger
		if trigger == "" {
			trigger = "MainIntent"
		}

		resp := s.orchestrator.HandleTurn(r.Context(), &messages.TurnRequest{
			SessionID:        sessionID,
			Utterance:        chatReq.Text,
			Trigger:          trigger,
			InvocationSource: "WebSocket",
		})

		s.writeReply(conn, sessionID, messages.NewChatReply(sessionID, resp))
	}

	log.Printf("Chat session closed: %s", sessionID)
}

func (s *Websocket) writeReply(conn *websocket.Conn, sessionID string, reply *messages.ChatReply) {
	data, err := sonic.Marshal(reply)
	if err != nil {
		log.Printf("[%s] marshal reply failed: %v", sessionID[:8], err)
		return
	}
	conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Printf("[%s] write error: %v", sessionID[:8], err)
	}
}

func (s *Websocket) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, `{"status":"ok"}`)
}
