// Package dialogue runs one conversational turn end to end: route the mode,
// load state, build the prompt, invoke the model, extract and merge the
// order delta, sanitize the reply, persist, respond.
package dialogue

import (
	"context"
	"fmt"
	"log"
	"time"

	"golden-wok/menu"
	"golden-wok/messages"
	"golden-wok/order"
	"golden-wok/prompt"
	"golden-wok/sanitize"
	"golden-wok/session"
)

// pinnedModelID is the only model this orchestrator will invoke. The check
// against the configured id is a guardrail against cost-incurring config
// drift; changing the model deliberately means changing this constant too.
const pinnedModelID = "gemini-2.0-flash-lite"

const (
	unavailableReply = "Service temporarily unavailable."

	// Shown when sanitization leaves nothing to display (the whole reply
	// was markup).
	emptyReplyFallback = "Got it! Anything else I can help you with?"
)

// Invoker is the model transport: one prompt in, the raw reply out.
type Invoker interface {
	Invoke(ctx context.Context, prompt string) (string, error)
}

// Config carries the orchestrator's routing table and the configured model.
type Config struct {
	ModelID string
	// Routes maps a trigger name to a conversational mode. Unlisted
	// triggers get DefaultMode.
	Routes      map[string]prompt.Mode
	DefaultMode prompt.Mode
}

// DefaultRoutes reproduces the deployed routing: both recognized triggers
// run the full ordering flow (the fallback trigger catches complex ordering
// phrasing, so it needs the menu too), while the inquiry mode stays
// reachable through its own trigger.
func DefaultRoutes() map[string]prompt.Mode {
	return map[string]prompt.Mode{
		"MainIntent":     prompt.ModeOrdering,
		"FallbackIntent": prompt.ModeOrdering,
		"GeneralInquiry": prompt.ModeInquiry,
	}
}

// Orchestrator executes turns. All collaborators are injected; it holds no
// state of its own between turns.
type Orchestrator struct {
	model Invoker
	store session.Store
	menu  menu.Provider
	cfg   Config
	now   func() time.Time
}

// New wires an orchestrator. A nil Routes map falls back to DefaultRoutes.
func New(model Invoker, store session.Store, menuProvider menu.Provider, cfg Config) *Orchestrator {
	if cfg.Routes == nil {
		cfg.Routes = DefaultRoutes()
	}
	return &Orchestrator{
		model: model,
		store: store,
		menu:  menuProvider,
		cfg:   cfg,
		now:   time.Now,
	}
}

// HandleTurn processes one utterance and always returns a well-formed
// response; no failure below the guard escapes to the caller.
//
// Persistence is read-then-write with no locking: two concurrent turns for
// the same session id race and the last writer wins. That's an accepted
// limitation of the store contract, not something this layer papers over.
func (o *Orchestrator) HandleTurn(ctx context.Context, req *messages.TurnRequest) *messages.TurnResponse {
	if o.cfg.ModelID != pinnedModelID {
		log.Printf("BLOCKED: model %q is not the pinned %q, refusing turn", o.cfg.ModelID, pinnedModelID)
		return messages.NewFailed(unavailableReply)
	}

	mode := o.route(req.Trigger)
	state := o.store.Load(ctx, req.SessionID)

	menuText := ""
	if mode == prompt.ModeOrdering {
		menuText = o.menu.MenuText(ctx)
	}

	p := prompt.Build(mode, menuText, state.History, state.Order, req.Utterance)

	raw, err := o.model.Invoke(ctx, p)
	if err != nil {
		// The turn still completes: the apology becomes the bot text and
		// is persisted like any other reply.
		raw = fmt.Sprintf("I apologize, I'm having technical difficulties. Error: %v", err)
	}

	delta := order.ExtractDelta(raw)
	newOrder := order.Merge(state.Order, delta)

	reply := sanitize.Clean(raw)
	if reply == "" {
		reply = emptyReplyFallback
	}

	state.History = append(state.History, session.Turn{
		User:      req.Utterance,
		Bot:       reply,
		Timestamp: o.now().UTC().Format(time.RFC3339),
		Mode:      mode.String(),
	})
	state.Order = newOrder
	state.LastUpdated = o.now().UTC().Format(time.RFC3339)

	// Best effort: a failed save loses this turn's state but must not
	// fail the turn. The log line is the operator's only signal.
	if err := o.store.Save(ctx, req.SessionID, state); err != nil {
		log.Printf("session %s: save failed, turn state lost: %v", req.SessionID, err)
	}

	return messages.NewFulfilled(reply)
}

func (o *Orchestrator) route(trigger string) prompt.Mode {
	if mode, ok := o.cfg.Routes[trigger]; ok {
		return mode
	}
	return o.cfg.DefaultMode
}
