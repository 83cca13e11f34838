// Package session persists per-session conversation history and the
// in-progress order.
package session

import (
	"context"

	"golden-wok/order"
)

// Turn is one completed user/bot exchange. Immutable once appended.
type Turn struct {
	User      string `json:"user"`
	Bot       string `json:"bot"`
	Timestamp string `json:"timestamp"` // RFC3339
	Mode      string `json:"mode,omitempty"`
}

// State is everything persisted for one session. Order is nil until the
// first item lands ("no order yet" rather than an empty order).
type State struct {
	History     []Turn       `json:"history"`
	Order       *order.Order `json:"currentOrder,omitempty"`
	LastUpdated string       `json:"lastUpdated,omitempty"`
}

// Store is the narrow contract to persisted session state.
//
// Load never fails outward: any read problem yields a zero State so a turn
// can proceed with a fresh session. Save is best-effort; callers log the
// returned error and carry on rather than aborting the turn.
type Store interface {
	Load(ctx context.Context, sessionID string) State
	Save(ctx context.Context, sessionID string, state State) error
}
