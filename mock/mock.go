// Package mock provides test doubles using function fields.
package mock

import (
	"context"

	"golden-wok/dialogue"
	"golden-wok/menu"
	"golden-wok/session"
)

// Interface compliance checks.
var (
	_ dialogue.Invoker = (*Invoker)(nil)
	_ session.Store    = (*Store)(nil)
	_ menu.Provider    = (*Menu)(nil)
)

// Invoker is a test double for dialogue.Invoker.
// Set InvokeFn before calling Invoke.
type Invoker struct {
	InvokeFn func(ctx context.Context, prompt string) (string, error)
}

// Invoke delegates to InvokeFn.
func (i *Invoker) Invoke(ctx context.Context, prompt string) (string, error) {
	return i.InvokeFn(ctx, prompt)
}

// Store is a test double for session.Store.
// Set the function fields for the methods you need.
type Store struct {
	LoadFn func(ctx context.Context, sessionID string) session.State
	SaveFn func(ctx context.Context, sessionID string, state session.State) error
}

// Load delegates to LoadFn.
func (s *Store) Load(ctx context.Context, sessionID string) session.State {
	return s.LoadFn(ctx, sessionID)
}

// Save delegates to SaveFn.
func (s *Store) Save(ctx context.Context, sessionID string, state session.State) error {
	return s.SaveFn(ctx, sessionID, state)
}

// Menu is a test double for menu.Provider.
// Set MenuTextFn before calling MenuText.
type Menu struct {
	MenuTextFn func(ctx context.Context) string
}

// MenuText delegates to MenuTextFn.
func (m *Menu) MenuText(ctx context.Context) string {
	return m.MenuTextFn(ctx)
}
