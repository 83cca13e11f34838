// Package menu supplies the menu listing embedded in ordering prompts.
package menu

import "context"

// Fallback is served whenever the live menu can't be loaded. Keep it in
// sync with the seeded menu items.
const Fallback = "Menu: Mapo Tofu ($12), Fried Rice ($8), Kung Pao Chicken ($14), Spring Rolls ($6)"

// Provider returns the formatted menu text for one turn. Implementations
// must always return a non-empty string, falling back to a fixed listing
// on any failure.
type Provider interface {
	MenuText(ctx context.Context) string
}

// Static is a fixed menu listing, used in tests and offline setups.
type Static string

// Interface compliance check.
var _ Provider = Static("")

// MenuText returns the static listing, or Fallback when empty.
func (s Static) MenuText(context.Context) string {
	if s == "" {
		return Fallback
	}
	return string(s)
}
