package menu_test

import (
	"context"
	"testing"

	"golden-wok/menu"

	"github.com/stretchr/testify/assert"
)

func TestStatic_ReturnsOwnListing(t *testing.T) {
	t.Parallel()
	p := menu.Static("Menu: Dumplings ($7)")
	assert.Equal(t, "Menu: Dumplings ($7)", p.MenuText(context.Background()))
}

func TestStatic_EmptyFallsBack(t *testing.T) {
	t.Parallel()
	assert.Equal(t, menu.Fallback, menu.Static("").MenuText(context.Background()))
}

func TestFormat(t *testing.T) {
	t.Parallel()
	out := menu.Format([]menu.Item{
		{Name: "Mapo Tofu", Price: "12", Description: "spicy tofu"},
		{Name: "Fried Rice", Price: "8"},
	})

	assert.Contains(t, out, "Restaurant Menu:")
	assert.Contains(t, out, "- Mapo Tofu ($12) - spicy tofu")
	assert.Contains(t, out, "- Fried Rice ($8) - ")
}

func TestFormat_EmptyFallsBack(t *testing.T) {
	t.Parallel()
	assert.Equal(t, menu.Fallback, menu.Format(nil))
}
