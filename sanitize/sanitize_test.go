package sanitize_test

import (
	"testing"

	"golden-wok/sanitize"

	"github.com/stretchr/testify/assert"
)

func TestStripReasoning(t *testing.T) {
	t.Parallel()
	in := "Sure!<reasoning>the user wants\nrice, add it</reasoning> One Fried Rice."
	assert.Equal(t, "Sure! One Fried Rice.", sanitize.StripReasoning(in))
}

func TestStripOrderBlock(t *testing.T) {
	t.Parallel()
	in := `Added!<json>{"items":[{"name":"Fried Rice","quantity":1}]}</json> Anything else?`
	assert.Equal(t, "Added! Anything else?", sanitize.StripOrderBlock(in))
}

func TestStripOrderBlock_SpansNewlines(t *testing.T) {
	t.Parallel()
	in := "Done.<json>\n{\n\"items\": []\n}\n</json>"
	assert.Equal(t, "Done.", sanitize.StripOrderBlock(in))
}

func TestStripFragments(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Added ", sanitize.StripFragments(`Added {"items":[],"confirmed":false}`))
	assert.Equal(t, "Got it: ", sanitize.StripFragments(`Got it: {"name":"Mapo Tofu","quantity":1}`))
}

func TestStripFragments_LeavesPlainBraces(t *testing.T) {
	t.Parallel()
	in := "Our combo {lunch special} is $9"
	assert.Equal(t, in, sanitize.StripFragments(in))
}

func TestTrimSeparators(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Anything else?", sanitize.TrimSeparators(" , Anything else?"))
	assert.Equal(t, "Added Fried Rice", sanitize.TrimSeparators("Added Fried Rice , "))
}

func TestCollapseWhitespace(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "a b c", sanitize.CollapseWhitespace("  a\n\nb\t c "))
}

func TestClean_RemovesAllMarkup(t *testing.T) {
	t.Parallel()
	in := `<reasoning>add the dish</reasoning>Great! One Kung Pao Chicken for $14.
<json>{"items":[{"name":"Kung Pao Chicken","quantity":1,"price":"14"}]}</json>`

	out := sanitize.Clean(in)

	assert.Equal(t, "Great! One Kung Pao Chicken for $14.", out)
	assert.NotContains(t, out, "<json>")
	assert.NotContains(t, out, "<reasoning>")
	assert.NotContains(t, out, "items")
}

func TestClean_NoMarkupIsJustCollapsed(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Hello there! What can I get you?",
		sanitize.Clean("Hello there!\n  What can I get you?  "))
}

func TestClean_Idempotent(t *testing.T) {
	t.Parallel()
	in := `Perfect! <json>{"confirmed":true}</json> , We'll have that ready.`
	once := sanitize.Clean(in)
	assert.Equal(t, once, sanitize.Clean(once))
}

func TestClean_AllMarkupYieldsEmpty(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", sanitize.Clean(`<json>{"items":[{"name":"Fried Rice","quantity":1}]}</json>`))
}

func TestClean_MalformedMarkupFragments(t *testing.T) {
	t.Parallel()
	// Close marker lost: the fragment pass still catches the bare object.
	out := sanitize.Clean(`Added! {"items":[], "confirmed": false}`)
	assert.Equal(t, "Added!", out)
}
