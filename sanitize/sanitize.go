// Package sanitize turns raw model output into user-displayable text by
// stripping the control markup the prompt asks the model to emit.
//
// Clean applies an ordered chain of passes; each pass is exported so it can
// be tested on its own. The output never contains <reasoning>/<json> markup
// or bare order-object fragments, and may legitimately be empty when the
// whole reply was markup; callers decide what to show in that case.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	reasoningBlock = regexp.MustCompile(`(?s)<reasoning>.*?</reasoning>`)
	orderBlock     = regexp.MustCompile(`(?s)<json>.*?</json>`)

	// Bare fragments that look like order objects: a single brace group
	// with no nested braces mentioning characteristic keys. Backup cleanup
	// for malformed markup.
	itemsFragment = regexp.MustCompile(`\{[^{}]*"items"[^{}]*\}`)
	nameFragment  = regexp.MustCompile(`\{[^{}]*"name"[^{}]*\}`)

	leadingComma  = regexp.MustCompile(`^\s*,\s*`)
	trailingComma = regexp.MustCompile(`\s*,\s*$`)

	whitespaceRun = regexp.MustCompile(`\s+`)
)

// StripReasoning removes <reasoning>...</reasoning> blocks and their contents.
func StripReasoning(s string) string {
	return reasoningBlock.ReplaceAllString(s, "")
}

// StripOrderBlock removes <json>...</json> blocks and their contents.
func StripOrderBlock(s string) string {
	return orderBlock.ReplaceAllString(s, "")
}

// StripFragments removes residual bare JSON objects that look like order data.
func StripFragments(s string) string {
	s = itemsFragment.ReplaceAllString(s, "")
	return nameFragment.ReplaceAllString(s, "")
}

// TrimSeparators drops stray leading/trailing commas left behind by removal.
func TrimSeparators(s string) string {
	s = leadingComma.ReplaceAllString(s, "")
	return trailingComma.ReplaceAllString(s, "")
}

// CollapseWhitespace folds all whitespace runs, newlines included, into
// single spaces and trims the ends.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// Clean runs the full sanitization chain in order. Cleaning already-clean
// text is a no-op.
func Clean(raw string) string {
	s := StripReasoning(raw)
	s = StripOrderBlock(s)
	s = StripFragments(s)
	s = TrimSeparators(s)
	return CollapseWhitespace(s)
}
