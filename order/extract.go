package order

import (
	"strings"

	"github.com/bytedance/sonic"
)

// Markers delimiting the structured block the model embeds in its reply.
const (
	openMarker  = "<json>"
	closeMarker = "</json>"
)

// ExtractDelta scans raw model output for the first <json>...</json> block
// and parses it into a Delta. It returns nil when the markers are absent,
// the block doesn't parse, or its contents fail validation: a missing or
// garbled block means "the model added nothing new", never an error.
// Text outside the markers is ignored, as are any further blocks.
func ExtractDelta(raw string) *Delta {
	start := strings.Index(raw, openMarker)
	if start < 0 {
		return nil
	}
	rest := raw[start+len(openMarker):]
	end := strings.Index(rest, closeMarker)
	if end < 0 {
		return nil
	}

	inner := strings.TrimSpace(rest[:end])

	var delta Delta
	if err := sonic.Unmarshal([]byte(inner), &delta); err != nil {
		return nil
	}

	for i := range delta.Items {
		if delta.Items[i].Name == "" || delta.Items[i].Quantity < 0 {
			return nil
		}
		// Models occasionally omit the quantity for a single item.
		if delta.Items[i].Quantity == 0 {
			delta.Items[i].Quantity = 1
		}
	}

	// A block carrying neither items nor a confirmation says nothing.
	if len(delta.Items) == 0 && delta.Confirmed == nil {
		return nil
	}
	return &delta
}
