// Package order holds the running order state and the merge rules that
// accumulate model-emitted deltas into it.
package order

// Item is a single line item on an order.
type Item struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
	Price    string `json:"price,omitempty"` // decimal as text, "" = not quoted yet
}

// Order is the accumulated order for one session. Items only ever grow
// within a session; Confirmed reflects the last delta that set it.
type Order struct {
	Items     []Item `json:"items"`
	Confirmed bool   `json:"confirmed"`
}

// Delta is the incremental contribution parsed from a single model response.
// Items are NEW items to append, never the full order. Confirmed is nil when
// the response didn't state it.
type Delta struct {
	Items     []Item `json:"items"`
	Confirmed *bool  `json:"confirmed"`
}

// Merge combines the current order with a delta and returns the new order.
//
// A nil delta returns current unchanged. Delta items are appended in the
// order they appeared; nothing is ever deduplicated or removed. Confirmed
// takes the delta's value when set, false otherwise. A result with zero
// items is returned as nil so that "no order yet" stays distinguishable
// from an empty order. Neither input is mutated.
func Merge(current *Order, delta *Delta) *Order {
	if delta == nil {
		return current
	}

	merged := &Order{}
	if current != nil {
		merged.Items = append(merged.Items, current.Items...)
	}
	merged.Items = append(merged.Items, delta.Items...)

	if delta.Confirmed != nil {
		merged.Confirmed = *delta.Confirmed
	}

	if len(merged.Items) == 0 {
		return nil
	}
	return merged
}
