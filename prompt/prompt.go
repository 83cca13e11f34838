// Package prompt assembles the model-facing prompt for a turn.
//
// Two modes exist: ordering (full menu plus the running order) and general
// inquiry (deliberately no menu or order context: inquiry turns must stay
// cheap, so nothing order-related may leak into them).
package prompt

import (
	"strconv"
	"strings"

	"golden-wok/order"
	"golden-wok/session"
)

// Mode selects which prompt a turn gets.
type Mode int

const (
	ModeOrdering Mode = iota
	ModeInquiry
)

// String returns the mode name as recorded on history turns.
func (m Mode) String() string {
	if m == ModeInquiry {
		return "inquiry"
	}
	return "ordering"
}

// How much conversation each mode replays into the prompt.
const (
	orderingWindow = 5
	inquiryWindow  = 3
)

// Build produces the prompt for the given mode, ending with the customer's
// current utterance. menuText and current are only consulted in ordering
// mode.
func Build(mode Mode, menuText string, history []session.Turn, current *order.Order, utterance string) string {
	if mode == ModeInquiry {
		return buildInquiry(history, utterance)
	}
	return buildOrdering(menuText, history, current, utterance)
}

func buildOrdering(menuText string, history []session.Turn, current *order.Order, utterance string) string {
	var b strings.Builder

	b.WriteString("You are a friendly assistant for a Chinese restaurant taking orders.\n\n")
	b.WriteString(menuText)
	b.WriteString(renderOrder(current))

	b.WriteString(`

Guidelines:
- If customer says just "hello" or "hi", respond briefly with a simple greeting
- If they ask about the menu, show relevant items WITH PRICES
- When discussing items, ALWAYS mention the price (e.g., "Chicken Fried Rice is $5.35")
- When adding NEW items, output ONLY the NEW item in JSON (system will accumulate them)
- When they say "that's all" or finish ordering, provide a complete order summary with ALL items and total
- Always output order data in JSON format inside <json></json> tags (this will be hidden from customer)
- Keep responses warm, natural, and conversational

JSON Format (output ONLY the new item being added):
<json>{"items":[{"name":"Chicken Fried Rice","quantity":1,"notes":"","price":"5.35"}],"confirmed":true}</json>

Important:
- The JSON will be automatically removed from your response - customers won't see it
- Focus on natural, friendly language in your main response
- ALWAYS mention prices when discussing or confirming items
- For final order confirmation, list ALL items from "Current Order in Progress" plus any new items
- Format final confirmation like this:
  "Perfect! Here's your complete order:
   - 1 Moo Shu Chicken (extra chicken) - $10.95
   - 1 Chicken Fried Rice - $5.35

   Subtotal: $16.30

   We'll have that ready for you! What's the best phone number to reach you?"

Conversation so far:
`)
	b.WriteString(renderHistory(history, orderingWindow))
	b.WriteString("\nCustomer: " + utterance)

	return b.String()
}

func buildInquiry(history []session.Turn, utterance string) string {
	var b strings.Builder

	b.WriteString(`You are a helpful assistant for a Chinese restaurant.

This is a GENERAL inquiry, NOT a food order. The customer might be asking about:
- Hours of operation
- Location/directions
- Payment methods
- General questions
- Small talk

If they want to ORDER FOOD or see the MENU, politely tell them to say:
"I want to order" or "Show me the menu"

Conversation so far:
`)
	b.WriteString(renderHistory(history, inquiryWindow))
	b.WriteString("\nCustomer: " + utterance)
	b.WriteString("\n\nRespond briefly and helpfully (2-3 sentences max).")

	return b.String()
}

// renderOrder lists the in-progress order so the model can summarize it on
// completion. Items without a quoted price render as TBD.
func renderOrder(current *order.Order) string {
	if current == nil || len(current.Items) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\nCurrent Order in Progress:\n")
	for _, item := range current.Items {
		price := item.Price
		if price == "" {
			price = "TBD"
		}
		b.WriteString("- ")
		b.WriteString(strconv.Itoa(item.Quantity))
		b.WriteString("x ")
		b.WriteString(item.Name)
		b.WriteString(" ($")
		b.WriteString(price)
		b.WriteString(")")
		if item.Notes != "" {
			b.WriteString(" - " + item.Notes)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderHistory replays the last window turns, oldest first.
func renderHistory(history []session.Turn, window int) string {
	if len(history) > window {
		history = history[len(history)-window:]
	}
	var b strings.Builder
	for _, turn := range history {
		b.WriteString("Customer: " + turn.User + "\n")
		b.WriteString("Assistant: " + turn.Bot + "\n")
	}
	return b.String()
}
