// Interactive smoke test: runs real turns against Gemini with an in-memory
// session store. Type utterances, get replies; the accumulated order prints
// after every turn.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"

	"golden-wok/dialogue"
	"golden-wok/gemini"
	"golden-wok/menu"
	"golden-wok/messages"
	"golden-wok/prompt"
	"golden-wok/session"
)

func main() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY not set")
	}

	ctx := context.Background()

	model, err := gemini.New(ctx, apiKey, "gemini-2.0-flash-lite")
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}

	store := session.NewMemoryStore()
	orchestrator := dialogue.New(model, store, menu.Static(""), dialogue.Config{
		ModelID:     "gemini-2.0-flash-lite",
		DefaultMode: prompt.ModeOrdering,
	})

	const sessionID = "smoke-test"

	fmt.Println("Order-taking agent smoke test. Ctrl-D to quit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		utterance := scanner.Text()
		if utterance == "" {
			continue
		}

		resp := orchestrator.HandleTurn(ctx, &messages.TurnRequest{
			SessionID: sessionID,
			Utterance: utterance,
			Trigger:   "MainIntent",
		})

		for _, msg := range resp.Messages {
			fmt.Printf("[%s] %s\n", resp.IntentState, msg.Content)
		}

		state := store.Load(ctx, sessionID)
		if state.Order != nil {
			fmt.Printf("  order: %d item(s), confirmed=%v\n", len(state.Order.Items), state.Order.Confirmed)
		}
	}
	fmt.Println()
}
