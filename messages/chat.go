package messages

// ChatRequest is one inbound frame on the WebSocket chat host. The session
// id is per-connection, so frames carry only the utterance and an optional
// trigger override.
type ChatRequest struct {
	Text    string `json:"text"`
	Trigger string `json:"trigger,omitempty"`
}

// ChatReply is one outbound frame on the WebSocket chat host.
type ChatReply struct {
	Type        string `json:"type"` // "text" or "error"
	SessionID   string `json:"sessionId"`
	Text        string `json:"text"`
	IntentState string `json:"intentState,omitempty"`
}

// NewChatReply builds a text reply frame from a turn response.
func NewChatReply(sessionID string, resp *TurnResponse) *ChatReply {
	reply := &ChatReply{Type: "text", SessionID: sessionID, IntentState: resp.IntentState}
	if len(resp.Messages) > 0 {
		reply.Text = resp.Messages[0].Content
	}
	return reply
}

// NewChatError builds an error frame.
func NewChatError(sessionID, text string) *ChatReply {
	return &ChatReply{Type: "error", SessionID: sessionID, Text: text}
}
