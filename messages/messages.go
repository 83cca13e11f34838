// Package messages defines the wire types exchanged with hosts: one turn
// request in, one turn response out.
package messages

// Intent states on a turn response. Only the pinned-model guard produces
// Failed; every degraded-but-handled path stays Fulfilled.
const (
	IntentFulfilled = "Fulfilled"
	IntentFailed    = "Failed"
)

const (
	DialogActionClose    = "Close"
	ContentTypePlainText = "PlainText"
)

// TurnRequest is one inbound utterance for a session.
type TurnRequest struct {
	SessionID        string `json:"sessionId"`
	Utterance        string `json:"inputTranscript"`
	Trigger          string `json:"triggerName"`
	InvocationSource string `json:"invocationSource,omitempty"`
}

// Message is one piece of reply content.
type Message struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

// TurnResponse is the outward result of one turn. The dialog always closes;
// the interaction model has no elicitation steps.
type TurnResponse struct {
	DialogAction string    `json:"dialogAction"`
	IntentState  string    `json:"intentState"`
	Messages     []Message `json:"messages"`
}

// NewFulfilled builds a successful turn response with a plain-text reply.
func NewFulfilled(content string) *TurnResponse {
	return &TurnResponse{
		DialogAction: DialogActionClose,
		IntentState:  IntentFulfilled,
		Messages:     []Message{{ContentType: ContentTypePlainText, Content: content}},
	}
}

// NewFailed builds a failed turn response with a plain-text reply.
func NewFailed(content string) *TurnResponse {
	return &TurnResponse{
		DialogAction: DialogActionClose,
		IntentState:  IntentFailed,
		Messages:     []Message{{ContentType: ContentTypePlainText, Content: content}},
	}
}
