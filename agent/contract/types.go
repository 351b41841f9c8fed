package contract

import (
	statex "github.com/promotor-ai/promotor/agent/state"
)

// ChatRequest is one user turn entering the system.
type ChatRequest struct {
	Message        string           `json:"message"`
	UserID         string           `json:"user_id"`
	BrandID        string           `json:"brand_id"`
	ActiveChannels []statex.Channel `json:"active_channels,omitempty"`
	ConversationID string           `json:"conversation_id,omitempty"`
}

// ChatResponse is the aggregated answer returned to the transport layer.
type ChatResponse struct {
	Message          string   `json:"message"`
	ConversationID   string   `json:"conversation_id"`
	DivisionsUsed    []string `json:"divisions_used"`
	ProcessingTimeMS float64  `json:"processing_time_ms"`
	TaskType         string   `json:"task_type,omitempty"`
	Cached           bool     `json:"cached,omitempty"`
}

// StreamEventKind enumerates the incremental events emitted by the
// streaming chat variant.
type StreamEventKind string

const (
	StreamDivisionStart StreamEventKind = "division_start"
	StreamText          StreamEventKind = "text"
	StreamDivisionEnd   StreamEventKind = "division_end"
	StreamComplete      StreamEventKind = "complete"
)

type StreamEvent struct {
	Kind     StreamEventKind `json:"type"`
	Content  string          `json:"content"`
	Division string          `json:"division,omitempty"`
}
