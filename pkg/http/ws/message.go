package ws

import (
	"encoding/json"
	"fmt"
)

// MessageType constants for the live quiz protocol.
const (
	// Client -> Server
	TypeStart = "start"
	TypeNext  = "next"

	// Server -> Client
	TypeQuestion     = "question"
	TypeQuizComplete = "quiz_complete"
	TypeError        = "error"
)

// Message wraps all WebSocket payloads with type and optional request ID.
type Message struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	RequestID string          `json:"request_id,omitempty"`
}

// NewMessage encodes payload into a message of the given type.
func NewMessage(msgType string, payload any) (Message, error) {
	msg := Message{Type: msgType}
	if payload == nil {
		return msg, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, fmt.Errorf("encode %s payload: %w", msgType, err)
	}
	msg.Payload = raw
	return msg, nil
}

// Decode parses one frame. The type field is required.
func Decode(data []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return Message{}, fmt.Errorf("decode message: %w", err)
	}
	if msg.Type == "" {
		return Message{}, fmt.Errorf("decode message: missing type")
	}
	return msg, nil
}

// Server Messages (outgoing)

type QuestionPayload struct {
	Question any `json:"question"`
	Served   int `json:"served"`
}

type QuizCompletePayload struct {
	Served int `json:"served"`
}

type ErrorPayload struct {
	Error   int    `json:"error"`
	Message string `json:"message"`
}
