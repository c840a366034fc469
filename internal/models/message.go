package models

// Message is a simple confirmation payload.
type Message struct {
	Message string `json:"message"`
}
