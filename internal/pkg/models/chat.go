package models

// ChatMessage is a free-text message to the portal assistant
type ChatMessage struct {
	Message string `json:"message"`
}

// ChatReply is the assistant's canned response plus the matched intent name
type ChatReply struct {
	Intent string `json:"intent"`
	Reply  string `json:"reply"`
}
