package models

// ChatMessage is one turn of a document conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
