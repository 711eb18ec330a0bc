package domain

import "time"

// DefaultNickname is used when a message arrives without a nickname.
const DefaultNickname = "anon"

// Message represents a chat message entity.
type Message struct {
	ID             int64     `json:"id"`
	Nickname       string    `json:"nickname"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"created_at"`
	Sentiment      string    `json:"sentiment,omitempty"`
	SentimentScore float64   `json:"sentiment_score"`
}

// CreateMessageRequest represents a message creation request.
type CreateMessageRequest struct {
	Nickname string `json:"nickname"`
	Text     string `json:"text"`
}
