package model

import "time"

// Message is a private message between two users.
type Message struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"sender"`
	RecipientID string    `json:"recipient"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"date"`
}

// Comment is a public remark left on an item.
type Comment struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item"`
	UserID    string    `json:"user"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"date"`
}
