package models

import "time"

// ContactMessage is a message sent through the contact form.
type ContactMessage struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Message   string    `bson:"message" json:"message"`
	Status    string    `bson:"status" json:"status"` // "unread" or "read"
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// ContactInput is the payload of POST /api/contact.
type ContactInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}
