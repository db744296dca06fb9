package entity

import "time"

// VisitorMessage is a message left through the public contact form.
type VisitorMessage struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Company     string    `json:"company"`
	Message     string    `json:"message"`
	TargetInbox string    `json:"targetInbox"`
	CreatedAt   time.Time `json:"createdAt"`
}
