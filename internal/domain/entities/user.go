package entities

import (
	"time"
)

// User is a record managed by the CRUD stub API.
type User struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email,omitempty" db:"email"`
	Phone     string    `json:"phone,omitempty" db:"phone"`
	Role      string    `json:"role,omitempty" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// UserEventType names a user lifecycle change.
type UserEventType string

const (
	UserEventCreated UserEventType = "user.created"
	UserEventUpdated UserEventType = "user.updated"
	UserEventDeleted UserEventType = "user.deleted"
)

// UserEvent is published on the event bus whenever a user changes.
type UserEvent struct {
	ID        string        `json:"id"`
	Type      UserEventType `json:"type"`
	UserID    string        `json:"user_id"`
	Timestamp time.Time     `json:"timestamp"`
}
