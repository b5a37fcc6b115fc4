package domain

import (
	"time"

	"github.com/google/uuid"
)

// Party is the counterparty shown on a listing card: the freelancer behind a
// proposal or the client behind an order.
type Party struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	AvatarURL   string    `json:"avatar_url"`
	Rating      float64   `json:"rating"`
	Online      bool      `json:"online"`
	CountryCode string    `json:"country_code,omitempty"`
}

// Attachment is a named file reference. Only the reference is held; file
// content never enters the system.
type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// User is a platform account. Auth is mocked: seeded users carry a bcrypt
// hash but no session or token is ever issued.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

const (
	RoleClient     = "client"
	RoleFreelancer = "freelancer"
)
