package models

// Contact statuses. A message starts unread and transitions once to read.
const (
	ContactUnread = "unread"
	ContactRead   = "read"
)

type Contact struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	FormationInterest string `json:"formation_interest,omitempty"`
	Message           string `json:"message"`
	Status            string `json:"status"`
	CreatedAt         string `json:"created_at"`
}

// ContactRequest is the payload of a public contact submission.
type ContactRequest struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	FormationInterest string `json:"formation_interest,omitempty"`
	Message           string `json:"message"`
}
