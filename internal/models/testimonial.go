package models

// Testimonial statuses. Pending is the only non-terminal state: once a
// testimonial is approved or rejected no further transition exists.
const (
	TestimonialPending  = "pending"
	TestimonialApproved = "approved"
	TestimonialRejected = "rejected"
)

type Testimonial struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Formation string `json:"formation"`
	Rating    int    `json:"rating"`
	Message   string `json:"message"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// TestimonialRequest is the payload of a public submission. The backend
// creates the record with status pending.
type TestimonialRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Formation string `json:"formation"`
	Rating    int    `json:"rating"`
	Message   string `json:"message"`
}
