package dto

// ContactRequest is a support inquiry from the contact form.
type ContactRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	Message     string `json:"message" binding:"required"`
	Category    string `json:"category"`
	SubCategory string `json:"subCategory"`
}

// SubscribeRequest is a mailing-list signup.
type SubscribeRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// SendResponse acknowledges an email send.
type SendResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// ChatRequest is a visitor chat message.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse is the assistant reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}
