package handler

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// MessageResponse represents a generic confirmation response.
type MessageResponse struct {
	Message string `json:"message" example:"Deleted"`
}
