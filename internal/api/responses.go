package api

// ErrorResponse represents an error returned by the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// MessageResponse represents a simple success acknowledgement
type MessageResponse struct {
	Message string `json:"message"`
}
