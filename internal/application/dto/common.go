package dto

// ErrorResponse is the HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MutationResponse is the uniform result body for mutating operations: callers
// get success plus an optional error message instead of a thrown failure.
type MutationResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
