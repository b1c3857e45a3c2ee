package dto

import "time"

// ErrorResponse is the standardized error body returned by all endpoints.
//
// Fields:
//   - Message: human-readable description of what failed.
//   - ErrorDetails: underlying error text, omitted when not relevant.
//   - Timestamp: moment the error response was built.
type ErrorResponse struct {
	Message      string    `json:"message" example:"nit is required"`
	ErrorDetails string    `json:"error,omitempty" example:"parsing time ..."`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface so an ErrorResponse can travel
// through gin's error list.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// underlying error.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
