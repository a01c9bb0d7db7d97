package dto

import "time"

// ErrorResponse is the standard JSON error body for every non-2xx response.
//
// Fields match the API contract and may differ from internal error types.
// ErrorDetails is omitted when there is no underlying error to expose.
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Message      string    `json:"error" example:"stock symbol is required"`
	ErrorDetails string    `json:"details,omitempty" example:"unexpected EOF"`
	Timestamp    time.Time `json:"timestamp" example:"2025-08-28T14:07:11Z"`
}

// Error implements the error interface so an ErrorResponse can travel
// through gin's error chain.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse with the current timestamp,
// capturing err's text when err is non-nil.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
