package handler

import "fmt"

const (
	missingParametersMessage = "Missing parameters: token, title, and body are required"
	upstreamFailureMessage   = "Failed to send notification"
	internalErrorMessage     = "Internal server error"
)

type ErrorHandler struct {
	Message string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func (e *ErrorHandler) Error() string {
	if e.Details == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Details)
}

func GetRequestError() error {
	return &ErrorHandler{
		Message: missingParametersMessage,
	}
}

// GetUpstreamError carries the gateway's decoded error body verbatim.
func GetUpstreamError(details any) error {
	return &ErrorHandler{
		Message: upstreamFailureMessage,
		Details: details,
	}
}

func GetInternalError(err error) error {
	return &ErrorHandler{
		Message: internalErrorMessage,
		Details: err.Error(),
	}
}
