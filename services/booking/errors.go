package booking

import "fmt"

// WorkflowError is a typed error for booking workflow failures that callers
// map onto API responses.
type WorkflowError struct {
	Code    string
	Message string
}

func (e *WorkflowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewWorkflowError(code, msg string) error {
	return &WorkflowError{
		Code:    code,
		Message: msg,
	}
}
