package booking

import "fmt"

// WorkflowError is a typed error surfaced by the booking workflow.
type WorkflowError struct {
	Code    string
	Message string
}

func (e *WorkflowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewPaymentError(msg string) error {
	return &WorkflowError{Code: "paymentError", Message: msg}
}

func NewForbiddenError(msg string) error {
	return &WorkflowError{Code: "forbidden", Message: msg}
}

func NewStateError(msg string) error {
	return &WorkflowError{Code: "invalidState", Message: msg}
}
