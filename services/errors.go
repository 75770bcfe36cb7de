package services

import "fmt"

// ValidationError reports a missing or invalid form field. It never involves
// a network call and does not end the session.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ServiceError wraps any failure of the completion service: network,
// authentication, quota, or model availability.
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
