package issues

import (
	"errors"
	"fmt"
)

type Code string

const (
	CodeMissingRequiredField Code = "MISSING_REQUIRED_FIELD"
	CodeDuplicateSerial      Code = "DUPLICATE_SERIAL"
	CodeNotFound             Code = "NOT_FOUND"
	CodeInternal             Code = "INTERNAL"
)

type APIError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string { return fmt.Sprintf("%s: %s", e.Code, e.Message) }

func ErrMissing(msg string) *APIError   { return &APIError{Code: CodeMissingRequiredField, Message: msg} }
func ErrDuplicate(msg string) *APIError { return &APIError{Code: CodeDuplicateSerial, Message: msg} }
func ErrNotFound(msg string) *APIError  { return &APIError{Code: CodeNotFound, Message: msg} }
func ErrInternal(msg string) *APIError  { return &APIError{Code: CodeInternal, Message: msg} }

func toHTTPStatus(err error) int {
	var api *APIError
	if errors.As(err, &api) {
		switch api.Code {
		case CodeMissingRequiredField:
			return 400
		case CodeNotFound:
			return 404
		case CodeDuplicateSerial:
			return 409
		default:
			return 500
		}
	}
	return 500
}
