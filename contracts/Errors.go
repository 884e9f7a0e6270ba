package contracts

import (
	"net/http"
	"strings"
)

// ErrorCode classifies why an operation failed, independent of HTTP.
type ErrorCode string

const (
	CodeExists             ErrorCode = "EXISTS"
	CodeNotFound           ErrorCode = "NOT_FOUND"
	CodeBadRequest         ErrorCode = "BAD_REQ"
	CodeAuth               ErrorCode = "AUTH"
	CodeDB                 ErrorCode = "DB"
	CodeInternal           ErrorCode = "INTERNAL"
	CodeBadPatchNoParams   ErrorCode = "BAD_REQ_PATCH_NO_PARAMS"
	CodeBadPatchBothParams ErrorCode = "BAD_REQ_PATCH_BOTH_PARAMS"
)

// HTTPStatus resolves the status for a known code. ok is false for codes
// outside the closed set; callers decide the fallback.
func (c ErrorCode) HTTPStatus() (status int, ok bool) {
	switch c {
	case CodeExists:
		return http.StatusConflict, true
	case CodeNotFound:
		return http.StatusNotFound, true
	case CodeBadRequest, CodeBadPatchNoParams, CodeBadPatchBothParams:
		return http.StatusBadRequest, true
	case CodeAuth:
		return http.StatusUnauthorized, true
	case CodeDB, CodeInternal:
		return http.StatusInternalServerError, true
	default:
		return 0, false
	}
}

type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func NewDomainError(code ErrorCode, message string) DomainError {
	return DomainError{Code: code, Message: message}
}

func (e DomainError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// DomainErrors is the ordered failure result of a service operation.
type DomainErrors []DomainError

func (e DomainErrors) Error() string {
	messages := make([]string, 0, len(e))
	for _, domainError := range e {
		messages = append(messages, domainError.Error())
	}
	return strings.Join(messages, "; ")
}

// Errorf builds a single-element DomainErrors value.
func Errorf(code ErrorCode, message string) DomainErrors {
	return DomainErrors{NewDomainError(code, message)}
}
