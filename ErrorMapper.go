package main

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Sakshi-Shah5/Interactive-Spreadsheet-Application/contracts"
)

// UnknownCodeStatus is used when no error of a list carries a known code:
// unrecognized failures are treated as caller mistakes.
const UnknownCodeStatus = http.StatusBadRequest

type ErrorMapper struct {
	logger *slog.Logger
}

func NewErrorMapper(logger *slog.Logger) *ErrorMapper {
	return &ErrorMapper{logger: logger}
}

// Status picks one HTTP status for the list: the first known code wins,
// except that any code mapping to 500 overrides everything else.
func (m *ErrorMapper) Status(errs contracts.DomainErrors) int {
	candidate := 0
	internal := false

	for _, domainError := range errs {
		status, known := domainError.Code.HTTPStatus()
		switch {
		case !known:
			continue
		case status == http.StatusInternalServerError:
			internal = true
		case candidate == 0:
			candidate = status
		}
	}

	if internal {
		m.logger.Error("internal error", slog.Any("errors", errs))
		return http.StatusInternalServerError
	}

	if candidate == 0 {
		return UnknownCodeStatus
	}
	return candidate
}

// Map converts any error into a status and the domain error list reported to the caller.
func (m *ErrorMapper) Map(err error) (int, contracts.DomainErrors) {
	errs := AsDomainErrors(err)
	return m.Status(errs), errs
}

// AsDomainErrors keeps structured domain errors as they are and wraps any
// other failure into a single BAD_REQ error.
func AsDomainErrors(err error) contracts.DomainErrors {
	var domainErrors contracts.DomainErrors
	if errors.As(err, &domainErrors) {
		return domainErrors
	}

	var domainError contracts.DomainError
	if errors.As(err, &domainError) {
		return contracts.DomainErrors{domainError}
	}

	message := "unknown error"
	if err != nil {
		message = err.Error()
	}
	return contracts.Errorf(contracts.CodeBadRequest, message)
}
