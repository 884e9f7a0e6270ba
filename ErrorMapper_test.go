package main

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/Sakshi-Shah5/Interactive-Spreadsheet-Application/contracts"
	"github.com/stretchr/testify/assert"
)

func _discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func _domainErrors(codes ...contracts.ErrorCode) contracts.DomainErrors {
	errs := make(contracts.DomainErrors, 0, len(codes))
	for _, code := range codes {
		errs = append(errs, contracts.NewDomainError(code, "message for "+string(code)))
	}
	return errs
}

func TestErrorCode_HTTPStatus(t *testing.T) {
	expected := map[contracts.ErrorCode]int{
		contracts.CodeExists:             http.StatusConflict,
		contracts.CodeNotFound:           http.StatusNotFound,
		contracts.CodeBadRequest:         http.StatusBadRequest,
		contracts.CodeBadPatchNoParams:   http.StatusBadRequest,
		contracts.CodeBadPatchBothParams: http.StatusBadRequest,
		contracts.CodeAuth:               http.StatusUnauthorized,
		contracts.CodeDB:                 http.StatusInternalServerError,
		contracts.CodeInternal:           http.StatusInternalServerError,
	}

	for code, status := range expected {
		actual, ok := code.HTTPStatus()
		assert.True(t, ok, code)
		assert.Equal(t, status, actual, code)
	}

	t.Run("unknown code", func(t *testing.T) {
		status, ok := contracts.ErrorCode("TEAPOT").HTTPStatus()
		assert.False(t, ok)
		assert.Zero(t, status)
	})
}

func TestErrorMapper_Status(t *testing.T) {
	mapper := NewErrorMapper(_discardLogger())

	t.Run("first known code wins", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, mapper.Status(_domainErrors(contracts.CodeNotFound, contracts.CodeExists)))
		assert.Equal(t, http.StatusConflict, mapper.Status(_domainErrors(contracts.CodeExists, contracts.CodeNotFound)))
		assert.Equal(t, http.StatusUnauthorized, mapper.Status(_domainErrors("UNKNOWN", contracts.CodeAuth, contracts.CodeBadRequest)))
	})

	t.Run("internal dominates regardless of position", func(t *testing.T) {
		lists := []contracts.DomainErrors{
			_domainErrors(contracts.CodeInternal),
			_domainErrors(contracts.CodeNotFound, contracts.CodeInternal),
			_domainErrors(contracts.CodeInternal, contracts.CodeNotFound),
			_domainErrors(contracts.CodeBadRequest, "UNKNOWN", contracts.CodeDB),
			_domainErrors(contracts.CodeAuth, contracts.CodeExists, contracts.CodeInternal),
		}
		for _, errs := range lists {
			assert.Equal(t, http.StatusInternalServerError, mapper.Status(errs), errs.Error())
		}
	})

	t.Run("unknown codes only", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, mapper.Status(_domainErrors("UNKNOWN")))
		assert.Equal(t, http.StatusBadRequest, mapper.Status(_domainErrors("A", "B", "C")))
		assert.Equal(t, http.StatusBadRequest, mapper.Status(contracts.DomainErrors{}))
	})

	t.Run("internal errors are logged", func(t *testing.T) {
		var logs bytes.Buffer
		loggingMapper := NewErrorMapper(slog.New(slog.NewJSONHandler(&logs, nil)))

		loggingMapper.Status(_domainErrors(contracts.CodeNotFound))
		assert.Empty(t, logs.String())

		loggingMapper.Status(_domainErrors(contracts.CodeNotFound, contracts.CodeDB))
		assert.Contains(t, logs.String(), "internal error")
		assert.Contains(t, logs.String(), "message for DB")
		assert.Contains(t, logs.String(), "message for NOT_FOUND")
	})
}

func TestErrorMapper_Map(t *testing.T) {
	mapper := NewErrorMapper(_discardLogger())

	t.Run("domain errors unchanged", func(t *testing.T) {
		errs := _domainErrors(contracts.CodeExists, contracts.CodeBadRequest)
		status, actual := mapper.Map(errs)
		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, errs, actual)
	})

	t.Run("single domain error", func(t *testing.T) {
		status, actual := mapper.Map(contracts.NewDomainError(contracts.CodeAuth, "no token"))
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, contracts.DomainErrors{{Code: contracts.CodeAuth, Message: "no token"}}, actual)
	})

	t.Run("plain error is a bad request", func(t *testing.T) {
		status, actual := mapper.Map(errors.New("boom"))
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, contracts.Errorf(contracts.CodeBadRequest, "boom"), actual)
	})
}
