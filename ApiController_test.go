package main

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Sakshi-Shah5/Interactive-Spreadsheet-Application/contracts"
	"github.com/Sakshi-Shah5/Interactive-Spreadsheet-Application/mocks"
	json "github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func _newTestRouter(service contracts.SpreadsheetService, authToken string) *gin.Engine {
	envelopes := _newEnvelopeBuilder()
	return SetupRouter(NewApiController(service, envelopes), RouterOptions{
		BasePath:  "/api/" + ApiVersion,
		AuthToken: authToken,
		Envelopes: envelopes,
		Metrics:   NewMetrics(),
		Logger:    _discardLogger(),
	})
}

func _request(router *gin.Engine, method string, target string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, target, bytes.NewReader(body)))
	return w
}

func _errorCodesOf(t *testing.T, response map[string]any) []string {
	codes := make([]string, 0)
	errorList, ok := response["errors"].([]any)
	assert.True(t, ok, "errors list is missing")
	for _, item := range errorList {
		codes = append(codes, item.(map[string]any)["code"].(string))
	}
	return codes
}

func TestApiController_QueryCellAction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	target := "/api/" + ApiVersion + "/sheet1/a1"

	t.Run("success", func(t *testing.T) {
		value := float64(5)
		service := mocks.NewSpreadsheetService(t)
		service.On("Query", mock.Anything, "sheet1", "a1").
			Return(&contracts.Cell{Id: "a1", Expr: "5", Value: &value}, nil)

		w := _request(_newTestRouter(service, ""), http.MethodGet, target, nil)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, response["isOk"])
		assert.Equal(t, float64(http.StatusOK), response["status"])

		self := response["links"].(map[string]any)["self"].(map[string]any)
		assert.Equal(t, "http://example.com"+target, self["href"])
		assert.Equal(t, http.MethodGet, self["method"])

		result := response["result"].(map[string]any)
		assert.Equal(t, "a1", result["id"])
		assert.Equal(t, "5", result["expr"])
		assert.Equal(t, float64(5), result["value"])
	})

	t.Run("not found", func(t *testing.T) {
		service := mocks.NewSpreadsheetService(t)
		service.On("Query", mock.Anything, "sheet1", "a1").
			Return(nil, contracts.Errorf(contracts.CodeNotFound, "a1: cell not found"))

		w := _request(_newTestRouter(service, ""), http.MethodGet, target, nil)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, false, response["isOk"])
		assert.Equal(t, []string{"NOT_FOUND"}, _errorCodesOf(t, response))
	})

	t.Run("storage failure", func(t *testing.T) {
		service := mocks.NewSpreadsheetService(t)
		service.On("Query", mock.Anything, "sheet1", "a1").
			Return(nil, contracts.Errorf(contracts.CodeDB, "database not open"))

		w := _request(_newTestRouter(service, ""), http.MethodGet, target, nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("plain error", func(t *testing.T) {
		service := mocks.NewSpreadsheetService(t)
		service.On("Query", mock.Anything, "sheet1", "a1").Return(nil, errors.New("test"))

		w := _request(_newTestRouter(service, ""), http.MethodGet, target, nil)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []string{"BAD_REQ"}, _errorCodesOf(t, response))
	})
}

func TestApiController_UpdateCellAction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	base := "/api/" + ApiVersion + "/sheet1/b2"

	t.Run("set expression", func(t *testing.T) {
		service := mocks.NewSpreadsheetService(t)
		service.On("Evaluate", mock.Anything, "sheet1", "b2", "=a1+1").
			Return(contracts.ValueMap{"b2": 6}, nil)

		w := _request(_newTestRouter(service, ""), http.MethodPatch, base+"?expr=%3Da1%2B1", nil)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, map[string]any{"b2": float64(6)}, response["result"])

		self := response["links"].(map[string]any)["self"].(map[string]any)
		assert.Contains(t, self["href"], "/sheet1/b2?expr=%3Da1%2B1")
		assert.Equal(t, http.MethodPatch, self["method"])
	})

	t.Run("copy from another cell", func(t *testing.T) {
		service := mocks.NewSpreadsheetService(t)
		service.On("Copy", mock.Anything, "sheet1", "b2", "a1").
			Return(contracts.ValueMap{"b2": 5, "c3": 10}, nil)

		w := _request(_newTestRouter(service, ""), http.MethodPatch, base+"?srcCellId=a1", nil)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, map[string]any{"b2": float64(5), "c3": float64(10)}, response["result"])
	})

	t.Run("service failure", func(t *testing.T) {
		service := mocks.NewSpreadsheetService(t)
		service.On("Evaluate", mock.Anything, "sheet1", "b2", "b2+1").
			Return(nil, contracts.Errorf(contracts.CodeBadRequest, "circular reference detected"))

		w := _request(_newTestRouter(service, ""), http.MethodPatch, base+"?expr=b2%2B1", nil)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []string{"BAD_REQ"}, _errorCodesOf(t, response))
	})

	t.Run("neither or both parameters never reach the service", func(t *testing.T) {
		testCases := map[string]string{
			"":                     "BAD_REQ_PATCH_NO_PARAMS",
			"?other=1":             "BAD_REQ_PATCH_NO_PARAMS",
			"?expr=1&srcCellId=a1": "BAD_REQ_PATCH_BOTH_PARAMS",
			"?srcCellId=a1&expr=":  "BAD_REQ_PATCH_BOTH_PARAMS",
		}

		for query, code := range testCases {
			service := mocks.NewSpreadsheetService(t)

			w := _request(_newTestRouter(service, ""), http.MethodPatch, base+query, nil)
			response, err := _parseJsonBody(w)

			assert.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, w.Code, query)
			assert.Equal(t, []string{code}, _errorCodesOf(t, response), query)
			service.AssertNotCalled(t, "Evaluate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			service.AssertNotCalled(t, "Copy", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		}
	})
}

func TestApiController_RemoveCellAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service := mocks.NewSpreadsheetService(t)
	service.On("Remove", mock.Anything, "sheet1", "a1").Return(contracts.ValueMap{"a2": 0}, nil)

	w := _request(_newTestRouter(service, ""), http.MethodDelete, "/api/"+ApiVersion+"/sheet1/a1", nil)
	response, err := _parseJsonBody(w)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"a2": float64(0)}, response["result"])
}

func TestApiController_LoadAction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	target := "/api/" + ApiVersion + "/sheet1"

	t.Run("success", func(t *testing.T) {
		cells := []contracts.CellExpression{{Id: "a1", Expr: "5"}, {Id: "b1", Expr: "a1*2"}}
		body, _ := json.Marshal(cells)

		service := mocks.NewSpreadsheetService(t)
		service.On("Load", mock.Anything, "sheet1", cells).Return(nil)

		w := _request(_newTestRouter(service, ""), http.MethodPut, target, body)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, true, response["isOk"])
	})

	t.Run("malformed body", func(t *testing.T) {
		service := mocks.NewSpreadsheetService(t)

		w := _request(_newTestRouter(service, ""), http.MethodPut, target, []byte(`{"not": "a list"`))
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []string{"BAD_REQ"}, _errorCodesOf(t, response))
	})
}

func TestApiController_DumpAction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	target := "/api/" + ApiVersion + "/sheet1"

	t.Run("without values", func(t *testing.T) {
		service := mocks.NewSpreadsheetService(t)
		service.On("Dump", mock.Anything, "sheet1", false).
			Return([]contracts.Cell{{Id: "a1", Expr: "5"}}, nil)

		w := _request(_newTestRouter(service, ""), http.MethodGet, target, nil)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []any{map[string]any{"id": "a1", "expr": "5"}}, response["result"])
	})

	t.Run("with values", func(t *testing.T) {
		value := float64(5)
		service := mocks.NewSpreadsheetService(t)
		service.On("Dump", mock.Anything, "sheet1", true).
			Return([]contracts.Cell{{Id: "a1", Expr: "5", Value: &value}}, nil)

		w := _request(_newTestRouter(service, ""), http.MethodGet, target+"?withValues=true", nil)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, []any{map[string]any{"id": "a1", "expr": "5", "value": float64(5)}}, response["result"])
	})

	t.Run("invalid flag", func(t *testing.T) {
		service := mocks.NewSpreadsheetService(t)

		w := _request(_newTestRouter(service, ""), http.MethodGet, target+"?withValues=maybe", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestApiController_ClearAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service := mocks.NewSpreadsheetService(t)
	service.On("Clear", mock.Anything, "sheet1").Return(nil)

	w := _request(_newTestRouter(service, ""), http.MethodDelete, "/api/"+ApiVersion+"/sheet1", nil)
	response, err := _parseJsonBody(w)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, response["result"])
}

func _parseJsonBody(w *httptest.ResponseRecorder) (response map[string]any, err error) {
	err = json.Unmarshal(w.Body.Bytes(), &response)
	return
}
