package main

import (
	"net/http"

	"github.com/Sakshi-Shah5/Interactive-Spreadsheet-Application/contracts"
	"github.com/gin-gonic/gin"
)

type ApiController struct {
	SpreadsheetService contracts.SpreadsheetService
	Envelopes          *EnvelopeBuilder
}

type SheetEndpointParams struct {
	SsName string `uri:"ss_name" binding:"required"`
}

type CellEndpointParams struct {
	SsName string `uri:"ss_name" binding:"required"`
	CellId string `uri:"cell_id" binding:"required"`
}

type DumpQuery struct {
	WithValues bool `form:"withValues"`
}

const (
	exprQueryParam      = "expr"
	srcCellIdQueryParam = "srcCellId"
)

func NewApiController(spreadsheetService contracts.SpreadsheetService, envelopes *EnvelopeBuilder) *ApiController {
	return &ApiController{SpreadsheetService: spreadsheetService, Envelopes: envelopes}
}

func (api *ApiController) LoadAction(c *gin.Context) {
	params := SheetEndpointParams{}
	var cells []contracts.CellExpression

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&cells)
	}
	if err == nil {
		err = api.SpreadsheetService.Load(c.Request.Context(), params.SsName, cells)
	}

	api.respond(c, http.StatusCreated, nil, err)
}

func (api *ApiController) QueryCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	var cell *contracts.Cell

	err := c.ShouldBindUri(&params)
	if err == nil {
		cell, err = api.SpreadsheetService.Query(c.Request.Context(), params.SsName, params.CellId)
	}

	api.respond(c, http.StatusOK, cell, err)
}

// UpdateCellAction sets the expression of a cell (?expr=) or copies another
// cell into it (?srcCellId=); exactly one of the two must be given.
func (api *ApiController) UpdateCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	var values contracts.ValueMap

	err := c.ShouldBindUri(&params)
	if err == nil {
		expr, hasExpr := c.GetQuery(exprQueryParam)
		srcCellId, hasSrcCellId := c.GetQuery(srcCellIdQueryParam)

		switch {
		case !hasExpr && !hasSrcCellId:
			err = contracts.Errorf(contracts.CodeBadPatchNoParams,
				"exactly one of `"+exprQueryParam+"` or `"+srcCellIdQueryParam+"` is required")
		case hasExpr && hasSrcCellId:
			err = contracts.Errorf(contracts.CodeBadPatchBothParams,
				"`"+exprQueryParam+"` and `"+srcCellIdQueryParam+"` cannot be combined")
		case hasExpr:
			values, err = api.SpreadsheetService.Evaluate(c.Request.Context(), params.SsName, params.CellId, expr)
		default:
			values, err = api.SpreadsheetService.Copy(c.Request.Context(), params.SsName, params.CellId, srcCellId)
		}
	}

	api.respond(c, http.StatusOK, values, err)
}

func (api *ApiController) RemoveCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	var values contracts.ValueMap

	err := c.ShouldBindUri(&params)
	if err == nil {
		values, err = api.SpreadsheetService.Remove(c.Request.Context(), params.SsName, params.CellId)
	}

	api.respond(c, http.StatusOK, values, err)
}

func (api *ApiController) DumpAction(c *gin.Context) {
	params := SheetEndpointParams{}
	query := DumpQuery{}
	var cells []contracts.Cell

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindQuery(&query)
	}
	if err == nil {
		cells, err = api.SpreadsheetService.Dump(c.Request.Context(), params.SsName, query.WithValues)
	}

	api.respond(c, http.StatusOK, cells, err)
}

func (api *ApiController) ClearAction(c *gin.Context) {
	params := SheetEndpointParams{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = api.SpreadsheetService.Clear(c.Request.Context(), params.SsName)
	}

	api.respond(c, http.StatusOK, nil, err)
}

func (api *ApiController) respond(c *gin.Context, status int, result any, err error) {
	if err != nil {
		api.Envelopes.WriteFailure(c, err)
	} else {
		api.Envelopes.WriteSuccess(c, status, result)
	}
}
