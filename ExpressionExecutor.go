package main

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/Sakshi-Shah5/Interactive-Spreadsheet-Application/contracts"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

type ExpressionExecutor struct {
	canonicalizer   contracts.Canonicalizer
	compilerOptions []expr.Option
	vmPool          sync.Pool
}

const FormulaPrefix = "="

var ExpressionError = errors.New("expression error")

var EmptyExpressionError = fmt.Errorf("%w: %s", ExpressionError, "expression is empty")

var CircularReferenceError = fmt.Errorf("%w: %s", ExpressionError, "circular reference detected")

var UnknownIdentifierError = fmt.Errorf("%w: %s", ExpressionError, "unknown identifier")

var NotANumberError = fmt.Errorf("%w: %s", ExpressionError, "result is not a finite number")

func NewExpressionExecutor(canonicalizer contracts.Canonicalizer) *ExpressionExecutor {
	return &ExpressionExecutor{
		canonicalizer: canonicalizer,
		compilerOptions: []expr.Option{
			expr.Env(map[string]any{}),
			expr.AllowUndefinedVariables(),
			expr.DisableAllBuiltins(),
			maxFunction,
			minFunction,
			sumFunction,
			avgFunction,
		},

		vmPool: sync.Pool{
			New: func() any {
				return new(vm.VM)
			},
		},
	}
}

func (e *ExpressionExecutor) Evaluate(expression string, values contracts.CellValuesGetter) (float64, error) {
	program, cellIds, err := e.compile(expression)
	if err != nil {
		return 0, err
	}

	env := make(map[string]any, len(cellIds))
	if len(cellIds) != 0 {
		fetched, err := values(cellIds)
		if err != nil {
			return 0, err
		}
		for index, cellId := range cellIds {
			env[cellId] = fetched[index]
		}
	}

	v := e.vmPool.Get().(*vm.VM)
	output, err := v.Run(program, env)
	e.vmPool.Put(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ExpressionError, err)
	}

	return e.toNumber(output)
}

func (e *ExpressionExecutor) ExtractDependingOnList(expression string) ([]string, error) {
	_, cellIds, err := e.compile(expression)
	return cellIds, err
}

func (e *ExpressionExecutor) compile(expression string) (*vm.Program, []string, error) {
	canonical := e.canonicalizer.CanonicalizeExpression(expression)
	if canonical == "" {
		return nil, nil, EmptyExpressionError
	}

	visitor := NewFindCellRefsVisitor(mathFunctionNames)
	options := append([]expr.Option{expr.Patch(visitor)}, e.compilerOptions...)

	program, err := expr.Compile(canonical, options...)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", ExpressionError, err)
	}

	cellIds := make([]string, 0, len(visitor.identifiers))
	for _, identifier := range visitor.identifiers {
		cellId, err := e.canonicalizer.CanonicalizeCellId(identifier)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", identifier, UnknownIdentifierError)
		}
		cellIds = append(cellIds, cellId)
	}

	return program, cellIds, nil
}

func (e *ExpressionExecutor) toNumber(output any) (float64, error) {
	var number float64

	switch value := output.(type) {
	case int:
		number = float64(value)
	case int64:
		number = float64(value)
	case float64:
		number = value
	default:
		return 0, fmt.Errorf("%v: %w", output, NotANumberError)
	}

	if math.IsInf(number, 0) || math.IsNaN(number) {
		return 0, fmt.Errorf("%v: %w", number, NotANumberError)
	}

	return number, nil
}
