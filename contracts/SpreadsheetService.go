package contracts

import (
	"context"
	"errors"
)

// SpreadsheetService is the evaluation service contract. Every failure is
// returned as DomainErrors.
type SpreadsheetService interface {
	// Load replaces the whole spreadsheet with the given cells.
	Load(ctx context.Context, ssName string, cells []CellExpression) error
	Query(ctx context.Context, ssName string, cellId string) (*Cell, error)
	// Evaluate sets the expression of cellId and returns every cell whose value
	// was recomputed, cellId included.
	Evaluate(ctx context.Context, ssName string, cellId string, expr string) (ValueMap, error)
	// Copy evaluates srcCellId's expression, with relative references adjusted,
	// into destCellId.
	Copy(ctx context.Context, ssName string, destCellId string, srcCellId string) (ValueMap, error)
	Remove(ctx context.Context, ssName string, cellId string) (ValueMap, error)
	Dump(ctx context.Context, ssName string, withValues bool) ([]Cell, error)
	Clear(ctx context.Context, ssName string) error
}

var SheetNotFoundError = errors.New("spreadsheet not found")

var SheetNameInvalidError = errors.New("invalid spreadsheet name")
