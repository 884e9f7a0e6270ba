package contracts

import (
	"errors"
	"strconv"
)

// GridColumns are the column letters of the fixed grid, left to right.
const GridColumns = "abcdefghij"

// GridRows is the number of rows of the fixed grid.
const GridRows = 10

type Cell struct {
	Id    string   `json:"id"`
	Expr  string   `json:"expr"`
	Value *float64 `json:"value,omitempty"`
}

type CellExpression struct {
	Id   string `json:"id"`
	Expr string `json:"expr"`
}

// ValueMap is the affected-cell-id → recomputed value map returned by mutations.
type ValueMap map[string]float64

var CellNotFoundError = errors.New("cell not found")

var CellIdInvalidError = errors.New("invalid cell id")

// AllCellIds lists every cell id of the grid row by row (a1, b1, ... j10).
func AllCellIds() []string {
	ids := make([]string, 0, len(GridColumns)*GridRows)
	for row := 1; row <= GridRows; row++ {
		for _, column := range GridColumns {
			ids = append(ids, string(column)+strconv.Itoa(row))
		}
	}
	return ids
}
