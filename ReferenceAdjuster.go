package main

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Sakshi-Shah5/Interactive-Spreadsheet-Application/contracts"
)

var ReferenceOutOfGridError = fmt.Errorf("%w: %s", ExpressionError, "copied reference falls outside the grid")

// ReferenceAdjuster shifts the relative parts of cell references when an
// expression is copied; `$` pins the column or row that follows it.
type ReferenceAdjuster struct {
	canonicalizer contracts.Canonicalizer
	refRegex      *regexp.Regexp
}

func NewReferenceAdjuster(canonicalizer contracts.Canonicalizer) *ReferenceAdjuster {
	return &ReferenceAdjuster{
		canonicalizer: canonicalizer,
		refRegex:      regexp.MustCompile(`(?i)(\$?)\b([a-z])(\$?)(\d+)\b`),
	}
}

func (a *ReferenceAdjuster) Adjust(expression string, srcCellId string, destCellId string) (string, error) {
	srcColumn, srcRow, err := a.position(srcCellId)
	if err != nil {
		return "", err
	}
	destColumn, destRow, err := a.position(destCellId)
	if err != nil {
		return "", err
	}

	columnOffset := destColumn - srcColumn
	rowOffset := destRow - srcRow

	var adjustErr error
	adjusted := a.refRegex.ReplaceAllStringFunc(expression, func(ref string) string {
		parts := a.refRegex.FindStringSubmatch(ref)
		columnAbsolute, rowAbsolute := parts[1] == "$", parts[3] == "$"

		column := strings.IndexByte(contracts.GridColumns, strings.ToLower(parts[2])[0])
		row, _ := strconv.Atoi(parts[4])

		if !columnAbsolute {
			column += columnOffset
		}
		if !rowAbsolute {
			row += rowOffset
		}

		if column < 0 || column >= len(contracts.GridColumns) || row < 1 || row > contracts.GridRows {
			if adjustErr == nil {
				adjustErr = fmt.Errorf("%s copied to %s: %w", ref, destCellId, ReferenceOutOfGridError)
			}
			return ref
		}

		return parts[1] + string(contracts.GridColumns[column]) + parts[3] + strconv.Itoa(row)
	})

	if adjustErr != nil {
		return "", adjustErr
	}
	return adjusted, nil
}

func (a *ReferenceAdjuster) position(cellId string) (column int, row int, err error) {
	canonical, err := a.canonicalizer.CanonicalizeCellId(cellId)
	if err != nil {
		return 0, 0, err
	}

	row, err = strconv.Atoi(canonical[1:])
	if err != nil {
		return 0, 0, errors.Join(contracts.CellIdInvalidError, err)
	}

	return strings.IndexByte(contracts.GridColumns, canonical[0]), row, nil
}
