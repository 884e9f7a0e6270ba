// Package cellsync keeps a rendered grid of formula cells in step with the
// spreadsheet service, one Session per spreadsheet view.
package cellsync

import "github.com/Sakshi-Shah5/Interactive-Spreadsheet-Application/contracts"

const (
	ExprAttr  = "data-expr"
	ValueAttr = "data-value"

	CopySourceClass = "copy-source"
)

// Grid is the rendered view of the cells. A Session is its only writer.
type Grid interface {
	Text(cellId string) string
	SetText(cellId string, text string)

	Attr(cellId string, name string) (string, bool)
	SetAttr(cellId string, name string, value string)
	RemoveAttr(cellId string, name string)

	HasClass(cellId string, class string) bool
	AddClass(cellId string, class string)
	RemoveClass(cellId string, class string)

	ShowErrors(errors []contracts.DomainError)
	ClearErrors()
}
