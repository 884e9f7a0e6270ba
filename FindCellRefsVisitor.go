package main

import (
	"github.com/expr-lang/expr/ast"
)

// FindCellRefsVisitor collects the identifiers of an expression in order of
// appearance, without duplicates. Function names are reported separately.
type FindCellRefsVisitor struct {
	functions   map[string]bool
	identifiers []string
	calls       []string
	seen        map[string]bool
}

func NewFindCellRefsVisitor(functions map[string]bool) *FindCellRefsVisitor {
	return &FindCellRefsVisitor{
		functions: functions,
		seen:      map[string]bool{},
	}
}

func (v *FindCellRefsVisitor) Visit(node *ast.Node) {
	identifierNode, ok := (*node).(*ast.IdentifierNode)
	if !ok || v.seen[identifierNode.Value] {
		return
	}

	v.seen[identifierNode.Value] = true
	if v.functions[identifierNode.Value] {
		v.calls = append(v.calls, identifierNode.Value)
	} else {
		v.identifiers = append(v.identifiers, identifierNode.Value)
	}
}
