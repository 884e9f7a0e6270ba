package main

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Sakshi-Shah5/Interactive-Spreadsheet-Application/contracts"
)

type Canonicalizer struct {
	cellIdRegex      *regexp.Regexp
	sheetNameRegex   *regexp.Regexp
	absoluteRefRegex *regexp.Regexp
}

func NewCanonicalizer() *Canonicalizer {
	return &Canonicalizer{
		cellIdRegex:    regexp.MustCompile(`^[a-j](?:[1-9]|10)$`),
		sheetNameRegex: regexp.MustCompile(`^[a-z0-9_-]{1,64}$`),

		// `$` anchors a reference axis for copies only; evaluation ignores it
		absoluteRefRegex: regexp.MustCompile(`\$?\b([a-z])\$?(\d+)\b`),
	}
}

func (c *Canonicalizer) CanonicalizeSheetName(ssName string) (string, error) {
	canonical := strings.ToLower(strings.TrimSpace(ssName))
	if !c.sheetNameRegex.MatchString(canonical) {
		return "", fmt.Errorf("`%s`: %w", ssName, contracts.SheetNameInvalidError)
	}
	return canonical, nil
}

func (c *Canonicalizer) CanonicalizeCellId(cellId string) (string, error) {
	canonical := strings.ToLower(strings.TrimSpace(cellId))
	if !c.cellIdRegex.MatchString(canonical) {
		return "", fmt.Errorf("`%s`: %w", cellId, contracts.CellIdInvalidError)
	}
	return canonical, nil
}

func (c *Canonicalizer) CanonicalizeExpression(expression string) string {
	expression = strings.TrimPrefix(strings.TrimSpace(expression), FormulaPrefix)
	return c.absoluteRefRegex.ReplaceAllString(strings.ToLower(expression), "$1$2")
}
