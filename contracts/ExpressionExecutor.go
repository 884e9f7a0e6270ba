package contracts

// CellValuesGetter returns the values of the given canonical cell ids, in order.
type CellValuesGetter func(cellIds []string) ([]float64, error)

type ExpressionExecutor interface {
	Evaluate(expression string, values CellValuesGetter) (float64, error)
	ExtractDependingOnList(expression string) (dependingOnCellIds []string, err error)
}

type Canonicalizer interface {
	CanonicalizeSheetName(ssName string) (string, error)
	CanonicalizeCellId(cellId string) (string, error)
	CanonicalizeExpression(expression string) string
}

type ReferenceAdjuster interface {
	// Adjust rewrites the relative references of expression as if it was moved
	// from srcCellId to destCellId.
	Adjust(expression string, srcCellId string, destCellId string) (string, error)
}
