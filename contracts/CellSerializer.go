package contracts

type CellSerializer interface {
	Marshal(cell CellExpression) []byte
	Unmarshal([]byte) (CellExpression, error)
}
