package contracts

import "go.etcd.io/bbolt"

type CellDependencyTree interface {
	// SetDependsOn
	/**
	 * Example, for formula `a1 = b1 + c1`:
	 * `dependantCellId` depends on `dependingOnCellIds`
	 * a1 depends on b1 and c1
	 *  SetDependsOn(tx, sheet, "a1", []string{"b1", "c1"})
	 * `e5 = a1 * c1`
	 *  SetDependsOn(tx, sheet, "e5", []string{"a1", "c1"})
	 */
	SetDependsOn(tx *bbolt.Tx, sheetId []byte, dependantCellId string, dependingOnCellIds []string) error

	// GetDependants
	/**
	 * For formulas
	 *    - `a1 = b1 + c1` => a1 is a dependant of b1 and c1;
	 *    - `e5 = a1 * c1` => e5 is a dependant of a1 and c1;
	 *      recursively, e5 is a dependant of b1 (via a1)
	 * GetDependants("b1") should return ["a1", "e5"]
	 *
	 * Internally, it is stored as B+tree with prefixed keys,
	 * so the direct dependants of a cell are a single cursor seek.
	 */
	GetDependants(tx *bbolt.Tx, sheetId []byte, dependingOnCellId string) []string

	// DropSheet removes every dependency record of the sheet.
	DropSheet(tx *bbolt.Tx, sheetId []byte) error
}
