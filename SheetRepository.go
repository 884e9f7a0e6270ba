package main

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/Sakshi-Shah5/Interactive-Spreadsheet-Application/contracts"
	"go.etcd.io/bbolt"
)

// SheetRepository is the evaluation service: it keeps cell expressions in
// bbolt, one bucket per spreadsheet, and recomputes values on demand.
type SheetRepository struct {
	db             *bbolt.DB
	executor       contracts.ExpressionExecutor
	serializer     contracts.CellSerializer
	canonicalizer  contracts.Canonicalizer
	adjuster       contracts.ReferenceAdjuster
	dependencyTree contracts.CellDependencyTree
}

var sheetBucketPrefix = [4]byte{'_', '_', 's', '_'}

func NewSheetRepository(
	db *bbolt.DB, executor contracts.ExpressionExecutor,
	serializer contracts.CellSerializer, canonicalizer contracts.Canonicalizer,
	adjuster contracts.ReferenceAdjuster,
) *SheetRepository {
	return &SheetRepository{
		db:             db,
		executor:       executor,
		serializer:     serializer,
		canonicalizer:  canonicalizer,
		adjuster:       adjuster,
		dependencyTree: NewCellDependencyTree(),
	}
}

func (s *SheetRepository) Load(ctx context.Context, ssName string, cells []contracts.CellExpression) error {
	err := s.update(ctx, ssName, func(tx *bbolt.Tx, sheetId []byte) (err error) {
		if err = s.dropSheet(tx, sheetId); err != nil {
			return err
		}
		if _, err = tx.CreateBucket(s.makeSheetBucketId(sheetId)); err != nil {
			return err
		}

		var cellId string
		for _, cell := range cells {
			cellId, err = s.canonicalizer.CanonicalizeCellId(cell.Id)
			if err != nil {
				return err
			}
			if _, err = s.setCell(tx, sheetId, cellId, cell.Expr); err != nil {
				return fmt.Errorf("cell %s: %w", cellId, err)
			}
		}
		return nil
	})

	return toDomainErrors(err)
}

func (s *SheetRepository) Query(ctx context.Context, ssName string, cellId string) (cell *contracts.Cell, err error) {
	err = s.view(ctx, ssName, func(tx *bbolt.Tx, sheetId []byte) error {
		canonicalId, err := s.canonicalizer.CanonicalizeCellId(cellId)
		if err != nil {
			return err
		}

		bucket := tx.Bucket(s.makeSheetBucketId(sheetId))
		if bucket == nil {
			return fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
		}

		stored, found, err := s.readCell(bucket, canonicalId)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%s: %w", canonicalId, contracts.CellNotFoundError)
		}

		value, err := s.newEvaluator(bucket).value(canonicalId)
		if err != nil {
			return err
		}

		cell = &contracts.Cell{Id: canonicalId, Expr: stored.Expr, Value: &value}
		return nil
	})

	if err != nil {
		return nil, toDomainErrors(err)
	}
	return cell, nil
}

func (s *SheetRepository) Evaluate(ctx context.Context, ssName string, cellId string, expr string) (values contracts.ValueMap, err error) {
	err = s.update(ctx, ssName, func(tx *bbolt.Tx, sheetId []byte) error {
		canonicalId, err := s.canonicalizer.CanonicalizeCellId(cellId)
		if err != nil {
			return err
		}

		values, err = s.setCell(tx, sheetId, canonicalId, expr)
		return err
	})

	if err != nil {
		return nil, toDomainErrors(err)
	}
	return values, nil
}

func (s *SheetRepository) Copy(ctx context.Context, ssName string, destCellId string, srcCellId string) (values contracts.ValueMap, err error) {
	err = s.update(ctx, ssName, func(tx *bbolt.Tx, sheetId []byte) error {
		destId, err := s.canonicalizer.CanonicalizeCellId(destCellId)
		if err != nil {
			return err
		}
		srcId, err := s.canonicalizer.CanonicalizeCellId(srcCellId)
		if err != nil {
			return err
		}

		bucket := tx.Bucket(s.makeSheetBucketId(sheetId))
		if bucket == nil {
			return fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
		}

		src, found, err := s.readCell(bucket, srcId)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%s: %w", srcId, contracts.CellNotFoundError)
		}

		adjusted, err := s.adjuster.Adjust(src.Expr, srcId, destId)
		if err != nil {
			return err
		}

		values, err = s.setCell(tx, sheetId, destId, adjusted)
		return err
	})

	if err != nil {
		return nil, toDomainErrors(err)
	}
	return values, nil
}

func (s *SheetRepository) Remove(ctx context.Context, ssName string, cellId string) (values contracts.ValueMap, err error) {
	values = contracts.ValueMap{}

	err = s.update(ctx, ssName, func(tx *bbolt.Tx, sheetId []byte) error {
		canonicalId, err := s.canonicalizer.CanonicalizeCellId(cellId)
		if err != nil {
			return err
		}

		bucket := tx.Bucket(s.makeSheetBucketId(sheetId))
		if bucket == nil {
			return nil
		}

		dependants := s.dependencyTree.GetDependants(tx, sheetId, canonicalId)

		if err = bucket.Delete([]byte(canonicalId)); err != nil {
			return err
		}
		if err = s.dependencyTree.SetDependsOn(tx, sheetId, canonicalId, nil); err != nil {
			return err
		}

		return s.recompute(bucket, dependants, values)
	})

	if err != nil {
		return nil, toDomainErrors(err)
	}
	return values, nil
}

func (s *SheetRepository) Dump(ctx context.Context, ssName string, withValues bool) (cells []contracts.Cell, err error) {
	cells = make([]contracts.Cell, 0)

	err = s.view(ctx, ssName, func(tx *bbolt.Tx, sheetId []byte) error {
		bucket := tx.Bucket(s.makeSheetBucketId(sheetId))
		if bucket == nil {
			return nil
		}

		evaluator := s.newEvaluator(bucket)
		c := bucket.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			stored, err := s.serializer.Unmarshal(v)
			if err != nil {
				return err
			}

			cell := contracts.Cell{Id: stored.Id, Expr: stored.Expr}
			if withValues {
				value, err := evaluator.value(stored.Id)
				if err != nil {
					return err
				}
				cell.Value = &value
			}
			cells = append(cells, cell)
		}
		return nil
	})

	if err != nil {
		return nil, toDomainErrors(err)
	}

	sort.Slice(cells, func(i, j int) bool {
		return compareCellIds(cells[i].Id, cells[j].Id) < 0
	})
	return cells, nil
}

func (s *SheetRepository) Clear(ctx context.Context, ssName string) error {
	return toDomainErrors(s.update(ctx, ssName, func(tx *bbolt.Tx, sheetId []byte) error {
		return s.dropSheet(tx, sheetId)
	}))
}

// setCell stores expr into cellId and returns the recomputed values of the
// cell and all of its transitive dependants.
func (s *SheetRepository) setCell(tx *bbolt.Tx, sheetId []byte, cellId string, expr string) (contracts.ValueMap, error) {
	dependingOn, err := s.executor.ExtractDependingOnList(expr)
	if err != nil {
		return nil, err
	}

	dependants := s.dependencyTree.GetDependants(tx, sheetId, cellId)

	forbidden := make(map[string]bool, len(dependants)+1)
	forbidden[cellId] = true
	for _, dependantCellId := range dependants {
		forbidden[dependantCellId] = true
	}
	for _, dependingOnCellId := range dependingOn {
		if forbidden[dependingOnCellId] {
			return nil, fmt.Errorf("%s -> %s: %w", cellId, dependingOnCellId, CircularReferenceError)
		}
	}

	bucket, err := tx.CreateBucketIfNotExists(s.makeSheetBucketId(sheetId))
	if err != nil {
		return nil, err
	}

	err = bucket.Put([]byte(cellId), s.serializer.Marshal(contracts.CellExpression{Id: cellId, Expr: expr}))
	if err != nil {
		return nil, err
	}

	err = s.dependencyTree.SetDependsOn(tx, sheetId, cellId, dependingOn)
	if err != nil {
		return nil, err
	}

	values := contracts.ValueMap{}
	return values, s.recompute(bucket, append([]string{cellId}, dependants...), values)
}

func (s *SheetRepository) recompute(bucket *bbolt.Bucket, cellIds []string, values contracts.ValueMap) error {
	evaluator := s.newEvaluator(bucket)
	for _, cellId := range cellIds {
		value, err := evaluator.value(cellId)
		if err != nil {
			return fmt.Errorf("cell %s: %w", cellId, err)
		}
		values[cellId] = value
	}
	return nil
}

func (s *SheetRepository) readCell(bucket *bbolt.Bucket, cellId string) (cell contracts.CellExpression, found bool, err error) {
	data := bucket.Get([]byte(cellId))
	if data == nil {
		return cell, false, nil
	}

	cell, err = s.serializer.Unmarshal(data)
	return cell, err == nil, err
}

func (s *SheetRepository) dropSheet(tx *bbolt.Tx, sheetId []byte) error {
	bucketId := s.makeSheetBucketId(sheetId)
	if tx.Bucket(bucketId) != nil {
		if err := tx.DeleteBucket(bucketId); err != nil {
			return err
		}
	}
	return s.dependencyTree.DropSheet(tx, sheetId)
}

func (s *SheetRepository) view(ctx context.Context, ssName string, fn func(tx *bbolt.Tx, sheetId []byte) error) error {
	sheetId, err := s.prepare(ctx, ssName)
	if err != nil {
		return err
	}
	return s.db.View(func(tx *bbolt.Tx) error {
		return fn(tx, sheetId)
	})
}

func (s *SheetRepository) update(ctx context.Context, ssName string, fn func(tx *bbolt.Tx, sheetId []byte) error) error {
	sheetId, err := s.prepare(ctx, ssName)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return fn(tx, sheetId)
	})
}

func (s *SheetRepository) prepare(ctx context.Context, ssName string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	canonicalName, err := s.canonicalizer.CanonicalizeSheetName(ssName)
	if err != nil {
		return nil, err
	}
	return []byte(canonicalName), nil
}

func (s *SheetRepository) makeSheetBucketId(sheetId []byte) []byte {
	return append(sheetBucketPrefix[:], sheetId...)
}

func (s *SheetRepository) newEvaluator(bucket *bbolt.Bucket) *sheetEvaluator {
	return &sheetEvaluator{
		repository: s,
		bucket:     bucket,
		values:     map[string]float64{},
		inProgress: map[string]bool{},
	}
}

// sheetEvaluator memoizes cell values within one transaction.
type sheetEvaluator struct {
	repository *SheetRepository
	bucket     *bbolt.Bucket
	values     map[string]float64
	inProgress map[string]bool
}

func (e *sheetEvaluator) value(cellId string) (float64, error) {
	if value, ok := e.values[cellId]; ok {
		return value, nil
	}
	if e.inProgress[cellId] {
		return 0, fmt.Errorf("%s: %w", cellId, CircularReferenceError)
	}

	stored, found, err := e.repository.readCell(e.bucket, cellId)
	if err != nil {
		return 0, err
	}
	if !found {
		e.values[cellId] = 0
		return 0, nil
	}

	e.inProgress[cellId] = true
	value, err := e.repository.executor.Evaluate(stored.Expr, e.getValues)
	delete(e.inProgress, cellId)
	if err != nil {
		return 0, err
	}

	e.values[cellId] = value
	return value, nil
}

func (e *sheetEvaluator) getValues(cellIds []string) ([]float64, error) {
	values := make([]float64, len(cellIds))
	for index, cellId := range cellIds {
		value, err := e.value(cellId)
		if err != nil {
			return nil, err
		}
		values[index] = value
	}
	return values, nil
}

// compareCellIds orders cell ids by column, then numerically by row.
func compareCellIds(a string, b string) int {
	if a[0] != b[0] {
		return int(a[0]) - int(b[0])
	}
	rowA, _ := strconv.Atoi(a[1:])
	rowB, _ := strconv.Atoi(b[1:])
	return rowA - rowB
}

// toDomainErrors classifies engine errors into the closed code set.
func toDomainErrors(err error) error {
	if err == nil {
		return nil
	}

	var domainErrors contracts.DomainErrors
	if errors.As(err, &domainErrors) {
		return domainErrors
	}

	message := err.Error()
	switch {
	case errors.Is(err, contracts.SheetNotFoundError), errors.Is(err, contracts.CellNotFoundError):
		return contracts.Errorf(contracts.CodeNotFound, message)
	case errors.Is(err, contracts.SheetNameInvalidError),
		errors.Is(err, contracts.CellIdInvalidError),
		errors.Is(err, ExpressionError):
		return contracts.Errorf(contracts.CodeBadRequest, message)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return contracts.Errorf(contracts.CodeInternal, message)
	default:
		return contracts.Errorf(contracts.CodeDB, message)
	}
}
