package main

import (
	"bytes"

	"go.etcd.io/bbolt"
)

// CellDependencyTree keeps, per sheet, two kinds of records in one bucket:
//   - `<dependingOn>\x00<dependant>` → empty, one per reference;
//   - `\x00\x00<dependant>` → the list of cells the dependant refers to.
type CellDependencyTree struct{}

const Delimiter = byte(0x00)

var dependencyBucketPrefix = [4]byte{'_', '_', 'd', '_'}

func NewCellDependencyTree() *CellDependencyTree {
	return &CellDependencyTree{}
}

func (t *CellDependencyTree) SetDependsOn(tx *bbolt.Tx, sheetId []byte, dependantCellId string, dependingOnCellIds []string) (err error) {
	dependingListKey := t.makeDependingListKey(dependantCellId)

	var bucket *bbolt.Bucket
	bucket, err = tx.CreateBucketIfNotExists(t.makeBucketId(sheetId))
	if err != nil {
		return err
	}

	staleReferences := map[string]bool{}
	if previous := bucket.Get(dependingListKey); previous != nil {
		for _, previousCellId := range bytes.Split(previous, []byte{Delimiter}) {
			staleReferences[string(previousCellId)] = true
		}
	}

	addedRecords := false
	for _, dependingOnCellId := range dependingOnCellIds {
		if staleReferences[dependingOnCellId] {
			// still referenced, keep the stored record
			delete(staleReferences, dependingOnCellId)
		} else {
			addedRecords = true
			err = bucket.Put(t.makeDependantKey(dependantCellId, dependingOnCellId), []byte{})
			if err != nil {
				return err
			}
		}
	}

	if !addedRecords && len(staleReferences) == 0 {
		return nil
	}

	for staleCellId := range staleReferences {
		err = bucket.Delete(t.makeDependantKey(dependantCellId, staleCellId))
		if err != nil {
			return err
		}
	}

	if len(dependingOnCellIds) == 0 {
		return bucket.Delete(dependingListKey)
	}

	joined := make([][]byte, 0, len(dependingOnCellIds))
	for _, dependingOnCellId := range dependingOnCellIds {
		joined = append(joined, []byte(dependingOnCellId))
	}
	return bucket.Put(dependingListKey, bytes.Join(joined, []byte{Delimiter}))
}

func (t *CellDependencyTree) GetDependants(tx *bbolt.Tx, sheetId []byte, dependingOnCellId string) []string {
	bucketId := t.makeBucketId(sheetId)
	if bucketId == nil {
		return []string{}
	}

	bucket := tx.Bucket(bucketId)
	if bucket == nil {
		return []string{}
	}

	return t.fetchDependantsRecursive(bucket, dependingOnCellId, map[string]bool{
		dependingOnCellId: true,
	})
}

func (t *CellDependencyTree) DropSheet(tx *bbolt.Tx, sheetId []byte) error {
	bucketId := t.makeBucketId(sheetId)
	if bucketId == nil || tx.Bucket(bucketId) == nil {
		return nil
	}
	return tx.DeleteBucket(bucketId)
}

func (t *CellDependencyTree) makeBucketId(sheetId []byte) []byte {
	if len(sheetId) == 0 {
		return nil
	}

	return append(dependencyBucketPrefix[:], sheetId...)
}

// fetchDependantsRecursive walks breadth first; alreadyFetched guards against cycles.
func (t *CellDependencyTree) fetchDependantsRecursive(bucket *bbolt.Bucket, dependingOnCellId string, alreadyFetched map[string]bool) []string {
	dependants := make([]string, 0, 8)
	queue := []string{dependingOnCellId}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dependantCellId := range t.fetchCellDependants(bucket, current) {
			if !alreadyFetched[dependantCellId] {
				alreadyFetched[dependantCellId] = true
				dependants = append(dependants, dependantCellId)
				queue = append(queue, dependantCellId)
			}
		}
	}

	return dependants
}

func (t *CellDependencyTree) fetchCellDependants(bucket *bbolt.Bucket, dependingOnCellId string) []string {
	dependantCellIds := make([]string, 0, 5)
	c := bucket.Cursor()

	prefix := t.makeDependingOnPrefixKey(dependingOnCellId)
	prefixLength := len(prefix)
	for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
		dependantCellIds = append(dependantCellIds, string(k[prefixLength:]))
	}

	return dependantCellIds
}

func (t *CellDependencyTree) makeDependingListKey(dependantCellId string) []byte {
	return append(
		[]byte{Delimiter, Delimiter},
		[]byte(dependantCellId)...,
	)
}

func (t *CellDependencyTree) makeDependingOnPrefixKey(dependingOnCellId string) []byte {
	return append([]byte(dependingOnCellId), Delimiter)
}

func (t *CellDependencyTree) makeDependantKey(dependantCellId string, dependingOnCellId string) []byte {
	return append(t.makeDependingOnPrefixKey(dependingOnCellId), []byte(dependantCellId)...)
}
