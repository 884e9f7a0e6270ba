package main

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/Sakshi-Shah5/Interactive-Spreadsheet-Application/contracts"
)

var SerializerError = errors.New("invalid serialized data")

// CellBinarySerializer stores a cell as uint16 id length, id bytes, expression bytes.
type CellBinarySerializer struct {
}

func NewCellBinarySerializer() *CellBinarySerializer {
	return &CellBinarySerializer{}
}

func (s *CellBinarySerializer) Marshal(cell contracts.CellExpression) []byte {
	idBytes := []byte(cell.Id)

	serializedData := make([]byte, 0, 2+len(idBytes)+len(cell.Expr))

	serializedData = binary.LittleEndian.AppendUint16(serializedData, uint16(len(idBytes)))
	serializedData = append(serializedData, idBytes...)
	serializedData = append(serializedData, []byte(cell.Expr)...)
	return serializedData
}

func (s *CellBinarySerializer) Unmarshal(data []byte) (cell contracts.CellExpression, err error) {
	if len(data) < 2 {
		return cell, fmt.Errorf("%w: should be more than 2 bytes (data: %v)", SerializerError, string(data))
	}

	idLength := binary.LittleEndian.Uint16(data)
	if len(data) < int(idLength)+2 {
		return cell, fmt.Errorf("%w: id size is less than bytes amount (idSize: %d; data: %v)", SerializerError, idLength, string(data))
	}

	cell.Id = string(data[2 : idLength+2])
	cell.Expr = string(data[idLength+2:])
	return
}
