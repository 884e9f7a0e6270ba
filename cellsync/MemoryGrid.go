package cellsync

import (
	"sync"

	"github.com/Sakshi-Shah5/Interactive-Spreadsheet-Application/contracts"
)

type memoryCell struct {
	text    string
	attrs   map[string]string
	classes map[string]bool
}

// MemoryGrid is a Grid of the fixed cell set held in memory. Writes to ids
// outside the grid are ignored.
type MemoryGrid struct {
	mu     sync.RWMutex
	cells  map[string]*memoryCell
	errors []contracts.DomainError
}

func NewMemoryGrid() *MemoryGrid {
	grid := &MemoryGrid{cells: make(map[string]*memoryCell)}
	for _, cellId := range contracts.AllCellIds() {
		grid.cells[cellId] = &memoryCell{
			attrs:   make(map[string]string),
			classes: make(map[string]bool),
		}
	}
	return grid
}

func (g *MemoryGrid) Text(cellId string) string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if cell, ok := g.cells[cellId]; ok {
		return cell.text
	}
	return ""
}

func (g *MemoryGrid) SetText(cellId string, text string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if cell, ok := g.cells[cellId]; ok {
		cell.text = text
	}
}

func (g *MemoryGrid) Attr(cellId string, name string) (value string, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if cell, exists := g.cells[cellId]; exists {
		value, ok = cell.attrs[name]
	}
	return
}

func (g *MemoryGrid) SetAttr(cellId string, name string, value string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if cell, ok := g.cells[cellId]; ok {
		cell.attrs[name] = value
	}
}

func (g *MemoryGrid) RemoveAttr(cellId string, name string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if cell, ok := g.cells[cellId]; ok {
		delete(cell.attrs, name)
	}
}

func (g *MemoryGrid) HasClass(cellId string, class string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if cell, ok := g.cells[cellId]; ok {
		return cell.classes[class]
	}
	return false
}

func (g *MemoryGrid) AddClass(cellId string, class string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if cell, ok := g.cells[cellId]; ok {
		cell.classes[class] = true
	}
}

func (g *MemoryGrid) RemoveClass(cellId string, class string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if cell, ok := g.cells[cellId]; ok {
		delete(cell.classes, class)
	}
}

func (g *MemoryGrid) ShowErrors(errors []contracts.DomainError) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.errors = append([]contracts.DomainError(nil), errors...)
}

func (g *MemoryGrid) ClearErrors() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.errors = nil
}

// Errors returns what the error panel currently shows.
func (g *MemoryGrid) Errors() []contracts.DomainError {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]contracts.DomainError(nil), g.errors...)
}
