package cellsync

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Sakshi-Shah5/Interactive-Spreadsheet-Application/contracts"
)

type State int

const (
	Idle State = iota
	Focused
	CopySource
	Committing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Focused:
		return "Focused"
	case CopySource:
		return "CopySource"
	case Committing:
		return "Committing"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

var SessionClosedError = errors.New("session closed")

const eventQueueSize = 64

// Snapshot is the bookkeeping of a Session at one point of its event loop.
type Snapshot struct {
	Focused    string
	CopySource string
	States     map[string]State
}

// Session synchronizes one spreadsheet view with the service.
//
// All state changes and grid writes happen on the goroutine running Run.
// Service calls run in their own goroutines and post their completion back to
// the loop, so handlers never interleave. Calls are never cancelled by later
// events; they end with the Run context.
type Session struct {
	ssName  string
	service contracts.SpreadsheetService
	grid    Grid
	logger  *slog.Logger

	events  chan func()
	done    chan struct{}
	ctx     context.Context
	cellIds map[string]bool

	// owned by the loop
	focused    string
	copySource string
	committing map[string]int
}

func NewSession(ssName string, service contracts.SpreadsheetService, grid Grid, logger *slog.Logger) *Session {
	cellIds := make(map[string]bool)
	for _, cellId := range contracts.AllCellIds() {
		cellIds[cellId] = true
	}

	return &Session{
		ssName:     ssName,
		service:    service,
		grid:       grid,
		logger:     logger.With(slog.String("sheet", ssName)),
		events:     make(chan func(), eventQueueSize),
		done:       make(chan struct{}),
		cellIds:    cellIds,
		committing: make(map[string]int),
	}
}

// Run processes events until ctx is cancelled. It must be called once.
// Events posted before Run starts are queued.
func (s *Session) Run(ctx context.Context) {
	s.ctx = ctx
	defer close(s.done)

	for {
		select {
		case <-ctx.Done():
			return
		case event := <-s.events:
			event()
		}
	}
}

// Focus handles focusin: the cell shows its raw expression and becomes the
// focused cell.
func (s *Session) Focus(cellId string) error {
	return s.post(func() {
		if !s.cellIds[cellId] {
			return
		}

		s.grid.ClearErrors()
		expr, _ := s.grid.Attr(cellId, ExprAttr)
		s.grid.SetText(cellId, expr)
		s.focused = cellId
		s.trace("focus", cellId)
	})
}

// Blur handles focusout: the trimmed text is committed, or the cell is
// removed when the text is empty.
func (s *Session) Blur(cellId string) error {
	return s.post(func() {
		if s.focused != cellId {
			return
		}

		s.focused = ""
		s.committing[cellId]++
		text := strings.TrimSpace(s.grid.Text(cellId))
		s.trace("commit", cellId)

		if text == "" {
			s.call(func(ctx context.Context) func() {
				values, err := s.service.Remove(ctx, s.ssName, cellId)
				return func() {
					s.endCommit(cellId)
					if err != nil {
						s.showErrors(err)
						return
					}
					s.grid.RemoveAttr(cellId, ExprAttr)
					s.grid.RemoveAttr(cellId, ValueAttr)
					s.applyValues(values)
				}
			})
			return
		}

		s.call(func(ctx context.Context) func() {
			values, err := s.service.Evaluate(ctx, s.ssName, cellId, text)
			return func() {
				s.endCommit(cellId)
				if err != nil {
					s.showErrors(err)
					return
				}
				s.grid.SetAttr(cellId, ExprAttr, text)
				s.applyValues(values)
			}
		})
	})
}

// Copy marks the cell as the copy source. The service is not involved.
func (s *Session) Copy(cellId string) error {
	return s.post(func() {
		if !s.cellIds[cellId] {
			return
		}

		if s.copySource != "" {
			s.grid.RemoveClass(s.copySource, CopySourceClass)
		}
		s.copySource = cellId
		s.grid.AddClass(cellId, CopySourceClass)
		s.trace("copy", cellId)
	})
}

// Paste copies the recorded copy source into the cell. Without a copy source
// it does nothing. The source is released once the service answers.
func (s *Session) Paste(cellId string) error {
	return s.post(func() {
		srcCellId := s.copySource
		if srcCellId == "" || !s.cellIds[cellId] {
			return
		}
		s.trace("paste", cellId)

		s.call(func(ctx context.Context) func() {
			values, err := s.service.Copy(ctx, s.ssName, cellId, srcCellId)
			return func() {
				s.releaseCopySource(srcCellId)
				if err != nil {
					s.showErrors(err)
					return
				}
				s.applyValues(values)
				s.refreshExpr(cellId)
			}
		})
	})
}

// Clear empties the spreadsheet and, once the service confirms, every cell.
func (s *Session) Clear() error {
	return s.post(func() {
		s.trace("clear", "")

		s.call(func(ctx context.Context) func() {
			err := s.service.Clear(ctx, s.ssName)
			return func() {
				if err != nil {
					s.showErrors(err)
					return
				}
				for cellId := range s.cellIds {
					s.grid.RemoveAttr(cellId, ExprAttr)
					s.grid.RemoveAttr(cellId, ValueAttr)
					s.grid.SetText(cellId, "")
				}
			}
		})
	})
}

// Load renders the stored spreadsheet. The focused cell is left alone.
func (s *Session) Load() error {
	return s.post(func() {
		s.trace("load", "")

		s.call(func(ctx context.Context) func() {
			cells, err := s.service.Dump(ctx, s.ssName, true)
			return func() {
				if err != nil {
					s.showErrors(err)
					return
				}
				for _, cell := range cells {
					if cell.Id == s.focused || !s.cellIds[cell.Id] {
						continue
					}
					s.grid.SetAttr(cell.Id, ExprAttr, cell.Expr)
					if cell.Value != nil {
						s.setValue(cell.Id, *cell.Value)
					} else {
						s.grid.RemoveAttr(cell.Id, ValueAttr)
						s.grid.SetText(cell.Id, "")
					}
				}
			}
		})
	})
}

// Snapshot reads the session bookkeeping through the event loop, so it
// reflects every event and completion processed before it.
func (s *Session) Snapshot() (Snapshot, error) {
	reply := make(chan Snapshot, 1)
	err := s.post(func() {
		states := make(map[string]State, len(s.cellIds))
		for cellId := range s.cellIds {
			states[cellId] = s.state(cellId)
		}
		reply <- Snapshot{Focused: s.focused, CopySource: s.copySource, States: states}
	})
	if err != nil {
		return Snapshot{}, err
	}

	select {
	case snapshot := <-reply:
		return snapshot, nil
	case <-s.done:
		return Snapshot{}, SessionClosedError
	}
}

func (s *Session) state(cellId string) State {
	switch {
	case s.focused == cellId:
		return Focused
	case s.committing[cellId] > 0:
		return Committing
	case s.copySource == cellId:
		return CopySource
	default:
		return Idle
	}
}

func (s *Session) post(event func()) error {
	select {
	case s.events <- event:
		return nil
	case <-s.done:
		return SessionClosedError
	}
}

// call runs request off the loop and posts the completion it returns.
func (s *Session) call(request func(ctx context.Context) func()) {
	ctx := s.ctx
	go func() {
		completion := request(ctx)
		_ = s.post(completion)
	}()
}

// refreshExpr re-reads the expression of a pasted cell, since the service
// adjusts relative references while copying.
func (s *Session) refreshExpr(cellId string) {
	s.call(func(ctx context.Context) func() {
		cell, err := s.service.Query(ctx, s.ssName, cellId)
		return func() {
			if err != nil {
				s.showErrors(err)
				return
			}
			s.grid.SetAttr(cellId, ExprAttr, cell.Expr)
			if s.focused == cellId {
				s.grid.SetText(cellId, cell.Expr)
			}
		}
	})
}

// applyValues writes recomputed values to every cell except the one focused
// when the response is processed.
func (s *Session) applyValues(values contracts.ValueMap) {
	for cellId, value := range values {
		if cellId == s.focused || !s.cellIds[cellId] {
			continue
		}
		s.setValue(cellId, value)
	}
}

func (s *Session) setValue(cellId string, value float64) {
	formatted := strconv.FormatFloat(value, 'f', -1, 64)
	s.grid.SetAttr(cellId, ValueAttr, formatted)
	s.grid.SetText(cellId, formatted)
}

func (s *Session) endCommit(cellId string) {
	if s.committing[cellId]--; s.committing[cellId] <= 0 {
		delete(s.committing, cellId)
	}
}

func (s *Session) releaseCopySource(srcCellId string) {
	s.grid.RemoveClass(srcCellId, CopySourceClass)
	if s.copySource == srcCellId {
		s.copySource = ""
	}
}

func (s *Session) showErrors(err error) {
	var domainErrors contracts.DomainErrors
	if !errors.As(err, &domainErrors) {
		domainErrors = contracts.Errorf(contracts.CodeInternal, err.Error())
	}

	s.logger.Debug("request failed", slog.String("error", domainErrors.Error()))
	s.grid.ShowErrors(domainErrors)
}

func (s *Session) trace(event string, cellId string) {
	s.logger.Debug("transition",
		slog.String("event", event),
		slog.String("cell", cellId),
		slog.String("focused", s.focused),
		slog.String("copySource", s.copySource),
	)
}
