package pinmap

import (
	"errors"
	"fmt"
	"strings"
)

// Unmapped marks a signal that has no pin on one of the two boards.
const Unmapped = "???"

// Board selects one side of a translation table.
type Board int

const (
	BoardA Board = iota
	BoardB
)

// Other returns the opposite board.
func (b Board) Other() Board {
	if b == BoardA {
		return BoardB
	}
	return BoardA
}

// Side is the result of classifying a pin identifier against a table.
type Side int

const (
	// SideAmbiguous covers pins known to both boards and pins known to neither.
	SideAmbiguous Side = iota
	SideA
	SideB
)

func (s Side) String() string {
	switch s {
	case SideA:
		return "A-only"
	case SideB:
		return "B-only"
	default:
		return "ambiguous"
	}
}

// Pair associates a board A pin with the board B pin carrying the same signal.
// Either side may be Unmapped.
type Pair struct {
	A      string
	B      string
	Signal string // net name, display only (e.g. "fpgaClk")
}

// ErrDuplicatePin is matched by every *DuplicatePinError.
var ErrDuplicatePin = errors.New("duplicate pin")

// DuplicatePinError reports a pin identifier that appears twice on one board.
type DuplicatePinError struct {
	Board string
	Pin   string
}

func (e *DuplicatePinError) Error() string {
	return fmt.Sprintf("pinmap: duplicate pin in %s table: %s", e.Board, e.Pin)
}

func (e *DuplicatePinError) Is(target error) bool {
	return target == ErrDuplicatePin
}

// Table is an immutable two-way pin lookup. Every pin is stored under its
// lowercase and uppercase spelling, pointing at the identically-cased target,
// so lookups never fold case.
type Table struct {
	names   [2]string
	forward map[string]string // A -> B, value may be Unmapped
	reverse map[string]string // B -> A, value may be Unmapped
	pairs   []Pair
}

// Option configures Build.
type Option func(*Table)

// WithBoardNames sets the display names of board A and board B.
func WithBoardNames(a, b string) Option {
	return func(t *Table) {
		if a != "" {
			t.names[BoardA] = a
		}
		if b != "" {
			t.names[BoardB] = b
		}
	}
}

// Build constructs a Table from an ordered list of pairs. Duplicates on
// either board are collected and returned together; no table is returned in
// that case.
func Build(pairs []Pair, opts ...Option) (*Table, error) {
	t := &Table{
		names:   [2]string{"A", "B"},
		forward: make(map[string]string, 2*len(pairs)),
		reverse: make(map[string]string, 2*len(pairs)),
		pairs:   append([]Pair(nil), pairs...),
	}
	for _, opt := range opts {
		opt(t)
	}

	var errs []error
	for _, p := range pairs {
		if err := insert(t.forward, t.names[BoardA], p.A, p.B); err != nil {
			errs = append(errs, err)
		}
	}
	for _, p := range pairs {
		if err := insert(t.reverse, t.names[BoardB], p.B, p.A); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return t, nil
}

func insert(m map[string]string, board, key, target string) error {
	if key == Unmapped || key == "" {
		return nil
	}
	lower, upper := strings.ToLower(key), strings.ToUpper(key)
	if _, exists := m[lower]; exists {
		return &DuplicatePinError{Board: board, Pin: key}
	}
	if _, exists := m[upper]; exists {
		return &DuplicatePinError{Board: board, Pin: key}
	}
	if target == Unmapped {
		m[lower], m[upper] = Unmapped, Unmapped
		return nil
	}
	m[lower] = strings.ToLower(target)
	m[upper] = strings.ToUpper(target)
	return nil
}

// Forward translates a board A pin to board B. It reports false for pins that
// are unknown or have no board B counterpart.
func (t *Table) Forward(pin string) (string, bool) {
	return lookup(t.forward, pin)
}

// Reverse translates a board B pin to board A.
func (t *Table) Reverse(pin string) (string, bool) {
	return lookup(t.reverse, pin)
}

// Translate looks up pin on board from and returns its counterpart.
func (t *Table) Translate(from Board, pin string) (string, bool) {
	if from == BoardA {
		return t.Forward(pin)
	}
	return t.Reverse(pin)
}

func lookup(m map[string]string, pin string) (string, bool) {
	target, ok := m[pin]
	if !ok || target == Unmapped {
		return "", false
	}
	return target, true
}

// Known reports whether pin exists on the given board, including pins whose
// counterpart is Unmapped.
func (t *Table) Known(board Board, pin string) bool {
	m := t.forward
	if board == BoardB {
		m = t.reverse
	}
	_, ok := m[pin]
	return ok
}

// Classify reports which board a pin belongs to exclusively.
func (t *Table) Classify(pin string) Side {
	onA, onB := t.Known(BoardA, pin), t.Known(BoardB, pin)
	switch {
	case onA && !onB:
		return SideA
	case onB && !onA:
		return SideB
	default:
		return SideAmbiguous
	}
}

// BoardName returns the display name of a board.
func (t *Table) BoardName(b Board) string {
	return t.names[b]
}

// Pairs returns a copy of the pairs the table was built from, in order.
func (t *Table) Pairs() []Pair {
	return append([]Pair(nil), t.pairs...)
}

// Len returns the number of pairs the table was built from.
func (t *Table) Len() int {
	return len(t.pairs)
}
