package ucf

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/OpenTraceLab/xulate/pkg/pinmap"
)

// locPattern matches a location assignment such as `LOC = P43;` or
// `loc=a9 |`. Group 2 is the pin token; groups 1 and 3 are kept verbatim.
var locPattern = regexp.MustCompile(`(?i)(\s*loc\s*=\s*)(\w*)(\s*[;|])`)

// ErrUnknownPin is matched by every *UnknownPinError.
var ErrUnknownPin = errors.New("unknown pin")

// UnknownPinError reports a pin token with no translation in the active
// direction.
type UnknownPinError struct {
	Pin   string
	Line  int
	Board string // source board name
	// Unmapped is set when the pin exists on the source board but has no
	// counterpart on the target board.
	Unmapped bool
}

func (e *UnknownPinError) Error() string {
	if e.Unmapped {
		return fmt.Sprintf("ucf: line %d: %s pin %q has no counterpart on the target board", e.Line, e.Board, e.Pin)
	}
	return fmt.Sprintf("ucf: line %d: unknown %s pin %q", e.Line, e.Board, e.Pin)
}

func (e *UnknownPinError) Is(target error) bool {
	return target == ErrUnknownPin
}

// Result is the outcome of a successful translation.
type Result struct {
	Text      string
	Direction Direction
	// Tally is set only when the direction was auto-detected.
	Tally    *Tally
	Replaced int
}

// Translate rewrites the pin of every location assignment in doc using table.
// An Auto direction is resolved with Detect before any substitution. The
// first pin without a translation aborts the whole operation.
func Translate(doc string, table *pinmap.Table, dir Direction) (*Result, error) {
	res := &Result{Direction: dir}
	if dir == Auto {
		d, tally := Detect(doc, table)
		res.Direction, res.Tally = d, &tally
	}
	src := res.Direction.Source()

	matches := locPattern.FindAllStringSubmatchIndex(doc, -1)
	var b strings.Builder
	b.Grow(len(doc))

	last := 0
	for _, m := range matches {
		start, end := m[4], m[5]
		pin := doc[start:end]
		target, ok := table.Translate(src, pin)
		if !ok {
			return nil, &UnknownPinError{
				Pin:      pin,
				Line:     1 + strings.Count(doc[:start], "\n"),
				Board:    table.BoardName(src),
				Unmapped: table.Known(src, pin),
			}
		}
		b.WriteString(doc[last:start])
		b.WriteString(target)
		last = end
	}
	b.WriteString(doc[last:])

	res.Text = b.String()
	res.Replaced = len(matches)
	return res, nil
}
