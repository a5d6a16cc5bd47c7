package ucf

import (
	"fmt"
	"strings"

	"github.com/OpenTraceLab/xulate/pkg/pinmap"
)

// Direction selects which board is the source of a translation.
type Direction int

const (
	// Auto picks Forward or Reverse from the pins found in the document.
	Auto Direction = iota
	// Forward translates board A pins to board B.
	Forward
	// Reverse translates board B pins to board A.
	Reverse
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	default:
		return "auto"
	}
}

// Source returns the board whose pins are read. It is undefined for Auto.
func (d Direction) Source() pinmap.Board {
	if d == Reverse {
		return pinmap.BoardB
	}
	return pinmap.BoardA
}

// ParseDirection parses a direction name.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, nil
	case "forward", "a2b":
		return Forward, nil
	case "reverse", "b2a":
		return Reverse, nil
	default:
		return Auto, fmt.Errorf("ucf: unknown direction %q (want auto, forward or reverse)", s)
	}
}

// Describe renders the direction with the table's board names,
// e.g. "XuLA -> XuLA2".
func (d Direction) Describe(t *pinmap.Table) string {
	if d == Auto {
		return "auto"
	}
	src := d.Source()
	return t.BoardName(src) + " -> " + t.BoardName(src.Other())
}
