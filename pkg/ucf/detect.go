package ucf

import (
	"strings"

	"github.com/OpenTraceLab/xulate/pkg/pinmap"
)

// Tally counts the board-exclusive pins found in a document.
type Tally struct {
	AOnly     int
	BOnly     int
	Ambiguous int
}

// Direction returns the majority decision. Ties, including a document with no
// recognizable pins, resolve to Reverse.
func (t Tally) Direction() Direction {
	if t.AOnly > t.BOnly {
		return Forward
	}
	return Reverse
}

// Assignment is a location assignment found in a document.
type Assignment struct {
	Line   int // 1-based
	Column int // 1-based byte column of the pin token
	Pin    string
	Side   pinmap.Side
}

// Scan lists every location assignment in doc, line by line, with the
// classification of its pin against table.
func Scan(doc string, table *pinmap.Table) []Assignment {
	var found []Assignment
	for i, line := range strings.Split(doc, "\n") {
		for _, m := range locPattern.FindAllStringSubmatchIndex(line, -1) {
			pin := line[m[4]:m[5]]
			found = append(found, Assignment{
				Line:   i + 1,
				Column: m[4] + 1,
				Pin:    pin,
				Side:   table.Classify(pin),
			})
		}
	}
	return found
}

// Detect decides the translation direction for doc by majority vote of
// board-exclusive pins. The whole document is tallied before deciding.
func Detect(doc string, table *pinmap.Table) (Direction, Tally) {
	var tally Tally
	for _, a := range Scan(doc, table) {
		switch a.Side {
		case pinmap.SideA:
			tally.AOnly++
		case pinmap.SideB:
			tally.BOnly++
		default:
			tally.Ambiguous++
		}
	}
	return tally.Direction(), tally
}
