package ucf

import (
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/OpenTraceLab/xulate/pkg/pinmap"
)

// filler never contains an 'l', so it cannot form a location assignment.
var filler = rapid.StringMatching(`[a-km-zA-KM-Z0-9 \t\r\n#,."<>_]{0,24}`)

func mappedPins() []pinmap.Pair {
	var pairs []pinmap.Pair
	for _, p := range pinmap.XuLA() {
		if p.A != pinmap.Unmapped && p.B != pinmap.Unmapped {
			pairs = append(pairs, p)
		}
	}
	return pairs
}

func drawDocument(t *rapid.T) (string, int) {
	pairs := mappedPins()
	var b strings.Builder
	n := rapid.IntRange(0, 12).Draw(t, "statements")
	for i := 0; i < n; i++ {
		b.WriteString(filler.Draw(t, "prefix"))
		p := rapid.SampledFrom(pairs).Draw(t, "pair")
		pin := p.A
		if rapid.Bool().Draw(t, "upper") {
			pin = strings.ToUpper(pin)
		}
		keyword := rapid.SampledFrom([]string{"loc", "LOC", "Loc"}).Draw(t, "keyword")
		ws := rapid.SampledFrom([]string{"", " ", "\t", "  "})
		b.WriteString(" " + keyword + ws.Draw(t, "ws1") + "=" + ws.Draw(t, "ws2") + pin +
			ws.Draw(t, "ws3") + rapid.SampledFrom([]string{";", "|"}).Draw(t, "terminator"))
	}
	b.WriteString(filler.Draw(t, "suffix"))
	return b.String(), n
}

func TestRoundTripProperty(t *testing.T) {
	table, err := pinmap.Default()
	if err != nil {
		t.Fatalf("Failed to build table: %v", err)
	}

	rapid.Check(t, func(t *rapid.T) {
		doc, n := drawDocument(t)

		there, err := Translate(doc, table, Forward)
		if err != nil {
			t.Fatalf("forward: %v", err)
		}
		back, err := Translate(there.Text, table, Reverse)
		if err != nil {
			t.Fatalf("reverse: %v", err)
		}
		if back.Text != doc {
			t.Fatalf("round trip changed document:\n%q\n%q", doc, back.Text)
		}
		if there.Replaced != n || back.Replaced != n {
			t.Fatalf("expected %d substitutions, got %d then %d", n, there.Replaced, back.Replaced)
		}
	})
}

func TestPassthroughProperty(t *testing.T) {
	table, err := pinmap.Default()
	if err != nil {
		t.Fatalf("Failed to build table: %v", err)
	}

	rapid.Check(t, func(t *rapid.T) {
		doc := filler.Draw(t, "doc")
		dir := rapid.SampledFrom([]Direction{Auto, Forward, Reverse}).Draw(t, "dir")

		res, err := Translate(doc, table, dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Text != doc {
			t.Fatalf("text changed: %q -> %q", doc, res.Text)
		}
	})
}
