package pinmap

import (
	"strings"
	"testing"
)

func TestParseBoardsHeader(t *testing.T) {
	input := `
	boards XuLA <-> "XuLA 2";
	`

	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	file, err := parser.ParseString(input)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	a, b := file.BoardNames()
	if a != "XuLA" {
		t.Errorf("Expected board A 'XuLA', got '%s'", a)
	}
	if b != "XuLA 2" {
		t.Errorf("Expected board B 'XuLA 2', got '%s'", b)
	}
	if len(file.Entries) != 0 {
		t.Errorf("Expected 0 entries, got %d", len(file.Entries))
	}
}

func TestParseEntries(t *testing.T) {
	input := `
	-- comment line
	p43 <-> a9 : fpgaClk;   # trailing comment
	??? <-> j12;
	p49<->e4:"sdAddr<0>";
	p7 <-> ???;
	`

	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	file, err := parser.ParseString(input)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if file.Boards != nil {
		t.Error("Expected no boards header")
	}

	pairs := file.Pairs()
	expected := []Pair{
		{A: "p43", B: "a9", Signal: "fpgaClk"},
		{A: Unmapped, B: "j12"},
		{A: "p49", B: "e4", Signal: "sdAddr<0>"},
		{A: "p7", B: Unmapped},
	}
	if len(pairs) != len(expected) {
		t.Fatalf("Expected %d pairs, got %d", len(expected), len(pairs))
	}
	for i, want := range expected {
		if pairs[i] != want {
			t.Errorf("Pair %d: expected %+v, got %+v", i, want, pairs[i])
		}
	}
}

func TestParseKeywordCaseInsensitive(t *testing.T) {
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	file, err := parser.ParseString("BOARDS a <-> b; p1 <-> q1;")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if file.Boards == nil || file.Boards.A != "a" {
		t.Errorf("Expected boards header with A 'a', got %+v", file.Boards)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing semicolon", "p1 <-> q1"},
		{"missing arrow", "p1 q1;"},
		{"header after entries", "p1 <-> q1; boards a <-> b;"},
		{"bad token", "p1 <-> q1 @;"},
	}

	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.ParseString(tt.input)
			if err == nil {
				t.Fatal("Expected parse error")
			}
			if !strings.HasPrefix(err.Error(), "parse error:") {
				t.Errorf("Expected 'parse error:' prefix, got '%s'", err)
			}
		})
	}
}
