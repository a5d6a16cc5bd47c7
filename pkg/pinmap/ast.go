package pinmap

// PinsFile represents a complete .pins table file.
type PinsFile struct {
	Boards  *BoardsDecl `@@?`
	Entries []*PairDecl `@@*`
}

// BoardsDecl names the two boards of the table.
// Example: boards XuLA <-> XuLA2;
type BoardsDecl struct {
	A string `KwBoards @( Pin | String )`
	B string `Arrow @( Pin | String ) Semicolon`
}

// PairDecl is a single pin association.
// Example: p43 <-> a9 : fpgaClk;
type PairDecl struct {
	A      string `@( Pin | Unmapped )`
	B      string `Arrow @( Pin | Unmapped )`
	Signal string `( Colon @( Pin | String ) )? Semicolon`
}

// Pairs converts the declarations into table pairs, in file order.
func (f *PinsFile) Pairs() []Pair {
	pairs := make([]Pair, 0, len(f.Entries))
	for _, e := range f.Entries {
		pairs = append(pairs, Pair{A: e.A, B: e.B, Signal: e.Signal})
	}
	return pairs
}

// BoardNames returns the declared board names, or empty strings if the file
// has no boards header.
func (f *PinsFile) BoardNames() (string, string) {
	if f.Boards == nil {
		return "", ""
	}
	return f.Boards.A, f.Boards.B
}
