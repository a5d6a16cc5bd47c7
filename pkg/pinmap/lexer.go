package pinmap

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// PinsLexer defines the lexical structure of .pins table files.
//
//	-- XuLA to XuLA2
//	boards XuLA <-> XuLA2;
//	p43 <-> a9 : fpgaClk;
//	??? <-> j12 : sdCke;
//	p49 <-> e4 : "sdAddr<0>";
var PinsLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments, VHDL/UCF style (--) or shell style (#)
	{Name: "Comment", Pattern: `(?:--|#)[^\n]*`},

	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// Keywords (case-insensitive, must precede Pin)
	{Name: "KwBoards", Pattern: `(?i)\bboards\b`},

	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},
	{Name: "Unmapped", Pattern: `\?\?\?`},
	{Name: "Pin", Pattern: `\w+`},

	// Punctuation
	{Name: "Arrow", Pattern: `<->`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Semicolon", Pattern: `;`},
})
