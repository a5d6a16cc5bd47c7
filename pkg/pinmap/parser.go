package pinmap

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
)

// Parser reads .pins table files.
type Parser struct {
	parser *participle.Parser[PinsFile]
}

// NewParser creates a new .pins parser instance
func NewParser() (*Parser, error) {
	parser, err := participle.Build[PinsFile](
		participle.Lexer(PinsLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.Unquote("String"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// Parse parses a .pins file from a reader. name is used in error positions.
func (p *Parser) Parse(name string, r io.Reader) (*PinsFile, error) {
	file, err := p.parser.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return file, nil
}

// ParseString parses a .pins file from a string
func (p *Parser) ParseString(input string) (*PinsFile, error) {
	file, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return file, nil
}

// ParseFile parses a .pins file from a file path
func (p *Parser) ParseFile(filename string) (*PinsFile, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(filename, file)
}
