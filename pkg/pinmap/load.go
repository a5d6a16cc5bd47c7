package pinmap

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadFile reads a table file and builds it. The format is chosen by
// extension: .pins for the pin grammar, .yaml/.yml for YAML.
func LoadFile(path string) (*Table, error) {
	var (
		pairs []Pair
		a, b  string
	)

	switch tableFormat(path) {
	case formatPins:
		parser, err := NewParser()
		if err != nil {
			return nil, err
		}
		file, err := parser.ParseFile(path)
		if err != nil {
			return nil, fmt.Errorf("pinmap: parse %s: %w", path, err)
		}
		pairs = file.Pairs()
		a, b = file.BoardNames()

	case formatYAML:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("pinmap: open %s: %w", path, err)
		}
		defer f.Close()
		file, err := DecodeYAML(f)
		if err != nil {
			return nil, fmt.Errorf("pinmap: parse %s: %w", path, err)
		}
		pairs = file.Pairs()
		a, b = file.Boards.A, file.Boards.B

	default:
		return nil, fmt.Errorf("pinmap: unsupported table file %s (want .pins, .yaml or .yml)", path)
	}

	if len(pairs) == 0 {
		return nil, fmt.Errorf("pinmap: %s defines no pins", path)
	}
	table, err := Build(pairs, WithBoardNames(a, b))
	if err != nil {
		return nil, fmt.Errorf("pinmap: build %s: %w", path, err)
	}
	return table, nil
}

type format int

const (
	formatUnknown format = iota
	formatPins
	formatYAML
)

func tableFormat(path string) format {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pins":
		return formatPins
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatUnknown
	}
}
