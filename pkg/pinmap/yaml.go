package pinmap

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLFile is the YAML form of a translation table.
//
//	boards:
//	  a: XuLA
//	  b: XuLA2
//	pins:
//	  - {a: p43, b: a9, signal: fpgaClk}
//	  - {a: "???", b: j12, signal: sdCke}
type YAMLFile struct {
	Boards struct {
		A string `yaml:"a"`
		B string `yaml:"b"`
	} `yaml:"boards"`
	Pins []YAMLPair `yaml:"pins"`
}

// YAMLPair is a single pin association. An omitted side means Unmapped.
type YAMLPair struct {
	A      string `yaml:"a"`
	B      string `yaml:"b"`
	Signal string `yaml:"signal,omitempty"`
}

// Pairs converts the YAML entries into table pairs, in file order.
func (f *YAMLFile) Pairs() []Pair {
	pairs := make([]Pair, 0, len(f.Pins))
	for _, p := range f.Pins {
		a, b := p.A, p.B
		if a == "" {
			a = Unmapped
		}
		if b == "" {
			b = Unmapped
		}
		pairs = append(pairs, Pair{A: a, B: b, Signal: p.Signal})
	}
	return pairs
}

// DecodeYAML reads a YAML table. Unknown keys are rejected.
func DecodeYAML(r io.Reader) (*YAMLFile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f YAMLFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("yaml decode error: %w", err)
	}
	return &f, nil
}
