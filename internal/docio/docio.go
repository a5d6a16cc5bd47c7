// Package docio reads constraint documents and writes translated ones.
package docio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/creachadair/atomicfile"
)

// Stdio names the standard input or output stream in place of a path.
const Stdio = "-"

// Plan describes where a document is read from and written to. An empty or
// Stdio path means the standard stream.
type Plan struct {
	Source string
	Dest   string
}

// NewPlan resolves the separate in/out mode or the in-place mode. inPlace
// cannot be combined with infile or outfile.
func NewPlan(infile, outfile, inPlace string) (Plan, error) {
	if inPlace != "" {
		if infile != "" || outfile != "" {
			return Plan{}, errors.New("docio: in-place mode cannot be combined with infile or outfile")
		}
		if inPlace == Stdio {
			return Plan{}, errors.New("docio: in-place mode needs a file path")
		}
		return Plan{Source: inPlace, Dest: inPlace}, nil
	}
	return Plan{Source: infile, Dest: outfile}, nil
}

// InPlace reports whether the plan overwrites its source.
func (p Plan) InPlace() bool {
	return !isStdio(p.Source) && p.Source == p.Dest
}

// SourceName returns a printable name for the source.
func (p Plan) SourceName() string {
	return displayName(p.Source, "<stdin>")
}

// DestName returns a printable name for the destination.
func (p Plan) DestName() string {
	return displayName(p.Dest, "<stdout>")
}

func displayName(path, std string) string {
	if isStdio(path) {
		return std
	}
	return path
}

func isStdio(path string) bool {
	return path == "" || path == Stdio
}

// Read returns the whole document at path, or all of stdin for a Stdio path.
func Read(path string, stdin io.Reader) (string, error) {
	if isStdio(path) {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("docio: read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("docio: read: %w", err)
	}
	return string(data), nil
}

// Write stores data at path, or writes it to stdout for a Stdio path. Files
// are replaced atomically: on any error the previous content is untouched.
// An existing file keeps its permission bits.
func Write(path string, stdout io.Writer, data string) error {
	if isStdio(path) {
		if _, err := io.WriteString(stdout, data); err != nil {
			return fmt.Errorf("docio: write stdout: %w", err)
		}
		return nil
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		if !info.Mode().IsRegular() {
			return fmt.Errorf("docio: write: %w", &os.PathError{Op: "write", Path: path, Err: errors.New("not a regular file")})
		}
		mode = info.Mode().Perm()
	}

	out, err := atomicfile.New(path, mode)
	if err != nil {
		return fmt.Errorf("docio: create: %w", err)
	}
	defer out.Cancel()

	if _, err := io.WriteString(out, data); err != nil {
		return fmt.Errorf("docio: write %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("docio: commit %s: %w", path, err)
	}
	return nil
}
