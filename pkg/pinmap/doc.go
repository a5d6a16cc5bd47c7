// Package pinmap holds the two-way pin translation table between two board
// revisions.
//
// A Table is built once from an ordered list of Pairs and is read-only
// afterwards. Each pin is stored under its lowercase and uppercase spelling
// so that translation preserves the case used in the source document:
//
//	table, _ := pinmap.Default()
//	table.Forward("P43") // "A9", true
//	table.Forward("p43") // "a9", true
//
// Pairs may name the Unmapped sentinel on either side when a signal has no
// pin on one of the boards. Such pins are known to their board but never
// translate.
//
// Tables can also be loaded from .pins files (see PinsLexer) or YAML files
// with LoadFile.
package pinmap
