// Package lineedit provides a deterministic, sequential engine for editing a
// text file as an ordered sequence of lines.
//
// The package is extracted from fileedit's internal tool implementation so that
// it can be reused by other tools. It exposes the diff operation types, an
// engine that applies an ordered list of operations to a line sequence, and a
// small Store abstraction with filesystem and in-memory implementations which
// makes it straightforward to embed in editors and testing utilities.
package lineedit
