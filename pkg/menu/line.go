// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package menu

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrNotFound matches a selection that names no candidate.
var ErrNotFound = errors.New("selection not found")

// Candidate is one entry a user can pick.
type Candidate struct {
	// Value is returned when the candidate is selected.
	Value []byte
	// Label is shown in the menu. An empty label shows Value.
	Label []byte
}

func (c Candidate) label() []byte {
	if len(c.Label) == 0 {
		return c.Value
	}
	return c.Label
}

// Selector asks the user to pick one of candidates and returns its Value.
type Selector interface {
	Select(cue string, candidates []Candidate) ([]byte, error)
}

// Error is a failed selection. Op is "read" when the answer could not be
// read, "write" when the menu could not be shown and "parse" when the answer
// was not a number. A nil Err means the number
// matched no candidate.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	switch {
	case e.Err == nil:
		return ErrNotFound.Error()
	case e.Op == "read":
		return fmt.Sprintf("unable to read the selection: %v", e.Err)
	case e.Op == "write":
		return fmt.Sprintf("unable to write the menu: %v", e.Err)
	default:
		return fmt.Sprintf("invalid selection: %v", e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrNotFound and e is a not-found error.
func (e *Error) Is(target error) bool {
	return target == ErrNotFound && e.Err == nil
}

// SelectionMap maps a displayed index to the candidate value shown there.
type SelectionMap map[uint64][]byte

// LineSelector prints a numbered list and reads the chosen index as one line
// of text.
type LineSelector struct {
	In  io.Reader
	Out io.Writer
}

var _ = Selector(&LineSelector{})

// Select implements Selector. Candidates are numbered from 0 in the order
// given, one "(i) label" line each, followed by cue on its own.
func (l *LineSelector) Select(cue string, candidates []Candidate) ([]byte, error) {
	if len(candidates) == 0 {
		return nil, &Error{}
	}

	var prompt bytes.Buffer
	choices := make(SelectionMap, len(candidates))
	for i, c := range candidates {
		fmt.Fprintf(&prompt, "(%d) %s\n", i, c.label())
		choices[uint64(i)] = c.Value
	}
	prompt.WriteString(cue)
	if _, err := l.Out.Write(prompt.Bytes()); err != nil {
		return nil, &Error{Op: "write", Err: err}
	}

	line, err := ReadLine(l.In)
	if err != nil {
		return nil, &Error{Op: "read", Err: err}
	}
	n, err := strconv.ParseUint(string(bytes.TrimSpace(line)), 10, 64)
	if err != nil {
		return nil, &Error{Op: "parse", Err: err}
	}
	v, ok := choices[n]
	if !ok {
		return nil, &Error{}
	}
	return v, nil
}

// ReadLine reads up to and excluding the next line feed, stripping one
// carriage return before it. It reads one byte at a time so nothing past the
// line is consumed from r. A final line without a line feed is returned with
// a nil error; io.EOF is only returned when nothing was read.
func ReadLine(r io.Reader) ([]byte, error) {
	var line []byte
	b := make([]byte, 1)
	for {
		n, err := r.Read(b)
		if n == 1 {
			if b[0] == '\n' {
				return bytes.TrimSuffix(line, []byte{'\r'}), nil
			}
			line = append(line, b[0])
		}
		if err == io.EOF {
			if len(line) == 0 {
				return nil, io.EOF
			}
			return bytes.TrimSuffix(line, []byte{'\r'}), nil
		}
		if err != nil {
			return nil, err
		}
	}
}
