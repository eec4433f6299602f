// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package passwd reads network passwords from the user without echoing
// them, either on the terminal or in a full-screen termui window.
//
// The returned password is an ordinary byte slice. The prompter zeroes its
// own intermediate buffer, but the Go runtime may have copied the secret
// elsewhere in memory and nothing here can erase those copies.
package passwd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"

	ui "github.com/gizak/termui/v3"
	"github.com/u-root/wl/pkg/menu"
	"golang.org/x/term"
)

// Error is a failed password prompt.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("unable to %s the password: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Prompter asks for the password of a network.
type Prompter struct {
	In  *os.File
	Out io.Writer
}

// New returns a Prompter on the process's standard input and output.
func New() *Prompter {
	return &Prompter{In: os.Stdin, Out: os.Stdout}
}

// Password asks for the password of ssid. When In is a terminal, echo is
// turned off while the password is typed. Otherwise one line is read as is,
// which lets scripts pipe a password in.
//
// Trailing whitespace is removed. An empty answer, or end of input before
// anything was typed, returns a nil password.
func (p *Prompter) Password(ssid []byte) ([]byte, error) {
	if _, err := fmt.Fprintf(p.Out, "Enter the password for %s: ", ssid); err != nil {
		return nil, &Error{Op: "prompt for", Err: err}
	}

	var (
		pw  []byte
		err error
	)
	if fd := int(p.In.Fd()); term.IsTerminal(fd) {
		pw, err = term.ReadPassword(fd)
		// The user's <Enter> was not echoed either.
		fmt.Fprintln(p.Out)
	} else {
		pw, err = menu.ReadLine(p.In)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	}
	defer zero(pw)
	if err != nil {
		return nil, &Error{Op: "read", Err: err}
	}

	return trim(pw), nil
}

// trim returns a copy of pw without trailing whitespace, or nil when nothing
// is left.
func trim(pw []byte) []byte {
	pw = bytes.TrimRightFunc(pw, unicode.IsSpace)
	if len(pw) == 0 {
		return nil
	}
	return append([]byte(nil), pw...)
}

// TermPrompter asks for the password in a full-screen termui window. <C-d>
// aborts the prompt.
//
// menu.Init must have been called first. Events is usually
// ui.PollEvents().
type TermPrompter struct {
	Events <-chan ui.Event
}

// Password asks for the password of ssid. Trailing whitespace is removed and
// an empty answer returns a nil password.
func (p *TermPrompter) Password(ssid []byte) ([]byte, error) {
	pw, err := menu.NewPasswordWindow(fmt.Sprintf("Enter the password for %s: ", ssid), p.Events)
	defer zero(pw)
	if err != nil {
		return nil, &Error{Op: "read", Err: err}
	}
	return trim(pw), nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
