// Copyright 2020 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package menu

import (
	"io"
	"strings"
	"unicode/utf8"

	ui "github.com/gizak/termui/v3"
)

// NewPasswordWindow shows cue above an input box whose content is masked
// with one '*' per typed character, and returns what was typed once <Enter>
// is pressed. <C-d> returns io.EOF.
//
// Init must have been called first. The caller owns the returned slice.
func NewPasswordWindow(cue string, uiEvents <-chan ui.Event) ([]byte, error) {
	defer ui.Clear()

	location := 0
	intro := newParagraph(cue, false, location, len(cue)+4, 3)
	location += 2
	input := newParagraph("", true, location, menuWidth, 3)

	ui.Render(intro)
	ui.Render(input)

	var typed []byte
	for {
		k := readKey(uiEvents)
		switch k {
		case "<C-d>":
			zero(typed)
			return nil, io.EOF
		case "<Enter>":
			return typed, nil
		case "<Backspace>":
			if len(typed) > 0 {
				_, size := utf8.DecodeLastRune(typed)
				zero(typed[len(typed)-size:])
				typed = typed[:len(typed)-size]
			}
		case "<Space>":
			typed = append(typed, ' ')
		default:
			// Special keys such as "<F1>" are not part of a password; a
			// lone "<" is.
			if len(k) > 1 && k[0] == '<' {
				continue
			}
			typed = append(typed, k...)
		}
		input.Text = strings.Repeat("*", utf8.RuneCount(typed))
		ui.Render(input)
	}
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
