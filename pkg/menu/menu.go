// Copyright 2020 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package menu asks the user to choose one network out of a list, either on
// a plain line-oriented terminal or in a full-screen termui menu.
package menu

import (
	"fmt"
	"io"
	"strconv"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
)

const (
	menuWidth  = 50
	menuHeight = 12
	pageSize   = 10
)

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Init sets up the terminal for TermSelector.
func Init() error {
	return ui.Init()
}

// Close restores the terminal.
func Close() {
	ui.Close()
}

// TermSelector shows candidates in a full-screen, paged menu. The user types
// the index of an entry and presses <Enter>; <C-d> aborts.
//
// Init must have been called before Select. Events is usually
// ui.PollEvents().
type TermSelector struct {
	Title  string
	Events <-chan ui.Event
}

var _ = Selector(&TermSelector{})

// newParagraph returns a widgets.Paragraph struct with given initial text.
func newParagraph(initText string, border bool, location int, wid int, ht int) *widgets.Paragraph {
	p := widgets.NewParagraph()
	p.Text = initText
	p.Border = border
	p.SetRect(0, location, wid, location+ht)
	p.TextStyle.Fg = ui.ColorWhite
	return p
}

// readKey reads a key from input stream.
func readKey(uiEvents <-chan ui.Event) string {
	for {
		e := <-uiEvents
		if e.Type == ui.KeyboardEvent || e.Type == ui.MouseEvent {
			return e.ID
		}
	}
}

// page is the window of labels currently shown in the list.
type page struct {
	list        *widgets.List
	title       string
	labels      []string
	first, last int
}

// show renders the window starting at first.
func (p *page) show(first int) {
	p.first = max(0, min(first, len(p.labels)-1))
	p.last = min(p.first+pageSize, len(p.labels))
	p.list.Rows = p.labels[p.first:p.last]
	p.list.Title = fmt.Sprintf("%s---%v/%v", p.title, p.first, len(p.labels))
	ui.Render(p.list)
}

// chooseIndex tracks key presses until the user enters the index of a
// visible entry.
func chooseIndex(p *page, input, warning *widgets.Paragraph, uiEvents <-chan ui.Event) (int, error) {
	p.show(0)
	for {
		k := readKey(uiEvents)
		switch k {
		case "<C-d>":
			return 0, io.EOF
		case "<Enter>":
			choose := input.Text
			input.Text = ""
			ui.Render(input)
			// Only entries on the current page can be chosen.
			if c, err := strconv.Atoi(choose); err == nil && c >= p.first && c < p.last {
				return c, nil
			}
			warning.Text = "Please enter a valid entry number."
			ui.Render(warning)
		case "<Backspace>":
			if len(input.Text) > 0 {
				input.Text = input.Text[:len(input.Text)-1]
				ui.Render(input)
			}
		case "<Left>", "<PageUp>":
			p.show(p.first - pageSize)
		case "<Right>", "<PageDown>":
			if p.first+pageSize < len(p.labels) {
				p.show(p.first + pageSize)
			}
		case "<Up>", "<MouseWheelUp>":
			p.show(p.first - 1)
		case "<Down>", "<MouseWheelDown>":
			p.show(max(0, min(p.last+1, len(p.labels))-pageSize))
		case "<Home>":
			p.show(0)
		case "<End>":
			p.show(len(p.labels) - pageSize)
		case "<Space>":
			input.Text += " "
			ui.Render(input)
		default:
			// termui names special keys like "<F1>"; only plain characters
			// are typed into the input box.
			if k[0:1] != "<" {
				input.Text += k
				ui.Render(input)
			}
		}
	}
}

// Select implements Selector.
func (t *TermSelector) Select(cue string, candidates []Candidate) ([]byte, error) {
	if len(candidates) == 0 {
		return nil, &Error{}
	}
	defer ui.Clear()

	labels := make([]string, 0, len(candidates))
	for i, c := range candidates {
		labels = append(labels, fmt.Sprintf("[%d] %s", i, c.label()))
	}

	location := 0
	list := widgets.NewList()
	// 12 rows high shows one page of 10 entries inside the border.
	list.SetRect(0, location, menuWidth, location+menuHeight)
	list.TextStyle.Fg = ui.ColorWhite
	location += menuHeight

	intro := newParagraph(cue, false, location, len(cue)+4, 3)
	location += 2
	input := newParagraph("", true, location, menuWidth, 3)
	location += 3
	warning := newParagraph("", false, location, menuWidth, 3)

	ui.Render(intro)
	ui.Render(input)
	ui.Render(warning)

	title := t.Title
	if title == "" {
		title = "Networks"
	}
	i, err := chooseIndex(&page{list: list, title: title, labels: labels}, input, warning, t.Events)
	if err != nil {
		return nil, &Error{Op: "read", Err: err}
	}
	return candidates[i].Value, nil
}
