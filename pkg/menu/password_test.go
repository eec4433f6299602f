// Copyright 2020 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package menu

import (
	"errors"
	"io"
	"testing"

	ui "github.com/gizak/termui/v3"
)

func TestPasswordWindow(t *testing.T) {
	for _, tt := range []struct {
		name      string
		userInput []string
		want      string
	}{
		{
			name:      "plain",
			userInput: []string{"s", "3", "c", "<Enter>"},
			want:      "s3c",
		},
		{
			name:      "space_and_backspace",
			userInput: []string{"a", "<Space>", "b", "x", "<Backspace>", "<Enter>"},
			want:      "a b",
		},
		{
			name:      "special_keys_ignored",
			userInput: []string{"<F1>", "p", "<Left>", "<", "<Enter>"},
			want:      "p<",
		},
		{
			name:      "backspace_multibyte",
			userInput: []string{"é", "ü", "<Backspace>", "<Enter>"},
			want:      "é",
		},
		{
			name:      "backspace_on_empty",
			userInput: []string{"<Backspace>", "<Enter>"},
			want:      "",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			uiEvents := make(chan ui.Event)
			go pressKey(uiEvents, tt.userInput)

			got, err := NewPasswordWindow("Enter the password for Home: ", uiEvents)
			if err != nil {
				t.Errorf("Error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Incorrect password. got: %q, want: %q", got, tt.want)
			}
		})
	}
}

func TestPasswordWindowAbort(t *testing.T) {
	uiEvents := make(chan ui.Event)
	go pressKey(uiEvents, []string{"a", "<C-d>"})

	got, err := NewPasswordWindow("cue", uiEvents)
	if !errors.Is(err, io.EOF) || got != nil {
		t.Errorf("NewPasswordWindow after <C-d> = %q, %v, want nil, io.EOF", got, err)
	}
}
