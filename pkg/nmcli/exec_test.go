// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nmcli

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/u-root/wl/pkg/wifi"
)

func TestExitError(t *testing.T) {
	for _, tt := range []struct {
		name     string
		err      *ExitError
		wantCode int
		wantMsg  string
	}{
		{
			name:     "diagnostic",
			err:      &ExitError{Code: 10, Stderr: []byte("Error: unknown connection 'x'.\n")},
			wantCode: 10,
			wantMsg:  "Error: unknown connection 'x'.",
		},
		{
			name:     "multi_line_crlf",
			err:      &ExitError{Code: 4, Stderr: []byte("Error: one.\r\n\r\n  Error: two.\r\n")},
			wantCode: 4,
			wantMsg:  "Error: one.; Error: two.",
		},
		{
			name:     "invalid_utf8",
			err:      &ExitError{Code: 2, Stderr: []byte("bad \xff byte\n")},
			wantCode: 2,
			wantMsg:  "bad � byte",
		},
		{
			name:     "no_stderr",
			err:      &ExitError{Code: 3},
			wantCode: 3,
			wantMsg:  "exit status 3",
		},
		{
			name:     "signaled",
			err:      &ExitError{Code: -1},
			wantCode: wifi.DefaultExitCode,
			wantMsg:  "exit status -1",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.ExitCode(); got != tt.wantCode {
				t.Errorf("Incorrect value for exit code. got: %d, want: %d", got, tt.wantCode)
			}
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Incorrect value for message. got: %q, want: %q", got, tt.wantMsg)
			}
		})
	}
}

func TestExecRunner(t *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skipf("no shell: %v", err)
	}

	out, err := ExecRunner{}.Run(sh, "-c", "printf 'enabled\\n'")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if string(out) != "enabled\n" {
		t.Errorf("Incorrect value for output. got: %q, want: %q", out, "enabled\n")
	}

	_, err = ExecRunner{}.Run(sh, "-c", "echo oops >&2; exit 3")
	var ee *ExitError
	if !errors.As(err, &ee) {
		t.Fatalf("Run error = %v (%T), want *ExitError", err, err)
	}
	if ee.Code != 3 || ee.Error() != "oops" {
		t.Errorf("Incorrect exit error. got: %d %q, want: 3 %q", ee.Code, ee.Error(), "oops")
	}
}

func TestExecRunnerMissingProgram(t *testing.T) {
	_, err := ExecRunner{}.Run("/nonexistent/nmcli")
	if err == nil {
		t.Fatal("Run of a missing program succeeded")
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		t.Errorf("missing program reported as exit error %v", ee)
	}

	n := New("/nonexistent/nmcli", nil, nil)
	_, err = n.WiFiStatus()
	if got := wifi.ExitCode(err); got != wifi.DefaultExitCode {
		t.Errorf("Incorrect exit code. got: %d, want: %d", got, wifi.DefaultExitCode)
	}
}
