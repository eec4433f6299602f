// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nmcli

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/u-root/wl/pkg/wifi"
)

// Runner runs the backend program and returns its standard output.
//
// A process that exits nonzero must be reported as an *ExitError so the
// backend's diagnostic and exit code reach the caller.
type Runner interface {
	Run(name string, args ...string) ([]byte, error)
}

// ExitError is a backend process that exited with a nonzero code.
type ExitError struct {
	Code   int
	Stderr []byte
}

// ExitCode returns the exit code, or wifi.DefaultExitCode when the process
// did not report one (e.g. it was killed by a signal).
func (e *ExitError) ExitCode() int {
	if e.Code <= 0 {
		return wifi.DefaultExitCode
	}
	return e.Code
}

// Diagnostic decodes standard error as text. Lines are joined with "; " and
// invalid UTF-8 is replaced.
func (e *ExitError) Diagnostic() string {
	var lines []string
	for _, l := range wifi.SplitLines(e.Stderr) {
		if l = bytes.TrimSpace(l); len(l) > 0 {
			lines = append(lines, string(l))
		}
	}
	return strings.ToValidUTF8(strings.Join(lines, "; "), "�")
}

func (e *ExitError) Error() string {
	if d := e.Diagnostic(); d != "" {
		return d
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExecRunner runs programs with os/exec. The call blocks until the program
// exits; there is no timeout.
type ExecRunner struct{}

var _ = Runner(ExecRunner{})

// Run implements Runner.
func (ExecRunner) Run(name string, args ...string) ([]byte, error) {
	var stderr bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err == nil {
		return out, nil
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return nil, &ExitError{Code: ee.ExitCode(), Stderr: stderr.Bytes()}
	}
	return nil, err
}
