// Copyright 2019 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tlog routes ulog.Logger output to a test's log.
package tlog

import (
	"testing"

	"github.com/u-root/u-root/pkg/ulog"
)

var _ = ulog.Logger(Testing{})

// Testing implements ulog.Logger on top of a test.
type Testing struct {
	Test testing.TB
}

// New returns a logger writing to tb.
func New(tb testing.TB) Testing {
	return Testing{Test: tb}
}

// Print prints a input string
func (t Testing) Print(v ...interface{}) {
	t.Test.Helper()
	t.Test.Log(v...)
}

// Printf prints a formated string
func (t Testing) Printf(format string, v ...interface{}) {
	t.Test.Helper()
	t.Test.Logf(format, v...)
}
