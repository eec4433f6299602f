// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wifi

import (
	"bytes"
	"fmt"
)

// SplitLines splits b into records on LineFeed and strips one trailing
// CarriageReturn from each record. A LineFeed at the very end of b does not
// start another record. The returned slices alias b.
func SplitLines(b []byte) [][]byte {
	if len(b) == 0 {
		return nil
	}
	b = bytes.TrimSuffix(b, []byte{LineFeed})
	lines := bytes.Split(b, []byte{LineFeed})
	for i, l := range lines {
		lines[i] = bytes.TrimSuffix(l, []byte{CarriageReturn})
	}
	return lines
}

// SplitFields splits one terse record on sep. A backslash escapes the byte
// that follows it, so an escaped separator stays inside its field and the
// backslash is dropped.
func SplitFields(line []byte, sep byte) [][]byte {
	if bytes.IndexByte(line, '\\') < 0 {
		return bytes.Split(line, []byte{sep})
	}

	var fields [][]byte
	field := []byte{}
	for i := 0; i < len(line); i++ {
		switch c := line[i]; {
		case c == '\\' && i+1 < len(line):
			i++
			field = append(field, line[i])
		case c == sep:
			fields = append(fields, field)
			field = []byte{}
		default:
			field = append(field, c)
		}
	}
	return append(fields, field)
}

// ParseDecimal parses an unsigned decimal number made of ASCII digits only.
// There is no sign and no locale handling. Empty input and any non-digit
// byte are rejected.
func ParseDecimal(b []byte) (uint, error) {
	if len(b) == 0 {
		return 0, fmt.Errorf("empty decimal")
	}
	var v uint
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("invalid decimal %q", b)
		}
		d := uint(c - '0')
		if v > (^uint(0)-d)/10 {
			return 0, fmt.Errorf("decimal %q overflows", b)
		}
		v = v*10 + d
	}
	return v, nil
}
