// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wifi

import (
	"errors"
	"strings"
)

// Kind identifies the backend operation that failed.
type Kind uint8

const (
	KindOther             Kind = iota
	KindWiFiStatus             // radio state query
	KindToggleWiFi             // radio toggle
	KindListNetworks           // known network listing
	KindActiveConnections      // active connection query
	KindSSIDStatus             // profile lookup
	KindDisconnect             // connection down or profile delete
	KindScan                   // network scan
	KindConnect                // connection up or connect with password
)

var kindMessages = map[Kind]string{
	KindOther:             "backend failure",
	KindWiFiStatus:        "unable to get the WiFi status",
	KindToggleWiFi:        "unable to toggle WiFi",
	KindListNetworks:      "unable to list the networks",
	KindActiveConnections: "unable to get the active connections",
	KindSSIDStatus:        "unable to get the SSID status",
	KindDisconnect:        "unable to disconnect",
	KindScan:              "unable to scan the available networks",
	KindConnect:           "unable to connect to the network",
}

func (k Kind) String() string {
	if m, ok := kindMessages[k]; ok {
		return m
	}
	return kindMessages[KindOther]
}

// DefaultExitCode is used when a failure carries no process exit code.
const DefaultExitCode = 1

// ErrInvalidStrength is returned by Scan for a minimum strength above
// MaxSignalStrength.
var ErrInvalidStrength = errors.New("minimum signal strength must be between 0 and 100")

// Error is returned by every Backend method.
//
// Code is the exit code reported by the backend process. It is zero when the
// failure did not come from a backend process exiting, e.g. the program could
// not be started or the arguments were rejected up front.
type Error struct {
	Kind Kind
	Err  error
	Code int
}

// E builds an *Error from its arguments. Arguments of type Kind, error, int
// and string set the kind, the underlying error, the exit code and a plain
// diagnostic respectively.
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch arg := arg.(type) {
		case Kind:
			e.Kind = arg
		case error:
			e.Err = arg
		case int:
			e.Code = arg
		case string:
			e.Err = errors.New(arg)
		}
	}
	return e
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code a program should terminate with
// after err. Backend failures forward the backend's exit code, anything else
// yields DefaultExitCode.
func ExitCode(err error) int {
	var e *Error
	if errors.As(err, &e) && e.Code > 0 {
		return e.Code
	}
	return DefaultExitCode
}
