// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nmcli implements wifi.Backend on top of NetworkManager's nmcli
// command line tool.
package nmcli

import (
	"bytes"
	"errors"
	"strings"

	"github.com/u-root/u-root/pkg/ulog"
	"github.com/u-root/wl/pkg/wifi"
)

const (
	// DefaultProgram is looked up in PATH when no program is configured.
	DefaultProgram = "nmcli"

	// FieldSeparator is the separator nmcli uses in terse (-g) output.
	FieldSeparator byte = ':'
)

var (
	enabled  = []byte("enabled")
	disabled = []byte("disabled")
)

// Nmcli implements the wifi.Backend interface by running nmcli.
//
// Every method runs nmcli synchronously and waits for it to exit. No timeout
// is applied: if nmcli hangs, so does the caller.
type Nmcli struct {
	Program string
	Runner  Runner
	Log     ulog.Logger
}

var _ = wifi.Backend(&Nmcli{})

// New returns an Nmcli running program through r. An empty program means
// DefaultProgram, a nil r means ExecRunner and a nil l discards logs.
//
// New does not check that program exists.
func New(program string, r Runner, l ulog.Logger) *Nmcli {
	if program == "" {
		program = DefaultProgram
	}
	if r == nil {
		r = ExecRunner{}
	}
	if l == nil {
		l = ulog.Null
	}
	return &Nmcli{Program: program, Runner: r, Log: l}
}

// exec runs nmcli with args and maps failures to an error of the given kind.
func (n *Nmcli) exec(kind wifi.Kind, args ...string) ([]byte, error) {
	n.Log.Printf("exec: %s %s", n.Program, strings.Join(redact(args), " "))

	out, err := n.Runner.Run(n.Program, args...)
	if err == nil {
		return out, nil
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		n.Log.Printf("exec: %s exited %d: %v", n.Program, ee.Code, ee)
		return nil, wifi.E(kind, ee, ee.ExitCode())
	}
	return nil, wifi.E(kind, err)
}

// redact hides the password of a connect argv. The password is always the
// last argument, right after the "password" keyword; an SSID that happens to
// read "password" sits earlier and is left alone.
func redact(args []string) []string {
	out := append([]string(nil), args...)
	if n := len(out); n >= 2 && out[n-2] == "password" {
		out[n-1] = "********"
	}
	return out
}

// FieldSeparator implements wifi.Backend.
func (n *Nmcli) FieldSeparator() byte {
	return FieldSeparator
}

// WiFiStatus implements wifi.Backend. The output is the terse WIFI field of
// "nmcli general", "enabled" or "disabled" followed by a line feed.
func (n *Nmcli) WiFiStatus() ([]byte, error) {
	return n.exec(wifi.KindWiFiStatus, "-g", "WIFI", "general")
}

// ToggleWiFi implements wifi.Backend. It returns the new radio state,
// "enabled" or "disabled", without a trailing line feed.
func (n *Nmcli) ToggleWiFi() ([]byte, error) {
	status, err := n.exec(wifi.KindToggleWiFi, "-g", "WIFI", "general")
	if err != nil {
		return nil, err
	}

	state, next := "on", enabled
	if bytes.Equal(bytes.TrimSpace(status), enabled) {
		state, next = "off", disabled
	}
	if _, err := n.exec(wifi.KindToggleWiFi, "radio", "wifi", state); err != nil {
		return nil, err
	}
	return append([]byte(nil), next...), nil
}

// ListNetworks implements wifi.Backend. The output is nmcli's human-readable
// connection table.
func (n *Nmcli) ListNetworks(showActive, showSSID bool) ([]byte, error) {
	var args []string
	if showSSID {
		args = append(args, "--fields", "NAME")
	}
	args = append(args, "connection", "show")
	if showActive {
		args = append(args, "--active")
	}
	return n.exec(wifi.KindListNetworks, args...)
}

// ActiveSSIDDevPairs implements wifi.Backend. Each line is "NAME:DEVICE".
// Separators inside a name are escaped with a backslash.
func (n *Nmcli) ActiveSSIDDevPairs() ([]byte, error) {
	return n.exec(wifi.KindActiveConnections, "-g", "NAME,DEVICE", "connection", "show", "--active")
}

// ActiveSSIDs implements wifi.Backend. Each line is one connection name, the
// loopback connection included.
func (n *Nmcli) ActiveSSIDs() ([]byte, error) {
	return n.exec(wifi.KindActiveConnections, "-g", "NAME", "connection", "show", "--active")
}

// Disconnect implements wifi.Backend. With forget the profile is deleted,
// otherwise the connection is only brought down. The output is nmcli's
// human-readable confirmation.
func (n *Nmcli) Disconnect(ssid []byte, forget bool) ([]byte, error) {
	action := "down"
	if forget {
		action = "delete"
	}
	return n.exec(wifi.KindDisconnect, "connection", action, "id", string(ssid))
}

// IsKnownSSID implements wifi.Backend. A profile is known when one saved
// connection name equals ssid exactly.
func (n *Nmcli) IsKnownSSID(ssid []byte) (bool, error) {
	out, err := n.exec(wifi.KindSSIDStatus, "-g", "NAME", "connection", "show")
	if err != nil {
		return false, err
	}
	for _, l := range wifi.SplitLines(out) {
		if name := wifi.SplitFields(l, FieldSeparator)[0]; bytes.Equal(name, ssid) {
			return true, nil
		}
	}
	return false, nil
}

// Connect implements wifi.Backend. The output is nmcli's human-readable
// confirmation.
func (n *Nmcli) Connect(ssid, password []byte, isKnownSSID bool) ([]byte, error) {
	if len(password) == 0 {
		return n.exec(wifi.KindConnect, "connection", "up", "id", string(ssid))
	}

	// New credentials for a saved profile: drop the stale profile first so
	// nmcli does not keep the old secrets.
	if isKnownSSID {
		if _, err := n.Disconnect(ssid, true); err != nil {
			return nil, err
		}
	}
	return n.exec(wifi.KindConnect, "device", "wifi", "connect", string(ssid), "password", string(password))
}
