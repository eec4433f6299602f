// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wl implements the wl commands on top of a wifi.Backend.
//
// Every command runs synchronously: at most one backend call or one prompt
// is in flight at any time.
package wl

import (
	"bytes"
	"fmt"
	"io"

	"github.com/u-root/u-root/pkg/ulog"
	"github.com/u-root/wl/pkg/menu"
	"github.com/u-root/wl/pkg/wifi"
)

// Prompter asks the user for the password of a network. A nil password means
// none was given.
type Prompter interface {
	Password(ssid []byte) ([]byte, error)
}

// WriteError is a failure to write a command's result.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("unable to write the output: %v", e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Client runs wl commands.
type Client struct {
	Backend  wifi.Backend
	Selector menu.Selector
	Prompter Prompter
	Out      io.Writer
	Log      ulog.Logger

	// Loopback names are never offered for disconnection. nil means
	// wifi.LoopbackInterfaceName.
	Loopback [][]byte

	// HashPSK hands the derived WPA key to the backend instead of the
	// passphrase.
	HashPSK bool
}

func (c *Client) log() ulog.Logger {
	if c.Log == nil {
		return ulog.Null
	}
	return c.Log
}

func (c *Client) write(b []byte) error {
	if _, err := c.Out.Write(b); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}

// Status writes the radio state and the active connections:
//
//	wifi: enabled
//	connected networks: Home/wlan0, Wired connection 1/eth0
func (c *Client) Status() error {
	status, err := c.Backend.WiFiStatus()
	if err != nil {
		return err
	}
	pairs, err := c.Backend.ActiveSSIDDevPairs()
	if err != nil {
		return err
	}

	var conns [][]byte
	for _, l := range wifi.SplitLines(pairs) {
		f := wifi.SplitFields(l, c.Backend.FieldSeparator())
		if len(f) < 2 || len(f[0]) == 0 {
			c.log().Printf("status: skipping malformed connection %q", l)
			continue
		}
		conns = append(conns, bytes.Join([][]byte{f[0], f[1]}, []byte("/")))
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "wifi: %s\n", bytes.TrimSpace(status))
	b.WriteString("connected networks: ")
	if len(conns) == 0 {
		b.WriteString("none")
	} else {
		b.Write(bytes.Join(conns, []byte(", ")))
	}
	b.WriteByte(wifi.LineFeed)
	return c.write(b.Bytes())
}

// Toggle flips the radio and writes the new state.
func (c *Client) Toggle() error {
	state, err := c.Backend.ToggleWiFi()
	if err != nil {
		return err
	}
	return c.write([]byte(fmt.Sprintf("wifi: %s\n", bytes.TrimSpace(state))))
}

// Scan writes the visible networks.
func (c *Client) Scan(opts wifi.ScanOptions) error {
	if opts.MinStrength > wifi.MaxSignalStrength {
		return wifi.E(wifi.KindScan, wifi.ErrInvalidStrength)
	}
	out, err := c.Backend.Scan(opts)
	if err != nil {
		return err
	}
	return c.write(out)
}

// ListNetworks writes the saved networks as the backend reports them.
func (c *Client) ListNetworks(showActive, showSSID bool) error {
	out, err := c.Backend.ListNetworks(showActive, showSSID)
	if err != nil {
		return err
	}
	return c.write(out)
}

// Connect connects to ssid, asking the user to pick one when ssid is nil.
//
// The password is asked for when forcePasswd is set or when no profile for
// ssid is saved yet.
func (c *Client) Connect(ssid []byte, forcePasswd bool) error {
	if ssid == nil {
		var err error
		if ssid, err = c.selectConnect(); err != nil {
			return err
		}
	}

	known, err := c.Backend.IsKnownSSID(ssid)
	if err != nil {
		return err
	}
	c.log().Printf("connect: %q known=%v", ssid, known)

	var password []byte
	if forcePasswd || !known {
		if password, err = c.Prompter.Password(ssid); err != nil {
			return err
		}
	}
	if password != nil && c.HashPSK {
		if password, err = wifi.DerivePSK(ssid, password); err != nil {
			return err
		}
	}

	out, err := c.Backend.Connect(ssid, password, known)
	if err != nil {
		return err
	}
	return c.write(out)
}

// Disconnect disconnects ssid, asking the user to pick one of the active
// connections when ssid is nil. With forget the saved profile is deleted.
func (c *Client) Disconnect(ssid []byte, forget bool) error {
	if ssid == nil {
		var err error
		if ssid, err = c.selectDisconnect(); err != nil {
			return err
		}
	}
	out, err := c.Backend.Disconnect(ssid, forget)
	if err != nil {
		return err
	}
	return c.write(out)
}
