// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wl

import (
	"bytes"
	"fmt"

	"github.com/u-root/wl/pkg/menu"
	"github.com/u-root/wl/pkg/wifi"
)

const (
	connectCue    = "Select the SSID to connect: "
	disconnectCue = "Select the SSID to disconnect: "
)

// connectScan asks for SSID and signal of every visible network, refreshed.
var connectScan = wifi.ScanOptions{TerseFields: "SSID,SIGNAL", ReScan: true}

func (c *Client) isLoopback(name []byte) bool {
	loopback := c.Loopback
	if loopback == nil {
		loopback = [][]byte{wifi.LoopbackInterfaceName}
	}
	for _, l := range loopback {
		if bytes.Equal(l, name) {
			return true
		}
	}
	return false
}

// connectCandidates turns a terse SSID,SIGNAL scan into menu entries.
// Hidden networks have no SSID and are left out. An SSID seen on several
// access points is offered once, with the signal of its first row.
func connectCandidates(scan []byte, sep byte) []menu.Candidate {
	var c []menu.Candidate
	seen := make(map[string]bool)
	for _, l := range wifi.SplitLines(scan) {
		f := wifi.SplitFields(l, sep)
		if len(f) < 2 || len(f[0]) == 0 || seen[string(f[0])] {
			continue
		}
		seen[string(f[0])] = true
		c = append(c, menu.Candidate{
			Value: f[0],
			Label: []byte(fmt.Sprintf("%s (sig: %s)", f[0], f[len(f)-1])),
		})
	}
	return c
}

// disconnectCandidates turns the active connection names into menu entries,
// leaving out blank lines and loopback connections.
func (c *Client) disconnectCandidates(active []byte, sep byte) []menu.Candidate {
	var cands []menu.Candidate
	for _, l := range wifi.SplitLines(active) {
		name := wifi.SplitFields(l, sep)[0]
		if len(bytes.TrimSpace(name)) == 0 || c.isLoopback(name) {
			continue
		}
		cands = append(cands, menu.Candidate{Value: name})
	}
	return cands
}

func (c *Client) selectConnect() ([]byte, error) {
	scan, err := c.Backend.Scan(connectScan)
	if err != nil {
		return nil, err
	}
	return c.Selector.Select(connectCue, connectCandidates(scan, c.Backend.FieldSeparator()))
}

func (c *Client) selectDisconnect() ([]byte, error) {
	active, err := c.Backend.ActiveSSIDs()
	if err != nil {
		return nil, err
	}
	return c.Selector.Select(disconnectCue, c.disconnectCandidates(active, c.Backend.FieldSeparator()))
}
