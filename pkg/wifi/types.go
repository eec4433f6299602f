// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wifi defines the contract every wireless network backend
// implements, together with the byte-stream helpers callers use to read
// backend output.
//
// Backends return raw bytes. Some methods return human-readable output that
// must be forwarded verbatim, others return terse output whose fields are
// delimited by FieldSeparator. Each method documents which one it returns.
package wifi

const (
	// LineFeed separates records in every backend output.
	LineFeed byte = 0x0A

	// CarriageReturn may precede LineFeed. It is stripped per line.
	CarriageReturn byte = 0x0D

	// MaxSignalStrength is the upper bound of a signal strength value.
	MaxSignalStrength = 100
)

// LoopbackInterfaceName is the name most hosts give the loopback interface.
// Some backends report it as an active connection.
var LoopbackInterfaceName = []byte("lo")

// ScanOptions controls the output of Backend.Scan.
//
// Columns and TerseFields are mutually exclusive. When both are set,
// Columns wins. An empty string means the option was not given.
type ScanOptions struct {
	// MinStrength drops networks with a weaker signal. 0 to 100.
	MinStrength uint8
	// ReScan forces the backend to refresh its scan cache.
	ReScan bool
	// Columns selects the columns of a human-readable listing.
	Columns string
	// TerseFields selects the fields of a terse listing.
	TerseFields string
}

// Terse reports whether the scan produces terse output.
func (o ScanOptions) Terse() bool {
	return o.Columns == "" && o.TerseFields != ""
}

// Backend is implemented by every network backend.
//
// Implementations are stateless: every method is one independent request to
// the backend. Callers must not assume anything about the returned bytes
// beyond what each method documents.
type Backend interface {
	// FieldSeparator returns the byte that delimits fields in every terse
	// output of this backend.
	FieldSeparator() byte

	// WiFiStatus returns the radio state as a single terse line,
	// "enabled" or "disabled".
	WiFiStatus() ([]byte, error)

	// ToggleWiFi flips the radio state and returns the new state in
	// human-readable form.
	ToggleWiFi() ([]byte, error)

	// ListNetworks returns the known networks in human-readable form.
	// showActive restricts the list to active connections and showSSID
	// restricts the columns to the network name.
	ListNetworks(showActive, showSSID bool) ([]byte, error)

	// ActiveSSIDDevPairs returns one terse "SSID<sep>DEVICE" line per active
	// connection.
	ActiveSSIDDevPairs() ([]byte, error)

	// ActiveSSIDs returns one terse SSID line per active connection.
	ActiveSSIDs() ([]byte, error)

	// Disconnect brings the connection for ssid down. If forget is set the
	// saved profile is deleted as well. The result is human-readable.
	Disconnect(ssid []byte, forget bool) ([]byte, error)

	// Scan returns the visible networks. The output is human-readable
	// unless opts.Terse reports true.
	Scan(opts ScanOptions) ([]byte, error)

	// IsKnownSSID reports whether a saved profile named ssid exists.
	IsKnownSSID(ssid []byte) (bool, error)

	// Connect connects to ssid. A nil password brings up the saved profile.
	// If isKnownSSID is set and a password is given, the stale profile is
	// removed first. Credentials are checked by the backend only. The result
	// is human-readable.
	Connect(ssid, password []byte, isKnownSSID bool) ([]byte, error)
}
