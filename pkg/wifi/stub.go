// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wifi

import (
	"bytes"
	"fmt"
	"strings"
)

var _ = Backend(&StubBackend{})

// StubBackend is a Backend with canned answers. It records every call so
// tests can check which operations ran and in what order.
type StubBackend struct {
	Separator byte

	Status  []byte
	Active  []byte // ActiveSSIDs output
	Pairs   []byte // ActiveSSIDDevPairs output
	Known   [][]byte
	Listing []byte // ListNetworks output
	ScanOut []byte
	Result  []byte // Disconnect and Connect output

	// Errs maps a method name to the error it returns.
	Errs map[string]error

	Calls []string
}

func (s *StubBackend) record(format string, a ...interface{}) error {
	call := fmt.Sprintf(format, a...)
	s.Calls = append(s.Calls, call)
	name := call
	if i := strings.IndexByte(call, ' '); i >= 0 {
		name = call[:i]
	}
	return s.Errs[name]
}

// FieldSeparator implements Backend.
func (s *StubBackend) FieldSeparator() byte {
	if s.Separator == 0 {
		return ':'
	}
	return s.Separator
}

// WiFiStatus implements Backend.
func (s *StubBackend) WiFiStatus() ([]byte, error) {
	if err := s.record("WiFiStatus"); err != nil {
		return nil, err
	}
	return s.Status, nil
}

// ToggleWiFi implements Backend.
func (s *StubBackend) ToggleWiFi() ([]byte, error) {
	if err := s.record("ToggleWiFi"); err != nil {
		return nil, err
	}
	if bytes.Equal(bytes.TrimSpace(s.Status), []byte("enabled")) {
		s.Status = []byte("disabled\n")
		return []byte("disabled"), nil
	}
	s.Status = []byte("enabled\n")
	return []byte("enabled"), nil
}

// ListNetworks implements Backend.
func (s *StubBackend) ListNetworks(showActive, showSSID bool) ([]byte, error) {
	if err := s.record("ListNetworks %t %t", showActive, showSSID); err != nil {
		return nil, err
	}
	return s.Listing, nil
}

// ActiveSSIDDevPairs implements Backend.
func (s *StubBackend) ActiveSSIDDevPairs() ([]byte, error) {
	if err := s.record("ActiveSSIDDevPairs"); err != nil {
		return nil, err
	}
	return s.Pairs, nil
}

// ActiveSSIDs implements Backend.
func (s *StubBackend) ActiveSSIDs() ([]byte, error) {
	if err := s.record("ActiveSSIDs"); err != nil {
		return nil, err
	}
	return s.Active, nil
}

// Disconnect implements Backend.
func (s *StubBackend) Disconnect(ssid []byte, forget bool) ([]byte, error) {
	if err := s.record("Disconnect %s %t", ssid, forget); err != nil {
		return nil, err
	}
	return s.Result, nil
}

// Scan implements Backend.
func (s *StubBackend) Scan(opts ScanOptions) ([]byte, error) {
	if err := s.record("Scan %+v", opts); err != nil {
		return nil, err
	}
	return s.ScanOut, nil
}

// IsKnownSSID implements Backend.
func (s *StubBackend) IsKnownSSID(ssid []byte) (bool, error) {
	if err := s.record("IsKnownSSID %s", ssid); err != nil {
		return false, err
	}
	for _, k := range s.Known {
		if bytes.Equal(k, ssid) {
			return true, nil
		}
	}
	return false, nil
}

// Connect implements Backend.
func (s *StubBackend) Connect(ssid, password []byte, isKnownSSID bool) ([]byte, error) {
	if err := s.record("Connect %s %s %t", ssid, password, isKnownSSID); err != nil {
		return nil, err
	}
	return s.Result, nil
}
