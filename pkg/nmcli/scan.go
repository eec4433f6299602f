// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nmcli

import (
	"bytes"
	"fmt"

	"github.com/u-root/wl/pkg/wifi"
)

// SignalArgs returns the arguments that list the signal of every visible
// access point, one value per line and no header.
func SignalArgs() []string {
	return []string{"-g", "SIGNAL", "device", "wifi", "list"}
}

// ScanArgs returns the arguments of the listing opts asks for.
func ScanArgs(opts wifi.ScanOptions) []string {
	var args []string
	switch {
	case opts.Columns != "":
		args = append(args, "-f", opts.Columns)
	case opts.TerseFields != "":
		args = append(args, "-g", opts.TerseFields)
	}
	args = append(args, "device", "wifi", "list")
	if opts.ReScan {
		args = append(args, "--rescan", "yes")
	}
	return args
}

// Scan implements wifi.Backend.
//
// The listing is requested in the format opts asks for. nmcli cannot filter
// by signal itself, so the signals are fetched with a second, terse call and
// matched to the listing by row position: signal row i belongs to listing
// row i plus the number of header rows. This assumes both calls see the
// access points in the same order and count. If the scan cache changes in
// between, rows are matched to the wrong signal; rows without a signal are
// dropped.
//
// Default and columnar output carry one header row, which is always kept.
// Terse output has no header.
func (n *Nmcli) Scan(opts wifi.ScanOptions) ([]byte, error) {
	if opts.MinStrength > wifi.MaxSignalStrength {
		return nil, wifi.E(wifi.KindScan, wifi.ErrInvalidStrength)
	}

	listing, err := n.exec(wifi.KindScan, ScanArgs(opts)...)
	if err != nil {
		return nil, err
	}
	signals, err := n.exec(wifi.KindScan, SignalArgs()...)
	if err != nil {
		return nil, err
	}

	header := 1
	if opts.Terse() {
		header = 0
	}
	return filterBySignal(listing, signals, uint(opts.MinStrength), header)
}

// filterBySignal keeps the first header rows of listing and every later row
// whose correlated signal is at least min.
func filterBySignal(listing, signals []byte, min uint, header int) ([]byte, error) {
	strength := make(map[int]uint)
	for i, l := range wifi.SplitLines(signals) {
		v, err := wifi.ParseDecimal(l)
		if err != nil {
			return nil, wifi.E(wifi.KindScan, fmt.Errorf("signal row %d: %v", i+1, err))
		}
		strength[i+header] = v
	}

	var out bytes.Buffer
	for i, l := range wifi.SplitLines(listing) {
		if s, ok := strength[i]; i < header || (ok && s >= min) {
			out.Write(l)
			out.WriteByte(wifi.LineFeed)
		}
	}
	return out.Bytes(), nil
}
