// Copyright 2021 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package main takes the scan of the nmcli backend apart and prints every
// raw output it reads, to make spotting row correlation bugs easier.
//
// Synopsis:
//
//	wldebug [-p nmcli] [-r] [-c COLUMNS | -g FIELDS]
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/pflag"
	"github.com/u-root/wl/pkg/nmcli"
	"github.com/u-root/wl/pkg/wifi"
)

var (
	program = pflag.StringP("program", "p", nmcli.DefaultProgram, "backend program")
	rescan  = pflag.BoolP("re-scan", "r", false, "refresh the scan cache first")
	columns = pflag.StringP("columns", "c", "", "columns of the listing")
	terse   = pflag.StringP("get-values", "g", "", "terse fields of the listing")
)

// dump runs the two scan queries and prints each listing row next to the
// signal row it is matched with. The queries and the header rule are the
// ones nmcli.Nmcli.Scan uses.
func dump(w io.Writer, r nmcli.Runner, program string, opts wifi.ScanOptions) error {
	args := nmcli.ScanArgs(opts)
	header := 1
	if opts.Terse() {
		header = 0
	}

	listing, err := r.Run(program, args...)
	if err != nil {
		return fmt.Errorf("listing: %w", err)
	}
	fmt.Fprintf(w, "listing %q:\n%q\n", args, listing)

	signals, err := r.Run(program, nmcli.SignalArgs()...)
	if err != nil {
		return fmt.Errorf("signals: %w", err)
	}
	fmt.Fprintf(w, "signals:\n%q\n", signals)

	rows, sigs := wifi.SplitLines(listing), wifi.SplitLines(signals)
	if len(rows)-header != len(sigs) {
		fmt.Fprintf(w, "row count mismatch: %d listing rows, %d header, %d signals\n", len(rows), header, len(sigs))
	}
	for i, row := range rows {
		if i < header {
			fmt.Fprintf(w, "%3d header %q\n", i, row)
			continue
		}
		if i-header >= len(sigs) {
			fmt.Fprintf(w, "%3d ------ %q\n", i, row)
			continue
		}
		s := sigs[i-header]
		if _, err := wifi.ParseDecimal(s); err != nil {
			fmt.Fprintf(w, "%3d %6q %q: %v\n", i, s, row, err)
			continue
		}
		fmt.Fprintf(w, "%3d %6s %q\n", i, s, row)
	}
	return nil
}

func main() {
	pflag.Parse()
	opts := wifi.ScanOptions{ReScan: *rescan, Columns: *columns, TerseFields: *terse}
	if err := dump(os.Stdout, nmcli.ExecRunner{}, *program, opts); err != nil {
		log.Fatal(err)
	}
}
