// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
	"github.com/u-root/wl/pkg/wifi"
	"github.com/u-root/wl/pkg/wl"
)

type command struct {
	name  string
	alias string
	short string
	// run registers its flags on fs, parses args and runs the command.
	run func(c *wl.Client, fs *pflag.FlagSet, args []string) error
}

var commands = []*command{
	{name: "status", alias: "s", short: "Show the WiFi state and the active connections", run: runStatus},
	{name: "toggle", alias: "t", short: "Turn WiFi on or off", run: runToggle},
	{name: "scan", alias: "sc", short: "List the visible networks", run: runScan},
	{name: "connect", alias: "c", short: "Connect to a network", run: runConnect},
	{name: "disconnect", alias: "d", short: "Disconnect from a network", run: runDisconnect},
	{name: "list-networks", alias: "ls", short: "List the saved networks", run: runListNetworks},
}

func lookup(name string) (*command, bool) {
	for _, c := range commands {
		if name == c.name || name == c.alias {
			return c, true
		}
	}
	return nil, false
}

func (cmd *command) exec(c *wl.Client, stderr io.Writer, args []string) error {
	fs := pflag.NewFlagSet(cmd.name, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	err := cmd.run(c, fs, args)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	return err
}

// optionalSSID returns the single positional argument, or nil.
func optionalSSID(fs *pflag.FlagSet) ([]byte, error) {
	switch fs.NArg() {
	case 0:
		return nil, nil
	case 1:
		return []byte(fs.Arg(0)), nil
	default:
		return nil, fmt.Errorf("%s: too many arguments: %q", fs.Name(), fs.Args()[1:])
	}
}

func noArgs(fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return fmt.Errorf("%s: unexpected arguments: %q", fs.Name(), fs.Args())
	}
	return nil
}

func runStatus(c *wl.Client, fs *pflag.FlagSet, args []string) error {
	if err := noArgs(fs, args); err != nil {
		return err
	}
	return c.Status()
}

func runToggle(c *wl.Client, fs *pflag.FlagSet, args []string) error {
	if err := noArgs(fs, args); err != nil {
		return err
	}
	return c.Toggle()
}

func runScan(c *wl.Client, fs *pflag.FlagSet, args []string) error {
	var opts wifi.ScanOptions
	fs.Uint8VarP(&opts.MinStrength, "min-strength", "m", 0, "Minimum signal strength, 0 to 100")
	fs.BoolVarP(&opts.ReScan, "re-scan", "r", false, "Refresh the scan cache first")
	fs.StringVarP(&opts.Columns, "columns", "c", "", "Comma separated columns to show")
	fs.StringVarP(&opts.TerseFields, "get-values", "g", "", "Comma separated fields to print without a header")
	if err := noArgs(fs, args); err != nil {
		return err
	}
	if opts.Columns != "" && opts.TerseFields != "" {
		return errors.New("scan: --columns and --get-values are mutually exclusive")
	}
	return c.Scan(opts)
}

func runConnect(c *wl.Client, fs *pflag.FlagSet, args []string) error {
	force := fs.BoolP("force", "f", false, "Ask for the password even if the network is known")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ssid, err := optionalSSID(fs)
	if err != nil {
		return err
	}
	return c.Connect(ssid, *force)
}

func runDisconnect(c *wl.Client, fs *pflag.FlagSet, args []string) error {
	forget := fs.BoolP("forget", "f", false, "Delete the saved profile as well")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ssid, err := optionalSSID(fs)
	if err != nil {
		return err
	}
	return c.Disconnect(ssid, *forget)
}

func runListNetworks(c *wl.Client, fs *pflag.FlagSet, args []string) error {
	active := fs.BoolP("active", "a", false, "Only show active connections")
	ssid := fs.BoolP("ssid", "s", false, "Only show the network names")
	if err := noArgs(fs, args); err != nil {
		return err
	}
	return c.ListNetworks(*active, *ssid)
}
