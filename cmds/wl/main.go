// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// wl manages the host's wireless connections through NetworkManager.
//
// Synopsis:
//
//	wl [-v] [--config FILE] [--tui] COMMAND [ARGS]
//
// Commands:
//
//	status, s                       show the WiFi state and active connections
//	toggle, t                       turn WiFi on or off
//	scan, sc [-m N] [-r] [-c COLS | -g FIELDS]
//	                                list visible networks with signal >= N
//	connect, c [-f] [SSID]          connect, asking for the SSID if omitted
//	disconnect, d [-f] [SSID]       disconnect, -f deletes the profile too
//	list-networks, ls [-a] [-s]     list saved networks
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	ui "github.com/gizak/termui/v3"
	"github.com/spf13/pflag"
	"github.com/u-root/u-root/pkg/ulog"
	"github.com/u-root/wl/pkg/config"
	"github.com/u-root/wl/pkg/menu"
	"github.com/u-root/wl/pkg/netdev"
	"github.com/u-root/wl/pkg/nmcli"
	"github.com/u-root/wl/pkg/passwd"
	"github.com/u-root/wl/pkg/wifi"
	"github.com/u-root/wl/pkg/wl"
)

var verbose = func(string, ...interface{}) {}

// app holds what a run of wl reads from and writes to.
type app struct {
	stdin  *os.File
	stdout io.Writer
	stderr io.Writer

	newBackend func(cfg *config.Config, l ulog.Logger) wifi.Backend
}

func newNmcli(cfg *config.Config, l ulog.Logger) wifi.Backend {
	return nmcli.New(cfg.Backend, nil, l)
}

// termSelector sets the terminal up for a full-screen menu only while a
// selection is running.
type termSelector struct{}

func (termSelector) Select(cue string, candidates []menu.Candidate) ([]byte, error) {
	if err := menu.Init(); err != nil {
		return nil, err
	}
	defer menu.Close()
	s := &menu.TermSelector{Title: "Wireless Networks", Events: ui.PollEvents()}
	return s.Select(cue, candidates)
}

// termPrompter asks for passwords in the same full-screen mode as
// termSelector.
type termPrompter struct{}

func (termPrompter) Password(ssid []byte) ([]byte, error) {
	if err := menu.Init(); err != nil {
		return nil, err
	}
	defer menu.Close()
	p := &passwd.TermPrompter{Events: ui.PollEvents()}
	return p.Password(ssid)
}

func (a *app) usage(fs *pflag.FlagSet) func() {
	return func() {
		fmt.Fprintf(a.stderr, "Usage: wl [flags] command [args]\n\nCommands:\n")
		for _, c := range commands {
			fmt.Fprintf(a.stderr, "  %-14s %-3s %s\n", c.name, c.alias, c.short)
		}
		fmt.Fprintf(a.stderr, "\nFlags:\n%s", fs.FlagUsages())
	}
}

// loopback merges the configured loopback names with the host's loopback
// links.
func loopback(cfg *config.Config) [][]byte {
	names := append([]string(nil), cfg.Loopback...)
	host, err := netdev.LoopbackNames()
	if err != nil {
		verbose("loopback links: %v", err)
	}
	names = append(names, host...)

	var b [][]byte
	for _, n := range names {
		b = append(b, []byte(n))
	}
	return b
}

// interaction returns how networks are chosen and passwords typed. Both use
// the same kind of terminal so a full-screen menu is never followed by a
// line prompt.
func (a *app) interaction(tui bool) (menu.Selector, wl.Prompter) {
	if tui {
		return termSelector{}, termPrompter{}
	}
	return &menu.LineSelector{In: a.stdin, Out: a.stdout}, &passwd.Prompter{In: a.stdin, Out: a.stdout}
}

func (a *app) run(args []string) error {
	fs := pflag.NewFlagSet("wl", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.SetOutput(a.stderr)
	v := fs.BoolP("verbose", "v", false, "Verbose output")
	cfgPath := fs.String("config", "", "Path of the configuration file")
	tui := fs.Bool("tui", false, "Select networks and type passwords in a full-screen menu")
	fs.Usage = a.usage(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("no command given")
	}
	cmd, ok := lookup(fs.Arg(0))
	if !ok {
		return fmt.Errorf("unknown command %q", fs.Arg(0))
	}

	var logger ulog.Logger = ulog.Null
	if *v {
		verbose = log.Printf
		logger = ulog.Log
	}

	cfg, used, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	verbose("config %q: %+v", used, cfg)

	sel, prompt := a.interaction(*tui || cfg.TUI)
	c := &wl.Client{
		Backend:  a.newBackend(cfg, logger),
		Selector: sel,
		Prompter: prompt,
		Out:      a.stdout,
		Log:      logger,
		Loopback: loopback(cfg),
		HashPSK:  cfg.HashPSK,
	}
	return cmd.exec(c, a.stderr, fs.Args()[1:])
}

func main() {
	a := &app{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr, newBackend: newNmcli}
	if err := a.run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "wl: %v\n", err)
		os.Exit(wifi.ExitCode(err))
	}
}
