// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads wl's settings from a YAML file and the environment.
//
// Example YAML:
//
//	backend: /usr/bin/nmcli
//	loopback: [lo]
//	hash_psk: true
//	tui: false
//
// WL_BACKEND, WL_HASH_PSK and WL_TUI override the file. They may also be set
// in a .env file next to the configuration file, e.g. ~/.config/wl/.env.
// A .env in the working directory is never read.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"golang.org/x/sys/unix"
	"gopkg.in/yaml.v3"
)

// Config holds wl's settings.
type Config struct {
	// Backend is the backend program, looked up in PATH unless absolute.
	Backend string `yaml:"backend,omitempty"`

	// Loopback lists connection names never offered for disconnection.
	// Loopback links found on the host are added to it.
	Loopback []string `yaml:"loopback,omitempty"`

	// HashPSK passes the derived WPA key to the backend instead of the
	// passphrase.
	HashPSK bool `yaml:"hash_psk,omitempty"`

	// TUI selects networks and reads passwords in a full-screen menu.
	TUI bool `yaml:"tui,omitempty"`
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		Backend:  "nmcli",
		Loopback: []string{"lo"},
	}
}

// PathCandidates returns the configuration file paths to try, in priority
// order.
func PathCandidates(explicitPath string) []string {
	if explicitPath != "" {
		return []string{explicitPath}
	}
	var out []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		out = append(out, filepath.Join(xdg, "wl", "config.yaml"))
	}
	if home, _ := os.UserHomeDir(); home != "" {
		out = append(out, filepath.Join(home, ".config", "wl", "config.yaml"))
	}
	return out
}

// Load reads the first configuration file found, applies environment
// overrides and validates the result. A missing file is not an error unless
// it was named explicitly. It returns the settings and the file used, if
// any.
func Load(explicitPath string) (*Config, string, error) {
	cfg := Default()
	used := ""
	candidates := PathCandidates(explicitPath)
	for _, p := range candidates {
		data, err := os.ReadFile(p)
		if errors.Is(err, fs.ErrNotExist) && explicitPath == "" {
			continue
		}
		if err != nil {
			return nil, p, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, p, fmt.Errorf("parse yaml %s: %w", p, err)
		}
		used = p
		break
	}

	if env := envPath(used, candidates); env != "" {
		if err := godotenv.Load(env); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, used, fmt.Errorf("load %s: %w", env, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, used, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, used, fmt.Errorf("invalid config %s: %w", used, err)
	}
	return cfg, used, nil
}

// envPath returns the .env file that sits in the same directory as the
// configuration file used, or as the preferred candidate when none was found.
func envPath(used string, candidates []string) string {
	if used == "" {
		if len(candidates) == 0 {
			return ""
		}
		used = candidates[0]
	}
	return filepath.Join(filepath.Dir(used), ".env")
}

func (c *Config) applyEnv() error {
	var errs *multierror.Error
	if v, ok := os.LookupEnv("WL_BACKEND"); ok {
		c.Backend = v
	}
	for _, b := range []struct {
		key string
		dst *bool
	}{
		{"WL_HASH_PSK", &c.HashPSK},
		{"WL_TUI", &c.TUI},
	} {
		v, ok := os.LookupEnv(b.key)
		if !ok {
			continue
		}
		on, err := strconv.ParseBool(v)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %q is not a boolean", b.key, v))
			continue
		}
		*b.dst = on
	}
	return errs.ErrorOrNil()
}

// Validate reports every problem with c.
func (c *Config) Validate() error {
	var errs *multierror.Error
	switch {
	case strings.TrimSpace(c.Backend) == "":
		errs = multierror.Append(errs, errors.New("backend: a program is required"))
	case filepath.IsAbs(c.Backend):
		if err := unix.Access(c.Backend, unix.X_OK); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("backend %s: %w", c.Backend, err))
		}
	}
	for i, l := range c.Loopback {
		if strings.TrimSpace(l) == "" {
			errs = multierror.Append(errs, fmt.Errorf("loopback[%d]: empty name", i))
		}
	}
	return errs.ErrorOrNil()
}
