// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// isolate points every lookup at an empty temporary directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	for _, k := range []string{"WL_BACKEND", "WL_HASH_PSK", "WL_TUI"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return dir
}

func writeFile(t *testing.T, path, content string, mode os.FileMode) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg, used, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if used != "" {
		t.Errorf("Incorrect value for used. got: %q, want: none", used)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Incorrect config. got: %+v, want: %+v", cfg, Default())
	}
}

func TestLoadFile(t *testing.T) {
	dir := isolate(t)
	backend := filepath.Join(dir, "bin", "nmcli")
	writeFile(t, backend, "#!/bin/sh\n", 0o755)
	path := filepath.Join(dir, "wl", "config.yaml")
	writeFile(t, path, "backend: "+backend+"\nloopback: [lo, virbr0]\nhash_psk: true\n", 0o644)

	cfg, used, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if used != path {
		t.Errorf("Incorrect value for used. got: %q, want: %q", used, path)
	}
	want := &Config{Backend: backend, Loopback: []string{"lo", "virbr0"}, HashPSK: true}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("Incorrect config. got: %+v, want: %+v", cfg, want)
	}
}

func TestLoadEnv(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "wl", "config.yaml"), "backend: nmcli\ntui: false\n", 0o644)
	writeFile(t, filepath.Join(dir, "wl", ".env"), "WL_TUI=true\nWL_BACKEND=nmcli-test\n", 0o644)
	t.Setenv("WL_BACKEND", "nmcli-env")
	t.Setenv("WL_HASH_PSK", "1")

	cfg, _, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	// Variables already in the environment win over .env.
	if cfg.Backend != "nmcli-env" {
		t.Errorf("Incorrect value for backend. got: %q, want: %q", cfg.Backend, "nmcli-env")
	}
	if !cfg.TUI || !cfg.HashPSK {
		t.Errorf("Incorrect flags. got: tui=%v hash_psk=%v, want both true", cfg.TUI, cfg.HashPSK)
	}
}

func TestLoadEnvNextToExplicitFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "etc", "wl.yaml")
	writeFile(t, path, "backend: nmcli\n", 0o644)
	writeFile(t, filepath.Join(dir, "etc", ".env"), "WL_HASH_PSK=true\n", 0o644)
	// The XDG directory does not apply when a file is named.
	writeFile(t, filepath.Join(dir, "wl", ".env"), "WL_TUI=true\n", 0o644)

	cfg, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.HashPSK || cfg.TUI {
		t.Errorf("Incorrect flags. got: tui=%v hash_psk=%v, want tui=false hash_psk=true", cfg.TUI, cfg.HashPSK)
	}
}

func TestLoadIgnoresWorkingDirEnv(t *testing.T) {
	isolate(t)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	cwd := t.TempDir()
	evil := filepath.Join(cwd, "evil")
	writeFile(t, evil, "#!/bin/sh\n", 0o755)
	writeFile(t, filepath.Join(cwd, ".env"), "WL_BACKEND="+evil+"\nWL_TUI=true\n", 0o644)
	if err := os.Chdir(cwd); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, _, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Backend != "nmcli" || cfg.TUI {
		t.Errorf("a .env in the working directory was read: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	for _, tt := range []struct {
		name    string
		file    string
		env     map[string]string
		path    string
		wantErr string
	}{
		{
			name:    "explicit_missing",
			path:    "missing.yaml",
			wantErr: "no such file or directory",
		},
		{
			name:    "bad_yaml",
			file:    "backend: [\n",
			wantErr: "parse yaml",
		},
		{
			name:    "bad_bool",
			env:     map[string]string{"WL_TUI": "maybe", "WL_HASH_PSK": "sure"},
			wantErr: "2 errors occurred",
		},
		{
			name:    "empty_backend",
			env:     map[string]string{"WL_BACKEND": " "},
			wantErr: "backend: a program is required",
		},
		{
			name:    "not_executable",
			env:     map[string]string{"WL_BACKEND": "/nonexistent/nmcli"},
			wantErr: "backend /nonexistent/nmcli",
		},
		{
			name:    "blank_loopback",
			file:    "loopback: [lo, '']\n",
			wantErr: "loopback[1]: empty name",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			if tt.file != "" {
				writeFile(t, filepath.Join(dir, "wl", "config.yaml"), tt.file, 0o644)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := tt.path
			if path != "" {
				path = filepath.Join(dir, path)
			}

			_, _, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestPathCandidates(t *testing.T) {
	dir := isolate(t)
	if got := PathCandidates("/etc/wl.yaml"); !reflect.DeepEqual(got, []string{"/etc/wl.yaml"}) {
		t.Errorf("Incorrect candidates. got: %v", got)
	}
	want := []string{
		filepath.Join(dir, "wl", "config.yaml"),
		filepath.Join(dir, ".config", "wl", "config.yaml"),
	}
	if got := PathCandidates(""); !reflect.DeepEqual(got, want) {
		t.Errorf("Incorrect candidates. got: %v, want: %v", got, want)
	}
}
