// Copyright 2021 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/u-root/wl/pkg/wifi"
)

type cannedRunner map[string]string

func (c cannedRunner) Run(name string, args ...string) ([]byte, error) {
	return []byte(c[strings.Join(args, " ")]), nil
}

func TestDump(t *testing.T) {
	for _, tt := range []struct {
		name   string
		opts   wifi.ScanOptions
		runner cannedRunner
		want   []string
	}{
		{
			name: "header",
			runner: cannedRunner{
				"device wifi list":           "SSID SIGNAL\nHome 80\nCafe 40\n",
				"-g SIGNAL device wifi list": "80\n40\n",
			},
			want: []string{`  0 header "SSID SIGNAL"`, `  1     80 "Home 80"`, `  2     40 "Cafe 40"`},
		},
		{
			name: "terse_rescan_mismatch",
			opts: wifi.ScanOptions{TerseFields: "SSID", ReScan: true},
			runner: cannedRunner{
				"-g SSID device wifi list --rescan yes": "Home\nCafe\nAttic\n",
				"-g SIGNAL device wifi list":            "80\nxx\n",
			},
			want: []string{"row count mismatch", `  0     80 "Home"`, `  1   "xx" "Cafe": invalid decimal`, `  2 ------ "Attic"`},
		},
		{
			// Columnar output keeps its header even when terse fields are
			// also given.
			name: "columns_over_terse",
			opts: wifi.ScanOptions{Columns: "SSID,SIGNAL", TerseFields: "SSID"},
			runner: cannedRunner{
				"-f SSID,SIGNAL device wifi list": "SSID  SIGNAL\nHome  80\n",
				"-g SIGNAL device wifi list":      "80\n",
			},
			want: []string{`listing ["-f" "SSID,SIGNAL" "device" "wifi" "list"]`, `  0 header "SSID  SIGNAL"`, `  1     80 "Home  80"`},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			var b bytes.Buffer
			if err := dump(&b, tt.runner, "nmcli", tt.opts); err != nil {
				t.Fatal(err)
			}
			for _, w := range tt.want {
				if !strings.Contains(b.String(), w) {
					t.Errorf("output does not contain %q:\n%s", w, b.String())
				}
			}
		})
	}
}
