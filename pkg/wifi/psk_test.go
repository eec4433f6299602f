// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wifi

import (
	"strings"
	"testing"
)

func TestDerivePSK(t *testing.T) {
	hexKey := "f42c6fc52df0ebef9ebb4b90b38a5f902e83fe1b135a70e23aed762e9710a12e"

	for _, tt := range []struct {
		name       string
		ssid       string
		passphrase string
		want       string
		wantErr    bool
	}{
		{
			// IEEE 802.11i test vector.
			name:       "ieee_vector",
			ssid:       "IEEE",
			passphrase: "password",
			want:       hexKey,
		},
		{
			name:       "hex_key_passthrough",
			ssid:       "Home",
			passphrase: strings.ToUpper(hexKey),
			want:       strings.ToUpper(hexKey),
		},
		{
			name:       "too_short",
			ssid:       "Home",
			passphrase: "1234567",
			wantErr:    true,
		},
		{
			name:       "too_long",
			ssid:       "Home",
			passphrase: strings.Repeat("a", 64),
			wantErr:    true,
		},
		{
			name:       "non_printable",
			ssid:       "Home",
			passphrase: "pass\tword",
			wantErr:    true,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DerivePSK([]byte(tt.ssid), []byte(tt.passphrase))
			if tt.wantErr {
				if err == nil {
					t.Errorf("DerivePSK(%q, %q) = %q, want error", tt.ssid, tt.passphrase, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("DerivePSK(%q, %q) failed: %v", tt.ssid, tt.passphrase, err)
			}
			if string(got) != tt.want {
				t.Errorf("Incorrect value for psk. got: %s, want: %s", got, tt.want)
			}
		})
	}
}
