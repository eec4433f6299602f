// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wifi

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	pskIterations = 4096
	pskLen        = 32
)

// DerivePSK computes the WPA pre-shared key for a passphrase, the same way
// wpa_passphrase does, and returns it hex encoded. A passphrase that already
// is a 64 digit hex key is returned unchanged.
//
// Only WPA/WPA2 personal networks accept a derived key. WPA3 (SAE) networks
// need the passphrase itself.
func DerivePSK(ssid, passphrase []byte) ([]byte, error) {
	if isHexKey(passphrase) {
		return passphrase, nil
	}
	if len(passphrase) < 8 || len(passphrase) > 63 {
		return nil, fmt.Errorf("essid: %q: passphrase must be 8..63 characters, got %d", ssid, len(passphrase))
	}
	for _, c := range passphrase {
		if c < 0x20 || c > 0x7e {
			return nil, fmt.Errorf("essid: %q: passphrase contains a non printable ASCII byte", ssid)
		}
	}

	key := pbkdf2.Key(passphrase, ssid, pskIterations, pskLen, sha1.New)
	out := make([]byte, hex.EncodedLen(len(key)))
	hex.Encode(out, key)
	return out, nil
}

func isHexKey(b []byte) bool {
	if len(b) != 2*pskLen {
		return false
	}
	for _, c := range b {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
