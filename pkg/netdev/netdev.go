// Copyright 2019 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package netdev looks up the host's network links.
package netdev

import (
	"fmt"
	"net"

	"github.com/vishvananda/netlink"
)

var linkList = netlink.LinkList

// LoopbackNames returns the names of the host's loopback links.
func LoopbackNames() ([]string, error) {
	return names(func(l netlink.Link) bool {
		return l.Attrs().Flags&net.FlagLoopback != 0
	})
}

func names(match func(netlink.Link) bool) ([]string, error) {
	links, err := linkList()
	if err != nil {
		return nil, fmt.Errorf("can't get list of link names: %v", err)
	}
	var n []string
	for _, l := range links {
		if match(l) {
			n = append(n, l.Attrs().Name)
		}
	}
	return n, nil
}
