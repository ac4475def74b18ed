// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - names of the supported networks
package chain

// names of all chains
const (
	Karma   = "karma"
	Testing = "testing"
	Local   = "local"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Karma, Testing, Local:
		return true
	default:
		return false
	}
}

// SubmitAllowed - calls may be submitted through the RPC interface
//
// on the main chain calls only arrive in blocks
func SubmitAllowed(name string) bool {
	return Testing == name || Local == name
}
