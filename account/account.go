// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/karmad/fault"
)

// KeyLength - number of bytes in an account key
const KeyLength = 32

// Key - the public key of an account
//
// the engine never verifies signatures, the key is only an identifier
// supplied by the authentication layer
type Key [KeyLength]byte

// KeyFromBytes - convert and validate a binary byte slice to a key
func KeyFromBytes(buffer []byte) (Key, error) {
	k := Key{}
	if KeyLength != len(buffer) {
		return k, fault.InvalidAccountKey
	}
	copy(k[:], buffer)
	return k, nil
}

// KeyFromBase58 - convert a base58 string to a key
func KeyFromBase58(s string) (Key, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return Key{}, fault.InvalidAccountKey
	}
	return KeyFromBytes(buffer)
}

// Bytes - key as a byte slice
func (k Key) Bytes() []byte {
	return k[:]
}

// IsZero - true if the key was never set
func (k Key) IsZero() bool {
	return k == Key{}
}

// Compare - byte order of two keys
func (k Key) Compare(other Key) int {
	return bytes.Compare(k[:], other[:])
}

// String - base58 text for the fmt package (%s)
func (k Key) String() string {
	return base58.Encode(k[:])
}

// GoString - for the fmt package (%#v)
func (k Key) GoString() string {
	return "<account:" + base58.Encode(k[:]) + ">"
}

// MarshalText - convert key to base58 text
func (k Key) MarshalText() ([]byte, error) {
	return []byte(base58.Encode(k[:])), nil
}

// UnmarshalText - convert base58 text to a key
func (k *Key) UnmarshalText(s []byte) error {
	key, err := KeyFromBase58(string(s))
	if nil != err {
		return err
	}
	*k = key
	return nil
}
