// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identity

import (
	"encoding/hex"
	"strings"
	"unicode"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/karmad/fault"
)

// PhoneHashLength - bytes in a phone number hash
const PhoneHashLength = 32

// PhoneHash - SHA3-256 of a normalised phone number
type PhoneHash [PhoneHashLength]byte

// HashPhoneNumber - normalise a phone number and hash it
//
// only digits and a leading "+" are kept
func HashPhoneNumber(number string) (PhoneHash, error) {
	var b strings.Builder
	for i, r := range strings.TrimSpace(number) {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune(r)
		case '+' == r && 0 == i:
			b.WriteRune(r)
		case ' ' == r || '-' == r || '(' == r || ')' == r:
		default:
			return PhoneHash{}, fault.InvalidPhoneNumber
		}
	}
	normalised := b.String()
	if len(strings.TrimPrefix(normalised, "+")) < 4 {
		return PhoneHash{}, fault.InvalidPhoneNumber
	}
	return PhoneHash(sha3.Sum256([]byte(normalised))), nil
}

// PhoneHashFromBytes - convert and validate a byte slice
func PhoneHashFromBytes(buffer []byte) (PhoneHash, error) {
	h := PhoneHash{}
	if PhoneHashLength != len(buffer) {
		return h, fault.InvalidPhoneHash
	}
	copy(h[:], buffer)
	if h.IsZero() {
		return h, fault.InvalidPhoneHash
	}
	return h, nil
}

// IsZero - unset hash
func (h PhoneHash) IsZero() bool {
	return PhoneHash{} == h
}

// String - hex form
func (h PhoneHash) String() string {
	return hex.EncodeToString(h[:])
}

// GoString - hex form for %#v
func (h PhoneHash) GoString() string {
	return "<phone:" + hex.EncodeToString(h[:]) + ">"
}

// MarshalText - convert to hex text
func (h PhoneHash) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(h)))
	hex.Encode(buffer, h[:])
	return buffer, nil
}

// UnmarshalText - convert from hex text
func (h *PhoneHash) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(buffer, s)
	if nil != err {
		return fault.InvalidPhoneHash
	}
	hash, err := PhoneHashFromBytes(buffer[:n])
	if nil != err {
		return err
	}
	*h = hash
	return nil
}
