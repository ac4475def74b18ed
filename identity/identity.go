// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package identity - the user registry
//
// an identity is reachable by three unique keys: its account key
// (primary), its user name and the hash of its phone number
package identity

import (
	"unicode"
	"unicode/utf8"

	"github.com/bitmark-inc/karmad/account"
	"github.com/bitmark-inc/karmad/fault"
	"github.com/bitmark-inc/karmad/util"
)

// limits
const (
	MaxUserNameLength = 64
	MaxMetadataLength = 2048
)

// Identity - a registered user
type Identity struct {
	Account   account.Key `json:"account"`
	UserName  string      `json:"userName"`
	PhoneHash PhoneHash   `json:"phoneHash"`
	Metadata  string      `json:"metadata,omitempty"`
}

// ValidUserName - non-empty, bounded, printable without surrounding space
func ValidUserName(userName string) bool {
	if !utf8.ValidString(userName) {
		return false
	}
	n := utf8.RuneCountInString(userName)
	if n < 1 || n > MaxUserNameLength {
		return false
	}
	for i, r := range userName {
		if unicode.IsControl(r) {
			return false
		}
		if unicode.IsSpace(r) && (0 == i || i+utf8.RuneLen(r) == len(userName)) {
			return false
		}
	}
	return true
}

// Validate - check all fields of a new or updated identity
func (id *Identity) Validate() error {
	if id.Account.IsZero() {
		return fault.InvalidAccountKey
	}
	if !ValidUserName(id.UserName) {
		return fault.InvalidUserName
	}
	if id.PhoneHash.IsZero() {
		return fault.InvalidPhoneHash
	}
	if len(id.Metadata) > MaxMetadataLength {
		return fault.MetadataTooLong
	}
	return nil
}

// pack everything except the account key, which is the storage key
func (id *Identity) pack() []byte {
	buffer := make([]byte, 0, PhoneHashLength+len(id.UserName)+len(id.Metadata)+4)
	buffer = append(buffer, id.PhoneHash[:]...)
	buffer = util.AppendString(buffer, id.UserName)
	return util.AppendString(buffer, id.Metadata)
}

func unpack(key account.Key, buffer []byte) (*Identity, error) {
	if len(buffer) < PhoneHashLength {
		return nil, fault.NotFound
	}
	id := &Identity{
		Account: key,
	}
	copy(id.PhoneHash[:], buffer[:PhoneHashLength])

	n := PhoneHashLength
	ok := false
	id.UserName, n, ok = util.ReadString(buffer, n, MaxUserNameLength*utf8.UTFMax)
	if !ok {
		return nil, fault.NotFound
	}
	id.Metadata, _, ok = util.ReadString(buffer, n, MaxMetadataLength)
	if !ok {
		return nil, fault.NotFound
	}
	return id, nil
}
