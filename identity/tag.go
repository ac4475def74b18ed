// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identity

import (
	"encoding/json"
	"strings"

	"github.com/bitmark-inc/karmad/account"
	"github.com/bitmark-inc/karmad/fault"
)

// TagType - which index a tag is resolved through
type TagType byte

// tag types
const (
	NullTagType     TagType = iota
	AccountTagType  TagType = iota
	UserNameTagType TagType = iota
	PhoneTagType    TagType = iota
)

// Tag - reference to an identity by any of its unique keys
type Tag struct {
	Type      TagType
	Account   account.Key
	UserName  string
	PhoneHash PhoneHash
}

// AccountTag - tag by account key
func AccountTag(key account.Key) Tag {
	return Tag{Type: AccountTagType, Account: key}
}

// UserNameTag - tag by user name
func UserNameTag(userName string) Tag {
	return Tag{Type: UserNameTagType, UserName: userName}
}

// PhoneTag - tag by phone number hash
func PhoneTag(hash PhoneHash) Tag {
	return Tag{Type: PhoneTagType, PhoneHash: hash}
}

// String - readable form
func (t Tag) String() string {
	switch t.Type {
	case AccountTagType:
		return "account:" + t.Account.String()
	case UserNameTagType:
		return "user:" + t.UserName
	case PhoneTagType:
		return "phone:" + t.PhoneHash.String()
	default:
		return "invalid"
	}
}

type tagJSON struct {
	Account   *account.Key `json:"account,omitempty"`
	UserName  *string      `json:"userName,omitempty"`
	PhoneHash *PhoneHash   `json:"phoneHash,omitempty"`
}

// MarshalJSON - one of the three fields is present
func (t Tag) MarshalJSON() ([]byte, error) {
	j := tagJSON{}
	switch t.Type {
	case AccountTagType:
		j.Account = &t.Account
	case UserNameTagType:
		j.UserName = &t.UserName
	case PhoneTagType:
		j.PhoneHash = &t.PhoneHash
	default:
		return nil, fault.InvalidIdentityTag
	}
	return json.Marshal(j)
}

// UnmarshalJSON - exactly one field must be present
func (t *Tag) UnmarshalJSON(s []byte) error {
	j := tagJSON{}
	if err := json.Unmarshal(s, &j); nil != err {
		return err
	}

	n := 0
	if nil != j.Account {
		*t = AccountTag(*j.Account)
		n += 1
	}
	if nil != j.UserName {
		*t = UserNameTag(*j.UserName)
		n += 1
	}
	if nil != j.PhoneHash {
		*t = PhoneTag(*j.PhoneHash)
		n += 1
	}
	if 1 != n {
		return fault.InvalidIdentityTag
	}
	return nil
}

// ParseTag - decode "account:KEY", "user:NAME" or "phone:NUMBER"
//
// a phone value is either an E.164 number, hashed here, or the hex
// hash itself
func ParseTag(s string) (Tag, error) {
	parts := strings.SplitN(s, ":", 2)
	if 2 != len(parts) || "" == parts[1] {
		return Tag{}, fault.InvalidIdentityTag
	}
	value := parts[1]

	switch parts[0] {
	case "account":
		key, err := account.KeyFromBase58(value)
		if nil != err {
			return Tag{}, err
		}
		return AccountTag(key), nil
	case "user":
		return UserNameTag(value), nil
	case "phone":
		var hash PhoneHash
		var err error
		if strings.HasPrefix(value, "+") {
			hash, err = HashPhoneNumber(value)
		} else {
			err = hash.UnmarshalText([]byte(value))
		}
		if nil != err {
			return Tag{}, err
		}
		return PhoneTag(hash), nil
	default:
		return Tag{}, fault.InvalidIdentityTag
	}
}
