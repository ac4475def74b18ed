// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"unicode/utf8"

	"github.com/bitmark-inc/karmad/account"
	"github.com/bitmark-inc/karmad/community"
	"github.com/bitmark-inc/karmad/fault"
	"github.com/bitmark-inc/karmad/identity"
	"github.com/bitmark-inc/karmad/reward"
	"github.com/bitmark-inc/karmad/util"
)

const maxFieldLength = 8192

// Unpack - turn a byte slice into a call
//
// must cast result to correct type
//
// e.g.
//
//	switch tx := result.(type) {
//	case *transactionrecord.Appreciation:
func (record Packed) Unpack() (t Transaction, n int, e error) {
	recordType, n, ok := util.ReadUint64(record, 0)
	if !ok {
		return nil, 0, fault.NotTransactionPack
	}

unpack_switch:
	switch TagType(recordType) {

	case NewUserTag:
		c := &NewUser{}

		key, n, ok := util.ReadBytes(record, n, account.KeyLength)
		if !ok {
			break unpack_switch
		}
		c.Account, e = account.KeyFromBytes(key)
		if nil != e {
			return nil, 0, e
		}

		c.UserName, n, ok = util.ReadString(record, n, identity.MaxUserNameLength*utf8.UTFMax)
		if !ok {
			break unpack_switch
		}

		phone, n, ok := util.ReadBytes(record, n, identity.PhoneHashLength)
		if !ok {
			break unpack_switch
		}
		c.PhoneHash, e = identity.PhoneHashFromBytes(phone)
		if nil != e {
			return nil, 0, e
		}

		c.Metadata, n, ok = util.ReadString(record, n, identity.MaxMetadataLength)
		if !ok {
			break unpack_switch
		}
		return c, n, nil

	case UpdateUserTag:
		c := &UpdateUser{}

		c.UserName, n, ok = util.ReadString(record, n, identity.MaxUserNameLength*utf8.UTFMax)
		if !ok {
			break unpack_switch
		}

		phone, n, ok := util.ReadBytes(record, n, identity.PhoneHashLength)
		if !ok {
			break unpack_switch
		}
		if 0 != len(phone) {
			c.PhoneHash, e = identity.PhoneHashFromBytes(phone)
			if nil != e {
				return nil, 0, e
			}
		}

		c.Metadata, n, ok = util.ReadString(record, n, identity.MaxMetadataLength)
		if !ok {
			break unpack_switch
		}
		return c, n, nil

	case DeleteUserTag:
		return &DeleteUser{}, n, nil

	case AppreciationTag:
		c := &Appreciation{}

		c.To, n, e = readTag(record, n)
		if nil != e {
			return nil, 0, e
		}

		c.Amount, n, ok = util.ReadUint64(record, n)
		if !ok {
			break unpack_switch
		}
		id, n, ok := util.ReadUint64(record, n)
		if !ok || id > 0xffffffff {
			break unpack_switch
		}
		c.Community = community.ID(id)

		trait, n, ok := util.ReadUint64(record, n)
		if !ok || trait > 0xffffffff {
			break unpack_switch
		}
		c.Trait = community.TraitID(trait)
		return c, n, nil

	case SetAdminTag:
		c := &SetAdmin{}

		id, n, ok := util.ReadUint64(record, n)
		if !ok || id > 0xffffffff {
			break unpack_switch
		}
		c.Community = community.ID(id)

		c.NewAdmin, n, e = readTag(record, n)
		if nil != e {
			return nil, 0, e
		}
		return c, n, nil

	case InviteTag:
		phone, n, ok := util.ReadBytes(record, n, identity.PhoneHashLength)
		if !ok {
			break unpack_switch
		}
		h, err := identity.PhoneHashFromBytes(phone)
		if nil != err {
			return nil, 0, err
		}
		return &Invite{PhoneHash: h}, n, nil

	case ClaimRewardTag:
		r, n, ok := util.ReadUint64(record, n)
		if !ok || r > 0xff {
			break unpack_switch
		}
		return &ClaimReward{Reward: reward.Type(r)}, n, nil

	default: // also NullTag
	}
	return nil, 0, fault.NotTransactionPack
}

func readTag(record []byte, n int) (identity.Tag, int, error) {
	tagType, n, ok := util.ReadUint64(record, n)
	if !ok {
		return identity.Tag{}, 0, fault.NotTransactionPack
	}

	switch identity.TagType(tagType) {
	case identity.AccountTagType:
		key, n, ok := util.ReadBytes(record, n, account.KeyLength)
		if !ok {
			return identity.Tag{}, 0, fault.NotTransactionPack
		}
		k, err := account.KeyFromBytes(key)
		if nil != err {
			return identity.Tag{}, 0, err
		}
		return identity.AccountTag(k), n, nil

	case identity.UserNameTagType:
		name, n, ok := util.ReadString(record, n, identity.MaxUserNameLength*utf8.UTFMax)
		if !ok {
			return identity.Tag{}, 0, fault.NotTransactionPack
		}
		return identity.UserNameTag(name), n, nil

	case identity.PhoneTagType:
		phone, n, ok := util.ReadBytes(record, n, identity.PhoneHashLength)
		if !ok {
			return identity.Tag{}, 0, fault.NotTransactionPack
		}
		h, err := identity.PhoneHashFromBytes(phone)
		if nil != err {
			return identity.Tag{}, 0, err
		}
		return identity.PhoneTag(h), n, nil

	default:
		return identity.Tag{}, 0, fault.InvalidIdentityTag
	}
}
