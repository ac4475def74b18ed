// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"unicode/utf8"

	"github.com/bitmark-inc/karmad/fault"
	"github.com/bitmark-inc/karmad/identity"
	"github.com/bitmark-inc/karmad/util"
)

// pack NewUser
//
// Pack Varint64(tag) followed by fields in order as struct above
func (c *NewUser) Pack() (Packed, error) {
	if c.Account.IsZero() {
		return nil, fault.InvalidAccountKey
	}
	if !identity.ValidUserName(c.UserName) {
		return nil, fault.InvalidUserName
	}
	if c.PhoneHash.IsZero() {
		return nil, fault.InvalidPhoneHash
	}
	if len(c.Metadata) > identity.MaxMetadataLength {
		return nil, fault.MetadataTooLong
	}

	message := util.ToVarint64(uint64(NewUserTag))
	message = util.AppendBytes(message, c.Account[:])
	message = util.AppendString(message, c.UserName)
	message = util.AppendBytes(message, c.PhoneHash[:])
	message = util.AppendString(message, c.Metadata)
	return message, nil
}

// pack UpdateUser
//
// an unchanged phone hash is packed as zero length
func (c *UpdateUser) Pack() (Packed, error) {
	if "" != c.UserName && !identity.ValidUserName(c.UserName) {
		return nil, fault.InvalidUserName
	}
	if len(c.Metadata) > identity.MaxMetadataLength {
		return nil, fault.MetadataTooLong
	}

	message := util.ToVarint64(uint64(UpdateUserTag))
	message = util.AppendString(message, c.UserName)
	if c.PhoneHash.IsZero() {
		message = util.AppendBytes(message, nil)
	} else {
		message = util.AppendBytes(message, c.PhoneHash[:])
	}
	message = util.AppendString(message, c.Metadata)
	return message, nil
}

// pack DeleteUser
func (c *DeleteUser) Pack() (Packed, error) {
	return util.ToVarint64(uint64(DeleteUserTag)), nil
}

// pack Appreciation
func (c *Appreciation) Pack() (Packed, error) {
	message := util.ToVarint64(uint64(AppreciationTag))
	message, err := appendTag(message, c.To)
	if nil != err {
		return nil, err
	}
	message = util.AppendUint64(message, c.Amount)
	message = util.AppendUint64(message, uint64(c.Community))
	message = util.AppendUint64(message, uint64(c.Trait))
	return message, nil
}

// pack SetAdmin
func (c *SetAdmin) Pack() (Packed, error) {
	message := util.ToVarint64(uint64(SetAdminTag))
	message = util.AppendUint64(message, uint64(c.Community))
	return appendTag(message, c.NewAdmin)
}

// pack Invite
func (c *Invite) Pack() (Packed, error) {
	if c.PhoneHash.IsZero() {
		return nil, fault.InvalidPhoneHash
	}
	message := util.ToVarint64(uint64(InviteTag))
	return util.AppendBytes(message, c.PhoneHash[:]), nil
}

// pack ClaimReward
func (c *ClaimReward) Pack() (Packed, error) {
	message := util.ToVarint64(uint64(ClaimRewardTag))
	return util.AppendUint64(message, uint64(c.Reward)), nil
}

// identity tag: Varint64(type) followed by the key
func appendTag(message []byte, tag identity.Tag) ([]byte, error) {
	switch tag.Type {
	case identity.AccountTagType:
		if tag.Account.IsZero() {
			return nil, fault.InvalidAccountKey
		}
		message = util.AppendUint64(message, uint64(tag.Type))
		return util.AppendBytes(message, tag.Account[:]), nil
	case identity.UserNameTagType:
		if !utf8.ValidString(tag.UserName) || "" == tag.UserName {
			return nil, fault.InvalidUserName
		}
		message = util.AppendUint64(message, uint64(tag.Type))
		return util.AppendString(message, tag.UserName), nil
	case identity.PhoneTagType:
		if tag.PhoneHash.IsZero() {
			return nil, fault.InvalidPhoneHash
		}
		message = util.AppendUint64(message, uint64(tag.Type))
		return util.AppendBytes(message, tag.PhoneHash[:]), nil
	default:
		return nil, fault.InvalidIdentityTag
	}
}
