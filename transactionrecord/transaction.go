// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transactionrecord - the calls a user can submit and their
// binary packed form
package transactionrecord

import (
	"github.com/bitmark-inc/karmad/account"
	"github.com/bitmark-inc/karmad/community"
	"github.com/bitmark-inc/karmad/fault"
	"github.com/bitmark-inc/karmad/identity"
	"github.com/bitmark-inc/karmad/reward"
)

// TagType - type code for calls
type TagType uint64

// enumerate the possible call types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	NewUserTag      = TagType(iota) // verifier registers a user
	UpdateUserTag   = TagType(iota) // user changes name, phone or metadata
	DeleteUserTag   = TagType(iota) // user removes itself
	AppreciationTag = TagType(iota) // transfer with karma
	SetAdminTag     = TagType(iota) // admin adds another admin
	InviteTag       = TagType(iota) // invite a phone number
	ClaimRewardTag  = TagType(iota) // retry a one-off reward

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// Transaction - generic call interface
type Transaction interface {
	Pack() (Packed, error)
}

// NewUser - register a user, only a verifier may submit this
type NewUser struct {
	Account   account.Key        `json:"account"`
	UserName  string             `json:"userName"`
	PhoneHash identity.PhoneHash `json:"phoneHash"`
	Metadata  string             `json:"metadata,omitempty"`
}

// UpdateUser - empty or zero fields are left unchanged
type UpdateUser struct {
	UserName  string             `json:"userName,omitempty"`
	PhoneHash identity.PhoneHash `json:"phoneHash"`
	Metadata  string             `json:"metadata,omitempty"`
}

// DeleteUser - remove the caller
type DeleteUser struct{}

// Appreciation - pay an identity and optionally award a trait
type Appreciation struct {
	To        identity.Tag      `json:"to"`
	Amount    uint64            `json:"amount,string"`
	Community community.ID      `json:"community"`
	Trait     community.TraitID `json:"trait"`
}

// SetAdmin - make another identity admin of a community
type SetAdmin struct {
	Community community.ID `json:"community"`
	NewAdmin  identity.Tag `json:"newAdmin"`
}

// Invite - record a referral for a phone number not yet registered
type Invite struct {
	PhoneHash identity.PhoneHash `json:"phoneHash"`
}

// ClaimReward - claim a one-off reward for the caller
type ClaimReward struct {
	Reward reward.Type `json:"reward"`
}

var tagNames = map[TagType]string{
	NewUserTag:      "newUser",
	UpdateUserTag:   "updateUser",
	DeleteUserTag:   "deleteUser",
	AppreciationTag: "appreciation",
	SetAdminTag:     "setAdmin",
	InviteTag:       "invite",
	ClaimRewardTag:  "claimReward",
}

// String - call name
func (t TagType) String() string {
	if s, ok := tagNames[t]; ok {
		return s
	}
	return "invalid"
}

// New - empty call of a given name, for decoding
func New(name string) (Transaction, error) {
	switch name {
	case NewUserTag.String():
		return &NewUser{}, nil
	case UpdateUserTag.String():
		return &UpdateUser{}, nil
	case DeleteUserTag.String():
		return &DeleteUser{}, nil
	case AppreciationTag.String():
		return &Appreciation{}, nil
	case SetAdminTag.String():
		return &SetAdmin{}, nil
	case InviteTag.String():
		return &Invite{}, nil
	case ClaimRewardTag.String():
		return &ClaimReward{}, nil
	default:
		return nil, fault.InvalidCall
	}
}

// Name - call name of a transaction
func Name(t Transaction) string {
	return tagOf(t).String()
}

func tagOf(t Transaction) TagType {
	switch t.(type) {
	case *NewUser:
		return NewUserTag
	case *UpdateUser:
		return UpdateUserTag
	case *DeleteUser:
		return DeleteUserTag
	case *Appreciation:
		return AppreciationTag
	case *SetAdmin:
		return SetAdminTag
	case *Invite:
		return InviteTag
	case *ClaimReward:
		return ClaimRewardTag
	default:
		return InvalidTag
	}
}
