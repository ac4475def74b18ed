// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package community - communities, char traits and membership roles
package community

import (
	"encoding/binary"

	"github.com/bitmark-inc/karmad/fault"
)

// ID - community identifier
type ID uint32

// TraitID - char trait identifier
type TraitID uint32

// the global scope, with no allowed-trait restriction
const NoCommunity = ID(0)

// reserved char traits
const (
	NoTrait         = TraitID(0)
	SignupTrait     = TraitID(1)
	SpenderTrait    = TraitID(2)
	AmbassadorTrait = TraitID(3)
)

// Trait - a named scoring category
type Trait struct {
	ID    TraitID `json:"id"`
	Name  string  `json:"name"`
	Emoji string  `json:"emoji"`
}

// Community - a scope for membership and trait scoring
type Community struct {
	ID            ID        `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Emoji         string    `json:"emoji"`
	WebsiteURL    string    `json:"websiteUrl,omitempty"`
	TwitterURL    string    `json:"twitterUrl,omitempty"`
	InstaURL      string    `json:"instaUrl,omitempty"`
	FaceURL       string    `json:"faceUrl,omitempty"`
	DiscordURL    string    `json:"discordUrl,omitempty"`
	Closed        bool      `json:"closed"`
	AllowedTraits []TraitID `json:"allowedTraits"`
}

// Allows - trait is in the allowed set
func (c *Community) Allows(trait TraitID) bool {
	for _, t := range c.AllowedTraits {
		if t == trait {
			return true
		}
	}
	return false
}

// Role - membership role within a community
type Role byte

// roles in increasing privilege
const (
	RoleNone   = Role(0)
	RoleMember = Role(1)
	RoleAdmin  = Role(2)
)

// String - role name
func (r Role) String() string {
	switch r {
	case RoleNone:
		return "none"
	case RoleMember:
		return "member"
	case RoleAdmin:
		return "admin"
	default:
		return "invalid"
	}
}

// IsValid - one of the defined roles
func (r Role) IsValid() bool {
	return r <= RoleAdmin
}

// MarshalText - role name
func (r Role) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fault.InvalidRole
	}
	return []byte(r.String()), nil
}

// UnmarshalText - role from name
func (r *Role) UnmarshalText(s []byte) error {
	switch string(s) {
	case "none":
		*r = RoleNone
	case "member":
		*r = RoleMember
	case "admin":
		*r = RoleAdmin
	default:
		return fault.InvalidRole
	}
	return nil
}

// Membership - a role held by an identity
type Membership struct {
	Community ID   `json:"community"`
	Role      Role `json:"role"`
}

// Bytes - big endian key form
func (id ID) Bytes() []byte {
	buffer := make([]byte, 4)
	binary.BigEndian.PutUint32(buffer, uint32(id))
	return buffer
}

// Bytes - big endian key form
func (t TraitID) Bytes() []byte {
	buffer := make([]byte, 4)
	binary.BigEndian.PutUint32(buffer, uint32(t))
	return buffer
}
