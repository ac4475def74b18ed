// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package community

import (
	"encoding/binary"
	"encoding/json"

	"github.com/bitmark-inc/karmad/account"
	"github.com/bitmark-inc/karmad/fault"
	"github.com/bitmark-inc/karmad/storage"
	"github.com/bitmark-inc/logger"
)

// Registry - community and trait definitions plus memberships
type Registry struct {
	log         *logger.L
	traits      *storage.PoolHandle
	communities *storage.PoolHandle
	memberships *storage.PoolHandle // identity ⧺ community → role
	members     *storage.PoolHandle // community ⧺ identity → role
}

// New - create a registry over the community pools
func New(pools *storage.Pools) *Registry {
	return &Registry{
		log:         logger.New("community"),
		traits:      pools.CharTraits,
		communities: pools.Communities,
		memberships: pools.Memberships,
		members:     pools.CommunityMembers,
	}
}

// DefineTrait - add a char trait
func (reg *Registry) DefineTrait(trx storage.Transaction, trait Trait) error {
	if NoTrait == trait.ID || "" == trait.Name {
		return fault.MissingParameters
	}
	if trx.Has(reg.traits, trait.ID.Bytes()) {
		return fault.DuplicateCharTrait
	}
	buffer, err := json.Marshal(trait)
	if nil != err {
		return err
	}
	trx.Put(reg.traits, trait.ID.Bytes(), buffer)
	reg.log.Infof("trait: %d %q", trait.ID, trait.Name)
	return nil
}

// Trait - a trait definition
func (reg *Registry) Trait(r storage.Reader, id TraitID) (*Trait, bool) {
	buffer := r.Get(reg.traits, id.Bytes())
	if nil == buffer {
		return nil, false
	}
	trait := &Trait{}
	if err := json.Unmarshal(buffer, trait); nil != err {
		logger.Panicf("community: corrupt trait: %d  error: %s", id, err)
	}
	return trait, true
}

// Traits - all committed traits in id order
func (reg *Registry) Traits() ([]Trait, error) {
	result := make([]Trait, 0)
	err := reg.traits.NewFetchCursor().Map(func(key []byte, value []byte) error {
		var trait Trait
		if err := json.Unmarshal(value, &trait); nil != err {
			return err
		}
		result = append(result, trait)
		return nil
	})
	return result, err
}

// Define - add a community
func (reg *Registry) Define(trx storage.Transaction, c Community) error {
	if NoCommunity == c.ID || "" == c.Name {
		return fault.MissingParameters
	}
	if trx.Has(reg.communities, c.ID.Bytes()) {
		return fault.DuplicateCommunity
	}
	for _, t := range c.AllowedTraits {
		if !trx.Has(reg.traits, t.Bytes()) {
			return fault.CharTraitNotFound
		}
	}
	buffer, err := json.Marshal(c)
	if nil != err {
		return err
	}
	trx.Put(reg.communities, c.ID.Bytes(), buffer)
	reg.log.Infof("community: %d %q  closed: %t", c.ID, c.Name, c.Closed)
	return nil
}

// Get - a community definition
func (reg *Registry) Get(r storage.Reader, id ID) (*Community, bool) {
	buffer := r.Get(reg.communities, id.Bytes())
	if nil == buffer {
		return nil, false
	}
	c := &Community{}
	if err := json.Unmarshal(buffer, c); nil != err {
		logger.Panicf("community: corrupt community: %d  error: %s", id, err)
	}
	return c, true
}

// Exists - community is defined, the global scope always exists
func (reg *Registry) Exists(r storage.Reader, id ID) bool {
	return NoCommunity == id || r.Has(reg.communities, id.Bytes())
}

// AllowsTrait - trait can be awarded in the community
func (reg *Registry) AllowsTrait(r storage.Reader, id ID, trait TraitID) bool {
	if NoCommunity == id {
		return true
	}
	c, ok := reg.Get(r, id)
	if !ok {
		return false
	}
	return c.Allows(trait)
}

// List - all committed communities in id order
func (reg *Registry) List() ([]Community, error) {
	result := make([]Community, 0)
	err := reg.communities.NewFetchCursor().Map(func(key []byte, value []byte) error {
		var c Community
		if err := json.Unmarshal(value, &c); nil != err {
			return err
		}
		result = append(result, c)
		return nil
	})
	return result, err
}

func membershipKey(who account.Key, id ID) []byte {
	return append(who.Bytes(), id.Bytes()...)
}

func memberKey(id ID, who account.Key) []byte {
	return append(id.Bytes(), who.Bytes()...)
}

// RoleOf - role of an identity, RoleNone if never set
func (reg *Registry) RoleOf(r storage.Reader, who account.Key, id ID) Role {
	buffer := r.Get(reg.memberships, membershipKey(who, id))
	if 1 != len(buffer) {
		return RoleNone
	}
	return Role(buffer[0])
}

// SetRole - set the role of an identity
//
// setting RoleNone removes the membership
func (reg *Registry) SetRole(trx storage.Transaction, who account.Key, id ID, role Role) error {
	if !role.IsValid() {
		return fault.InvalidRole
	}
	if NoCommunity == id {
		return fault.CommunityNotFound
	}
	if RoleNone == role {
		trx.Delete(reg.memberships, membershipKey(who, id))
		trx.Delete(reg.members, memberKey(id, who))
		return nil
	}
	trx.Put(reg.memberships, membershipKey(who, id), []byte{byte(role)})
	trx.Put(reg.members, memberKey(id, who), []byte{byte(role)})

	reg.log.Debugf("role: %s in: %d → %s", who, id, role)
	return nil
}

// MembershipsOf - committed memberships of an identity in community order
func (reg *Registry) MembershipsOf(who account.Key) ([]Membership, error) {
	result := make([]Membership, 0)
	err := reg.memberships.NewFetchCursor().Prefix(who.Bytes()).Map(func(key []byte, value []byte) error {
		if account.KeyLength+4 != len(key) || 1 != len(value) {
			return fault.InvalidCount
		}
		result = append(result, Membership{
			Community: ID(binary.BigEndian.Uint32(key[account.KeyLength:])),
			Role:      Role(value[0]),
		})
		return nil
	})
	return result, err
}

// Member - an identity with its role
type Member struct {
	Account account.Key `json:"account"`
	Role    Role        `json:"role"`
}

// Members - committed members of a community in account key order
func (reg *Registry) Members(id ID, start account.Key, count int) ([]Member, error) {
	elements, err := reg.members.NewFetchCursor().Prefix(id.Bytes()).Seek(memberKey(id, start)).Fetch(count)
	if nil != err {
		return nil, err
	}
	result := make([]Member, 0, len(elements))
	for _, e := range elements {
		who, err := account.KeyFromBytes(e.Key[4:])
		if nil != err {
			return nil, err
		}
		result = append(result, Member{
			Account: who,
			Role:    Role(e.Value[0]),
		})
	}
	return result, nil
}

// RemoveAccount - drop every membership of an identity
func (reg *Registry) RemoveAccount(trx storage.Transaction, who account.Key) error {
	memberships, err := reg.MembershipsOf(who)
	if nil != err {
		return err
	}
	for _, m := range memberships {
		trx.Delete(reg.memberships, membershipKey(who, m.Community))
		trx.Delete(reg.members, memberKey(m.Community, who))
	}
	return nil
}
