// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package runtime

import (
	"github.com/bitmark-inc/karmad/account"
	"github.com/bitmark-inc/karmad/community"
	"github.com/bitmark-inc/karmad/events"
	"github.com/bitmark-inc/karmad/fault"
	"github.com/bitmark-inc/karmad/identity"
	"github.com/bitmark-inc/karmad/merkle"
	"github.com/bitmark-inc/karmad/reward"
	"github.com/bitmark-inc/karmad/score"
	"github.com/bitmark-inc/karmad/storage"
	"github.com/bitmark-inc/karmad/transactionrecord"
	"github.com/bitmark-inc/karmad/txindex"
)

// queries read committed state only and never take the runtime lock

// UserInfo - everything known about an identity
type UserInfo struct {
	identity.Identity
	Balance      uint64                 `json:"balance,string"`
	Nonce        uint64                 `json:"nonce"`
	KarmaScore   uint64                 `json:"karmaScore,string"`
	Scores       []score.Score          `json:"scores"`
	Memberships  []community.Membership `json:"memberships"`
	Rewards      reward.State           `json:"rewards"`
	Transactions uint64                 `json:"transactions"`
	InvitedBy    []account.Key          `json:"invitedBy"`
}

// TransactionInfo - a stored call with its origin
type TransactionInfo struct {
	txindex.Position
	Seq    uint64                        `json:"seq"`
	Hash   merkle.Digest                 `json:"hash"`
	Caller account.Key                   `json:"caller"`
	Name   string                        `json:"name"`
	Call   transactionrecord.Transaction `json:"call"`
}

// UserInfo - lookup an identity by any tag
func (r *Runtime) UserInfo(tag identity.Tag) (*UserInfo, error) {
	id, ok := r.identities.Resolve(storage.Committed, tag)
	if !ok {
		return nil, fault.NotFound
	}
	return r.info(id)
}

func (r *Runtime) info(id *identity.Identity) (*UserInfo, error) {
	scores, err := r.scores.ScoresOf(id.Account)
	if nil != err {
		return nil, err
	}
	memberships, err := r.registry.MembershipsOf(id.Account)
	if nil != err {
		return nil, err
	}
	karma, err := r.scores.KarmaScore(id.Account)
	if nil != err {
		return nil, err
	}
	nonce, _ := r.nonces.GetN(id.Account.Bytes())

	// inviters still waiting for their first appreciation of this user
	invitedBy := make([]account.Key, 0)
	if !id.PhoneHash.IsZero() {
		invitedBy, err = r.referrals.InvitersOf(id.PhoneHash)
		if nil != err {
			return nil, err
		}
	}

	return &UserInfo{
		Identity:     *id,
		Balance:      r.ledger.Balance(storage.Committed, id.Account),
		Nonce:        nonce,
		KarmaScore:   karma,
		Scores:       scores,
		Memberships:  memberships,
		Rewards:      r.rewards.State(storage.Committed, id.Account),
		Transactions: r.index.Count(storage.Committed, id.Account),
		InvitedBy:    invitedBy,
	}, nil
}

// Contacts - identities whose user name starts with prefix
//
// a community other than NoCommunity restricts the result to its members
func (r *Runtime) Contacts(prefix string, id community.ID, start string, count int) ([]*UserInfo, error) {
	if count <= 0 {
		return nil, fault.InvalidCount
	}
	if !r.registry.Exists(storage.Committed, id) {
		return nil, fault.CommunityNotFound
	}

	// one extra so a batch always moves past start
	batch := count + 1
	result := make([]*UserInfo, 0, count)
	for len(result) < count {
		ids, err := r.identities.ListByUserNamePrefix(prefix, start, batch)
		if nil != err {
			return nil, err
		}
		for _, u := range ids {
			// resuming from start includes it again
			if u.UserName == start {
				continue
			}
			start = u.UserName
			if community.NoCommunity != id && community.RoleNone == r.registry.RoleOf(storage.Committed, u.Account, id) {
				continue
			}
			info, err := r.info(u)
			if nil != err {
				return nil, err
			}
			result = append(result, info)
			if len(result) == count {
				break
			}
		}
		if len(ids) < batch {
			break
		}
	}
	return result, nil
}

// AllUsers - identities in account key order
//
// a community other than NoCommunity pages through its members instead
func (r *Runtime) AllUsers(id community.ID, start account.Key, count int) ([]*UserInfo, error) {
	if count <= 0 {
		return nil, fault.InvalidCount
	}
	if community.NoCommunity != id {
		return r.members(id, start, count)
	}

	ids, err := r.identities.List(start, count)
	if nil != err {
		return nil, err
	}
	result := make([]*UserInfo, 0, len(ids))
	for _, u := range ids {
		info, err := r.info(u)
		if nil != err {
			return nil, err
		}
		result = append(result, info)
	}
	return result, nil
}

func (r *Runtime) members(id community.ID, start account.Key, count int) ([]*UserInfo, error) {
	if !r.registry.Exists(storage.Committed, id) {
		return nil, fault.CommunityNotFound
	}
	members, err := r.registry.Members(id, start, count)
	if nil != err {
		return nil, err
	}
	result := make([]*UserInfo, 0, len(members))
	for _, m := range members {
		u, ok := r.identities.Get(storage.Committed, m.Account)
		if !ok {
			continue
		}
		info, err := r.info(u)
		if nil != err {
			return nil, err
		}
		result = append(result, info)
	}
	return result, nil
}

// Transactions - calls involving an account, oldest first
func (r *Runtime) Transactions(who account.Key, start uint64, count int) ([]*TransactionInfo, error) {
	if count <= 0 {
		return nil, fault.InvalidCount
	}
	entries, err := r.index.LookupByAccount(who, start, count)
	if nil != err {
		return nil, err
	}
	result := make([]*TransactionInfo, 0, len(entries))
	for _, e := range entries {
		info, err := r.Transaction(e.Hash)
		if nil != err {
			return nil, err
		}
		info.Seq = e.Seq
		result = append(result, info)
	}
	return result, nil
}

// Transaction - a call by its hash
func (r *Runtime) Transaction(hash merkle.Digest) (*TransactionInfo, error) {
	record, ok := r.index.LookupByHash(storage.Committed, hash)
	if !ok {
		return nil, fault.TransactionNotFound
	}
	if len(record.Packed) < account.KeyLength {
		return nil, fault.NotTransactionPack
	}
	caller, err := account.KeyFromBytes(record.Packed[:account.KeyLength])
	if nil != err {
		return nil, err
	}
	call, _, err := transactionrecord.Packed(record.Packed[account.KeyLength:]).Unpack()
	if nil != err {
		return nil, err
	}
	return &TransactionInfo{
		Position: record.Position,
		Hash:     hash,
		Caller:   caller,
		Name:     transactionrecord.Name(call),
		Call:     call,
	}, nil
}

// Leaderboard - current standing of a karma period
func (r *Runtime) Leaderboard(period uint64) ([]reward.Participant, error) {
	return r.rewards.Leaderboard(period)
}

// Winners - paid result of a karma period
func (r *Runtime) Winners(period uint64) ([]reward.Winner, error) {
	return r.rewards.Winners(period)
}

// Period - karma period of a block
func (r *Runtime) Period(block uint64) uint64 {
	return r.rewards.Period(block)
}

// Events - events raised in a block
func (r *Runtime) Events(block uint64) ([]events.Event, error) {
	return r.events.List(block)
}

// Traits - all defined char traits
func (r *Runtime) Traits() ([]community.Trait, error) {
	return r.registry.Traits()
}

// Communities - all defined communities
func (r *Runtime) Communities() ([]community.Community, error) {
	return r.registry.List()
}
