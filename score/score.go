// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package score - per identity, community and trait karma counters
package score

import (
	"encoding/binary"

	"github.com/bitmark-inc/karmad/account"
	"github.com/bitmark-inc/karmad/community"
	"github.com/bitmark-inc/karmad/fault"
	"github.com/bitmark-inc/karmad/storage"
	"github.com/bitmark-inc/logger"
)

// Score - one counter
type Score struct {
	Community community.ID      `json:"community"`
	Trait     community.TraitID `json:"trait"`
	Score     uint64            `json:"score,string"`
}

// Ledger - trait score counters
type Ledger struct {
	log      *logger.L
	pool     *storage.PoolHandle // identity ⧺ community ⧺ trait → count
	registry *community.Registry
}

// New - create a score ledger
func New(pools *storage.Pools, registry *community.Registry) *Ledger {
	return &Ledger{
		log:      logger.New("score"),
		pool:     pools.TraitScores,
		registry: registry,
	}
}

func scoreKey(who account.Key, id community.ID, trait community.TraitID) []byte {
	key := make([]byte, account.KeyLength+8)
	copy(key, who[:])
	binary.BigEndian.PutUint32(key[account.KeyLength:], uint32(id))
	binary.BigEndian.PutUint32(key[account.KeyLength+4:], uint32(trait))
	return key
}

// Get - current score, zero if never awarded
func (l *Ledger) Get(r storage.Reader, who account.Key, id community.ID, trait community.TraitID) uint64 {
	n, _ := r.GetN(l.pool, scoreKey(who, id, trait))
	return n
}

// Increment - add one point and return the new score
func (l *Ledger) Increment(trx storage.Transaction, who account.Key, id community.ID, trait community.TraitID) uint64 {
	key := scoreKey(who, id, trait)
	n, _ := trx.GetN(l.pool, key)
	n += 1
	trx.PutN(l.pool, key, n)

	l.log.Debugf("%s  community: %d  trait: %d → %d", who, id, trait, n)
	return n
}

// ScoresOf - all committed scores of an identity
func (l *Ledger) ScoresOf(who account.Key) ([]Score, error) {
	result := make([]Score, 0)
	err := l.pool.NewFetchCursor().Prefix(who.Bytes()).Map(func(key []byte, value []byte) error {
		if account.KeyLength+8 != len(key) || 8 != len(value) {
			return fault.InvalidCount
		}
		result = append(result, Score{
			Community: community.ID(binary.BigEndian.Uint32(key[account.KeyLength:])),
			Trait:     community.TraitID(binary.BigEndian.Uint32(key[account.KeyLength+4:])),
			Score:     binary.BigEndian.Uint64(value),
		})
		return nil
	})
	return result, err
}

// KarmaScore - sum of all trait scores plus the number of communities
// the identity belongs to
func (l *Ledger) KarmaScore(who account.Key) (uint64, error) {
	scores, err := l.ScoresOf(who)
	if nil != err {
		return 0, err
	}
	memberships, err := l.registry.MembershipsOf(who)
	if nil != err {
		return 0, err
	}

	total := uint64(len(memberships))
	for _, s := range scores {
		total += s.Score
	}
	return total, nil
}

// RemoveAccount - drop every score of an identity
func (l *Ledger) RemoveAccount(trx storage.Transaction, who account.Key) error {
	scores, err := l.ScoresOf(who)
	if nil != err {
		return err
	}
	for _, s := range scores {
		trx.Delete(l.pool, scoreKey(who, s.Community, s.Trait))
	}
	return nil
}
