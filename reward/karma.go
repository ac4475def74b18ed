// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reward

import (
	"encoding/binary"

	"github.com/google/btree"

	"github.com/bitmark-inc/karmad/account"
	"github.com/bitmark-inc/karmad/events"
	"github.com/bitmark-inc/karmad/fault"
	"github.com/bitmark-inc/karmad/hook"
	"github.com/bitmark-inc/karmad/storage"
)

const treeDegree = 8

// key in the globals pool holding one more than the last paid period
var lastPaidKey = []byte("karma-round")

// Participant - a candidate of a karma round
type Participant struct {
	Account       account.Key `json:"account"`
	KarmaScore    uint64      `json:"karmaScore,string"`
	Appreciations uint64      `json:"appreciations"`
}

// highest score first, then account key order
func (p Participant) less(other Participant) bool {
	if p.KarmaScore != other.KarmaScore {
		return p.KarmaScore > other.KarmaScore
	}
	return p.Account.Compare(other.Account) < 0
}

// Winner - a paid participant
type Winner struct {
	Account account.Key `json:"account"`
	Amount  uint64      `json:"amount,string"`
}

func receivedKey(period uint64, who account.Key) []byte {
	key := make([]byte, 8+account.KeyLength)
	binary.BigEndian.PutUint64(key, period)
	copy(key[8:], who[:])
	return key
}

func periodBytes(period uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, period)
	return buffer
}

// Leaderboard - committed ranking of a period
//
// only registered identities that received at least the minimum
// number of appreciations in the period take part, at most
// MaxWinners are returned
func (a *Allocator) Leaderboard(period uint64) ([]Participant, error) {
	tree := btree.NewG(treeDegree, Participant.less)

	err := a.received.NewFetchCursor().Prefix(periodBytes(period)).Map(func(key []byte, value []byte) error {
		if 8+account.KeyLength != len(key) || 8 != len(value) {
			return fault.InvalidCount
		}
		n := binary.BigEndian.Uint64(value)
		if n < a.params.MinAppreciations {
			return nil
		}
		who, err := account.KeyFromBytes(key[8:])
		if nil != err {
			return err
		}
		if !a.identities.Exists(storage.Committed, who) {
			return nil
		}
		karma, err := a.scores.KarmaScore(who)
		if nil != err {
			return err
		}
		tree.ReplaceOrInsert(Participant{
			Account:       who,
			KarmaScore:    karma,
			Appreciations: n,
		})
		return nil
	})
	if nil != err {
		return nil, err
	}

	result := make([]Participant, 0, a.params.MaxWinners)
	tree.Ascend(func(p Participant) bool {
		if len(result) >= a.params.MaxWinners {
			return false
		}
		result = append(result, p)
		return true
	})
	return result, nil
}

// Paid - the round of a period has already run
func (a *Allocator) Paid(r storage.Reader, period uint64) bool {
	watermark, ok := r.GetN(a.globals, lastPaidKey)
	return ok && period < watermark
}

// RunKarmaRound - pay the karma reward to the leaders of a period
//
// a period at or before the last paid one is ignored
func (a *Allocator) RunKarmaRound(s *hook.Scope, period uint64) ([]Winner, error) {
	if a.Paid(s.Trx, period) {
		a.log.Debugf("karma round: %d already paid", period)
		return nil, nil
	}

	leaders, err := a.Leaderboard(period)
	if nil != err {
		return nil, err
	}

	winners := make([]Winner, 0, len(leaders))
	for rank, p := range leaders {
		amount, _, err := a.Claim(s, Karma, p.Account)
		if nil != err {
			return nil, err
		}

		key := make([]byte, 12)
		binary.BigEndian.PutUint64(key, period)
		binary.BigEndian.PutUint32(key[8:], uint32(rank))
		value := make([]byte, account.KeyLength+8)
		copy(value, p.Account[:])
		binary.BigEndian.PutUint64(value[account.KeyLength:], amount)
		s.Trx.Put(a.rounds, key, value)

		winners = append(winners, Winner{
			Account: p.Account,
			Amount:  amount,
		})
	}
	s.Trx.PutN(a.globals, lastPaidKey, period+1)

	err = s.Emit(events.KarmaRound,
		events.Attr("period", period),
		events.Attr("winners", len(winners)),
	)
	if nil != err {
		return nil, err
	}

	a.log.Infof("karma round: %d  winners: %d", period, len(winners))
	return winners, nil
}

// Winners - committed result of a paid round in rank order
func (a *Allocator) Winners(period uint64) ([]Winner, error) {
	result := make([]Winner, 0)
	err := a.rounds.NewFetchCursor().Prefix(periodBytes(period)).Map(func(key []byte, value []byte) error {
		if account.KeyLength+8 != len(value) {
			return fault.InvalidCount
		}
		who, err := account.KeyFromBytes(value[:account.KeyLength])
		if nil != err {
			return err
		}
		result = append(result, Winner{
			Account: who,
			Amount:  binary.BigEndian.Uint64(value[account.KeyLength:]),
		})
		return nil
	})
	return result, err
}
