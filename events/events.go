// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package events - append-only log of externally observable events
//
// events are written inside the transaction of the call that raised
// them, so an aborted call leaves no events behind
package events

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/karmad/storage"
	"github.com/bitmark-inc/logger"
)

// Kind - type of event
type Kind string

// all event kinds
const (
	NewUser             Kind = "new_user"
	UpdateUser          Kind = "update_user"
	DeleteUser          Kind = "delete_user"
	Appreciation        Kind = "appreciation"
	CommunityAdminAdded Kind = "community_admin_added"
	ReferralCreated     Kind = "referral_created"
	RewardPaid          Kind = "reward_paid"
	FeeSubsidised       Kind = "fee_subsidised"
	KarmaRound          Kind = "karma_round"
)

// Attribute - one named value of an event
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Event - a structured event
type Event struct {
	Block      uint64      `json:"block,string"`
	Index      uint32      `json:"index"`
	Seq        uint16      `json:"seq"`
	Kind       Kind        `json:"kind"`
	Attributes []Attribute `json:"attributes"`
}

// Attr - build an attribute from any printable value
func Attr(key string, value interface{}) Attribute {
	return Attribute{
		Key:   key,
		Value: fmt.Sprint(value),
	}
}

// Get - value of a named attribute
func (e Event) Get(key string) (string, bool) {
	for _, a := range e.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Sink - receiver of events
type Sink interface {
	Emit(storage.Transaction, Event) error
}

// Log - a sink persisting events in a storage pool
type Log struct {
	log  *logger.L
	pool *storage.PoolHandle
}

// New - create an event log on a pool
func New(pool *storage.PoolHandle) *Log {
	return &Log{
		log:  logger.New("events"),
		pool: pool,
	}
}

// block ⧺ position ⧺ sequence
func eventKey(block uint64, index uint32, seq uint16) []byte {
	key := make([]byte, 14)
	binary.BigEndian.PutUint64(key[:8], block)
	binary.BigEndian.PutUint32(key[8:12], index)
	binary.BigEndian.PutUint16(key[12:], seq)
	return key
}

// Emit - append an event within the transaction
func (l *Log) Emit(trx storage.Transaction, e Event) error {
	buffer, err := json.Marshal(e)
	if nil != err {
		return err
	}
	trx.Put(l.pool, eventKey(e.Block, e.Index, e.Seq), buffer)
	l.log.Infof("%d/%d: %s %v", e.Block, e.Index, e.Kind, e.Attributes)
	return nil
}

// List - committed events of a block in emission order
func (l *Log) List(block uint64) ([]Event, error) {
	prefix := make([]byte, 8)
	binary.BigEndian.PutUint64(prefix, block)

	result := make([]Event, 0)
	err := l.pool.NewFetchCursor().Prefix(prefix).Map(func(key []byte, value []byte) error {
		var e Event
		if err := json.Unmarshal(value, &e); nil != err {
			return err
		}
		result = append(result, e)
		return nil
	})
	return result, err
}
