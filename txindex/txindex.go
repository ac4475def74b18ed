// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package txindex - where each transaction was executed
//
// the hash index is global and permanent, the account index is an
// append-only per account sequence removed with the account
package txindex

import (
	"encoding/binary"

	"github.com/bitmark-inc/karmad/account"
	"github.com/bitmark-inc/karmad/fault"
	"github.com/bitmark-inc/karmad/merkle"
	"github.com/bitmark-inc/karmad/storage"
	"github.com/bitmark-inc/logger"
)

// Position - block number and position of a transaction in the block
type Position struct {
	Block uint64 `json:"block,string"`
	Index uint32 `json:"index"`
}

// Entry - one item of an account's transaction list
type Entry struct {
	Position
	Seq  uint64        `json:"seq"`
	Hash merkle.Digest `json:"hash"`
}

// Record - a transaction found by hash
type Record struct {
	Position
	Hash   merkle.Digest `json:"hash"`
	Packed []byte        `json:"-"`
}

// Index - transaction indices
type Index struct {
	log      *logger.L
	counts   *storage.PoolHandle // account → next sequence
	accounts *storage.PoolHandle // account ⧺ sequence → block ⧺ index ⧺ hash
	hashes   *storage.PoolHandle // hash → block ⧺ index ⧺ packed call
}

// New - create the transaction index
func New(pools *storage.Pools) *Index {
	return &Index{
		log:      logger.New("txindex"),
		counts:   pools.AccountTxCount,
		accounts: pools.AccountTxIndex,
		hashes:   pools.Transactions,
	}
}

const positionLength = 12

// Bytes - fixed width big-endian form, sorts in chain order
func (p Position) Bytes() []byte {
	buffer := make([]byte, positionLength)
	binary.BigEndian.PutUint64(buffer[:8], p.Block)
	binary.BigEndian.PutUint32(buffer[8:], p.Index)
	return buffer
}

// PositionFromBytes - decode the fixed width form
func PositionFromBytes(buffer []byte) (Position, error) {
	if len(buffer) < positionLength {
		return Position{}, fault.InvalidCount
	}
	return Position{
		Block: binary.BigEndian.Uint64(buffer[:8]),
		Index: binary.BigEndian.Uint32(buffer[8:positionLength]),
	}, nil
}

// Before - position comes earlier in the chain
func (p Position) Before(other Position) bool {
	if p.Block != other.Block {
		return p.Block < other.Block
	}
	return p.Index < other.Index
}

// IndexByAccount - append a transaction to an account's list
func (x *Index) IndexByAccount(trx storage.Transaction, who account.Key, hash merkle.Digest, p Position) {
	seq, _ := trx.GetN(x.counts, who.Bytes())
	trx.PutN(x.counts, who.Bytes(), seq+1)

	key := make([]byte, account.KeyLength+8)
	copy(key, who[:])
	binary.BigEndian.PutUint64(key[account.KeyLength:], seq)

	trx.Put(x.accounts, key, append(p.Bytes(), hash[:]...))
}

// IndexByHash - record the position of a transaction unless already known
//
// returns false if the hash was already indexed
func (x *Index) IndexByHash(trx storage.Transaction, hash merkle.Digest, p Position, packed []byte) bool {
	if trx.Has(x.hashes, hash[:]) {
		x.log.Warnf("hash: %s already indexed", hash)
		return false
	}
	trx.Put(x.hashes, hash[:], append(p.Bytes(), packed...))
	return true
}

// LookupByHash - position and packed call of a transaction
func (x *Index) LookupByHash(r storage.Reader, hash merkle.Digest) (*Record, bool) {
	buffer := r.Get(x.hashes, hash[:])
	if nil == buffer {
		return nil, false
	}
	p, err := PositionFromBytes(buffer)
	if nil != err {
		logger.Panicf("txindex: corrupt record for: %s", hash)
	}
	return &Record{
		Position: p,
		Hash:     hash,
		Packed:   buffer[positionLength:],
	}, true
}

// LookupByAccount - committed transactions of an account in execution order
//
// start is the sequence number to begin from
func (x *Index) LookupByAccount(who account.Key, start uint64, count int) ([]Entry, error) {
	seek := make([]byte, account.KeyLength+8)
	copy(seek, who[:])
	binary.BigEndian.PutUint64(seek[account.KeyLength:], start)

	elements, err := x.accounts.NewFetchCursor().Prefix(who.Bytes()).Seek(seek).Fetch(count)
	if nil != err {
		return nil, err
	}

	result := make([]Entry, 0, len(elements))
	for _, e := range elements {
		p, err := PositionFromBytes(e.Value)
		if nil != err {
			return nil, err
		}
		var hash merkle.Digest
		if err := merkle.DigestFromBytes(&hash, e.Value[positionLength:]); nil != err {
			return nil, err
		}
		result = append(result, Entry{
			Position: p,
			Seq:      binary.BigEndian.Uint64(e.Key[account.KeyLength:]),
			Hash:     hash,
		})
	}
	return result, nil
}

// Count - number of transactions ever indexed for an account
func (x *Index) Count(r storage.Reader, who account.Key) uint64 {
	n, _ := r.GetN(x.counts, who.Bytes())
	return n
}

// RemoveAccount - drop the account list, hash entries are kept
func (x *Index) RemoveAccount(trx storage.Transaction, who account.Key) error {
	err := x.accounts.NewFetchCursor().Prefix(who.Bytes()).Map(func(key []byte, value []byte) error {
		trx.Delete(x.accounts, key)
		return nil
	})
	if nil != err {
		return err
	}
	trx.Delete(x.counts, who.Bytes())
	return nil
}
