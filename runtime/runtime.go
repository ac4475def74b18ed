// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package runtime - executes calls against the karma state
//
// each top-level call runs in exactly one storage transaction: either
// every write of the call (fee, nonce, state, indices, events) is
// committed or none is
package runtime

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/karmad/account"
	"github.com/bitmark-inc/karmad/admin"
	"github.com/bitmark-inc/karmad/appreciation"
	"github.com/bitmark-inc/karmad/community"
	"github.com/bitmark-inc/karmad/events"
	"github.com/bitmark-inc/karmad/fault"
	"github.com/bitmark-inc/karmad/hook"
	"github.com/bitmark-inc/karmad/identity"
	"github.com/bitmark-inc/karmad/ledger"
	"github.com/bitmark-inc/karmad/merkle"
	"github.com/bitmark-inc/karmad/referral"
	"github.com/bitmark-inc/karmad/reward"
	"github.com/bitmark-inc/karmad/score"
	"github.com/bitmark-inc/karmad/storage"
	"github.com/bitmark-inc/karmad/transactionrecord"
	"github.com/bitmark-inc/karmad/txindex"
	"github.com/bitmark-inc/logger"
)

// Configuration - economic parameters of a chain
type Configuration struct {
	Fee                uint64            `gluamapper:"fee" json:"fee"`
	ExistentialBalance uint64            `gluamapper:"existential_balance" json:"existential_balance"`
	Rewards            reward.Parameters `gluamapper:"rewards" json:"rewards"`
}

// Context - who submitted a call and where it sits in the chain
//
// the caller has already been authenticated
type Context struct {
	Caller account.Key
	Block  uint64
	Index  uint32
}

// Receipt - result of an executed call
type Receipt struct {
	Hash       merkle.Digest    `json:"hash"`
	Position   txindex.Position `json:"position"`
	Nonce      uint64           `json:"nonce"`
	Fee        uint64           `json:"fee"`
	Subsidised bool             `json:"subsidised"`
}

// keys in the globals pool
var (
	genesisKey      = []byte("genesis")
	heightKey       = []byte("height")
	nextPositionKey = []byte("next-position")
	verifierPrefix  = []byte("verifier:")
)

// events raised at the end of a block sort after every call of the block
const endBlockIndex = ^uint32(0)

// Runtime - the engine and all its components
type Runtime struct {
	sync.Mutex

	log    *logger.L
	store  *storage.Store
	config Configuration

	nonces  *storage.PoolHandle
	globals *storage.PoolHandle

	identities    *identity.Resolver
	registry      *community.Registry
	scores        *score.Ledger
	referrals     *referral.Book
	index         *txindex.Index
	events        *events.Log
	ledger        *ledger.Balances
	rewards       *reward.Allocator
	hooks         *hook.Dispatcher
	appreciations *appreciation.Engine
	admins        *admin.Transfer
}

// New - build the engine over an open store
func New(store *storage.Store, config Configuration) (*Runtime, error) {
	pools := &store.Pool

	identities := identity.New(pools)
	registry := community.New(pools)
	scores := score.New(pools, registry)
	referrals := referral.New(pools)
	balances := ledger.New(pools.Balances, config.ExistentialBalance)

	rewards, err := reward.New(pools, config.Rewards, balances, scores, identities)
	if nil != err {
		return nil, err
	}

	// signup score must exist before the signup reward is paid
	hooks := hook.NewDispatcher(
		score.NewSignupObserver(scores),
		rewards,
	)

	r := &Runtime{
		log:           logger.New("runtime"),
		store:         store,
		config:        config,
		nonces:        pools.Nonces,
		globals:       pools.Globals,
		identities:    identities,
		registry:      registry,
		scores:        scores,
		referrals:     referrals,
		index:         txindex.New(pools),
		events:        events.New(pools.Events),
		ledger:        balances,
		rewards:       rewards,
		hooks:         hooks,
		appreciations: appreciation.New(identities, registry, scores, referrals, balances, hooks),
		admins:        admin.New(identities, registry, hooks),
	}
	return r, nil
}

// Configuration - parameters the engine was built with
func (r *Runtime) Configuration() Configuration {
	return r.config
}

// transaction hash covers the call and its position
func transactionHash(ctx Context, packed transactionrecord.Packed) merkle.Digest {
	buffer := make([]byte, 0, len(packed)+12+account.KeyLength)
	buffer = append(buffer, packed...)
	position := make([]byte, 12)
	binary.BigEndian.PutUint64(position, ctx.Block)
	binary.BigEndian.PutUint32(position[8:], ctx.Index)
	buffer = append(buffer, position...)
	buffer = append(buffer, ctx.Caller[:]...)
	return merkle.NewDigest(buffer)
}

// Execute - run one call as a single commit unit
func (r *Runtime) Execute(ctx Context, call transactionrecord.Transaction) (*Receipt, error) {
	r.Lock()
	defer r.Unlock()

	packed, err := call.Pack()
	if nil != err {
		return nil, err
	}

	trx, err := r.store.Begin()
	if nil != err {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			trx.Abort()
		}
	}()

	position := txindex.Position{
		Block: ctx.Block,
		Index: ctx.Index,
	}
	if endBlockIndex == ctx.Index || position.Before(r.openPosition(trx)) {
		return nil, fault.PositionAlreadyUsed
	}
	next := txindex.Position{
		Block: ctx.Block,
		Index: ctx.Index + 1,
	}
	trx.Put(r.globals, nextPositionKey, next.Bytes())

	s := hook.NewScope(trx, ctx.Block, ctx.Index, r.events)
	receipt := &Receipt{
		Hash:     transactionHash(ctx, packed),
		Position: position,
	}

	nonce, _ := trx.GetN(r.nonces, ctx.Caller.Bytes())
	receipt.Nonce = nonce + 1
	trx.PutN(r.nonces, ctx.Caller.Bytes(), receipt.Nonce)

	if err := r.chargeFee(s, ctx.Caller, receipt); nil != err {
		return nil, err
	}

	involved, err := r.dispatch(s, ctx.Caller, call)
	if nil != err {
		r.log.Debugf("%s from: %s  error: %s", transactionrecord.Name(call), ctx.Caller, err)
		return nil, err
	}

	detail := make([]byte, 0, account.KeyLength+len(packed))
	detail = append(detail, ctx.Caller[:]...)
	detail = append(detail, packed...)
	if !r.index.IndexByHash(trx, receipt.Hash, position, detail) {
		return nil, fault.DuplicateTransaction
	}

	seen := make(map[account.Key]struct{})
	for _, who := range involved {
		if _, ok := seen[who]; ok {
			continue
		}
		seen[who] = struct{}{}
		if r.identities.Exists(trx, who) {
			r.index.IndexByAccount(trx, who, receipt.Hash, position)
		}
	}

	if err := trx.Commit(); nil != err {
		return nil, err
	}
	committed = true

	r.log.Infof("%d/%d: %s from: %s  hash: %s", ctx.Block, ctx.Index, transactionrecord.Name(call), ctx.Caller, receipt.Hash)
	return receipt, nil
}

// registered callers may have the fee covered by the subsidy budget
func (r *Runtime) chargeFee(s *hook.Scope, caller account.Key, receipt *Receipt) error {
	fee := r.config.Fee
	if 0 == fee {
		return nil
	}
	receipt.Fee = fee

	if r.identities.Exists(s.Trx, caller) {
		subsidised, err := r.rewards.SubsidizeTxFee(s, caller, fee)
		if nil != err {
			return err
		}
		if subsidised {
			receipt.Subsidised = true
			return nil
		}
	}
	return r.ledger.Withdraw(s.Trx, caller, fee)
}

// EndBlock - close a block, paying the karma round of a period that
// has just ended
func (r *Runtime) EndBlock(block uint64) error {
	r.Lock()
	defer r.Unlock()

	trx, err := r.store.Begin()
	if nil != err {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			trx.Abort()
		}
	}()

	// block is the last one of its period
	if 0 == (block+1)%r.config.Rewards.KarmaPeriodBlocks {
		s := hook.NewScope(trx, block, endBlockIndex, r.events)
		if _, err := r.rewards.RunKarmaRound(s, r.rewards.Period(block)); nil != err {
			return err
		}
	}
	trx.PutN(r.globals, heightKey, block)

	if err := trx.Commit(); nil != err {
		return err
	}
	committed = true
	return nil
}

// Height - last completed block
func (r *Runtime) Height() uint64 {
	height, _ := r.globals.GetN(heightKey)
	return height
}

// OpenPosition - the earliest position a call may still take
//
// a block with executed calls that is not yet sealed continues after
// its last call, otherwise the block after the height opens at index 0
func (r *Runtime) OpenPosition() txindex.Position {
	r.Lock()
	defer r.Unlock()
	return r.openPosition(r.store.Committed())
}

func (r *Runtime) openPosition(reader storage.Reader) txindex.Position {
	height, _ := reader.GetN(r.globals, heightKey)
	open := txindex.Position{
		Block: height + 1,
	}

	buffer := reader.Get(r.globals, nextPositionKey)
	if nil == buffer {
		return open
	}
	next, err := txindex.PositionFromBytes(buffer)
	if nil != err {
		logger.Panicf("runtime: corrupt next position: %x", buffer)
	}
	if next.Block > height {
		return next
	}
	return open
}

func verifierKey(who account.Key) []byte {
	return append(append([]byte{}, verifierPrefix...), who[:]...)
}

// IsVerifier - account may register users
func (r *Runtime) IsVerifier(reader storage.Reader, who account.Key) bool {
	return reader.Has(r.globals, verifierKey(who))
}
