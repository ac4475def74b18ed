// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - account balances
//
// the reputation engine only needs a transfer primitive with
// keep-alive semantics and a way to mint rewards, any balance
// system providing the Ledger interface can be used instead
package ledger

import (
	"github.com/bitmark-inc/karmad/account"
	"github.com/bitmark-inc/karmad/fault"
	"github.com/bitmark-inc/karmad/storage"
	"github.com/bitmark-inc/logger"
)

// Ledger - balance transfer collaborator
type Ledger interface {
	Balance(storage.Reader, account.Key) uint64
	Transfer(trx storage.Transaction, from account.Key, to account.Key, amount uint64, keepAlive bool) error
	Mint(trx storage.Transaction, to account.Key, amount uint64) error
	Withdraw(trx storage.Transaction, from account.Key, amount uint64) error
}

// Balances - ledger kept in a storage pool
type Balances struct {
	log         *logger.L
	pool        *storage.PoolHandle
	existential uint64
}

// New - create a ledger
//
// existential is the minimum balance a keep-alive transfer must leave
func New(pool *storage.PoolHandle, existential uint64) *Balances {
	return &Balances{
		log:         logger.New("ledger"),
		pool:        pool,
		existential: existential,
	}
}

// Balance - current balance, zero for unknown accounts
func (b *Balances) Balance(r storage.Reader, who account.Key) uint64 {
	n, _ := r.GetN(b.pool, who.Bytes())
	return n
}

// Transfer - move amount between accounts
func (b *Balances) Transfer(trx storage.Transaction, from account.Key, to account.Key, amount uint64, keepAlive bool) error {
	fromBalance := b.Balance(trx, from)
	if fromBalance < amount {
		return fault.InsufficientBalance
	}
	remaining := fromBalance - amount
	if keepAlive && remaining < b.existential {
		return fault.InsufficientBalance
	}
	if from == to {
		return nil
	}

	toBalance := b.Balance(trx, to)
	if toBalance+amount < toBalance {
		return fault.InvalidAmount
	}

	trx.PutN(b.pool, from.Bytes(), remaining)
	trx.PutN(b.pool, to.Bytes(), toBalance+amount)

	b.log.Debugf("transfer: %s → %s  amount: %d", from, to, amount)
	return nil
}

// Mint - create new funds in an account
func (b *Balances) Mint(trx storage.Transaction, to account.Key, amount uint64) error {
	balance := b.Balance(trx, to)
	if balance+amount < balance {
		return fault.InvalidAmount
	}
	trx.PutN(b.pool, to.Bytes(), balance+amount)

	b.log.Debugf("mint: %s  amount: %d", to, amount)
	return nil
}

// Withdraw - remove funds from an account, e.g. to pay a fee
func (b *Balances) Withdraw(trx storage.Transaction, from account.Key, amount uint64) error {
	balance := b.Balance(trx, from)
	if balance < amount {
		return fault.InsufficientBalance
	}
	trx.PutN(b.pool, from.Bytes(), balance-amount)
	return nil
}
