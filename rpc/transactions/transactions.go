// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactions

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/karmad/account"
	"github.com/bitmark-inc/karmad/fault"
	"github.com/bitmark-inc/karmad/merkle"
	"github.com/bitmark-inc/karmad/rpc/code"
	"github.com/bitmark-inc/karmad/rpc/ratelimit"
	"github.com/bitmark-inc/karmad/runtime"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitTransactions   = 200
	rateBurstTransactions   = 100
	maximumTransactionsList = 100
)

// History - transaction queries of the engine
type History interface {
	Transactions(who account.Key, start uint64, count int) ([]*runtime.TransactionInfo, error)
	Transaction(hash merkle.Digest) (*runtime.TransactionInfo, error)
}

// Transactions - type for RPC calls
type Transactions struct {
	Log     *logger.L
	Limiter *rate.Limiter
	History History
}

// New - create the transactions service
func New(log *logger.L, history History) *Transactions {
	return &Transactions{
		Log:     log,
		Limiter: ratelimit.New(rateLimitTransactions, rateBurstTransactions),
		History: history,
	}
}

// ---

// ListArguments - page of an account's transactions
type ListArguments struct {
	Account account.Key `json:"account"`
	Start   uint64      `json:"start,string"`
	Count   int         `json:"count"`
}

// ListReply - transactions and the sequence to continue from
type ListReply struct {
	Transactions []*runtime.TransactionInfo `json:"transactions"`
	Next         uint64                     `json:"next,string"`
}

// List - transactions involving an account, oldest first
func (t *Transactions) List(arguments *ListArguments, reply *ListReply) error {
	if nil == arguments {
		return code.Wrap(fault.MissingParameters)
	}
	if err := ratelimit.LimitN(t.Limiter, arguments.Count, maximumTransactionsList); nil != err {
		return code.Wrap(err)
	}

	list, err := t.History.Transactions(arguments.Account, arguments.Start, arguments.Count)
	if nil != err {
		return code.Wrap(err)
	}
	reply.Transactions = list
	reply.Next = arguments.Start
	if 0 != len(list) {
		reply.Next = list[len(list)-1].Seq + 1
	}
	return nil
}

// ---

// GetArguments - transaction hash
type GetArguments struct {
	Hash merkle.Digest `json:"hash"`
}

// GetReply - the stored call
type GetReply struct {
	Transaction *runtime.TransactionInfo `json:"transaction"`
}

// Get - a transaction by its hash
func (t *Transactions) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return code.Wrap(err)
	}
	if nil == arguments {
		return code.Wrap(fault.MissingParameters)
	}

	tx, err := t.History.Transaction(arguments.Hash)
	if nil != err {
		return code.Wrap(err)
	}
	reply.Transaction = tx
	return nil
}
