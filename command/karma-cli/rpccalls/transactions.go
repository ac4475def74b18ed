// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/karmad/account"
	"github.com/bitmark-inc/karmad/merkle"
	"github.com/bitmark-inc/karmad/rpc/transactions"
)

// Transactions - history of an account starting from a sequence number
func (c *Client) Transactions(who account.Key, start uint64, count int) (*transactions.ListReply, error) {
	arguments := transactions.ListArguments{
		Account: who,
		Start:   start,
		Count:   count,
	}
	var reply transactions.ListReply
	if err := c.call("Transactions.List", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Transaction - a single transaction by hash
func (c *Client) Transaction(hash string) (*transactions.GetReply, error) {
	var digest merkle.Digest
	if err := digest.UnmarshalText([]byte(hash)); nil != err {
		return nil, err
	}

	arguments := transactions.GetArguments{
		Hash: digest,
	}
	var reply transactions.GetReply
	if err := c.call("Transactions.Get", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
