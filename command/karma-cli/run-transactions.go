// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/karmad/account"
)

func runTransactions(c *cli.Context) error {
	s := c.String("account")
	if "" == s {
		return fmt.Errorf("account is required")
	}
	who, err := account.KeyFromBase58(s)
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Transactions(who, c.Uint64("start"), c.Int("count"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runTransaction(c *cli.Context) error {
	if err := checkArgumentCount(c, 1); nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Transaction(c.Args().Get(0))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runLeaderboard(c *cli.Context) error {
	var period *uint64
	if s := c.String("period"); "" != s {
		n, err := parseUint64(s)
		if nil != err {
			return err
		}
		period = &n
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Leaderboard(period)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func parseUint64(s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if nil != err {
		return 0, fmt.Errorf("invalid number: %q", s)
	}
	return n, nil
}
