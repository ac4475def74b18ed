// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/karmad/account"
	"github.com/bitmark-inc/karmad/community"
	"github.com/bitmark-inc/karmad/command/karma-cli/rpccalls"
	"github.com/bitmark-inc/karmad/identity"
)

func runUser(c *cli.Context) error {
	if err := checkArgumentCount(c, 1); nil != err {
		return err
	}
	tag, err := identity.ParseTag(c.Args().Get(0))
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.UserInfo(tag)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runContacts(c *cli.Context) error {
	prefix := c.String("prefix")
	if "" == prefix {
		return fmt.Errorf("prefix is required")
	}

	data := &rpccalls.ContactsData{
		Prefix:    prefix,
		Community: community.ID(c.Uint("community")),
		Start:     c.String("start"),
		Count:     c.Int("count"),
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Contacts(data)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runUsers(c *cli.Context) error {
	var start account.Key
	if s := c.String("start"); "" != s {
		k, err := account.KeyFromBase58(s)
		if nil != err {
			return err
		}
		start = k
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.AllUsers(community.ID(c.Uint("community")), start, c.Int("count"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}
