// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runInfo(c *cli.Context) error {
	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Info()
	if nil != err {
		return err
	}

	result := struct {
		Connection string      `json:"_connection"`
		Info       interface{} `json:"info"`
	}{
		Connection: m.connection.Address,
		Info:       reply,
	}
	return printJson(m.w, result)
}

func runDefinitions(c *cli.Context) error {
	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Definitions()
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runEvents(c *cli.Context) error {
	if err := checkArgumentCount(c, 1); nil != err {
		return err
	}
	block, err := parseUint64(c.Args().Get(0))
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Events(block)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}
