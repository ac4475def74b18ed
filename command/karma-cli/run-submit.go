// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/karmad/account"
)

func runSubmit(c *cli.Context) error {
	s := c.String("caller")
	if "" == s {
		return fmt.Errorf("caller is required")
	}
	caller, err := account.KeyFromBase58(s)
	if nil != err {
		return err
	}

	call := c.String("call")
	if "" == call {
		return fmt.Errorf("call is required")
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Submit(caller, call, c.String("parameters"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}
