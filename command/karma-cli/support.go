// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/karmad/command/karma-cli/rpccalls"
	"github.com/bitmark-inc/karmad/rpc/code"
)

// exit status per server error class
const (
	exitFailure    = 1
	exitInvalid    = 2
	exitBalance    = 3
	exitPermission = 4
	exitNotFound   = 5
	exitExists     = 6
	exitLimited    = 7
)

func exitStatus(err error) int {
	e, ok := err.(*code.Error)
	if !ok {
		return exitFailure
	}
	switch e.Code {
	case code.Invalid:
		return exitInvalid
	case code.Balance:
		return exitBalance
	case code.Permission:
		return exitPermission
	case code.NotFound:
		return exitNotFound
	case code.Exists:
		return exitExists
	case code.Limited:
		return exitLimited
	default:
		return exitFailure
	}
}

func printJson(handle io.Writer, message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}
	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// connect - open a client from the global options
func connect(c *cli.Context) (*metadata, *rpccalls.Client, error) {
	m := c.App.Metadata["config"].(*metadata)

	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s  tls: %t\n", m.connection.Address, m.connection.TLS)
	}

	client, err := rpccalls.NewClient(m.connection, m.verbose, m.e)
	if nil != err {
		return nil, nil, err
	}
	return m, client, nil
}

func checkArgumentCount(c *cli.Context, n int) error {
	if n != c.NArg() {
		return fmt.Errorf("expected %d argument(s), got %d", n, c.NArg())
	}
	return nil
}
