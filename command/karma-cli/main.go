// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/karmad/command/karma-cli/rpccalls"
)

const defaultConnect = "127.0.0.1:2130"

type metadata struct {
	connection rpccalls.Connection
	verbose    bool
	e          io.Writer
	w          io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		exitwithstatus.Exit(exitStatus(err))
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "karma-cli"
	app.Usage = "query and submit calls to a karmad node"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  defaultConnect,
			Usage:  " karmad client RPC `HOST:PORT`",
			EnvVar: "KARMA_CONNECT",
		},
		cli.BoolFlag{
			Name:  "tls, t",
			Usage: " use TLS for the connection",
		},
		cli.StringFlag{
			Name:  "fingerprint, f",
			Value: "",
			Usage: " expected server certificate SHA3 `HEX` (implies --tls)",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "info",
			Usage:     "display node status",
			ArgsUsage: " ",
			Action:    runInfo,
		},
		{
			Name:      "definitions",
			Usage:     "list traits and communities",
			ArgsUsage: " ",
			Action:    runDefinitions,
		},
		{
			Name:      "user",
			Usage:     "display a user by identity tag",
			ArgsUsage: "TAG\n   TAG is account:KEY | user:NAME | phone:+NUMBER | phone:HASH",
			Action:    runUser,
		},
		{
			Name:      "contacts",
			Usage:     "search users by user name prefix",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "prefix, p",
					Value: "",
					Usage: "*user name `PREFIX`",
				},
				cli.UintFlag{
					Name:  "community, m",
					Value: 0,
					Usage: " only members of community `ID`",
				},
				cli.StringFlag{
					Name:  "start, s",
					Value: "",
					Usage: " continue from user `NAME`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum results `COUNT`",
				},
			},
			Action: runContacts,
		},
		{
			Name:      "users",
			Usage:     "list all registered accounts",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "start, s",
					Value: "",
					Usage: " continue from account `KEY`",
				},
				cli.UintFlag{
					Name:  "community, m",
					Value: 0,
					Usage: " only members of community `ID`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum results `COUNT`",
				},
			},
			Action: runUsers,
		},
		{
			Name:      "transactions",
			Usage:     "list transactions of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "*account `KEY`",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " first sequence `NUMBER`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum results `COUNT`",
				},
			},
			Action: runTransactions,
		},
		{
			Name:      "transaction",
			Usage:     "display a transaction",
			ArgsUsage: "HASH",
			Action:    runTransaction,
		},
		{
			Name:      "leaderboard",
			Usage:     "display karma period standings",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "period, p",
					Value: "",
					Usage: " karma period `NUMBER` [default current]",
				},
			},
			Action: runLeaderboard,
		},
		{
			Name:      "events",
			Usage:     "list the events of a block",
			ArgsUsage: "BLOCK",
			Action:    runEvents,
		},
		{
			Name:      "submit",
			Usage:     "submit a call (testing and local chains only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "caller, a",
					Value: "",
					Usage: "*calling account `KEY`",
				},
				cli.StringFlag{
					Name:  "call, n",
					Value: "",
					Usage: "*call `NAME`",
				},
				cli.StringFlag{
					Name:  "parameters, p",
					Value: "{}",
					Usage: " call parameters `JSON`",
				},
			},
			Action: runSubmit,
		},
		{
			Name:      "version",
			Usage:     "display karma-cli version",
			ArgsUsage: " ",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		fingerprint := c.GlobalString("fingerprint")
		c.App.Metadata["config"] = &metadata{
			connection: rpccalls.Connection{
				Address:     c.GlobalString("connect"),
				TLS:         c.GlobalBool("tls") || "" != fingerprint,
				Fingerprint: fingerprint,
			},
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
