// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/karmad/counter"
	"github.com/bitmark-inc/karmad/rpc/leaderboard"
	"github.com/bitmark-inc/karmad/rpc/node"
	"github.com/bitmark-inc/karmad/rpc/transactions"
	"github.com/bitmark-inc/karmad/rpc/user"
	"github.com/bitmark-inc/karmad/runtime"
	"github.com/bitmark-inc/logger"
)

// Create - an RPC server with all services registered
//
// producer is nil when the chain does not accept submitted calls
func Create(log *logger.L, version string, chainName string, rt *runtime.Runtime, producer *runtime.Producer, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	var submitter node.Submitter
	if nil != producer {
		submitter = producer
	}

	server := rpc.NewServer()

	_ = server.Register(user.New(log, rt))
	_ = server.Register(transactions.New(log, rt))
	_ = server.Register(leaderboard.New(log, rt))
	_ = server.Register(node.New(log, start, version, chainName, rt, submitter, rpcCount))

	return server
}
