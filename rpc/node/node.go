// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"encoding/json"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/karmad/account"
	"github.com/bitmark-inc/karmad/community"
	"github.com/bitmark-inc/karmad/counter"
	"github.com/bitmark-inc/karmad/events"
	"github.com/bitmark-inc/karmad/fault"
	"github.com/bitmark-inc/karmad/rpc/code"
	"github.com/bitmark-inc/karmad/rpc/ratelimit"
	"github.com/bitmark-inc/karmad/runtime"
	"github.com/bitmark-inc/karmad/transactionrecord"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitNode   = 200
	rateBurstNode   = 100
	rateLimitSubmit = 20
	rateBurstSubmit = 10
)

// Chain - engine state reported by the node
type Chain interface {
	Height() uint64
	Period(block uint64) uint64
	Configuration() runtime.Configuration
	Traits() ([]community.Trait, error)
	Communities() ([]community.Community, error)
	Events(block uint64) ([]events.Event, error)
}

// Submitter - places calls in the open block
type Submitter interface {
	Block() uint64
	Submit(caller account.Key, call transactionrecord.Transaction) (*runtime.Receipt, error)
}

// Node - type for RPC calls
type Node struct {
	Log           *logger.L
	Limiter       *rate.Limiter
	SubmitLimiter *rate.Limiter
	Start         time.Time
	Version       string
	ChainName     string
	Chain         Chain
	Submitter     Submitter
	counter       *counter.Counter
}

// New - create the node service
//
// submitter is nil on chains that take no calls over RPC
func New(log *logger.L, start time.Time, version string, chainName string, chain Chain, submitter Submitter, count *counter.Counter) *Node {
	return &Node{
		Log:           log,
		Limiter:       ratelimit.New(rateLimitNode, rateBurstNode),
		SubmitLimiter: ratelimit.New(rateLimitSubmit, rateBurstSubmit),
		Start:         start,
		Version:       version,
		ChainName:     chainName,
		Chain:         chain,
		Submitter:     submitter,
		counter:       count,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain     string `json:"chain"`
	Version   string `json:"version"`
	Uptime    string `json:"uptime"`
	Height    uint64 `json:"height,string"`
	Period    uint64 `json:"period,string"`
	Fee       uint64 `json:"fee,string"`
	RPCs      uint64 `json:"rpcs"`
	Submit    bool   `json:"submit"`
	OpenBlock uint64 `json:"openBlock,string,omitempty"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return code.Wrap(err)
	}

	height := node.Chain.Height()
	reply.Chain = node.ChainName
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.Height = height
	reply.Period = node.Chain.Period(height + 1)
	reply.Fee = node.Chain.Configuration().Fee
	if nil != node.counter {
		reply.RPCs = node.counter.Uint64()
	}
	if nil != node.Submitter {
		reply.Submit = true
		reply.OpenBlock = node.Submitter.Block()
	}
	return nil
}

// ---

// DefinitionsArguments - empty arguments
type DefinitionsArguments struct{}

// DefinitionsReply - char traits and communities
type DefinitionsReply struct {
	Traits      []community.Trait     `json:"traits"`
	Communities []community.Community `json:"communities"`
}

// Definitions - the char traits and communities of the chain
func (node *Node) Definitions(_ *DefinitionsArguments, reply *DefinitionsReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return code.Wrap(err)
	}

	traits, err := node.Chain.Traits()
	if nil != err {
		return code.Wrap(err)
	}
	communities, err := node.Chain.Communities()
	if nil != err {
		return code.Wrap(err)
	}
	reply.Traits = traits
	reply.Communities = communities
	return nil
}

// ---

// EventsArguments - block to read
type EventsArguments struct {
	Block uint64 `json:"block,string"`
}

// EventsReply - events of the block in order
type EventsReply struct {
	Events []events.Event `json:"events"`
}

// Events - events raised in a block
func (node *Node) Events(arguments *EventsArguments, reply *EventsReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return code.Wrap(err)
	}
	if nil == arguments {
		return code.Wrap(fault.MissingParameters)
	}

	list, err := node.Chain.Events(arguments.Block)
	if nil != err {
		return code.Wrap(err)
	}
	reply.Events = list
	return nil
}

// ---

// SubmitArguments - a named call with its JSON parameters
type SubmitArguments struct {
	Caller     account.Key     `json:"caller"`
	Call       string          `json:"call"`
	Parameters json.RawMessage `json:"parameters"`
}

// SubmitReply - receipt of the executed call
type SubmitReply struct {
	Receipt *runtime.Receipt `json:"receipt"`
}

// Submit - execute a call, only on testing and local chains
func (node *Node) Submit(arguments *SubmitArguments, reply *SubmitReply) error {
	if nil == node.Submitter {
		return code.Wrap(fault.SubmitDisabled)
	}
	if err := ratelimit.Limit(node.SubmitLimiter); nil != err {
		return code.Wrap(err)
	}
	if nil == arguments || arguments.Caller.IsZero() {
		return code.Wrap(fault.MissingParameters)
	}

	call, err := transactionrecord.New(arguments.Call)
	if nil != err {
		return code.Wrap(err)
	}
	if 0 != len(arguments.Parameters) {
		if err := json.Unmarshal(arguments.Parameters, call); nil != err {
			node.Log.Debugf("submit: %s  decode error: %s", arguments.Call, err)
			return code.Wrap(fault.InvalidCall)
		}
	}

	receipt, err := node.Submitter.Submit(arguments.Caller, call)
	if nil != err {
		return code.Wrap(err)
	}
	node.Log.Infof("submit: %s from: %s  hash: %s", arguments.Call, arguments.Caller, receipt.Hash)
	reply.Receipt = receipt
	return nil
}
