// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"

	"github.com/bitmark-inc/karmad/account"
	"github.com/bitmark-inc/karmad/rpc/node"
)

// Info - status of the connected node
func (c *Client) Info() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := c.call("Node.Info", &node.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Definitions - traits and communities
func (c *Client) Definitions() (*node.DefinitionsReply, error) {
	var reply node.DefinitionsReply
	if err := c.call("Node.Definitions", &node.DefinitionsArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Events - events raised in a block
func (c *Client) Events(block uint64) (*node.EventsReply, error) {
	arguments := node.EventsArguments{
		Block: block,
	}
	var reply node.EventsReply
	if err := c.call("Node.Events", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Submit - execute a call on a node that accepts submissions
func (c *Client) Submit(caller account.Key, call string, parameters string) (*node.SubmitReply, error) {
	if "" == parameters {
		parameters = "{}"
	}
	if !json.Valid([]byte(parameters)) {
		return nil, ErrInvalidParameters
	}

	arguments := node.SubmitArguments{
		Caller:     caller,
		Call:       call,
		Parameters: json.RawMessage(parameters),
	}
	var reply node.SubmitReply
	if err := c.call("Node.Submit", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
