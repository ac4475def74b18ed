// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/karmad/community"
	"github.com/bitmark-inc/karmad/counter"
	"github.com/bitmark-inc/karmad/fault"
	"github.com/bitmark-inc/karmad/fixtures"
	"github.com/bitmark-inc/karmad/merkle"
	"github.com/bitmark-inc/karmad/rpc/code"
	"github.com/bitmark-inc/karmad/rpc/mocks"
	"github.com/bitmark-inc/karmad/rpc/node"
	"github.com/bitmark-inc/karmad/runtime"
	"github.com/bitmark-inc/karmad/transactionrecord"
	"github.com/bitmark-inc/logger"
)

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := mocks.NewMockChain(ctl)
	s := mocks.NewMockSubmitter(ctl)

	c.EXPECT().Height().Return(uint64(9)).Times(2)
	c.EXPECT().Period(uint64(10)).Return(uint64(1)).Times(2)
	c.EXPECT().Configuration().Return(runtime.Configuration{Fee: 3}).Times(2)
	s.EXPECT().Block().Return(uint64(10)).Times(1)

	var count counter.Counter
	count.Acquire(10)

	n := node.New(logger.New(fixtures.LogCategory), time.Now(), "v1", "local", c, s, &count)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "info error")
	assert.Equal(t, "local", reply.Chain, "wrong chain")
	assert.Equal(t, "v1", reply.Version, "wrong version")
	assert.Equal(t, uint64(9), reply.Height, "wrong height")
	assert.Equal(t, uint64(1), reply.Period, "wrong period")
	assert.Equal(t, uint64(3), reply.Fee, "wrong fee")
	assert.Equal(t, uint64(1), reply.RPCs, "wrong connection count")
	assert.True(t, reply.Submit, "submit not reported")
	assert.Equal(t, uint64(10), reply.OpenBlock, "wrong open block")

	readOnly := node.New(logger.New(fixtures.LogCategory), time.Now(), "v1", "bitmark", c, nil, nil)
	reply = node.InfoReply{}
	err = readOnly.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "info error")
	assert.False(t, reply.Submit, "submit reported on read only node")
	assert.Equal(t, uint64(0), reply.OpenBlock, "open block on read only node")
}

func TestNodeDefinitions(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := mocks.NewMockChain(ctl)
	traits := []community.Trait{{ID: 4, Name: "Helpful", Emoji: "🤗"}}
	communities := []community.Community{{ID: 1, Name: "Grateful Giraffes"}}
	c.EXPECT().Traits().Return(traits, nil).Times(1)
	c.EXPECT().Communities().Return(communities, nil).Times(1)

	n := node.New(logger.New(fixtures.LogCategory), time.Now(), "v1", "local", c, nil, nil)

	var reply node.DefinitionsReply
	err := n.Definitions(&node.DefinitionsArguments{}, &reply)
	assert.Nil(t, err, "definitions error")
	assert.Equal(t, traits, reply.Traits, "wrong traits")
	assert.Equal(t, communities, reply.Communities, "wrong communities")
}

func TestNodeSubmit(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := mocks.NewMockChain(ctl)
	s := mocks.NewMockSubmitter(ctl)

	receipt := &runtime.Receipt{
		Hash:  merkle.NewDigest([]byte("call")),
		Nonce: 1,
		Fee:   1,
	}
	s.EXPECT().Submit(fixtures.Bob, &transactionrecord.DeleteUser{}).Return(receipt, nil).Times(1)
	s.EXPECT().Submit(fixtures.Carol, &transactionrecord.DeleteUser{}).Return(nil, fault.InsufficientBalance).Times(1)

	n := node.New(logger.New(fixtures.LogCategory), time.Now(), "v1", "local", c, s, nil)

	var reply node.SubmitReply
	err := n.Submit(&node.SubmitArguments{Caller: fixtures.Bob, Call: "deleteUser"}, &reply)
	assert.Nil(t, err, "submit error")
	assert.Equal(t, receipt, reply.Receipt, "wrong receipt")

	err = n.Submit(&node.SubmitArguments{Caller: fixtures.Carol, Call: "deleteUser"}, &reply)
	assert.Equal(t, code.Balance, code.Parse(err.Error()).Code, "wrong error code")

	err = n.Submit(&node.SubmitArguments{Caller: fixtures.Bob, Call: "mint"}, &reply)
	assert.Equal(t, code.Invalid, code.Parse(err.Error()).Code, "unknown call accepted")

	bad := json.RawMessage(`{"phoneHash": 12}`)
	err = n.Submit(&node.SubmitArguments{Caller: fixtures.Bob, Call: "invite", Parameters: bad}, &reply)
	assert.Equal(t, code.Invalid, code.Parse(err.Error()).Code, "bad parameters accepted")

	err = n.Submit(&node.SubmitArguments{Call: "deleteUser"}, &reply)
	assert.Equal(t, code.Invalid, code.Parse(err.Error()).Code, "missing caller accepted")
}

func TestNodeSubmitDisabled(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := mocks.NewMockChain(ctl)
	n := node.New(logger.New(fixtures.LogCategory), time.Now(), "v1", "bitmark", c, nil, nil)

	var reply node.SubmitReply
	err := n.Submit(&node.SubmitArguments{Caller: fixtures.Bob, Call: "deleteUser"}, &reply)
	assert.Equal(t, fault.SubmitDisabled.Error(), code.Parse(err.Error()).Message, "wrong error")
}
