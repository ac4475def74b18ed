// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hook_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/karmad/account"
	"github.com/bitmark-inc/karmad/community"
	"github.com/bitmark-inc/karmad/events"
	eventsMocks "github.com/bitmark-inc/karmad/events/mocks"
	"github.com/bitmark-inc/karmad/fault"
	"github.com/bitmark-inc/karmad/fixtures"
	"github.com/bitmark-inc/karmad/hook"
	"github.com/bitmark-inc/karmad/hook/mocks"
	"github.com/bitmark-inc/karmad/identity"
)

func TestDispatchOrder(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	first := mocks.NewMockObserver(ctl)
	second := mocks.NewMockObserver(ctl)

	s := hook.NewScope(nil, 1, 0, nil)
	user := &identity.Identity{Account: fixtures.Bob, UserName: "bob"}

	gomock.InOrder(
		first.EXPECT().OnNewUser(s, fixtures.Alice, user).Return(nil).Times(1),
		second.EXPECT().OnNewUser(s, fixtures.Alice, user).Return(nil).Times(1),
	)

	d := hook.NewDispatcher(first, second)
	err := d.OnNewUser(s, fixtures.Alice, user)
	assert.Nil(t, err, "dispatch error")
}

func TestDispatchStopsAtFirstFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	first := mocks.NewMockObserver(ctl)
	second := mocks.NewMockObserver(ctl)

	s := hook.NewScope(nil, 1, 0, nil)
	a := hook.Appreciation{Payer: fixtures.Alice, Payee: fixtures.Bob, Amount: 5}

	first.EXPECT().OnAppreciation(s, a).Return(fault.InsufficientBalance).Times(1)
	second.EXPECT().OnAppreciation(gomock.Any(), gomock.Any()).Times(0)

	d := hook.NewDispatcher(first, second)
	err := d.OnAppreciation(s, a)
	assert.Equal(t, fault.InsufficientBalance, err, "failure not propagated")
}

type adminCounter struct {
	hook.Nop
	n int
}

func (c *adminCounter) OnSetAdmin(*hook.Scope, account.Key, account.Key, community.ID) error {
	c.n += 1
	return nil
}

func TestNopDefaults(t *testing.T) {
	c := &adminCounter{}
	d := hook.NewDispatcher(c)
	s := hook.NewScope(nil, 1, 0, nil)

	assert.Nil(t, d.OnNewUser(s, fixtures.Alice, &identity.Identity{}), "nop new user failed")
	assert.Nil(t, d.OnUpdateUser(s, &identity.Identity{}, &identity.Identity{}), "nop update failed")
	assert.Nil(t, d.OnSetAdmin(s, fixtures.Alice, fixtures.Bob, 1), "set admin failed")
	assert.Equal(t, 1, c.n, "override not called")
}

func TestScopeEmitSequence(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	sink := eventsMocks.NewMockSink(ctl)
	s := hook.NewScope(nil, 12, 3, sink)

	gomock.InOrder(
		sink.EXPECT().Emit(nil, events.Event{Block: 12, Index: 3, Seq: 0, Kind: events.NewUser}).Return(nil),
		sink.EXPECT().Emit(nil, events.Event{Block: 12, Index: 3, Seq: 1, Kind: events.RewardPaid}).Return(nil),
	)

	assert.Nil(t, s.Emit(events.NewUser), "first emit failed")
	assert.Nil(t, s.Emit(events.RewardPaid), "second emit failed")
}
