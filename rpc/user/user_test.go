// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package user_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/karmad/account"
	"github.com/bitmark-inc/karmad/community"
	"github.com/bitmark-inc/karmad/fault"
	"github.com/bitmark-inc/karmad/fixtures"
	"github.com/bitmark-inc/karmad/identity"
	"github.com/bitmark-inc/karmad/rpc/code"
	"github.com/bitmark-inc/karmad/rpc/mocks"
	"github.com/bitmark-inc/karmad/rpc/user"
	"github.com/bitmark-inc/karmad/runtime"
	"github.com/bitmark-inc/logger"
)

func userInfo(who account.Key, userName string) *runtime.UserInfo {
	return &runtime.UserInfo{
		Identity: identity.Identity{
			Account:  who,
			UserName: userName,
		},
		Balance: 10,
	}
}

func TestUserInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockDirectory(ctl)
	u := user.New(logger.New(fixtures.LogCategory), d)

	bob := userInfo(fixtures.Bob, "bob")
	d.EXPECT().UserInfo(identity.UserNameTag("bob")).Return(bob, nil).Times(1)
	d.EXPECT().UserInfo(identity.UserNameTag("nobody")).Return(nil, fault.NotFound).Times(1)

	var reply user.InfoReply
	err := u.Info(&user.InfoArguments{Identity: identity.UserNameTag("bob")}, &reply)
	assert.Nil(t, err, "info error")
	assert.Equal(t, bob, reply.User, "wrong user")

	err = u.Info(&user.InfoArguments{Identity: identity.UserNameTag("nobody")}, &reply)
	assert.Equal(t, "404: account not found", err.Error(), "wrong error text")
	assert.Equal(t, code.NotFound, code.Parse(err.Error()).Code, "wrong error code")

	err = u.Info(&user.InfoArguments{}, &reply)
	assert.Equal(t, code.Invalid, code.Parse(err.Error()).Code, "empty identity accepted")
}

func TestUserContacts(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockDirectory(ctl)
	u := user.New(logger.New(fixtures.LogCategory), d)

	list := []*runtime.UserInfo{userInfo(fixtures.Bob, "bob"), userInfo(fixtures.Dave, "bobby")}
	d.EXPECT().Contacts("bo", community.ID(1), "", 2).Return(list, nil).Times(1)
	d.EXPECT().Contacts("bo", community.ID(1), "bobby", 2).Return(list[:0], nil).Times(1)

	var reply user.ContactsReply
	err := u.Contacts(&user.ContactsArguments{Prefix: "bo", Community: 1, Count: 2}, &reply)
	assert.Nil(t, err, "contacts error")
	assert.Equal(t, list, reply.Users, "wrong users")
	assert.Equal(t, "bobby", reply.Next, "wrong next")

	reply = user.ContactsReply{}
	err = u.Contacts(&user.ContactsArguments{Prefix: "bo", Community: 1, Start: "bobby", Count: 2}, &reply)
	assert.Nil(t, err, "contacts error")
	assert.Equal(t, "", reply.Next, "next set at end of list")

	err = u.Contacts(&user.ContactsArguments{Prefix: "bo", Count: 101}, &reply)
	assert.Equal(t, code.Invalid, code.Parse(err.Error()).Code, "count over maximum accepted")
}

func TestUserAll(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockDirectory(ctl)
	u := user.New(logger.New(fixtures.LogCategory), d)

	last := account.Key{}
	last[31] = 0xff
	list := []*runtime.UserInfo{userInfo(fixtures.Alice, "alice"), userInfo(last, "zed")}
	d.EXPECT().AllUsers(community.NoCommunity, account.Key{}, 2).Return(list, nil).Times(1)

	var reply user.AllReply
	err := u.All(&user.AllArguments{Count: 2}, &reply)
	assert.Nil(t, err, "all error")
	assert.Equal(t, 2, len(reply.Users), "wrong user count")

	expected := account.Key{}
	expected[30] = 0x01
	assert.Equal(t, &expected, reply.Next, "wrong next key")
}

func TestUserAllCommunity(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockDirectory(ctl)
	u := user.New(logger.New(fixtures.LogCategory), d)

	members := []*runtime.UserInfo{userInfo(fixtures.Carol, "carol")}
	d.EXPECT().AllUsers(community.ID(1), account.Key{}, 5).Return(members, nil).Times(1)
	d.EXPECT().AllUsers(community.ID(99), account.Key{}, 5).Return(nil, fault.CommunityNotFound).Times(1)

	var reply user.AllReply
	err := u.All(&user.AllArguments{Community: 1, Count: 5}, &reply)
	assert.Nil(t, err, "all error")
	assert.Equal(t, members, reply.Users, "wrong members")
	assert.Nil(t, reply.Next, "short page has a next key")

	err = u.All(&user.AllArguments{Community: 99, Count: 5}, &user.AllReply{})
	assert.Equal(t, "404: "+fault.CommunityNotFound.Error(), err.Error(), "unknown community accepted")
}
