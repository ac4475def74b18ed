// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/karmad/account"
	"github.com/bitmark-inc/karmad/community"
	"github.com/bitmark-inc/karmad/identity"
	"github.com/bitmark-inc/karmad/rpc/user"
)

// UserInfo - fetch a single user by any identity tag
func (c *Client) UserInfo(tag identity.Tag) (*user.InfoReply, error) {
	arguments := user.InfoArguments{
		Identity: tag,
	}
	var reply user.InfoReply
	if err := c.call("User.Info", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ContactsData - request data for a contacts search
type ContactsData struct {
	Prefix    string
	Community community.ID
	Start     string
	Count     int
}

// Contacts - user name prefix search
func (c *Client) Contacts(data *ContactsData) (*user.ContactsReply, error) {
	arguments := user.ContactsArguments{
		Prefix:    data.Prefix,
		Community: data.Community,
		Start:     data.Start,
		Count:     data.Count,
	}
	var reply user.ContactsReply
	if err := c.call("User.Contacts", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// AllUsers - page through every registered account, or the members
// of one community
func (c *Client) AllUsers(id community.ID, start account.Key, count int) (*user.AllReply, error) {
	arguments := user.AllArguments{
		Community: id,
		Start:     start,
		Count:     count,
	}
	var reply user.AllReply
	if err := c.call("User.All", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
