// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package user

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/karmad/account"
	"github.com/bitmark-inc/karmad/community"
	"github.com/bitmark-inc/karmad/fault"
	"github.com/bitmark-inc/karmad/identity"
	"github.com/bitmark-inc/karmad/rpc/code"
	"github.com/bitmark-inc/karmad/rpc/ratelimit"
	"github.com/bitmark-inc/karmad/runtime"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitUser   = 200
	rateBurstUser   = 100
	maximumUserList = 100
)

// Directory - identity queries of the engine
type Directory interface {
	UserInfo(identity.Tag) (*runtime.UserInfo, error)
	Contacts(prefix string, id community.ID, start string, count int) ([]*runtime.UserInfo, error)
	AllUsers(id community.ID, start account.Key, count int) ([]*runtime.UserInfo, error)
}

// User - type for RPC calls
type User struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Directory Directory
}

// New - create the user service
func New(log *logger.L, directory Directory) *User {
	return &User{
		Log:       log,
		Limiter:   ratelimit.New(rateLimitUser, rateBurstUser),
		Directory: directory,
	}
}

// ---

// InfoArguments - identity to look up
type InfoArguments struct {
	Identity identity.Tag `json:"identity"`
}

// InfoReply - result of a lookup
type InfoReply struct {
	User *runtime.UserInfo `json:"user"`
}

// Info - everything known about one identity
func (u *User) Info(arguments *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(u.Limiter); nil != err {
		return code.Wrap(err)
	}
	if nil == arguments || identity.NullTagType == arguments.Identity.Type {
		return code.Wrap(fault.InvalidIdentityTag)
	}

	info, err := u.Directory.UserInfo(arguments.Identity)
	if nil != err {
		return code.Wrap(err)
	}
	reply.User = info
	return nil
}

// ---

// ContactsArguments - user name prefix search
type ContactsArguments struct {
	Prefix    string       `json:"prefix"`
	Community community.ID `json:"community"`
	Start     string       `json:"start"`
	Count     int          `json:"count"`
}

// ContactsReply - matching users and where to continue
type ContactsReply struct {
	Users []*runtime.UserInfo `json:"users"`
	Next  string              `json:"next"`
}

// Contacts - users whose name starts with a prefix
func (u *User) Contacts(arguments *ContactsArguments, reply *ContactsReply) error {
	if nil == arguments {
		return code.Wrap(fault.MissingParameters)
	}
	if err := ratelimit.LimitN(u.Limiter, arguments.Count, maximumUserList); nil != err {
		return code.Wrap(err)
	}

	users, err := u.Directory.Contacts(arguments.Prefix, arguments.Community, arguments.Start, arguments.Count)
	if nil != err {
		return code.Wrap(err)
	}
	reply.Users = users
	if len(users) == arguments.Count {
		reply.Next = users[len(users)-1].UserName
	}
	return nil
}

// ---

// AllArguments - page of all users, or of the members of a community
type AllArguments struct {
	Community community.ID `json:"community"`
	Start     account.Key  `json:"start"`
	Count     int          `json:"count"`
}

// AllReply - users and the key to continue from
type AllReply struct {
	Users []*runtime.UserInfo `json:"users"`
	Next  *account.Key        `json:"next,omitempty"`
}

// All - users in account key order
func (u *User) All(arguments *AllArguments, reply *AllReply) error {
	if nil == arguments {
		return code.Wrap(fault.MissingParameters)
	}
	if err := ratelimit.LimitN(u.Limiter, arguments.Count, maximumUserList); nil != err {
		return code.Wrap(err)
	}

	users, err := u.Directory.AllUsers(arguments.Community, arguments.Start, arguments.Count)
	if nil != err {
		return code.Wrap(err)
	}
	reply.Users = users
	if len(users) == arguments.Count {
		if next, ok := successor(users[len(users)-1].Account); ok {
			reply.Next = &next
		}
	}
	return nil
}

// the smallest key after k, false if k is the last possible key
func successor(k account.Key) (account.Key, bool) {
	for i := len(k) - 1; i >= 0; i -= 1 {
		k[i] += 1
		if 0 != k[i] {
			return k, true
		}
	}
	return k, false
}
