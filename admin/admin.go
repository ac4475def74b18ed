// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package admin - granting the admin role of a community
package admin

import (
	"github.com/bitmark-inc/karmad/account"
	"github.com/bitmark-inc/karmad/community"
	"github.com/bitmark-inc/karmad/events"
	"github.com/bitmark-inc/karmad/fault"
	"github.com/bitmark-inc/karmad/hook"
	"github.com/bitmark-inc/karmad/identity"
	"github.com/bitmark-inc/logger"
)

// Transfer - admin role changes
type Transfer struct {
	log        *logger.L
	identities *identity.Resolver
	registry   *community.Registry
	hooks      *hook.Dispatcher
}

// New - create the admin transfer handler
func New(identities *identity.Resolver, registry *community.Registry, hooks *hook.Dispatcher) *Transfer {
	return &Transfer{
		log:        logger.New("admin"),
		identities: identities,
		registry:   registry,
		hooks:      hooks,
	}
}

// SetAdmin - an admin makes another identity an admin too
//
// existing admins keep their role
func (t *Transfer) SetAdmin(s *hook.Scope, caller account.Key, id community.ID, newAdmin identity.Tag) (account.Key, error) {
	trx := s.Trx

	if !t.registry.Exists(trx, id) || community.NoCommunity == id {
		return account.Key{}, fault.CommunityNotFound
	}
	if community.RoleAdmin != t.registry.RoleOf(trx, caller, id) {
		return account.Key{}, fault.NotEnoughPermission
	}
	target, ok := t.identities.Resolve(trx, newAdmin)
	if !ok {
		return account.Key{}, fault.NotFound
	}

	if err := t.registry.SetRole(trx, target.Account, id, community.RoleAdmin); nil != err {
		return account.Key{}, err
	}

	err := s.Emit(events.CommunityAdminAdded,
		events.Attr("community", id),
		events.Attr("caller", caller),
		events.Attr("admin", target.Account),
	)
	if nil != err {
		return account.Key{}, err
	}

	if err := t.hooks.OnSetAdmin(s, caller, target.Account, id); nil != err {
		return account.Key{}, err
	}

	t.log.Infof("community: %d  admin added: %s  by: %s", id, target.Account, caller)
	return target.Account, nil
}
