// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package appreciation - value transfers that also award karma
package appreciation

import (
	"github.com/bitmark-inc/karmad/account"
	"github.com/bitmark-inc/karmad/community"
	"github.com/bitmark-inc/karmad/events"
	"github.com/bitmark-inc/karmad/fault"
	"github.com/bitmark-inc/karmad/hook"
	"github.com/bitmark-inc/karmad/identity"
	"github.com/bitmark-inc/karmad/ledger"
	"github.com/bitmark-inc/karmad/referral"
	"github.com/bitmark-inc/karmad/score"
	"github.com/bitmark-inc/logger"
)

// Request - an appreciation to apply
type Request struct {
	Payer     account.Key
	Payee     identity.Tag
	Amount    uint64
	Community community.ID
	Trait     community.TraitID
}

// Engine - applies appreciations
type Engine struct {
	log        *logger.L
	identities *identity.Resolver
	registry   *community.Registry
	scores     *score.Ledger
	referrals  *referral.Book
	ledger     ledger.Ledger
	hooks      *hook.Dispatcher
}

// New - create an appreciation engine
func New(identities *identity.Resolver, registry *community.Registry, scores *score.Ledger, referrals *referral.Book, l ledger.Ledger, hooks *hook.Dispatcher) *Engine {
	return &Engine{
		log:        logger.New("appreciation"),
		identities: identities,
		registry:   registry,
		scores:     scores,
		referrals:  referrals,
		ledger:     l,
		hooks:      hooks,
	}
}

// Appreciate - validate and apply an appreciation
//
// on error the caller must discard the scope's transaction
func (e *Engine) Appreciate(s *hook.Scope, req Request) (*hook.Appreciation, error) {
	trx := s.Trx

	payee, ok := e.identities.Resolve(trx, req.Payee)
	if !ok {
		return nil, fault.NotFound
	}
	if !e.identities.Exists(trx, req.Payer) {
		return nil, fault.NotFound
	}

	result := &hook.Appreciation{
		Payer:     req.Payer,
		Payee:     payee.Account,
		Amount:    req.Amount,
		Community: req.Community,
		Trait:     req.Trait,
	}

	if community.NoTrait != req.Trait {
		if err := e.score(s, req, payee, result); nil != err {
			return nil, err
		}
	}

	if err := e.ledger.Transfer(trx, req.Payer, payee.Account, req.Amount, true); nil != err {
		return nil, err
	}

	if err := e.hooks.OnAppreciation(s, *result); nil != err {
		return nil, err
	}

	err := s.Emit(events.Appreciation,
		events.Attr("payer", req.Payer),
		events.Attr("payee", payee.Account),
		events.Attr("amount", req.Amount),
		events.Attr("community", req.Community),
		events.Attr("trait", req.Trait),
		events.Attr("referral", result.Referral),
	)
	if nil != err {
		return nil, err
	}

	e.log.Debugf("%s → %s  amount: %d  community: %d  trait: %d", req.Payer, payee.Account, req.Amount, req.Community, req.Trait)
	return result, nil
}

// trait scoring and membership changes
func (e *Engine) score(s *hook.Scope, req Request, payee *identity.Identity, result *hook.Appreciation) error {
	trx := s.Trx

	if _, ok := e.registry.Trait(trx, req.Trait); !ok {
		return fault.CharTraitNotFound
	}

	// validate everything before the first increment
	join := false
	if community.NoCommunity != req.Community {
		c, ok := e.registry.Get(trx, req.Community)
		if !ok {
			return fault.CommunityNotFound
		}
		if !c.Allows(req.Trait) {
			return fault.CharTraitNotFound
		}

		payerRole := e.registry.RoleOf(trx, req.Payer, req.Community)
		payeeRole := e.registry.RoleOf(trx, payee.Account, req.Community)

		switch {
		case community.RoleNone == payerRole:
			return fault.NotMember
		case community.RoleNone != payeeRole:
		case community.RoleAdmin == payerRole:
			join = true
		case c.Closed:
			return fault.CommunityClosed
		default:
			join = true
		}
	}

	if e.referrals.Consume(trx, req.Payer, payee.PhoneHash) {
		result.Referral = true
		e.scores.Increment(trx, req.Payer, community.NoCommunity, community.AmbassadorTrait)
	}

	e.scores.Increment(trx, req.Payer, req.Community, community.SpenderTrait)
	e.scores.Increment(trx, payee.Account, req.Community, req.Trait)

	if join {
		e.scores.Increment(trx, req.Payer, req.Community, community.AmbassadorTrait)
		return e.registry.SetRole(trx, payee.Account, req.Community, community.RoleMember)
	}
	return nil
}
