// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package runtime

import (
	"github.com/bitmark-inc/karmad/community"
	"github.com/bitmark-inc/karmad/events"
	"github.com/bitmark-inc/karmad/fault"
	"github.com/bitmark-inc/karmad/genesis"
	"github.com/bitmark-inc/karmad/hook"
)

// GenesisApplied - the store already holds a chain
func (r *Runtime) GenesisApplied() bool {
	return r.globals.Has(genesisKey)
}

// ApplyGenesis - write the initial state in a single transaction
func (r *Runtime) ApplyGenesis(g *genesis.Genesis) error {
	r.Lock()
	defer r.Unlock()

	trx, err := r.store.Begin()
	if nil != err {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			trx.Abort()
		}
	}()

	if trx.Has(r.globals, genesisKey) {
		return fault.GenesisAlreadyApplied
	}

	s := hook.NewScope(trx, 0, 0, r.events)

	for _, t := range g.Traits {
		if err := r.registry.DefineTrait(trx, t); nil != err {
			return err
		}
	}
	for _, c := range g.Communities {
		if err := r.registry.Define(trx, c.Community); nil != err {
			return err
		}
	}
	for _, v := range g.Verifiers {
		trx.Put(r.globals, verifierKey(v), []byte{1})
	}

	// genesis users receive no signup reward
	for _, u := range g.Users {
		if err := r.identities.Register(trx, u); nil != err {
			return err
		}
		r.scores.Increment(trx, u.Account, community.NoCommunity, community.SignupTrait)
		err := s.Emit(events.NewUser,
			events.Attr("account", u.Account),
			events.Attr("userName", u.UserName),
		)
		if nil != err {
			return err
		}
	}

	for _, c := range g.Communities {
		for _, a := range c.Admins {
			if err := r.registry.SetRole(trx, a, c.ID, community.RoleAdmin); nil != err {
				return err
			}
		}
	}
	for _, b := range g.Balances {
		if err := r.ledger.Mint(trx, b.Account, b.Amount); nil != err {
			return err
		}
	}

	trx.PutN(r.globals, genesisKey, 1)
	if err := trx.Commit(); nil != err {
		return err
	}
	committed = true

	r.log.Infof("genesis: traits: %d  communities: %d  users: %d  verifiers: %d",
		len(g.Traits), len(g.Communities), len(g.Users), len(g.Verifiers))
	return nil
}
