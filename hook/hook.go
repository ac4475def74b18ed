// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hook

import (
	"github.com/bitmark-inc/karmad/account"
	"github.com/bitmark-inc/karmad/community"
	"github.com/bitmark-inc/karmad/identity"
)

// Appreciation - details of an applied appreciation
type Appreciation struct {
	Payer     account.Key
	Payee     account.Key
	Amount    uint64
	Community community.ID
	Trait     community.TraitID
	Referral  bool // a referral marker was consumed
}

// Observer - receiver of lifecycle notifications
type Observer interface {
	OnNewUser(s *Scope, verifier account.Key, user *identity.Identity) error
	OnUpdateUser(s *Scope, previous *identity.Identity, current *identity.Identity) error
	OnAppreciation(s *Scope, a Appreciation) error
	OnSetAdmin(s *Scope, caller account.Key, newAdmin account.Key, id community.ID) error
}

// Nop - embed to implement only some notifications
type Nop struct{}

// OnNewUser - does nothing
func (Nop) OnNewUser(*Scope, account.Key, *identity.Identity) error { return nil }

// OnUpdateUser - does nothing
func (Nop) OnUpdateUser(*Scope, *identity.Identity, *identity.Identity) error { return nil }

// OnAppreciation - does nothing
func (Nop) OnAppreciation(*Scope, Appreciation) error { return nil }

// OnSetAdmin - does nothing
func (Nop) OnSetAdmin(*Scope, account.Key, account.Key, community.ID) error { return nil }

// Dispatcher - fixed ordered list of observers
type Dispatcher struct {
	observers []Observer
}

// NewDispatcher - observers are called in the order given
func NewDispatcher(observers ...Observer) *Dispatcher {
	list := make([]Observer, len(observers))
	copy(list, observers)
	return &Dispatcher{
		observers: list,
	}
}

// OnNewUser - notify all observers, stop at the first failure
func (d *Dispatcher) OnNewUser(s *Scope, verifier account.Key, user *identity.Identity) error {
	for _, o := range d.observers {
		if err := o.OnNewUser(s, verifier, user); nil != err {
			return err
		}
	}
	return nil
}

// OnUpdateUser - notify all observers, stop at the first failure
func (d *Dispatcher) OnUpdateUser(s *Scope, previous *identity.Identity, current *identity.Identity) error {
	for _, o := range d.observers {
		if err := o.OnUpdateUser(s, previous, current); nil != err {
			return err
		}
	}
	return nil
}

// OnAppreciation - notify all observers, stop at the first failure
func (d *Dispatcher) OnAppreciation(s *Scope, a Appreciation) error {
	for _, o := range d.observers {
		if err := o.OnAppreciation(s, a); nil != err {
			return err
		}
	}
	return nil
}

// OnSetAdmin - notify all observers, stop at the first failure
func (d *Dispatcher) OnSetAdmin(s *Scope, caller account.Key, newAdmin account.Key, id community.ID) error {
	for _, o := range d.observers {
		if err := o.OnSetAdmin(s, caller, newAdmin, id); nil != err {
			return err
		}
	}
	return nil
}
