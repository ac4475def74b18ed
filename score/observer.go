// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package score

import (
	"github.com/bitmark-inc/karmad/account"
	"github.com/bitmark-inc/karmad/community"
	"github.com/bitmark-inc/karmad/hook"
	"github.com/bitmark-inc/karmad/identity"
)

// SignupObserver - awards the signup trait to every new user
type SignupObserver struct {
	hook.Nop
	ledger *Ledger
}

// NewSignupObserver - create the observer
func NewSignupObserver(l *Ledger) *SignupObserver {
	return &SignupObserver{
		ledger: l,
	}
}

// OnNewUser - SignupTrait in the global scope += 1
func (o *SignupObserver) OnNewUser(s *hook.Scope, verifier account.Key, user *identity.Identity) error {
	o.ledger.Increment(s.Trx, user.Account, community.NoCommunity, community.SignupTrait)
	return nil
}
