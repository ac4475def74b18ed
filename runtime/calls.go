// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package runtime

import (
	"github.com/bitmark-inc/karmad/account"
	"github.com/bitmark-inc/karmad/appreciation"
	"github.com/bitmark-inc/karmad/events"
	"github.com/bitmark-inc/karmad/fault"
	"github.com/bitmark-inc/karmad/hook"
	"github.com/bitmark-inc/karmad/identity"
	"github.com/bitmark-inc/karmad/reward"
	"github.com/bitmark-inc/karmad/transactionrecord"
)

// run a call, returning the accounts whose transaction lists record it
func (r *Runtime) dispatch(s *hook.Scope, caller account.Key, call transactionrecord.Transaction) ([]account.Key, error) {
	switch tx := call.(type) {

	case *transactionrecord.NewUser:
		if err := r.newUser(s, caller, tx); nil != err {
			return nil, err
		}
		return []account.Key{caller, tx.Account}, nil

	case *transactionrecord.UpdateUser:
		if err := r.updateUser(s, caller, tx); nil != err {
			return nil, err
		}
		return []account.Key{caller}, nil

	case *transactionrecord.DeleteUser:
		return nil, r.deleteUser(s, caller)

	case *transactionrecord.Appreciation:
		result, err := r.appreciations.Appreciate(s, appreciation.Request{
			Payer:     caller,
			Payee:     tx.To,
			Amount:    tx.Amount,
			Community: tx.Community,
			Trait:     tx.Trait,
		})
		if nil != err {
			return nil, err
		}
		return []account.Key{caller, result.Payee}, nil

	case *transactionrecord.SetAdmin:
		target, err := r.admins.SetAdmin(s, caller, tx.Community, tx.NewAdmin)
		if nil != err {
			return nil, err
		}
		return []account.Key{caller, target}, nil

	case *transactionrecord.Invite:
		if err := r.invite(s, caller, tx); nil != err {
			return nil, err
		}
		return []account.Key{caller}, nil

	case *transactionrecord.ClaimReward:
		if err := r.claimReward(s, caller, tx); nil != err {
			return nil, err
		}
		return []account.Key{caller}, nil

	default:
		return nil, fault.InvalidCall
	}
}

func (r *Runtime) newUser(s *hook.Scope, verifier account.Key, tx *transactionrecord.NewUser) error {
	if !r.IsVerifier(s.Trx, verifier) {
		return fault.NotVerifier
	}

	user := identity.Identity{
		Account:   tx.Account,
		UserName:  tx.UserName,
		PhoneHash: tx.PhoneHash,
		Metadata:  tx.Metadata,
	}
	if err := r.identities.Register(s.Trx, user); nil != err {
		return err
	}

	err := s.Emit(events.NewUser,
		events.Attr("account", user.Account),
		events.Attr("userName", user.UserName),
		events.Attr("verifier", verifier),
	)
	if nil != err {
		return err
	}
	return r.hooks.OnNewUser(s, verifier, &user)
}

func (r *Runtime) updateUser(s *hook.Scope, caller account.Key, tx *transactionrecord.UpdateUser) error {
	current, ok := r.identities.Get(s.Trx, caller)
	if !ok {
		return fault.NotFound
	}

	next := *current
	if "" != tx.UserName {
		next.UserName = tx.UserName
	}
	if !tx.PhoneHash.IsZero() {
		next.PhoneHash = tx.PhoneHash
	}
	if "" != tx.Metadata {
		next.Metadata = tx.Metadata
	}

	previous, err := r.identities.Update(s.Trx, next)
	if nil != err {
		return err
	}

	err = s.Emit(events.UpdateUser,
		events.Attr("account", caller),
		events.Attr("userName", next.UserName),
	)
	if nil != err {
		return err
	}
	return r.hooks.OnUpdateUser(s, previous, &next)
}

// remove an identity and everything derived from it
//
// balance, nonce, reward state and the hash index are kept
func (r *Runtime) deleteUser(s *hook.Scope, caller account.Key) error {
	previous, err := r.identities.Delete(s.Trx, caller)
	if nil != err {
		return err
	}
	if err := r.registry.RemoveAccount(s.Trx, caller); nil != err {
		return err
	}
	if err := r.scores.RemoveAccount(s.Trx, caller); nil != err {
		return err
	}
	if err := r.referrals.RemoveAccount(s.Trx, caller); nil != err {
		return err
	}
	if err := r.index.RemoveAccount(s.Trx, caller); nil != err {
		return err
	}

	return s.Emit(events.DeleteUser,
		events.Attr("account", caller),
		events.Attr("userName", previous.UserName),
	)
}

func (r *Runtime) invite(s *hook.Scope, caller account.Key, tx *transactionrecord.Invite) error {
	if !r.identities.Exists(s.Trx, caller) {
		return fault.NotFound
	}
	if tx.PhoneHash.IsZero() {
		return fault.InvalidPhoneHash
	}
	if _, ok := r.identities.Resolve(s.Trx, identity.PhoneTag(tx.PhoneHash)); ok {
		return fault.PhoneNumberTaken
	}
	if err := r.referrals.Create(s.Trx, caller, tx.PhoneHash, s.Block); nil != err {
		return err
	}

	return s.Emit(events.ReferralCreated,
		events.Attr("inviter", caller),
		events.Attr("phoneHash", tx.PhoneHash),
	)
}

// only the signup reward can be claimed directly, the others are
// paid by appreciations and karma rounds
func (r *Runtime) claimReward(s *hook.Scope, caller account.Key, tx *transactionrecord.ClaimReward) error {
	if reward.Signup != tx.Reward {
		return fault.InvalidRewardType
	}
	if !r.identities.Exists(s.Trx, caller) {
		return fault.NotFound
	}
	_, _, err := r.rewards.Claim(s, reward.Signup, caller)
	return err
}
