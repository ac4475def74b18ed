// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package referral - pending invitations keyed by inviter and the
// phone number hash of the invitee
package referral

import (
	"github.com/bitmark-inc/karmad/account"
	"github.com/bitmark-inc/karmad/fault"
	"github.com/bitmark-inc/karmad/identity"
	"github.com/bitmark-inc/karmad/storage"
	"github.com/bitmark-inc/logger"
)

// Book - referral markers
type Book struct {
	log       *logger.L
	referrals *storage.PoolHandle // inviter ⧺ phone hash → block
	invitees  *storage.PoolHandle // phone hash ⧺ inviter → block
}

// New - create a referral book
func New(pools *storage.Pools) *Book {
	return &Book{
		log:       logger.New("referral"),
		referrals: pools.Referrals,
		invitees:  pools.Invitees,
	}
}

func referralKey(inviter account.Key, phone identity.PhoneHash) []byte {
	return append(inviter.Bytes(), phone[:]...)
}

func inviteeKey(phone identity.PhoneHash, inviter account.Key) []byte {
	return append(phone[:], inviter[:]...)
}

// Create - record an invitation made at block
func (b *Book) Create(trx storage.Transaction, inviter account.Key, phone identity.PhoneHash, block uint64) error {
	if phone.IsZero() {
		return fault.InvalidPhoneHash
	}
	key := referralKey(inviter, phone)
	if trx.Has(b.referrals, key) {
		return fault.ReferralExists
	}
	trx.PutN(b.referrals, key, block)
	trx.PutN(b.invitees, inviteeKey(phone, inviter), block)

	b.log.Debugf("referral: %s → %s", inviter, phone)
	return nil
}

// Exists - an unconsumed referral is present
func (b *Book) Exists(r storage.Reader, inviter account.Key, phone identity.PhoneHash) bool {
	return r.Has(b.referrals, referralKey(inviter, phone))
}

// Consume - remove the referral, false if there was none
func (b *Book) Consume(trx storage.Transaction, inviter account.Key, phone identity.PhoneHash) bool {
	key := referralKey(inviter, phone)
	if !trx.Has(b.referrals, key) {
		return false
	}
	trx.Delete(b.referrals, key)
	trx.Delete(b.invitees, inviteeKey(phone, inviter))

	b.log.Debugf("consumed: %s → %s", inviter, phone)
	return true
}

// InvitersOf - committed inviters of a phone number hash in key order
func (b *Book) InvitersOf(phone identity.PhoneHash) ([]account.Key, error) {
	result := make([]account.Key, 0)
	err := b.invitees.NewFetchCursor().Prefix(phone[:]).Map(func(key []byte, value []byte) error {
		inviter, err := account.KeyFromBytes(key[identity.PhoneHashLength:])
		if nil != err {
			return err
		}
		result = append(result, inviter)
		return nil
	})
	return result, err
}

// RemoveAccount - drop every referral made by an inviter
func (b *Book) RemoveAccount(trx storage.Transaction, inviter account.Key) error {
	return b.referrals.NewFetchCursor().Prefix(inviter.Bytes()).Map(func(key []byte, value []byte) error {
		phone, err := identity.PhoneHashFromBytes(key[account.KeyLength:])
		if nil != err {
			return err
		}
		trx.Delete(b.referrals, key)
		trx.Delete(b.invitees, inviteeKey(phone, inviter))
		return nil
	})
}
