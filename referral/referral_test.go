// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package referral_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/karmad/account"
	"github.com/bitmark-inc/karmad/fault"
	"github.com/bitmark-inc/karmad/fixtures"
	"github.com/bitmark-inc/karmad/identity"
	"github.com/bitmark-inc/karmad/referral"
)

func TestReferralLifecycle(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	s := fixtures.NewStore(t)
	defer s.Close()

	b := referral.New(&s.Pool)
	phone, err := identity.HashPhoneNumber("+4470001")
	assert.Nil(t, err, "phone hash error")

	trx := fixtures.Begin(t, s)
	assert.Nil(t, b.Create(trx, fixtures.Alice, phone, 5), "create error")
	assert.Equal(t, fault.ReferralExists, b.Create(trx, fixtures.Alice, phone, 6), "duplicate accepted")
	assert.Nil(t, b.Create(trx, fixtures.Bob, phone, 6), "second inviter rejected")
	assert.Equal(t, fault.InvalidPhoneHash, b.Create(trx, fixtures.Bob, identity.PhoneHash{}, 6), "zero hash accepted")
	assert.Nil(t, trx.Commit(), "commit error")

	inviters, err := b.InvitersOf(phone)
	assert.Nil(t, err, "inviters error")
	assert.Equal(t, []account.Key{fixtures.Alice, fixtures.Bob}, inviters, "wrong inviters")

	trx = fixtures.Begin(t, s)
	assert.True(t, b.Consume(trx, fixtures.Alice, phone), "not consumed")
	assert.False(t, b.Consume(trx, fixtures.Alice, phone), "consumed twice")
	assert.False(t, b.Exists(trx, fixtures.Alice, phone), "exists after consume")
	assert.Nil(t, trx.Commit(), "commit error")

	trx = fixtures.Begin(t, s)
	assert.Nil(t, b.RemoveAccount(trx, fixtures.Bob), "remove error")
	assert.Nil(t, trx.Commit(), "commit error")

	assert.False(t, b.Exists(s.Committed(), fixtures.Bob, phone), "referral survived removal")
	inviters, err = b.InvitersOf(phone)
	assert.Nil(t, err, "inviters error")
	assert.Equal(t, 0, len(inviters), "invitee index survived removal")
}
