// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package score_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/karmad/community"
	"github.com/bitmark-inc/karmad/fixtures"
	"github.com/bitmark-inc/karmad/hook"
	"github.com/bitmark-inc/karmad/identity"
	"github.com/bitmark-inc/karmad/score"
)

func TestIncrementAndKarmaScore(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	s := fixtures.NewStore(t)
	defer s.Close()

	reg := community.New(&s.Pool)
	l := score.New(&s.Pool, reg)

	trx := fixtures.Begin(t, s)
	assert.Equal(t, uint64(1), l.Increment(trx, fixtures.Alice, community.NoCommunity, community.SpenderTrait), "first increment")
	assert.Equal(t, uint64(2), l.Increment(trx, fixtures.Alice, community.NoCommunity, community.SpenderTrait), "second increment")
	l.Increment(trx, fixtures.Alice, 1, 4)
	assert.Nil(t, reg.SetRole(trx, fixtures.Alice, 1, community.RoleMember), "set role error")
	assert.Nil(t, reg.SetRole(trx, fixtures.Alice, 2, community.RoleAdmin), "set role error")
	assert.Nil(t, trx.Commit(), "commit error")

	r := s.Committed()
	assert.Equal(t, uint64(2), l.Get(r, fixtures.Alice, community.NoCommunity, community.SpenderTrait), "wrong spender score")
	assert.Equal(t, uint64(0), l.Get(r, fixtures.Bob, community.NoCommunity, community.SpenderTrait), "phantom score")

	scores, err := l.ScoresOf(fixtures.Alice)
	assert.Nil(t, err, "scores error")
	assert.Equal(t, []score.Score{
		{Community: community.NoCommunity, Trait: community.SpenderTrait, Score: 2},
		{Community: 1, Trait: 4, Score: 1},
	}, scores, "wrong scores")

	karma, err := l.KarmaScore(fixtures.Alice)
	assert.Nil(t, err, "karma score error")
	assert.Equal(t, uint64(5), karma, "karma score is not scores plus community count")

	trx = fixtures.Begin(t, s)
	assert.Nil(t, l.RemoveAccount(trx, fixtures.Alice), "remove error")
	assert.Nil(t, trx.Commit(), "commit error")

	scores, err = l.ScoresOf(fixtures.Alice)
	assert.Nil(t, err, "scores error")
	assert.Equal(t, 0, len(scores), "scores survived removal")
}

func TestSignupObserver(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	s := fixtures.NewStore(t)
	defer s.Close()

	l := score.New(&s.Pool, community.New(&s.Pool))
	o := score.NewSignupObserver(l)

	trx := fixtures.Begin(t, s)
	defer trx.Abort()

	scope := hook.NewScope(trx, 1, 0, nil)
	err := o.OnNewUser(scope, fixtures.Alice, &identity.Identity{Account: fixtures.Bob})
	assert.Nil(t, err, "observer error")
	assert.Equal(t, uint64(1), l.Get(trx, fixtures.Bob, community.NoCommunity, community.SignupTrait), "signup trait not awarded")
}
