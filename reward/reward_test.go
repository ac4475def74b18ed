// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reward_test

import (
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/karmad/account"
	"github.com/bitmark-inc/karmad/community"
	eventsMocks "github.com/bitmark-inc/karmad/events/mocks"
	"github.com/bitmark-inc/karmad/fault"
	"github.com/bitmark-inc/karmad/fixtures"
	"github.com/bitmark-inc/karmad/hook"
	"github.com/bitmark-inc/karmad/identity"
	"github.com/bitmark-inc/karmad/ledger"
	"github.com/bitmark-inc/karmad/ledger/mocks"
	"github.com/bitmark-inc/karmad/reward"
	"github.com/bitmark-inc/karmad/score"
	"github.com/bitmark-inc/karmad/storage"
)

type testEnv struct {
	store      *storage.Store
	ledger     *ledger.Balances
	scores     *score.Ledger
	identities *identity.Resolver
	allocator  *reward.Allocator
}

func defaultParameters() reward.Parameters {
	return reward.Parameters{
		Signup: []reward.Phase{
			{Cap: 20, Amount: 10},
			{Cap: 25, Amount: 4},
		},
		Referral:          []reward.Phase{{Cap: 100, Amount: 7}},
		Karma:             []reward.Phase{{Cap: 1000, Amount: 100}},
		SubsidyBudget:     10,
		SubsidyMaxPerUser: 2,
		KarmaPeriodBlocks: 10,
		MinAppreciations:  2,
		MaxWinners:        2,
	}
}

func newEnv(t *testing.T, params reward.Parameters) *testEnv {
	s := fixtures.NewStore(t)
	l := ledger.New(s.Pool.Balances, 0)
	scores := score.New(&s.Pool, community.New(&s.Pool))
	identities := identity.New(&s.Pool)
	a, err := reward.New(&s.Pool, params, l, scores, identities)
	if nil != err {
		t.Fatalf("allocator error: %s", err)
	}
	return &testEnv{
		store:      s,
		ledger:     l,
		scores:     scores,
		identities: identities,
		allocator:  a,
	}
}

func TestValidateParameters(t *testing.T) {
	p := defaultParameters()
	assert.Nil(t, p.Validate(), "default parameters rejected")

	p.Signup = []reward.Phase{{Cap: 20, Amount: 10}, {Cap: 20, Amount: 5}}
	assert.Equal(t, fault.InvalidRewardPhases, p.Validate(), "non increasing caps accepted")

	p = defaultParameters()
	p.Karma = []reward.Phase{{Cap: 20, Amount: 0}}
	assert.Equal(t, fault.InvalidRewardPhases, p.Validate(), "zero amount accepted")

	p = defaultParameters()
	p.KarmaPeriodBlocks = 0
	assert.Equal(t, fault.InvalidKarmaPeriod, p.Validate(), "zero period accepted")
}

func TestClaimOnce(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	env := newEnv(t, defaultParameters())
	defer env.store.Close()

	trx := fixtures.Begin(t, env.store)
	defer trx.Abort()
	s := hook.NewScope(trx, 1, 0, nil)

	amount, paid, err := env.allocator.Claim(s, reward.Signup, fixtures.Alice)
	assert.Nil(t, err, "claim error")
	assert.True(t, paid, "first claim not paid")
	assert.Equal(t, uint64(10), amount, "wrong amount")
	assert.Equal(t, uint64(10), env.ledger.Balance(trx, fixtures.Alice), "amount not minted")

	amount, paid, err = env.allocator.Claim(s, reward.Signup, fixtures.Alice)
	assert.Nil(t, err, "second claim error")
	assert.False(t, paid, "second claim paid")
	assert.Equal(t, uint64(0), amount, "second claim amount")
	assert.Equal(t, uint64(10), env.allocator.Allocated(trx, reward.Signup), "total changed by second claim")
	assert.True(t, env.allocator.State(trx, fixtures.Alice).Signup, "flag not set")

	_, _, err = env.allocator.Claim(s, reward.TxFeeSubsidy, fixtures.Alice)
	assert.Equal(t, fault.InvalidRewardType, err, "subsidy claimable")
}

func TestClaimPhasesAndCap(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	env := newEnv(t, defaultParameters())
	defer env.store.Close()

	trx := fixtures.Begin(t, env.store)
	defer trx.Abort()
	s := hook.NewScope(trx, 1, 0, nil)

	// 10, 10 (phase one), 4 (phase two), 1 (clamped), exhausted
	expected := []struct {
		amount uint64
		paid   bool
	}{
		{10, true},
		{10, true},
		{4, true},
		{1, true},
		{0, false},
	}
	for i, e := range expected {
		amount, paid, err := env.allocator.Claim(s, reward.Signup, fixtures.Key(byte(10+i)))
		assert.Nil(t, err, "%d: claim error", i)
		assert.Equal(t, e.paid, paid, "%d: wrong paid", i)
		assert.Equal(t, e.amount, amount, "%d: wrong amount", i)
	}
	assert.Equal(t, uint64(25), env.allocator.Allocated(trx, reward.Signup), "global cap exceeded")
	assert.False(t, env.allocator.State(trx, fixtures.Key(14)).Signup, "exhausted claim marked")
}

func TestClaimMintFailure(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := fixtures.NewStore(t)
	defer s.Close()

	l := mocks.NewMockLedger(ctl)
	a, err := reward.New(&s.Pool, defaultParameters(), l, score.New(&s.Pool, community.New(&s.Pool)), identity.New(&s.Pool))
	assert.Nil(t, err, "allocator error")

	trx := fixtures.Begin(t, s)
	defer trx.Abort()

	l.EXPECT().Mint(trx, fixtures.Alice, uint64(7)).Return(fault.InvalidAmount).Times(1)

	_, paid, err := a.Claim(hook.NewScope(trx, 1, 0, nil), reward.Referral, fixtures.Alice)
	assert.Equal(t, fault.InvalidAmount, err, "mint error not returned")
	assert.False(t, paid, "paid after mint failure")
	assert.False(t, a.State(trx, fixtures.Alice).Referral, "flag set after mint failure")
}

func TestSubsidizeTxFee(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	env := newEnv(t, defaultParameters())
	defer env.store.Close()

	trx := fixtures.Begin(t, env.store)
	defer trx.Abort()
	s := hook.NewScope(trx, 1, 0, nil)

	items := []struct {
		who        account.Key
		fee        uint64
		subsidised bool
		message    string
	}{
		{fixtures.Alice, 4, true, "first subsidy refused"},
		{fixtures.Alice, 4, true, "second subsidy refused"},
		{fixtures.Alice, 1, false, "per user maximum ignored"},
		{fixtures.Bob, 3, false, "budget overdrawn"},
		{fixtures.Bob, 2, true, "remaining budget refused"},
		{fixtures.Carol, 0, false, "zero fee subsidised"},
	}

	a := env.allocator
	for i, item := range items {
		subsidised, err := a.SubsidizeTxFee(s, item.who, item.fee)
		assert.Nil(t, err, "%d: subsidy error", i)
		assert.Equal(t, item.subsidised, subsidised, "%d: %s", i, item.message)
	}
	assert.Equal(t, uint64(2), a.State(trx, fixtures.Alice).SubsidyUsed, "wrong usage count")
	assert.Equal(t, uint64(10), a.Allocated(trx, reward.TxFeeSubsidy), "wrong subsidy total")
}

func TestSubsidizeTxFeeEmitFailure(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	env := newEnv(t, defaultParameters())
	defer env.store.Close()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	trx := fixtures.Begin(t, env.store)
	defer trx.Abort()

	sink := eventsMocks.NewMockSink(ctl)
	sink.EXPECT().Emit(trx, gomock.Any()).Return(fault.DatabaseIsNotSet).Times(1)
	s := hook.NewScope(trx, 1, 0, sink)

	subsidised, err := env.allocator.SubsidizeTxFee(s, fixtures.Alice, 4)
	assert.Equal(t, fault.DatabaseIsNotSet, err, "emit error not returned")
	assert.False(t, subsidised, "subsidised after emit failure")
}

func TestObserver(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	env := newEnv(t, defaultParameters())
	defer env.store.Close()

	trx := fixtures.Begin(t, env.store)
	defer trx.Abort()
	s := hook.NewScope(trx, 1, 0, nil)

	err := env.allocator.OnNewUser(s, fixtures.Alice, &identity.Identity{Account: fixtures.Bob})
	assert.Nil(t, err, "new user error")
	assert.Equal(t, uint64(10), env.ledger.Balance(trx, fixtures.Bob), "signup reward not paid")

	err = env.allocator.OnAppreciation(s, hook.Appreciation{Payer: fixtures.Alice, Payee: fixtures.Bob, Referral: true})
	assert.Nil(t, err, "appreciation error")
	assert.Equal(t, uint64(7), env.ledger.Balance(trx, fixtures.Alice), "referral reward not paid")

	err = env.allocator.OnAppreciation(s, hook.Appreciation{Payer: fixtures.Carol, Payee: fixtures.Bob})
	assert.Nil(t, err, "appreciation error")
	assert.Equal(t, uint64(0), env.ledger.Balance(trx, fixtures.Carol), "referral paid without referral")
}

func register(t *testing.T, env *testEnv, trx storage.Transaction, who account.Key, name string) {
	h, err := identity.HashPhoneNumber(fmt.Sprintf("+1555000%d", who[0]))
	if nil != err {
		t.Fatalf("phone error: %s", err)
	}
	err = env.identities.Register(trx, identity.Identity{Account: who, UserName: name, PhoneHash: h})
	if nil != err {
		t.Fatalf("register error: %s", err)
	}
}

func TestKarmaRound(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	env := newEnv(t, defaultParameters())
	defer env.store.Close()

	a := env.allocator

	trx := fixtures.Begin(t, env.store)
	register(t, env, trx, fixtures.Alice, "alice")
	register(t, env, trx, fixtures.Bob, "bob")
	register(t, env, trx, fixtures.Carol, "carol")
	register(t, env, trx, fixtures.Dave, "dave")

	s := hook.NewScope(trx, 5, 0, nil)
	received := map[account.Key]int{
		fixtures.Alice: 2,
		fixtures.Bob:   3,
		fixtures.Carol: 2,
		fixtures.Dave:  1,
	}
	for who, n := range received {
		for i := 0; i < n; i += 1 {
			assert.Nil(t, a.OnAppreciation(s, hook.Appreciation{Payer: fixtures.Key(9), Payee: who}), "appreciation hook error")
		}
	}
	for i := 0; i < 5; i += 1 {
		env.scores.Increment(trx, fixtures.Carol, community.NoCommunity, 4)
		env.scores.Increment(trx, fixtures.Bob, community.NoCommunity, 4)
	}
	env.scores.Increment(trx, fixtures.Alice, community.NoCommunity, 4)
	env.scores.Increment(trx, fixtures.Dave, community.NoCommunity, 4)
	assert.Nil(t, trx.Commit(), "commit error")

	leaders, err := a.Leaderboard(0)
	assert.Nil(t, err, "leaderboard error")
	assert.Equal(t, []reward.Participant{
		{Account: fixtures.Bob, KarmaScore: 5, Appreciations: 3},
		{Account: fixtures.Carol, KarmaScore: 5, Appreciations: 2},
	}, leaders, "wrong ranking")

	trx = fixtures.Begin(t, env.store)
	winners, err := a.RunKarmaRound(hook.NewScope(trx, 10, 0, nil), 0)
	assert.Nil(t, err, "round error")
	assert.Equal(t, []reward.Winner{
		{Account: fixtures.Bob, Amount: 100},
		{Account: fixtures.Carol, Amount: 100},
	}, winners, "wrong winners")
	assert.Nil(t, trx.Commit(), "commit error")

	assert.True(t, a.Paid(env.store.Committed(), 0), "watermark not set")

	trx = fixtures.Begin(t, env.store)
	winners, err = a.RunKarmaRound(hook.NewScope(trx, 11, 0, nil), 0)
	assert.Nil(t, err, "repeat round error")
	assert.Nil(t, winners, "round paid twice")
	assert.Nil(t, trx.Commit(), "commit error")

	assert.Equal(t, uint64(100), env.ledger.Balance(env.store.Committed(), fixtures.Bob), "wrong winner balance")
	assert.Equal(t, uint64(0), env.ledger.Balance(env.store.Committed(), fixtures.Alice), "loser paid")

	stored, err := a.Winners(0)
	assert.Nil(t, err, "winners error")
	assert.Equal(t, 2, len(stored), "winners not stored")
	assert.Equal(t, fixtures.Bob, stored[0].Account, "wrong stored order")
}

func TestPayoutCurve(t *testing.T) {
	assert.Equal(t, uint64(10_000_000_000_000), reward.MonthPayout(0), "month zero")
	assert.Equal(t, uint64(9_799_640_000_000), reward.MonthPayout(1), "month one")
	assert.Equal(t, uint64(9_603_294_412_960), reward.MonthPayout(2), "month two")

	first, err := reward.EraPayout(0, 30)
	assert.Nil(t, err, "era error")
	last, _ := reward.EraPayout(29, 30)
	assert.Equal(t, first, last, "eras of one month differ")
	assert.Equal(t, reward.MonthPayout(0)/30, first, "wrong era share")

	next, _ := reward.EraPayout(30, 30)
	assert.Equal(t, reward.MonthPayout(1)/30, next, "wrong next month share")

	_, err = reward.EraPayout(1, 0)
	assert.Equal(t, fault.InvalidEraLength, err, "zero era length accepted")
}
