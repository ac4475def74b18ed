// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reward

import (
	"github.com/bitmark-inc/karmad/account"
	"github.com/bitmark-inc/karmad/events"
	"github.com/bitmark-inc/karmad/fault"
	"github.com/bitmark-inc/karmad/hook"
	"github.com/bitmark-inc/karmad/identity"
	"github.com/bitmark-inc/karmad/ledger"
	"github.com/bitmark-inc/karmad/score"
	"github.com/bitmark-inc/karmad/storage"
	"github.com/bitmark-inc/logger"
)

// Allocator - pays rewards out of the phased budgets
type Allocator struct {
	hook.Nop

	log        *logger.L
	params     Parameters
	states     *storage.PoolHandle // account → State
	totals     *storage.PoolHandle // type → total allocated
	received   *storage.PoolHandle // period ⧺ account → appreciations received
	rounds     *storage.PoolHandle // period ⧺ rank → account ⧺ amount
	globals    *storage.PoolHandle
	ledger     ledger.Ledger
	scores     *score.Ledger
	identities *identity.Resolver
}

// New - create an allocator
func New(pools *storage.Pools, params Parameters, l ledger.Ledger, scores *score.Ledger, identities *identity.Resolver) (*Allocator, error) {
	if err := params.Validate(); nil != err {
		return nil, err
	}
	return &Allocator{
		log:        logger.New("reward"),
		params:     params,
		states:     pools.RewardStates,
		totals:     pools.RewardTotals,
		received:   pools.PeriodAppreciations,
		rounds:     pools.KarmaRounds,
		globals:    pools.Globals,
		ledger:     l,
		scores:     scores,
		identities: identities,
	}, nil
}

// Parameters - the configured budgets
func (a *Allocator) Parameters() Parameters {
	return a.params
}

// State - reward state of an identity
func (a *Allocator) State(r storage.Reader, who account.Key) State {
	return unpackState(r.Get(a.states, who.Bytes()))
}

// Allocated - total paid so far for a reward type
func (a *Allocator) Allocated(r storage.Reader, t Type) uint64 {
	n, _ := r.GetN(a.totals, []byte{byte(t)})
	return n
}

// Claim - pay a one-off reward to an identity
//
// paid is false without error when the reward was already claimed or
// the budget is exhausted, nothing is changed in that case
func (a *Allocator) Claim(s *hook.Scope, t Type, who account.Key) (uint64, bool, error) {
	if Signup != t && Referral != t && Karma != t {
		return 0, false, fault.InvalidRewardType
	}
	phases := a.params.phases(t)

	state := a.State(s.Trx, who)
	if state.claimed(t) {
		return 0, false, nil
	}

	total := a.Allocated(s.Trx, t)
	amount, ok := nextAmount(phases, total)
	if !ok {
		a.log.Debugf("%s budget exhausted for: %s", t, who)
		return 0, false, nil
	}

	if err := a.ledger.Mint(s.Trx, who, amount); nil != err {
		return 0, false, err
	}

	state.mark(t)
	s.Trx.Put(a.states, who.Bytes(), state.pack())
	s.Trx.PutN(a.totals, []byte{byte(t)}, total+amount)

	err := s.Emit(events.RewardPaid,
		events.Attr("type", t),
		events.Attr("account", who),
		events.Attr("amount", amount),
	)
	if nil != err {
		return 0, false, err
	}

	a.log.Infof("%s reward: %d paid to: %s", t, amount, who)
	return amount, true, nil
}

// the amount of the first phase whose cap is above the total, clamped
// to the global cap
func nextAmount(phases []Phase, total uint64) (uint64, bool) {
	if 0 == len(phases) {
		return 0, false
	}
	globalCap := phases[len(phases)-1].Cap

	for _, phase := range phases {
		if total < phase.Cap {
			amount := phase.Amount
			if amount > globalCap-total {
				amount = globalCap - total
			}
			return amount, true
		}
	}
	return 0, false
}

// SubsidizeTxFee - cover a transaction fee from the subsidy budget
//
// true means the caller must not charge the fee
func (a *Allocator) SubsidizeTxFee(s *hook.Scope, who account.Key, fee uint64) (bool, error) {
	if 0 == fee {
		return false, nil
	}

	state := a.State(s.Trx, who)
	if state.SubsidyUsed >= a.params.SubsidyMaxPerUser {
		return false, nil
	}
	total := a.Allocated(s.Trx, TxFeeSubsidy)
	if total > a.params.SubsidyBudget || a.params.SubsidyBudget-total < fee {
		return false, nil
	}

	state.SubsidyUsed += 1
	s.Trx.Put(a.states, who.Bytes(), state.pack())
	s.Trx.PutN(a.totals, []byte{byte(TxFeeSubsidy)}, total+fee)

	err := s.Emit(events.FeeSubsidised,
		events.Attr("account", who),
		events.Attr("fee", fee),
	)
	if nil != err {
		return false, err
	}
	return true, nil
}

// Period - karma period containing a block
func (a *Allocator) Period(block uint64) uint64 {
	return block / a.params.KarmaPeriodBlocks
}

// OnNewUser - signup reward
func (a *Allocator) OnNewUser(s *hook.Scope, verifier account.Key, user *identity.Identity) error {
	_, _, err := a.Claim(s, Signup, user.Account)
	return err
}

// OnAppreciation - count towards the karma round and pay the
// referral reward when the appreciation consumed an invitation
func (a *Allocator) OnAppreciation(s *hook.Scope, ap hook.Appreciation) error {
	key := receivedKey(a.Period(s.Block), ap.Payee)
	n, _ := s.Trx.GetN(a.received, key)
	s.Trx.PutN(a.received, key, n+1)

	if ap.Referral {
		_, _, err := a.Claim(s, Referral, ap.Payer)
		return err
	}
	return nil
}
