// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package reward - phased protocol reward budgets
//
// each reward type has a list of phases, a phase pays a fixed amount
// per claim until the total allocated for the type reaches the
// phase's cumulative cap; the last cap is the global cap
package reward

import (
	"encoding/binary"

	"github.com/bitmark-inc/karmad/fault"
)

// Type - kind of reward
type Type byte

// reward types
const (
	NullType     = Type(iota)
	Signup       = Type(iota)
	Referral     = Type(iota)
	Karma        = Type(iota)
	TxFeeSubsidy = Type(iota)
)

var typeNames = map[Type]string{
	Signup:       "signup",
	Referral:     "referral",
	Karma:        "karma",
	TxFeeSubsidy: "tx_fee_subsidy",
}

// String - reward name
func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "invalid"
}

// MarshalText - reward name
func (t Type) MarshalText() ([]byte, error) {
	if _, ok := typeNames[t]; !ok {
		return nil, fault.InvalidRewardType
	}
	return []byte(t.String()), nil
}

// UnmarshalText - reward from name
func (t *Type) UnmarshalText(s []byte) error {
	for k, v := range typeNames {
		if v == string(s) {
			*t = k
			return nil
		}
	}
	return fault.InvalidRewardType
}

// Phase - pays Amount per claim while the total is below Cap
type Phase struct {
	Cap    uint64 `gluamapper:"cap" json:"cap,string"`
	Amount uint64 `gluamapper:"amount" json:"amount,string"`
}

// Parameters - budgets and karma round settings
type Parameters struct {
	Signup   []Phase `gluamapper:"signup" json:"signup"`
	Referral []Phase `gluamapper:"referral" json:"referral"`
	Karma    []Phase `gluamapper:"karma" json:"karma"`

	SubsidyBudget     uint64 `gluamapper:"subsidy_budget" json:"subsidy_budget,string"`
	SubsidyMaxPerUser uint64 `gluamapper:"subsidy_max_per_user" json:"subsidy_max_per_user"`

	KarmaPeriodBlocks uint64 `gluamapper:"karma_period_blocks" json:"karma_period_blocks"`
	MinAppreciations  uint64 `gluamapper:"min_appreciations" json:"min_appreciations"`
	MaxWinners        int    `gluamapper:"max_winners" json:"max_winners"`
}

// State - what an identity has already received
//
// kept after the identity is deleted so a re-registered account
// cannot claim again
type State struct {
	Signup      bool   `json:"signup"`
	Referral    bool   `json:"referral"`
	Karma       bool   `json:"karma"`
	SubsidyUsed uint64 `json:"subsidyUsed"`
}

func (s *State) claimed(t Type) bool {
	switch t {
	case Signup:
		return s.Signup
	case Referral:
		return s.Referral
	case Karma:
		return s.Karma
	default:
		return false
	}
}

func (s *State) mark(t Type) {
	switch t {
	case Signup:
		s.Signup = true
	case Referral:
		s.Referral = true
	case Karma:
		s.Karma = true
	}
}

const (
	signupFlag   = 1 << 0
	referralFlag = 1 << 1
	karmaFlag    = 1 << 2
)

func (s *State) pack() []byte {
	flags := byte(0)
	if s.Signup {
		flags |= signupFlag
	}
	if s.Referral {
		flags |= referralFlag
	}
	if s.Karma {
		flags |= karmaFlag
	}
	buffer := make([]byte, 9)
	buffer[0] = flags
	binary.BigEndian.PutUint64(buffer[1:], s.SubsidyUsed)
	return buffer
}

func unpackState(buffer []byte) State {
	if 9 != len(buffer) {
		return State{}
	}
	used := binary.BigEndian.Uint64(buffer[1:])
	return State{
		Signup:      0 != buffer[0]&signupFlag,
		Referral:    0 != buffer[0]&referralFlag,
		Karma:       0 != buffer[0]&karmaFlag,
		SubsidyUsed: used,
	}
}

// Validate - caps strictly increasing and every amount positive
func (p *Parameters) Validate() error {
	for _, phases := range [][]Phase{p.Signup, p.Referral, p.Karma} {
		previous := uint64(0)
		for _, phase := range phases {
			if phase.Cap <= previous || 0 == phase.Amount {
				return fault.InvalidRewardPhases
			}
			previous = phase.Cap
		}
	}
	if 0 == p.KarmaPeriodBlocks {
		return fault.InvalidKarmaPeriod
	}
	if p.MaxWinners < 0 {
		return fault.InvalidCount
	}
	return nil
}

func (p *Parameters) phases(t Type) []Phase {
	switch t {
	case Signup:
		return p.Signup
	case Referral:
		return p.Referral
	case Karma:
		return p.Karma
	default:
		return nil
	}
}
