// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package leaderboard

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/karmad/fault"
	"github.com/bitmark-inc/karmad/reward"
	"github.com/bitmark-inc/karmad/rpc/code"
	"github.com/bitmark-inc/karmad/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitLeaderboard = 50
	rateBurstLeaderboard = 20
)

// Standings - karma round queries of the engine
type Standings interface {
	Height() uint64
	Period(block uint64) uint64
	Leaderboard(period uint64) ([]reward.Participant, error)
	Winners(period uint64) ([]reward.Winner, error)
}

// Leaderboard - type for RPC calls
type Leaderboard struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Standings Standings
}

// New - create the leaderboard service
func New(log *logger.L, standings Standings) *Leaderboard {
	return &Leaderboard{
		Log:       log,
		Limiter:   ratelimit.New(rateLimitLeaderboard, rateBurstLeaderboard),
		Standings: standings,
	}
}

// GetArguments - a karma period, the current one if not given
type GetArguments struct {
	Period *uint64 `json:"period,omitempty"`
}

// GetReply - standing of a period and its winners once paid
type GetReply struct {
	Period       uint64               `json:"period,string"`
	Current      bool                 `json:"current"`
	Participants []reward.Participant `json:"participants"`
	Winners      []reward.Winner      `json:"winners"`
}

// Get - leaderboard of a karma period
func (l *Leaderboard) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return code.Wrap(err)
	}
	if nil == arguments {
		return code.Wrap(fault.MissingParameters)
	}

	current := l.Standings.Period(l.Standings.Height() + 1)
	period := current
	if nil != arguments.Period {
		period = *arguments.Period
	}
	if period > current {
		return code.Wrap(fault.InvalidKarmaPeriod)
	}

	participants, err := l.Standings.Leaderboard(period)
	if nil != err {
		return code.Wrap(err)
	}
	winners, err := l.Standings.Winners(period)
	if nil != err {
		return code.Wrap(err)
	}

	reply.Period = period
	reply.Current = period == current
	reply.Participants = participants
	reply.Winners = winners
	return nil
}
