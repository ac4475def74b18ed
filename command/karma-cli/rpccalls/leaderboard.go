// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/karmad/rpc/leaderboard"
)

// Leaderboard - standings of a karma period, nil for the current one
func (c *Client) Leaderboard(period *uint64) (*leaderboard.GetReply, error) {
	arguments := leaderboard.GetArguments{
		Period: period,
	}
	var reply leaderboard.GetReply
	if err := c.call("Leaderboard.Get", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
