// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reward

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/karmad/fault"
)

// validator payout curve
const (
	InitialAmount    = 10_000_000_000_000 // month zero payout
	DecayNumerator   = 979_964            // 1 - 20036/1_000_000
	DecayDenominator = 1_000_000
)

// MonthPayout - validator payout for a month
//
// the decay is applied once per month with truncation at every step
func MonthPayout(month uint64) uint64 {
	amount := uint256.NewInt(InitialAmount)
	numerator := uint256.NewInt(DecayNumerator)
	denominator := uint256.NewInt(DecayDenominator)

	for i := uint64(0); i < month && !amount.IsZero(); i += 1 {
		amount.Mul(amount, numerator)
		amount.Div(amount, denominator)
	}
	return amount.Uint64()
}

// EraPayout - validator payout for one era, every era of a month pays
// the same share
func EraPayout(era uint64, erasPerMonth uint64) (uint64, error) {
	if 0 == erasPerMonth {
		return 0, fault.InvalidEraLength
	}
	return MonthPayout(era/erasPerMonth) / erasPerMonth, nil
}
