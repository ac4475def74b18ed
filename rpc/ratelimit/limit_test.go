// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/karmad/fault"
	"github.com/bitmark-inc/karmad/rpc/ratelimit"
)

func TestLimitN(t *testing.T) {
	limiter := ratelimit.New(1000, 10)

	assert.Nil(t, ratelimit.Limit(limiter), "single request refused")
	assert.Nil(t, ratelimit.LimitN(limiter, 5, 10), "request within burst refused")
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(limiter, 0, 10), "zero count accepted")
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(limiter, 11, 10), "count over maximum accepted")
}

func TestLimitOverBurst(t *testing.T) {
	limiter := ratelimit.New(1000, 2)
	assert.Equal(t, fault.RateLimiting, ratelimit.LimitN(limiter, 3, 10), "count over burst reserved")
}
