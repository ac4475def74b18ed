// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/karmad/counter"
)

func TestAcquireRelease(t *testing.T) {
	var c counter.Counter

	assert.True(t, c.IsZero(), "counter not zero at start")
	assert.True(t, c.Acquire(2), "first slot refused")
	assert.True(t, c.Acquire(2), "second slot refused")
	assert.False(t, c.Acquire(2), "slot over limit granted")
	assert.Equal(t, uint64(2), c.Uint64(), "refused slot still counted")

	c.Release()
	c.Release()
	assert.True(t, c.IsZero(), "counter did not return to zero")
}
