// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - lock free counting of open connections
package counter

import (
	"sync/atomic"
)

// Counter - number of slots in use
type Counter uint64

// Acquire - take a slot if fewer than limit are in use
func (c *Counter) Acquire(limit uint64) bool {
	if atomic.AddUint64((*uint64)(c), 1) <= limit {
		return true
	}
	c.Release()
	return false
}

// Release - give back a slot
func (c *Counter) Release() {
	atomic.AddUint64((*uint64)(c), ^uint64(0))
}

// Uint64 - slots in use
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}

// IsZero - no slot in use
func (c *Counter) IsZero() bool {
	return 0 == c.Uint64()
}
