// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/karmad/background"
)

type ticker struct {
	ticks    int
	finished bool
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	interval := args.(time.Duration)

	t := time.NewTicker(interval)
	defer t.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-t.C:
			state.ticks += 1
		}
	}
	state.finished = true
}

func TestStartStop(t *testing.T) {
	proc1 := &ticker{}
	proc2 := &ticker{}

	p := background.Start(background.Processes{proc1, proc2}, time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	assert.True(t, proc1.finished, "first process not finished")
	assert.True(t, proc2.finished, "second process not finished")
	assert.NotEqual(t, 0, proc1.ticks, "first process never ticked")
	assert.NotEqual(t, 0, proc2.ticks, "second process never ticked")

	// a second stop must not block
	p.Stop()
}

func TestStopEmpty(t *testing.T) {
	p := background.Start(nil, nil)
	p.Stop()
}
