// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package runtime

import (
	"time"

	"github.com/bitmark-inc/logger"
)

// Clock - seals the producer's open block at a fixed interval
type Clock struct {
	log      *logger.L
	producer *Producer
	interval time.Duration
}

// NewClock - a background process for the producer
func NewClock(producer *Producer, interval time.Duration) *Clock {
	return &Clock{
		log:      logger.New("clock"),
		producer: producer,
		interval: interval,
	}
}

// Run - background process loop
func (c *Clock) Run(args interface{}, shutdown <-chan struct{}) {
	log := c.log
	log.Infof("starting with interval: %s", c.interval)

	t := time.NewTicker(c.interval)
	defer t.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-t.C:
			block, err := c.producer.SealBlock()
			if nil != err {
				log.Criticalf("seal block: %d  error: %s", c.producer.Block(), err)
				continue loop
			}
			log.Debugf("sealed block: %d", block)
		}
	}
	log.Info("shutting down…")
}
