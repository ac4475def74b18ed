// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package runtime

import (
	"sync"

	"github.com/bitmark-inc/karmad/account"
	"github.com/bitmark-inc/karmad/transactionrecord"
)

// Producer - a local block clock for chains without consensus
//
// submitted calls are placed in the open block in arrival order,
// a failed call does not take a position
type Producer struct {
	sync.Mutex
	runtime *Runtime
	block   uint64
	index   uint32
}

// NewProducer - continue at the open position of the runtime
//
// calls already committed to an unsealed block keep their positions
func NewProducer(r *Runtime) *Producer {
	open := r.OpenPosition()
	return &Producer{
		runtime: r,
		block:   open.Block,
		index:   open.Index,
	}
}

// Block - the open block
func (p *Producer) Block() uint64 {
	p.Lock()
	defer p.Unlock()
	return p.block
}

// Submit - execute a call in the open block
func (p *Producer) Submit(caller account.Key, call transactionrecord.Transaction) (*Receipt, error) {
	p.Lock()
	defer p.Unlock()

	ctx := Context{
		Caller: caller,
		Block:  p.block,
		Index:  p.index,
	}
	receipt, err := p.runtime.Execute(ctx, call)
	if nil != err {
		return nil, err
	}
	p.index += 1
	return receipt, nil
}

// SealBlock - close the open block and start the next
//
// returns the number of the closed block
func (p *Producer) SealBlock() (uint64, error) {
	p.Lock()
	defer p.Unlock()

	if err := p.runtime.EndBlock(p.block); nil != err {
		return 0, err
	}
	sealed := p.block
	p.block += 1
	p.index = 0
	return sealed, nil
}
