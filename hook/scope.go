// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hook - ordered lifecycle observers
//
// every state changing call runs inside a Scope, observers are
// invoked in a fixed order and the first failure fails the call
package hook

import (
	"github.com/bitmark-inc/karmad/events"
	"github.com/bitmark-inc/karmad/storage"
)

// Scope - environment of one top-level call
type Scope struct {
	Trx   storage.Transaction
	Block uint64
	Index uint32
	Sink  events.Sink

	seq uint16
}

// NewScope - scope for the call at position index of block
func NewScope(trx storage.Transaction, block uint64, index uint32, sink events.Sink) *Scope {
	return &Scope{
		Trx:   trx,
		Block: block,
		Index: index,
		Sink:  sink,
	}
}

// Emit - record an event of this call
func (s *Scope) Emit(kind events.Kind, attributes ...events.Attribute) error {
	if nil == s.Sink {
		return nil
	}
	e := events.Event{
		Block:      s.Block,
		Index:      s.Index,
		Seq:        s.seq,
		Kind:       kind,
		Attributes: attributes,
	}
	s.seq += 1
	return s.Sink.Emit(s.Trx, e)
}
