// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package code_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/karmad/fault"
	"github.com/bitmark-inc/karmad/rpc/code"
)

func TestOf(t *testing.T) {
	items := []struct {
		err  error
		code code.Code
	}{
		{nil, code.OK},
		{fault.RateLimiting, code.Limited},
		{fault.InvalidCount, code.Invalid},
		{fault.InsufficientBalance, code.Balance},
		{fault.CommunityClosed, code.Permission},
		{fault.NotFound, code.NotFound},
		{fault.UserNameTaken, code.Exists},
		{errors.New("disk full"), code.Internal},
	}
	for i, item := range items {
		assert.Equal(t, item.code, code.Of(item.err), "%d: wrong code for: %v", i, item.err)
	}
}

func TestWrapAndParse(t *testing.T) {
	assert.Nil(t, code.Wrap(nil), "nil error wrapped")

	err := code.Wrap(fault.NotFound)
	assert.Equal(t, "404: account not found", err.Error(), "wrong text")

	e := code.Parse(err.Error())
	assert.Equal(t, code.NotFound, e.Code, "wrong parsed code")
	assert.Equal(t, "account not found", e.Message, "wrong parsed message")

	e = code.Parse("connection reset: by peer")
	assert.Equal(t, code.Internal, e.Code, "uncoded text not internal")
	assert.Equal(t, "connection reset: by peer", e.Message, "uncoded text changed")
}
