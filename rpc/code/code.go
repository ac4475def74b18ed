// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package code - numeric classes of RPC errors
//
// net/rpc only carries the error text, so the code is sent as a
// prefix of the message: "404: account not found"
package code

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bitmark-inc/karmad/fault"
)

// Code - class of an RPC error
type Code int

// error codes
const (
	OK         Code = 0
	Invalid    Code = 400
	Balance    Code = 402
	Permission Code = 403
	NotFound   Code = 404
	Exists     Code = 409
	Limited    Code = 429
	Internal   Code = 500
)

// Of - code of an error
func Of(err error) Code {
	switch {
	case nil == err:
		return OK
	case fault.RateLimiting == err:
		return Limited
	case fault.IsErrInvalid(err):
		return Invalid
	case fault.IsErrBalance(err):
		return Balance
	case fault.IsErrPermission(err):
		return Permission
	case fault.IsErrNotFound(err):
		return NotFound
	case fault.IsErrExists(err):
		return Exists
	default:
		return Internal
	}
}

// Error - an error carrying its code
type Error struct {
	Code    Code
	Message string
}

// Error - text sent to the client
func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// Wrap - attach the code to an error, nil stays nil
func Wrap(err error) error {
	if nil == err {
		return nil
	}
	return &Error{
		Code:    Of(err),
		Message: err.Error(),
	}
}

// Parse - split a received error text into code and message
//
// text without a code is an internal error
func Parse(text string) *Error {
	s := strings.SplitN(text, ": ", 2)
	if 2 == len(s) {
		if n, err := strconv.Atoi(s[0]); nil == err {
			return &Error{
				Code:    Code(n),
				Message: s[1],
			}
		}
	}
	return &Error{
		Code:    Internal,
		Message: text,
	}
}
