// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - shared error values for the karma engine
//
// every error is a single comparable instance with a class
// (invalid, balance, permission, not found, exists) that the RPC
// layer turns into a numeric code
package fault
