// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// karma-cli - command line client for the karmad client RPC
//
// every command prints its reply as JSON, server errors set the exit
// status by error class (invalid 2, balance 3, permission 4,
// not found 5, exists 6, rate limited 7)
package main
