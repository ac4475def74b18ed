// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - start and stop the karmad JSON RPC listeners
//
// the client RPC port speaks line oriented JSON RPC over TCP or TLS,
// the optional HTTP port accepts the same requests as POST bodies and
// serves a node summary to allowed addresses
package rpc
