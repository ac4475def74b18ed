// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ⧺            = concatenation of byte data
// 3. block number = big endian uint64 (8 bytes)
// 4. position     = big endian uint32 (4 bytes)
// 5. community    = big endian uint32 (4 bytes)
// 6. trait        = big endian uint32 (4 bytes)
// 7. account      = account key (32 bytes)
// 8. phone        = SHA3-256 of the phone number (32 bytes)
// 9. txId         = SHA3-256 of the packed call (32 bytes)
// 10. count       = big endian uint64 (8 bytes)
//
// Identities:
//
//   I ⧺ account                  - identity record
//                                  data: varint name length ⧺ name ⧺ phone ⧺ varint length ⧺ metadata
//   U ⧺ username                 - username index
//                                  data: account
//   P ⧺ phone                    - phone number index
//                                  data: account
//   N ⧺ account                  - call nonce
//                                  data: count
//   B ⧺ account                  - balance
//                                  data: count
//
// Communities:
//
//   C ⧺ trait                    - char trait definition (JSON)
//   M ⧺ community                - community definition (JSON)
//   R ⧺ account ⧺ community      - membership role
//                                  data: role byte
//   K ⧺ community ⧺ account      - community member list
//                                  data: role byte
//   S ⧺ account ⧺ community ⧺ trait - trait score
//                                  data: count
//
// Referrals:
//
//   F ⧺ account ⧺ phone          - pending referral from inviter
//   E ⧺ phone ⧺ account          - inviters of a phone number
//
// Rewards:
//
//   W ⧺ account                  - account reward state (never deleted)
//                                  data: flags byte ⧺ subsidy count
//   T ⧺ reward type              - total allocated
//                                  data: count
//   Q ⧺ period ⧺ account         - appreciations received during a karma period
//                                  data: count
//   L ⧺ period                   - karma round winners
//                                  data: [ account ⧺ amount ]
//
// Transactions:
//
//   X ⧺ account                  - next count value for the account index
//                                  data: count
//   Y ⧺ account ⧺ count          - account transaction index
//                                  data: block number ⧺ position
//   H ⧺ txId                     - transaction hash index
//                                  data: block number ⧺ position ⧺ packed call
//   V ⧺ block number ⧺ position ⧺ sequence - event log
//                                  data: JSON event
//
// Globals:
//
//   G ⧺ name                     - single values (genesis marker, karma watermark, block height)
//
// Testing:
//
//   Z ⧺ key                      - testing data
package storage
