// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - load karmad settings from a Lua file
//
// the file returns a table that is mapped onto a struct using its
// gluamapper tags, command line variables are visible to the script
// as string globals
package configuration
