// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - common setup for package tests
package fixtures

import (
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/karmad/account"
	"github.com/bitmark-inc/karmad/storage"
	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// test accounts
var (
	Alice = Key(1)
	Bob   = Key(2)
	Carol = Key(3)
	Dave  = Key(4)
)

// Key - a deterministic account key for tests
func Key(n byte) account.Key {
	k := account.Key{}
	for i := range k {
		k[i] = n
	}
	return k
}

// SetupTestLogger - start logging into a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// NewStore - an in-memory store, logger must already be set up
func NewStore(t *testing.T) *storage.Store {
	s, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	return s
}

// Begin - start a transaction or fail the test
func Begin(t *testing.T, s *storage.Store) storage.Transaction {
	trx, err := s.Begin()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}
	return trx
}
