// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/karmad/fault"
	"github.com/bitmark-inc/logger"
)

// Pools - exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type Pools struct {
	Identities          *PoolHandle `prefix:"I"`
	UserNames           *PoolHandle `prefix:"U"`
	PhoneHashes         *PoolHandle `prefix:"P"`
	Nonces              *PoolHandle `prefix:"N"`
	Balances            *PoolHandle `prefix:"B"`
	CharTraits          *PoolHandle `prefix:"C"`
	Communities         *PoolHandle `prefix:"M"`
	Memberships         *PoolHandle `prefix:"R"`
	CommunityMembers    *PoolHandle `prefix:"K"`
	TraitScores         *PoolHandle `prefix:"S"`
	Referrals           *PoolHandle `prefix:"F"`
	Invitees            *PoolHandle `prefix:"E"`
	RewardStates        *PoolHandle `prefix:"W"`
	RewardTotals        *PoolHandle `prefix:"T"`
	PeriodAppreciations *PoolHandle `prefix:"Q"`
	KarmaRounds         *PoolHandle `prefix:"L"`
	AccountTxCount      *PoolHandle `prefix:"X"`
	AccountTxIndex      *PoolHandle `prefix:"Y"`
	Transactions        *PoolHandle `prefix:"H"`
	Events              *PoolHandle `prefix:"V"`
	Globals             *PoolHandle `prefix:"G"`
	TestData            *PoolHandle `prefix:"Z"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Store - an open database with its pools
type Store struct {
	sync.Mutex
	log  *logger.L
	db   *leveldb.DB
	trx  Transaction
	Pool Pools
}

// Open - open up the database connection
//
// this must be called before any pool is accessed
func Open(database string, readOnly bool) (*Store, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(database, opt)
	if nil != err {
		return nil, err
	}
	return newStore(db, readOnly)
}

// OpenMemory - a non-persistent store, used by tests and tools
func OpenMemory() (*Store, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return newStore(db, ReadWrite)
}

func newStore(db *leveldb.DB, readOnly bool) (*Store, error) {
	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	log := logger.New("storage")

	version, err := getVersion(db)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		log.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, fault.UnsupportedDatabaseLevel
	}

	if 0 == version {
		if readOnly {
			return nil, fault.DatabaseIsNotSet
		}
		// database was empty so tag as current version
		if err := putVersion(db, currentDBVersion); nil != err {
			return nil, err
		}
	} else if version < currentDBVersion {
		log.Criticalf("database version: %d < current version: %d", version, currentDBVersion)
		return nil, fault.UnsupportedDatabaseLevel
	}

	s := &Store{
		log: log,
		db:  db,
	}

	access := newDA(db, new(leveldb.Batch), newCache())
	s.trx = newTransaction(access)

	// this will be a struct type
	poolType := reflect.TypeOf(s.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&s.Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return nil, fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:     prefix,
			limit:      limit,
			dataAccess: access,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	log.Infof("opened database version: 0x%x", currentDBVersion)

	ok = true // prevent db close
	return s, nil
}

// Close - close the database connection
func (s *Store) Close() {
	s.Lock()
	defer s.Unlock()

	if nil != s.db {
		s.trx.Abort()
		s.db.Close()
		s.db = nil
		s.log.Info("closed")
		s.log.Flush()
	}
}

// Begin - start the single write transaction
//
// only one transaction can be in progress at a time
func (s *Store) Begin() (Transaction, error) {
	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		return nil, fault.DatabaseIsNotSet
	}
	if err := s.trx.Begin(); nil != err {
		return nil, err
	}
	return s.trx, nil
}

// Committed - reader of the committed state, shared by all stores
var Committed Reader = committed{}

// Committed - read access to the committed state only
func (s *Store) Committed() Reader {
	return Committed
}

// return the version number, 0 if not set
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
