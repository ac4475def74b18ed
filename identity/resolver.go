// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identity

import (
	"github.com/bitmark-inc/karmad/account"
	"github.com/bitmark-inc/karmad/fault"
	"github.com/bitmark-inc/karmad/storage"
	"github.com/bitmark-inc/logger"
)

// Resolver - the three identity indices
type Resolver struct {
	log         *logger.L
	identities  *storage.PoolHandle
	userNames   *storage.PoolHandle
	phoneHashes *storage.PoolHandle
}

// New - create a resolver over the identity pools
func New(pools *storage.Pools) *Resolver {
	return &Resolver{
		log:         logger.New("identity"),
		identities:  pools.Identities,
		userNames:   pools.UserNames,
		phoneHashes: pools.PhoneHashes,
	}
}

// Get - identity by account key
func (r *Resolver) Get(reader storage.Reader, key account.Key) (*Identity, bool) {
	buffer := reader.Get(r.identities, key.Bytes())
	if nil == buffer {
		return nil, false
	}
	id, err := unpack(key, buffer)
	if nil != err {
		logger.Panicf("identity: corrupt record for: %s  error: %s", key, err)
	}
	return id, true
}

// Exists - account key is registered
func (r *Resolver) Exists(reader storage.Reader, key account.Key) bool {
	return reader.Has(r.identities, key.Bytes())
}

// Resolve - find an identity through any of its keys
func (r *Resolver) Resolve(reader storage.Reader, tag Tag) (*Identity, bool) {
	switch tag.Type {
	case AccountTagType:
		return r.Get(reader, tag.Account)
	case UserNameTagType:
		return r.indirect(reader, r.userNames, []byte(tag.UserName))
	case PhoneTagType:
		return r.indirect(reader, r.phoneHashes, tag.PhoneHash[:])
	default:
		return nil, false
	}
}

func (r *Resolver) indirect(reader storage.Reader, pool *storage.PoolHandle, indexKey []byte) (*Identity, bool) {
	buffer := reader.Get(pool, indexKey)
	if nil == buffer {
		return nil, false
	}
	key, err := account.KeyFromBytes(buffer)
	if nil != err {
		logger.Panicf("identity: corrupt index entry: %x  error: %s", indexKey, err)
	}
	return r.Get(reader, key)
}

// Register - add a new identity
//
// all three indices are written or none
func (r *Resolver) Register(trx storage.Transaction, id Identity) error {
	if err := id.Validate(); nil != err {
		return err
	}
	if trx.Has(r.identities, id.Account.Bytes()) {
		return fault.AlreadyRegistered
	}
	if trx.Has(r.userNames, []byte(id.UserName)) {
		return fault.UserNameTaken
	}
	if trx.Has(r.phoneHashes, id.PhoneHash[:]) {
		return fault.PhoneNumberTaken
	}

	r.write(trx, &id)

	r.log.Infof("registered: %s  user name: %q", id.Account, id.UserName)
	return nil
}

// Update - replace user name, phone hash and metadata of an existing identity
//
// returns the previous record
func (r *Resolver) Update(trx storage.Transaction, id Identity) (*Identity, error) {
	if err := id.Validate(); nil != err {
		return nil, err
	}
	previous, ok := r.Get(trx, id.Account)
	if !ok {
		return nil, fault.NotFound
	}

	if previous.UserName != id.UserName && trx.Has(r.userNames, []byte(id.UserName)) {
		return nil, fault.UserNameTaken
	}
	if previous.PhoneHash != id.PhoneHash && trx.Has(r.phoneHashes, id.PhoneHash[:]) {
		return nil, fault.PhoneNumberTaken
	}

	r.erase(trx, previous)
	r.write(trx, &id)

	r.log.Infof("updated: %s  user name: %q → %q", id.Account, previous.UserName, id.UserName)
	return previous, nil
}

// Delete - remove an identity from all three indices
func (r *Resolver) Delete(trx storage.Transaction, key account.Key) (*Identity, error) {
	previous, ok := r.Get(trx, key)
	if !ok {
		return nil, fault.NotFound
	}
	r.erase(trx, previous)

	r.log.Infof("deleted: %s  user name: %q", key, previous.UserName)
	return previous, nil
}

func (r *Resolver) write(trx storage.Transaction, id *Identity) {
	key := id.Account.Bytes()
	trx.Put(r.identities, key, id.pack())
	trx.Put(r.userNames, []byte(id.UserName), key)
	trx.Put(r.phoneHashes, id.PhoneHash[:], key)
}

func (r *Resolver) erase(trx storage.Transaction, id *Identity) {
	trx.Delete(r.identities, id.Account.Bytes())
	trx.Delete(r.userNames, []byte(id.UserName))
	trx.Delete(r.phoneHashes, id.PhoneHash[:])
}

// ListByUserNamePrefix - committed identities whose user name starts
// with prefix, in user name order
//
// start is the user name to resume from, empty for the beginning
func (r *Resolver) ListByUserNamePrefix(prefix string, start string, count int) ([]*Identity, error) {
	cursor := r.userNames.NewFetchCursor().Prefix([]byte(prefix))
	if "" != start {
		cursor.Seek([]byte(start))
	}
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	result := make([]*Identity, 0, len(elements))
	for _, e := range elements {
		key, err := account.KeyFromBytes(e.Value)
		if nil != err {
			return nil, err
		}
		if id, ok := r.Get(storage.Committed, key); ok {
			result = append(result, id)
		}
	}
	return result, nil
}

// List - committed identities in account key order
func (r *Resolver) List(start account.Key, count int) ([]*Identity, error) {
	elements, err := r.identities.NewFetchCursor().Seek(start.Bytes()).Fetch(count)
	if nil != err {
		return nil, err
	}

	result := make([]*Identity, 0, len(elements))
	for _, e := range elements {
		key, err := account.KeyFromBytes(e.Key)
		if nil != err {
			return nil, err
		}
		id, err := unpack(key, e.Value)
		if nil != err {
			return nil, err
		}
		result = append(result, id)
	}
	return result, nil
}
