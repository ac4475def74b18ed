// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type BalanceError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ExistsError("already initialised")
	AlreadyRegistered            = ExistsError("account already registered")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	CharTraitNotFound            = NotFoundError("char trait not found")
	CommunityClosed              = PermissionError("community is closed")
	CommunityNotFound            = NotFoundError("community not found")
	DatabaseIsNotSet             = ProcessError("database is not set")
	DuplicateCharTrait           = ExistsError("duplicate char trait")
	DuplicateCommunity           = ExistsError("duplicate community")
	DuplicateTransaction         = ExistsError("duplicate transaction")
	GenesisAlreadyApplied        = ExistsError("genesis already applied")
	InsufficientBalance          = BalanceError("insufficient balance")
	InvalidAccountKey            = InvalidError("invalid account key")
	InvalidAmount                = InvalidError("invalid amount")
	InvalidCall                  = InvalidError("invalid call")
	InvalidChain                 = InvalidError("invalid chain")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidDigest                = InvalidError("invalid digest")
	InvalidEraLength             = InvalidError("invalid era length")
	InvalidIPAddress             = InvalidError("invalid IP address")
	InvalidIdentityTag           = InvalidError("invalid identity tag")
	InvalidKarmaPeriod           = InvalidError("invalid karma period")
	InvalidPhoneHash             = InvalidError("invalid phone number hash")
	InvalidPhoneNumber           = InvalidError("invalid phone number")
	InvalidPortNumber            = InvalidError("invalid port number")
	InvalidRewardPhases          = InvalidError("invalid reward phases")
	InvalidRewardType            = InvalidError("invalid reward type")
	InvalidRole                  = InvalidError("invalid role")
	InvalidStructPointer         = InvalidError("invalid struct pointer")
	InvalidUserName              = InvalidError("invalid user name")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	MetadataTooLong              = InvalidError("metadata too long")
	MissingParameters            = InvalidError("missing parameters")
	NotEnoughPermission          = PermissionError("not enough permission")
	NotFound                     = NotFoundError("account not found")
	NotInitialised               = ProcessError("not initialised")
	NotMember                    = PermissionError("not a community member")
	NotTransactionPack           = InvalidError("not transaction pack")
	NotVerifier                  = PermissionError("caller is not a verifier")
	PhoneNumberTaken             = ExistsError("phone number already registered")
	PositionAlreadyUsed          = InvalidError("transaction position already used")
	RateLimiting                 = InvalidError("rate limiting")
	ReferralExists               = ExistsError("referral already exists")
	SubmitDisabled               = PermissionError("call submission is disabled on this chain")
	TransactionAlreadyInUse      = ProcessError("transaction already in use")
	TransactionNotFound          = NotFoundError("transaction not found")
	UnsupportedDatabaseLevel     = ProcessError("unsupported database version")
	UserNameTaken                = ExistsError("user name already taken")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e BalanceError) Error() string    { return string(e) }
func (e ProcessError) Error() string    { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrBalance(e error) bool    { _, ok := e.(BalanceError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
