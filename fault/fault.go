// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type BalanceError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError

// engine errors - keep in alphabetic order
var (
	AlreadyExecuted     = ExistsError("proposal already executed")
	AlreadyMember       = ExistsError("already a member")
	AlreadyVoted        = ExistsError("already voted")
	IncorrectAmount     = InvalidError("incorrect amount")
	InsufficientBalance = BalanceError("insufficient balance")
	InsufficientFee     = BalanceError("insufficient fee")
	NotMember           = NotFoundError("not member")
	ProposalExpired     = ProcessError("proposal expired")
	ProposalRejected    = ProcessError("proposal rejected")
	TooEarly            = ProcessError("too early to execute")
	Unauthorized        = PermissionError("caller is not authorised")
	UnexpectedFee       = InvalidError("fee attached to non-premium circle")
	VotingClosed        = ProcessError("voting closed")
)

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised           = ExistsError("already initialised")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrCircleNotFound               = NotFoundError("circle not found")
	ErrDescriptionTooLong           = InvalidError("description too long")
	ErrInvalidAddress               = InvalidError("invalid address")
	ErrInvalidAmount                = InvalidError("invalid amount")
	ErrInvalidBadgeKind             = InvalidError("invalid badge kind")
	ErrInvalidCount                 = InvalidError("invalid count")
	ErrInvalidGoal                  = InvalidError("invalid goal")
	ErrInvalidIPAddress             = InvalidError("invalid IP address")
	ErrInvalidLoggerChannel         = InvalidError("invalid logger channel")
	ErrInvalidName                  = InvalidError("invalid name")
	ErrInvalidParameter             = InvalidError("invalid parameter")
	ErrInvalidPeriod                = InvalidError("invalid period")
	ErrInvalidPrivateKeyFile        = InvalidError("invalid private key file")
	ErrInvalidProposalKind          = InvalidError("invalid proposal kind")
	ErrInvalidPublicKeyFile         = InvalidError("invalid public key file")
	ErrInvalidRecipient             = InvalidError("invalid recipient")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrMissingParameters            = InvalidError("missing parameters")
	ErrMissingTitle                 = InvalidError("title is required")
	ErrNotInitialised               = NotFoundError("not initialised")
	ErrProposalNotFound             = NotFoundError("proposal not found")
	ErrRateLimiting                 = InvalidError("rate limiting")
	ErrReadOnly                     = ProcessError("database is read only")
	ErrTitleTooLong                 = InvalidError("title too long")
	ErrUnmarshalTextFail            = ProcessError("unmarshal text failed")
	ErrWiringIncomplete             = ProcessError("component wiring incomplete")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e BalanceError) Error() string    { return string(e) }
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }

// determine the class of an error
func IsErrBalance(e error) bool    { _, ok := e.(BalanceError); return ok }
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
