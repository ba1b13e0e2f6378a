// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package governance

import (
	"github.com/bitmark-inc/circled/account"
	"github.com/bitmark-inc/circled/circle"
	"github.com/bitmark-inc/circled/clock"
	"github.com/bitmark-inc/circled/fault"
)

// Kind - what a proposal does when executed
type Kind string

// proposal kinds
const (
	Withdrawal  Kind = "WITHDRAWAL"
	Donation    Kind = "DONATION"
	ParamChange Kind = "PARAM_CHANGE"
)

// KindFromString - validate a proposal kind
func KindFromString(s string) (Kind, error) {
	switch k := Kind(s); k {
	case Withdrawal, Donation, ParamChange:
		return k, nil
	default:
		return "", fault.ErrInvalidProposalKind
	}
}

// State - position of a proposal in its life cycle
type State string

// proposal states
const (
	Open     State = "open"
	Passed   State = "passed"
	Failed   State = "failed"
	Executed State = "executed"
	Expired  State = "expired"
)

// limits on proposal text
const (
	MaximumTitleLength       = 128
	MaximumDescriptionLength = 1024
)

// Parameters - time rules of the voting protocol, all in seconds
type Parameters struct {
	VotingWindow   uint64 `json:"votingWindow"`
	ExecutionDelay uint64 `json:"executionDelay"`
	ExecutionGrace uint64 `json:"executionGrace"` // zero means a passed proposal never expires
}

// DefaultParameters - three days voting, one day delay, thirty days to execute
func DefaultParameters() Parameters {
	return Parameters{
		VotingWindow:   3 * clock.Day,
		ExecutionDelay: clock.Day,
		ExecutionGrace: 30 * clock.Day,
	}
}

// Proposal - a request to use pooled funds or change a setting
type Proposal struct {
	Id             uint64           `json:"id"`
	CircleId       uint64           `json:"circleId"`
	Kind           Kind             `json:"kind"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Amount         uint64           `json:"amount"`
	Recipient      account.Address  `json:"recipient"`
	Parameter      circle.Parameter `json:"parameter,omitempty"`
	Proposer       account.Address  `json:"proposer"`
	CreatedAt      uint64           `json:"createdAt"`
	VotingDeadline uint64           `json:"votingDeadline"`
	VotesFor       uint64           `json:"votesFor"`
	VotesAgainst   uint64           `json:"votesAgainst"`
	Executed       bool             `json:"executed"`
	ExecutedAt     uint64           `json:"executedAt,omitempty"`
	Executor       account.Address  `json:"executor"`
}

// Request - the caller supplied part of a proposal
type Request struct {
	Kind        Kind
	Title       string
	Description string
	Amount      uint64
	Recipient   account.Address
	Parameter   circle.Parameter
}

// validate the parts that do not depend on circle state
func (r *Request) validate() error {
	if 0 == len(r.Title) {
		return fault.ErrMissingTitle
	}
	if len(r.Title) > MaximumTitleLength {
		return fault.ErrTitleTooLong
	}
	if len(r.Description) > MaximumDescriptionLength {
		return fault.ErrDescriptionTooLong
	}

	switch r.Kind {
	case Withdrawal, Donation:
		if 0 == r.Amount {
			return fault.ErrInvalidAmount
		}
		if r.Recipient.IsZero() {
			return fault.ErrInvalidRecipient
		}
		if "" != r.Parameter {
			return fault.ErrInvalidParameter
		}
	case ParamChange:
		if _, err := circle.ParameterFromString(string(r.Parameter)); nil != err {
			return err
		}
		if 0 == r.Amount {
			return fault.ErrInvalidAmount
		}
	default:
		return fault.ErrInvalidProposalKind
	}
	return nil
}

// State - derived from the tallies and the time
func (p *Proposal) State(now uint64, parameters Parameters) State {
	if p.Executed {
		return Executed
	}
	if now < p.VotingDeadline {
		return Open
	}
	if p.VotesFor <= p.VotesAgainst {
		return Failed
	}
	if 0 != parameters.ExecutionGrace && now >= p.VotingDeadline+parameters.ExecutionDelay+parameters.ExecutionGrace {
		return Expired
	}
	return Passed
}
