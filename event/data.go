// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"github.com/bitmark-inc/circled/account"
)

// CircleCreatedData - a new circle and its components
type CircleCreatedData struct {
	Id                 uint64          `json:"id"`
	Owner              account.Address `json:"owner"`
	Ledger             account.Address `json:"ledger"`
	Tracker            account.Address `json:"tracker"`
	Governance         account.Address `json:"governance"`
	Name               string          `json:"name"`
	Goal               uint64          `json:"goal"`
	ContributionAmount uint64          `json:"contributionAmount"`
	ContributionPeriod uint64          `json:"contributionPeriod"`
	IsPremium          bool            `json:"isPremium"`
}

// MemberAddedData - a member joined a circle
type MemberAddedData struct {
	Member      account.Address `json:"member"`
	MemberCount uint64          `json:"memberCount"`
}

// ContributionMadeData - a contribution was accepted
type ContributionMadeData struct {
	Member           account.Address `json:"member"`
	Amount           uint64          `json:"amount"`
	TotalContributed uint64          `json:"totalContributed"`
	Balance          uint64          `json:"balance"`
	CurrentStreak    uint64          `json:"currentStreak"`
	LongestStreak    uint64          `json:"longestStreak"`
}

// ProposalCreatedData - a new proposal opened for voting
type ProposalCreatedData struct {
	ProposalId     uint64          `json:"proposalId"`
	Kind           string          `json:"kind"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Amount         uint64          `json:"amount"`
	Recipient      account.Address `json:"recipient"`
	Parameter      string          `json:"parameter,omitempty"`
	Proposer       account.Address `json:"proposer"`
	VotingDeadline uint64          `json:"votingDeadline"`
}

// VoteCastData - a member voted
type VoteCastData struct {
	ProposalId   uint64          `json:"proposalId"`
	Voter        account.Address `json:"voter"`
	Support      bool            `json:"support"`
	VotesFor     uint64          `json:"votesFor"`
	VotesAgainst uint64          `json:"votesAgainst"`
}

// ProposalExecutedData - a passed proposal took effect
type ProposalExecutedData struct {
	ProposalId uint64          `json:"proposalId"`
	Kind       string          `json:"kind"`
	Amount     uint64          `json:"amount"`
	Recipient  account.Address `json:"recipient"`
	Parameter  string          `json:"parameter,omitempty"`
	Executor   account.Address `json:"executor"`
	Balance    uint64          `json:"balance"`
}

// BadgeGrantedData - a member earned a badge
type BadgeGrantedData struct {
	Member account.Address `json:"member"`
	Badge  uint8           `json:"badge"`
	Name   string          `json:"name"`
}
