// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package circle

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/circled/account"
	"github.com/bitmark-inc/circled/amount"
	"github.com/bitmark-inc/circled/circle"
	"github.com/bitmark-inc/circled/deployer"
	"github.com/bitmark-inc/circled/engine"
	"github.com/bitmark-inc/circled/registry"
	"github.com/bitmark-inc/circled/rpc/ratelimit"
	"github.com/bitmark-inc/circled/substrate"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitCircle = 200
	rateBurstCircle = 100
)

// Circle - type for RPC calls
//
// owner and member checks use the unauthenticated Caller argument
type Circle struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Engine  engine.Engine
}

// New - create a circle RPC handler
func New(log *logger.L, e engine.Engine) *Circle {
	return &Circle{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitCircle, rateBurstCircle),
		Engine:  e,
	}
}

// Info - a circle as presented to clients, amounts are decimal strings
type Info struct {
	Id                 uint64          `json:"id"`
	Owner              account.Address `json:"owner"`
	Name               string          `json:"name"`
	GoalAmount         string          `json:"goalAmount"`
	CurrentBalance     string          `json:"currentBalance"`
	ContributionAmount string          `json:"contributionAmount"`
	ContributionPeriod uint64          `json:"contributionPeriod"`
	MemberCount        uint64          `json:"memberCount"`
	StreakOfOwner      uint64          `json:"streakOfOwner"`
	EngineRef          account.Address `json:"engineRef"`
	TrackerRef         account.Address `json:"trackerRef"`
	GovernanceRef      account.Address `json:"governanceRef"`
	IsPremium          bool            `json:"isPremium"`
	CreatedAt          uint64          `json:"createdAt"`
	TotalContributed   string          `json:"totalContributed"`
	TotalDisbursed     string          `json:"totalDisbursed"`
	TopContributor     account.Address `json:"topContributor"`
	GoalReached        bool            `json:"goalReached"`
}

func infoFrom(c *registry.CircleInfo) Info {
	return Info{
		Id:                 c.Id,
		Owner:              c.Owner,
		Name:               c.Name,
		GoalAmount:         amount.String(c.GoalAmount),
		CurrentBalance:     amount.String(c.CurrentBalance),
		ContributionAmount: amount.String(c.ContributionAmount),
		ContributionPeriod: c.ContributionPeriod,
		MemberCount:        c.MemberCount,
		StreakOfOwner:      c.StreakOfOwner,
		EngineRef:          c.EngineRef,
		TrackerRef:         c.TrackerRef,
		GovernanceRef:      c.GovernanceRef,
		IsPremium:          c.IsPremium,
		CreatedAt:          c.CreatedAt,
		TotalContributed:   amount.String(c.TotalContributed),
		TotalDisbursed:     amount.String(c.TotalDisbursed),
		TopContributor:     c.TopContributor,
		GoalReached:        c.GoalReached,
	}
}

// ---

// CreateArguments - arguments for creating a circle
//
// a premium circle, or one created on behalf of another owner, goes
// through the deployer; otherwise the owner creates it directly
type CreateArguments struct {
	Caller             account.Address `json:"caller"`
	Owner              account.Address `json:"owner"`
	Name               string          `json:"name"`
	Goal               string          `json:"goal"`
	ContributionAmount string          `json:"contributionAmount"`
	ContributionPeriod uint64          `json:"contributionPeriod"`
	IsPremium          bool            `json:"isPremium"`
	Fee                string          `json:"fee"`
}

// CreateReply - result of creating a circle
type CreateReply struct {
	*substrate.Receipt
	CircleId uint64 `json:"circleId"`
}

// Settings - decode the amounts into circle settings and a fee
func (arguments *CreateArguments) Settings() (circle.Settings, uint64, error) {
	goal, err := amount.Parse(arguments.Goal)
	if nil != err {
		return circle.Settings{}, 0, err
	}
	contribution, err := amount.Parse(arguments.ContributionAmount)
	if nil != err {
		return circle.Settings{}, 0, err
	}
	fee := uint64(0)
	if "" != arguments.Fee {
		fee, err = amount.Parse(arguments.Fee)
		if nil != err {
			return circle.Settings{}, 0, err
		}
	}
	settings := circle.Settings{
		Name:               arguments.Name,
		Goal:               goal,
		ContributionAmount: contribution,
		ContributionPeriod: arguments.ContributionPeriod,
		IsPremium:          arguments.IsPremium,
	}
	return settings, fee, nil
}

// Create - create a new circle
func (c *Circle) Create(arguments *CreateArguments, reply *CreateReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	settings, fee, err := arguments.Settings()
	if nil != err {
		return err
	}

	c.Log.Infof("create: %q  owner: %s  caller: %s  premium: %t", settings.Name, arguments.Owner, arguments.Caller, settings.IsPremium)

	var receipt *substrate.Receipt
	var created *circle.Circle
	if settings.IsPremium || 0 != fee || arguments.Caller != arguments.Owner {
		request := deployer.Request{
			Owner:    arguments.Owner,
			Settings: settings,
		}
		receipt, created, err = c.Engine.DeployCircle(arguments.Caller, request, fee)
	} else {
		receipt, created, err = c.Engine.CreateCircle(arguments.Caller, arguments.Owner, settings)
	}
	if nil != err {
		return err
	}

	reply.Receipt = receipt
	reply.CircleId = created.Id
	return nil
}

// ---

// GetArguments - identify a circle
type GetArguments struct {
	Id uint64 `json:"id"`
}

// Get - committed state of a circle
func (c *Circle) Get(arguments *GetArguments, reply *Info) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	info, err := c.Engine.GetCircle(arguments.Id)
	if nil != err {
		return err
	}
	*reply = infoFrom(info)
	return nil
}

// ---

// MembersReply - member addresses in join order
type MembersReply struct {
	Members []account.Address `json:"members"`
}

// Members - list the members of a circle
func (c *Circle) Members(arguments *GetArguments, reply *MembersReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	members, err := c.Engine.GetCircleMembers(arguments.Id)
	if nil != err {
		return err
	}
	reply.Members = members
	return nil
}

// ---

// ForMemberArguments - identify a member
type ForMemberArguments struct {
	Member account.Address `json:"member"`
}

// ForMemberReply - circles joined by a member
type ForMemberReply struct {
	Circles []uint64 `json:"circles"`
}

// ForMember - list the circles that an address belongs to
func (c *Circle) ForMember(arguments *ForMemberArguments, reply *ForMemberReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	reply.Circles = c.Engine.GetCirclesForMember(arguments.Member)
	if nil == reply.Circles {
		reply.Circles = []uint64{}
	}
	return nil
}

// ---

// AddMemberArguments - invite an address to a circle
type AddMemberArguments struct {
	Caller account.Address `json:"caller"`
	Id     uint64          `json:"id"`
	Member account.Address `json:"member"`
}

// AddMemberReply - result of adding a member
type AddMemberReply struct {
	*substrate.Receipt
}

// AddMember - the circle owner adds a member
func (c *Circle) AddMember(arguments *AddMemberArguments, reply *AddMemberReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	c.Log.Infof("add member: %s  circle: %d  caller: %s", arguments.Member, arguments.Id, arguments.Caller)

	receipt, err := c.Engine.AddMember(arguments.Caller, arguments.Id, arguments.Member)
	if nil != err {
		return err
	}
	reply.Receipt = receipt
	return nil
}
