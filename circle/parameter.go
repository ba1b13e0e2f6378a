// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package circle

import (
	"github.com/bitmark-inc/circled/fault"
)

// Parameter - a circle setting that governance may change
type Parameter string

// changeable settings
const (
	ContributionAmount Parameter = "contributionAmount"
	ContributionPeriod Parameter = "contributionPeriod"
	Goal               Parameter = "goal"
)

// ParameterFromString - validate a parameter name
func ParameterFromString(s string) (Parameter, error) {
	switch p := Parameter(s); p {
	case ContributionAmount, ContributionPeriod, Goal:
		return p, nil
	default:
		return "", fault.ErrInvalidParameter
	}
}

// Apply - change one setting keeping the settings consistent
func (c *Circle) Apply(p Parameter, value uint64) error {
	s := Settings{
		Name:               c.Name,
		Goal:               c.Goal,
		ContributionAmount: c.ContributionAmount,
		ContributionPeriod: c.ContributionPeriod,
	}
	switch p {
	case ContributionAmount:
		s.ContributionAmount = value
	case ContributionPeriod:
		s.ContributionPeriod = value
	case Goal:
		s.Goal = value
	default:
		return fault.ErrInvalidParameter
	}
	if err := s.Validate(); nil != err {
		return err
	}
	c.Goal = s.Goal
	c.ContributionAmount = s.ContributionAmount
	c.ContributionPeriod = s.ContributionPeriod
	return nil
}
