// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package circle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/circled/amount"
	"github.com/bitmark-inc/circled/circle"
	"github.com/bitmark-inc/circled/clock"
	"github.com/bitmark-inc/circled/fault"
)

func valid() circle.Settings {
	return circle.Settings{
		Name:               "rent fund",
		Goal:               amount.Unit,
		ContributionAmount: amount.Unit / 100,
		ContributionPeriod: clock.Week,
	}
}

func TestValidate(t *testing.T) {
	assert.Nil(t, valid().Validate(), "valid")

	s := valid()
	s.Name = ""
	assert.Equal(t, fault.ErrInvalidName, s.Validate(), "empty name")

	s = valid()
	s.Name = "0123456789012345678901234567890123456789012345678901234567890123456789"
	assert.Equal(t, fault.ErrInvalidName, s.Validate(), "long name")

	s = valid()
	s.Goal = 0
	assert.Equal(t, fault.ErrInvalidGoal, s.Validate(), "zero goal")

	s = valid()
	s.ContributionAmount = 0
	assert.Equal(t, fault.ErrInvalidAmount, s.Validate(), "zero amount")

	s = valid()
	s.ContributionAmount = s.Goal + 1
	assert.Equal(t, fault.ErrInvalidAmount, s.Validate(), "amount above goal")

	s = valid()
	s.ContributionPeriod = 59
	assert.Equal(t, fault.ErrInvalidPeriod, s.Validate(), "short period")
}

func TestApply(t *testing.T) {
	s := valid()
	c := &circle.Circle{
		Name:               s.Name,
		Goal:               s.Goal,
		ContributionAmount: s.ContributionAmount,
		ContributionPeriod: s.ContributionPeriod,
	}

	assert.Nil(t, c.Apply(circle.ContributionAmount, 2000000), "amount")
	assert.Equal(t, uint64(2000000), c.ContributionAmount, "amount applied")

	assert.Nil(t, c.Apply(circle.ContributionPeriod, clock.Day), "period")
	assert.Equal(t, clock.Day, c.ContributionPeriod, "period applied")

	assert.Equal(t, fault.ErrInvalidGoal, c.Apply(circle.Goal, 0), "zero goal")
	assert.Equal(t, amount.Unit, c.Goal, "goal unchanged")

	assert.Equal(t, fault.ErrInvalidAmount, c.Apply(circle.Goal, 1000), "goal below amount")
	assert.Equal(t, fault.ErrInvalidParameter, c.Apply(circle.Parameter("name"), 1), "unknown")
}

func TestParameterFromString(t *testing.T) {
	p, err := circle.ParameterFromString("goal")
	assert.Nil(t, err, "goal")
	assert.Equal(t, circle.Goal, p, "goal")

	_, err = circle.ParameterFromString("owner")
	assert.Equal(t, fault.ErrInvalidParameter, err, "owner")
}
