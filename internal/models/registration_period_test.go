package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegistrationPeriodIsOpenAt(t *testing.T) {
	now := time.Now()
	base := RegistrationPeriod{
		Status:            PeriodStatusActive,
		AllowRegistration: true,
		StartDate:         now.Add(-time.Hour),
		EndDate:           now.Add(time.Hour),
	}

	t.Run("open window", func(t *testing.T) {
		p := base
		assert.True(t, p.IsOpenAt(now))
	})

	t.Run("nil period", func(t *testing.T) {
		var p *RegistrationPeriod
		assert.False(t, p.IsOpenAt(now))
	})

	t.Run("closed status", func(t *testing.T) {
		p := base
		p.Status = PeriodStatusClosed
		assert.False(t, p.IsOpenAt(now))
	})

	t.Run("registration disabled", func(t *testing.T) {
		p := base
		p.AllowRegistration = false
		assert.False(t, p.IsOpenAt(now))
	})

	t.Run("before start", func(t *testing.T) {
		p := base
		assert.False(t, p.IsOpenAt(p.StartDate.Add(-time.Second)))
	})

	t.Run("after end", func(t *testing.T) {
		p := base
		assert.False(t, p.IsOpenAt(p.EndDate.Add(time.Second)))
	})

	t.Run("boundary instants are inclusive", func(t *testing.T) {
		p := base
		assert.True(t, p.IsOpenAt(p.StartDate))
		assert.True(t, p.IsOpenAt(p.EndDate))
	})
}

func TestTopicMemberIsLive(t *testing.T) {
	assert.True(t, (&TopicMember{Status: MemberStatusPending}).IsLive())
	assert.True(t, (&TopicMember{Status: MemberStatusApproved}).IsLive())
	assert.False(t, (&TopicMember{Status: MemberStatusRejected}).IsLive())
}
