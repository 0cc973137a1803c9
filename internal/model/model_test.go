package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUser_IsAdmin(t *testing.T) {
	u := &User{Roles: []Role{{Name: RoleUser}}}
	assert.False(t, u.IsAdmin())
	assert.Equal(t, []string{"user"}, u.RoleNames())

	u.Roles = append(u.Roles, Role{Name: RoleAdmin})
	assert.True(t, u.IsAdmin())
}

func TestCampaign_HasMember(t *testing.T) {
	c := &Campaign{Owner: UserRef{ID: "owner"}, Players: []UserRef{{ID: "p1"}}}
	assert.True(t, c.HasMember("owner"))
	assert.True(t, c.HasMember("p1"))
	assert.False(t, c.HasMember("stranger"))
}

func TestMailToken_Expired(t *testing.T) {
	now := time.Now()
	tok := &MailToken{ExpiresAt: now.Add(time.Minute)}
	assert.False(t, tok.Expired(now))
	assert.True(t, tok.Expired(now.Add(time.Minute)))
}
