package hierarchy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tapline/tapline/pkg/hierarchy"
)

func TestRoleOrdering(t *testing.T) {
	t.Parallel()

	assert.True(t, hierarchy.RoleOwner.Outranks(hierarchy.RoleAdmin))
	assert.True(t, hierarchy.RoleAdmin.Outranks(hierarchy.RoleManager))
	assert.True(t, hierarchy.RoleManager.Outranks(hierarchy.RoleMember))
	assert.False(t, hierarchy.RoleMember.Outranks(hierarchy.RoleMember))
	assert.False(t, hierarchy.RoleMember.Outranks(hierarchy.RoleOwner))

	assert.True(t, hierarchy.RoleAdmin.AtLeast(hierarchy.RoleAdmin))
	assert.False(t, hierarchy.Role("stranger").AtLeast(hierarchy.RoleMember))
	assert.False(t, hierarchy.Role("stranger").IsValid())
}

func TestCanView(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		actor       hierarchy.Role
		target      hierarchy.Role
		adminMember bool
		want        bool
	}{
		{"equal level", hierarchy.RoleManager, hierarchy.RoleManager, false, true},
		{"looking down", hierarchy.RoleAdmin, hierarchy.RoleMember, false, true},
		{"looking up denied", hierarchy.RoleMember, hierarchy.RoleManager, false, false},
		{"looking up with members administer", hierarchy.RoleMember, hierarchy.RoleOwner, true, true},
		{"owner sees everyone", hierarchy.RoleOwner, hierarchy.RoleOwner, false, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, hierarchy.CanView(tt.actor, tt.target, tt.adminMember))
		})
	}
}

func TestCanEditRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		actor   hierarchy.Role
		current hierarchy.Role
		next    hierarchy.Role
		want    bool
	}{
		{"owner promotes admin to owner", hierarchy.RoleOwner, hierarchy.RoleAdmin, hierarchy.RoleOwner, true},
		{"owner demotes another owner", hierarchy.RoleOwner, hierarchy.RoleOwner, hierarchy.RoleMember, true},
		{"manager cannot touch owner", hierarchy.RoleManager, hierarchy.RoleOwner, hierarchy.RoleAdmin, false},
		{"admin cannot touch owner", hierarchy.RoleAdmin, hierarchy.RoleOwner, hierarchy.RoleAdmin, false},
		{"admin cannot promote to owner", hierarchy.RoleAdmin, hierarchy.RoleManager, hierarchy.RoleOwner, false},
		{"admin demotes manager", hierarchy.RoleAdmin, hierarchy.RoleManager, hierarchy.RoleMember, true},
		{"manager promotes member to manager denied", hierarchy.RoleManager, hierarchy.RoleMember, hierarchy.RoleManager, false},
		{"admin cannot edit peer admin", hierarchy.RoleAdmin, hierarchy.RoleAdmin, hierarchy.RoleMember, false},
		{"unknown actor denied", hierarchy.Role("stranger"), hierarchy.RoleMember, hierarchy.RoleMember, false},
		{"unknown target role denied", hierarchy.RoleOwner, hierarchy.Role("stranger"), hierarchy.RoleMember, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, hierarchy.CanEditRole(tt.actor, tt.current, tt.next))
		})
	}
}

func TestCanDeprovision(t *testing.T) {
	t.Parallel()

	assert.True(t, hierarchy.CanDeprovision(hierarchy.RoleOwner, hierarchy.RoleOwner))
	assert.False(t, hierarchy.CanDeprovision(hierarchy.RoleAdmin, hierarchy.RoleOwner))
	assert.True(t, hierarchy.CanDeprovision(hierarchy.RoleAdmin, hierarchy.RoleManager))
	assert.False(t, hierarchy.CanDeprovision(hierarchy.RoleManager, hierarchy.RoleManager))
	assert.False(t, hierarchy.CanDeprovision(hierarchy.Role("stranger"), hierarchy.RoleMember))
}

func TestBootstrapRole(t *testing.T) {
	t.Parallel()

	t.Run("first member becomes owner", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, hierarchy.RoleOwner, hierarchy.BootstrapRole(true, ""))
		assert.Equal(t, hierarchy.RoleOwner, hierarchy.BootstrapRole(true, hierarchy.RoleManager))
	})

	t.Run("later members get tenant default", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, hierarchy.RoleManager, hierarchy.BootstrapRole(false, hierarchy.RoleManager))
	})

	t.Run("member when no default configured", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, hierarchy.RoleMember, hierarchy.BootstrapRole(false, ""))
		assert.Equal(t, hierarchy.RoleMember, hierarchy.BootstrapRole(false, hierarchy.Role("stranger")))
	})
}
