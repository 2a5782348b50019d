package hierarchy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapline/tapline/pkg/grants"
	"github.com/tapline/tapline/pkg/hierarchy"
)

func TestDefaultGrants(t *testing.T) {
	t.Parallel()

	t.Run("covers every module for every role", func(t *testing.T) {
		t.Parallel()
		for _, role := range hierarchy.Roles() {
			table := hierarchy.DefaultGrants(role)
			require.Len(t, table, len(grants.Modules()), "role %s", role)
			for _, m := range grants.Modules() {
				_, ok := table[m]
				assert.True(t, ok, "role %s missing module %s", role, m)
			}
		}
	})

	t.Run("owner gets everything", func(t *testing.T) {
		t.Parallel()
		table := hierarchy.DefaultGrants(hierarchy.RoleOwner)
		for _, m := range grants.Modules() {
			assert.Equal(t, grants.AllActions(), table[m], "module %s", m)
		}
	})

	t.Run("admin denied administer on members and settings only", func(t *testing.T) {
		t.Parallel()
		table := hierarchy.DefaultGrants(hierarchy.RoleAdmin)
		for _, m := range grants.Modules() {
			set := table[m]
			if m == grants.ModuleMembers || m == grants.ModuleSettings {
				assert.False(t, set.Administer, "module %s", m)
				assert.True(t, set.Delete, "module %s", m)
			} else {
				assert.Equal(t, grants.AllActions(), set, "module %s", m)
			}
		}
	})

	t.Run("manager runs operations but administers nothing", func(t *testing.T) {
		t.Parallel()
		table := hierarchy.DefaultGrants(hierarchy.RoleManager)
		assert.Equal(t, grants.UpTo(grants.ActionDelete), table[grants.ModuleInventory])
		assert.Equal(t, grants.UpTo(grants.ActionDelete), table[grants.ModuleCashSessions])
		assert.Equal(t, grants.UpTo(grants.ActionDelete), table[grants.ModuleEmployeeRoster])
		assert.Equal(t, grants.ReadOnly(), table[grants.ModuleReports])
		assert.Equal(t, grants.ReadOnly(), table[grants.ModuleMembers])
		assert.Equal(t, grants.ReadOnly(), table[grants.ModuleSettings])
	})

	t.Run("member defaults are narrow", func(t *testing.T) {
		t.Parallel()
		table := hierarchy.DefaultGrants(hierarchy.RoleMember)
		assert.Equal(t, grants.ReadOnly(), table[grants.ModuleInventory])
		assert.Equal(t, grants.UpTo(grants.ActionCreate), table[grants.ModuleCashSessions])
		assert.Equal(t, grants.ReadOnly(), table[grants.ModuleEmployeeRoster])
		assert.True(t, table[grants.ModuleReports].IsZero())
		assert.True(t, table[grants.ModuleMembers].IsZero())
		assert.True(t, table[grants.ModuleSettings].IsZero())
	})

	t.Run("unknown role denies everything", func(t *testing.T) {
		t.Parallel()
		table := hierarchy.DefaultGrants(hierarchy.Role("stranger"))
		for _, m := range grants.Modules() {
			assert.True(t, table[m].IsZero(), "module %s", m)
		}
	})

	t.Run("implication chain holds throughout the table", func(t *testing.T) {
		t.Parallel()
		for _, role := range hierarchy.Roles() {
			for m, set := range hierarchy.DefaultGrants(role) {
				if set.Administer {
					assert.True(t, set.Delete, "role %s module %s", role, m)
				}
				if set.Delete {
					assert.True(t, set.Edit, "role %s module %s", role, m)
				}
				if set.Edit {
					assert.True(t, set.Create, "role %s module %s", role, m)
				}
				if set.Create {
					assert.True(t, set.View, "role %s module %s", role, m)
				}
			}
		}
	})

	t.Run("returns a fresh copy", func(t *testing.T) {
		t.Parallel()
		first := hierarchy.DefaultGrants(hierarchy.RoleMember)
		first[grants.ModuleSettings] = grants.AllActions()
		second := hierarchy.DefaultGrants(hierarchy.RoleMember)
		assert.True(t, second[grants.ModuleSettings].IsZero())
	})
}
