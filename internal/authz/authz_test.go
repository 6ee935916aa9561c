package authz

import (
	"testing"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowed_DefaultPolicy(t *testing.T) {
	a, err := New()
	require.NoError(t, err)

	tests := []struct {
		role     model.Role
		resource string
		action   string
		want     bool
	}{
		{model.RoleStaff, "products", ActionWrite, true},
		{model.RoleStaff, "orders", ActionRead, true},
		{model.RoleStaff, "dashboard", ActionRead, true},
		{model.RoleStaff, "users", ActionWrite, false},
		{model.RoleManager, "payments", ActionWrite, true},
		{model.RoleManager, "users", ActionWrite, false},
		{model.RoleAdmin, "users", ActionWrite, true},
		{model.RoleAdmin, "anything", "delete", true},
		{model.Role("guest"), "products", ActionRead, false},
	}

	for _, tt := range tests {
		got, err := a.Allowed(tt.role, tt.resource, tt.action)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s %s %s", tt.role, tt.action, tt.resource)
	}
}

func TestNewWithPolicy(t *testing.T) {
	a, err := NewWithPolicy([]byte("# read only\np, staff, products, read\n\ng, admin, staff\n"))
	require.NoError(t, err)

	ok, err := a.Allowed(model.RoleAdmin, "products", ActionRead)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.Allowed(model.RoleAdmin, "products", ActionWrite)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = NewWithPolicy([]byte("p, staff\n"))
	assert.Error(t, err)

	_, err = NewWithPolicy(nil)
	assert.Error(t, err)
}
