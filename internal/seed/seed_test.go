package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestDefault(t *testing.T) {
	snap, err := Default(bcrypt.MinCost)
	require.NoError(t, err)

	assert.Len(t, snap.Users, 3)
	assert.Len(t, snap.Products, 6)
	assert.Len(t, snap.Orders, 3)
	assert.Len(t, snap.Payments, 3)
	assert.Len(t, snap.Expenses, 5)

	assert.True(t, snap.Products[0].Price.Equal(decimal.RequireFromString("199.99")))
	assert.Len(t, snap.Orders[0].Items, 2)
	assert.Equal(t, 2023, snap.Orders[0].CreatedAt.Year())

	for _, u := range snap.Users {
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password")), u.Email)
	}
}

func TestParse_RejectsUnknownRole(t *testing.T) {
	_, err := Parse([]byte("users:\n  - {id: \"9\", name: X, email: x@example.com, role: owner}\n"), bcrypt.MinCost)
	assert.ErrorContains(t, err, "invalid role")
}

func TestParse_RejectsUnknownOrderStatus(t *testing.T) {
	_, err := Parse([]byte("orders:\n  - {id: \"9\", status: lost, total_amount: \"1\"}\n"), bcrypt.MinCost)
	assert.ErrorContains(t, err, "invalid status")
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("products:\n  - {id: \"1\", name: Lamp, price: \"9.99\", quantity: 3}\n"), 0o600))

	snap, err := Load(path, bcrypt.MinCost)
	require.NoError(t, err)
	require.Len(t, snap.Products, 1)
	assert.Equal(t, "Lamp", snap.Products[0].Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"), bcrypt.MinCost)
	assert.Error(t, err)
}
