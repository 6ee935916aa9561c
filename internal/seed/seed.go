// Package seed loads the demo data the store starts with.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

type seedUser struct {
	model.User `yaml:",inline"`
	Password   string `yaml:"password"`
}

type file struct {
	Users    []seedUser      `yaml:"users"`
	Products []model.Product `yaml:"products"`
	Orders   []model.Order   `yaml:"orders"`
	Payments []model.Payment `yaml:"payments"`
	Expenses []model.Expense `yaml:"expenses"`
}

// Default parses the embedded demo data.
func Default(cost int) (model.Snapshot, error) {
	return Parse(defaultSeed, cost)
}

// Load reads a seed file from disk. An empty path yields the embedded data.
func Load(path string, cost int) (model.Snapshot, error) {
	if path == "" {
		return Default(cost)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(raw, cost)
}

// Parse decodes raw YAML and hashes each user's plaintext password with
// the given bcrypt cost.
func Parse(raw []byte, cost int) (model.Snapshot, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return model.Snapshot{}, fmt.Errorf("decode seed: %w", err)
	}

	snap := model.Snapshot{
		Users:    make([]model.User, 0, len(f.Users)),
		Products: f.Products,
		Orders:   f.Orders,
		Payments: f.Payments,
		Expenses: f.Expenses,
	}

	for _, su := range f.Users {
		if !su.Role.Valid() {
			return model.Snapshot{}, fmt.Errorf("seed user %s: invalid role %q", su.ID, su.Role)
		}
		u := su.User
		if su.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), cost)
			if err != nil {
				return model.Snapshot{}, fmt.Errorf("hash password for seed user %s: %w", su.ID, err)
			}
			u.PasswordHash = string(hash)
		}
		snap.Users = append(snap.Users, u)
	}

	for _, o := range snap.Orders {
		if !o.Status.Valid() {
			return model.Snapshot{}, fmt.Errorf("seed order %s: invalid status %q", o.ID, o.Status)
		}
	}

	return snap, nil
}
