// Package authz decides which roles may read or write which resources.
package authz

import (
	_ "embed"
	"fmt"

	"github.com/casbin/casbin/v2"
	casbinmodel "github.com/casbin/casbin/v2/model"
	stringadapter "github.com/casbin/casbin/v2/persist/string-adapter"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
)

const (
	ActionRead  = "read"
	ActionWrite = "write"
)

//go:embed model.conf
var modelConf string

//go:embed policy.csv
var policyCSV []byte

type Authorizer struct {
	enforcer *casbin.Enforcer
}

// New builds an enforcer from the embedded RBAC model and policy.
func New() (*Authorizer, error) {
	return NewWithPolicy(policyCSV)
}

// NewWithPolicy uses the embedded model with a caller-supplied policy in casbin CSV form.
func NewWithPolicy(policy []byte) (*Authorizer, error) {
	m, err := casbinmodel.NewModelFromString(modelConf)
	if err != nil {
		return nil, fmt.Errorf("load rbac model: %w", err)
	}

	e, err := casbin.NewEnforcer(m, stringadapter.NewAdapter(string(policy)))
	if err != nil {
		return nil, fmt.Errorf("load rbac policy: %w", err)
	}

	return &Authorizer{enforcer: e}, nil
}

// Allowed reports whether role may perform action on resource.
func (a *Authorizer) Allowed(role model.Role, resource, action string) (bool, error) {
	return a.enforcer.Enforce(string(role), resource, action)
}
