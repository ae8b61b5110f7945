// AngelaMos | 2026
// policy.go

package user

import (
	"strings"

	"github.com/carterperez-dev/cskit/internal/config"
)

// RolePolicy maps a declared email to a role. Implementations must be pure.
type RolePolicy interface {
	Classify(email string) Role
}

// EmailRolePolicy grants admin to one exact address and seller to every
// address ending in SellerDomainSuffix. Everyone else is a consumer.
type EmailRolePolicy struct {
	AdminEmail         string
	SellerDomainSuffix string
}

func NewEmailRolePolicy(cfg config.RolesConfig) EmailRolePolicy {
	return EmailRolePolicy{
		AdminEmail:         cfg.AdminEmail,
		SellerDomainSuffix: cfg.SellerDomain,
	}
}

func (p EmailRolePolicy) Classify(email string) Role {
	switch {
	case p.AdminEmail != "" && email == p.AdminEmail:
		return RoleAdmin
	case p.SellerDomainSuffix != "" && strings.HasSuffix(email, p.SellerDomainSuffix):
		return RoleSeller
	default:
		return RoleConsumer
	}
}
