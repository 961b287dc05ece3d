package model

import (
	"github.com/m-mizutani/githuber/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Owner is the GitHub organization or user whose repositories are synchronized.
type Owner struct {
	Name string
	Type types.OwnerType
}

// NewOwner builds an Owner from the organization and user options. Organization has priority.
func NewOwner(org, user string) Owner {
	if org != "" {
		return Owner{Name: org, Type: types.OwnerOrganization}
	}
	return Owner{Name: user, Type: types.OwnerUser}
}

func (x Owner) Validate() error {
	if x.Name == "" {
		return goerr.Wrap(types.ErrMissingOwner, "organization or user is required")
	}
	switch x.Type {
	case types.OwnerOrganization, types.OwnerUser:
	default:
		return goerr.Wrap(types.ErrInvalidOption, "unknown owner type", goerr.V("type", x.Type))
	}
	return nil
}

func (x Owner) IsOrganization() bool {
	return x.Type == types.OwnerOrganization
}

func (x Owner) String() string {
	return string(x.Type) + ":" + x.Name
}
