// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"context"

	"github.com/canonical/classroom-service/internal/roles"
	"github.com/canonical/classroom-service/internal/types"
)

type ServiceInterface interface {
	Create(ctx context.Context, name, ownerID string) (*types.Organization, error)
	Delete(ctx context.Context, orgID, requestedBy string) error
	Leave(ctx context.Context, orgID, userID string) error
	Get(ctx context.Context, orgID string) (*types.Organization, error)
	FindByName(ctx context.Context, name string) (*types.Organization, error)
	ListForUser(ctx context.Context, userID string) ([]*types.Organization, error)
	EnsureDefaultOrganization(ctx context.Context, name string) (*types.Organization, error)

	AddMember(ctx context.Context, orgID, userID string, role roles.Role, requestedBy string) (*types.Membership, error)
	RemoveMember(ctx context.Context, orgID, userID, requestedBy string) error
	UpdateMemberRole(ctx context.Context, orgID, userID string, newRole roles.Role, requestedBy string) (*types.Membership, error)
	ListMembers(ctx context.Context, orgID string) ([]*types.Membership, error)
}

// StorageInterface is the subset of the store adapter the organization
// manager needs.
type StorageInterface interface {
	CreateOrganization(ctx context.Context, org *types.Organization) (*types.Organization, error)
	GetOrganization(ctx context.Context, orgID string) (*types.Organization, error)
	FindOrganizationByName(ctx context.Context, name string) (*types.Organization, error)
	DeleteOrganization(ctx context.Context, orgID string) error
	ListOrganizations(ctx context.Context) ([]*types.Organization, error)

	AddMember(ctx context.Context, orgID, userID string, role roles.Role) (*types.Membership, error)
	RemoveMember(ctx context.Context, orgID, userID, requestedBy string, force bool) error
	UpdateRole(ctx context.Context, orgID, userID string, newRole roles.Role, requestedBy string) (*types.Membership, error)
	GetMembership(ctx context.Context, orgID, userID string) (*types.Membership, error)
	ListMembers(ctx context.Context, orgID string) ([]*types.Membership, error)
	ListUserOrganizations(ctx context.Context, userID string) ([]*types.UserOrgPointer, error)

	GetUser(ctx context.Context, userID string) (*types.User, error)
	PutUser(ctx context.Context, user *types.User) error

	ListClasses(ctx context.Context, orgID string) ([]*types.Class, error)
	DeleteClass(ctx context.Context, orgID, classID string) error

	ListInvitesByOrg(ctx context.Context, orgID string) ([]*types.InviteCode, error)
	DeleteInvite(ctx context.Context, code string) error
}

// ResolverInterface supplies the requester's active context for the
// delete guard.
type ResolverInterface interface {
	ResolveContext(ctx context.Context, userID string) (*types.UserContext, error)
}
