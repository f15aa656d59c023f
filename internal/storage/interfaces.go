// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/classroom-service/internal/roles"
	"github.com/canonical/classroom-service/internal/types"
)

type StorageInterface interface {
	// organizations
	CreateOrganization(ctx context.Context, org *types.Organization) (*types.Organization, error)
	GetOrganization(ctx context.Context, orgID string) (*types.Organization, error)
	FindOrganizationByName(ctx context.Context, name string) (*types.Organization, error)
	DeleteOrganization(ctx context.Context, orgID string) error
	ListOrganizations(ctx context.Context) ([]*types.Organization, error)

	// memberships
	AddMember(ctx context.Context, orgID, userID string, role roles.Role) (*types.Membership, error)
	RemoveMember(ctx context.Context, orgID, userID, requestedBy string, force bool) error
	UpdateRole(ctx context.Context, orgID, userID string, newRole roles.Role, requestedBy string) (*types.Membership, error)
	GetMembership(ctx context.Context, orgID, userID string) (*types.Membership, error)
	ListMembers(ctx context.Context, orgID string) ([]*types.Membership, error)
	ListUserOrganizations(ctx context.Context, userID string) ([]*types.UserOrgPointer, error)

	// user documents (primary org / current class pointers)
	GetUser(ctx context.Context, userID string) (*types.User, error)
	PutUser(ctx context.Context, user *types.User) error

	// classes
	GetClass(ctx context.Context, orgID, classID string) (*types.Class, error)
	PutClass(ctx context.Context, class *types.Class) error
	DeleteClass(ctx context.Context, orgID, classID string) error
	ListClasses(ctx context.Context, orgID string) ([]*types.Class, error)

	// invite codes
	GetInvite(ctx context.Context, code string) (*types.InviteCode, error)
	PutInvite(ctx context.Context, invite *types.InviteCode) error
	DeleteInvite(ctx context.Context, code string) error
	ListInvitesByOrg(ctx context.Context, orgID string) ([]*types.InviteCode, error)
}
