// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"context"

	"github.com/canonical/classroom-service/internal/roles"
	"github.com/canonical/classroom-service/internal/types"
)

type ServiceInterface interface {
	Generate(ctx context.Context, orgID string, role roles.Role, issuerID string) (*types.InviteCode, error)
	Redeem(ctx context.Context, code, userID string) (*types.Membership, error)
	Revoke(ctx context.Context, code, requestedBy string) error
	ListActive(ctx context.Context, orgID string) ([]*types.InviteCode, error)
}

// StorageInterface is the subset of the store adapter the invite
// service needs.
type StorageInterface interface {
	GetOrganization(ctx context.Context, orgID string) (*types.Organization, error)
	GetMembership(ctx context.Context, orgID, userID string) (*types.Membership, error)
	AddMember(ctx context.Context, orgID, userID string, role roles.Role) (*types.Membership, error)

	GetInvite(ctx context.Context, code string) (*types.InviteCode, error)
	PutInvite(ctx context.Context, invite *types.InviteCode) error
	DeleteInvite(ctx context.Context, code string) error
	ListInvitesByOrg(ctx context.Context, orgID string) ([]*types.InviteCode, error)
}
