// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package usercontext

import (
	"context"

	"github.com/canonical/classroom-service/internal/types"
)

type ServiceInterface interface {
	ResolveContext(ctx context.Context, userID string) (*types.UserContext, error)
	SetActiveOrg(ctx context.Context, userID, orgID string) error
}

// StorageInterface is the subset of the store adapter the resolver needs.
type StorageInterface interface {
	GetUser(ctx context.Context, userID string) (*types.User, error)
	PutUser(ctx context.Context, user *types.User) error
	GetMembership(ctx context.Context, orgID, userID string) (*types.Membership, error)
	ListUserOrganizations(ctx context.Context, userID string) ([]*types.UserOrgPointer, error)
	GetClass(ctx context.Context, orgID, classID string) (*types.Class, error)
}

// ClassEnsurerInterface lazily provides the organization's default class
// when the user has no current-class pointer.
type ClassEnsurerInterface interface {
	EnsureDefaultClass(ctx context.Context, orgID string) (*types.Class, error)
}
