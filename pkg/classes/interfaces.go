// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package classes

import (
	"context"

	"github.com/canonical/classroom-service/internal/types"
)

type ServiceInterface interface {
	EnsureDefaultClass(ctx context.Context, orgID string) (*types.Class, error)
	Create(ctx context.Context, orgID, name, creatorID string) (*types.Class, error)
	Delete(ctx context.Context, orgID, classID, requestedBy string) error
	Get(ctx context.Context, orgID, classID string) (*types.Class, error)
	List(ctx context.Context, orgID string) ([]*types.Class, error)
	AddStudents(ctx context.Context, orgID, classID string, userIDs []string) (*types.Class, error)
	AddTeachers(ctx context.Context, orgID, classID string, userIDs []string) (*types.Class, error)
	RemoveMember(ctx context.Context, orgID, classID, userID string) (*types.Class, error)
	AssignContent(ctx context.Context, orgID string, classIDs, contentIDs []string, requestedBy string) error
	RemoveContent(ctx context.Context, orgID, classID, contentID string) (*types.Class, error)
	SwitchActiveClass(ctx context.Context, userID, orgID, classID string) error
}

// StorageInterface is the subset of the store adapter the class
// manager needs.
type StorageInterface interface {
	GetOrganization(ctx context.Context, orgID string) (*types.Organization, error)
	GetMembership(ctx context.Context, orgID, userID string) (*types.Membership, error)
	GetClass(ctx context.Context, orgID, classID string) (*types.Class, error)
	PutClass(ctx context.Context, class *types.Class) error
	DeleteClass(ctx context.Context, orgID, classID string) error
	ListClasses(ctx context.Context, orgID string) ([]*types.Class, error)
	GetUser(ctx context.Context, userID string) (*types.User, error)
	PutUser(ctx context.Context, user *types.User) error
}
