// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/canonical/classroom-service/internal/docstore"
	"github.com/canonical/classroom-service/internal/logging"
	"github.com/canonical/classroom-service/internal/monitoring"
	"github.com/canonical/classroom-service/internal/roles"
	"github.com/canonical/classroom-service/internal/tracing"
	"github.com/canonical/classroom-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

// Storage is the membership store adapter. Multi-record mutations are
// ordered sequences of idempotent single-path writes: the organization
// side is written before the user side on add and deleted after it on
// remove, so an interrupted run always leaves the member visible from
// the organization's perspective rather than silently missing.
type Storage struct {
	store docstore.ClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(store docstore.ClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.store = store

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) CreateOrganization(ctx context.Context, org *types.Organization) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CreateOrganization")
	defer span.End()

	if org.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("failed to generate organization ID: %w", err)
		}
		org.ID = id.String()
	}
	if org.CreatedAt.IsZero() {
		org.CreatedAt = time.Now().UTC()
	}

	if err := s.store.Put(ctx, orgPath(org.ID), org); err != nil {
		return nil, translate(err)
	}

	return org, nil
}

func (s *Storage) GetOrganization(ctx context.Context, orgID string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetOrganization")
	defer span.End()

	var org types.Organization
	if err := s.store.Get(ctx, orgPath(orgID), &org); err != nil {
		return nil, translate(err)
	}
	return &org, nil
}

// FindOrganizationByName does a case-sensitive name match. Returns
// ErrNotFound when no organization carries the name.
func (s *Storage) FindOrganizationByName(ctx context.Context, name string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.FindOrganizationByName")
	defer span.End()

	orgs, err := s.ListOrganizations(ctx)
	if err != nil {
		return nil, err
	}
	for _, org := range orgs {
		if org.Name == name {
			return org, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Storage) DeleteOrganization(ctx context.Context, orgID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.DeleteOrganization")
	defer span.End()

	return translate(s.store.Delete(ctx, orgPath(orgID)))
}

func (s *Storage) ListOrganizations(ctx context.Context) ([]*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListOrganizations")
	defer span.End()

	docs, err := s.store.List(ctx, orgsRoot)
	if err != nil {
		return nil, translate(err)
	}

	var orgs []*types.Organization
	for _, d := range docs {
		var org types.Organization
		if err := json.Unmarshal(d.Body, &org); err != nil {
			return nil, fmt.Errorf("failed to decode organization at %s: %w", d.Path, err)
		}
		orgs = append(orgs, &org)
	}
	return orgs, nil
}

// AddMember writes the symmetric membership records. The sequence is
//  1. organization-side record, status pending
//  2. user-side join pointer
//  3. organization-side record, status active
// Each step checks current state before writing, so re-running a failed
// call reconciles instead of corrupting.
func (s *Storage) AddMember(ctx context.Context, orgID, userID string, role roles.Role) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.AddMember")
	defer span.End()

	if _, ok := roles.Rank(role); !ok {
		return nil, fmt.Errorf("%w: role %q is not assignable", ErrForbidden, role)
	}

	now := time.Now().UTC()
	m := &types.Membership{
		UserID:   userID,
		OrgID:    orgID,
		Role:     string(role),
		Status:   types.MembershipPending,
		JoinedAt: now,
	}

	var existing types.Membership
	err := s.store.Get(ctx, memberPath(orgID, userID), &existing)
	switch {
	case err == nil && existing.Status == types.MembershipActive:
		return nil, ErrAlreadyMember
	case err == nil:
		// half-completed earlier add, keep the original join time and
		// finish the remaining steps
		m.JoinedAt = existing.JoinedAt
	case !errors.Is(err, docstore.ErrNoDocument):
		return nil, translate(err)
	}

	m.UpdatedAt = now
	if err := s.store.Put(ctx, memberPath(orgID, userID), m); err != nil {
		return nil, translate(err)
	}

	pointer := &types.UserOrgPointer{OrgID: orgID, JoinedAt: m.JoinedAt}
	if err := s.store.Put(ctx, userOrgPath(userID, orgID), pointer); err != nil {
		s.logger.Errorf("user-side membership write failed for %s in %s: %v", userID, orgID, err)
		return nil, fmt.Errorf("%w: org-side record is pending", ErrPartialWrite)
	}

	m.Status = types.MembershipActive
	if err := s.store.Put(ctx, memberPath(orgID, userID), m); err != nil {
		s.logger.Errorf("membership activation write failed for %s in %s: %v", userID, orgID, err)
		return nil, fmt.Errorf("%w: membership recorded but still pending", ErrPartialWrite)
	}

	return m, nil
}

// RemoveMember deletes both sides of the membership, user side first so
// an interrupted run cannot leave a dangling reverse pointer. force
// bypasses the self-removal guard for administrative bulk operations
// and for the voluntary leave flow.
func (s *Storage) RemoveMember(ctx context.Context, orgID, userID, requestedBy string, force bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.RemoveMember")
	defer span.End()

	found, err := s.store.Exists(ctx, memberPath(orgID, userID))
	if err != nil {
		return translate(err)
	}
	if !found {
		return ErrNotAMember
	}

	if userID == requestedBy && !force {
		return ErrSelfRemovalForbidden
	}

	org, err := s.GetOrganization(ctx, orgID)
	if err != nil {
		return err
	}
	if org.IsDefault {
		return ErrDefaultOrgRemovalForbidden
	}

	if err := s.store.Delete(ctx, userOrgPath(userID, orgID)); err != nil {
		return translate(err)
	}
	if err := s.store.Delete(ctx, memberPath(orgID, userID)); err != nil {
		s.logger.Errorf("org-side membership delete failed for %s in %s: %v", userID, orgID, err)
		return fmt.Errorf("%w: user-side pointer removed", ErrPartialWrite)
	}

	return nil
}

// UpdateRole changes a member's role after consulting the role policy
// on both the current and the requested role. Concurrent conflicting
// updates are last-write-wins.
func (s *Storage) UpdateRole(ctx context.Context, orgID, userID string, newRole roles.Role, requestedBy string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.UpdateRole")
	defer span.End()

	requester, err := s.GetMembership(ctx, orgID, requestedBy)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}

	target, err := s.GetMembership(ctx, orgID, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotAMember
		}
		return nil, err
	}

	actorRole := roles.Role(requester.Role)
	if !roles.CanActOn(actorRole, roles.Role(target.Role)) || !roles.CanActOn(actorRole, newRole) {
		s.logger.Security().AuthzFailure(requestedBy, "update_role")
		return nil, ErrForbidden
	}

	if target.Role == string(newRole) {
		return nil, ErrNoOpRoleChange
	}

	target.Role = string(newRole)
	target.UpdatedAt = time.Now().UTC()
	if err := s.store.Put(ctx, memberPath(orgID, userID), target); err != nil {
		return nil, translate(err)
	}

	return target, nil
}

func (s *Storage) GetMembership(ctx context.Context, orgID, userID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetMembership")
	defer span.End()

	var m types.Membership
	if err := s.store.Get(ctx, memberPath(orgID, userID), &m); err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

// ListMembers returns the organization's members sorted by join time
// for determinism; the tree itself has no meaningful order.
func (s *Storage) ListMembers(ctx context.Context, orgID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListMembers")
	defer span.End()

	docs, err := s.store.List(ctx, membersPath(orgID))
	if err != nil {
		return nil, translate(err)
	}

	var members []*types.Membership
	for _, d := range docs {
		var m types.Membership
		if err := json.Unmarshal(d.Body, &m); err != nil {
			return nil, fmt.Errorf("failed to decode membership at %s: %w", d.Path, err)
		}
		members = append(members, &m)
	}

	sort.Slice(members, func(i, j int) bool {
		if members[i].JoinedAt.Equal(members[j].JoinedAt) {
			return members[i].UserID < members[j].UserID
		}
		return members[i].JoinedAt.Before(members[j].JoinedAt)
	})

	return members, nil
}

func (s *Storage) ListUserOrganizations(ctx context.Context, userID string) ([]*types.UserOrgPointer, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListUserOrganizations")
	defer span.End()

	docs, err := s.store.List(ctx, userOrgsPath(userID))
	if err != nil {
		return nil, translate(err)
	}

	var pointers []*types.UserOrgPointer
	for _, d := range docs {
		var p types.UserOrgPointer
		if err := json.Unmarshal(d.Body, &p); err != nil {
			return nil, fmt.Errorf("failed to decode membership pointer at %s: %w", d.Path, err)
		}
		pointers = append(pointers, &p)
	}
	return pointers, nil
}

func (s *Storage) GetUser(ctx context.Context, userID string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetUser")
	defer span.End()

	var u types.User
	if err := s.store.Get(ctx, userPath(userID), &u); err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *Storage) PutUser(ctx context.Context, user *types.User) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.PutUser")
	defer span.End()

	return translate(s.store.Put(ctx, userPath(user.ID), user))
}

func (s *Storage) GetClass(ctx context.Context, orgID, classID string) (*types.Class, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetClass")
	defer span.End()

	var c types.Class
	if err := s.store.Get(ctx, classPath(orgID, classID), &c); err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (s *Storage) PutClass(ctx context.Context, class *types.Class) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.PutClass")
	defer span.End()

	if class.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate class ID: %w", err)
		}
		class.ID = id.String()
	}
	if class.CreatedAt.IsZero() {
		class.CreatedAt = time.Now().UTC()
	}

	return translate(s.store.Put(ctx, classPath(class.OrgID, class.ID), class))
}

func (s *Storage) DeleteClass(ctx context.Context, orgID, classID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.DeleteClass")
	defer span.End()

	return translate(s.store.Delete(ctx, classPath(orgID, classID)))
}

func (s *Storage) ListClasses(ctx context.Context, orgID string) ([]*types.Class, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListClasses")
	defer span.End()

	docs, err := s.store.List(ctx, classesPath(orgID))
	if err != nil {
		return nil, translate(err)
	}

	var classes []*types.Class
	for _, d := range docs {
		var c types.Class
		if err := json.Unmarshal(d.Body, &c); err != nil {
			return nil, fmt.Errorf("failed to decode class at %s: %w", d.Path, err)
		}
		classes = append(classes, &c)
	}
	return classes, nil
}

func (s *Storage) GetInvite(ctx context.Context, code string) (*types.InviteCode, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetInvite")
	defer span.End()

	var invite types.InviteCode
	if err := s.store.Get(ctx, invitePath(code), &invite); err != nil {
		if errors.Is(err, docstore.ErrNoDocument) {
			return nil, ErrCodeNotFound
		}
		return nil, translate(err)
	}
	return &invite, nil
}

func (s *Storage) PutInvite(ctx context.Context, invite *types.InviteCode) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.PutInvite")
	defer span.End()

	return translate(s.store.Put(ctx, invitePath(invite.Code), invite))
}

func (s *Storage) DeleteInvite(ctx context.Context, code string) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.DeleteInvite")
	defer span.End()

	return translate(s.store.Delete(ctx, invitePath(code)))
}

func (s *Storage) ListInvitesByOrg(ctx context.Context, orgID string) ([]*types.InviteCode, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListInvitesByOrg")
	defer span.End()

	docs, err := s.store.List(ctx, invitesRoot)
	if err != nil {
		return nil, translate(err)
	}

	var invites []*types.InviteCode
	for _, d := range docs {
		var invite types.InviteCode
		if err := json.Unmarshal(d.Body, &invite); err != nil {
			return nil, fmt.Errorf("failed to decode invite at %s: %w", d.Path, err)
		}
		if invite.OrgID == orgID {
			invites = append(invites, &invite)
		}
	}
	return invites, nil
}
