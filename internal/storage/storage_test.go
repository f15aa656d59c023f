// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/canonical/classroom-service/internal/docstore"
	"github.com/canonical/classroom-service/internal/logging"
	"github.com/canonical/classroom-service/internal/monitoring"
	"github.com/canonical/classroom-service/internal/roles"
	"github.com/canonical/classroom-service/internal/tracing"
	"github.com/canonical/classroom-service/internal/types"
)

func newTestStorage() (*Storage, *docstore.InMemoryClient) {
	store := docstore.NewInMemoryClient()
	s := NewStorage(store, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return s, store
}

func mustCreateOrg(t *testing.T, s *Storage, name string, isDefault bool) *types.Organization {
	t.Helper()
	org, err := s.CreateOrganization(context.Background(), &types.Organization{
		Name:      name,
		OwnerID:   "owner-1",
		IsDefault: isDefault,
	})
	if err != nil {
		t.Fatalf("failed to create org: %v", err)
	}
	return org
}

func TestAddMember(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorage()
	org := mustCreateOrg(t, s, "Acme", false)

	m, err := s.AddMember(ctx, org.ID, "user-1", roles.RoleTeacher)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Status != types.MembershipActive {
		t.Errorf("expected active membership, got %s", m.Status)
	}
	if m.Role != string(roles.RoleTeacher) {
		t.Errorf("expected teacher role, got %s", m.Role)
	}

	// symmetric records on both sides
	if _, err := s.GetMembership(ctx, org.ID, "user-1"); err != nil {
		t.Errorf("org-side record missing: %v", err)
	}
	pointers, err := s.ListUserOrganizations(ctx, "user-1")
	if err != nil || len(pointers) != 1 || pointers[0].OrgID != org.ID {
		t.Errorf("user-side pointer missing: %v %v", pointers, err)
	}

	// duplicate add
	if _, err := s.AddMember(ctx, org.ID, "user-1", roles.RoleStudent); !errors.Is(err, ErrAlreadyMember) {
		t.Errorf("expected ErrAlreadyMember, got %v", err)
	}
}

func TestAddMember_UnrankedRole(t *testing.T) {
	s, _ := newTestStorage()
	org := mustCreateOrg(t, s, "Acme", false)

	if _, err := s.AddMember(context.Background(), org.ID, "user-1", roles.Role("superuser")); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden for unranked role, got %v", err)
	}
}

func TestAddMember_PartialWriteThenReconcile(t *testing.T) {
	ctx := context.Background()
	s, store := newTestStorage()
	org := mustCreateOrg(t, s, "Acme", false)

	// user-side write fails, org side stays pending
	store.FailNextPut(userOrgPath("user-1", org.ID), errors.New("write failed"))
	if _, err := s.AddMember(ctx, org.ID, "user-1", roles.RoleStudent); !errors.Is(err, ErrPartialWrite) {
		t.Fatalf("expected ErrPartialWrite, got %v", err)
	}

	m, err := s.GetMembership(ctx, org.ID, "user-1")
	if err != nil {
		t.Fatalf("org-side record should exist after partial write: %v", err)
	}
	if m.Status != types.MembershipPending {
		t.Errorf("expected pending status, got %s", m.Status)
	}
	joined := m.JoinedAt

	// re-running the add finishes the remaining steps
	m, err = s.AddMember(ctx, org.ID, "user-1", roles.RoleStudent)
	if err != nil {
		t.Fatalf("re-run should reconcile: %v", err)
	}
	if m.Status != types.MembershipActive {
		t.Errorf("expected active status after re-run, got %s", m.Status)
	}
	if !m.JoinedAt.Equal(joined) {
		t.Errorf("re-run must keep the original join time")
	}
}

func TestRemoveMember(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorage()
	org := mustCreateOrg(t, s, "Acme", false)

	if _, err := s.AddMember(ctx, org.ID, "user-1", roles.RoleStudent); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name        string
		userID      string
		requestedBy string
		force       bool
		expectedErr error
	}{
		{"self removal forbidden", "user-1", "user-1", false, ErrSelfRemovalForbidden},
		{"not a member", "ghost", "admin-1", false, ErrNotAMember},
		{"non-member self removal reports not a member", "ghost", "ghost", false, ErrNotAMember},
		{"success", "user-1", "admin-1", false, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := s.RemoveMember(ctx, org.ID, tc.userID, tc.requestedBy, tc.force)
			if !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected %v, got %v", tc.expectedErr, err)
			}
		})
	}

	// both sides gone
	if _, err := s.GetMembership(ctx, org.ID, "user-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("org-side record should be gone, got %v", err)
	}
	pointers, _ := s.ListUserOrganizations(ctx, "user-1")
	if len(pointers) != 0 {
		t.Errorf("user-side pointer should be gone")
	}
}

func TestRemoveMember_SelfWithForce(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorage()
	org := mustCreateOrg(t, s, "Acme", false)

	if _, err := s.AddMember(ctx, org.ID, "user-1", roles.RoleStudent); err != nil {
		t.Fatal(err)
	}
	if err := s.RemoveMember(ctx, org.ID, "user-1", "user-1", true); err != nil {
		t.Errorf("forced self removal should succeed: %v", err)
	}
}

func TestRemoveMember_DefaultOrg(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorage()
	org := mustCreateOrg(t, s, "Default", true)

	if _, err := s.AddMember(ctx, org.ID, "user-1", roles.RoleStudent); err != nil {
		t.Fatal(err)
	}
	err := s.RemoveMember(ctx, org.ID, "user-1", "admin-1", true)
	if !errors.Is(err, ErrDefaultOrgRemovalForbidden) {
		t.Errorf("expected ErrDefaultOrgRemovalForbidden, got %v", err)
	}
}

func TestUpdateRole(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorage()
	org := mustCreateOrg(t, s, "Acme", false)

	if _, err := s.AddMember(ctx, org.ID, "admin-a", roles.RoleAdmin); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddMember(ctx, org.ID, "teacher-b", roles.RoleTeacher); err != nil {
		t.Fatal(err)
	}

	// admin can promote a teacher all the way to admin
	m, err := s.UpdateRole(ctx, org.ID, "teacher-b", roles.RoleAdmin, "admin-a")
	if err != nil {
		t.Fatalf("admin promoting teacher should succeed: %v", err)
	}
	if m.Role != string(roles.RoleAdmin) {
		t.Errorf("expected admin role, got %s", m.Role)
	}

	// demote back for the remaining cases
	if _, err := s.UpdateRole(ctx, org.ID, "teacher-b", roles.RoleTeacher, "admin-a"); err != nil {
		t.Fatal(err)
	}

	// teacher cannot act on an admin
	if _, err := s.UpdateRole(ctx, org.ID, "admin-a", roles.RoleStudent, "teacher-b"); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}

	// no-op change
	if _, err := s.UpdateRole(ctx, org.ID, "teacher-b", roles.RoleTeacher, "admin-a"); !errors.Is(err, ErrNoOpRoleChange) {
		t.Errorf("expected ErrNoOpRoleChange, got %v", err)
	}

	// non-member requester
	if _, err := s.UpdateRole(ctx, org.ID, "teacher-b", roles.RoleStudent, "ghost"); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden for non-member requester, got %v", err)
	}

	// absent target
	if _, err := s.UpdateRole(ctx, org.ID, "ghost", roles.RoleStudent, "admin-a"); !errors.Is(err, ErrNotAMember) {
		t.Errorf("expected ErrNotAMember, got %v", err)
	}
}

func TestListMembers_SortedByJoinTime(t *testing.T) {
	ctx := context.Background()
	s, store := newTestStorage()
	org := mustCreateOrg(t, s, "Acme", false)

	// write records directly to control join timestamps
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, userID := range []string{"charlie", "alice", "bob"} {
		m := &types.Membership{
			UserID:   userID,
			OrgID:    org.ID,
			Role:     string(roles.RoleStudent),
			Status:   types.MembershipActive,
			JoinedAt: base.Add(time.Duration(2-i) * time.Hour),
		}
		if err := store.Put(ctx, memberPath(org.ID, userID), m); err != nil {
			t.Fatal(err)
		}
	}

	members, err := s.ListMembers(ctx, org.ID)
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{"bob", "alice", "charlie"}
	if len(members) != len(expected) {
		t.Fatalf("expected %d members, got %d", len(expected), len(members))
	}
	for i, userID := range expected {
		if members[i].UserID != userID {
			t.Errorf("position %d: expected %s, got %s", i, userID, members[i].UserID)
		}
	}
}

func TestFindOrganizationByName_CaseSensitive(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorage()
	mustCreateOrg(t, s, "MathClub", false)

	if _, err := s.FindOrganizationByName(ctx, "MathClub"); err != nil {
		t.Errorf("exact match should be found: %v", err)
	}
	if _, err := s.FindOrganizationByName(ctx, "mathclub"); !errors.Is(err, ErrNotFound) {
		t.Errorf("name matching must be case-sensitive, got %v", err)
	}
}
