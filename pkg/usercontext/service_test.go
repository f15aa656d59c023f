// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package usercontext

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/classroom-service/internal/storage"
	"github.com/canonical/classroom-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package usercontext -destination ./mock_usercontext.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package usercontext -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package usercontext -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package usercontext -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type serviceMocks struct {
	storage *MockStorageInterface
	classes *MockClassEnsurerInterface
	tracer  *MockTracingInterface
	monitor *MockMonitorInterface
	logger  *MockLoggerInterface
}

func newServiceMocks(ctrl *gomock.Controller) serviceMocks {
	return serviceMocks{
		storage: NewMockStorageInterface(ctrl),
		classes: NewMockClassEnsurerInterface(ctrl),
		tracer:  NewMockTracingInterface(ctrl),
		monitor: NewMockMonitorInterface(ctrl),
		logger:  NewMockLoggerInterface(ctrl),
	}
}

func (m serviceMocks) expectSpan(name string) {
	m.tracer.EXPECT().Start(gomock.Any(), name).
		Return(context.Background(), trace.SpanFromContext(context.Background()))
}

func TestService_ResolveContext_NoMemberships(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)
	m.expectSpan("usercontext.Service.ResolveContext")
	m.storage.EXPECT().ListUserOrganizations(gomock.Any(), "u1").Return(nil, nil)

	s := NewService(m.storage, m.classes, TiebreakLowestID, m.tracer, m.monitor, m.logger)
	uc, err := s.ResolveContext(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !uc.Empty() {
		t.Errorf("expected empty context, got %+v", uc)
	}
	if uc.UserID != "u1" {
		t.Errorf("expected user id preserved, got %q", uc.UserID)
	}
}

func TestService_ResolveContext_PrimaryPointerWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pointers := []*types.UserOrgPointer{
		{OrgID: "org-a"},
		{OrgID: "org-b"},
	}
	user := &types.User{ID: "u1", PrimaryOrgID: "org-b", CurrentClasses: map[string]string{"org-b": "c9"}}

	m := newServiceMocks(ctrl)
	m.expectSpan("usercontext.Service.ResolveContext")
	m.storage.EXPECT().ListUserOrganizations(gomock.Any(), "u1").Return(pointers, nil)
	m.storage.EXPECT().GetUser(gomock.Any(), "u1").Return(user, nil)
	m.storage.EXPECT().GetMembership(gomock.Any(), "org-b", "u1").
		Return(&types.Membership{UserID: "u1", OrgID: "org-b", Role: "teacher", Status: types.MembershipActive}, nil)
	m.storage.EXPECT().GetClass(gomock.Any(), "org-b", "c9").
		Return(&types.Class{ID: "c9", OrgID: "org-b", Name: "Algebra"}, nil)

	s := NewService(m.storage, m.classes, TiebreakLowestID, m.tracer, m.monitor, m.logger)
	uc, err := s.ResolveContext(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uc.OrgID != "org-b" || uc.Role != "teacher" || uc.ClassID != "c9" {
		t.Errorf("unexpected context: %+v", uc)
	}
}

func TestService_ResolveContext_Tiebreaks(t *testing.T) {
	now := time.Now().UTC()
	pointers := []*types.UserOrgPointer{
		{OrgID: "org-b", JoinedAt: now.Add(-2 * time.Hour)},
		{OrgID: "org-a", JoinedAt: now.Add(-1 * time.Hour)},
	}

	testCases := []struct {
		name        string
		tiebreak    Tiebreak
		expectedOrg string
	}{
		{
			name:        "lowest id",
			tiebreak:    TiebreakLowestID,
			expectedOrg: "org-a",
		},
		{
			name:        "earliest join",
			tiebreak:    TiebreakEarliestJoin,
			expectedOrg: "org-b",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			m.expectSpan("usercontext.Service.ResolveContext")
			m.storage.EXPECT().ListUserOrganizations(gomock.Any(), "u1").Return(pointers, nil)
			m.storage.EXPECT().GetUser(gomock.Any(), "u1").Return(nil, storage.ErrNotFound)
			m.storage.EXPECT().GetMembership(gomock.Any(), tc.expectedOrg, "u1").
				Return(&types.Membership{UserID: "u1", OrgID: tc.expectedOrg, Role: "student", Status: types.MembershipActive}, nil)
			m.classes.EXPECT().EnsureDefaultClass(gomock.Any(), tc.expectedOrg).
				Return(&types.Class{ID: "default", OrgID: tc.expectedOrg, Name: "Org"}, nil)

			s := NewService(m.storage, m.classes, tc.tiebreak, m.tracer, m.monitor, m.logger)
			uc, err := s.ResolveContext(context.Background(), "u1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if uc.OrgID != tc.expectedOrg {
				t.Errorf("expected organization %s, got %s", tc.expectedOrg, uc.OrgID)
			}
			if uc.ClassID != "default" {
				t.Errorf("expected fallback to default class, got %s", uc.ClassID)
			}
		})
	}
}

func TestService_ResolveContext_StaleClassPointer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pointers := []*types.UserOrgPointer{{OrgID: "org-a"}}
	user := &types.User{ID: "u1", PrimaryOrgID: "org-a", CurrentClasses: map[string]string{"org-a": "gone"}}

	m := newServiceMocks(ctrl)
	m.expectSpan("usercontext.Service.ResolveContext")
	m.storage.EXPECT().ListUserOrganizations(gomock.Any(), "u1").Return(pointers, nil)
	m.storage.EXPECT().GetUser(gomock.Any(), "u1").Return(user, nil)
	m.storage.EXPECT().GetMembership(gomock.Any(), "org-a", "u1").
		Return(&types.Membership{UserID: "u1", OrgID: "org-a", Role: "student", Status: types.MembershipActive}, nil)
	m.storage.EXPECT().GetClass(gomock.Any(), "org-a", "gone").Return(nil, storage.ErrNotFound)
	m.logger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
	m.classes.EXPECT().EnsureDefaultClass(gomock.Any(), "org-a").
		Return(&types.Class{ID: "default", OrgID: "org-a", Name: "Org"}, nil)

	s := NewService(m.storage, m.classes, TiebreakLowestID, m.tracer, m.monitor, m.logger)
	uc, err := s.ResolveContext(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uc.ClassID != "default" {
		t.Errorf("expected stale pointer to fall back to default class, got %s", uc.ClassID)
	}
}

func TestService_SetActiveOrg(t *testing.T) {
	testCases := []struct {
		name        string
		membership  *types.Membership
		getErr      error
		expectedErr error
	}{
		{
			name:       "success",
			membership: &types.Membership{UserID: "u1", OrgID: "org-a", Role: "student", Status: types.MembershipActive},
		},
		{
			name:        "not a member",
			getErr:      storage.ErrNotFound,
			expectedErr: storage.ErrNotAMember,
		},
		{
			name:        "pending membership does not count",
			membership:  &types.Membership{UserID: "u1", OrgID: "org-a", Role: "student", Status: types.MembershipPending},
			expectedErr: storage.ErrNotAMember,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			m.expectSpan("usercontext.Service.SetActiveOrg")
			m.storage.EXPECT().GetMembership(gomock.Any(), "org-a", "u1").Return(tc.membership, tc.getErr)

			if tc.expectedErr == nil {
				m.storage.EXPECT().GetUser(gomock.Any(), "u1").Return(&types.User{ID: "u1"}, nil)
				m.storage.EXPECT().PutUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *types.User) error {
						if u.PrimaryOrgID != "org-a" {
							return errors.New("primary organization pointer not set")
						}
						return nil
					})
			}

			s := NewService(m.storage, m.classes, TiebreakLowestID, m.tracer, m.monitor, m.logger)
			err := s.SetActiveOrg(context.Background(), "u1", "org-a")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestParseTiebreak(t *testing.T) {
	if _, err := ParseTiebreak("lowest-id"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := ParseTiebreak("earliest-join"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := ParseTiebreak("coin-flip"); err == nil {
		t.Error("expected error for unknown tiebreak")
	}
}
