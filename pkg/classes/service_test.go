// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package classes

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/classroom-service/internal/storage"
	"github.com/canonical/classroom-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package classes -destination ./mock_classes.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package classes -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package classes -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package classes -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type serviceMocks struct {
	storage  *MockStorageInterface
	tracer   *MockTracingInterface
	monitor  *MockMonitorInterface
	logger   *MockLoggerInterface
	security *MockSecurityLoggerInterface
}

func newServiceMocks(ctrl *gomock.Controller) serviceMocks {
	return serviceMocks{
		storage:  NewMockStorageInterface(ctrl),
		tracer:   NewMockTracingInterface(ctrl),
		monitor:  NewMockMonitorInterface(ctrl),
		logger:   NewMockLoggerInterface(ctrl),
		security: NewMockSecurityLoggerInterface(ctrl),
	}
}

func (m serviceMocks) expectSpan(name string) {
	m.tracer.EXPECT().Start(gomock.Any(), name).
		Return(context.Background(), trace.SpanFromContext(context.Background()))
}

func TestService_EnsureDefaultClass(t *testing.T) {
	orgID := "org-1"
	existing := &types.Class{ID: "default", OrgID: orgID, Name: "Acme", IsDefault: true}

	testCases := []struct {
		name        string
		setupMocks  func(serviceMocks)
		expectedID  string
		expectedErr bool
	}{
		{
			name: "returns existing default",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().ListClasses(gomock.Any(), orgID).Return([]*types.Class{existing}, nil)
			},
			expectedID: "default",
		},
		{
			name: "creates default from organization name",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().ListClasses(gomock.Any(), orgID).Return(nil, nil)
				m.storage.EXPECT().GetOrganization(gomock.Any(), orgID).Return(&types.Organization{ID: orgID, Name: "Acme"}, nil)
				m.storage.EXPECT().PutClass(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, c *types.Class) error {
						if !c.IsDefault {
							return errors.New("class must be the default")
						}
						if c.Name != "Acme" {
							return errors.New("default class should carry the organization name")
						}
						return nil
					})
				m.logger.EXPECT().Infof(gomock.Any(), gomock.Any())
			},
			expectedID: "default",
		},
		{
			name: "storage failure",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().ListClasses(gomock.Any(), orgID).Return(nil, errors.New("boom"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			m.expectSpan("classes.Service.EnsureDefaultClass")
			tc.setupMocks(m)

			s := NewService(m.storage, m.tracer, m.monitor, m.logger)
			class, err := s.EnsureDefaultClass(context.Background(), orgID)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if class.ID != tc.expectedID {
				t.Errorf("expected class %s, got %s", tc.expectedID, class.ID)
			}
		})
	}
}

func TestService_Create(t *testing.T) {
	orgID := "org-1"

	testCases := []struct {
		name            string
		creatorRole     string
		expectedErr     error
		creatorTeaching bool
	}{
		{
			name:            "teacher creates and runs the class",
			creatorRole:     "teacher",
			creatorTeaching: true,
		},
		{
			name:        "admin creates without joining the roster",
			creatorRole: "admin",
		},
		{
			name:        "student may not create",
			creatorRole: "student",
			expectedErr: storage.ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			m.expectSpan("classes.Service.Create")
			m.storage.EXPECT().GetMembership(gomock.Any(), orgID, "creator").
				Return(&types.Membership{UserID: "creator", OrgID: orgID, Role: tc.creatorRole, Status: types.MembershipActive}, nil)

			if tc.expectedErr == nil {
				m.storage.EXPECT().PutClass(gomock.Any(), gomock.Any()).Return(nil)
			} else {
				m.logger.EXPECT().Security().Return(m.security)
				m.security.EXPECT().AuthzFailure("creator", gomock.Any())
			}

			s := NewService(m.storage, m.tracer, m.monitor, m.logger)
			class, err := s.Create(context.Background(), orgID, "Algebra", "creator")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			teaching := len(class.TeacherIDs) == 1 && class.TeacherIDs[0] == "creator"
			if teaching != tc.creatorTeaching {
				t.Errorf("creator on teacher roster = %v, expected %v", teaching, tc.creatorTeaching)
			}
		})
	}
}

func TestService_Delete(t *testing.T) {
	orgID := "org-1"

	testCases := []struct {
		name        string
		class       *types.Class
		role        string
		onRoster    bool
		expectedErr error
	}{
		{
			name:        "default class is undeletable",
			class:       &types.Class{ID: "default", OrgID: orgID, IsDefault: true},
			role:        "admin",
			expectedErr: storage.ErrUndeletable,
		},
		{
			name:  "admin deletes any class",
			class: &types.Class{ID: "c1", OrgID: orgID},
			role:  "admin",
		},
		{
			name:     "teacher deletes own class",
			class:    &types.Class{ID: "c1", OrgID: orgID},
			role:     "teacher",
			onRoster: true,
		},
		{
			name:        "teacher cannot delete another teacher's class",
			class:       &types.Class{ID: "c1", OrgID: orgID},
			role:        "teacher",
			expectedErr: storage.ErrForbidden,
		},
		{
			name:        "student cannot delete",
			class:       &types.Class{ID: "c1", OrgID: orgID},
			role:        "student",
			expectedErr: storage.ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			class := *tc.class
			if tc.onRoster {
				class.TeacherIDs = []string{"requester"}
			}

			m := newServiceMocks(ctrl)
			m.expectSpan("classes.Service.Delete")
			m.storage.EXPECT().GetClass(gomock.Any(), orgID, class.ID).Return(&class, nil)

			if !class.IsDefault {
				m.storage.EXPECT().GetMembership(gomock.Any(), orgID, "requester").
					Return(&types.Membership{UserID: "requester", OrgID: orgID, Role: tc.role, Status: types.MembershipActive}, nil)
			}

			if tc.expectedErr == nil {
				m.storage.EXPECT().DeleteClass(gomock.Any(), orgID, class.ID).Return(nil)
			} else if !errors.Is(tc.expectedErr, storage.ErrUndeletable) {
				m.logger.EXPECT().Security().Return(m.security)
				m.security.EXPECT().AuthzFailure("requester", "delete_class")
			}

			s := NewService(m.storage, m.tracer, m.monitor, m.logger)
			err := s.Delete(context.Background(), orgID, class.ID, "requester")

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

func TestService_AddStudents_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := "org-1"
	class := &types.Class{ID: "c1", OrgID: orgID, StudentIDs: []string{"s1", "s2"}}

	m := newServiceMocks(ctrl)
	m.expectSpan("classes.Service.AddStudents")
	m.storage.EXPECT().GetClass(gomock.Any(), orgID, "c1").Return(class, nil)
	// no PutClass: every id is already on the roster

	s := NewService(m.storage, m.tracer, m.monitor, m.logger)
	got, err := s.AddStudents(context.Background(), orgID, "c1", []string{"s1", "s2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.StudentIDs) != 2 {
		t.Errorf("expected roster unchanged, got %v", got.StudentIDs)
	}
}

func TestService_AddStudents_SkipsPresent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := "org-1"
	class := &types.Class{ID: "c1", OrgID: orgID, StudentIDs: []string{"s1"}}

	m := newServiceMocks(ctrl)
	m.expectSpan("classes.Service.AddStudents")
	m.storage.EXPECT().GetClass(gomock.Any(), orgID, "c1").Return(class, nil)
	m.storage.EXPECT().PutClass(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c *types.Class) error {
			if len(c.StudentIDs) != 2 {
				return errors.New("expected exactly one new student")
			}
			return nil
		})

	s := NewService(m.storage, m.tracer, m.monitor, m.logger)
	if _, err := s.AddStudents(context.Background(), orgID, "c1", []string{"s1", "s2"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_AssignContent_SkipsExistingPairs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := "org-1"
	c1 := &types.Class{ID: "c1", OrgID: orgID, Assignments: map[string]types.Assignment{
		"content-1": {ContentID: "content-1"},
	}}
	c2 := &types.Class{ID: "c2", OrgID: orgID}

	m := newServiceMocks(ctrl)
	m.expectSpan("classes.Service.AssignContent")
	m.storage.EXPECT().GetMembership(gomock.Any(), orgID, "teacher-1").
		Return(&types.Membership{UserID: "teacher-1", OrgID: orgID, Role: "teacher", Status: types.MembershipActive}, nil)
	m.storage.EXPECT().GetClass(gomock.Any(), orgID, "c1").Return(c1, nil)
	m.storage.EXPECT().PutClass(gomock.Any(), c1).DoAndReturn(
		func(_ context.Context, c *types.Class) error {
			if len(c.Assignments) != 2 {
				return errors.New("expected content-2 added next to content-1")
			}
			return nil
		})
	m.storage.EXPECT().GetClass(gomock.Any(), orgID, "c2").Return(c2, nil)
	m.storage.EXPECT().PutClass(gomock.Any(), c2).DoAndReturn(
		func(_ context.Context, c *types.Class) error {
			if len(c.Assignments) != 2 {
				return errors.New("expected both content items")
			}
			return nil
		})

	s := NewService(m.storage, m.tracer, m.monitor, m.logger)
	err := s.AssignContent(context.Background(), orgID, []string{"c1", "c2"}, []string{"content-1", "content-2"}, "teacher-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_SwitchActiveClass(t *testing.T) {
	orgID := "org-1"
	class := &types.Class{ID: "c1", OrgID: orgID, StudentIDs: []string{"s1"}}

	testCases := []struct {
		name        string
		userID      string
		role        string
		expectedErr error
	}{
		{
			name:   "roster member switches",
			userID: "s1",
		},
		{
			name:   "admin switches for oversight",
			userID: "admin-1",
			role:   "admin",
		},
		{
			name:        "off-roster student is refused",
			userID:      "s2",
			role:        "student",
			expectedErr: storage.ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			m.expectSpan("classes.Service.SwitchActiveClass")
			m.storage.EXPECT().GetClass(gomock.Any(), orgID, "c1").Return(class, nil)

			if tc.role != "" {
				m.storage.EXPECT().GetMembership(gomock.Any(), orgID, tc.userID).
					Return(&types.Membership{UserID: tc.userID, OrgID: orgID, Role: tc.role, Status: types.MembershipActive}, nil)
			}

			if tc.expectedErr == nil {
				m.storage.EXPECT().GetUser(gomock.Any(), tc.userID).Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().PutUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *types.User) error {
						if u.CurrentClasses[orgID] != "c1" {
							return errors.New("current class pointer not set")
						}
						return nil
					})
			} else {
				m.logger.EXPECT().Security().Return(m.security)
				m.security.EXPECT().AuthzFailure(tc.userID, "switch_active_class")
			}

			s := NewService(m.storage, m.tracer, m.monitor, m.logger)
			err := s.SwitchActiveClass(context.Background(), tc.userID, orgID, "c1")

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
