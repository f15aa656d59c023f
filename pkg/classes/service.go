// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package classes

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/canonical/classroom-service/internal/logging"
	"github.com/canonical/classroom-service/internal/monitoring"
	"github.com/canonical/classroom-service/internal/roles"
	"github.com/canonical/classroom-service/internal/storage"
	"github.com/canonical/classroom-service/internal/tracing"
	"github.com/canonical/classroom-service/internal/types"
)

// defaultClassID is a fixed id so concurrent EnsureDefaultClass calls
// converge on the same document instead of racing to create duplicates.
const defaultClassID = "default"

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// EnsureDefaultClass lazily creates the organization's default class.
// Idempotent: when a default class exists it is returned as is.
func (s *Service) EnsureDefaultClass(ctx context.Context, orgID string) (*types.Class, error) {
	ctx, span := s.tracer.Start(ctx, "classes.Service.EnsureDefaultClass")
	defer span.End()

	existing, err := s.storage.ListClasses(ctx, orgID)
	if err != nil {
		return nil, err
	}
	for _, c := range existing {
		if c.IsDefault {
			return c, nil
		}
	}

	org, err := s.storage.GetOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}

	class := &types.Class{
		ID:        defaultClassID,
		OrgID:     orgID,
		Name:      org.Name,
		IsDefault: true,
	}
	if err := s.storage.PutClass(ctx, class); err != nil {
		return nil, err
	}

	s.logger.Infof("created default class for organization %s", orgID)
	return class, nil
}

func (s *Service) Create(ctx context.Context, orgID, name, creatorID string) (*types.Class, error) {
	ctx, span := s.tracer.Start(ctx, "classes.Service.Create")
	defer span.End()

	role, err := s.requireRole(ctx, orgID, creatorID, roles.RoleTeacher)
	if err != nil {
		return nil, err
	}

	class := &types.Class{
		OrgID:     orgID,
		Name:      name,
		CreatorID: creatorID,
	}
	// a creating teacher runs the class; admins and developers oversee
	// every class already
	if role == roles.RoleTeacher {
		class.TeacherIDs = []string{creatorID}
	}

	if err := s.storage.PutClass(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

func (s *Service) Delete(ctx context.Context, orgID, classID, requestedBy string) error {
	ctx, span := s.tracer.Start(ctx, "classes.Service.Delete")
	defer span.End()

	class, err := s.storage.GetClass(ctx, orgID, classID)
	if err != nil {
		return err
	}
	if class.IsDefault {
		return storage.ErrUndeletable
	}

	m, err := s.storage.GetMembership(ctx, orgID, requestedBy)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.ErrForbidden
		}
		return err
	}

	switch roles.Role(m.Role) {
	case roles.RoleAdmin, roles.RoleDeveloper:
		// may delete any class
	case roles.RoleTeacher:
		if !slices.Contains(class.TeacherIDs, requestedBy) {
			s.logger.Security().AuthzFailure(requestedBy, "delete_class")
			return storage.ErrForbidden
		}
	default:
		s.logger.Security().AuthzFailure(requestedBy, "delete_class")
		return storage.ErrForbidden
	}

	// the class document carries rosters and assignments, deleting it
	// removes them with it
	return s.storage.DeleteClass(ctx, orgID, classID)
}

func (s *Service) Get(ctx context.Context, orgID, classID string) (*types.Class, error) {
	ctx, span := s.tracer.Start(ctx, "classes.Service.Get")
	defer span.End()

	return s.storage.GetClass(ctx, orgID, classID)
}

func (s *Service) List(ctx context.Context, orgID string) ([]*types.Class, error) {
	ctx, span := s.tracer.Start(ctx, "classes.Service.List")
	defer span.End()

	return s.storage.ListClasses(ctx, orgID)
}

// AddStudents adds the given users to the class roster. Already-present
// ids are skipped, re-adding is a no-op rather than an error.
func (s *Service) AddStudents(ctx context.Context, orgID, classID string, userIDs []string) (*types.Class, error) {
	ctx, span := s.tracer.Start(ctx, "classes.Service.AddStudents")
	defer span.End()

	return s.addToRoster(ctx, orgID, classID, userIDs, false)
}

func (s *Service) AddTeachers(ctx context.Context, orgID, classID string, userIDs []string) (*types.Class, error) {
	ctx, span := s.tracer.Start(ctx, "classes.Service.AddTeachers")
	defer span.End()

	return s.addToRoster(ctx, orgID, classID, userIDs, true)
}

func (s *Service) addToRoster(ctx context.Context, orgID, classID string, userIDs []string, teachers bool) (*types.Class, error) {
	class, err := s.storage.GetClass(ctx, orgID, classID)
	if err != nil {
		return nil, err
	}

	set := class.StudentIDs
	if teachers {
		set = class.TeacherIDs
	}

	changed := false
	for _, id := range userIDs {
		if slices.Contains(set, id) {
			continue
		}
		set = append(set, id)
		changed = true
	}
	if !changed {
		return class, nil
	}

	if teachers {
		class.TeacherIDs = set
	} else {
		class.StudentIDs = set
	}

	if err := s.storage.PutClass(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

// RemoveMember removes the user from whichever roster holds it.
func (s *Service) RemoveMember(ctx context.Context, orgID, classID, userID string) (*types.Class, error) {
	ctx, span := s.tracer.Start(ctx, "classes.Service.RemoveMember")
	defer span.End()

	class, err := s.storage.GetClass(ctx, orgID, classID)
	if err != nil {
		return nil, err
	}

	students := slices.DeleteFunc(class.StudentIDs, func(id string) bool { return id == userID })
	teachers := slices.DeleteFunc(class.TeacherIDs, func(id string) bool { return id == userID })
	if len(students) == len(class.StudentIDs) && len(teachers) == len(class.TeacherIDs) {
		return class, nil
	}
	class.StudentIDs = students
	class.TeacherIDs = teachers

	if err := s.storage.PutClass(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

// AssignContent assigns every content item to every class. Pairs that
// already exist are skipped silently, so re-running an interrupted
// assignment is safe.
func (s *Service) AssignContent(ctx context.Context, orgID string, classIDs, contentIDs []string, requestedBy string) error {
	ctx, span := s.tracer.Start(ctx, "classes.Service.AssignContent")
	defer span.End()

	if _, err := s.requireRole(ctx, orgID, requestedBy, roles.RoleTeacher); err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, classID := range classIDs {
		class, err := s.storage.GetClass(ctx, orgID, classID)
		if err != nil {
			return err
		}

		changed := false
		if class.Assignments == nil {
			class.Assignments = make(map[string]types.Assignment)
		}
		for _, contentID := range contentIDs {
			if _, ok := class.Assignments[contentID]; ok {
				continue
			}
			class.Assignments[contentID] = types.Assignment{
				ContentID:  contentID,
				AssignedBy: requestedBy,
				AssignedAt: now,
			}
			changed = true
		}

		if !changed {
			continue
		}
		if err := s.storage.PutClass(ctx, class); err != nil {
			return err
		}
	}

	return nil
}

func (s *Service) RemoveContent(ctx context.Context, orgID, classID, contentID string) (*types.Class, error) {
	ctx, span := s.tracer.Start(ctx, "classes.Service.RemoveContent")
	defer span.End()

	class, err := s.storage.GetClass(ctx, orgID, classID)
	if err != nil {
		return nil, err
	}

	if _, ok := class.Assignments[contentID]; !ok {
		return class, nil
	}
	delete(class.Assignments, contentID)

	if err := s.storage.PutClass(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

// SwitchActiveClass points the user's per-organization current-class
// pointer at classID. The class must belong to the organization and the
// user must be on one of its rosters; admins and developers may switch
// into any class for oversight.
func (s *Service) SwitchActiveClass(ctx context.Context, userID, orgID, classID string) error {
	ctx, span := s.tracer.Start(ctx, "classes.Service.SwitchActiveClass")
	defer span.End()

	class, err := s.storage.GetClass(ctx, orgID, classID)
	if err != nil {
		return err
	}

	if !slices.Contains(class.StudentIDs, userID) && !slices.Contains(class.TeacherIDs, userID) {
		m, err := s.storage.GetMembership(ctx, orgID, userID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return storage.ErrForbidden
			}
			return err
		}
		switch roles.Role(m.Role) {
		case roles.RoleAdmin, roles.RoleDeveloper:
		default:
			s.logger.Security().AuthzFailure(userID, "switch_active_class")
			return storage.ErrForbidden
		}
	}

	user, err := s.storage.GetUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return err
		}
		user = &types.User{ID: userID}
	}
	if user.CurrentClasses == nil {
		user.CurrentClasses = make(map[string]string)
	}
	user.CurrentClasses[orgID] = class.ID

	return s.storage.PutUser(ctx, user)
}

// requireRole resolves the requester's membership and checks it holds
// at least the given privilege. Returns the requester's role.
func (s *Service) requireRole(ctx context.Context, orgID, userID string, atLeast roles.Role) (roles.Role, error) {
	m, err := s.storage.GetMembership(ctx, orgID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return roles.RoleUnranked, storage.ErrForbidden
		}
		return roles.RoleUnranked, err
	}

	role := roles.Role(m.Role)
	if !roles.CanActOn(role, atLeast) {
		s.logger.Security().AuthzFailure(userID, "class_management")
		return roles.RoleUnranked, storage.ErrForbidden
	}
	return role, nil
}
