// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package usercontext

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/canonical/classroom-service/internal/logging"
	"github.com/canonical/classroom-service/internal/monitoring"
	"github.com/canonical/classroom-service/internal/storage"
	"github.com/canonical/classroom-service/internal/tracing"
	"github.com/canonical/classroom-service/internal/types"
)

// Tiebreak selects the fallback ordering used to pick an organization
// when the user has no primary pointer. The pick is deterministic
// either way.
type Tiebreak string

const (
	TiebreakLowestID     Tiebreak = "lowest-id"
	TiebreakEarliestJoin Tiebreak = "earliest-join"
)

func ParseTiebreak(s string) (Tiebreak, error) {
	switch Tiebreak(s) {
	case TiebreakLowestID, TiebreakEarliestJoin:
		return Tiebreak(s), nil
	default:
		return "", fmt.Errorf("unknown organization tiebreak %q", s)
	}
}

type Service struct {
	storage  StorageInterface
	classes  ClassEnsurerInterface
	tiebreak Tiebreak

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	classes ClassEnsurerInterface,
	tiebreak Tiebreak,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		classes:  classes,
		tiebreak: tiebreak,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// ResolveContext computes the user's active (organization, role, class)
// triple. A user with no memberships gets an empty context back, never
// a silent default organization; the caller must prompt the user to
// join or create one. The role is read from the membership record on
// every call so a role change is visible immediately.
func (s *Service) ResolveContext(ctx context.Context, userID string) (*types.UserContext, error) {
	ctx, span := s.tracer.Start(ctx, "usercontext.Service.ResolveContext")
	defer span.End()

	pointers, err := s.storage.ListUserOrganizations(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(pointers) == 0 {
		return &types.UserContext{UserID: userID}, nil
	}

	user, err := s.storage.GetUser(ctx, userID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	orgID := s.pickOrg(user, pointers)

	m, err := s.storage.GetMembership(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}

	uc := &types.UserContext{
		UserID: userID,
		OrgID:  orgID,
		Role:   m.Role,
	}

	class, err := s.resolveClass(ctx, user, userID, orgID)
	if err != nil {
		return nil, err
	}
	if class != nil {
		uc.ClassID = class.ID
		uc.ClassName = class.Name
	}

	return uc, nil
}

// pickOrg prefers the stored primary pointer when it still matches a
// membership, then falls back to the configured deterministic tiebreak.
func (s *Service) pickOrg(user *types.User, pointers []*types.UserOrgPointer) string {
	if user != nil && user.PrimaryOrgID != "" {
		for _, p := range pointers {
			if p.OrgID == user.PrimaryOrgID {
				return p.OrgID
			}
		}
		s.logger.Debugf("primary organization %s no longer matches a membership", user.PrimaryOrgID)
	}

	picked := make([]*types.UserOrgPointer, len(pointers))
	copy(picked, pointers)

	switch s.tiebreak {
	case TiebreakEarliestJoin:
		sort.Slice(picked, func(i, j int) bool {
			if picked[i].JoinedAt.Equal(picked[j].JoinedAt) {
				return picked[i].OrgID < picked[j].OrgID
			}
			return picked[i].JoinedAt.Before(picked[j].JoinedAt)
		})
	default:
		sort.Slice(picked, func(i, j int) bool { return picked[i].OrgID < picked[j].OrgID })
	}

	return picked[0].OrgID
}

// resolveClass follows the per-(user, org) current-class pointer and
// falls back to the organization's default class, created lazily.
func (s *Service) resolveClass(ctx context.Context, user *types.User, userID, orgID string) (*types.Class, error) {
	if user != nil {
		if classID, ok := user.CurrentClasses[orgID]; ok {
			class, err := s.storage.GetClass(ctx, orgID, classID)
			if err == nil {
				return class, nil
			}
			if !errors.Is(err, storage.ErrNotFound) {
				return nil, err
			}
			// pointer is stale, the class was deleted underneath it
			s.logger.Debugf("current class %s for user %s no longer exists", classID, userID)
		}
	}

	return s.classes.EnsureDefaultClass(ctx, orgID)
}

// SetActiveOrg stores the user's primary organization pointer. The
// organization must hold an active membership for the user.
func (s *Service) SetActiveOrg(ctx context.Context, userID, orgID string) error {
	ctx, span := s.tracer.Start(ctx, "usercontext.Service.SetActiveOrg")
	defer span.End()

	m, err := s.storage.GetMembership(ctx, orgID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.ErrNotAMember
		}
		return err
	}
	if m.Status != types.MembershipActive {
		return storage.ErrNotAMember
	}

	user, err := s.storage.GetUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return err
		}
		user = &types.User{ID: userID}
	}
	user.PrimaryOrgID = orgID

	return s.storage.PutUser(ctx, user)
}
