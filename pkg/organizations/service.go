// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/classroom-service/internal/logging"
	"github.com/canonical/classroom-service/internal/monitoring"
	"github.com/canonical/classroom-service/internal/roles"
	"github.com/canonical/classroom-service/internal/storage"
	"github.com/canonical/classroom-service/internal/tracing"
	"github.com/canonical/classroom-service/internal/types"
)

type Service struct {
	storage  StorageInterface
	resolver ResolverInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	resolver ResolverInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		resolver: resolver,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// Create makes a new organization with ownerID as its first admin.
// Organization names are unique, matched case-sensitively.
func (s *Service) Create(ctx context.Context, name, ownerID string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.Create")
	defer span.End()

	_, err := s.storage.FindOrganizationByName(ctx, name)
	switch {
	case err == nil:
		return nil, storage.ErrDuplicateName
	case !errors.Is(err, storage.ErrNotFound):
		return nil, err
	}

	org, err := s.storage.CreateOrganization(ctx, &types.Organization{
		Name:    name,
		OwnerID: ownerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	if _, err := s.storage.AddMember(ctx, org.ID, ownerID, roles.RoleAdmin); err != nil {
		// the organization record exists, surface the incomplete state
		// instead of hiding it; re-running AddMember reconciles
		s.logger.Errorf("owner membership write failed for new organization %s: %v", org.ID, err)
		return nil, fmt.Errorf("%w: organization created without owner membership", storage.ErrPartialWrite)
	}

	return org, nil
}

// Delete removes the organization and cascades over its invites,
// classes and memberships. The organization record itself goes last so
// an interrupted cascade can be re-run.
func (s *Service) Delete(ctx context.Context, orgID, requestedBy string) error {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.Delete")
	defer span.End()

	org, err := s.storage.GetOrganization(ctx, orgID)
	if err != nil {
		return err
	}
	if org.IsDefault {
		return storage.ErrUndeletable
	}

	requester, err := s.storage.GetMembership(ctx, orgID, requestedBy)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.ErrForbidden
		}
		return err
	}
	if roles.Role(requester.Role) != roles.RoleAdmin {
		s.logger.Security().AuthzFailure(requestedBy, "delete_organization")
		return storage.ErrForbidden
	}

	uc, err := s.resolver.ResolveContext(ctx, requestedBy)
	if err != nil {
		return err
	}
	if uc.OrgID == orgID {
		return storage.ErrCurrentOrgUndeletable
	}

	invites, err := s.storage.ListInvitesByOrg(ctx, orgID)
	if err != nil {
		return err
	}
	for _, invite := range invites {
		if invite.Consumed {
			continue
		}
		if err := s.storage.DeleteInvite(ctx, invite.Code); err != nil {
			return err
		}
	}

	classes, err := s.storage.ListClasses(ctx, orgID)
	if err != nil {
		return err
	}
	for _, class := range classes {
		if err := s.storage.DeleteClass(ctx, orgID, class.ID); err != nil {
			return err
		}
	}

	members, err := s.storage.ListMembers(ctx, orgID)
	if err != nil {
		return err
	}
	for _, m := range members {
		err := s.storage.RemoveMember(ctx, orgID, m.UserID, requestedBy, true)
		if err != nil && !errors.Is(err, storage.ErrNotAMember) {
			return err
		}
		if err := s.clearUserPointers(ctx, m.UserID, orgID); err != nil {
			return err
		}
	}

	return s.storage.DeleteOrganization(ctx, orgID)
}

// Leave is the voluntary counterpart of RemoveMember, callable by the
// member on themself. The default organization models "no organization"
// and cannot be left.
func (s *Service) Leave(ctx context.Context, orgID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.Leave")
	defer span.End()

	member, err := s.storage.GetMembership(ctx, orgID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.ErrNotAMember
		}
		return err
	}

	if err := s.guardLastAdmin(ctx, orgID, member); err != nil {
		return err
	}

	if err := s.storage.RemoveMember(ctx, orgID, userID, userID, true); err != nil {
		return err
	}

	return s.clearUserPointers(ctx, userID, orgID)
}

func (s *Service) Get(ctx context.Context, orgID string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.Get")
	defer span.End()

	return s.storage.GetOrganization(ctx, orgID)
}

func (s *Service) FindByName(ctx context.Context, name string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.FindByName")
	defer span.End()

	return s.storage.FindOrganizationByName(ctx, name)
}

func (s *Service) ListForUser(ctx context.Context, userID string) ([]*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.ListForUser")
	defer span.End()

	pointers, err := s.storage.ListUserOrganizations(ctx, userID)
	if err != nil {
		return nil, err
	}

	var orgs []*types.Organization
	for _, p := range pointers {
		org, err := s.storage.GetOrganization(ctx, p.OrgID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				// dangling pointer from an interrupted cascade
				s.logger.Warnf("membership pointer to missing organization %s for user %s", p.OrgID, userID)
				continue
			}
			return nil, err
		}
		orgs = append(orgs, org)
	}
	return orgs, nil
}

// EnsureDefaultOrganization creates the deployment's default
// organization on first startup. Idempotent.
func (s *Service) EnsureDefaultOrganization(ctx context.Context, name string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.EnsureDefaultOrganization")
	defer span.End()

	orgs, err := s.storage.ListOrganizations(ctx)
	if err != nil {
		return nil, err
	}
	for _, org := range orgs {
		if org.IsDefault {
			return org, nil
		}
	}

	org, err := s.storage.CreateOrganization(ctx, &types.Organization{
		Name:      name,
		IsDefault: true,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infof("created default organization %s (%s)", org.Name, org.ID)
	return org, nil
}

// AddMember is the direct administrative path. The requester must be
// able to act on the role being granted.
func (s *Service) AddMember(ctx context.Context, orgID, userID string, role roles.Role, requestedBy string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.AddMember")
	defer span.End()

	requester, err := s.storage.GetMembership(ctx, orgID, requestedBy)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, storage.ErrForbidden
		}
		return nil, err
	}
	if !roles.CanActOn(roles.Role(requester.Role), role) {
		s.logger.Security().AuthzFailure(requestedBy, "add_member")
		return nil, storage.ErrForbidden
	}

	return s.storage.AddMember(ctx, orgID, userID, role)
}

func (s *Service) RemoveMember(ctx context.Context, orgID, userID, requestedBy string) error {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.RemoveMember")
	defer span.End()

	requester, err := s.storage.GetMembership(ctx, orgID, requestedBy)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.ErrForbidden
		}
		return err
	}

	target, err := s.storage.GetMembership(ctx, orgID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.ErrNotAMember
		}
		return err
	}
	if !roles.CanActOn(roles.Role(requester.Role), roles.Role(target.Role)) {
		s.logger.Security().AuthzFailure(requestedBy, "remove_member")
		return storage.ErrForbidden
	}

	if err := s.guardLastAdmin(ctx, orgID, target); err != nil {
		return err
	}

	if err := s.storage.RemoveMember(ctx, orgID, userID, requestedBy, false); err != nil {
		return err
	}

	return s.clearUserPointers(ctx, userID, orgID)
}

func (s *Service) UpdateMemberRole(ctx context.Context, orgID, userID string, newRole roles.Role, requestedBy string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.UpdateMemberRole")
	defer span.End()

	requester, err := s.storage.GetMembership(ctx, orgID, requestedBy)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, storage.ErrForbidden
		}
		return nil, err
	}

	target, err := s.storage.GetMembership(ctx, orgID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, storage.ErrNotAMember
		}
		return nil, err
	}

	// the policy verdict comes first: an unauthorized requester never
	// learns whether the admin invariant would have blocked the change
	actorRole := roles.Role(requester.Role)
	if !roles.CanActOn(actorRole, roles.Role(target.Role)) || !roles.CanActOn(actorRole, newRole) {
		s.logger.Security().AuthzFailure(requestedBy, "update_role")
		return nil, storage.ErrForbidden
	}

	// demoting the last admin would break the admin invariant
	if newRole != roles.RoleAdmin {
		if err := s.guardLastAdmin(ctx, orgID, target); err != nil {
			return nil, err
		}
	}

	return s.storage.UpdateRole(ctx, orgID, userID, newRole, requestedBy)
}

func (s *Service) ListMembers(ctx context.Context, orgID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.ListMembers")
	defer span.End()

	return s.storage.ListMembers(ctx, orgID)
}

// guardLastAdmin refuses removing or demoting the target when they are
// the only active admin and other active members remain.
func (s *Service) guardLastAdmin(ctx context.Context, orgID string, target *types.Membership) error {
	if roles.Role(target.Role) != roles.RoleAdmin {
		return nil
	}

	members, err := s.storage.ListMembers(ctx, orgID)
	if err != nil {
		return err
	}

	otherAdmins := 0
	otherActive := 0
	for _, m := range members {
		if m.UserID == target.UserID || m.Status != types.MembershipActive {
			continue
		}
		otherActive++
		if roles.Role(m.Role) == roles.RoleAdmin {
			otherAdmins++
		}
	}

	if otherActive > 0 && otherAdmins == 0 {
		return storage.ErrLastAdmin
	}
	return nil
}

// clearUserPointers drops the user's primary-organization and
// current-class pointers when they reference the organization the user
// no longer belongs to. A missing user document is fine.
func (s *Service) clearUserPointers(ctx context.Context, userID, orgID string) error {
	user, err := s.storage.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return err
	}

	changed := false
	if user.PrimaryOrgID == orgID {
		user.PrimaryOrgID = ""
		changed = true
	}
	if _, ok := user.CurrentClasses[orgID]; ok {
		delete(user.CurrentClasses, orgID)
		changed = true
	}
	if !changed {
		return nil
	}

	return s.storage.PutUser(ctx, user)
}
