// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"errors"
	"fmt"
	"time"

	"github.com/canonical/classroom-service/internal/logging"
	"github.com/canonical/classroom-service/internal/monitoring"
	"github.com/canonical/classroom-service/internal/roles"
	"github.com/canonical/classroom-service/internal/storage"
	"github.com/canonical/classroom-service/internal/tracing"
	"github.com/canonical/classroom-service/internal/types"
)

// codeBytes yields 26 base32 characters, enough entropy that guessing a
// live code is not practical.
const codeBytes = 16

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

// Generate mints a single-use code binding role to the organization.
// The granted role is fixed at mint time and is not re-evaluated when
// the code is redeemed. An issuer cannot mint an invite for a role more
// privileged than their own.
func (s *Service) Generate(ctx context.Context, orgID string, role roles.Role, issuerID string) (*types.InviteCode, error) {
	ctx, span := s.tracer.Start(ctx, "invites.Service.Generate")
	defer span.End()

	if _, err := s.storage.GetOrganization(ctx, orgID); err != nil {
		return nil, err
	}

	issuer, err := s.storage.GetMembership(ctx, orgID, issuerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, storage.ErrForbidden
		}
		return nil, err
	}
	if !roles.CanActOn(roles.Role(issuer.Role), role) {
		s.logger.Security().AuthzFailure(issuerID, "generate_invite")
		return nil, storage.ErrForbidden
	}

	code, err := newCode()
	if err != nil {
		return nil, err
	}

	invite := &types.InviteCode{
		Code:      code,
		OrgID:     orgID,
		Role:      string(role),
		IssuerID:  issuerID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.storage.PutInvite(ctx, invite); err != nil {
		return nil, err
	}

	return invite, nil
}

// Redeem consumes the code and adds the user to its organization at the
// baked-in role. Membership is created before the consumed mark: if the
// membership write fails the code stays unconsumed, which is the
// defined compensating state, and the caller may retry or revoke.
func (s *Service) Redeem(ctx context.Context, code, userID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "invites.Service.Redeem")
	defer span.End()

	invite, err := s.storage.GetInvite(ctx, code)
	if err != nil {
		return nil, err
	}
	if invite.Consumed {
		return nil, storage.ErrCodeAlreadyConsumed
	}

	m, err := s.storage.AddMember(ctx, invite.OrgID, userID, roles.Role(invite.Role))
	if err != nil {
		return nil, err
	}

	invite.Consumed = true
	invite.ConsumerID = userID
	invite.ConsumedAt = time.Now().UTC()
	if err := s.storage.PutInvite(ctx, invite); err != nil {
		// membership exists but the code is still live; surface the
		// partial state so the caller checks consumed status before
		// retrying
		s.logger.Errorf("failed to mark invite %s consumed: %v", code, err)
		return nil, fmt.Errorf("%w: membership created, code not yet consumed", storage.ErrPartialWrite)
	}

	return m, nil
}

// Revoke removes an unconsumed code. Only admins and developers of the
// code's organization may revoke.
func (s *Service) Revoke(ctx context.Context, code, requestedBy string) error {
	ctx, span := s.tracer.Start(ctx, "invites.Service.Revoke")
	defer span.End()

	invite, err := s.storage.GetInvite(ctx, code)
	if err != nil {
		return err
	}

	// authorize before reporting consumed status, so a code's state is
	// only visible to the organization's admins and developers
	requester, err := s.storage.GetMembership(ctx, invite.OrgID, requestedBy)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.ErrForbidden
		}
		return err
	}
	switch roles.Role(requester.Role) {
	case roles.RoleAdmin, roles.RoleDeveloper:
	default:
		s.logger.Security().AuthzFailure(requestedBy, "revoke_invite")
		return storage.ErrForbidden
	}

	if invite.Consumed {
		return storage.ErrCodeAlreadyConsumed
	}

	return s.storage.DeleteInvite(ctx, code)
}

// ListActive returns the organization's unconsumed codes.
func (s *Service) ListActive(ctx context.Context, orgID string) ([]*types.InviteCode, error) {
	ctx, span := s.tracer.Start(ctx, "invites.Service.ListActive")
	defer span.End()

	invites, err := s.storage.ListInvitesByOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}

	var active []*types.InviteCode
	for _, invite := range invites {
		if !invite.Consumed {
			active = append(active, invite)
		}
	}
	return active, nil
}

func newCode() (string, error) {
	buf := make([]byte, codeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate invite code: %w", err)
	}
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(buf), nil
}
