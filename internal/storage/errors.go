// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"errors"
	"fmt"

	"github.com/canonical/classroom-service/internal/docstore"
)

// Sentinel errors for storage operations. Handlers map these to HTTP
// statuses; nothing here is retried or swallowed by the engine.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrForbidden      = errors.New("operation forbidden for requester role")
	ErrAlreadyMember  = errors.New("user is already a member of the organization")
	ErrNotAMember     = errors.New("user is not a member of the organization")
	ErrDuplicateName  = errors.New("organization name already in use")
	ErrNoOpRoleChange = errors.New("new role equals current role")

	ErrCodeNotFound        = errors.New("invite code not found")
	ErrCodeAlreadyConsumed = errors.New("invite code already consumed")

	ErrUndeletable                = errors.New("default entity cannot be deleted")
	ErrCurrentOrgUndeletable      = errors.New("active organization cannot be deleted, switch context first")
	ErrSelfRemovalForbidden       = errors.New("requester cannot remove their own membership")
	ErrDefaultOrgRemovalForbidden = errors.New("members cannot be removed from the default organization")

	// ErrPartialWrite marks a multi-record mutation interrupted after a
	// prefix of its steps. State is recoverable by re-running the
	// operation; nothing retries automatically.
	ErrPartialWrite = errors.New("partial write, re-run the operation to reconcile")

	// ErrLastAdmin guards the invariant that an organization keeps at
	// least one admin while it has any other active member.
	ErrLastAdmin = errors.New("organization must retain at least one admin")

	ErrStoreUnavailable = errors.New("persistent store unavailable")
)

// translate maps docstore failures onto the adapter's sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, docstore.ErrNoDocument):
		return ErrNotFound
	case errors.Is(err, docstore.ErrUnavailable):
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	default:
		return err
	}
}
