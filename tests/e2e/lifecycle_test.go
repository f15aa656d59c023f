// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package e2e

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestOrganizationLifecycle(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	suffix := time.Now().UnixNano()
	owner := newAPIClient(testEnv.BaseURL, fmt.Sprintf("owner-%d", suffix))
	teacher := newAPIClient(testEnv.BaseURL, fmt.Sprintf("teacher-%d", suffix))
	student := newAPIClient(testEnv.BaseURL, fmt.Sprintf("student-%d", suffix))

	orgName := fmt.Sprintf("test-org-%d", suffix)
	spareName := fmt.Sprintf("spare-org-%d", suffix)

	var orgID, spareID string

	t.Run("Create Organization", func(t *testing.T) {
		org, status, err := owner.createOrg(ctx, orgName)
		if err != nil {
			t.Fatalf("failed to create organization: %v", err)
		}
		if status != http.StatusCreated {
			t.Fatalf("expected 201, got %d", status)
		}
		orgID = org.ID

		if _, status, _ := owner.createOrg(ctx, orgName); status != http.StatusConflict {
			t.Errorf("expected duplicate name to return 409, got %d", status)
		}

		spare, status, err := owner.createOrg(ctx, spareName)
		if err != nil || status != http.StatusCreated {
			t.Fatalf("failed to create spare organization: %v (status %d)", err, status)
		}
		spareID = spare.ID
	})

	defer func() {
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		// the active organization cannot be deleted, park the owner elsewhere first
		owner.setActiveOrg(cleanupCtx, spareID)
		owner.deleteOrg(cleanupCtx, orgID)
		owner.setActiveOrg(cleanupCtx, orgID)
		owner.deleteOrg(cleanupCtx, spareID)
	}()

	t.Run("Owner Context", func(t *testing.T) {
		uc, status, err := owner.getContext(ctx)
		if err != nil || status != http.StatusOK {
			t.Fatalf("failed to resolve context: %v (status %d)", err, status)
		}
		if uc.Role != "admin" {
			t.Errorf("expected the creator to be admin, got %q", uc.Role)
		}
		if uc.ClassID == "" {
			t.Error("expected a default class in the resolved context")
		}
	})

	t.Run("Membership", func(t *testing.T) {
		if status, err := owner.addMember(ctx, orgID, teacher.userID, "teacher"); err != nil || status != http.StatusCreated {
			t.Fatalf("failed to add teacher: %v (status %d)", err, status)
		}

		// a teacher may not grant a role above their own
		if status, _ := teacher.addMember(ctx, orgID, student.userID, "admin"); status != http.StatusForbidden {
			t.Errorf("expected 403 for teacher granting admin, got %d", status)
		}
		if status, err := teacher.addMember(ctx, orgID, student.userID, "student"); err != nil || status != http.StatusCreated {
			t.Fatalf("failed to add student: %v (status %d)", err, status)
		}

		members, status, err := owner.listMembers(ctx, orgID)
		if err != nil || status != http.StatusOK {
			t.Fatalf("failed to list members: %v (status %d)", err, status)
		}
		if len(members) != 3 {
			t.Errorf("expected 3 members, got %d", len(members))
		}
	})

	t.Run("Role Changes", func(t *testing.T) {
		// a student may not change anyone's role
		if status, _ := student.updateRole(ctx, orgID, teacher.userID, "student"); status != http.StatusForbidden {
			t.Errorf("expected 403 for student demoting teacher, got %d", status)
		}

		if status, err := owner.updateRole(ctx, orgID, teacher.userID, "developer"); err != nil || status != http.StatusOK {
			t.Fatalf("failed to promote teacher: %v (status %d)", err, status)
		}

		// same role again is a no-op conflict
		if status, _ := owner.updateRole(ctx, orgID, teacher.userID, "developer"); status != http.StatusConflict {
			t.Errorf("expected 409 for no-op role change, got %d", status)
		}

		if status, err := owner.updateRole(ctx, orgID, teacher.userID, "teacher"); err != nil || status != http.StatusOK {
			t.Fatalf("failed to restore teacher role: %v (status %d)", err, status)
		}
	})

	t.Run("Delete Guards", func(t *testing.T) {
		uc, _, err := owner.getContext(ctx)
		if err != nil {
			t.Fatalf("failed to resolve context: %v", err)
		}
		if uc.OrgID == orgID {
			// deleting the organization you are operating in is refused
			if status, _ := owner.deleteOrg(ctx, orgID); status != http.StatusForbidden {
				t.Errorf("expected 403 deleting the active organization, got %d", status)
			}
		}

		if status, _ := student.deleteOrg(ctx, orgID); status != http.StatusForbidden {
			t.Errorf("expected 403 for non-admin delete, got %d", status)
		}
	})
}

func TestInviteFlow(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	suffix := time.Now().UnixNano()
	owner := newAPIClient(testEnv.BaseURL, fmt.Sprintf("inviter-%d", suffix))
	joiner := newAPIClient(testEnv.BaseURL, fmt.Sprintf("joiner-%d", suffix))

	org, status, err := owner.createOrg(ctx, fmt.Sprintf("invite-org-%d", suffix))
	if err != nil || status != http.StatusCreated {
		t.Fatalf("failed to create organization: %v (status %d)", err, status)
	}

	invite, status, err := owner.generateInvite(ctx, org.ID, "student")
	if err != nil || status != http.StatusCreated {
		t.Fatalf("failed to generate invite: %v (status %d)", err, status)
	}
	if len(invite.Code) != 26 {
		t.Errorf("expected a 26 character code, got %q", invite.Code)
	}

	m, status, err := joiner.redeemInvite(ctx, invite.Code)
	if err != nil || status != http.StatusCreated {
		t.Fatalf("failed to redeem invite: %v (status %d)", err, status)
	}
	if m.Role != "student" {
		t.Errorf("expected the baked-in role, got %q", m.Role)
	}

	// single use
	if _, status, _ := joiner.redeemInvite(ctx, invite.Code); status != http.StatusConflict {
		t.Errorf("expected 409 redeeming a consumed code, got %d", status)
	}

	uc, status, err := joiner.getContext(ctx)
	if err != nil || status != http.StatusOK {
		t.Fatalf("failed to resolve joiner context: %v (status %d)", err, status)
	}
	if uc.OrgID != org.ID {
		t.Errorf("expected joiner context in %s, got %s", org.ID, uc.OrgID)
	}
}

func TestClassFlow(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	suffix := time.Now().UnixNano()
	owner := newAPIClient(testEnv.BaseURL, fmt.Sprintf("head-%d", suffix))
	student := newAPIClient(testEnv.BaseURL, fmt.Sprintf("pupil-%d", suffix))

	org, status, err := owner.createOrg(ctx, fmt.Sprintf("class-org-%d", suffix))
	if err != nil || status != http.StatusCreated {
		t.Fatalf("failed to create organization: %v (status %d)", err, status)
	}
	if status, err := owner.addMember(ctx, org.ID, student.userID, "student"); err != nil || status != http.StatusCreated {
		t.Fatalf("failed to add student: %v (status %d)", err, status)
	}

	cl, status, err := owner.createClass(ctx, org.ID, "Algebra")
	if err != nil || status != http.StatusCreated {
		t.Fatalf("failed to create class: %v (status %d)", err, status)
	}

	// a student may not create classes
	if _, status, _ := student.createClass(ctx, org.ID, "Chemistry"); status != http.StatusForbidden {
		t.Errorf("expected 403 for student class creation, got %d", status)
	}

	if status, err := owner.addStudents(ctx, org.ID, cl.ID, []string{student.userID}); err != nil || status != http.StatusOK {
		t.Fatalf("failed to add student to roster: %v (status %d)", err, status)
	}

	if status, err := student.activateClass(ctx, org.ID, cl.ID); err != nil || status != http.StatusOK {
		t.Fatalf("failed to switch active class: %v (status %d)", err, status)
	}

	uc, status, err := student.getContext(ctx)
	if err != nil || status != http.StatusOK {
		t.Fatalf("failed to resolve context: %v (status %d)", err, status)
	}
	if uc.ClassID != cl.ID {
		t.Errorf("expected active class %s, got %s", cl.ID, uc.ClassID)
	}
}
