// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// MembershipStatus tracks the lifecycle of a membership record.
// A membership is written "pending" on the organization side first and
// flipped to "active" once the user-side pointer exists, so a
// half-completed add is visible from the organization's perspective.
type MembershipStatus string

const (
	MembershipActive  MembershipStatus = "active"
	MembershipPending MembershipStatus = "pending"
	MembershipRemoved MembershipStatus = "removed"
)

type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	// PrimaryOrgID is the user's preferred organization, empty when unset.
	PrimaryOrgID string `json:"primary_org_id,omitempty"`
	// CurrentClasses maps organization id to the user's current class in it.
	CurrentClasses map[string]string `json:"current_classes,omitempty"`
}

type Organization struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	Archived  bool      `json:"archived"`
	IsDefault bool      `json:"is_default"`
}

type Membership struct {
	UserID    string           `json:"user_id"`
	OrgID     string           `json:"org_id"`
	Role      string           `json:"role"`
	Status    MembershipStatus `json:"status"`
	JoinedAt  time.Time        `json:"joined_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// UserOrgPointer is the user-side record of a membership, stored under
// users/{userID}/organizations/{orgID}.
type UserOrgPointer struct {
	OrgID    string    `json:"org_id"`
	JoinedAt time.Time `json:"joined_at"`
}

type Class struct {
	ID        string    `json:"id"`
	OrgID     string    `json:"org_id"`
	Name      string    `json:"name"`
	CreatorID string    `json:"creator_id"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`

	TeacherIDs []string `json:"teacher_ids,omitempty"`
	StudentIDs []string `json:"student_ids,omitempty"`
	// Assignments maps content item id to assignment metadata.
	Assignments map[string]Assignment `json:"assignments,omitempty"`
}

type Assignment struct {
	ContentID  string    `json:"content_id"`
	AssignedBy string    `json:"assigned_by"`
	AssignedAt time.Time `json:"assigned_at"`
}

type InviteCode struct {
	Code       string    `json:"code"`
	OrgID      string    `json:"org_id"`
	Role       string    `json:"role"`
	IssuerID   string    `json:"issuer_id"`
	CreatedAt  time.Time `json:"created_at"`
	Consumed   bool      `json:"consumed"`
	ConsumerID string    `json:"consumer_id,omitempty"`
	ConsumedAt time.Time `json:"consumed_at,omitempty"`
}

// UserContext is the resolved (organization, role, class) triple for an
// authenticated user. It is derived on demand and never persisted.
type UserContext struct {
	UserID    string `json:"user_id"`
	OrgID     string `json:"org_id,omitempty"`
	Role      string `json:"role,omitempty"`
	ClassID   string `json:"class_id,omitempty"`
	ClassName string `json:"class_name,omitempty"`
}

// Empty reports whether the context carries no organization, meaning the
// user has no memberships and must join or create an organization.
func (c *UserContext) Empty() bool {
	return c.OrgID == ""
}
