// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package roles encodes the role hierarchy and transition rules.
// Every authorization decision in the service funnels through this
// package; it is pure and performs no IO.
package roles

import (
	"fmt"
)

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleDeveloper Role = "developer"
	RoleTeacher   Role = "teacher"
	RoleStudent   Role = "student"
	// RoleUnranked is the explicit variant for roles outside the
	// hierarchy. It has no rank and always fails CanActOn.
	RoleUnranked Role = ""
)

// ordered from most to least privileged; index is the rank
var hierarchy = []Role{RoleAdmin, RoleDeveloper, RoleTeacher, RoleStudent}

// Rank returns the numeric privilege order of a role, lower meaning more
// privileged (admin=0 ... student=3). ok is false for unranked roles.
func Rank(r Role) (int, bool) {
	for i, h := range hierarchy {
		if h == r {
			return i, true
		}
	}
	return 0, false
}

// CanActOn reports whether actor may affect a membership holding target.
// An actor may only act on roles at or below its own privilege, i.e.
// rank(target) >= rank(actor). Unranked roles on either side deny.
func CanActOn(actor, target Role) bool {
	ar, ok := Rank(actor)
	if !ok {
		return false
	}
	tr, ok := Rank(target)
	if !ok {
		return false
	}
	return tr >= ar
}

// AssignableRoles returns the roles an actor may assign, ordered by
// rank. Empty for unranked actors.
func AssignableRoles(actor Role) []Role {
	ar, ok := Rank(actor)
	if !ok {
		return nil
	}
	return hierarchy[ar:]
}

// NextAssignableRole cycles current forward through the sub-list of
// roles the actor may assign, wrapping to the first. When current is not
// itself assignable by the actor the call is a no-op and current is
// returned unchanged.
func NextAssignableRole(actor, current Role) Role {
	allowed := AssignableRoles(actor)
	for i, r := range allowed {
		if r == current {
			return allowed[(i+1)%len(allowed)]
		}
	}
	return current
}

// ParseRole validates a role name coming in over the wire.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if _, ok := Rank(r); !ok {
		return RoleUnranked, fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}
