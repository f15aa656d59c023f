// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"testing"
)

func TestRank(t *testing.T) {
	testCases := []struct {
		role     Role
		expected int
		ok       bool
	}{
		{RoleAdmin, 0, true},
		{RoleDeveloper, 1, true},
		{RoleTeacher, 2, true},
		{RoleStudent, 3, true},
		{RoleUnranked, 0, false},
		{Role("superuser"), 0, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.role), func(t *testing.T) {
			rank, ok := Rank(tc.role)
			if ok != tc.ok {
				t.Fatalf("expected ok=%v, got %v", tc.ok, ok)
			}
			if ok && rank != tc.expected {
				t.Errorf("expected rank %d, got %d", tc.expected, rank)
			}
		})
	}
}

func TestCanActOn(t *testing.T) {
	all := []Role{RoleAdmin, RoleDeveloper, RoleTeacher, RoleStudent}

	// canActOn(r1, r2) holds iff rank(r2) >= rank(r1)
	for _, actor := range all {
		for _, target := range all {
			ar, _ := Rank(actor)
			tr, _ := Rank(target)
			expected := tr >= ar
			if got := CanActOn(actor, target); got != expected {
				t.Errorf("CanActOn(%s, %s) = %v, expected %v", actor, target, got, expected)
			}
		}
	}

	// admin acts on all four roles
	for _, target := range all {
		if !CanActOn(RoleAdmin, target) {
			t.Errorf("admin should act on %s", target)
		}
	}

	// student acts on no role but student
	for _, target := range all {
		expected := target == RoleStudent
		if got := CanActOn(RoleStudent, target); got != expected {
			t.Errorf("CanActOn(student, %s) = %v, expected %v", target, got, expected)
		}
	}

	// unranked roles always deny, either side
	if CanActOn(RoleUnranked, RoleStudent) {
		t.Error("unranked actor should never act")
	}
	if CanActOn(RoleAdmin, Role("superuser")) {
		t.Error("no actor should act on an unranked role")
	}
}

func TestNextAssignableRole_Cycles(t *testing.T) {
	testCases := []struct {
		name  string
		actor Role
		cycle []Role
	}{
		{"admin", RoleAdmin, []Role{RoleAdmin, RoleDeveloper, RoleTeacher, RoleStudent}},
		{"developer", RoleDeveloper, []Role{RoleDeveloper, RoleTeacher, RoleStudent}},
		{"teacher", RoleTeacher, []Role{RoleTeacher, RoleStudent}},
		{"student", RoleStudent, []Role{RoleStudent}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// repeated application walks the allowed sub-list and
			// returns to the start after len(allowed) steps
			current := tc.cycle[0]
			for i := 1; i <= len(tc.cycle); i++ {
				current = NextAssignableRole(tc.actor, current)
				expected := tc.cycle[i%len(tc.cycle)]
				if current != expected {
					t.Fatalf("step %d: expected %s, got %s", i, expected, current)
				}
			}
			if current != tc.cycle[0] {
				t.Errorf("cycle did not wrap to start, ended on %s", current)
			}
		})
	}
}

func TestNextAssignableRole_NotAssignable(t *testing.T) {
	// teacher cannot assign admin, so cycling from admin is a no-op
	if got := NextAssignableRole(RoleTeacher, RoleAdmin); got != RoleAdmin {
		t.Errorf("expected no-op, got %s", got)
	}
	if got := NextAssignableRole(RoleUnranked, RoleStudent); got != RoleStudent {
		t.Errorf("expected no-op for unranked actor, got %s", got)
	}
}

func TestParseRole(t *testing.T) {
	if r, err := ParseRole("teacher"); err != nil || r != RoleTeacher {
		t.Errorf("expected teacher, got %s (%v)", r, err)
	}
	if _, err := ParseRole("principal"); err == nil {
		t.Error("expected error for unknown role")
	}
	if _, err := ParseRole(""); err == nil {
		t.Error("expected error for empty role")
	}
}
