// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

// Document tree layout. The member record is written on both sides of
// the relationship: the organization side is authoritative for role and
// status, the user side is a join pointer used for reverse lookups.
const (
	orgsRoot    = "organizations"
	usersRoot   = "users"
	invitesRoot = "inviteCodes"
)

func orgPath(orgID string) string {
	return orgsRoot + "/" + orgID
}

func memberPath(orgID, userID string) string {
	return orgsRoot + "/" + orgID + "/members/" + userID
}

func membersPath(orgID string) string {
	return orgsRoot + "/" + orgID + "/members"
}

func classPath(orgID, classID string) string {
	return orgsRoot + "/" + orgID + "/classes/" + classID
}

func classesPath(orgID string) string {
	return orgsRoot + "/" + orgID + "/classes"
}

func userPath(userID string) string {
	return usersRoot + "/" + userID
}

func userOrgPath(userID, orgID string) string {
	return usersRoot + "/" + userID + "/organizations/" + orgID
}

func userOrgsPath(userID string) string {
	return usersRoot + "/" + userID + "/organizations"
}

func invitePath(code string) string {
	return invitesRoot + "/" + code
}
