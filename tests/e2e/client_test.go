// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// apiClient drives the HTTP API as a single user. With authentication
// disabled the bearer token is trusted as the user ID, so each client
// impersonates the user it was created for.
type apiClient struct {
	baseURL string
	userID  string
	http    *http.Client
}

func newAPIClient(baseURL, userID string) *apiClient {
	return &apiClient{
		baseURL: baseURL,
		userID:  userID,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// envelope mirrors the API's response wrapper.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Status  int             `json:"status"`
}

func (c *apiClient) do(ctx context.Context, method, path string, body any, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+c.userID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}

	if out != nil && resp.StatusCode < 300 {
		var env envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to decode response %q: %w", string(raw), err)
		}
		if len(env.Data) > 0 {
			if err := json.Unmarshal(env.Data, out); err != nil {
				return resp.StatusCode, fmt.Errorf("failed to decode data %q: %w", string(env.Data), err)
			}
		}
	}

	return resp.StatusCode, nil
}

type organization struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsDefault bool   `json:"is_default"`
}

type membership struct {
	UserID string `json:"user_id"`
	OrgID  string `json:"org_id"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

type class struct {
	ID         string   `json:"id"`
	OrgID      string   `json:"org_id"`
	Name       string   `json:"name"`
	IsDefault  bool     `json:"is_default"`
	TeacherIDs []string `json:"teacher_ids"`
	StudentIDs []string `json:"student_ids"`
}

type inviteCode struct {
	Code  string `json:"code"`
	OrgID string `json:"org_id"`
	Role  string `json:"role"`
}

type userContext struct {
	UserID    string `json:"user_id"`
	OrgID     string `json:"org_id"`
	Role      string `json:"role"`
	ClassID   string `json:"class_id"`
	ClassName string `json:"class_name"`
}

func (c *apiClient) createOrg(ctx context.Context, name string) (*organization, int, error) {
	var org organization
	status, err := c.do(ctx, http.MethodPost, "/api/v0/organizations", map[string]string{"name": name}, &org)
	return &org, status, err
}

func (c *apiClient) deleteOrg(ctx context.Context, orgID string) (int, error) {
	return c.do(ctx, http.MethodDelete, "/api/v0/organizations/"+orgID, nil, nil)
}

func (c *apiClient) listOrgs(ctx context.Context) ([]organization, int, error) {
	var orgs []organization
	status, err := c.do(ctx, http.MethodGet, "/api/v0/organizations", nil, &orgs)
	return orgs, status, err
}

func (c *apiClient) addMember(ctx context.Context, orgID, userID, role string) (int, error) {
	return c.do(ctx, http.MethodPost, "/api/v0/organizations/"+orgID+"/members",
		map[string]string{"user_id": userID, "role": role}, nil)
}

func (c *apiClient) listMembers(ctx context.Context, orgID string) ([]membership, int, error) {
	var members []membership
	status, err := c.do(ctx, http.MethodGet, "/api/v0/organizations/"+orgID+"/members", nil, &members)
	return members, status, err
}

func (c *apiClient) updateRole(ctx context.Context, orgID, userID, role string) (int, error) {
	return c.do(ctx, http.MethodPatch, "/api/v0/organizations/"+orgID+"/members/"+userID,
		map[string]string{"role": role}, nil)
}

func (c *apiClient) generateInvite(ctx context.Context, orgID, role string) (*inviteCode, int, error) {
	var invite inviteCode
	status, err := c.do(ctx, http.MethodPost, "/api/v0/invites",
		map[string]string{"org_id": orgID, "role": role}, &invite)
	return &invite, status, err
}

func (c *apiClient) redeemInvite(ctx context.Context, code string) (*membership, int, error) {
	var m membership
	status, err := c.do(ctx, http.MethodPost, "/api/v0/invites/"+code+"/redeem", nil, &m)
	return &m, status, err
}

func (c *apiClient) getContext(ctx context.Context) (*userContext, int, error) {
	var uc userContext
	status, err := c.do(ctx, http.MethodGet, "/api/v0/me/context", nil, &uc)
	return &uc, status, err
}

func (c *apiClient) setActiveOrg(ctx context.Context, orgID string) (*userContext, int, error) {
	var uc userContext
	status, err := c.do(ctx, http.MethodPut, "/api/v0/me/context/organization",
		map[string]string{"org_id": orgID}, &uc)
	return &uc, status, err
}

func (c *apiClient) createClass(ctx context.Context, orgID, name string) (*class, int, error) {
	var cl class
	status, err := c.do(ctx, http.MethodPost, "/api/v0/organizations/"+orgID+"/classes",
		map[string]string{"name": name}, &cl)
	return &cl, status, err
}

func (c *apiClient) addStudents(ctx context.Context, orgID, classID string, userIDs []string) (int, error) {
	return c.do(ctx, http.MethodPost, "/api/v0/organizations/"+orgID+"/classes/"+classID+"/students",
		map[string][]string{"user_ids": userIDs}, nil)
}

func (c *apiClient) activateClass(ctx context.Context, orgID, classID string) (int, error) {
	return c.do(ctx, http.MethodPut, "/api/v0/organizations/"+orgID+"/classes/"+classID+"/activate", nil, nil)
}
