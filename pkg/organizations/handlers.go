// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"encoding/json"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/classroom-service/internal/http/types"
	"github.com/canonical/classroom-service/internal/logging"
	"github.com/canonical/classroom-service/internal/roles"
	"github.com/canonical/classroom-service/pkg/authentication"
)

var validate = validator.New()

type CreateOrgRequest struct {
	Name string `json:"name" validate:"required"`
}

type AddMemberRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Role   string `json:"role" validate:"required"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type API struct {
	service ServiceInterface

	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/organizations", a.create)
	mux.Get("/api/v0/organizations", a.list)
	mux.Get("/api/v0/organizations/{orgID}", a.get)
	mux.Delete("/api/v0/organizations/{orgID}", a.delete)
	mux.Post("/api/v0/organizations/{orgID}/leave", a.leave)
	mux.Get("/api/v0/organizations/{orgID}/members", a.listMembers)
	mux.Post("/api/v0/organizations/{orgID}/members", a.addMember)
	mux.Patch("/api/v0/organizations/{orgID}/members/{userID}", a.updateRole)
	mux.Delete("/api/v0/organizations/{orgID}/members/{userID}", a.removeMember)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		types.WriteMessage(w, http.StatusUnauthorized, "missing user")
		return
	}

	var req CreateOrgRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		types.WriteMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	org, err := a.service.Create(r.Context(), req.Name, userID)
	if err != nil {
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusCreated, org)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		types.WriteMessage(w, http.StatusUnauthorized, "missing user")
		return
	}

	orgs, err := a.service.ListForUser(r.Context(), userID)
	if err != nil {
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusOK, orgs)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	org, err := a.service.Get(r.Context(), chi.URLParam(r, "orgID"))
	if err != nil {
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusOK, org)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		types.WriteMessage(w, http.StatusUnauthorized, "missing user")
		return
	}

	if err := a.service.Delete(r.Context(), chi.URLParam(r, "orgID"), userID); err != nil {
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusOK, nil)
}

func (a *API) leave(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		types.WriteMessage(w, http.StatusUnauthorized, "missing user")
		return
	}

	if err := a.service.Leave(r.Context(), chi.URLParam(r, "orgID"), userID); err != nil {
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusOK, nil)
}

func (a *API) listMembers(w http.ResponseWriter, r *http.Request) {
	members, err := a.service.ListMembers(r.Context(), chi.URLParam(r, "orgID"))
	if err != nil {
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusOK, members)
}

func (a *API) addMember(w http.ResponseWriter, r *http.Request) {
	requestedBy, ok := authentication.GetUserID(r.Context())
	if !ok {
		types.WriteMessage(w, http.StatusUnauthorized, "missing user")
		return
	}

	var req AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		types.WriteMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	role, err := roles.ParseRole(req.Role)
	if err != nil {
		types.WriteMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	m, err := a.service.AddMember(r.Context(), chi.URLParam(r, "orgID"), req.UserID, role, requestedBy)
	if err != nil {
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusCreated, m)
}

func (a *API) updateRole(w http.ResponseWriter, r *http.Request) {
	requestedBy, ok := authentication.GetUserID(r.Context())
	if !ok {
		types.WriteMessage(w, http.StatusUnauthorized, "missing user")
		return
	}

	var req UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		types.WriteMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	role, err := roles.ParseRole(req.Role)
	if err != nil {
		types.WriteMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	m, err := a.service.UpdateMemberRole(r.Context(), chi.URLParam(r, "orgID"), chi.URLParam(r, "userID"), role, requestedBy)
	if err != nil {
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusOK, m)
}

func (a *API) removeMember(w http.ResponseWriter, r *http.Request) {
	requestedBy, ok := authentication.GetUserID(r.Context())
	if !ok {
		types.WriteMessage(w, http.StatusUnauthorized, "missing user")
		return
	}

	if err := a.service.RemoveMember(r.Context(), chi.URLParam(r, "orgID"), chi.URLParam(r, "userID"), requestedBy); err != nil {
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusOK, nil)
}
