// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

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

type GenerateInviteRequest struct {
	OrgID string `json:"org_id" validate:"required"`
	Role  string `json:"role" validate:"required"`
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
	mux.Post("/api/v0/invites", a.generate)
	mux.Get("/api/v0/organizations/{orgID}/invites", a.listActive)
	mux.Post("/api/v0/invites/{code}/redeem", a.redeem)
	mux.Delete("/api/v0/invites/{code}", a.revoke)
}

func (a *API) generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		types.WriteMessage(w, http.StatusUnauthorized, "missing user")
		return
	}

	var req GenerateInviteRequest
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

	invite, err := a.service.Generate(r.Context(), req.OrgID, role, userID)
	if err != nil {
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusCreated, invite)
}

func (a *API) listActive(w http.ResponseWriter, r *http.Request) {
	invites, err := a.service.ListActive(r.Context(), chi.URLParam(r, "orgID"))
	if err != nil {
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusOK, invites)
}

func (a *API) redeem(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		types.WriteMessage(w, http.StatusUnauthorized, "missing user")
		return
	}

	m, err := a.service.Redeem(r.Context(), chi.URLParam(r, "code"), userID)
	if err != nil {
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusCreated, m)
}

func (a *API) revoke(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		types.WriteMessage(w, http.StatusUnauthorized, "missing user")
		return
	}

	if err := a.service.Revoke(r.Context(), chi.URLParam(r, "code"), userID); err != nil {
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusOK, nil)
}
