// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package usercontext

import (
	"encoding/json"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/classroom-service/internal/http/types"
	"github.com/canonical/classroom-service/internal/logging"
	"github.com/canonical/classroom-service/pkg/authentication"
)

var validate = validator.New()

type SetActiveOrgRequest struct {
	OrgID string `json:"org_id" validate:"required"`
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
	mux.Get("/api/v0/me/context", a.getContext)
	mux.Put("/api/v0/me/context/organization", a.setActiveOrg)
}

func (a *API) getContext(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		types.WriteMessage(w, http.StatusUnauthorized, "missing user")
		return
	}

	uc, err := a.service.ResolveContext(r.Context(), userID)
	if err != nil {
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusOK, uc)
}

func (a *API) setActiveOrg(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		types.WriteMessage(w, http.StatusUnauthorized, "missing user")
		return
	}

	var req SetActiveOrgRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		types.WriteMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.service.SetActiveOrg(r.Context(), userID, req.OrgID); err != nil {
		types.WriteError(w, err)
		return
	}

	uc, err := a.service.ResolveContext(r.Context(), userID)
	if err != nil {
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusOK, uc)
}
