// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package classes

import (
	"context"
	"encoding/json"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/canonical/classroom-service/internal/http/types"
	"github.com/canonical/classroom-service/internal/logging"
	"github.com/canonical/classroom-service/internal/types"
	"github.com/canonical/classroom-service/pkg/authentication"
)

var validate = validator.New()

type CreateClassRequest struct {
	Name string `json:"name" validate:"required"`
}

type RosterRequest struct {
	UserIDs []string `json:"user_ids" validate:"required,min=1"`
}

type AssignContentRequest struct {
	ClassIDs   []string `json:"class_ids" validate:"required,min=1"`
	ContentIDs []string `json:"content_ids" validate:"required,min=1"`
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
	mux.Get("/api/v0/organizations/{orgID}/classes", a.list)
	mux.Post("/api/v0/organizations/{orgID}/classes", a.create)
	mux.Get("/api/v0/organizations/{orgID}/classes/{classID}", a.get)
	mux.Delete("/api/v0/organizations/{orgID}/classes/{classID}", a.delete)
	mux.Post("/api/v0/organizations/{orgID}/classes/{classID}/students", a.addStudents)
	mux.Post("/api/v0/organizations/{orgID}/classes/{classID}/teachers", a.addTeachers)
	mux.Delete("/api/v0/organizations/{orgID}/classes/{classID}/members/{userID}", a.removeMember)
	mux.Post("/api/v0/organizations/{orgID}/assignments", a.assignContent)
	mux.Delete("/api/v0/organizations/{orgID}/classes/{classID}/assignments/{contentID}", a.removeContent)
	mux.Put("/api/v0/organizations/{orgID}/classes/{classID}/activate", a.switchActive)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	classes, err := a.service.List(r.Context(), chi.URLParam(r, "orgID"))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, classes)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httptypes.WriteMessage(w, http.StatusUnauthorized, "missing user")
		return
	}

	var req CreateClassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		httptypes.WriteMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	class, err := a.service.Create(r.Context(), chi.URLParam(r, "orgID"), req.Name, userID)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusCreated, class)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	class, err := a.service.Get(r.Context(), chi.URLParam(r, "orgID"), chi.URLParam(r, "classID"))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, class)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httptypes.WriteMessage(w, http.StatusUnauthorized, "missing user")
		return
	}

	if err := a.service.Delete(r.Context(), chi.URLParam(r, "orgID"), chi.URLParam(r, "classID"), userID); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, nil)
}

func (a *API) addStudents(w http.ResponseWriter, r *http.Request) {
	a.addToRoster(w, r, a.service.AddStudents)
}

func (a *API) addTeachers(w http.ResponseWriter, r *http.Request) {
	a.addToRoster(w, r, a.service.AddTeachers)
}

func (a *API) addToRoster(
	w http.ResponseWriter,
	r *http.Request,
	add func(ctx context.Context, orgID, classID string, userIDs []string) (*types.Class, error),
) {
	var req RosterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		httptypes.WriteMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	class, err := add(r.Context(), chi.URLParam(r, "orgID"), chi.URLParam(r, "classID"), req.UserIDs)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, class)
}

func (a *API) removeMember(w http.ResponseWriter, r *http.Request) {
	class, err := a.service.RemoveMember(r.Context(), chi.URLParam(r, "orgID"), chi.URLParam(r, "classID"), chi.URLParam(r, "userID"))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, class)
}

func (a *API) assignContent(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httptypes.WriteMessage(w, http.StatusUnauthorized, "missing user")
		return
	}

	var req AssignContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		httptypes.WriteMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.service.AssignContent(r.Context(), chi.URLParam(r, "orgID"), req.ClassIDs, req.ContentIDs, userID); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, nil)
}

func (a *API) removeContent(w http.ResponseWriter, r *http.Request) {
	class, err := a.service.RemoveContent(r.Context(), chi.URLParam(r, "orgID"), chi.URLParam(r, "classID"), chi.URLParam(r, "contentID"))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, class)
}

func (a *API) switchActive(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httptypes.WriteMessage(w, http.StatusUnauthorized, "missing user")
		return
	}

	if err := a.service.SwitchActiveClass(r.Context(), userID, chi.URLParam(r, "orgID"), chi.URLParam(r, "classID")); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, nil)
}
