// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/canonical/classroom-service/internal/storage"
)

// Response is the envelope every API returns.
type Response struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Status  int    `json:"status"`
}

func WriteResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{
		Data:   data,
		Status: status,
	})
}

// WriteMessage writes a bare status plus human-readable message, for
// request-shape failures that never reach a service.
func WriteMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{
		Message: message,
		Status:  status,
	})
}

// WriteError maps the engine's sentinel errors onto HTTP statuses. The
// presentation layer owns the user-visible wording; the engine's error
// text is passed through as the message.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, storage.ErrNotFound),
		errors.Is(err, storage.ErrCodeNotFound),
		errors.Is(err, storage.ErrNotAMember):
		status = http.StatusNotFound
	case errors.Is(err, storage.ErrForbidden),
		errors.Is(err, storage.ErrSelfRemovalForbidden),
		errors.Is(err, storage.ErrDefaultOrgRemovalForbidden),
		errors.Is(err, storage.ErrCurrentOrgUndeletable),
		errors.Is(err, storage.ErrUndeletable),
		errors.Is(err, storage.ErrLastAdmin):
		status = http.StatusForbidden
	case errors.Is(err, storage.ErrAlreadyMember),
		errors.Is(err, storage.ErrDuplicateName),
		errors.Is(err, storage.ErrNoOpRoleChange),
		errors.Is(err, storage.ErrCodeAlreadyConsumed):
		status = http.StatusConflict
	case errors.Is(err, storage.ErrPartialWrite):
		status = http.StatusConflict
	case errors.Is(err, storage.ErrStoreUnavailable):
		status = http.StatusBadGateway
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{
		Message: err.Error(),
		Status:  status,
	})
}
