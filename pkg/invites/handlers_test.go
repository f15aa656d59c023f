// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/classroom-service/internal/roles"
	"github.com/canonical/classroom-service/internal/storage"
	"github.com/canonical/classroom-service/internal/types"
	"github.com/canonical/classroom-service/pkg/authentication"
)

func TestAPI_Generate(t *testing.T) {
	testCases := []struct {
		name           string
		requestBody    any
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:        "success",
			requestBody: GenerateInviteRequest{OrgID: "org-1", Role: "student"},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().Generate(gomock.Any(), "org-1", roles.RoleStudent, "u1").
					Return(&types.InviteCode{Code: "THECODE", OrgID: "org-1", Role: "student"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "unknown role",
			requestBody:    GenerateInviteRequest{OrgID: "org-1", Role: "janitor"},
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "insufficient privilege",
			requestBody: GenerateInviteRequest{OrgID: "org-1", Role: "admin"},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().Generate(gomock.Any(), "org-1", roles.RoleAdmin, "u1").
					Return(nil, storage.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockServiceInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			tc.setupMocks(mockSvc)

			mux := chi.NewMux()
			NewAPI(mockSvc, mockLogger).RegisterEndpoints(mux)

			body, _ := json.Marshal(tc.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/api/v0/invites", bytes.NewReader(body))
			req = req.WithContext(authentication.WithUserID(req.Context(), "u1"))

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rr.Code)
			}
		})
	}
}

func TestAPI_Redeem(t *testing.T) {
	testCases := []struct {
		name           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "success",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().Redeem(gomock.Any(), "THECODE", "u1").
					Return(&types.Membership{UserID: "u1", OrgID: "org-1", Role: "student"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "unknown code",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().Redeem(gomock.Any(), "THECODE", "u1").
					Return(nil, storage.ErrCodeNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "consumed code",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().Redeem(gomock.Any(), "THECODE", "u1").
					Return(nil, storage.ErrCodeAlreadyConsumed)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "already a member",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().Redeem(gomock.Any(), "THECODE", "u1").
					Return(nil, storage.ErrAlreadyMember)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockServiceInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			tc.setupMocks(mockSvc)

			mux := chi.NewMux()
			NewAPI(mockSvc, mockLogger).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/invites/THECODE/redeem", nil)
			req = req.WithContext(authentication.WithUserID(req.Context(), "u1"))

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rr.Code)
			}
		})
	}
}
