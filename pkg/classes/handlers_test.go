// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package classes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/classroom-service/internal/storage"
	"github.com/canonical/classroom-service/internal/types"
	"github.com/canonical/classroom-service/pkg/authentication"
)

func TestAPI_Create(t *testing.T) {
	testCases := []struct {
		name           string
		requestBody    any
		withUser       bool
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:        "success",
			requestBody: CreateClassRequest{Name: "Algebra"},
			withUser:    true,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().Create(gomock.Any(), "org-1", "Algebra", "u1").
					Return(&types.Class{ID: "class-1", OrgID: "org-1", Name: "Algebra"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing user",
			requestBody:    CreateClassRequest{Name: "Algebra"},
			withUser:       false,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing name",
			requestBody:    CreateClassRequest{},
			withUser:       true,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "student forbidden",
			requestBody: CreateClassRequest{Name: "Algebra"},
			withUser:    true,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().Create(gomock.Any(), "org-1", "Algebra", "u1").
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
			req := httptest.NewRequest(http.MethodPost, "/api/v0/organizations/org-1/classes", bytes.NewReader(body))
			if tc.withUser {
				req = req.WithContext(authentication.WithUserID(req.Context(), "u1"))
			}

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rr.Code)
			}
		})
	}
}

func TestAPI_AddStudents(t *testing.T) {
	testCases := []struct {
		name           string
		requestBody    any
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:        "success",
			requestBody: RosterRequest{UserIDs: []string{"s1", "s2"}},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().AddStudents(gomock.Any(), "org-1", "class-1", []string{"s1", "s2"}).
					Return(&types.Class{ID: "class-1", StudentIDs: []string{"s1", "s2"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "empty roster",
			requestBody:    RosterRequest{},
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "class not found",
			requestBody: RosterRequest{UserIDs: []string{"s1"}},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().AddStudents(gomock.Any(), "org-1", "class-1", []string{"s1"}).
					Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
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
			req := httptest.NewRequest(http.MethodPost, "/api/v0/organizations/org-1/classes/class-1/students", bytes.NewReader(body))
			req = req.WithContext(authentication.WithUserID(req.Context(), "u1"))

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rr.Code)
			}
		})
	}
}

func TestAPI_SwitchActive(t *testing.T) {
	testCases := []struct {
		name           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "success",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().SwitchActiveClass(gomock.Any(), "u1", "org-1", "class-1").
					Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not on roster",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().SwitchActiveClass(gomock.Any(), "u1", "org-1", "class-1").
					Return(storage.ErrForbidden)
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

			req := httptest.NewRequest(http.MethodPut, "/api/v0/organizations/org-1/classes/class-1/activate", nil)
			req = req.WithContext(authentication.WithUserID(req.Context(), "u1"))

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rr.Code)
			}
		})
	}
}
