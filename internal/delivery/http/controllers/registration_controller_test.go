package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campusevents/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRegistrationService implements domain.RegistrationService for handler tests.
type fakeRegistrationService struct {
	registerErr error
	listErr     error
	listResult  []*domain.Registration

	lastEventID string
	lastName    string
	lastEmail   string
}

func (f *fakeRegistrationService) Register(ctx context.Context, eventID, name, email string) (*domain.Registration, error) {
	f.lastEventID = eventID
	f.lastName = name
	f.lastEmail = email
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &domain.Registration{
		ID:        "reg-created",
		EventID:   eventID,
		Name:      name,
		Email:     email,
		Timestamp: time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC),
	}, nil
}

func (f *fakeRegistrationService) ListByEvent(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	f.lastEventID = eventID
	if f.listErr != nil {
		return nil, f.listErr
	}
	if f.listResult != nil {
		return f.listResult, nil
	}
	return []*domain.Registration{}, nil
}

func TestRegistrationController_Register(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:       "success",
			body:       `{"name":"Alice Johnson","email":"alice@example.com"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:           "event not found",
			body:           `{"name":"Alice Johnson","email":"alice@example.com"}`,
			fakeErr:        domain.ErrNotFound,
			wantStatus:     http.StatusNotFound,
			wantBodySubstr: "Event not found",
		},
		{
			name:           "missing name",
			body:           `{"email":"alice@example.com"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "name is required",
		},
		{
			name:           "missing email",
			body:           `{"name":"Alice Johnson"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "email is required",
		},
		{
			name:           "missing both fields",
			body:           `{}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "name is required; email is required",
		},
		{
			name:           "invalid email format",
			body:           `{"name":"Alice","email":"alice"}`,
			fakeErr:        fmt.Errorf("%w: a valid email is required", domain.ErrValidation),
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "valid email",
		},
		{
			name:           "unknown field rejected",
			body:           `{"name":"Alice","email":"alice@example.com","phone":"555"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "unknown field",
		},
		{
			name:           "store failure",
			body:           `{"name":"Alice Johnson","email":"alice@example.com"}`,
			fakeErr:        errors.New("connection refused"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "Failed to register for event",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeRegistrationService{registerErr: tt.fakeErr}
			ctrl := NewRegistrationController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/register/ev-1", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.SetPathValue("eventID", "ev-1")
			rr := httptest.NewRecorder()

			ctrl.Register(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusCreated {
				require.Equal(t, "ev-1", fake.lastEventID)
				var reg domain.Registration
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&reg))
				assert.Equal(t, "reg-created", reg.ID)
				assert.Equal(t, "ev-1", reg.EventID)
				assert.Equal(t, "alice@example.com", reg.Email)
				return
			}
			assert.Contains(t, decodeError(t, rr.Body), tt.wantBodySubstr)
		})
	}
}

func TestRegistrationController_ListByEvent(t *testing.T) {
	ts := time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		fake       *fakeRegistrationService
		wantStatus int
		wantLen    int
		wantError  string
	}{
		{
			name: "success",
			fake: &fakeRegistrationService{listResult: []*domain.Registration{
				{ID: "reg-2", EventID: "ev-1", Name: "Mei Chen", Email: "mei@example.com", Timestamp: ts.Add(time.Hour)},
				{ID: "reg-1", EventID: "ev-1", Name: "Rahul Verma", Email: "rahul@example.com", Timestamp: ts},
			}},
			wantStatus: http.StatusOK,
			wantLen:    2,
		},
		{
			name:       "no registrations is a JSON array",
			fake:       &fakeRegistrationService{},
			wantStatus: http.StatusOK,
			wantLen:    0,
		},
		{
			name:       "store failure",
			fake:       &fakeRegistrationService{listErr: errors.New("connection refused")},
			wantStatus: http.StatusInternalServerError,
			wantError:  "Failed to fetch registrations",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewRegistrationController(testLogger, tt.fake)
			req := httptest.NewRequest(http.MethodGet, "/registrations/ev-1", nil)
			req.SetPathValue("eventID", "ev-1")
			rr := httptest.NewRecorder()

			ctrl.ListByEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			require.Equal(t, "ev-1", tt.fake.lastEventID)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeError(t, rr.Body))
				return
			}
			var regs []*domain.Registration
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&regs))
			require.Len(t, regs, tt.wantLen)
		})
	}
}
