package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"eventmanagement/internal/delivery/http/helpers"
	"eventmanagement/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) helpers.APIResponse {
	t.Helper()
	var resp helpers.APIResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

type fakeAuthService struct {
	registerFn func(ctx context.Context, email, password, fullName string) (*domain.User, *domain.TokenPair, error)
	loginFn    func(ctx context.Context, email, password string) (*domain.TokenPair, error)
	refreshFn  func(ctx context.Context, refreshToken string) (string, error)
}

func (f *fakeAuthService) Register(ctx context.Context, email, password, fullName string) (*domain.User, *domain.TokenPair, error) {
	return f.registerFn(ctx, email, password, fullName)
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (*domain.TokenPair, error) {
	return f.loginFn(ctx, email, password)
}

func (f *fakeAuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	return f.refreshFn(ctx, refreshToken)
}

type fakeEventService struct {
	listFn    func(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error)
	getByIDFn func(ctx context.Context, id string) (*domain.Event, error)
	createFn  func(ctx context.Context, event *domain.Event) error
	updateFn  func(ctx context.Context, eventID, callerID string, upd domain.EventUpdate) (*domain.Event, error)
	deleteFn  func(ctx context.Context, eventID, callerID string) error
}

func (f *fakeEventService) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	return f.listFn(ctx, filter)
}

func (f *fakeEventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeEventService) Create(ctx context.Context, event *domain.Event) error {
	return f.createFn(ctx, event)
}

func (f *fakeEventService) Update(ctx context.Context, eventID, callerID string, upd domain.EventUpdate) (*domain.Event, error) {
	return f.updateFn(ctx, eventID, callerID, upd)
}

func (f *fakeEventService) Delete(ctx context.Context, eventID, callerID string) error {
	return f.deleteFn(ctx, eventID, callerID)
}

type fakeRegistrationService struct {
	registerFn func(ctx context.Context, eventID, userID string) (*domain.EventRegistration, error)
}

func (f *fakeRegistrationService) Register(ctx context.Context, eventID, userID string) (*domain.EventRegistration, error) {
	return f.registerFn(ctx, eventID, userID)
}
