package services

import (
	"context"
	"time"

	"eventmanagement/internal/domain"
)

type fakeUserRepo struct {
	createFn     func(ctx context.Context, u *domain.User) error
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	getByIDFn    func(ctx context.Context, id string) (*domain.User, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	return f.createFn(ctx, u)
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return f.getByEmailFn(ctx, email)
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return f.getByIDFn(ctx, id)
}

type fakeEventRepo struct {
	createFn  func(ctx context.Context, e *domain.Event) error
	getByIDFn func(ctx context.Context, id string) (*domain.Event, error)
	listFn    func(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error)
	updateFn  func(ctx context.Context, id string, upd domain.EventUpdate) (*domain.Event, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	return f.createFn(ctx, e)
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeEventRepo) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	return f.listFn(ctx, filter)
}

func (f *fakeEventRepo) Update(ctx context.Context, id string, upd domain.EventUpdate) (*domain.Event, error) {
	return f.updateFn(ctx, id, upd)
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

type fakeRegistrationRepo struct {
	createFn            func(ctx context.Context, reg *domain.EventRegistration) error
	getByEventAndUserFn func(ctx context.Context, eventID, userID string) (*domain.EventRegistration, error)
}

func (f *fakeRegistrationRepo) Create(ctx context.Context, reg *domain.EventRegistration) error {
	return f.createFn(ctx, reg)
}

func (f *fakeRegistrationRepo) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.EventRegistration, error) {
	return f.getByEventAndUserFn(ctx, eventID, userID)
}

type fakeHasher struct {
	generateSaltFn func() (string, error)
	hashFn         func(salt, password string) (string, error)
	compareFn      func(hash, salt, password string) error
}

func (f *fakeHasher) GenerateSalt() (string, error) {
	return f.generateSaltFn()
}

func (f *fakeHasher) Hash(salt, password string) (string, error) {
	return f.hashFn(salt, password)
}

func (f *fakeHasher) Compare(hash, salt, password string) error {
	return f.compareFn(hash, salt, password)
}

type fakeTokenManager struct {
	issueAccessFn   func(userID, email string, expiry time.Duration) (string, error)
	issueRefreshFn  func(userID string, expiry time.Duration) (string, error)
	verifyAccessFn  func(token string) (string, error)
	verifyRefreshFn func(token string) (string, error)
}

func (f *fakeTokenManager) IssueAccess(userID, email string, expiry time.Duration) (string, error) {
	return f.issueAccessFn(userID, email, expiry)
}

func (f *fakeTokenManager) IssueRefresh(userID string, expiry time.Duration) (string, error) {
	return f.issueRefreshFn(userID, expiry)
}

func (f *fakeTokenManager) VerifyAccess(token string) (string, error) {
	return f.verifyAccessFn(token)
}

func (f *fakeTokenManager) VerifyRefresh(token string) (string, error) {
	return f.verifyRefreshFn(token)
}

type fakeEmailService struct {
	sent   []*domain.RegistrationConfirmationEmailData
	sendFn func(ctx context.Context, data *domain.RegistrationConfirmationEmailData) error
}

func (f *fakeEmailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationConfirmationEmailData) error {
	f.sent = append(f.sent, data)
	if f.sendFn != nil {
		return f.sendFn(ctx, data)
	}
	return nil
}
