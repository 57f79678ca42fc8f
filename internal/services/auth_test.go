package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventmanagement/internal/domain"
)

func newTestTokenManager() *fakeTokenManager {
	return &fakeTokenManager{
		issueAccessFn: func(userID, email string, expiry time.Duration) (string, error) {
			return "access-" + userID, nil
		},
		issueRefreshFn: func(userID string, expiry time.Duration) (string, error) {
			return "refresh-" + userID, nil
		},
	}
}

func newTestHasher() *fakeHasher {
	return &fakeHasher{
		generateSaltFn: func() (string, error) { return "salt", nil },
		hashFn:         func(salt, password string) (string, error) { return "hashed:" + password, nil },
		compareFn: func(hash, salt, password string) error {
			if hash != "hashed:"+password {
				return errors.New("mismatch")
			}
			return nil
		},
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns user and token pair", func(t *testing.T) {
		userRepo := &fakeUserRepo{
			createFn: func(ctx context.Context, u *domain.User) error {
				u.ID = "user-uuid-1"
				return nil
			},
		}
		svc := NewAuthService(userRepo, newTestHasher(), newTestTokenManager(), newTestTokenManager(), time.Minute, time.Hour)

		user, pair, err := svc.Register(ctx, "Alice@Example.COM", "supersecret", "Alice Smith")
		require.NoError(t, err)
		assert.Equal(t, "user-uuid-1", user.ID)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "hashed:supersecret", user.PasswordHash)
		assert.True(t, user.IsActive)
		assert.Equal(t, "access-user-uuid-1", pair.AccessToken)
		assert.Equal(t, "refresh-user-uuid-1", pair.RefreshToken)
	})

	t.Run("invalid input", func(t *testing.T) {
		svc := NewAuthService(&fakeUserRepo{}, newTestHasher(), newTestTokenManager(), newTestTokenManager(), time.Minute, time.Hour)

		tests := []struct {
			name     string
			email    string
			password string
			fullName string
		}{
			{"malformed email", "not-an-email", "supersecret", "Alice"},
			{"short password", "alice@example.com", "short", "Alice"},
			{"empty full name", "alice@example.com", "supersecret", "  "},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, _, err := svc.Register(ctx, tt.email, tt.password, tt.fullName)
				require.ErrorIs(t, err, domain.ErrInvalidInput)
			})
		}
	})

	t.Run("duplicate email surfaces ErrDuplicateEmail", func(t *testing.T) {
		userRepo := &fakeUserRepo{
			createFn: func(ctx context.Context, u *domain.User) error {
				return domain.ErrDuplicateEmail
			},
		}
		svc := NewAuthService(userRepo, newTestHasher(), newTestTokenManager(), newTestTokenManager(), time.Minute, time.Hour)

		_, _, err := svc.Register(ctx, "taken@example.com", "supersecret", "Alice")
		require.ErrorIs(t, err, domain.ErrDuplicateEmail)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	stored := &domain.User{
		ID:           "user-uuid-1",
		Email:        "alice@example.com",
		PasswordHash: "hashed:supersecret",
		Salt:         "salt",
	}

	t.Run("success returns token pair", func(t *testing.T) {
		userRepo := &fakeUserRepo{
			getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
				require.Equal(t, "alice@example.com", email)
				return stored, nil
			},
		}
		svc := NewAuthService(userRepo, newTestHasher(), newTestTokenManager(), newTestTokenManager(), time.Minute, time.Hour)

		pair, err := svc.Login(ctx, " Alice@Example.com ", "supersecret")
		require.NoError(t, err)
		assert.Equal(t, "access-user-uuid-1", pair.AccessToken)
		assert.Equal(t, "refresh-user-uuid-1", pair.RefreshToken)
	})

	t.Run("unknown email", func(t *testing.T) {
		userRepo := &fakeUserRepo{
			getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
				return nil, domain.ErrNotFound
			},
		}
		svc := NewAuthService(userRepo, newTestHasher(), newTestTokenManager(), newTestTokenManager(), time.Minute, time.Hour)

		_, err := svc.Login(ctx, "nobody@example.com", "supersecret")
		require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := &fakeUserRepo{
			getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
				return stored, nil
			},
		}
		svc := NewAuthService(userRepo, newTestHasher(), newTestTokenManager(), newTestTokenManager(), time.Minute, time.Hour)

		_, err := svc.Login(ctx, "alice@example.com", "wrongpassword")
		require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("success issues a fresh access token", func(t *testing.T) {
		manager := newTestTokenManager()
		manager.verifyRefreshFn = func(token string) (string, error) {
			require.Equal(t, "refresh-user-uuid-1", token)
			return "user-uuid-1", nil
		}
		userRepo := &fakeUserRepo{
			getByIDFn: func(ctx context.Context, id string) (*domain.User, error) {
				return &domain.User{ID: id, Email: "alice@example.com"}, nil
			},
		}
		svc := NewAuthService(userRepo, newTestHasher(), manager, manager, time.Minute, time.Hour)

		access, err := svc.Refresh(ctx, "refresh-user-uuid-1")
		require.NoError(t, err)
		assert.Equal(t, "access-user-uuid-1", access)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		manager := newTestTokenManager()
		manager.verifyRefreshFn = func(token string) (string, error) {
			return "", errors.New("invalid token")
		}
		svc := NewAuthService(&fakeUserRepo{}, newTestHasher(), manager, manager, time.Minute, time.Hour)

		_, err := svc.Refresh(ctx, "garbage")
		require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("deleted user", func(t *testing.T) {
		manager := newTestTokenManager()
		manager.verifyRefreshFn = func(token string) (string, error) {
			return "user-uuid-1", nil
		}
		userRepo := &fakeUserRepo{
			getByIDFn: func(ctx context.Context, id string) (*domain.User, error) {
				return nil, domain.ErrNotFound
			},
		}
		svc := NewAuthService(userRepo, newTestHasher(), manager, manager, time.Minute, time.Hour)

		_, err := svc.Refresh(ctx, "refresh-user-uuid-1")
		require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
