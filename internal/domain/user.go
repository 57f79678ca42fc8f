package domain

import (
	"context"
	"time"
)

// User represents an account. Email is the unique identity; there are no
// usernames.
// swagger:model User
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	IsStaff      bool      `json:"is_staff"`
	IsSuperuser  bool      `json:"is_superuser"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TokenPair is the bearer credential pair issued on login and signup.
// swagger:model TokenPair
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues signed bearer tokens for an authenticated user.
type TokenIssuer interface {
	IssueAccess(userID, email string, expiry time.Duration) (string, error)
	IssueRefresh(userID string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token of the given kind and returns the user ID
// it was issued for.
type TokenVerifier interface {
	VerifyAccess(token string) (userID string, err error)
	VerifyRefresh(token string) (userID string, err error)
}

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

// AuthService defines signup, login, and token refresh.
type AuthService interface {
	// Register creates a user with a hashed password and issues a token
	// pair. Returns ErrDuplicateEmail if the email is taken and
	// ErrInvalidInput on malformed input.
	Register(ctx context.Context, email, password, fullName string) (*User, *TokenPair, error)
	// Login validates credentials and issues a token pair. Returns
	// ErrInvalidCredentials on any mismatch, without distinguishing an
	// unknown email from a wrong password.
	Login(ctx context.Context, email, password string) (*TokenPair, error)
	// Refresh mints a new access token from a valid refresh token.
	Refresh(ctx context.Context, refreshToken string) (accessToken string, err error)
}
