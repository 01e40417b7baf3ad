package services

import (
	"errors"
	"fmt"

	jwtutil "medora-backend/app/jwt"
	"medora-backend/app/models"
	"medora-backend/app/password"
	"medora-backend/app/repo"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserStore is the credential-store capability the service depends on.
// FindByUsername returns (nil, nil) when no such user exists.
type UserStore interface {
	FindByUsername(username string) (*models.User, error)
	Create(u *models.User) error
}

type AuthService struct {
	users  UserStore
	hasher *password.Hasher
	signer *jwtutil.Signer
}

func NewAuthService(users UserStore, hasher *password.Hasher, signer *jwtutil.Signer) *AuthService {
	return &AuthService{users: users, hasher: hasher, signer: signer}
}

// Signup registers a new user and issues a token for it. The existence
// pre-check is only a fast path; a create that loses a concurrent race
// still fails with ErrUsernameTaken via the store's unique index.
func (s *AuthService) Signup(username, plain string, role models.Role, linkedElderlyUsername string) (string, *models.User, error) {
	existing, err := s.users.FindByUsername(username)
	if err != nil {
		return "", nil, fmt.Errorf("lookup user: %w", err)
	}
	if existing != nil {
		return "", nil, ErrUsernameTaken
	}

	hash, err := s.hasher.Hash(plain)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}
	u := &models.User{
		Username:              username,
		HashedPassword:        hash,
		Role:                  role,
		LinkedElderlyUsername: linkedElderlyUsername,
	}
	if err := s.users.Create(u); err != nil {
		if errors.Is(err, repo.ErrDuplicateUsername) {
			return "", nil, ErrUsernameTaken
		}
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.signer.Sign(u.Username, string(u.Role))
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return token, u, nil
}

// Login validates credentials and issues a token. An unknown username and
// a wrong password return the same error so callers cannot enumerate
// accounts.
func (s *AuthService) Login(username, plain string) (string, *models.User, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		return "", nil, fmt.Errorf("lookup user: %w", err)
	}
	if u == nil || !s.hasher.Verify(plain, u.HashedPassword) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.signer.Sign(u.Username, string(u.Role))
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return token, u, nil
}
