package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"reviewboard/internal/auth"
	"reviewboard/internal/domain"
)

type AuthService struct {
	users      domain.UserRepository
	tokens     domain.TokenIssuer
	bcryptCost int
}

func NewAuthService(users domain.UserRepository, tokens domain.TokenIssuer, bcryptCost int) *AuthService {
	return &AuthService{users: users, tokens: tokens, bcryptCost: bcryptCost}
}

// Register stores a new user with a one-way password hash and returns a
// signed session. Duplicate username or email surfaces as ErrConflict.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (domain.Session, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return domain.Session{}, fmt.Errorf("%w: username, email and password are required", domain.ErrInvalid)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return domain.Session{}, fmt.Errorf("hashing password: %w", err)
	}

	u, err := s.users.CreateUser(ctx, username, email, hash)
	if err != nil {
		return domain.Session{}, err
	}
	return s.newSession(u)
}

// Authenticate returns one generic error for unknown email and wrong
// password. The unknown-email path still burns a bcrypt comparison so the two
// failures take comparable time.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (domain.Session, error) {
	u, err := s.users.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			auth.BurnPassword(password)
			return domain.Session{}, domain.ErrInvalidCredentials
		}
		return domain.Session{}, err
	}

	if !auth.CheckPassword(u.PasswordHash, password) {
		log.Warn().Str("email", email).Msg("login failed")
		return domain.Session{}, domain.ErrInvalidCredentials
	}
	return s.newSession(u)
}

func (s *AuthService) VerifyToken(token string) (domain.Identity, error) {
	return s.tokens.Verify(token)
}

func (s *AuthService) newSession(u domain.User) (domain.Session, error) {
	token, err := s.tokens.Issue(domain.Identity{UserID: u.ID, Username: u.Username})
	if err != nil {
		return domain.Session{}, fmt.Errorf("issuing token: %w", err)
	}
	return domain.Session{Token: token, User: u}, nil
}
