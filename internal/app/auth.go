package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/quotely/quotely-api/internal/domain"
	"github.com/quotely/quotely-api/internal/ports"
)

// minPasswordLength is the shortest accepted password.
const minPasswordLength = 8

// invalidCredentials is the constant login failure message. It never
// distinguishes unknown email from wrong password.
const invalidCredentials = "Invalid credentials"

// AuthService handles signup and login. Passwords are bcrypt-hashed;
// sessions are stateless bearer tokens from the injected issuer.
type AuthService struct {
	profiles ports.ProfileRepository
	tokens   ports.TokenIssuer
	logger   *slog.Logger
}

// AuthServiceConfig contains dependencies for the auth service.
type AuthServiceConfig struct {
	Profiles ports.ProfileRepository
	Tokens   ports.TokenIssuer
	Logger   *slog.Logger
}

// NewAuthService creates an auth service.
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &AuthService{
		profiles: cfg.Profiles,
		tokens:   cfg.Tokens,
		logger:   logger,
	}
}

// SignupInput carries a signup request.
type SignupInput struct {
	Email    string
	Password string
	Name     string
	Username string
}

// Session is an authenticated profile plus its bearer token.
type Session struct {
	Profile *domain.Profile
	Token   string
}

// Signup creates a profile and returns a session for it. The username
// defaults to the email local part and the avatar to a generated image,
// as the signup form leaves both optional.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*Session, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))

	switch {
	case email == "":
		return nil, domain.NewValidationError("email", "is required")
	case input.Password == "":
		return nil, domain.NewValidationError("password", "is required")
	case input.Name == "":
		return nil, domain.NewValidationError("name", "is required")
	}

	addr, err := mail.ParseAddress(email)
	if err != nil {
		return nil, domain.NewValidationError("email", "must be a valid email address")
	}

	// ParseAddress accepts display-name forms like "Jane <j@x.com>";
	// store only the bare address.
	email = addr.Address

	if len(input.Password) < minPasswordLength {
		return nil, domain.NewValidationError("password",
			fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}

	username := input.Username
	if username == "" {
		username = email[:strings.Index(email, "@")]
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	profile := &domain.Profile{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         input.Name,
		Username:     username,
		AvatarURL:    avatarURL(input.Name),
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.profiles.Insert(ctx, profile); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(profile.ID)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	s.logger.InfoContext(ctx, "profile created", slog.String("profile_id", profile.ID))

	return &Session{Profile: profile, Token: token}, nil
}

// Login verifies credentials and returns a session. Unknown email and
// wrong password produce the same unauthorized error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	if email == "" {
		return nil, domain.NewValidationError("email", "is required")
	}

	if password == "" {
		return nil, domain.NewValidationError("password", "is required")
	}

	profile, err := s.profiles.ByEmail(ctx, email)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewUnauthorizedError(invalidCredentials)
		}

		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password))
	if err != nil {
		return nil, domain.NewUnauthorizedError(invalidCredentials)
	}

	token, err := s.tokens.Issue(profile.ID)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	return &Session{Profile: profile, Token: token}, nil
}

// avatarURL builds a generated avatar for profiles without a picture.
func avatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=4A90E2&color=fff"
}
