package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/vncsmyrnk/votebox/internal/core/domain"
	"github.com/vncsmyrnk/votebox/internal/core/ports"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type AuthConfig struct {
	JWTSecret       string
	GoogleClientID  string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

type AuthService struct {
	log                 *slog.Logger
	userRepo            ports.UserRepository
	authRepo            ports.AuthRepository
	googleTokenVerifier ports.TokenVerifier
	jwtSecret           []byte
	googleClientID      string
	accessTokenTTL      time.Duration
	refreshTokenTTL     time.Duration
	now                 func() time.Time
}

func NewAuthService(log *slog.Logger, userRepo ports.UserRepository, authRepo ports.AuthRepository, googleTokenVerifier ports.TokenVerifier, cfg AuthConfig) *AuthService {
	if cfg.JWTSecret == "" {
		log.Warn("JWT secret not set")
	}
	if cfg.AccessTokenTTL == 0 {
		cfg.AccessTokenTTL = 15 * time.Minute
	}
	if cfg.RefreshTokenTTL == 0 {
		cfg.RefreshTokenTTL = 7 * 24 * time.Hour
	}

	return &AuthService{
		log:                 log,
		userRepo:            userRepo,
		authRepo:            authRepo,
		googleTokenVerifier: googleTokenVerifier,
		jwtSecret:           []byte(cfg.JWTSecret),
		googleClientID:      cfg.GoogleClientID,
		accessTokenTTL:      cfg.AccessTokenTTL,
		refreshTokenTTL:     cfg.RefreshTokenTTL,
		now:                 time.Now,
	}
}

// Register creates a password account and signs it in.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.TokenPair, error) {
	const op = "AuthService.Register"

	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)

	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidUserInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: email is invalid", domain.ErrInvalidUserInput)
	}
	if len(input.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidUserInput, minPasswordLength)
	}

	log := s.log.With(slog.String("op", op))
	log.Info("registering user")

	passHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user := &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: passHash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			log.Warn("user already exists")
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user registered", slog.String("user_id", user.ID.String()))
	return s.issueTokens(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.TokenPair, error) {
	const op = "AuthService.Login"

	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if user == nil || len(user.PasswordHash) == 0 {
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		s.log.Info("invalid credentials", slog.String("op", op))
		return nil, domain.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

func (s *AuthService) LoginWithGoogle(ctx context.Context, googleToken string) (*ports.TokenPair, error) {
	const op = "AuthService.LoginWithGoogle"

	if s.googleTokenVerifier == nil || s.googleClientID == "" {
		return nil, fmt.Errorf("%w: google sign-in is disabled", domain.ErrInvalidToken)
	}

	payload, err := s.googleTokenVerifier.Verify(ctx, googleToken, s.googleClientID)
	if err != nil {
		s.log.Info("google token rejected", slog.String("op", op), slog.Any("error", err))
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}

	email := normalizeEmail(payload.Email)
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if user == nil {
		user = &domain.User{
			Email: email,
			Name:  payload.Name,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			if !errors.Is(err, domain.ErrUserExists) {
				return nil, fmt.Errorf("%s: failed to create user: %w", op, err)
			}
			// A concurrent first sign-in created the account.
			user, err = s.userRepo.GetByEmail(ctx, email)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
			if user == nil {
				return nil, fmt.Errorf("%s: user vanished after conflict", op)
			}
		}
	}

	return s.issueTokens(ctx, user)
}

func (s *AuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
	const op = "AuthService.RefreshAccessToken"

	rtEntity, err := s.authRepo.GetRefreshTokenByHash(ctx, hashToken(refreshToken))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidToken) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if rtEntity.Revoked {
		return nil, fmt.Errorf("%w: refresh token revoked", domain.ErrInvalidToken)
	}
	if rtEntity.ExpiresAt.Before(s.now()) {
		return nil, fmt.Errorf("%w: refresh token expired", domain.ErrInvalidToken)
	}

	user, err := s.userRepo.GetByID(ctx, rtEntity.UserID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user not found", domain.ErrInvalidToken)
	}

	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// The refresh token is kept until it expires or is revoked.
	return &ports.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	rtEntity, err := s.authRepo.GetRefreshTokenByHash(ctx, hashToken(refreshToken))
	if err != nil {
		// Unknown tokens are already signed out.
		if errors.Is(err, domain.ErrInvalidToken) {
			return nil
		}
		return fmt.Errorf("failed to get refresh token: %w", err)
	}

	return s.authRepo.RevokeRefreshToken(ctx, rtEntity.ID.String())
}

func (s *AuthService) Authenticate(_ context.Context, accessToken string) (domain.Session, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(accessToken, claims, func(t *jwt.Token) (any, error) {
		return s.jwtSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return domain.AnonymousSession(), fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return domain.AnonymousSession(), fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return domain.AnonymousSession(), fmt.Errorf("%w: invalid subject", domain.ErrInvalidToken)
	}

	return domain.NewSession(userID), nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *domain.User) (*ports.TokenPair, error) {
	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := generateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	rtEntity := &domain.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: s.now().Add(s.refreshTokenTTL),
	}
	if err := s.authRepo.StoreRefreshToken(ctx, rtEntity); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &ports.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *AuthService) generateAccessToken(user *domain.User) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"exp":   now.Add(s.accessTokenTTL).Unix(),
		"iat":   now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func generateRefreshToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

func hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
