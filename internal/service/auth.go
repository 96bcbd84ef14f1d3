package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/overlaylab/rtsp-overlay/internal/events"
	"github.com/overlaylab/rtsp-overlay/internal/logging"
	"github.com/overlaylab/rtsp-overlay/internal/models"
	"github.com/overlaylab/rtsp-overlay/internal/repo"
	"github.com/overlaylab/rtsp-overlay/pkg/tokens"
)

const (
	AccessTokenTTL  = 24 * time.Hour
	RefreshTokenTTL = 30 * 24 * time.Hour
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type AuthService struct {
	Repo          *repo.GormRepo
	JWTSecret     []byte
	RefreshSecret []byte
	Producer      *events.Producer
}

type AuthResult struct {
	User         *models.User
	AccessToken  string
	RefreshToken string
}

func (s *AuthService) CreateAccessToken(userID string) (string, error) {
	return tokens.NewAccessToken(userID, time.Now().Add(AccessTokenTTL), s.JWTSecret)
}

func (s *AuthService) CreateRefreshToken(userID string) (string, error) {
	return tokens.NewRefreshToken(userID, time.Now().Add(RefreshTokenTTL), s.RefreshSecret)
}

func (s *AuthService) issueTokens(user *models.User) (*AuthResult, error) {
	accessToken, err := s.CreateAccessToken(user.ID)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.CreateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *AuthService) Signup(ctx context.Context, email, password, username string) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.signup")

	email = strings.TrimSpace(email)
	username = strings.TrimSpace(username)

	if email == "" || password == "" || username == "" {
		return nil, ErrMissingFields
	}
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if len(password) < 6 {
		return nil, ErrShortPassword
	}
	if len(username) < 2 {
		return nil, ErrShortUsername
	}

	// Fast path for the common case; the unique index on email still
	// decides the race between two concurrent signups.
	existing, err := s.Repo.FindUserByEmail(ctx, email)
	if err != nil {
		l.Error("signup_failed", "reason", "db_error", "error", err)
		return nil, err
	}
	if existing != nil {
		l.Warn("signup_failed", "status", 409, "reason", "email_taken")
		return nil, ErrEmailTaken
	}

	user, err := s.Repo.CreateUser(ctx, email, password, username)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			l.Warn("signup_failed", "status", 409, "reason", "email_taken")
			return nil, ErrEmailTaken
		}
		l.Error("signup_failed", "reason", "db_error", "error", err)
		return nil, err
	}

	s.publish(ctx, user.ID, map[string]any{
		"type":     "user_signed_up",
		"user_id":  user.ID,
		"email":    user.Email,
		"username": user.Username,
	})

	l.Info("signup_success", "user_id", user.ID)
	return s.issueTokens(user)
}

func (s *AuthService) Signin(ctx context.Context, email, password string) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.signin")

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.Repo.FindUserByEmail(ctx, email)
	if err != nil {
		l.Error("signin_failed", "reason", "db_error", "error", err)
		return nil, err
	}
	if !s.Repo.VerifyPassword(user, password) {
		l.Warn("signin_failed", "status", 401)
		return nil, ErrInvalidCredentials
	}

	s.publish(ctx, user.ID, map[string]any{
		"type":    "user_signed_in",
		"user_id": user.ID,
	})

	l.Info("signin_success", "user_id", user.ID)
	return s.issueTokens(user)
}

// CurrentUser resolves the identity a verified access token referred to.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.Repo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Refresh mints a new access token from a refresh token. An access token
// presented here fails verification because the two kinds are signed
// with different secrets.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	l := logging.FromContext(ctx).With("svc", "auth.refresh")

	claims, err := tokens.RefreshClaimsFromToken(refreshToken, s.RefreshSecret)
	if err != nil {
		l.Warn("refresh_failed", "status", 401, "error", err)
		return "", ErrInvalidRefreshToken
	}

	accessToken, err := s.CreateAccessToken(claims.Subject)
	if err != nil {
		l.Error("refresh_failed", "error", err)
		return "", err
	}

	return accessToken, nil
}

func (s *AuthService) publish(ctx context.Context, key string, event map[string]any) {
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, events.UserTopic, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "error", err)
	}
}
