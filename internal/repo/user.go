package repo

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/overlaylab/rtsp-overlay/internal/hash"
	"github.com/overlaylab/rtsp-overlay/internal/models"
)

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser inserts a new user with a bcrypt digest. The unique index on
// email is the authoritative duplicate check: a race between two signups
// resolves here as ErrDuplicateEmail, not in any pre-check.
func (r *GormRepo) CreateUser(ctx context.Context, email, password, username string) (*models.User, error) {
	pwHash, err := hash.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        NormalizeEmail(email),
		Username:     strings.TrimSpace(username),
		PasswordHash: pwHash,
	}

	if err := r.DB.WithContext(ctx).Create(&user).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return &user, nil
}

// FindUserByEmail returns (nil, nil) when no user matches.
func (r *GormRepo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.DB.WithContext(ctx).Where("email = ?", NormalizeEmail(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindUserByID returns (nil, nil) for a malformed id as well as a missing
// record, so callers treat both as not found.
func (r *GormRepo) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	if !validID(id) {
		return nil, nil
	}

	var user models.User
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// VerifyPassword never returns an error: an absent user or empty digest
// simply fails the check.
func (r *GormRepo) VerifyPassword(user *models.User, password string) bool {
	if user == nil || user.PasswordHash == "" {
		return false
	}
	return hash.CheckPassword(user.PasswordHash, password)
}
