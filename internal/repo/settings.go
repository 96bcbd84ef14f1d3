package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/overlaylab/rtsp-overlay/internal/models"
)

// StreamSettingsByUser returns (nil, nil) when the user has never saved
// settings. Reading never creates a row.
func (r *GormRepo) StreamSettingsByUser(ctx context.Context, userID string) (*models.StreamSettings, error) {
	var settings models.StreamSettings
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

// UpsertStreamSettings replaces the whole settings row for the user.
func (r *GormRepo) UpsertStreamSettings(ctx context.Context, s *models.StreamSettings) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(s).Error
}
