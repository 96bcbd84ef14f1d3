package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/overlaylab/rtsp-overlay/internal/models"
)

func (r *GormRepo) CreateOverlay(ctx context.Context, o *models.Overlay) error {
	return r.DB.WithContext(ctx).Create(o).Error
}

func (r *GormRepo) OverlaysByUser(ctx context.Context, userID string) ([]models.Overlay, error) {
	var overlays []models.Overlay
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&overlays).Error
	if err != nil {
		return nil, err
	}
	return overlays, nil
}

// OverlayByID filters by id AND owner, so a mismatched pair is
// indistinguishable from a missing record. Returns (nil, nil) when the
// overlay is absent, not owned, or the id is malformed.
func (r *GormRepo) OverlayByID(ctx context.Context, overlayID, userID string) (*models.Overlay, error) {
	if !validID(overlayID) {
		return nil, nil
	}

	var overlay models.Overlay
	err := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", overlayID, userID).
		First(&overlay).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &overlay, nil
}

func (r *GormRepo) SaveOverlay(ctx context.Context, o *models.Overlay) error {
	return r.DB.WithContext(ctx).Save(o).Error
}

// DeleteOverlay reports whether a row matching both id and owner was
// removed.
func (r *GormRepo) DeleteOverlay(ctx context.Context, overlayID, userID string) (bool, error) {
	if !validID(overlayID) {
		return false, nil
	}

	res := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", overlayID, userID).
		Delete(&models.Overlay{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
