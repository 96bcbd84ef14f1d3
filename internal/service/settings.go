package service

import (
	"context"
	"strings"

	"github.com/overlaylab/rtsp-overlay/internal/models"
	"github.com/overlaylab/rtsp-overlay/internal/repo"
)

type SettingsService struct {
	Repo             *repo.GormRepo
	DefaultStreamURL string
}

func validStreamType(t string) bool {
	return t == "hls" || t == "dash" || t == "mp4"
}

// Get returns the stored settings or the process-wide default. Reading
// never creates a row.
func (s *SettingsService) Get(ctx context.Context, userID string) (*models.StreamSettings, error) {
	settings, err := s.Repo.StreamSettingsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return &models.StreamSettings{
			UserID:     userID,
			StreamURL:  s.DefaultStreamURL,
			StreamType: "hls",
		}, nil
	}
	return settings, nil
}

// Update replaces the whole settings document for the user.
func (s *SettingsService) Update(ctx context.Context, userID, streamURL, streamType string) (*models.StreamSettings, error) {
	streamURL = strings.TrimSpace(streamURL)
	if streamURL == "" {
		return nil, ErrMissingStreamURL
	}
	if streamType == "" {
		streamType = "hls"
	}
	if !validStreamType(streamType) {
		return nil, ErrInvalidStreamType
	}

	settings := models.StreamSettings{
		UserID:     userID,
		StreamURL:  streamURL,
		StreamType: streamType,
	}
	if err := s.Repo.UpsertStreamSettings(ctx, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}
