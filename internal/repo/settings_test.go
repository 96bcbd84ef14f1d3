package repo

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/overlaylab/rtsp-overlay/internal/models"
)

func TestStreamSettingsByUser_AbsentIsNil(t *testing.T) {
	r := newTestRepo(t)

	settings, err := r.StreamSettingsByUser(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, settings)
}

func TestUpsertStreamSettings_ReplacesWholeRow(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	userID := uuid.NewString()

	first := &models.StreamSettings{UserID: userID, StreamURL: "https://a.example/live.m3u8", StreamType: "hls"}
	require.NoError(t, r.UpsertStreamSettings(ctx, first))

	second := &models.StreamSettings{UserID: userID, StreamURL: "https://b.example/live.mpd", StreamType: "dash"}
	require.NoError(t, r.UpsertStreamSettings(ctx, second))

	got, err := r.StreamSettingsByUser(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "https://b.example/live.mpd", got.StreamURL)
	assert.Equal(t, "dash", got.StreamType)

	var count int64
	require.NoError(t, r.DB.Model(&models.StreamSettings{}).Where("user_id = ?", userID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpsertStreamSettings_PerUserRows(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	alice, bob := uuid.NewString(), uuid.NewString()

	require.NoError(t, r.UpsertStreamSettings(ctx, &models.StreamSettings{UserID: alice, StreamURL: "https://a.example/live.m3u8", StreamType: "hls"}))
	require.NoError(t, r.UpsertStreamSettings(ctx, &models.StreamSettings{UserID: bob, StreamURL: "https://b.example/live.mp4", StreamType: "mp4"}))

	got, err := r.StreamSettingsByUser(ctx, alice)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "hls", got.StreamType)
}
