package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/overlaylab/rtsp-overlay/internal/models"
	"github.com/overlaylab/rtsp-overlay/internal/repo"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Overlay{}, &models.StreamSettings{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return db
}

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()

	return &AuthService{
		Repo:          &repo.GormRepo{DB: newTestDB(t)},
		JWTSecret:     []byte("test-jwt-secret"),
		RefreshSecret: []byte("test-refresh-secret"),
	}
}

func newTestOverlayService(t *testing.T) (*OverlayService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	return &OverlayService{Repo: &repo.GormRepo{DB: db}}, db
}
