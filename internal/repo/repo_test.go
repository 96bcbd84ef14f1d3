package repo

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/overlaylab/rtsp-overlay/internal/models"
)

func newTestRepo(t *testing.T) *GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Overlay{}, &models.StreamSettings{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return &GormRepo{DB: db}
}

func mustCreateUser(t *testing.T, r *GormRepo, email string) *models.User {
	t.Helper()

	user, err := r.CreateUser(context.Background(), email, "secret1", "tester")
	require.NoError(t, err)
	return user
}
