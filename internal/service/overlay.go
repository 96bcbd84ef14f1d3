package service

import (
	"context"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/google/uuid"

	"github.com/overlaylab/rtsp-overlay/internal/events"
	"github.com/overlaylab/rtsp-overlay/internal/logging"
	"github.com/overlaylab/rtsp-overlay/internal/models"
	"github.com/overlaylab/rtsp-overlay/internal/repo"
	"github.com/overlaylab/rtsp-overlay/internal/service/search"
	"github.com/overlaylab/rtsp-overlay/internal/transport"
)

// Create defaults, from the product side of the overlay editor.
const (
	defaultPositionX = 100
	defaultPositionY = 100
	defaultWidth     = 200
	defaultHeight    = 50
)

func defaultStyle() models.Style {
	return models.Style{
		FontSize:        16,
		FontColor:       "#ffffff",
		BackgroundColor: "transparent",
		Opacity:         1,
		FontFamily:      "Arial",
		FontWeight:      "normal",
	}
}

type OverlayService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
	ES       *elasticsearch.Client
	ESIndex  string
}

func validOverlayType(t string) bool {
	return t == "text" || t == "image"
}

func intOr(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}

func floatOr(v *float64, def float64) float64 {
	if v != nil {
		return *v
	}
	return def
}

func stringOr(v *string, def string) string {
	if v != nil {
		return *v
	}
	return def
}

// Create validates type and content before anything is written, then
// fills every absent field with its default.
func (s *OverlayService) Create(ctx context.Context, userID string, req transport.CreateOverlayRequest) (*models.Overlay, error) {
	l := logging.FromContext(ctx).With("svc", "overlay.create", "user_id", userID)

	overlayType := req.Type
	if overlayType == "" {
		overlayType = "text"
	}
	if !validOverlayType(overlayType) {
		return nil, ErrInvalidOverlayType
	}
	if req.Content == "" {
		return nil, ErrMissingContent
	}

	overlay := models.Overlay{
		ID:       uuid.NewString(),
		UserID:   userID,
		Type:     overlayType,
		Content:  req.Content,
		Position: models.Position{X: defaultPositionX, Y: defaultPositionY},
		Size:     models.Size{Width: defaultWidth, Height: defaultHeight},
		Style:    defaultStyle(),
	}
	if req.Position != nil {
		overlay.Position.X = intOr(req.Position.X, defaultPositionX)
		overlay.Position.Y = intOr(req.Position.Y, defaultPositionY)
	}
	if req.Size != nil {
		overlay.Size.Width = intOr(req.Size.Width, defaultWidth)
		overlay.Size.Height = intOr(req.Size.Height, defaultHeight)
	}
	if req.Style != nil {
		def := defaultStyle()
		overlay.Style = models.Style{
			FontSize:        intOr(req.Style.FontSize, def.FontSize),
			FontColor:       stringOr(req.Style.FontColor, def.FontColor),
			BackgroundColor: stringOr(req.Style.BackgroundColor, def.BackgroundColor),
			Opacity:         floatOr(req.Style.Opacity, def.Opacity),
			FontFamily:      stringOr(req.Style.FontFamily, def.FontFamily),
			FontWeight:      stringOr(req.Style.FontWeight, def.FontWeight),
		}
	}

	if err := s.Repo.CreateOverlay(ctx, &overlay); err != nil {
		l.Error("create_failed", "error", err)
		return nil, err
	}

	s.index(ctx, &overlay)
	s.publish(ctx, userID, map[string]any{
		"type":       "overlay_created",
		"user_id":    userID,
		"overlay_id": overlay.ID,
	})

	l.Info("overlay_created", "overlay_id", overlay.ID)
	return &overlay, nil
}

func (s *OverlayService) ListByUser(ctx context.Context, userID string) ([]models.Overlay, error) {
	return s.Repo.OverlaysByUser(ctx, userID)
}

func (s *OverlayService) GetByID(ctx context.Context, overlayID, userID string) (*models.Overlay, error) {
	overlay, err := s.Repo.OverlayByID(ctx, overlayID, userID)
	if err != nil {
		return nil, err
	}
	if overlay == nil {
		return nil, ErrOverlayNotFound
	}
	return overlay, nil
}

// Update merges only the top-level fields present in the request.
// A supplied position or size replaces the stored pair: absent position
// keys become 0, absent size keys fall back to the 200x50 defaults, and
// a supplied style is replaced wholesale.
func (s *OverlayService) Update(ctx context.Context, overlayID, userID string, req transport.UpdateOverlayRequest) (*models.Overlay, error) {
	l := logging.FromContext(ctx).With("svc", "overlay.update", "user_id", userID)

	if req.Type != nil && !validOverlayType(*req.Type) {
		return nil, ErrInvalidOverlayType
	}

	overlay, err := s.GetByID(ctx, overlayID, userID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		overlay.Type = *req.Type
	}
	if req.Content != nil {
		overlay.Content = *req.Content
	}
	if req.Position != nil {
		overlay.Position = models.Position{
			X: intOr(req.Position.X, 0),
			Y: intOr(req.Position.Y, 0),
		}
	}
	if req.Size != nil {
		overlay.Size = models.Size{
			Width:  intOr(req.Size.Width, defaultWidth),
			Height: intOr(req.Size.Height, defaultHeight),
		}
	}
	if req.Style != nil {
		overlay.Style = models.Style{
			FontSize:        intOr(req.Style.FontSize, 0),
			FontColor:       stringOr(req.Style.FontColor, ""),
			BackgroundColor: stringOr(req.Style.BackgroundColor, ""),
			Opacity:         floatOr(req.Style.Opacity, 0),
			FontFamily:      stringOr(req.Style.FontFamily, ""),
			FontWeight:      stringOr(req.Style.FontWeight, ""),
		}
	}

	if err := s.Repo.SaveOverlay(ctx, overlay); err != nil {
		l.Error("update_failed", "error", err)
		return nil, err
	}

	s.index(ctx, overlay)
	s.publish(ctx, userID, map[string]any{
		"type":       "overlay_updated",
		"user_id":    userID,
		"overlay_id": overlay.ID,
	})

	return overlay, nil
}

func (s *OverlayService) Delete(ctx context.Context, overlayID, userID string) error {
	deleted, err := s.Repo.DeleteOverlay(ctx, overlayID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrOverlayNotFound
	}

	if s.ES != nil {
		if err := search.RemoveOverlay(ctx, s.ES, s.ESIndex, overlayID); err != nil {
			logging.FromContext(ctx).Error("search deindex error", "error", err)
		}
	}
	s.publish(ctx, userID, map[string]any{
		"type":       "overlay_deleted",
		"user_id":    userID,
		"overlay_id": overlayID,
	})

	return nil
}

func (s *OverlayService) Search(ctx context.Context, userID, query string, from, size int) (int64, []models.Overlay, error) {
	if s.ES == nil {
		return 0, nil, ErrSearchUnavailable
	}
	return search.Search(ctx, s.ES, s.ESIndex, userID, query, from, size)
}

func (s *OverlayService) index(ctx context.Context, o *models.Overlay) {
	if s.ES == nil {
		return
	}
	if err := search.IndexOverlay(ctx, s.ES, s.ESIndex, o); err != nil {
		logging.FromContext(ctx).Error("search index error", "error", err)
	}
}

func (s *OverlayService) publish(ctx context.Context, key string, event map[string]any) {
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, events.OverlayTopic, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "error", err)
	}
}
