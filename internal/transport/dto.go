package transport

import "github.com/overlaylab/rtsp-overlay/internal/models"

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Message      string       `json:"message"`
	User         *models.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// PositionPayload, SizePayload and StylePayload use pointer fields so a
// handler can tell an absent key from an explicit zero.
type PositionPayload struct {
	X *int `json:"x"`
	Y *int `json:"y"`
}

type SizePayload struct {
	Width  *int `json:"width"`
	Height *int `json:"height"`
}

type StylePayload struct {
	FontSize        *int     `json:"fontSize"`
	FontColor       *string  `json:"fontColor"`
	BackgroundColor *string  `json:"backgroundColor"`
	Opacity         *float64 `json:"opacity"`
	FontFamily      *string  `json:"fontFamily"`
	FontWeight      *string  `json:"fontWeight"`
}

type CreateOverlayRequest struct {
	Type     string           `json:"type"`
	Content  string           `json:"content"`
	Position *PositionPayload `json:"position"`
	Size     *SizePayload     `json:"size"`
	Style    *StylePayload    `json:"style"`
}

// UpdateOverlayRequest carries only the top-level fields present in the
// body. A supplied position or size replaces the stored pair wholesale,
// it is never merged with the previous values.
type UpdateOverlayRequest struct {
	Type     *string          `json:"type"`
	Content  *string          `json:"content"`
	Position *PositionPayload `json:"position"`
	Size     *SizePayload     `json:"size"`
	Style    *StylePayload    `json:"style"`
}

type StreamSettingsRequest struct {
	StreamURL  string `json:"stream_url"`
	StreamType string `json:"stream_type"`
}

type StreamSettingsResponse struct {
	StreamURL  string `json:"stream_url"`
	StreamType string `json:"stream_type"`
}
