package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

type MediaType string

const (
	MediaImage    MediaType = "image"
	MediaVideo    MediaType = "video"
	MediaAudio    MediaType = "audio"
	MediaDocument MediaType = "document"
)

// Media describes an attachment embedded in a detail payload under "media".
type Media struct {
	Type     MediaType `json:"type"`
	URL      string    `json:"url"`
	FileName string    `json:"filename,omitempty"`
	MimeType string    `json:"mimetype,omitempty"`
}

// Media extracts the media descriptor. A missing descriptor or one without a
// URL yields nil: the row is sent as plain text.
func (m JSONMap) Media() (*Media, error) {
	raw, ok := m["media"]
	if !ok || raw == nil {
		return nil, nil
	}

	b, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid media descriptor: %w", err)
	}

	var media Media
	if err := json.Unmarshal(b, &media); err != nil {
		return nil, fmt.Errorf("invalid media descriptor: %w", err)
	}
	if strings.TrimSpace(media.URL) == "" {
		return nil, nil
	}

	media.Type = MediaType(strings.ToLower(string(media.Type)))
	switch media.Type {
	case MediaImage, MediaVideo, MediaAudio, MediaDocument:
		return &media, nil
	default:
		return nil, fmt.Errorf("unsupported media type %q", media.Type)
	}
}
