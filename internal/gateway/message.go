// Package gateway sends disparo messages through the WhatsApp gateway.
package gateway

import (
	"github.com/popeskul/disparo-queue/internal/models"
)

// Kind identifies a message variant.
type Kind string

const (
	KindText     Kind = "text"
	KindImage    Kind = "image"
	KindVideo    Kind = "video"
	KindAudio    Kind = "audio"
	KindDocument Kind = "document"
)

const (
	sendTextPath  = "/message/sendText/"
	sendMediaPath = "/message/sendMedia/"
	sendAudioPath = "/message/sendWhatsAppAudio/"
)

// Message is one outbound gateway message. Values are built with Text,
// Image, Video, Audio, Document or FromMedia; each variant owns its endpoint
// and request shape.
type Message interface {
	Kind() Kind
	path() string
	body(number string) any
}

type sendTextRequest struct {
	Number string `json:"number"`
	Text   string `json:"text"`
}

type sendMediaRequest struct {
	Number    string `json:"number"`
	MediaType string `json:"mediatype"`
	Media     string `json:"media"`
	Caption   string `json:"caption,omitempty"`
	FileName  string `json:"fileName,omitempty"`
	MimeType  string `json:"mimetype,omitempty"`
}

type sendAudioRequest struct {
	Number string `json:"number"`
	Audio  string `json:"audio"`
}

type textMessage struct {
	text string
}

func (m textMessage) Kind() Kind   { return KindText }
func (m textMessage) path() string { return sendTextPath }
func (m textMessage) body(number string) any {
	return sendTextRequest{Number: number, Text: m.text}
}

type mediaMessage struct {
	kind     Kind
	url      string
	caption  string
	fileName string
	mimeType string
}

func (m mediaMessage) Kind() Kind   { return m.kind }
func (m mediaMessage) path() string { return sendMediaPath }
func (m mediaMessage) body(number string) any {
	return sendMediaRequest{
		Number:    number,
		MediaType: string(m.kind),
		Media:     m.url,
		Caption:   m.caption,
		FileName:  m.fileName,
		MimeType:  m.mimeType,
	}
}

// Audio is delivered as a voice note; the gateway accepts no caption for it.
type audioMessage struct {
	url string
}

func (m audioMessage) Kind() Kind   { return KindAudio }
func (m audioMessage) path() string { return sendAudioPath }
func (m audioMessage) body(number string) any {
	return sendAudioRequest{Number: number, Audio: m.url}
}

func Text(text string) Message {
	return textMessage{text: text}
}

func Image(url, caption, fileName string) Message {
	return mediaMessage{kind: KindImage, url: url, caption: caption, fileName: fileName}
}

func Video(url, caption, fileName string) Message {
	return mediaMessage{kind: KindVideo, url: url, caption: caption, fileName: fileName}
}

// Document is the only media variant that forwards a mimetype.
func Document(url, caption, fileName, mimeType string) Message {
	return mediaMessage{kind: KindDocument, url: url, caption: caption, fileName: fileName, mimeType: mimeType}
}

func Audio(url string) Message {
	return audioMessage{url: url}
}

// FromMedia picks the variant for a stored media descriptor. A nil
// descriptor yields a plain text message; for audio the text is dropped.
func FromMedia(text string, media *models.Media) Message {
	if media == nil {
		return Text(text)
	}

	switch media.Type {
	case models.MediaImage:
		return Image(media.URL, text, media.FileName)
	case models.MediaVideo:
		return Video(media.URL, text, media.FileName)
	case models.MediaAudio:
		return Audio(media.URL)
	case models.MediaDocument:
		return Document(media.URL, text, media.FileName, media.MimeType)
	default:
		return Text(text)
	}
}
