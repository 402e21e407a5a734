// Package qr turns outpass capability payloads into scannable PNG images and back.
package qr

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/makiuchi-d/gozxing"
	zxqrcode "github.com/makiuchi-d/gozxing/qrcode"
	qrcode "github.com/skip2/go-qrcode"
)

const DefaultSize = 256

// Payload is the content carried by an outpass QR code.
type Payload struct {
	ID        string `json:"id"`
	StudentID string `json:"studentId"`
}

type Codec struct {
	size  int
	level qrcode.RecoveryLevel
}

func NewCodec(size int) *Codec {
	if size <= 0 {
		size = DefaultSize
	}
	return &Codec{size: size, level: qrcode.Medium}
}

// Encode renders the payload as a PNG and returns it base64 encoded, without a data URL prefix.
func (c *Codec) Encode(p Payload) (string, error) {
	content, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to marshal QR payload: %w", err)
	}
	png, err := qrcode.Encode(string(content), c.level, c.size)
	if err != nil {
		return "", fmt.Errorf("failed to render QR code: %w", err)
	}
	return base64.StdEncoding.EncodeToString(png), nil
}

// Decode reads a base64 image (optionally a data URL) and returns the payload it carries.
func (c *Codec) Decode(encoded string) (Payload, error) {
	raw, err := decodeImageData(encoded)
	if err != nil {
		return Payload{}, err
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return Payload{}, fmt.Errorf("failed to read QR image: %w", err)
	}
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return Payload{}, fmt.Errorf("failed to binarize QR image: %w", err)
	}
	result, err := zxqrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return Payload{}, fmt.Errorf("no QR code found in image: %w", err)
	}
	return ParsePayload(result.GetText())
}

// ParsePayload parses the JSON text embedded in an outpass QR code.
func ParsePayload(text string) (Payload, error) {
	var p Payload
	if err := json.Unmarshal([]byte(text), &p); err != nil {
		return Payload{}, fmt.Errorf("QR content is not an outpass payload: %w", err)
	}
	if p.ID == "" || p.StudentID == "" {
		return Payload{}, fmt.Errorf("QR payload is missing id or studentId")
	}
	return p, nil
}

func decodeImageData(encoded string) ([]byte, error) {
	encoded = strings.TrimSpace(encoded)
	if strings.HasPrefix(encoded, "data:") {
		if idx := strings.Index(encoded, ","); idx >= 0 {
			encoded = encoded[idx+1:]
		}
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("image is not valid base64: %w", err)
	}
	return raw, nil
}
