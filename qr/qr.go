package qr

import (
	"fmt"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"
)

// qrWidth is the rendered image size in pixels.
const qrWidth = 300

// Payload builds the text block encoded into a product's QR image.
// Scanning the image recovers exactly this string.
func Payload(id, title, category string) string {
	return fmt.Sprintf("Product ID: %s\nTitle: %s\nCategory: %s", id, title, category)
}

// Generate writes the QR PNG for a product into dir and returns the
// URL-style relative path stored on the product record.
func Generate(dir, id, title, category string) (string, error) {
	filename := fmt.Sprintf("qrcode_%s.png", id)
	path := filepath.Join(dir, filename)

	if err := qrcode.WriteFile(Payload(id, title, category), qrcode.Medium, qrWidth, path); err != nil {
		return "", fmt.Errorf("failed to generate QR code: %w", err)
	}
	return "/uploads/" + filename, nil
}
