// Package render produces the branded DOCX and PDF versions of a CV.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	_ "image/jpeg"
)

// Palette holds the brand colours.
type Palette struct {
	Primary color.RGBA // headings and candidate name
	Accent  color.RGBA // position title and rules
	Text    color.RGBA // body text
}

// DefaultPalette is navy #1F3864, blue #2E75B6 and charcoal #404040.
var DefaultPalette = Palette{
	Primary: color.RGBA{0x1F, 0x38, 0x64, 0xFF},
	Accent:  color.RGBA{0x2E, 0x75, 0xB6, 0xFF},
	Text:    color.RGBA{0x40, 0x40, 0x40, 0xFF},
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

type Branding struct {
	CompanyName string
	Logo        []byte // PNG or JPEG
	Palette     Palette
}

// LoadBranding reads the logo from logoPath, or draws the default banner
// when logoPath is empty.
func LoadBranding(companyName, logoPath string) (Branding, error) {
	b := Branding{CompanyName: companyName, Palette: DefaultPalette}
	if logoPath == "" {
		logo, err := DefaultLogo()
		if err != nil {
			return Branding{}, err
		}
		b.Logo = logo
		return b, nil
	}

	logo, err := os.ReadFile(logoPath)
	if err != nil {
		return Branding{}, fmt.Errorf("failed to read logo: %w", err)
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(logo)); err != nil {
		return Branding{}, fmt.Errorf("logo %s is not a PNG or JPEG: %w", logoPath, err)
	}
	b.Logo = logo
	return b, nil
}

// DefaultLogo is a plain navy banner with an accent underline.
func DefaultLogo() ([]byte, error) {
	const w, h = 600, 120
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		c := DefaultPalette.Primary
		if y >= h-12 {
			c = DefaultPalette.Accent
		}
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode logo: %w", err)
	}
	return buf.Bytes(), nil
}

// logoInfo returns the image format ("png" or "jpeg") and pixel size.
func logoInfo(logo []byte) (string, int, int, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(logo))
	if err != nil {
		return "", 0, 0, fmt.Errorf("failed to decode logo: %w", err)
	}
	return format, cfg.Width, cfg.Height, nil
}
