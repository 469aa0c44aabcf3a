package minit

import (
	"bytes"

	"github.com/disintegration/imaging"
)

// Print-size constants in mm. A4 content width inside 18 mm margins.
const (
	LetterheadMaxWidthMM = 174.0

	// Uploaded pixels map to print mm at 96 dpi.
	mmPerPixel = 25.4 / 96.0
)

// Letterhead is a decoded upload plus its natural print size.
type Letterhead struct {
	Data   []byte
	Width  float64 // mm
	Height float64 // mm
}

// DecodeLetterhead decodes the uploaded bytes and measures them. A corrupt
// upload comes back as an AssetError; callers treat it as a warning.
func DecodeLetterhead(data []byte) (*Letterhead, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &AssetError{Asset: "letterhead", Err: err}
	}
	b := img.Bounds()
	return &Letterhead{
		Data:   data,
		Width:  float64(b.Dx()) * mmPerPixel,
		Height: float64(b.Dy()) * mmPerPixel,
	}, nil
}

// FitWidth scales (w, h) down to maxW preserving aspect ratio. Images already
// narrower than maxW are returned unchanged; there is no upscaling.
func FitWidth(w, h, maxW float64) (float64, float64) {
	if w <= maxW || w <= 0 {
		return w, h
	}
	scale := maxW / w
	return maxW, h * scale
}

// Fit returns the letterhead's block print size within maxW.
func (l *Letterhead) Fit(maxW float64) (float64, float64) {
	return FitWidth(l.Width, l.Height, maxW)
}
