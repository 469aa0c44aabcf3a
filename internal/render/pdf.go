package render

import (
	"bytes"
	"fmt"
	"net/http"
	"os"

	"github.com/jung-kurt/gofpdf"

	"minit-mesyuarat/internal/logger"
	"minit-mesyuarat/internal/minit"
)

// PageSpec is the physical page configuration one template renders with.
type PageSpec struct {
	Orientation string
	Size        string
	MarginMM    float64
	// SignatureFontPath points at a decorative TTF for the signature style.
	// A missing or unreadable file falls back to built-in italic and never
	// fails the render.
	SignatureFontPath string
	// FullPageLetterhead paints the composed letterhead image across page 1
	// behind the content instead of flowing it inline.
	FullPageLetterhead bool
}

func DefaultPageSpec() PageSpec {
	return PageSpec{Orientation: "P", Size: "A4", MarginMM: 18}
}

const sigFontFamily = "MinitSignature"

// PDF turns a composed block sequence into final document bytes. It owns
// pagination, fonts and the letterhead background; it never reorders or
// filters blocks. Any failure comes back as a RenderError with no partial
// output.
func PDF(blocks []minit.Block, spec PageSpec) ([]byte, error) {
	pdf := gofpdf.New(spec.Orientation, "mm", spec.Size, "")
	pdf.SetMargins(spec.MarginMM, spec.MarginMM, spec.MarginMM)
	pdf.SetAutoPageBreak(true, spec.MarginMM)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	sigFamily, sigStyle := loadSignatureFont(pdf, spec.SignatureFontPath)

	// The background must be registered before the first page is added so
	// the header hook can draw it.
	if spec.FullPageLetterhead {
		if img := firstImage(blocks); img != nil {
			name := registerImage(pdf, "letterhead-bg", img.Data)
			pw, ph := pdf.GetPageSize()
			pdf.SetHeaderFunc(func() {
				if pdf.PageNo() == 1 {
					pdf.ImageOptions(name, 0, 0, pw, ph, false, imageOptions(img.Data), 0, "")
				}
			})
		}
	}

	pdf.AddPage()

	imgSeq := 0
	for _, b := range blocks {
		switch blk := b.(type) {
		case minit.Heading:
			size := 14.0
			if blk.Level > 1 {
				size = 12
				pdf.Ln(2)
			}
			pdf.SetFont("Arial", "B", size)
			pdf.MultiCell(0, 7, tr(blk.Text), "", "L", false)
		case minit.KeyValueTable:
			pdf.SetFont("Arial", "", 11)
			for _, row := range blk.Rows {
				pdf.CellFormat(40, 6, tr(row.Label), "", 0, "L", false, 0, "")
				pdf.CellFormat(110, 6, tr(row.Value), "", 1, "L", false, 0, "")
			}
		case minit.GridTable:
			drawGrid(pdf, tr, blk)
		case minit.Paragraph:
			switch blk.Style {
			case minit.StyleBold:
				pdf.SetFont("Arial", "B", 11)
				pdf.MultiCell(0, 5.5, tr(blk.Text), "", "L", false)
			case minit.StyleSignature:
				pdf.SetFont(sigFamily, sigStyle, 20)
				text := blk.Text
				if sigFamily != sigFontFamily {
					text = tr(text)
				}
				pdf.MultiCell(0, 9, text, "", "L", false)
			default:
				pdf.SetFont("Arial", "", 11)
				pdf.MultiCell(0, 5.5, tr(blk.Text), "", "L", false)
			}
		case minit.Spacer:
			pdf.Ln(blk.Height)
		case minit.Image:
			// Skipped inline when already painted as the page background.
			imgSeq++
			if spec.FullPageLetterhead && imgSeq == 1 {
				continue
			}
			name := registerImage(pdf, fmt.Sprintf("img-%d", imgSeq), blk.Data)
			pdf.ImageOptions(name, spec.MarginMM, 0, blk.Width, blk.Height, true, imageOptions(blk.Data), 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &minit.RenderError{Err: err}
	}
	return buf.Bytes(), nil
}

func drawGrid(pdf *gofpdf.Fpdf, tr func(string) string, t minit.GridTable) {
	pdf.SetDrawColor(128, 128, 128)
	pdf.SetLineWidth(0.2)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(220, 220, 220)
	for i, h := range t.Header {
		pdf.CellFormat(colWidth(t, i), 7, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, row := range t.Rows {
		for i, cell := range row {
			pdf.CellFormat(colWidth(t, i), 6, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func colWidth(t minit.GridTable, i int) float64 {
	if i < len(t.ColWidths) {
		return t.ColWidths[i]
	}
	return 30
}

// loadSignatureFont registers the decorative signature typeface, falling back
// to built-in italic when the file cannot be read.
func loadSignatureFont(pdf *gofpdf.Fpdf, path string) (family, style string) {
	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			pdf.AddUTF8FontFromBytes(sigFontFamily, "", data)
			if pdf.Err() {
				logger.Warn("signature font rejected, using italic fallback", "path", path, "err", pdf.Error())
				pdf.ClearError()
			} else {
				return sigFontFamily, ""
			}
		} else {
			logger.Warn("signature font unavailable, using italic fallback", "path", path, "err", err)
		}
	}
	return "Helvetica", "I"
}

func firstImage(blocks []minit.Block) *minit.Image {
	for _, b := range blocks {
		if img, ok := b.(minit.Image); ok {
			return &img
		}
	}
	return nil
}

func registerImage(pdf *gofpdf.Fpdf, name string, data []byte) string {
	pdf.RegisterImageOptionsReader(name, imageOptions(data), bytes.NewReader(data))
	return name
}

func imageOptions(data []byte) gofpdf.ImageOptions {
	kind := "PNG"
	switch http.DetectContentType(data) {
	case "image/jpeg":
		kind = "JPG"
	case "image/gif":
		kind = "GIF"
	}
	return gofpdf.ImageOptions{ImageType: kind}
}
