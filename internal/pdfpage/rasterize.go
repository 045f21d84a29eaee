package pdfpage

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"

	"github.com/gen2brain/go-fitz"

	"github.com/fleetware/transport-ops/internal/common"
)

// rasterQuality is for the intermediate page JPEG only; the optimiser
// applies the final quality afterwards.
const rasterQuality = 85

// PageCount opens the PDF just long enough to count pages.
func PageCount(pdfPath string) (int, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return 0, common.DocumentProcessingError("open pdf", err)
	}
	defer doc.Close()
	return doc.NumPage(), nil
}

// Rasterize renders one page (1-based) to a JPEG in scratchDir and returns
// its path.
func Rasterize(pdfPath, scratchDir string, page int, dpi float64) (string, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return "", common.DocumentProcessingError("open pdf", err)
	}
	defer doc.Close()

	img, err := doc.ImageDPI(page-1, dpi)
	if err != nil {
		return "", common.DocumentProcessingError(fmt.Sprintf("rasterise page %d", page), err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: rasterQuality}); err != nil {
		return "", common.DocumentProcessingError(fmt.Sprintf("encode page %d", page), err)
	}

	out := filepath.Join(scratchDir, fmt.Sprintf("page_%d.jpg", page))
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return "", common.DocumentProcessingError(fmt.Sprintf("write page %d", page), err)
	}
	return out, nil
}
