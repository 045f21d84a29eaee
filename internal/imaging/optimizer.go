package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // register PNG decoding for uploaded captures
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/fleetware/transport-ops/internal/common"
)

// Optimizer produces a JPEG under a target byte budget without
// unreviewable quality loss. Files already under the budget pass through
// untouched; re-encodes that come out larger than the original are
// discarded.
type Optimizer struct {
	TargetBytes  int64
	MaxDimension int
	Quality      int
	Logger       *slog.Logger
}

// Result reports what the optimiser did. Path is the file to use from now
// on: the optimised artefact, or the original when it was already small
// enough (or re-encoding did not help).
type Result struct {
	Path          string
	OriginalBytes int64
	FinalBytes    int64
	Resized       bool
	Rewritten     bool
}

func NewOptimizer(targetBytes int64, maxDimension, quality int, logger *slog.Logger) *Optimizer {
	if targetBytes <= 0 {
		targetBytes = 1 << 20
	}
	if maxDimension <= 0 {
		maxDimension = 1024
	}
	if quality <= 0 {
		quality = 60
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Optimizer{
		TargetBytes:  targetBytes,
		MaxDimension: maxDimension,
		Quality:      quality,
		Logger:       logger,
	}
}

// Optimize reads srcPath and, when it exceeds the byte budget, writes a
// resized re-encoded JPEG to dstPath.
func (o *Optimizer) Optimize(srcPath, dstPath string) (Result, error) {
	st, err := os.Stat(srcPath)
	if err != nil {
		return Result{}, common.DocumentProcessingError("source image missing", err)
	}

	res := Result{Path: srcPath, OriginalBytes: st.Size(), FinalBytes: st.Size()}
	if st.Size() <= o.TargetBytes {
		o.Logger.Info("imaging.optimize.passthrough",
			"path", srcPath, "bytes", st.Size(), "budget", o.TargetBytes)
		return res, nil
	}

	f, err := os.Open(srcPath)
	if err != nil {
		return Result{}, common.DocumentProcessingError("open source image", err)
	}
	src, _, err := image.Decode(f)
	closeErr := f.Close()
	if err != nil {
		return Result{}, common.DocumentProcessingError("decode source image", err)
	}
	if closeErr != nil {
		o.Logger.Warn("imaging.optimize.close_error", "path", srcPath, "error", closeErr)
	}

	// Convert to plain RGB-backed RGBA; drops alpha and exotic colour models.
	img, resized := o.scale(src)
	res.Resized = resized

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: o.Quality}); err != nil {
		return Result{}, common.DocumentProcessingError("re-encode jpeg", err)
	}

	// Already-compressed inputs can re-encode larger; keep the original.
	if int64(buf.Len()) >= st.Size() {
		o.Logger.Info("imaging.optimize.kept_original",
			"path", srcPath, "original_bytes", st.Size(), "reencoded_bytes", buf.Len())
		return res, nil
	}

	if err := os.WriteFile(dstPath, buf.Bytes(), 0o644); err != nil {
		return Result{}, common.DocumentProcessingError("write optimized image", err)
	}

	res.Path = dstPath
	res.FinalBytes = int64(buf.Len())
	res.Rewritten = true
	o.Logger.Info("imaging.optimize.ok",
		"src", srcPath, "dst", dstPath,
		"original_bytes", st.Size(), "final_bytes", buf.Len(),
		"resized", resized,
	)
	return res, nil
}

// scale returns an RGBA copy of src, uniformly downscaled so the longer
// side equals MaxDimension when either dimension exceeds it.
func (o *Optimizer) scale(src image.Image) (image.Image, bool) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	if w <= o.MaxDimension && h <= o.MaxDimension {
		out := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.Draw(out, out.Bounds(), src, b.Min, xdraw.Src)
		return out, false
	}

	var nw, nh int
	if w >= h {
		nw = o.MaxDimension
		nh = h * o.MaxDimension / w
	} else {
		nh = o.MaxDimension
		nw = w * o.MaxDimension / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	out := image.NewRGBA(image.Rect(0, 0, nw, nh))
	xdraw.CatmullRom.Scale(out, out.Bounds(), src, b, xdraw.Over, nil)
	return out, true
}

// OptimizedName returns the deterministic artefact name for a capture
// image: ocr_ready_<original_basename>.jpg next to the original.
func OptimizedName(srcPath string) string {
	base := filepath.Base(srcPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return filepath.Join(filepath.Dir(srcPath), fmt.Sprintf("ocr_ready_%s.jpg", stem))
}

// PageOptimizedName returns the artefact name for a rasterised PDF page.
func PageOptimizedName(scratchDir string, page int) string {
	return filepath.Join(scratchDir, fmt.Sprintf("page_%d_optimized.jpg", page))
}
