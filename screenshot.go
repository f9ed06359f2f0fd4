package starfield

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled screenshot of the next drawn frame. The PNG is
// written to ScreenshotDir with a timestamped filename.
func (e *Effect) Screenshot(label string) {
	e.screenshotQueue = append(e.screenshotQueue, label)
}

// flushScreenshots captures the rendered frame for every queued label and
// writes each as a PNG file. Called at the end of Effect.Draw.
func (e *Effect) flushScreenshots(screen *ebiten.Image) {
	if len(e.screenshotQueue) == 0 {
		return
	}

	if err := os.MkdirAll(e.ScreenshotDir, 0o755); err != nil {
		warnf("screenshot: mkdir %s: %v", e.ScreenshotDir, err)
		e.screenshotQueue = e.screenshotQueue[:0]
		return
	}

	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)

	img := unpremultiply(pixels, w, h)

	stamp := time.Now().Format("20060102_150405")

	for _, label := range e.screenshotQueue {
		path := screenshotPath(e.ScreenshotDir, stamp, label)
		if err := writePNG(path, img); err != nil {
			warnf("screenshot: %v", err)
		}
	}

	e.screenshotQueue = e.screenshotQueue[:0]
}

// unpremultiply converts premultiplied RGBA bytes to a straight-alpha image.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = r, g, b, a
	}
	return img
}

// screenshotPath names a capture <dir>/<stamp>_<label>.png.
func screenshotPath(dir, stamp, label string) string {
	return filepath.Join(dir, stamp+"_"+fileLabel(label)+".png")
}

// writePNG writes img to path. A failed encode removes the partial file.
func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("screenshot %s: %w", filepath.Base(path), err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("screenshot %s: %w", filepath.Base(path), cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(f, img); err != nil {
		return fmt.Errorf("screenshot %s: %w", filepath.Base(path), err)
	}
	return nil
}

// fileLabel maps a script label to a file-name fragment. Runs of unsafe
// characters collapse into one underscore; an empty label becomes "frame".
func fileLabel(label string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.TrimSpace(label) {
		if r < 128 && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '.') {
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	if b.Len() == 0 {
		return "frame"
	}
	return b.String()
}
