// Package texutil provides an optional pre-write helper for shrinking
// texture bytes before they go into a graph.Texture. It is grounded on
// the teacher's scaleTexture/addTexture: decode, optionally rescale,
// re-encode to PNG or JPEG.
package texutil

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"

	_ "image/gif"

	"golang.org/x/image/draw"
)

// Options controls recompression. A zero Options leaves the image size
// unchanged and simply re-encodes it in MimeType.
type Options struct {
	// MimeType selects the output codec: "image/png" or "image/jpeg".
	// Anything else is treated as "image/jpeg".
	MimeType string

	// Scale multiplies both dimensions; 0 means 1 (unchanged).
	Scale float32

	// ResolutionLimit caps the larger dimension after scaling; 0 means
	// unlimited.
	ResolutionLimit int

	// JPEGQuality is passed to image/jpeg; 0 uses its default.
	JPEGQuality int
}

// Recompress decodes data, optionally rescales it, and re-encodes it
// per opts. The caller is responsible for feeding the result into
// graph.Root.NewTexture.
func Recompress(data []byte, opts Options) ([]byte, string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", err
	}

	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}
	rect := img.Bounds()
	if opts.ResolutionLimit > 0 {
		dim := rect.Dx()
		if rect.Dy() > dim {
			dim = rect.Dy()
		}
		sz := int(float32(dim) * scale)
		if sz > opts.ResolutionLimit {
			scale *= float32(opts.ResolutionLimit) / float32(sz)
		}
	}

	if scale != 1 {
		dst := image.NewRGBA(image.Rect(0, 0, int(float32(rect.Dx())*scale), int(float32(rect.Dy())*scale)))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, rect, draw.Over, nil)
		img = dst
	}

	mimeType := opts.MimeType
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	var w bytes.Buffer
	if mimeType == "image/png" {
		err = png.Encode(&w, img)
	} else {
		q := opts.JPEGQuality
		if q == 0 {
			q = jpeg.DefaultQuality
		}
		err = jpeg.Encode(&w, img, &jpeg.Options{Quality: q})
	}
	if err != nil {
		return nil, "", err
	}
	return w.Bytes(), mimeType, nil
}
