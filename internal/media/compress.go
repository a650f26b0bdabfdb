package media

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/mondaynail/salon-api/internal/httperr"
)

const (
	maxWidth  = 1920
	maxHeight = 1080

	// Images at or under this size are relayed untouched.
	compressThresholdBytes = 2 * 1024 * 1024

	webpQuality = 80
)

// Compressor downscales oversized images and re-encodes them as WebP before
// they are relayed to object storage.
type Compressor struct{}

func NewCompressor() *Compressor {
	return &Compressor{}
}

type CompressedImage struct {
	Data        []byte
	ContentType string
	Ext         string
}

// Prepare returns the bytes to upload. Small images pass through with their
// original content type; anything above the threshold is decoded, fitted
// into 1920x1080 and re-encoded as WebP.
func (c *Compressor) Prepare(data []byte, contentType string) (*CompressedImage, error) {
	if len(data) <= compressThresholdBytes {
		return &CompressedImage{
			Data:        data,
			ContentType: contentType,
			Ext:         extForContentType(contentType),
		}, nil
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_image")
	}

	bounds := src.Bounds()
	width, height := fitDimensions(bounds.Dx(), bounds.Dy(), maxWidth, maxHeight)

	if width != bounds.Dx() || height != bounds.Dy() {
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}

	return &CompressedImage{
		Data:        buf.Bytes(),
		ContentType: "image/webp",
		Ext:         ".webp",
	}, nil
}

// fitDimensions scales (w, h) down proportionally so it fits in
// (maxW, maxH); images already inside the box keep their size.
func fitDimensions(w, h, maxW, maxH int) (int, int) {
	if w <= maxW && h <= maxH {
		return w, h
	}

	scaleW := float64(maxW) / float64(w)
	scaleH := float64(maxH) / float64(h)
	scale := scaleW
	if scaleH < scaleW {
		scale = scaleH
	}

	outW := int(float64(w) * scale)
	outH := int(float64(h) * scale)
	if outW < 1 {
		outW = 1
	}
	if outH < 1 {
		outH = 1
	}
	return outW, outH
}

func extForContentType(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
