package storage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
)

// Variant describes one generated image size. Width/Height of 0 means
// "preserve aspect ratio on that axis".
type Variant struct {
	Name   string
	Width  int
	Height int
}

// The sizes the site serves: thumbnail and card are cropped to a fixed
// frame, tablet and desktop are width-bounded resizes.
var Variants = []Variant{
	{Name: "thumbnail", Width: 400, Height: 300},
	{Name: "card", Width: 768, Height: 576},
	{Name: "tablet", Width: 1024},
	{Name: "desktop", Width: 1920},
}

type ImageProcessor struct {
	MaxSize int64 // bytes
}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{MaxSize: 5 * 1024 * 1024}
}

func (p *ImageProcessor) ValidateImage(data []byte) error {
	if int64(len(data)) > p.MaxSize {
		return fmt.Errorf("image exceeds %dMB", p.MaxSize/(1024*1024))
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("not an image: %w", err)
	}
	switch format {
	case "jpeg", "png":
		return nil
	default:
		return fmt.Errorf("image format %s not allowed (only jpeg/png)", format)
	}
}

// ProcessImage renders every configured variant from the original upload.
func (p *ImageProcessor) ProcessImage(data []byte) (map[string][]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	out := make(map[string][]byte, len(Variants))
	for _, v := range Variants {
		var resized image.Image
		if v.Height > 0 {
			resized = imaging.Fill(img, v.Width, v.Height, imaging.Center, imaging.Lanczos)
		} else {
			resized = imaging.Resize(img, v.Width, 0, imaging.Lanczos)
		}
		buf := new(bytes.Buffer)
		if err := jpeg.Encode(buf, resized, &jpeg.Options{Quality: 90}); err != nil {
			return nil, fmt.Errorf("cannot encode %s variant: %w", v.Name, err)
		}
		out[v.Name] = buf.Bytes()
	}
	return out, nil
}
