package ocr

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// maxUpscale bounds how far a small image is enlarged.
const maxUpscale = 4

// formats Tesseract reads directly; anything else is re-encoded as PNG.
var passthroughFormats = map[string]ImageFormat{
	"png":  ImageFormatPNG,
	"jpeg": ImageFormatJPEG,
	"tiff": ImageFormatTIFF,
}

var decodedFormats = map[string]ImageFormat{
	"gif":  ImageFormatGIF,
	"bmp":  ImageFormatBMP,
	"webp": ImageFormatWebP,
}

// InputFromImage converts an encoded card photo into an OCR input. The image
// format is sniffed from its header. PNG, JPEG and TIFF payloads are passed
// through untouched unless they are narrower than Input.MinWidth; other
// formats, and undersized images, are decoded, upscaled and re-encoded as
// PNG.
func InputFromImage(data []byte, opts ...InputOption) (Input, error) {
	var in Input
	for _, opt := range opts {
		opt(&in)
	}
	if len(data) == 0 {
		return Input{}, ErrEmptyImage
	}
	cfg, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Input{}, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	if format, ok := passthroughFormats[name]; ok && !needsUpscale(cfg.Width, in.MinWidth) {
		in.Image = data
		in.Format = format
		return in, nil
	}
	if _, ok := passthroughFormats[name]; !ok {
		if _, ok := decodedFormats[name]; !ok {
			return Input{}, fmt.Errorf("%w: %s", ErrUnsupportedImage, name)
		}
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Input{}, fmt.Errorf("decode %s image: %w", name, err)
	}
	img = upscale(img, in.MinWidth)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Input{}, fmt.Errorf("encode png: %w", err)
	}
	in.Image = buf.Bytes()
	in.Format = ImageFormatPNG
	return in, nil
}

func needsUpscale(width, minWidth int) bool {
	return minWidth > 0 && width > 0 && width < minWidth
}

// upscale enlarges img to minWidth (at most maxUpscale times) keeping the
// aspect ratio. Small card crops recognise poorly at their native size.
func upscale(img image.Image, minWidth int) image.Image {
	b := img.Bounds()
	if !needsUpscale(b.Dx(), minWidth) {
		return img
	}
	width := minWidth
	if limit := b.Dx() * maxUpscale; width > limit {
		width = limit
	}
	height := b.Dy() * width / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
