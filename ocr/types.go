package ocr

import (
	"context"
	"errors"
)

// ImageFormat identifies the content type of an OCR input image.
type ImageFormat string

const (
	ImageFormatPNG  ImageFormat = "image/png"
	ImageFormatJPEG ImageFormat = "image/jpeg"
	ImageFormatTIFF ImageFormat = "image/tiff"
	ImageFormatGIF  ImageFormat = "image/gif"
	ImageFormatBMP  ImageFormat = "image/bmp"
	ImageFormatWebP ImageFormat = "image/webp"
)

var (
	// ErrEmptyImage is returned when an input carries no image bytes.
	ErrEmptyImage = errors.New("ocr: empty image")
	// ErrUnsupportedImage is returned when the image cannot be decoded.
	ErrUnsupportedImage = errors.New("ocr: unsupported image format")
)

// Input encapsulates a single card image submitted for OCR.
type Input struct {
	// ID is an optional caller-provided identifier that is echoed back in the
	// corresponding Result.
	ID string
	// Image is the encoded image payload in the format specified by Format.
	Image []byte
	// Format declares the image content type (e.g., image/png).
	Format ImageFormat
	// DPI carries the effective dots-per-inch for the image. Providers such as
	// Tesseract use this for scaling and layout heuristics; zero means unknown.
	DPI int
	// Languages is a list of language hints (e.g., "eng", "deu") that
	// providers can use to select trained data.
	Languages []string
	// MinWidth is the width in pixels below which InputFromImage upscales the
	// image before recognition. Zero disables upscaling.
	MinWidth int
	// Metadata allows callers to pass through engine-specific knobs (e.g.,
	// "tessedit_pageseg_mode" for Tesseract) without hard-coding them into
	// the API surface.
	Metadata map[string]string
}

// Result captures OCR output for a single input image.
type Result struct {
	// InputID mirrors the Input.ID that produced this result.
	InputID string
	// PlainText contains the linearized text extracted from the image, one
	// recognized line per text line.
	PlainText string
	// Language indicates the dominant language, if known.
	Language string
	// Confidence is the engine's mean word confidence in [0, 1]; zero means
	// unknown.
	Confidence float64
}

// Engine is the OCR provider contract: one image in, one result out.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, input Input) (Result, error)
}

// EngineFunc adapts a plain function into an Engine named "func".
type EngineFunc func(ctx context.Context, input Input) (Result, error)

func (f EngineFunc) Name() string { return "func" }

func (f EngineFunc) Recognize(ctx context.Context, input Input) (Result, error) {
	return f(ctx, input)
}
