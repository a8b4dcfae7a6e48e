package ocr

import (
	"context"
	"fmt"
	"sync"
)

var (
	defaultMu     sync.RWMutex
	defaultEngine Engine = noopEngine{}
)

// DefaultEngine returns the process-wide default OCR engine. It is a no-op
// engine until a provider package (such as ocr/tesseract) registers itself.
func DefaultEngine() Engine {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultEngine
}

// SetDefaultEngine replaces the process-wide default OCR engine. A nil
// engine restores the no-op engine.
func SetDefaultEngine(engine Engine) {
	if engine == nil {
		engine = noopEngine{}
	}
	defaultMu.Lock()
	defaultEngine = engine
	defaultMu.Unlock()
}

// Recognize validates the input and runs it through engine, falling back to
// the default engine when engine is nil.
func Recognize(ctx context.Context, engine Engine, in Input) (Result, error) {
	if engine == nil {
		engine = DefaultEngine()
	}
	if len(in.Image) == 0 {
		return Result{}, ErrEmptyImage
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	res, err := engine.Recognize(ctx, in)
	if err != nil {
		return Result{}, fmt.Errorf("%s: recognize %s: %w", engine.Name(), in.ID, err)
	}
	if res.InputID == "" {
		res.InputID = in.ID
	}
	return res, nil
}

type noopEngine struct{}

func (noopEngine) Name() string {
	return "noop"
}

func (noopEngine) Recognize(ctx context.Context, input Input) (Result, error) {
	return Result{InputID: input.ID}, nil
}
