// Package scan runs the card-scanning workflow: recognize the text on a card
// image once, then hand the text to the contact parser. A recognition
// failure is reported as a *RecognitionError and the parser is never run,
// since there is no partial text worth parsing.
package scan

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/wudi/cardkit/contact"
	"github.com/wudi/cardkit/observability"
	"github.com/wudi/cardkit/ocr"
)

// ErrRecognition matches every *RecognitionError via errors.Is.
var ErrRecognition = errors.New("scan: text recognition failed")

// RecognitionError reports that no text could be obtained for a card.
type RecognitionError struct {
	ID     string
	Engine string
	Err    error
}

func (e *RecognitionError) Error() string {
	return fmt.Sprintf("scan: recognize %q with %s: %v", e.ID, e.Engine, e.Err)
}

func (e *RecognitionError) Unwrap() error { return e.Err }

func (e *RecognitionError) Is(target error) bool { return target == ErrRecognition }

// Result is a scanned card: the recognized text and the record parsed from
// it. Every field of the record is best effort and meant for human review.
type Result struct {
	ID         string         `json:"id"`
	Engine     string         `json:"engine"`
	Text       string         `json:"text"`
	Confidence float64        `json:"confidence"`
	Record     contact.Record `json:"card"`
	Duration   time.Duration  `json:"duration"`
}

// Scanner ties an OCR engine to the contact parser.
type Scanner struct {
	engine       ocr.Engine
	logger       observability.Logger
	tracer       observability.Tracer
	timeout      time.Duration
	inputOptions []ocr.InputOption
	concurrency  int
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l observability.Logger) Option {
	return func(s *Scanner) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTracer sets the tracer used for the recognize and parse spans.
func WithTracer(t observability.Tracer) Option {
	return func(s *Scanner) {
		if t != nil {
			s.tracer = t
		}
	}
}

// WithTimeout bounds each recognition call. Zero means no limit beyond the
// caller's context.
func WithTimeout(d time.Duration) Option {
	return func(s *Scanner) { s.timeout = d }
}

// WithInputOptions sets the options applied to every image passed to
// ScanImage, ScanFile and ScanFiles.
func WithInputOptions(opts ...ocr.InputOption) Option {
	return func(s *Scanner) { s.inputOptions = append([]ocr.InputOption(nil), opts...) }
}

// WithConcurrency sets how many files ScanFiles processes at once.
func WithConcurrency(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// New constructs a Scanner. If engine is nil, the default OCR engine is
// used.
func New(engine ocr.Engine, opts ...Option) *Scanner {
	if engine == nil {
		engine = ocr.DefaultEngine()
	}
	s := &Scanner{
		engine:      engine,
		logger:      observability.NopLogger{},
		tracer:      observability.NopTracer(),
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Engine returns the OCR engine in use.
func (s *Scanner) Engine() ocr.Engine { return s.engine }

// Scan recognizes the text of one prepared input and parses it. The engine
// is called exactly once.
func (s *Scanner) Scan(ctx context.Context, in ocr.Input) (Result, error) {
	start := time.Now()
	log := s.logger.With(observability.String("id", in.ID), observability.String("engine", s.engine.Name()))
	log.Debug("recognizing card", observability.Int("bytes", len(in.Image)))

	res, err := s.recognize(ctx, in)
	if err != nil {
		log.Warn("recognition failed", observability.Error("error", err))
		return Result{}, &RecognitionError{ID: in.ID, Engine: s.engine.Name(), Err: err}
	}

	_, span := s.tracer.StartSpan(ctx, observability.SpanParse)
	rec := contact.Parse(res.PlainText)
	span.SetTag("fields", rec.Detected())
	span.Finish()

	out := Result{
		ID:         in.ID,
		Engine:     s.engine.Name(),
		Text:       res.PlainText,
		Confidence: res.Confidence,
		Record:     rec,
		Duration:   time.Since(start),
	}
	log.Info("card scanned",
		observability.Int("chars", utf8.RuneCountInString(res.PlainText)),
		observability.Float64("confidence", res.Confidence),
		observability.Int("fields", rec.Detected()),
		observability.Duration("duration", out.Duration),
	)
	return out, nil
}

// ScanImage prepares an encoded image with the scanner's input options
// (followed by opts) and scans it. An image that cannot be prepared is a
// recognition failure.
func (s *Scanner) ScanImage(ctx context.Context, data []byte, opts ...ocr.InputOption) (Result, error) {
	all := append(append([]ocr.InputOption(nil), s.inputOptions...), opts...)
	in, err := ocr.InputFromImage(data, all...)
	if err != nil {
		id := idOf(all)
		s.logger.Warn("image rejected", observability.String("id", id), observability.Error("error", err))
		return Result{}, &RecognitionError{ID: id, Engine: s.engine.Name(), Err: err}
	}
	return s.Scan(ctx, in)
}

// ScanFile reads an image file and scans it, using the path as the input
// ID.
func (s *Scanner) ScanFile(ctx context.Context, path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", path, err)
	}
	return s.ScanImage(ctx, data, ocr.WithID(path))
}

func (s *Scanner) recognize(ctx context.Context, in ocr.Input) (ocr.Result, error) {
	ctx, span := s.tracer.StartSpan(ctx, observability.SpanRecognize)
	defer span.Finish()
	span.SetTag("engine", s.engine.Name())

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	type outcome struct {
		res ocr.Result
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := ocr.Recognize(ctx, s.engine, in)
		done <- outcome{res, err}
	}()

	select {
	case o := <-done:
		span.SetError(o.err)
		return o.res, o.err
	case <-ctx.Done():
		span.SetError(ctx.Err())
		return ocr.Result{}, ctx.Err()
	}
}

func idOf(opts []ocr.InputOption) string {
	var in ocr.Input
	for _, opt := range opts {
		opt(&in)
	}
	return in.ID
}
