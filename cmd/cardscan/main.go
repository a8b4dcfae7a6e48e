// Command cardscan reads business card images (or already recognized text)
// and prints one JSON contact record per input.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/wudi/cardkit/config"
	"github.com/wudi/cardkit/contact"
	"github.com/wudi/cardkit/observability"
	"github.com/wudi/cardkit/ocr"
	_ "github.com/wudi/cardkit/ocr/tesseract"
	"github.com/wudi/cardkit/scan"
)

// options is the parsed command line. set holds the flags given explicitly;
// they override the loaded configuration.
type options struct {
	configPath string
	envFile    string
	textMode   bool
	explain    bool
	inputs     []string
	set        map[string]string
	engine     ocr.Engine
}

type output struct {
	Source     string              `json:"source"`
	Engine     string              `json:"engine,omitempty"`
	Confidence float64             `json:"confidence,omitempty"`
	Card       contact.Record      `json:"card"`
	Lines      []contact.Candidate `json:"lines,omitempty"`
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cardscan: %v\n", err)
		os.Exit(2)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, opts, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "cardscan: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("cardscan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: cardscan [flags] <input>...\n")
		fs.PrintDefaults()
	}
	var opts options
	fs.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&opts.envFile, "env", ".env", "Dotenv file with CARDKIT_* overrides (ignored when missing)")
	fs.BoolVar(&opts.textMode, "text", false, "Inputs are recognized text files (- reads stdin); OCR is skipped")
	fs.BoolVar(&opts.explain, "explain", false, "Include the role assigned to each candidate line")
	fs.String("lang", "", "Comma separated OCR languages (e.g. eng,deu)")
	fs.Int("dpi", 0, "Resolution hint passed to the OCR engine")
	fs.Int("psm", 0, "Tesseract page segmentation mode (0-13)")
	fs.Duration("timeout", 0, "Per-card recognition timeout (0 disables)")
	fs.Int("concurrency", 0, "Cards recognized in parallel")
	fs.String("log-level", "", "Log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return options{}, fmt.Errorf("missing input")
	}
	opts.inputs = fs.Args()
	opts.set = make(map[string]string)
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = f.Value.String() })
	return opts, nil
}

// applyFlags overlays explicitly set command-line flags on cfg.
func applyFlags(cfg *config.Config, set map[string]string) error {
	env := map[string]string{
		"lang":        "LANGUAGES",
		"dpi":         "DPI",
		"psm":         "PSM",
		"timeout":     "TIMEOUT",
		"concurrency": "CONCURRENCY",
		"log-level":   "LOG_LEVEL",
	}
	if err := cfg.ApplyEnv(func(key string) (string, bool) {
		for name, suffix := range env {
			if config.EnvPrefix+suffix == key {
				v, ok := set[name]
				return v, ok
			}
		}
		return "", false
	}); err != nil {
		return err
	}
	return cfg.Validate()
}

func newLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	hopts := &slog.HandlerOptions{Level: lvl}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	}
	return slog.New(slog.NewTextHandler(w, hopts)), nil
}

func run(ctx context.Context, opts options, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load(opts.configPath, opts.envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := applyFlags(cfg, opts.set); err != nil {
		return fmt.Errorf("flags: %w", err)
	}
	sl, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	failed := 0
	report := func(source string, err error) {
		failed++
		fmt.Fprintf(stderr, "cardscan: %s: %v\n", source, err)
	}

	if opts.textMode {
		for _, src := range opts.inputs {
			text, err := readText(src, stdin)
			if err != nil {
				report(src, err)
				continue
			}
			out := output{Source: src}
			if opts.explain {
				a := contact.Analyze(text)
				out.Card, out.Lines = a.Record, a.Pool
			} else {
				out.Card = contact.Parse(text)
			}
			if err := enc.Encode(out); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
	} else {
		scanOpts := append(cfg.ScanOptions(),
			scan.WithLogger(observability.NewSlogLogger(sl)),
			scan.WithTracer(observability.NewSlogTracer(sl)),
		)
		scanner := scan.New(opts.engine, scanOpts...)
		start := time.Now()
		for _, item := range scanner.ScanFiles(ctx, opts.inputs) {
			if item.Err != nil {
				report(item.Path, item.Err)
				continue
			}
			out := output{
				Source:     item.Path,
				Engine:     item.Result.Engine,
				Confidence: item.Result.Confidence,
				Card:       item.Result.Record,
			}
			if opts.explain {
				out.Lines = contact.Analyze(item.Result.Text).Pool
			}
			if err := enc.Encode(out); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
		sl.Debug("batch finished", "inputs", len(opts.inputs), "failed", failed, "duration", time.Since(start))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(opts.inputs))
	}
	return nil
}

func readText(src string, stdin io.Reader) (string, error) {
	if src == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", src, err)
	}
	return strings.TrimPrefix(string(data), "\ufeff"), nil
}
