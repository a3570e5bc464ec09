package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html/charset"

	"github.com/hyperifyio/goreadable/internal/extract"
)

type App struct {
	cfg       Config
	extractor extract.Extractor

	// Stdin and Stdout back the "-" input and output paths.
	Stdin  io.Reader
	Stdout io.Writer
}

// ErrNoContent is returned when extraction yields no text at all. The CLI
// maps it to a distinct non-zero exit code.
var ErrNoContent = errors.New("no readable content")

func New(ctx context.Context, cfg Config) (*App, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	opts := extract.Options{
		MinTextLength:  cfg.MinTextLength,
		AncestorLevels: cfg.AncestorLevels,
		KeepUnlikely:   cfg.KeepUnlikely,
		BaseURL:        cfg.BaseURL,
	}
	if cfg.Fallback {
		opts.Fallback = extract.ReadabilityExtractor{BaseURL: cfg.BaseURL}
	}
	ex, err := extract.New(cfg.Strategy, opts)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("strategy", cfg.Strategy).Bool("fallback", cfg.Fallback).Msg("extractor ready")
	return &App{cfg: cfg, extractor: ex, Stdin: os.Stdin, Stdout: os.Stdout}, nil
}

// Run reads one HTML document, extracts its readable content and writes the
// title and text to the configured output.
func (a *App) Run(ctx context.Context) error {
	input, err := a.readInput()
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	doc := a.extractor.Extract(input)
	if strings.TrimSpace(doc.Text) == "" {
		log.Warn().Str("input", a.cfg.InputPath).Msg("no readable content extracted")
		return ErrNoContent
	}

	if err := a.writeOutput(render(doc)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Info().
		Str("output", a.cfg.OutputPath).
		Str("title", doc.Title).
		Int("chars", len(doc.Text)).
		Msg("wrote output")
	return nil
}

func (a *App) readInput() ([]byte, error) {
	var r io.Reader = a.Stdin
	if a.cfg.InputPath != "-" {
		f, err := os.Open(a.cfg.InputPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	// Decode legacy charsets declared in <meta> or sniffed from content.
	utf8, err := charset.NewReader(r, "text/html")
	if err != nil {
		return nil, err
	}
	return io.ReadAll(utf8)
}

func (a *App) writeOutput(s string) error {
	if a.cfg.OutputPath == "-" {
		_, err := io.WriteString(a.Stdout, s)
		return err
	}
	return os.WriteFile(a.cfg.OutputPath, []byte(s), 0o644)
}

// render lays out the title, a blank line and the body text. A missing
// title leaves only the text.
func render(doc extract.Document) string {
	var b strings.Builder
	if doc.Title != "" {
		b.WriteString(doc.Title)
		b.WriteString("\n\n")
	}
	b.WriteString(doc.Text)
	b.WriteString("\n")
	return b.String()
}
