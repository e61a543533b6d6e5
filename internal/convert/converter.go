package convert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"rangeshift/internal/imagefile"
	"rangeshift/internal/logging"
	"rangeshift/internal/rangemap"
)

// ErrSourceNotFound indicates the source path does not exist.
var ErrSourceNotFound = errors.New("source file not found")

// Codec is the decode/encode pair the converter delegates file formats to.
type Codec interface {
	Decode(path string) (*imagefile.Image, error)
	Encode(path string, img *imagefile.Image) error
}

type fileCodec struct{}

func (fileCodec) Decode(path string) (*imagefile.Image, error) { return imagefile.Decode(path) }

func (fileCodec) Encode(path string, img *imagefile.Image) error { return imagefile.Encode(path, img) }

// Converter applies the file-conversion policy.
type Converter struct {
	codec      Codec
	logger     *slog.Logger
	extensions map[string]struct{}
}

// New builds a Converter using the on-disk codec. Extensions gate directory
// scans only; explicit ConvertFile calls accept any path the codec can read.
func New(logger *slog.Logger, extensions []string) *Converter {
	return NewWithCodec(fileCodec{}, logger, extensions)
}

// NewWithCodec builds a Converter around a caller-supplied codec.
func NewWithCodec(codec Codec, logger *slog.Logger, extensions []string) *Converter {
	exts := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		exts[strings.ToLower(ext)] = struct{}{}
	}
	return &Converter{
		codec:      codec,
		logger:     logging.NewComponentLogger(logger, "convert"),
		extensions: exts,
	}
}

// ConvertFile converts one file to the target range. Skips are reported as
// outcomes, not errors; the returned error is non-nil only when the job could
// not proceed (bad target, missing source, codec failure).
func (c *Converter) ConvertFile(ctx context.Context, path string, target Target, useSubdir bool) (Outcome, error) {
	outcome := Outcome{Kind: OutcomeFailed, Source: path, Target: target}

	if !target.valid() {
		err := fmt.Errorf("%w: %q", ErrInvalidTarget, string(target))
		outcome.Err = err
		return outcome, err
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		} else {
			err = fmt.Errorf("inspect %s: %w", path, err)
		}
		outcome.Err = err
		return outcome, err
	}

	dir := filepath.Dir(path)
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(filepath.Base(path), ext)

	if hasRangeSuffix(base) {
		c.logger.Info("skipping already tagged file",
			logging.String(logging.FieldSource, path),
			logging.String(logging.FieldOutcome, string(OutcomeSkippedTagged)))
		outcome.Kind = OutcomeSkippedTagged
		return outcome, nil
	}

	destDir := dir
	if useSubdir {
		destDir = filepath.Join(dir, string(target))
		// MkdirAll tolerates the directory already existing, including one
		// created by a concurrent run.
		if err := os.MkdirAll(destDir, 0o755); err != nil {
			err = fmt.Errorf("create destination directory %s: %w", destDir, err)
			outcome.Err = err
			return outcome, err
		}
	}
	destPath := filepath.Join(destDir, base+target.Suffix()+ext)
	outcome.Destination = destPath

	if _, err := os.Stat(destPath); err == nil {
		c.logger.Info("skipping existing destination",
			logging.String(logging.FieldSource, path),
			logging.String(logging.FieldDestination, destPath),
			logging.String(logging.FieldOutcome, string(OutcomeSkippedExists)))
		outcome.Kind = OutcomeSkippedExists
		return outcome, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		err = fmt.Errorf("inspect destination %s: %w", destPath, err)
		outcome.Err = err
		return outcome, err
	}

	if err := ctx.Err(); err != nil {
		outcome.Err = err
		return outcome, err
	}

	img, err := c.codec.Decode(path)
	if err != nil {
		outcome.Err = err
		return outcome, err
	}

	samples := img.ColorSamples()
	converted, err := rangemap.Convert(samples, target.SourceRange(), target.Range(), c.warnSink(path, &outcome))
	if err != nil {
		outcome.Err = err
		return outcome, err
	}
	result, err := img.WithColorSamples(converted)
	if err != nil {
		outcome.Err = err
		return outcome, err
	}

	if err := c.codec.Encode(destPath, result); err != nil {
		outcome.Err = err
		return outcome, err
	}

	c.logger.Info("converted file",
		logging.String(logging.FieldSource, path),
		logging.String(logging.FieldDestination, destPath),
		logging.String(logging.FieldTarget, string(target)))
	outcome.Kind = OutcomeConverted
	return outcome, nil
}

// ScanDirectory runs ConvertFile over every eligible entry in dir. Hidden
// entries, subdirectories, and unrecognized extensions are ignored. Per-file
// failures are recorded in the returned outcomes and do not stop the scan.
func (c *Converter) ScanDirectory(ctx context.Context, dir string, target Target, useSubdir bool) ([]Outcome, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var outcomes []Outcome
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if _, ok := c.extensions[strings.ToLower(filepath.Ext(name))]; !ok {
			continue
		}

		outcome, err := c.ConvertFile(ctx, filepath.Join(dir, name), target, useSubdir)
		if err != nil {
			c.logger.Warn("file conversion failed",
				logging.String(logging.FieldSource, outcome.Source),
				logging.Error(err))
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

func hasRangeSuffix(base string) bool {
	return strings.HasSuffix(base, TargetFull.Suffix()) || strings.HasSuffix(base, TargetLimited.Suffix())
}

func (c *Converter) warnSink(path string, outcome *Outcome) rangemap.WarnFunc {
	return func(w rangemap.Warning, samples int, from, to rangemap.Range) {
		switch w {
		case rangemap.WarningInputOutOfRange:
			outcome.InputOutOfRange = samples
			c.logger.Warn("values outside source range will be clipped",
				logging.String(logging.FieldSource, path),
				logging.String("source_range", from.String()),
				logging.Int("samples", samples))
		case rangemap.WarningOutputClipped:
			outcome.OutputClipped = samples
			c.logger.Warn("scaled values required clipping to destination range",
				logging.String(logging.FieldSource, path),
				logging.String("destination_range", to.String()),
				logging.Int("samples", samples))
		}
	}
}
