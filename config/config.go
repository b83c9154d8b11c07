// Package config loads reconciliation settings from the environment and
// optional .env files.
//
// Variables are prefixed with SCORETEXT_, for example:
//
//	SCORETEXT_MIN_CONFIDENCE=0.5
//	SCORETEXT_LYRICS_MODE=forbidden
//	SCORETEXT_SWITCH_LYRICS_ABOVE_STAFF=true
//	SCORETEXT_WORKERS=4
//
// Process environment values win over values read from files. Unset
// variables keep their defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/tsawler/scoretext/layout"
	"github.com/tsawler/scoretext/score"
)

// Prefix is prepended to every variable name
const Prefix = "SCORETEXT_"

// ErrInvalid is returned when a variable cannot be parsed or is out of range
var ErrInvalid = errors.New("invalid configuration")

// Config holds the settings of a reconciliation run
type Config struct {
	// Layout holds the reconciliation thresholds
	Layout layout.Config

	// Switches are the processing switches
	Switches score.Switches

	// Workers is the number of systems reconciled concurrently
	// (default: number of CPUs)
	Workers int

	// Language is the recognizer language, "+" separated (default: "eng")
	Language string
}

// Default returns the default settings
func Default() Config {
	return Config{
		Layout:   layout.DefaultConfig(),
		Switches: score.DefaultSwitches(),
		Workers:  runtime.NumCPU(),
		Language: "eng",
	}
}

// Load returns the default settings overridden by the environment and by
// the given .env files
func Load(files ...string) (Config, error) {
	fileEnv := map[string]string{}
	if len(files) > 0 {
		read, err := godotenv.Read(files...)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read %s: %w", strings.Join(files, ", "), err)
		}
		fileEnv = read
	}

	l := &loader{lookup: func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	}}

	cfg := Default()
	lc := &cfg.Layout

	l.float("MIN_CONFIDENCE", &lc.MinConfidence)
	l.float("MIN_WORD_CONFIDENCE", &lc.MinWordConfidence)
	l.float("MIN_WORD_PIXELS", &lc.MinWordPixels)
	l.float("MAX_FONT_INTERLINE", &lc.MaxFontInterline)
	l.float("MAX_HEADER_FONT_INTERLINE", &lc.MaxHeaderFontInterline)
	l.float("MAX_LINE_DY", &lc.MaxLineDy)
	l.float("WORD_GAP_RATIO", &lc.WordGapRatio)
	l.float("CHORD_WORD_GAP", &lc.ChordWordGap)
	l.float("WORD_MERGE_RATIO", &lc.WordMergeRatio)
	l.float("CHAR_GAP_RATIO", &lc.CharGapRatio)
	l.float("MAX_FONT_RATIO", &lc.MaxFontRatio)
	l.boolean("MANUAL", &lc.Manual)
	l.lyricsMode("LYRICS_MODE", &lc.LyricsMode)

	for name, sw := range map[string]score.Switch{
		"SWITCH_LYRICS":             score.SwitchLyrics,
		"SWITCH_LYRICS_ABOVE_STAFF": score.SwitchLyricsAboveStaff,
		"SWITCH_CHORD_NAMES":        score.SwitchChordNames,
	} {
		on := cfg.Switches[sw]
		l.boolean(name, &on)
		cfg.Switches[sw] = on
	}

	l.integer("WORKERS", &cfg.Workers)
	if v, ok := l.lookup(Prefix + "LANGUAGE"); ok && v != "" {
		cfg.Language = v
	}

	if l.err != nil {
		return Config{}, l.err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the settings are in range
func (c Config) Validate() error {
	lc := c.Layout
	switch {
	case lc.MinConfidence < 0 || lc.MinConfidence > 1:
		return fmt.Errorf("%w: MIN_CONFIDENCE must be between 0 and 1, got %v", ErrInvalid, lc.MinConfidence)
	case lc.MinWordConfidence < 0 || lc.MinWordConfidence > 1:
		return fmt.Errorf("%w: MIN_WORD_CONFIDENCE must be between 0 and 1, got %v", ErrInvalid, lc.MinWordConfidence)
	case lc.MaxFontInterline <= 0 || lc.MaxHeaderFontInterline <= 0:
		return fmt.Errorf("%w: font size limits must be positive", ErrInvalid)
	case lc.MaxLineDy < 0 || lc.WordGapRatio < 0 || lc.ChordWordGap < 0:
		return fmt.Errorf("%w: gap tolerances must not be negative", ErrInvalid)
	case lc.MaxFontRatio < 1:
		return fmt.Errorf("%w: MAX_FONT_RATIO must be at least 1, got %v", ErrInvalid, lc.MaxFontRatio)
	case c.Workers < 1:
		return fmt.Errorf("%w: WORKERS must be at least 1, got %d", ErrInvalid, c.Workers)
	case !validLanguage(c.Language):
		return fmt.Errorf("%w: LANGUAGE must be \"+\" separated codes, got %q", ErrInvalid, c.Language)
	}
	return nil
}

func validLanguage(lang string) bool {
	for _, code := range strings.Split(lang, "+") {
		if strings.TrimSpace(code) == "" {
			return false
		}
	}
	return true
}

// loader parses prefixed variables, keeping the first error
type loader struct {
	lookup func(key string) (string, bool)
	err    error
}

func (l *loader) value(name string) (string, bool) {
	if l.err != nil {
		return "", false
	}
	v, ok := l.lookup(Prefix + name)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (l *loader) fail(name, value string, err error) {
	l.err = fmt.Errorf("%w: %s%s=%q: %v", ErrInvalid, Prefix, name, value, err)
}

func (l *loader) float(name string, dst *float64) {
	if v, ok := l.value(name); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			l.fail(name, v, err)
			return
		}
		*dst = f
	}
}

func (l *loader) integer(name string, dst *int) {
	if v, ok := l.value(name); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			l.fail(name, v, err)
			return
		}
		*dst = n
	}
}

func (l *loader) boolean(name string, dst *bool) {
	if v, ok := l.value(name); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			l.fail(name, v, err)
			return
		}
		*dst = b
	}
}

func (l *loader) lyricsMode(name string, dst *layout.LyricsMode) {
	v, ok := l.value(name)
	if !ok {
		return
	}
	for _, m := range []layout.LyricsMode{layout.LyricsFree, layout.LyricsForced, layout.LyricsForbidden} {
		if strings.EqualFold(v, m.String()) {
			*dst = m
			return
		}
	}
	l.fail(name, v, errors.New("want free, forced or forbidden"))
}
