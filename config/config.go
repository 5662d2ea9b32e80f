// Package config holds the command-line options shared by the blockfall
// frontends.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/plus3/blockfall/loop"
)

var (
	ErrTickInterval = errors.New("config: tick interval must be at least 10ms")
	ErrVolume       = errors.New("config: volume must be between 0 and 1")
	ErrScale        = errors.New("config: scale must be between 1 and 4")
)

// Options are the settings common to every frontend.
type Options struct {
	TickInterval time.Duration
	Seed         uint64
	Sound        bool
	Volume       float64
	LogPath      string
	Verbose      bool
	DebugUI      bool
	Scale        int
}

// Default returns the options of a plain run.
func Default() Options {
	return Options{
		TickInterval: loop.DefaultTickInterval,
		Sound:        true,
		Volume:       0.5,
		Scale:        1,
	}
}

// RegisterFlags binds the options to fs, using the current values as
// defaults.
func (o *Options) RegisterFlags(fs *flag.FlagSet) {
	fs.DurationVar(&o.TickInterval, "tick", o.TickInterval, "Gravity interval between automatic drops.")
	fs.Uint64Var(&o.Seed, "seed", o.Seed, "Seed for piece selection; 0 picks one from the clock.")
	fs.BoolVar(&o.Sound, "sound", o.Sound, "Play sound effects.")
	fs.Float64Var(&o.Volume, "volume", o.Volume, "Sound effect volume from 0 to 1.")
	fs.StringVar(&o.LogPath, "log", o.LogPath, "Write the log to this file instead of stderr.")
	fs.BoolVar(&o.Verbose, "v", o.Verbose, "Log every game event.")
	fs.BoolVar(&o.DebugUI, "debug-ui", o.DebugUI, "Show the engine inspector overlay (window frontend only).")
	fs.IntVar(&o.Scale, "scale", o.Scale, "Window scale factor (window frontend only).")
}

// Validate checks option ranges.
func (o *Options) Validate() error {
	var errs []error
	if o.TickInterval < 10*time.Millisecond {
		errs = append(errs, fmt.Errorf("%w: got %s", ErrTickInterval, o.TickInterval))
	}
	if o.Volume < 0 || o.Volume > 1 {
		errs = append(errs, fmt.Errorf("%w: got %g", ErrVolume, o.Volume))
	}
	if o.Scale < 1 || o.Scale > 4 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrScale, o.Scale))
	}
	return errors.Join(errs...)
}

// RandSeed returns the configured seed, or one derived from now when unset.
func (o *Options) RandSeed(now time.Time) uint64 {
	if o.Seed != 0 {
		return o.Seed
	}
	return uint64(now.UnixNano())
}

// DefaultLogPath is where frontends that own the terminal write their log.
func DefaultLogPath() string {
	return filepath.Join(os.TempDir(), "blockfall.log")
}

// OpenLog points the standard logger at LogPath. An empty path leaves the
// logger on stderr. The returned closer must be called on exit.
func (o *Options) OpenLog() (io.Closer, error) {
	if o.LogPath == "" {
		return io.NopCloser(nil), nil
	}

	file, err := os.OpenFile(o.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log %s: %w", o.LogPath, err)
	}
	log.SetOutput(file)
	return file, nil
}
