// Package config locates the balance configuration directory and loads
// the optional balance.toml settings file.
package config

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/drake/balance/errors"
	"github.com/drake/balance/scale"
)

const appName = "balance"

// Dir returns the balance configuration directory.
// Respects XDG_CONFIG_HOME on Unix, APPDATA on Windows.
func Dir() string {
	var base string

	if runtime.GOOS == "windows" {
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	} else {
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, _ := os.UserHomeDir()
			base = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(base, appName)
}

// InitFile returns the path to init.lua, run at startup if present.
func InitFile() string {
	return filepath.Join(Dir(), "init.lua")
}

// SettingsFile returns the path to balance.toml.
func SettingsFile() string {
	return filepath.Join(Dir(), "balance.toml")
}

// Settings is the decoded balance.toml.
type Settings struct {
	Palette PaletteSettings `toml:"palette"`
	Tilt    TiltSettings    `toml:"tilt"`
}

type PaletteSettings struct {
	Max int `toml:"max"`
}

type TiltSettings struct {
	Smoothing   float64 `toml:"smoothing"`
	SnapEpsilon float64 `toml:"snap_epsilon"`
	IntervalMS  int     `toml:"interval_ms"`
}

// Defaults returns the reference settings.
func Defaults() Settings {
	return Settings{
		Palette: PaletteSettings{Max: scale.DefaultPalette.Max},
		Tilt: TiltSettings{
			Smoothing:   scale.DefaultSmoothing,
			SnapEpsilon: scale.DefaultSnapEpsilon,
			IntervalMS:  int(scale.DefaultInterval / time.Millisecond),
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Settings, error) {
	s := Defaults()

	data, err := os.ReadFile(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, errors.Wrap(errors.ErrCodeInvalidConfig, err, "reading %s", path)
	}

	if _, err := toml.Decode(string(data), &s); err != nil {
		return Defaults(), errors.Wrap(errors.ErrCodeInvalidConfig, err, "decoding %s", path)
	}
	if err := s.Validate(); err != nil {
		return Defaults(), err
	}
	return s, nil
}

// Validate checks that every setting is usable.
func (s Settings) Validate() error {
	switch {
	case s.Palette.Max < scale.DefaultPalette.Min:
		return errors.New(errors.ErrCodeInvalidConfig, "palette.max must be at least %d, got %d", scale.DefaultPalette.Min, s.Palette.Max)
	case s.Tilt.Smoothing <= 0 || s.Tilt.Smoothing > 1:
		return errors.New(errors.ErrCodeInvalidConfig, "tilt.smoothing must be in (0, 1], got %v", s.Tilt.Smoothing)
	case s.Tilt.SnapEpsilon <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "tilt.snap_epsilon must be positive, got %v", s.Tilt.SnapEpsilon)
	case s.Tilt.IntervalMS <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "tilt.interval_ms must be positive, got %d", s.Tilt.IntervalMS)
	}
	return nil
}

// ScalePalette converts the settings to a scale.Palette.
func (s Settings) ScalePalette() scale.Palette {
	return scale.Palette{Min: scale.DefaultPalette.Min, Max: s.Palette.Max}
}

// TiltOptions converts the settings to scale.TiltOptions.
func (s Settings) TiltOptions() scale.TiltOptions {
	return scale.TiltOptions{
		Smoothing:   s.Tilt.Smoothing,
		SnapEpsilon: s.Tilt.SnapEpsilon,
		Interval:    time.Duration(s.Tilt.IntervalMS) * time.Millisecond,
	}
}

// Encode writes s as TOML.
func (s Settings) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(s)
}
