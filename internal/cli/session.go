package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/drake/balance/config"
	"github.com/drake/balance/debug"
	"github.com/drake/balance/session"
	"github.com/drake/balance/ui"
)

type sessionOptions struct {
	configFile string
	simple     bool
	logFile    string
}

func (o sessionOptions) settingsPath() string {
	if o.configFile != "" {
		return o.configFile
	}
	return config.SettingsFile()
}

// loadSettings reads the settings file, falling back to defaults with a
// warning when it is unusable.
func (c *CLI) loadSettings(opts sessionOptions) config.Settings {
	path := opts.settingsPath()
	settings, err := config.Load(path)
	if err != nil {
		c.Logger.Warn("using default settings", "path", path, "err", err)
	}
	return settings
}

// runSession starts an interactive session and blocks until it ends.
func (c *CLI) runSession(ctx context.Context, opts sessionOptions, scripts []string) error {
	settings := c.loadSettings(opts)

	var w io.Writer = os.Stderr
	if !opts.simple {
		w = io.Discard
	}
	if opts.logFile != "" {
		f, err := openLogFile(opts.logFile)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	logger := newLogger(w, c.Logger.GetLevel())

	var u ui.UI
	if opts.simple {
		u = ui.NewConsoleUI(c.stdin, c.stdout)
	} else {
		u = ui.NewBubbleTeaUI(settings.ScalePalette().Values())
	}

	s := session.New(u, session.Config{
		ConfigDir: config.Dir(),
		Scripts:   scripts,
		Palette:   settings.ScalePalette(),
		Tilt:      settings.TiltOptions(),
		Logger:    logger,
	})

	if logger.GetLevel() <= log.DebugLevel {
		monCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		debug.NewMonitor(s, logger, 0).Start(monCtx)
	}

	return s.Run(ctx)
}
