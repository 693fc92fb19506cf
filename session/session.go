// Package session runs the event loop that owns the balance. Every
// mutation, whether it comes from the UI, a script or a tilt tick, is
// applied on that one goroutine.
package session

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/drake/balance/event"
	"github.com/drake/balance/internal/buffer"
	"github.com/drake/balance/lua"
	"github.com/drake/balance/scale"
	"github.com/drake/balance/timer"
	"github.com/drake/balance/ui"
)

// Ensure Session implements lua.Host at compile time
var _ lua.Host = (*Session)(nil)

const (
	initFileName = "init.lua"

	eventQueueCap   = 64
	eventQueueLimit = 4096
	timerQueueCap   = 256
)

// Config holds session configuration
type Config struct {
	ConfigDir string   // Directory searched for init.lua; empty skips it
	Scripts   []string // CLI script arguments, run after init.lua
	Palette   scale.Palette
	Tilt      scale.TiltOptions
	Logger    *log.Logger // nil discards
}

// Session orchestrates the balance, timers, scripts and UI.
type Session struct {
	id     string
	logger *log.Logger

	// Components
	balance *scale.Balance
	ui      ui.UI
	engine  *lua.Engine
	timer   *timer.Service

	// Channels
	eventsIn    chan<- event.Event
	eventsOut   <-chan event.Event
	timerEvents chan timer.Event

	// Timer ids carrying tilt ticks, mapped to the generation they were
	// scheduled for. Touched only on the session goroutine.
	ticks map[int]uint64

	// Last published tilt state, used to detect settling
	lastState scale.State

	config Config
	stats  counters

	// Shutdown coordination
	done      chan struct{}
	closeOnce sync.Once
	stopped   chan struct{}
}

type counters struct {
	events     atomic.Uint64
	ticks      atomic.Uint64
	staleTicks atomic.Uint64
	dropped    atomic.Uint64
}

// New creates a new Session. It is passive - no goroutines start here
// except the event queue.
func New(u ui.UI, cfg Config) *Session {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	id := uuid.NewString()
	timerEvents := make(chan timer.Event, timerQueueCap)

	s := &Session{
		id:          id,
		logger:      cfg.Logger.With("session", id[:8]),
		ui:          u,
		timer:       timer.NewService(timerEvents),
		timerEvents: timerEvents,
		ticks:       make(map[int]uint64),
		config:      cfg,
		done:        make(chan struct{}),
		stopped:     make(chan struct{}),
	}

	s.eventsIn, s.eventsOut = buffer.Unbounded[event.Event](eventQueueCap, eventQueueLimit, func(ev event.Event) {
		s.stats.dropped.Add(1)
		s.logger.Warn("event queue full, dropping oldest", "type", ev.Type)
	})
	s.balance = scale.New(cfg.Palette, tickScheduler{s}, cfg.Tilt)
	s.engine = lua.NewEngine(s)

	return s
}

// ID returns the session's unique id.
func (s *Session) ID() string { return s.id }

// Run boots the session, starts the event loop and blocks until the UI
// exits. It returns ctx.Err() if the context ended the session.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Info("session started", "palette", fmt.Sprintf("%d..%d", s.config.Palette.Min, s.config.Palette.Max))

	if err := s.boot(); err != nil {
		s.logger.Error("boot failed", "err", err)
		s.ui.Print("boot: " + err.Error())
	}
	s.publish()

	go s.processEvents(ctx)

	err := s.ui.Run()
	s.shutdown()
	<-s.stopped

	s.balance.Halt()
	s.timer.Close()
	s.engine.Close()
	close(s.eventsIn)

	s.logger.Info("session ended", "events", s.stats.events.Load(), "ticks", s.stats.ticks.Load())

	if err != nil {
		return err
	}
	return ctx.Err()
}

// processEvents is the main event loop.
func (s *Session) processEvents(ctx context.Context) {
	defer close(s.stopped)

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("context done", "err", ctx.Err())
			s.shutdown()
			return
		case <-s.done:
			return
		case ev := <-s.eventsOut:
			s.handleEvent(ev)
		case line := <-s.ui.Input():
			s.handleLine(line)
		case ev := <-s.timerEvents:
			s.handleTimer(ev)
		}
		s.stats.events.Add(1)
	}
}

// handleLine parses a command line typed by the user.
func (s *Session) handleLine(line string) {
	ev, err := event.Parse(line)
	if err != nil {
		s.logger.Warn("bad command", "line", line, "err", err)
		s.ui.Print(err.Error())
		return
	}
	s.handleEvent(ev)
}

// handleEvent executes a single event on the session loop.
func (s *Session) handleEvent(ev event.Event) {
	switch ev.Type {
	case event.Command:
		s.apply(ev.Balance)

	case event.SystemControl:
		s.handleControl(ev.Control)
	}
}

// apply runs a balance command and reports failures to the user.
func (s *Session) apply(op event.BalanceOp) {
	switch op.Op {
	case event.OpAdd:
		if _, err := s.Add(op.Pan, op.Value); err != nil {
			s.ui.Print(err.Error())
		}
	case event.OpRemove:
		if !s.Remove(op.Pan, op.ID) {
			s.ui.Print(fmt.Sprintf("no weight #%d on the %s pan", op.ID, op.Pan))
		}
	case event.OpReset:
		s.Reset()
	}
}

// handleTimer routes a timer event either to the tilt controller or to
// the script that scheduled it.
func (s *Session) handleTimer(ev timer.Event) {
	gen, ok := s.ticks[ev.ID]
	if !ok {
		if !s.engine.OnTimer(ev.ID, ev.Repeating) {
			s.logger.Debug("timer with no owner", "id", ev.ID)
		}
		return
	}
	delete(s.ticks, ev.ID)

	if !s.balance.Tick(gen) {
		s.stats.staleTicks.Add(1)
		s.logger.Debug("stale tick", "gen", gen, "live", s.balance.Controller().Generation())
		return
	}
	s.stats.ticks.Add(1)
	s.publish()
}

// publish pushes a snapshot to the UI and fires the settled hook when the
// beam has just come to rest.
func (s *Session) publish() {
	snap := s.balance.Snapshot()
	s.ui.Render(snap)

	settled := s.lastState == scale.Converging && snap.State == scale.Idle
	s.lastState = snap.State
	if settled {
		s.logger.Debug("settled", "angle", snap.Angle)
		s.engine.CallHook(lua.HookSettled, snap.Angle)
	}
}

// boot loads the VM state.
func (s *Session) boot() error {
	if err := s.engine.Init(); err != nil {
		return err
	}

	if s.config.ConfigDir != "" {
		initPath := filepath.Join(s.config.ConfigDir, initFileName)
		if _, err := os.Stat(initPath); err == nil {
			s.logger.Debug("loading init script", "path", initPath)
			if err := s.engine.DoFile(initPath); err != nil {
				return fmt.Errorf("%s: %w", initFileName, err)
			}
		}
	}

	for _, path := range s.config.Scripts {
		s.logger.Debug("loading script", "path", path)
		if err := s.engine.DoFile(path); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

// handleControl processes system control events.
func (s *Session) handleControl(ctrl event.ControlOp) {
	switch ctrl.Action {
	case event.ActionQuit:
		s.shutdown()
	case event.ActionLoadScript:
		s.loadScript(ctrl.ScriptPath)
	}
}

// loadScript runs a Lua file. Runs on the session goroutine.
func (s *Session) loadScript(path string) {
	if path == "" {
		s.ui.Print("load: empty path")
		return
	}
	if err := s.engine.DoFile(path); err != nil {
		s.logger.Warn("load failed", "path", path, "err", err)
		s.ui.Print(fmt.Sprintf("load %s: %v", path, err))
		return
	}
	s.logger.Info("script loaded", "path", path)
}

// post queues an event for the session loop unless it is shutting down.
func (s *Session) post(ev event.Event) {
	select {
	case <-s.done:
	case s.eventsIn <- ev:
	}
}

// shutdown stops the event loop and asks the UI to exit.
func (s *Session) shutdown() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.ui.Quit()
	})
}
