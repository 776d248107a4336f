package hal

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// HostConfig sizes the host framebuffer and window.
type HostConfig struct {
	Width  int
	Height int
	Scale  int
	TPS    int
}

func (c *HostConfig) defaults() {
	if c.Width <= 0 {
		c.Width = 640
	}
	if c.Height <= 0 {
		c.Height = 480
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
}

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
}

// New returns a host HAL that logs through log.
func New(cfg HostConfig, log zerolog.Logger) HAL {
	return newHost(cfg, log)
}

func newHost(cfg HostConfig, log zerolog.Logger) *hostHAL {
	cfg.defaults()
	return &hostHAL{
		logger: &hostLogger{log: log},
		fb:     newHostFramebuffer(cfg.Width, cfg.Height),
		kbd:    newHostKeyboard(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

// NewLogger returns a zerolog logger on w: human-readable on a terminal, JSON otherwise.
func NewLogger(w *os.File, level zerolog.Level) zerolog.Logger {
	var out io.Writer = w
	if isatty.IsTerminal(w.Fd()) || isatty.IsCygwinTerminal(w.Fd()) {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05.000"}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// hostLogger adapts zerolog to Logger. It also implements io.Writer so it can
// take echoed lines from other components; those are logged at info level so
// the default log level shows them.
type hostLogger struct {
	log zerolog.Logger
}

func (l *hostLogger) WriteLineString(s string) {
	l.log.Info().Msg(s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.log.Info().Msg(string(b))
}

func (l *hostLogger) Write(p []byte) (int, error) {
	l.log.Info().Str("src", "persistent").Msg(strings.TrimRight(string(p), "\r\n"))
	return len(p), nil
}
