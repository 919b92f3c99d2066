package contract

import "github.com/sirupsen/logrus"

// Mode selects how a contract violation is reported.
type Mode int32

const (
	// ModeExit logs the violation and terminates the process.
	ModeExit Mode = iota
	// ModePanic panics with a *Violation instead, so the behavior can be
	// exercised by a test suite via recover.
	ModePanic
)

// Config
type Config struct {
	Mode   Mode
	Logger *logrus.Logger // receives the diagnostic on the exit path
}

// DefaultConfig
func DefaultConfig() *Config {
	return &Config{
		Mode:   ModeExit,
		Logger: logrus.StandardLogger(),
	}
}

type Option func(*Config)

// WithMode selects the reporting mode.
func WithMode(m Mode) Option {
	return func(c *Config) {
		c.Mode = m
	}
}

// WithLogger routes exit-path diagnostics to l.
func WithLogger(l *logrus.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

// Apply installs options onto the active policy. Meant to be called once
// during program initialization, before any checked code runs.
func Apply(opts ...Option) {
	next := *active.Load()
	for _, opt := range opts {
		opt(&next)
	}
	active.Store(&next)
}
