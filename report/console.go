// Package report holds the user-facing sinks of a forecast run: status
// messages, fit progress and the comparison plot.
package report

import (
	"github.com/rs/zerolog"
)

// Console reports pipeline status through a zerolog logger. Severity shows up
// as the level tag of each line.
type Console struct {
	log zerolog.Logger
}

// NewConsole creates a console reporter writing to logger.
func NewConsole(logger zerolog.Logger) *Console {
	return &Console{log: logger}
}

// Info reports a stage boundary.
func (c *Console) Info(msg string) {
	c.log.Info().Msg(msg)
}

// Success reports a completed run.
func (c *Console) Success(msg string) {
	c.log.Info().Str("status", "success").Msg(msg)
}

// Error reports a failed run.
func (c *Console) Error(msg string) {
	c.log.Error().Msg(msg)
}
