package report

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
	"golang.org/x/time/rate"
)

// ProgressMode selects how fit progress is shown.
type ProgressMode string

const (
	ModeAuto    ProgressMode = "auto"    // spinner on a terminal, log lines otherwise
	ModeSpinner ProgressMode = "spinner" // in-place spinner
	ModePlain   ProgressMode = "plain"   // throttled log lines
	ModeNone    ProgressMode = "none"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// Progress shows indeterminate progress driven by optimizer iterations. It
// never knows the total, so it reports the iteration count and current
// log-likelihood instead of a percentage.
type Progress struct {
	name  string
	mode  ProgressMode
	out   io.Writer
	log   zerolog.Logger
	start time.Time

	frame   int
	drawn   bool
	redraw  rate.Sometimes
	logLine rate.Sometimes
}

// NewProgress creates a progress display. Spinner output goes to out; plain
// mode logs through logger. ModeAuto picks the spinner when out is a terminal.
func NewProgress(name string, mode ProgressMode, out io.Writer, logger zerolog.Logger) *Progress {
	if mode == ModeAuto || mode == "" {
		mode = ModePlain
		if IsTerminal(out) {
			mode = ModeSpinner
		}
	}

	return &Progress{
		name:    name,
		mode:    mode,
		out:     out,
		log:     logger,
		start:   time.Now(),
		redraw:  rate.Sometimes{Interval: 100 * time.Millisecond},
		logLine: rate.Sometimes{Interval: 2 * time.Second},
	}
}

// Mode returns the resolved display mode.
func (p *Progress) Mode() ProgressMode {
	return p.mode
}

// Update records one optimizer iteration.
func (p *Progress) Update(iteration int, logLik float64) {
	switch p.mode {
	case ModeSpinner:
		p.redraw.Do(func() {
			p.frame = (p.frame + 1) % len(spinnerFrames)
			fmt.Fprintf(p.out, "\r\033[K%s %s: iteration %d, loglik %.2f",
				spinnerFrames[p.frame], p.name, iteration, logLik)
			p.drawn = true
		})
	case ModePlain:
		p.logLine.Do(func() {
			p.log.Info().
				Int("iteration", iteration).
				Float64("loglik", logLik).
				Dur("elapsed", time.Since(p.start).Round(time.Millisecond)).
				Msg(p.name)
		})
	}
}

// Done clears the spinner line.
func (p *Progress) Done() {
	if p.mode == ModeSpinner && p.drawn {
		fmt.Fprint(p.out, "\r\033[K")
		p.drawn = false
	}
}
