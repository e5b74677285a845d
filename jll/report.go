package jll

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
)

// reporterName is the application name internal diagnostics are printed
// under, so they are recognizable between regular lines.
const reporterName = "JLogLib Error Reporter"

// ErrorReporter receives diagnostics about failures inside the library
// itself. Implementations must never fail and must not rely on the live
// settings being in a usable state, since a broken configuration may be
// exactly what is being reported.
type ErrorReporter interface {
	Report(details string)
}

// consoleReporter prints internal diagnostics to the console in the
// normal line format. It derives its configuration from a copy of the
// live settings with the target forced to CONSOLE and its own
// application name, so the live store is never touched and a
// misconfiguration cannot suppress its own diagnosis.
type consoleReporter struct {
	settings *Settings
	out      io.Writer
	now      func() time.Time
}

func newConsoleReporter(settings *Settings, out io.Writer) *consoleReporter {
	return &consoleReporter{
		settings: settings,
		out:      out,
		now:      time.Now,
	}
}

// Report prints the details as a multi-line block, one formatted line per
// input line, tagged with a short incident id so blocks from concurrent
// calls can be told apart.
func (r *consoleReporter) Report(details string) {
	cfg := r.settings.Config()
	cfg.LogTarget = TargetConsole
	cfg.LogFile = ""
	cfg.ApplicationName = reporterName
	cfg.PrintApplicationName = true

	incident := uuid.New().String()[:8]
	header := fmt.Sprintf("An internal error occurred! (incident %s)", incident)
	fmt.Fprintln(r.out, formatLine(cfg, r.now(), header))
	for _, line := range strings.Split(details, "\n") {
		fmt.Fprintln(r.out, formatLine(cfg, r.now(), line))
	}
}

// Ensure consoleReporter implements the ErrorReporter interface.
var _ ErrorReporter = (*consoleReporter)(nil)

// NilReporter is an ErrorReporter that discards all diagnostics.
type NilReporter struct{}

// Report does nothing.
func (NilReporter) Report(details string) {}

// Ensure NilReporter implements the ErrorReporter interface.
var _ ErrorReporter = (*NilReporter)(nil)
