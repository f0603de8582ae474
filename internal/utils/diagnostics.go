package utils

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
)

// DiagnosticLevel controls how chatty the CLI output is.
type DiagnosticLevel int

const (
	DiagnosticSilent DiagnosticLevel = iota
	DiagnosticError
	DiagnosticWarn
	DiagnosticInfo
	DiagnosticVerbose
	DiagnosticDebug
)

// DiagnosticSystem provides structured terminal output for the generator
// CLI: leveled messages, progress markers, and a final summary.
type DiagnosticSystem struct {
	level     DiagnosticLevel
	useColors bool
	showTime  bool
	output    io.Writer
	errorOut  io.Writer

	progress string
}

// NewDiagnosticSystem creates a diagnostic system at the given level.
func NewDiagnosticSystem(level DiagnosticLevel) *DiagnosticSystem {
	return &DiagnosticSystem{
		level:     level,
		useColors: shouldUseColors(),
		showTime:  level >= DiagnosticVerbose,
		output:    os.Stdout,
		errorOut:  os.Stderr,
	}
}

// NewQuietDiagnostics creates a diagnostic system that only shows errors.
func NewQuietDiagnostics() *DiagnosticSystem {
	return NewDiagnosticSystem(DiagnosticError)
}

// NewVerboseDiagnostics creates a diagnostic system with full output.
func NewVerboseDiagnostics() *DiagnosticSystem {
	return NewDiagnosticSystem(DiagnosticVerbose)
}

// SetOutput redirects both output streams, for tests.
func (d *DiagnosticSystem) SetOutput(w io.Writer) {
	d.output = w
	d.errorOut = w
}

// Error outputs error messages (always shown unless silent).
func (d *DiagnosticSystem) Error(format string, args ...any) {
	if d.level >= DiagnosticError {
		d.writeMessage(d.errorOut, "ERROR", color.New(color.FgRed), format, args...)
	}
}

// Warn outputs warning messages.
func (d *DiagnosticSystem) Warn(format string, args ...any) {
	if d.level >= DiagnosticWarn {
		d.writeMessage(d.output, "WARN", color.New(color.FgYellow), format, args...)
	}
}

// Info outputs informational messages.
func (d *DiagnosticSystem) Info(format string, args ...any) {
	if d.level >= DiagnosticInfo {
		d.writeMessage(d.output, "INFO", color.New(color.FgBlue), format, args...)
	}
}

// Success outputs success messages with emphasis.
func (d *DiagnosticSystem) Success(format string, args ...any) {
	if d.level >= DiagnosticInfo {
		d.writeMessage(d.output, "SUCCESS", color.New(color.FgGreen), format, args...)
	}
}

// Verbose outputs detailed messages (verbose mode only).
func (d *DiagnosticSystem) Verbose(format string, args ...any) {
	if d.level >= DiagnosticVerbose {
		d.writeMessage(d.output, "VERBOSE", color.New(color.FgHiBlack), format, args...)
	}
}

// Debug outputs debug messages (highest verbosity).
func (d *DiagnosticSystem) Debug(format string, args ...any) {
	if d.level >= DiagnosticDebug {
		d.writeMessage(d.output, "DEBUG", color.New(color.FgMagenta), format, args...)
	}
}

// Section prints a prominent header.
func (d *DiagnosticSystem) Section(title string) {
	if d.level >= DiagnosticInfo {
		if d.useColors {
			color.New(color.FgCyan, color.Bold).Fprintf(d.output, "%s\n", title)
		} else {
			fmt.Fprintf(d.output, "%s\n", title)
		}
	}
}

// List outputs a bulleted list item.
func (d *DiagnosticSystem) List(format string, args ...any) {
	if d.level >= DiagnosticInfo {
		fmt.Fprintf(d.output, "- %s\n", fmt.Sprintf(format, args...))
	}
}

// StartProgress begins a progress item; EndProgress finishes it.
func (d *DiagnosticSystem) StartProgress(message string) {
	d.progress = message
	if d.level >= DiagnosticVerbose {
		fmt.Fprintf(d.output, "... %s\n", message)
	}
}

// EndProgress completes the current progress item. An empty message reuses
// the one given to StartProgress.
func (d *DiagnosticSystem) EndProgress(ok bool, message string) {
	if message == "" {
		message = d.progress
	}
	d.progress = ""
	if d.level < DiagnosticInfo || message == "" {
		return
	}
	mark := "✓"
	c := color.New(color.FgGreen)
	if !ok {
		mark = "✗"
		c = color.New(color.FgRed)
	}
	if d.useColors {
		c.Fprintf(d.output, "%s ", mark)
		fmt.Fprintf(d.output, "%s\n", message)
	} else {
		fmt.Fprintf(d.output, "%s %s\n", mark, message)
	}
}

// Summary outputs final statistics.
func (d *DiagnosticSystem) Summary(title string, stats []string) {
	if d.level >= DiagnosticInfo {
		fmt.Fprintf(d.output, "\n%s\n", title)
		for _, line := range stats {
			fmt.Fprintf(d.output, "   %s\n", line)
		}
	}
}

func (d *DiagnosticSystem) writeMessage(w io.Writer, level string, c *color.Color, format string, args ...any) {
	var out strings.Builder
	if d.showTime {
		out.WriteString(time.Now().Format("15:04:05 "))
	}
	if d.useColors {
		out.WriteString(c.Sprintf("[%s]", level))
	} else {
		fmt.Fprintf(&out, "[%s]", level)
	}
	out.WriteString(" ")
	out.WriteString(fmt.Sprintf(format, args...))
	out.WriteString("\n")
	fmt.Fprint(w, out.String())
}

// shouldUseColors honors NO_COLOR/FORCE_COLOR and falls back to a TERM
// check.
func shouldUseColors() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}
