// Package check provides non-fatal comparison checks. A failing check
// prints a diagnostic naming the call site, the operand expressions and
// their values, then bumps the failure counter; execution carries on so a
// run reports every failure rather than the first one.
//
// A run is owned by a Checker. Finalize prints the closing banner and
// returns the process exit code; the caller decides whether to exit.
package check

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"unitcheck/internal/exitcodes"
	"unitcheck/internal/term"
)

// Recorder receives the outcome of every check and of the final report
type Recorder interface {
	RecordCheck(check string, passed bool)
	RecordFinalize(failures int, exitCode int)
}

// Checker is the context a run of checks reports into
type Checker struct {
	out      io.Writer
	term     *term.Term
	logger   *log.Logger
	recorder Recorder
	runID    uuid.UUID

	failures Counter
	checks   atomic.Int64

	writeMu  sync.Mutex
	finalize sync.Once
	exitCode int
}

// Option configures a Checker
type Option func(*Checker)

// WithOutput sets where diagnostics and the final banner are written
func WithOutput(w io.Writer) Option {
	return func(c *Checker) { c.out = w }
}

// WithTerm sets the styling used for diagnostics
func WithTerm(t *term.Term) Option {
	return func(c *Checker) { c.term = t }
}

// WithLogger enables a summary log line on Finalize
func WithLogger(l *log.Logger) Option {
	return func(c *Checker) { c.logger = l }
}

// WithRecorder forwards check outcomes to r
func WithRecorder(r Recorder) Option {
	return func(c *Checker) { c.recorder = r }
}

// WithRunID overrides the generated run identifier
func WithRunID(id uuid.UUID) Option {
	return func(c *Checker) { c.runID = id }
}

// New creates a Checker writing to stdout with colour auto-detected
func New(opts ...Option) *Checker {
	c := &Checker{out: os.Stdout}
	for _, opt := range opts {
		opt(c)
	}
	if c.term == nil {
		c.term = term.New(c.out, term.ModeAuto)
	}
	if c.runID == uuid.Nil {
		c.runID = uuid.New()
	}
	return c
}

// RunID identifies this run in log lines
func (c *Checker) RunID() uuid.UUID {
	return c.runID
}

// Failures returns the number of failed checks so far
func (c *Checker) Failures() int {
	return c.failures.Value()
}

// Checks returns the number of checks evaluated so far
func (c *Checker) Checks() int {
	return int(c.checks.Load())
}

// Finalize prints the closing banner and returns the exit code: 0 when
// every check passed, 1 otherwise regardless of how many failed. Only the
// first call prints; later calls return the same code.
func (c *Checker) Finalize() int {
	c.finalize.Do(func() {
		failures := c.failures.Value()

		c.writeMu.Lock()
		if failures != 0 {
			c.exitCode = exitcodes.ChecksFailed
			fmt.Fprint(c.out, c.term.AnsiText("red", "ERRORS!")+"\n")
		} else {
			c.exitCode = exitcodes.Success
			fmt.Fprint(c.out, c.term.AnsiText("green", "OK")+"\n")
		}
		c.writeMu.Unlock()

		if c.logger != nil {
			c.logger.Printf("run %s: %d checks, %d failures, exit code %d",
				c.runID, c.Checks(), failures, c.exitCode)
		}
		if c.recorder != nil {
			c.recorder.RecordFinalize(failures, c.exitCode)
		}
	})
	return c.exitCode
}

// Assert checks that cond is true
func (c *Checker) Assert(cond bool) bool {
	if cond {
		return c.pass("Assert")
	}
	return c.fail(failure{check: "Assert", values: []any{cond}})
}

// failure describes one failed check. first is the position of the first
// operand among the call arguments, used to recover the operand text.
type failure struct {
	check  string
	first  int
	op     string
	values []any
	diff   string
}

func (c *Checker) pass(check string) bool {
	c.checks.Add(1)
	if c.recorder != nil {
		c.recorder.RecordCheck(check, true)
	}
	return true
}

// fail must be called directly from the exported check so the caller
// frame is two levels up.
func (c *Checker) fail(f failure) bool {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file, line = "???", 0
	}
	texts := operandTexts(file, line, f.check, f.first, len(f.values))
	if texts == nil {
		texts = make([]string, len(f.values))
		for i, v := range f.values {
			texts[i] = formatValue(v)
		}
	}

	var b strings.Builder
	b.WriteString(c.term.Ansi("red,bold"))
	fmt.Fprintf(&b, "%s:%d:\n", filepath.Base(file), line)
	b.WriteString("FAILED: ")
	b.WriteString(c.term.Ansi("normal"))
	if f.op == "" {
		b.WriteString(texts[0])
		b.WriteString("\n")
	} else {
		fmt.Fprintf(&b, "%s %s %s\n", texts[0], f.op, texts[1])
		fmt.Fprintf(&b, "\tvalues were '%s' and '%s'", formatValue(f.values[0]), formatValue(f.values[1]))
		if f.diff != "" {
			fmt.Fprintf(&b, ", diff was %s", f.diff)
		}
		b.WriteString("\n")
	}

	c.writeMu.Lock()
	io.WriteString(c.out, b.String())
	c.writeMu.Unlock()

	c.checks.Add(1)
	c.failures.Inc()
	if c.recorder != nil {
		c.recorder.RecordCheck(f.check, false)
	}
	return false
}
