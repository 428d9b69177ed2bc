// Package term decides whether an output stream gets ANSI styling and
// renders the escape sequences for named styles.
package term

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Mode selects how colour support is decided
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeAlways Mode = "always"
	ModeNever  Mode = "never"
)

var errInvalidMode = errors.New("color mode must be auto, always or never")

// ParseMode converts a config or flag value into a Mode. Empty means auto.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeAuto:
		return ModeAuto, nil
	case ModeAlways:
		return ModeAlways, nil
	case ModeNever:
		return ModeNever, nil
	}
	return "", fmt.Errorf("%w: %q", errInvalidMode, s)
}

var codes = map[string]int{
	"default":    0,
	"normal":     0,
	"reset":      0,
	"bold":       1,
	"italic":     3,
	"underscore": 4,
	"underline":  4,
	"blink":      5,
	"reverse":    7,
	"concealed":  8,
	"black":      30,
	"red":        31,
	"green":      32,
	"yellow":     33,
	"blue":       34,
	"magenta":    35,
	"cyan":       36,
	"white":      37,
	"black_bg":   40,
	"red_bg":     41,
	"green_bg":   42,
	"yellow_bg":  43,
	"blue_bg":    44,
	"magenta_bg": 45,
	"cyan_bg":    46,
	"white_bg":   47,
}

// Term carries the colour decision for one output stream
type Term struct {
	color bool
}

// New inspects w according to mode. In auto mode colour is used only when
// w is a terminal, NO_COLOR is unset and TERM is not "dumb".
func New(w io.Writer, mode Mode) *Term {
	switch mode {
	case ModeAlways:
		return &Term{color: true}
	case ModeNever:
		return &Term{color: false}
	}
	return &Term{color: supportsColor(w)}
}

// Plain returns a Term that never emits escape sequences
func Plain() *Term {
	return &Term{}
}

// IsColor reports whether escape sequences are emitted
func (t *Term) IsColor() bool {
	return t != nil && t.color
}

// Ansi returns the escape sequence for a comma separated list of style
// names such as "red,bold". Unknown names are ignored. Returns "" when
// colour is off.
func (t *Term) Ansi(styles string) string {
	if !t.IsColor() {
		return ""
	}
	var parts []string
	for _, name := range strings.Split(styles, ",") {
		code, ok := codes[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			continue
		}
		parts = append(parts, strconv.Itoa(code))
	}
	if len(parts) == 0 {
		return ""
	}
	return "\033[" + strings.Join(parts, ";") + "m"
}

// AnsiText wraps text in the given styles followed by a reset
func (t *Term) AnsiText(styles, text string) string {
	if !t.IsColor() {
		return text
	}
	return t.Ansi(styles) + text + t.Ansi("normal")
}

func supportsColor(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isTerminal(f.Fd())
}
