package term

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeAuto, false},
		{"auto", ModeAuto, false},
		{"ALWAYS", ModeAlways, false},
		{" never ", ModeNever, false},
		{"sometimes", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errInvalidMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnsi(t *testing.T) {
	color := New(&bytes.Buffer{}, ModeAlways)
	assert.Equal(t, "\033[31;1m", color.Ansi("red,bold"))
	assert.Equal(t, "\033[0m", color.Ansi("normal"))
	assert.Equal(t, "\033[32m", color.Ansi("green, nosuchstyle"))
	assert.Equal(t, "", color.Ansi("nosuchstyle"))
	assert.Equal(t, "\033[32mOK\033[0m", color.AnsiText("green", "OK"))

	plain := New(&bytes.Buffer{}, ModeNever)
	assert.Equal(t, "", plain.Ansi("red,bold"))
	assert.Equal(t, "OK", plain.AnsiText("green", "OK"))
}

func TestAutoModeNonTerminal(t *testing.T) {
	// A buffer is never a terminal
	assert.False(t, New(&bytes.Buffer{}, ModeAuto).IsColor())

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, New(f, ModeAuto).IsColor())
}

func TestNoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, supportsColor(os.Stdout))
}

func TestNilTerm(t *testing.T) {
	var tm *Term
	assert.False(t, tm.IsColor())
	assert.Equal(t, "", tm.Ansi("red"))
	assert.False(t, Plain().IsColor())
}
