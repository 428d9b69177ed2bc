package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"unitcheck/internal/config"
)

const prefix = "unitcheck: "

// New creates a logger writing to stderr only
func New() *log.Logger {
	return NewWithConfig(nil)
}

// NewWithConfig creates a logger writing to stderr and, when configured,
// appending to a rotated log file. Stdout is left to check output.
func NewWithConfig(cfg *config.Config) *log.Logger {
	return newLogger(os.Stderr, cfg)
}

func newLogger(console io.Writer, cfg *config.Config) *log.Logger {
	flags := log.LstdFlags | log.Lmicroseconds
	if cfg == nil || cfg.Logging.File == "" {
		return log.New(console, prefix, flags)
	}

	filePath := cfg.Logging.File
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		log.Printf("failed to ensure log directory for %s: %v", filePath, err)
	}

	keep := 30 * 24 * time.Hour
	if cfg.Logging.RotationDays > 0 {
		keep = time.Duration(cfg.Logging.RotationDays) * 24 * time.Hour
	}
	rotate(filePath, keep, time.Now())

	f, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("failed to open log file %s: %v", filePath, err)
		return log.New(console, prefix, flags)
	}

	mw := io.MultiWriter(console, f)
	return log.New(mw, prefix, flags)
}

// stampLayout is the suffix of rotated log files: run.log.20060102-150405
const stampLayout = "20060102-150405"

// rotate moves logPath aside as logPath.<now> once it was last written
// more than keep before now, then prunes rotated copies whose stamp is
// older than keep. The stamp in the name is the rotation time, so a copy
// made now survives the prune.
func rotate(logPath string, keep time.Duration, now time.Time) {
	info, err := os.Stat(logPath)
	if err != nil {
		return
	}
	cutoff := now.Add(-keep)

	if info.ModTime().Before(cutoff) {
		rotated := logPath + "." + now.Format(stampLayout)
		if err := os.Rename(logPath, rotated); err != nil {
			log.Printf("failed to rotate log file %s: %v", logPath, err)
			return
		}
	}

	pruneRotated(logPath, cutoff)
}

func pruneRotated(logPath string, cutoff time.Time) {
	dir, base := filepath.Split(logPath)
	entries, err := os.ReadDir(filepath.Clean(dir))
	if err != nil {
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		suffix, found := strings.CutPrefix(name, base+".")
		if entry.IsDir() || !found {
			continue
		}
		stamp, err := time.ParseInLocation(stampLayout, suffix, cutoff.Location())
		if err != nil {
			continue // not one of ours
		}
		if stamp.Before(cutoff) {
			fullPath := filepath.Join(dir, name)
			if err := os.Remove(fullPath); err != nil {
				log.Printf("failed to remove old log file %s: %v", fullPath, err)
			}
		}
	}
}
