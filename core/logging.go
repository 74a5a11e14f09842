package core

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	LogDir      = "logs"
	LogFileName = "galaxy-monkey.log"
	MaxLogSize  = 10 * 1024 * 1024
)

// SetupLogging routes the standard logger to logs/galaxy-monkey.log when debug is set
// and discards it otherwise; the screen owns stdout and stderr while the game runs
// Returns the open log file for the caller to close, nil when logging is off or failed
func SetupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(LogDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(LogDir, LogFileName)
	rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("=== galaxy-monkey started, pid %d ===", os.Getpid())
	return f
}

// rotateLog moves an oversized log aside under a timestamped name
func rotateLog(logPath string) {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= MaxLogSize {
		return
	}
	base := strings.TrimSuffix(LogFileName, filepath.Ext(LogFileName))
	rotated := filepath.Join(LogDir, fmt.Sprintf("%s-%s.log", base, time.Now().Format("20060102-150405")))
	_ = os.Rename(logPath, rotated)
}
