// Package log is a minimal leveled key/value logger for the daemon.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

var (
	mu       sync.Mutex
	out      io.Writer = os.Stderr
	minLevel           = LevelInfo
)

// SetLevel sets the minimum level that will be written.
func SetLevel(l Level) {
	mu.Lock()
	minLevel = l
	mu.Unlock()
}

// SetOutput redirects log output; used by tests. A nil writer restores
// the default stderr destination.
func SetOutput(w io.Writer) {
	mu.Lock()
	if w == nil {
		w = os.Stderr
	}
	out = w
	mu.Unlock()
}

func Debug(msg string, kv ...any) { write(LevelDebug, "DEBUG", msg, kv) }

func Info(msg string, kv ...any) { write(LevelInfo, "INFO", msg, kv) }

func Error(msg string, err error, kv ...any) {
	write(LevelError, "ERROR", msg, append([]any{"err", err}, kv...))
}

func write(l Level, tag, msg string, kv []any) {
	mu.Lock()
	defer mu.Unlock()
	if l < minLevel {
		return
	}

	var b strings.Builder
	b.WriteString(time.Now().Format(time.RFC3339))
	b.WriteString(" [")
	b.WriteString(tag)
	b.WriteString("] ")
	b.WriteString(msg)

	// kv is expected as alternating key, value pairs; a trailing odd
	// element is dropped.
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, " %s=%v", key, kv[i+1])
	}
	b.WriteByte('\n')

	io.WriteString(out, b.String())
}
