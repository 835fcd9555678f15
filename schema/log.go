package schema

import (
	"encoding/json"
	"log"
)

// Logger receives the builder's diagnostics. ctx may be nil.
type Logger interface {
	Trace(message string, ctx map[string]any)
	Info(message string, ctx map[string]any)
}

// StdLogger writes through the standard log package. Trace lines are
// dropped unless verbose is set.
func StdLogger(verbose bool) Logger {
	return stdLogger{verbose: verbose}
}

type stdLogger struct {
	verbose bool
}

func (l stdLogger) Trace(msg string, ctx map[string]any) {
	if l.verbose {
		logLine("trace", msg, ctx)
	}
}

func (stdLogger) Info(msg string, ctx map[string]any) { logLine("info", msg, ctx) }

func logLine(level, msg string, ctx map[string]any) {
	if len(ctx) == 0 {
		log.Printf("schema: [%s] %s", level, msg)
		return
	}
	b, err := json.Marshal(ctx)
	if err != nil {
		log.Printf("schema: [%s] %s %v", level, msg, ctx)
		return
	}
	log.Printf("schema: [%s] %s %s", level, msg, b)
}

// FuncLogger adapts a plain function.
type FuncLogger struct {
	Fn func(level, message string, ctx map[string]any)
}

func (f FuncLogger) Trace(msg string, ctx map[string]any) { f.Fn("trace", msg, ctx) }
func (f FuncLogger) Info(msg string, ctx map[string]any)  { f.Fn("info", msg, ctx) }

type nopLogger struct{}

func (nopLogger) Trace(string, map[string]any) {}
func (nopLogger) Info(string, map[string]any)  {}
