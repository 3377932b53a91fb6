package conntest

import (
	"fmt"
	"strings"
	"sync"

	"github.com/tendermint/tendermint/libs/log"
)

// Entry is a single message written to the Logger.
type Entry struct {
	Level   string
	Msg     string
	Keyvals []interface{}
}

// Value returns the value logged under given key.
func (e Entry) Value(key string) (interface{}, bool) {
	for i := 0; i+1 < len(e.Keyvals); i += 2 {
		if e.Keyvals[i] == key {
			return e.Keyvals[i+1], true
		}
	}
	return nil, false
}

func (e Entry) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", e.Level, e.Msg)
	for i := 0; i+1 < len(e.Keyvals); i += 2 {
		fmt.Fprintf(&b, " %v=%v", e.Keyvals[i], e.Keyvals[i+1])
	}
	return b.String()
}

// Logger is a log.Logger implementation that records all messages in
// memory. Use it to test what was logged. Logger is safe for concurrent use.
type Logger struct {
	rec  *recorder
	with []interface{}
}

type recorder struct {
	mu      sync.Mutex
	entries []Entry
}

var _ log.Logger = (*Logger)(nil)

// NewLogger returns an empty Logger.
func NewLogger() *Logger {
	return &Logger{rec: &recorder{}}
}

func (l *Logger) Debug(msg string, keyvals ...interface{}) { l.write("debug", msg, keyvals) }
func (l *Logger) Info(msg string, keyvals ...interface{})  { l.write("info", msg, keyvals) }
func (l *Logger) Error(msg string, keyvals ...interface{}) { l.write("error", msg, keyvals) }

// With returns a logger that is writing to the same record, including given
// keyvals with every message.
func (l *Logger) With(keyvals ...interface{}) log.Logger {
	with := make([]interface{}, 0, len(l.with)+len(keyvals))
	with = append(with, l.with...)
	with = append(with, keyvals...)
	return &Logger{rec: l.rec, with: with}
}

func (l *Logger) write(level, msg string, keyvals []interface{}) {
	kv := make([]interface{}, 0, len(l.with)+len(keyvals))
	kv = append(kv, l.with...)
	kv = append(kv, keyvals...)

	l.rec.mu.Lock()
	l.rec.entries = append(l.rec.entries, Entry{Level: level, Msg: msg, Keyvals: kv})
	l.rec.mu.Unlock()
}

// Entries returns all recorded messages.
func (l *Logger) Entries() []Entry {
	l.rec.mu.Lock()
	defer l.rec.mu.Unlock()
	return append([]Entry(nil), l.rec.entries...)
}

// Level returns all recorded messages of given level.
func (l *Logger) Level(level string) []Entry {
	var res []Entry
	for _, e := range l.Entries() {
		if e.Level == level {
			res = append(res, e)
		}
	}
	return res
}

// Find returns the first recorded message with given level and message.
func (l *Logger) Find(level, msg string) (Entry, bool) {
	for _, e := range l.Entries() {
		if e.Level == level && e.Msg == msg {
			return e, true
		}
	}
	return Entry{}, false
}
