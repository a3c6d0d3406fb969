// Package log provides centralised audit logging for domainguard operations.
// Logs are stored in ~/.domainguard/log/domainguard-log.db and track all CLI
// commands and MCP tool invocations across projects.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("check:check", "validate").
//		Author(cmd.Author()).
//		Subject(email).
//		Outcome(res.Kind.String()).
//		Write(err)
//
//	log.Event("field:set", "update").
//		Author(cmd.Author()).
//		Field(name).
//		Detail("key", key).
//		Write(err)
//
// The source parameter follows the format "{extension}:{command}" for CLI
// commands or "mcp:{tool}" for MCP tools.
package log

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// ErrNotOpen is returned by operations that need the database when Open has
// not been called or failed.
var ErrNotOpen = errors.New("audit log is not open")

// Entry represents a single log entry.
type Entry struct {
	Source  string `json:"source"`            // e.g. "check:check", "mcp:domain_validate"
	Author  string `json:"author,omitempty"`  // who performed the action
	Action  string `json:"action"`            // verb: validate, match, update, remove
	Field   string `json:"field,omitempty"`   // profile field the operation used
	Subject string `json:"subject,omitempty"` // address or domain being checked
	Outcome string `json:"outcome,omitempty"` // result kind for checks

	Start int64 `json:"start"` // unix timestamp when Event() called
	End   int64 `json:"end"`   // unix timestamp when Write() called

	Success bool           `json:"success"`
	Error   string         `json:"error,omitempty"`
	Detail  map[string]any `json:"detail,omitempty"`
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "{extension}:{command}" (e.g., "check:match", "field:add")
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:domain_validate")
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Author sets who performed the operation.
//
// For CLI commands, use cmd.Author() which returns the configured author.
// For MCP tools, use "mcp".
func (b *Builder) Author(author string) *Builder {
	b.entry.Author = author
	return b
}

// Field sets the profile field name the operation used or changed.
func (b *Builder) Field(name string) *Builder {
	b.entry.Field = name
	return b
}

// Subject sets the value that was checked, an address or a domain.
func (b *Builder) Subject(s string) *Builder {
	b.entry.Subject = s
	return b
}

// Outcome records a check's result kind, e.g. "DisallowedDomain".
func (b *Builder) Outcome(kind string) *Builder {
	b.entry.Outcome = kind
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
// Can be called multiple times.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure from err.
//
// A failed domain check is not an error: pass nil and record the kind with
// Outcome. Reserve err for operations that could not run.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetProject sets the project identifier for subsequent log entries.
// The dir should be the absolute working directory.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Recent returns up to limit entries for the current project, newest first.
// Returns nil when the logger is not open.
func Recent(limit int) ([]Entry, error) {
	return RecentSince(limit, time.Time{})
}

// RecentSince is Recent restricted to entries started at or after since.
// A zero since means no lower bound.
func RecentSince(limit int, since time.Time) ([]Entry, error) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return nil, nil
	}
	var from int64
	if !since.IsZero() {
		from = since.Unix()
	}
	return l.recent(limit, from)
}

// Prune deletes the current project's entries started before cutoff and
// returns how many were removed.
func Prune(cutoff time.Time) (int64, error) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return 0, ErrNotOpen
	}
	return l.prune(cutoff.Unix())
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
