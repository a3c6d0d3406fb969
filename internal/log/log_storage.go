// log_storage.go implements SQLite-based persistent audit logging.
//
// log.go provides the fluent API; this file handles persistence. The project
// column holds a hash of the working directory so entries can be grouped
// without recording paths.
//
// Errors during logging are reported to stderr and otherwise ignored. A check
// must still answer even if the audit log cannot be written.

package log

import (
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/blake2b"
	_ "modernc.org/sqlite"
)

// Logger writes audit log entries to a SQLite database.
type Logger struct {
	db      *sql.DB
	project string
}

func (l *Logger) log(e Entry) {
	var detail *string
	if len(e.Detail) > 0 {
		if b, err := json.Marshal(e.Detail); err == nil {
			s := string(b)
			detail = &s
		}
	}

	success := 0
	if e.Success {
		success = 1
	}

	_, err := l.db.Exec(`
		INSERT INTO log (start, end, project, source, author, action, field,
		                 subject, outcome, success, error, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Start, e.End, l.project, e.Source, nilIfEmpty(e.Author), e.Action,
		nilIfEmpty(e.Field), nilIfEmpty(e.Subject), nilIfEmpty(e.Outcome),
		success, nilIfEmpty(e.Error), detail,
	)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "domainguard: audit log write failed: %v\n", err)
	}
}

func (l *Logger) recent(limit int, since int64) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := l.db.Query(`
		SELECT start, end, source, author, action, field, subject, outcome,
		       success, error, detail
		FROM log WHERE project = ? AND start >= ?
		ORDER BY id DESC LIMIT ?`, l.project, since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e                                       Entry
			author, field, subject, outcome, errMsg sql.NullString
			detail                                  sql.NullString
			success                                 int
		)
		if err := rows.Scan(&e.Start, &e.End, &e.Source, &author, &e.Action,
			&field, &subject, &outcome, &success, &errMsg, &detail); err != nil {
			return nil, err
		}
		e.Author, e.Field, e.Subject, e.Outcome = author.String, field.String, subject.String, outcome.String
		e.Success = success == 1
		e.Error = errMsg.String
		if detail.Valid {
			_ = json.Unmarshal([]byte(detail.String), &e.Detail)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// prune deletes this project's entries that started before cutoff.
func (l *Logger) prune(cutoff int64) (int64, error) {
	res, err := l.db.Exec(`DELETE FROM log WHERE project = ? AND start < ?`, l.project, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// dbPathFunc is the function that returns the database path.
// Tests can override this to use a temp directory.
var dbPathFunc = defaultDBPath

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to the current directory so logging still works in
		// containers without a home directory.
		return filepath.Join(".domainguard", "log", "domainguard-log.db")
	}
	return filepath.Join(home, ".domainguard", "log", "domainguard-log.db")
}

func dbPath() string {
	return dbPathFunc()
}

// DBPath returns the path to the log database.
func DBPath() string {
	return dbPath()
}

// hash creates a project identifier from the directory path.
func hash(s string) string {
	h, err := blake2b.New(8, nil) // 64-bit = 16 hex chars
	if err != nil {
		panic("blake2b.New failed: " + err.Error())
	}
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

// migrate creates the log table if it doesn't exist. Safe for concurrent access.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS log (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			start    INTEGER NOT NULL,
			end      INTEGER NOT NULL,
			project  TEXT NOT NULL,
			source   TEXT NOT NULL,
			author   TEXT,
			action   TEXT NOT NULL,
			field    TEXT,
			subject  TEXT,
			outcome  TEXT,
			success  INTEGER NOT NULL,
			error    TEXT,
			detail   TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_log_start ON log(start);
		CREATE INDEX IF NOT EXISTS idx_log_project ON log(project);
		CREATE INDEX IF NOT EXISTS idx_log_source ON log(source);
	`)
	return err
}

// nilIfEmpty returns nil for empty strings, storing NULL instead of "".
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
