package log

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempDB(t *testing.T) {
	t.Helper()
	tmpDir := t.TempDir()
	orig := dbPathFunc
	dbPathFunc = func() string {
		return filepath.Join(tmpDir, "log", "test.db")
	}
	t.Cleanup(func() {
		Close()
		dbPathFunc = orig
	})
}

func lastRow(t *testing.T, query string, dest ...any) {
	t.Helper()
	db, err := sql.Open("sqlite", DBPath())
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.QueryRow(query).Scan(dest...))
}

func TestLogger(t *testing.T) {
	useTempDB(t)

	t.Run("open and close", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()
		assert.FileExists(t, DBPath())
	})

	t.Run("log entry", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()
		SetProject("/test/project")

		Log(Entry{
			Source:  "check:check",
			Author:  "test-user",
			Action:  "validate",
			Field:   "Email",
			Subject: "a@spam.com",
			Outcome: "DisallowedDomain",
			Success: true,
		})

		var source, action, field, subject, outcome string
		var success int
		lastRow(t, "SELECT source, action, field, subject, outcome, success FROM log ORDER BY id DESC LIMIT 1",
			&source, &action, &field, &subject, &outcome, &success)
		assert.Equal(t, "check:check", source)
		assert.Equal(t, "validate", action)
		assert.Equal(t, "Email", field)
		assert.Equal(t, "a@spam.com", subject)
		assert.Equal(t, "DisallowedDomain", outcome)
		assert.Equal(t, 1, success)
	})

	t.Run("log without logger is noop", func(t *testing.T) {
		Close()
		Log(Entry{Source: "test:cmd", Action: "test", Success: true})
		got, err := Recent(5)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("open is idempotent", func(t *testing.T) {
		require.NoError(t, Open())
		require.NoError(t, Open())
		Close()
	})
}

func TestBuilder(t *testing.T) {
	useTempDB(t)

	t.Run("success", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()
		SetProject("/test/project")

		Event("field:set", "update").
			Author("test-user").
			Field("Email").
			Detail("key", "allowed_domains").
			Detail("count", 3).
			Write(nil)

		var author, field, detail string
		var success int
		lastRow(t, "SELECT author, field, detail, success FROM log ORDER BY id DESC LIMIT 1",
			&author, &field, &detail, &success)
		assert.Equal(t, "test-user", author)
		assert.Equal(t, "Email", field)
		assert.Contains(t, detail, "allowed_domains")
		assert.Contains(t, detail, "3")
		assert.Equal(t, 1, success)
	})

	t.Run("error", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		Event("field:rm", "remove").Field("Missing").Write(errors.New("field not found"))

		var success int
		var errMsg string
		lastRow(t, "SELECT success, error FROM log ORDER BY id DESC LIMIT 1", &success, &errMsg)
		assert.Equal(t, 0, success)
		assert.Equal(t, "field not found", errMsg)
	})
}

func TestRecent(t *testing.T) {
	useTempDB(t)
	require.NoError(t, Open())
	SetProject("/project/a")

	Event("check:match", "match").Subject("one.com").Write(nil)
	Event("check:match", "match").Subject("two.com").Detail("pattern", "*.com").Write(nil)

	SetProject("/project/b")
	Event("check:match", "match").Subject("other.com").Write(nil)

	SetProject("/project/a")
	got, err := Recent(10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "two.com", got[0].Subject, "newest first")
	assert.Equal(t, "*.com", got[0].Detail["pattern"])
	assert.Equal(t, "one.com", got[1].Subject)

	got, err = Recent(1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestHash(t *testing.T) {
	h1 := hash("/home/user/project")
	h2 := hash("/home/user/project")
	h3 := hash("/home/user/other")

	assert.Equal(t, h1, h2, "same input should produce same hash")
	assert.NotEqual(t, h1, h3, "different input should produce different hash")
	assert.Len(t, h1, 16, "BLAKE2b-64 should produce 16 hex chars")
}

func TestDBPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	orig := dbPathFunc
	dbPathFunc = defaultDBPath
	defer func() { dbPathFunc = orig }()

	assert.Equal(t, filepath.Join(home, ".domainguard", "log", "domainguard-log.db"), DBPath())
}

func TestRecentSinceAndPrune(t *testing.T) {
	useTempDB(t)
	require.NoError(t, Open())
	SetProject("/project/a")

	old := time.Now().Add(-48 * time.Hour).Unix()
	Log(Entry{Source: "check:check", Action: "validate", Subject: "old@a.com", Start: old, End: old, Success: true})
	Event("check:check", "validate").Subject("new@a.com").Write(nil)

	SetProject("/project/b")
	Log(Entry{Source: "check:check", Action: "validate", Subject: "old@b.com", Start: old, End: old, Success: true})

	SetProject("/project/a")
	got, err := RecentSince(10, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "new@a.com", got[0].Subject)

	n, err := Prune(time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err = Recent(10)
	require.NoError(t, err)
	require.Len(t, got, 1)

	SetProject("/project/b")
	got, err = Recent(10)
	require.NoError(t, err)
	assert.Len(t, got, 1, "other projects are untouched")
}

func TestPrune_NotOpen(t *testing.T) {
	useTempDB(t)
	_, err := Prune(time.Now())
	assert.ErrorIs(t, err, ErrNotOpen)
}
