package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Run("creates local config with Email field", func(t *testing.T) {
		env := newBareEnv(t)

		out := env.run("init")
		env.contains(out, `with field "Email"`)

		data, err := os.ReadFile(filepath.Join(env.dir, ".domainguard", "config.yaml"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "member_field: Email")
		assert.Contains(t, string(data), "public_visibility: Hide")
	})

	t.Run("custom field name", func(t *testing.T) {
		env := newBareEnv(t)

		env.run("init", "--field", "Work email")
		out := env.run("field", "ls")
		env.contains(out, "Work email")
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		env := newBareEnv(t)

		env.run("init")
		out, err := env.runErr("init")
		assert.Error(t, err)
		env.contains(out, "config already exists")
	})
}

func TestLog(t *testing.T) {
	env := newTestEnv(t)
	_, _ = env.runErr("check", "a@gmail.com")

	out := env.run("log", "-n", "5")
	env.contains(out, "check:check")
	env.contains(out, "subject=a@gmail.com")
	env.contains(out, "outcome=NotAllowedDomain")
}

func TestVersion(t *testing.T) {
	env := newBareEnv(t)

	out := env.run("version")
	assert.NotEmpty(t, out)
}

func TestLog_Prune(t *testing.T) {
	env := newTestEnv(t)
	_, _ = env.runErr("check", "a@gmail.com")

	out := env.run("log", "--since", "1h")
	env.contains(out, "check:check")

	out = env.run("log", "--prune", "1d")
	env.contains(out, "Removed 0 entries")

	_, err := env.runErr("log", "--since", "soon")
	assert.Error(t, err)
}

func TestVersion_Short(t *testing.T) {
	env := newBareEnv(t)

	out := env.run("version", "--short")
	env.equals(out, "dev")
}
