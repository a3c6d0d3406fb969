// Package all imports all core domainguard extensions.
// Import this package to register all built-in commands.
package all

import (
	// Core extensions - each registers itself via init()
	_ "github.com/jpl-au/domainguard/extension/check"
	_ "github.com/jpl-au/domainguard/extension/core"
	_ "github.com/jpl-au/domainguard/extension/field"
)
