// flags.go defines constants for CLI flag names.
//
// Constants instead of string literals keep Flags().Type() definitions and
// GetType() calls in sync.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "allow-file" -> FlagAllowFile).

package extension

// Flag name constants for CLI commands.
const (
	// Boolean flags

	FlagLocal    = "local"     // Use local scope
	FlagShowList = "show-list" // Append the pattern list to failure messages
	FlagLint     = "lint"      // Report patterns that can never match

	// String flags

	FlagField       = "field"        // Profile field name
	FlagMemberField = "member-field" // Member attribute a field is bound to
	FlagAllowFile   = "allow-file"   // File with allowed patterns, one per line
	FlagDenyFile    = "deny-file"    // File with disallowed patterns, one per line
	FlagSince       = "since"        // Only entries newer than a duration (7d)
	FlagPrune       = "prune"        // Delete entries older than a duration (30d)

	// String slice flags

	FlagAllow = "allow" // Allowed pattern (repeatable)
	FlagDeny  = "deny"  // Disallowed pattern (repeatable)

	// Integer flags

	FlagLimit = "limit" // Limit number of results
)
