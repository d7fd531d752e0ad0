package url

import "strings"

// ParseBangShortcut extracts a bang shortcut from input.
// Input must start with "!" followed by shortcut key and a space.
// Returns (shortcutKey, query, found). The key is lowercased.
//
// Examples:
//
//	"!g golang"      → ("g", "golang", true)
//	"!DDG test"      → ("ddg", "test", true)
//	"!gh repo name"  → ("gh", "repo name", true)
//	"!g"             → ("", "", false) - no query
//	"plain text"     → ("", "", false)
//	"test !g"        → ("", "", false) - bang not at start
func ParseBangShortcut(input string) (shortcut, query string, found bool) {
	if !strings.HasPrefix(input, "!") {
		return "", "", false
	}

	spaceIdx := strings.Index(input, " ")
	if spaceIdx == -1 || spaceIdx == 1 {
		return "", "", false
	}

	shortcut = strings.ToLower(input[1:spaceIdx])
	query = strings.TrimSpace(input[spaceIdx+1:])

	if query == "" {
		return "", "", false
	}

	return shortcut, query, true
}
