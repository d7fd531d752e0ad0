// Package validation checks user-supplied search engine settings.
package validation

import (
	"strings"
	"unicode/utf8"
)

const maxEngineNameLen = 64

// ValidateEngineKey checks a bang key such as "g" in "!g query".
// Keys start with a letter and hold 1-20 letters or digits.
func ValidateEngineKey(value string) []string {
	var errs []string
	value = strings.TrimSpace(value)
	if value == "" {
		errs = append(errs, "engine key cannot be empty")
		return errs
	}
	if len(value) > 20 || !isLetter(value[0]) || strings.IndexFunc(value, func(r rune) bool {
		return r >= utf8.RuneSelf || !(isLetter(byte(r)) || r >= '0' && r <= '9')
	}) != -1 {
		errs = append(errs, "engine key must start with a letter and be 1-20 alphanumeric characters")
	}
	return errs
}

// ValidateEngineName checks the display name of an engine.
func ValidateEngineName(value string) []string {
	var errs []string
	value = strings.TrimSpace(value)
	if strings.ContainsAny(value, "\r\n") {
		errs = append(errs, "engine name must not contain newlines")
	}
	if utf8.RuneCountInString(value) > maxEngineNameLen {
		errs = append(errs, "engine name is too long")
	}
	return errs
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
