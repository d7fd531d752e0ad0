package url

import "strings"

// SchemeSeparator is the separator used by hierarchical schemes.
const SchemeSeparator = "://"

// DefaultScheme is used when a caller asks for an unknown or empty default scheme.
const DefaultScheme = "https"

// Scheme is a scheme token plus the separator that must follow it.
type Scheme struct {
	Name      string
	Separator string
}

// Prefix returns the scheme as it appears at the start of a URL, e.g. "https://".
func (s Scheme) Prefix() string {
	return s.Name + s.Separator
}

// KnownSchemes returns the schemes recognised by the default classifier.
func KnownSchemes() []Scheme {
	return []Scheme{
		{Name: "http", Separator: SchemeSeparator},
		{Name: "https", Separator: SchemeSeparator},
		{Name: "ftp", Separator: SchemeSeparator},
		{Name: "file", Separator: SchemeSeparator},
	}
}

// ParseScheme parses a scheme spec such as "about:", "tb://" or "https".
// A bare token gets the "://" separator.
func ParseScheme(spec string) (Scheme, bool) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Scheme{}, false
	}

	name, sep := spec, SchemeSeparator
	if idx := strings.Index(spec, ":"); idx != -1 {
		name, sep = spec[:idx], spec[idx:]
		if sep != ":" && sep != SchemeSeparator {
			return Scheme{}, false
		}
	}

	if !isSchemeToken(name) {
		return Scheme{}, false
	}
	return Scheme{Name: strings.ToLower(name), Separator: sep}, true
}

// isSchemeToken follows RFC 3986: ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func isSchemeToken(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}
