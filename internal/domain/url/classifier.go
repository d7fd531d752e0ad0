// Package url classifies and normalizes text typed into the address bar.
//
// Input is usually partial: the user is still typing. Every function here
// returns a definite answer for any string, including empty or malformed
// input. Only InsertString can fail, and only for a bad index.
package url

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// ErrOutOfBounds is returned when an insertion index lies outside the text.
var ErrOutOfBounds = errors.New("index out of bounds")

// hostDelimiters end the authority segment of a URL.
const hostDelimiters = "/?#"

// Classifier decides whether address-bar text is a URL and locates its parts.
// A Classifier is immutable and safe for concurrent use.
type Classifier struct {
	// sorted by prefix length, longest first, so "https://" beats "http://"
	schemes []Scheme
}

// NewClassifier returns a classifier recognising KnownSchemes plus extra.
// Duplicate schemes are ignored.
func NewClassifier(extra ...Scheme) *Classifier {
	seen := make(map[string]bool)
	schemes := make([]Scheme, 0, len(extra)+len(KnownSchemes()))
	for _, s := range append(KnownSchemes(), extra...) {
		s.Name = strings.ToLower(s.Name)
		if s.Name == "" || s.Separator == "" || seen[s.Prefix()] {
			continue
		}
		seen[s.Prefix()] = true
		schemes = append(schemes, s)
	}
	sort.SliceStable(schemes, func(i, j int) bool {
		return len(schemes[i].Prefix()) > len(schemes[j].Prefix())
	})
	return &Classifier{schemes: schemes}
}

// Schemes returns the recognised schemes, longest prefix first.
func (c *Classifier) Schemes() []Scheme {
	out := make([]Scheme, len(c.schemes))
	copy(out, c.schemes)
	return out
}

// IsURL reports whether text should be navigated to rather than searched.
//
// Text is a URL when it starts with a recognised scheme and separator, or when
// it contains no whitespace and its host is domain-shaped: at least two
// non-empty dot-separated labels, the last one alphabetic and two or more
// characters long. Without a scheme, user info is not accepted, so
// "john@gmail.com" reads as a search rather than a login to gmail.com.
func (c *Classifier) IsURL(text string) bool {
	if text == "" {
		return false
	}
	if _, ok := c.SchemeRange(text); ok {
		return true
	}
	return isDomainShaped(text)
}

// SchemeRange locates the scheme and its separator at the start of text,
// matched case-insensitively. It returns false when none is present.
func (c *Classifier) SchemeRange(text string) (Range, bool) {
	s, ok := c.schemeAt(text)
	if !ok {
		return Range{}, false
	}
	return Range{Start: 0, Length: runeLen(s.Prefix())}, true
}

// HostRange locates the authority segment: everything after the scheme
// separator (or from the start when there is no scheme) up to the first
// '/', '?' or '#'. A port and user info stay inside the range. It returns
// false when that segment is empty.
func (c *Classifier) HostRange(text string) (Range, bool) {
	start, rest := 0, text
	if s, ok := c.schemeAt(text); ok {
		prefix := s.Prefix()
		start = runeLen(prefix)
		rest = text[len(prefix):]
	}

	host := authority(rest)
	if host == "" {
		return Range{}, false
	}
	return Range{Start: start, Length: runeLen(host)}, true
}

// AddDefaultScheme turns address-bar text into a URL with a leading scheme.
//
//   - text that already has a recognised scheme is returned unchanged;
//   - domain-shaped text gets defaultScheme + "://" inserted at offset 0;
//   - anything else is treated as a page on defaultDomain: empty text becomes
//     "scheme://defaultDomain" and other text "scheme://defaultDomain/text".
//     With an empty defaultDomain the text is only prefixed with the scheme.
//
// defaultScheme may be written "https", "https:" or "https://". An empty or
// unrecognised scheme falls back to DefaultScheme so the result always starts
// with a scheme this classifier recognises, which makes the call idempotent.
func (c *Classifier) AddDefaultScheme(text, defaultScheme, defaultDomain string) string {
	if _, ok := c.SchemeRange(text); ok {
		return text
	}

	prefix := c.resolveScheme(defaultScheme).Prefix()

	if text != "" && isDomainShaped(text) {
		out, err := InsertString(text, prefix, 0)
		if err != nil {
			// offset 0 is always in bounds
			return prefix + text
		}
		return out
	}

	domain := c.bareDomain(defaultDomain)
	switch {
	case domain == "":
		return prefix + text
	case text == "":
		return prefix + domain
	default:
		return prefix + domain + "/" + strings.TrimPrefix(text, "/")
	}
}

// schemeAt returns the recognised scheme text starts with.
func (c *Classifier) schemeAt(text string) (Scheme, bool) {
	for _, s := range c.schemes {
		if hasPrefixFold(text, s.Prefix()) {
			return s, true
		}
	}
	return Scheme{}, false
}

// resolveScheme maps a caller-supplied default scheme onto a recognised one.
func (c *Classifier) resolveScheme(spec string) Scheme {
	parsed, ok := ParseScheme(spec)
	if ok {
		var byName *Scheme
		for i := range c.schemes {
			s := c.schemes[i]
			if s.Name != parsed.Name {
				continue
			}
			if s.Separator == parsed.Separator {
				return s
			}
			if byName == nil {
				byName = &c.schemes[i]
			}
		}
		if byName != nil {
			return *byName
		}
	}
	s, _ := c.schemeAt(DefaultScheme + SchemeSeparator)
	return s
}

// bareDomain strips a scheme and trailing slashes from a configured domain.
func (c *Classifier) bareDomain(domain string) string {
	domain = strings.TrimSpace(domain)
	if s, ok := c.schemeAt(domain); ok {
		domain = domain[len(s.Prefix()):]
	}
	return strings.TrimRight(domain, "/")
}

// InsertString returns text with insertion placed before the rune at index.
// index may equal the rune length of text to append. Any other index outside
// the text yields an error wrapping ErrOutOfBounds.
func InsertString(text, insertion string, index int) (string, error) {
	at, ok := byteOffset(text, index)
	if !ok {
		return "", fmt.Errorf("%w: index %d, length %d", ErrOutOfBounds, index, runeLen(text))
	}
	return text[:at] + insertion + text[at:], nil
}

// isDomainShaped applies the scheme-less URL heuristic.
func isDomainShaped(text string) bool {
	if strings.IndexFunc(text, unicode.IsSpace) != -1 {
		return false
	}

	auth := authority(text)
	if strings.Contains(auth, "@") {
		return false
	}

	host := hostname(auth)
	if host == "" || strings.Contains(host, ":") {
		return false
	}

	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if label == "" {
			return false
		}
	}

	tld := labels[len(labels)-1]
	if runeLen(tld) < 2 {
		return false
	}
	for _, r := range tld {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// authority cuts rest at the first path, query or fragment delimiter.
func authority(rest string) string {
	if idx := strings.IndexAny(rest, hostDelimiters); idx != -1 {
		return rest[:idx]
	}
	return rest
}

// hostname drops user info and a trailing numeric port from an authority.
func hostname(auth string) string {
	if idx := strings.LastIndex(auth, "@"); idx != -1 {
		auth = auth[idx+1:]
	}
	if strings.HasPrefix(auth, "[") {
		if end := strings.Index(auth, "]"); end != -1 {
			return auth[:end+1]
		}
		return auth
	}
	if idx := strings.LastIndex(auth, ":"); idx != -1 && isDigits(auth[idx+1:]) {
		auth = auth[:idx]
	}
	return auth
}

// isDigits reports whether s holds only ASCII digits. Empty counts, so a
// half-typed "example.com:" still reads as a host.
func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// hasPrefixFold is an ASCII case-insensitive strings.HasPrefix.
func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if lower(s[i]) != lower(prefix[i]) {
			return false
		}
	}
	return true
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

var defaultClassifier = NewClassifier()

// Default returns the classifier for KnownSchemes.
func Default() *Classifier {
	return defaultClassifier
}

// IsURL reports whether text is a URL according to the default classifier.
func IsURL(text string) bool {
	return defaultClassifier.IsURL(text)
}

// SchemeRange locates the scheme using the default classifier.
func SchemeRange(text string) (Range, bool) {
	return defaultClassifier.SchemeRange(text)
}

// HostRange locates the host segment using the default classifier.
func HostRange(text string) (Range, bool) {
	return defaultClassifier.HostRange(text)
}

// AddDefaultScheme normalizes text using the default classifier.
func AddDefaultScheme(text, defaultScheme, defaultDomain string) string {
	return defaultClassifier.AddDefaultScheme(text, defaultScheme, defaultDomain)
}
