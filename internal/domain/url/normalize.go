package url

import (
	"fmt"
	"strings"

	"golang.org/x/net/idna"
)

// LocalScheme is the scheme given to local hosts, since dev servers rarely speak TLS.
const LocalScheme = "http"

// LooksLikeURL checks if trimmed text should be opened rather than searched.
// Local development hosts ("localhost:5173") count as URLs too.
func (c *Classifier) LooksLikeURL(text string) bool {
	text = strings.TrimSpace(text)
	return c.IsURL(text) || c.IsLocalhost(text)
}

// Normalize returns the address to open for text that LooksLikeURL, and the
// trimmed text unchanged otherwise. URLs are completed with AddDefaultScheme;
// local hosts get LocalScheme and never the default domain.
func (c *Classifier) Normalize(text, defaultScheme, defaultDomain string) string {
	text = strings.TrimSpace(text)
	switch {
	case text == "":
		return ""
	case c.IsURL(text):
		return c.AddDefaultScheme(text, defaultScheme, defaultDomain)
	case c.IsLocalhost(text):
		return c.AddDefaultScheme(text, LocalScheme, "")
	default:
		return text
	}
}

// IsLocalhost reports whether scheme-less text targets localhost, with an
// optional port and path. "localhost.com" is a regular domain.
func (c *Classifier) IsLocalhost(text string) bool {
	if text == "" || strings.IndexFunc(text, isSpace) != -1 {
		return false
	}
	if _, ok := c.SchemeRange(text); ok {
		return false
	}
	host := strings.ToLower(hostname(authority(text)))
	return host == "localhost" || host == "127.0.0.1" || host == "[::1]"
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// AuthorityToASCII converts the host of an authority segment, as located by
// HostRange, to its IDNA (punycode) form without user info or port.
// "user@пример.рф:8080" yields "xn--e1afmkfd.xn--p1ai". IPv6 literals are
// returned as-is.
func AuthorityToASCII(auth string) (string, error) {
	host := hostname(auth)
	if host == "" {
		return "", fmt.Errorf("no host in %q", auth)
	}
	if strings.HasPrefix(host, "[") {
		return host, nil
	}

	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return "", fmt.Errorf("convert host %q: %w", host, err)
	}
	return ascii, nil
}
