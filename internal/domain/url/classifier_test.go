package url

import (
	"errors"
	"testing"
	"testing/quick"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "empty string", input: "", want: false},
		{name: "whitespace only", input: "   ", want: false},
		{name: "https url", input: "https://example.com", want: true},
		{name: "bare domain", input: "example.com", want: true},
		{name: "search phrase", input: "best pizza near me", want: false},
		{name: "partial scheme", input: "ht", want: false},
		{name: "scheme without host", input: "http://", want: true},
		{name: "uppercase scheme", input: "HTTPS://EXAMPLE.COM", want: true},
		{name: "ftp scheme", input: "ftp://files", want: true},
		{name: "file scheme", input: "file:///tmp/index.html", want: true},
		{name: "query containing a dot", input: "hello.world how are you", want: false},
		{name: "trailing dot while typing", input: "example.", want: false},
		{name: "leading dot", input: ".com", want: false},
		{name: "empty middle label", input: "example..com", want: false},
		{name: "one letter tld", input: "example.c", want: false},
		{name: "digit in tld", input: "example.c0m", want: false},
		{name: "ipv4 without scheme", input: "192.168.0.1", want: false},
		{name: "ipv4 with scheme", input: "http://192.168.0.1", want: true},
		{name: "unicode domain", input: "пример.рф", want: true},
		{name: "domain with path and query", input: "example.com/path?q=1", want: true},
		{name: "userinfo needs a scheme", input: "user@example.com:8080/x", want: false},
		{name: "email address", input: "john@gmail.com", want: false},
		{name: "userinfo with scheme", input: "https://john@gmail.com", want: true},
		{name: "at sign in path only", input: "example.com/@user", want: true},
		{name: "dangling port colon", input: "example.com:", want: true},
		{name: "dot only in path", input: "foo/bar.html", want: false},
		{name: "unknown scheme", input: "about:blank", want: false},
		{name: "leading space before domain", input: " example.com", want: false},
		{name: "tab inside", input: "example.com\t", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsURL(tt.input); got != tt.want {
				t.Errorf("IsURL(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSchemeRange(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      Range
		wantFound bool
		wantText  string
	}{
		{name: "https", input: "https://example.com", want: Range{0, 8}, wantFound: true, wantText: "https://"},
		{name: "http", input: "http://example.com", want: Range{0, 7}, wantFound: true, wantText: "http://"},
		{name: "uppercase", input: "HTTP://x", want: Range{0, 7}, wantFound: true, wantText: "HTTP://"},
		{name: "ftp", input: "ftp://x", want: Range{0, 6}, wantFound: true, wantText: "ftp://"},
		{name: "scheme only", input: "https://", want: Range{0, 8}, wantFound: true, wantText: "https://"},
		{name: "no scheme", input: "example.com"},
		{name: "empty", input: ""},
		{name: "half separator", input: "http:/"},
		{name: "no separator", input: "https:"},
		{name: "leading space", input: " https://x"},
		{name: "scheme mid string", input: "www.https://x"},
		{name: "non ascii prefix", input: "файл http://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := SchemeRange(tt.input)
			require.Equal(t, tt.wantFound, found)
			if !found {
				return
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantText, got.Slice(tt.input))
		})
	}
}

func TestHostRange(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      Range
		wantFound bool
		wantText  string
	}{
		{name: "scheme and path", input: "https://example.com/path", want: Range{8, 11}, wantFound: true, wantText: "example.com"},
		{name: "no scheme", input: "example.com/path", want: Range{0, 11}, wantFound: true, wantText: "example.com"},
		{name: "bare host", input: "example.com", want: Range{0, 11}, wantFound: true, wantText: "example.com"},
		{name: "port kept", input: "http://example.com:8080?q", want: Range{7, 16}, wantFound: true, wantText: "example.com:8080"},
		{name: "userinfo kept", input: "user@example.com:8080/x", want: Range{0, 21}, wantFound: true, wantText: "user@example.com:8080"},
		{name: "fragment delimiter", input: "https://пример.рф#x", want: Range{8, 9}, wantFound: true, wantText: "пример.рф"},
		{name: "rune offsets", input: "пример.рф/путь", want: Range{0, 9}, wantFound: true, wantText: "пример.рф"},
		{name: "search words", input: "best pizza", want: Range{0, 10}, wantFound: true, wantText: "best pizza"},
		{name: "empty", input: ""},
		{name: "scheme only", input: "http://"},
		{name: "path only", input: "/path"},
		{name: "fragment only", input: "#frag"},
		{name: "file url", input: "file:///tmp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := HostRange(tt.input)
			require.Equal(t, tt.wantFound, found)
			if !found {
				return
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantText, got.Slice(tt.input))
		})
	}
}

func TestInsertString(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		insertion string
		index     int
		want      string
		wantErr   bool
	}{
		{name: "middle", text: "abc", insertion: "X", index: 1, want: "aXbc"},
		{name: "start", text: "abc", insertion: "X", index: 0, want: "Xabc"},
		{name: "end", text: "abc", insertion: "X", index: 3, want: "abcX"},
		{name: "empty text", text: "", insertion: "X", index: 0, want: "X"},
		{name: "empty insertion", text: "abc", insertion: "", index: 2, want: "abc"},
		{name: "after multibyte rune", text: "héllo", insertion: "X", index: 2, want: "héXllo"},
		{name: "between cjk runes", text: "日本", insertion: "語", index: 1, want: "日語本"},
		{name: "past end", text: "abc", insertion: "X", index: 4, wantErr: true},
		{name: "negative", text: "abc", insertion: "X", index: -1, wantErr: true},
		{name: "byte length is not rune length", text: "日本", insertion: "X", index: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := InsertString(tt.text, tt.insertion, tt.index)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrOutOfBounds))
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddDefaultScheme(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		defaultScheme string
		defaultDomain string
		want          string
	}{
		{name: "domain gets scheme", text: "example.com", defaultScheme: "https", defaultDomain: "google.com", want: "https://example.com"},
		{name: "existing scheme unchanged", text: "https://example.com", defaultScheme: "https", defaultDomain: "google.com", want: "https://example.com"},
		{name: "existing uppercase scheme unchanged", text: "HTTP://Example.com", defaultScheme: "https", defaultDomain: "google.com", want: "HTTP://Example.com"},
		{name: "domain with path", text: "example.com/a?b=c", defaultScheme: "https", defaultDomain: "", want: "https://example.com/a?b=c"},
		{name: "empty text opens default domain", text: "", defaultScheme: "https", defaultDomain: "google.com", want: "https://google.com"},
		{name: "word becomes page on default domain", text: "foo", defaultScheme: "https", defaultDomain: "google.com", want: "https://google.com/foo"},
		{name: "phrase becomes page on default domain", text: "best pizza", defaultScheme: "https", defaultDomain: "google.com", want: "https://google.com/best pizza"},
		{name: "no default domain", text: "foo", defaultScheme: "https", defaultDomain: "", want: "https://foo"},
		{name: "no default domain empty text", text: "", defaultScheme: "https", defaultDomain: "", want: "https://"},
		{name: "leading slash not doubled", text: "/path", defaultScheme: "https", defaultDomain: "google.com/", want: "https://google.com/path"},
		{name: "default domain with scheme", text: "x", defaultScheme: "https", defaultDomain: "https://google.com/", want: "https://google.com/x"},
		{name: "scheme given with separator", text: "example.com", defaultScheme: "http://", defaultDomain: "", want: "http://example.com"},
		{name: "scheme given with colon", text: "example.com", defaultScheme: "http:", defaultDomain: "", want: "http://example.com"},
		{name: "uppercase scheme lowered", text: "example.com", defaultScheme: "FTP", defaultDomain: "", want: "ftp://example.com"},
		{name: "unknown scheme falls back", text: "example.com", defaultScheme: "gopher", defaultDomain: "", want: "https://example.com"},
		{name: "empty scheme falls back", text: "example.com", defaultScheme: "", defaultDomain: "", want: "https://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddDefaultScheme(tt.text, tt.defaultScheme, tt.defaultDomain)
			assert.Equal(t, tt.want, got)

			_, found := SchemeRange(got)
			assert.True(t, found, "result %q has no recognised scheme", got)
			assert.Equal(t, got, AddDefaultScheme(got, tt.defaultScheme, tt.defaultDomain), "not idempotent")
		})
	}
}

func TestAddDefaultScheme_Idempotent(t *testing.T) {
	check := func(text string, domain string) bool {
		once := AddDefaultScheme(text, "https", domain)
		return AddDefaultScheme(once, "https", domain) == once
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatal(err)
	}
}

func TestInsertString_LengthProperty(t *testing.T) {
	check := func(text, insertion string, idx uint8) bool {
		index := int(idx) % (utf8.RuneCountInString(text) + 1)
		got, err := InsertString(text, insertion, index)
		if err != nil {
			return false
		}
		return utf8.RuneCountInString(got) == utf8.RuneCountInString(text)+utf8.RuneCountInString(insertion)
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatal(err)
	}
}

func TestRanges_StayInBounds(t *testing.T) {
	check := func(text string) bool {
		n := utf8.RuneCountInString(text)
		if r, ok := SchemeRange(text); ok && (r.Start < 0 || r.End() > n) {
			return false
		}
		if r, ok := HostRange(text); ok && (r.Start < 0 || r.End() > n || r.IsEmpty()) {
			return false
		}
		return true
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatal(err)
	}
}

func TestClassifier_ExtraSchemes(t *testing.T) {
	about, ok := ParseScheme("about:")
	require.True(t, ok)
	c := NewClassifier(about, Scheme{Name: "HTTP", Separator: SchemeSeparator})

	assert.True(t, c.IsURL("about:blank"))

	r, found := c.SchemeRange("about:blank")
	require.True(t, found)
	assert.Equal(t, Range{0, 6}, r)

	host, found := c.HostRange("about:blank")
	require.True(t, found)
	assert.Equal(t, "blank", host.Slice("about:blank"))

	assert.Equal(t, "about:x", c.AddDefaultScheme("x", "about", ""))
	assert.Equal(t, "about:blank", c.AddDefaultScheme("about:blank", "https", "google.com"))

	// duplicate http dropped, https still sorted before http
	schemes := c.Schemes()
	assert.Len(t, schemes, 5)
	assert.Equal(t, "https://", schemes[0].Prefix())
}

func TestClassifier_NonASCIISchemeRanges(t *testing.T) {
	c := NewClassifier(Scheme{Name: "é", Separator: SchemeSeparator})
	text := "é://x.com"

	scheme, found := c.SchemeRange(text)
	require.True(t, found)
	assert.Equal(t, Range{0, 4}, scheme)
	assert.Equal(t, "é://", scheme.Slice(text))

	host, found := c.HostRange(text)
	require.True(t, found)
	assert.Equal(t, Range{4, 5}, host)
	assert.Equal(t, "x.com", host.Slice(text))
	assert.LessOrEqual(t, host.End(), utf8.RuneCountInString(text))
}

func TestParseScheme(t *testing.T) {
	tests := []struct {
		spec   string
		want   Scheme
		wantOK bool
	}{
		{spec: "https", want: Scheme{"https", "://"}, wantOK: true},
		{spec: "HTTPS://", want: Scheme{"https", "://"}, wantOK: true},
		{spec: "about:", want: Scheme{"about", ":"}, wantOK: true},
		{spec: "tb://", want: Scheme{"tb", "://"}, wantOK: true},
		{spec: "view-source:", want: Scheme{"view-source", ":"}, wantOK: true},
		{spec: ""},
		{spec: "ht tp"},
		{spec: "1http"},
		{spec: "http:/"},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, ok := ParseScheme(tt.spec)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestRange_Slice(t *testing.T) {
	assert.Equal(t, "", Range{Start: 10, Length: 2}.Slice("abc"))
	assert.Equal(t, "bc", Range{Start: 1, Length: 10}.Slice("abc"))
	assert.Equal(t, "", Range{Start: -1, Length: 2}.Slice("abc"))
	assert.Equal(t, "本", Range{Start: 1, Length: 1}.Slice("日本語"))
}
