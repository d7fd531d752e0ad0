package styles

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/tinybrowser/internal/domain/entity"
)

func TestAddressSegments(t *testing.T) {
	tests := []struct {
		name string
		c    entity.Classification
		want []Segment
	}{
		{
			name: "empty",
			c:    entity.Classification{},
			want: nil,
		},
		{
			name: "scheme host and path",
			c: entity.Classification{
				Input: "https://example.com/a", IsURL: true,
				HasScheme: true, SchemeStart: 0, SchemeLen: 8,
				HasHost: true, HostStart: 8, HostLen: 11,
			},
			want: []Segment{
				{Kind: SegmentScheme, Text: "https://"},
				{Kind: SegmentHost, Text: "example.com"},
				{Kind: SegmentRest, Text: "/a"},
			},
		},
		{
			name: "rune offsets",
			c: entity.Classification{
				Input: "пример.рф/путь", IsURL: true,
				HasHost: true, HostStart: 0, HostLen: 9,
			},
			want: []Segment{
				{Kind: SegmentHost, Text: "пример.рф"},
				{Kind: SegmentRest, Text: "/путь"},
			},
		},
		{
			name: "plain text is not split",
			c: entity.Classification{
				Input: "just words", HasHost: true, HostStart: 0, HostLen: 10,
			},
			want: []Segment{{Kind: SegmentRest, Text: "just words"}},
		},
		{
			name: "ranges past the end are clipped",
			c: entity.Classification{
				Input: "a.io", IsURL: true,
				HasHost: true, HostStart: 0, HostLen: 40,
			},
			want: []Segment{{Kind: SegmentHost, Text: "a.io"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddressSegments(tt.c))
		})
	}
}

func TestClassifyRenderer(t *testing.T) {
	r := NewClassifyRenderer(NewTheme())

	out := r.RenderClassification(entity.Classification{
		Input: "example.com", IsURL: true,
		HasHost: true, HostStart: 0, HostLen: 11, Host: "example.com",
		Normalized: "https://example.com",
	})
	assert.Contains(t, out, "URL")
	assert.Contains(t, out, "host")
	assert.Contains(t, out, "[0,11)")
	assert.Contains(t, out, "https://example.com")
	assert.NotContains(t, out, "scheme")

	res := r.RenderResolution(entity.Resolution{
		Kind: entity.ResolutionSearch, URL: "https://duckduckgo.com/?q=go", Engine: "DuckDuckGo",
	})
	assert.Contains(t, res, "search")
	assert.Contains(t, res, "via DuckDuckGo")

	assert.Contains(t, r.RenderError(errors.New("boom")), "boom")
}
