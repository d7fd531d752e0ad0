package styles

import (
	"strings"

	"github.com/bnema/tinybrowser/internal/domain/entity"
)

// SegmentKind labels one part of an address.
type SegmentKind int

const (
	SegmentRest SegmentKind = iota
	SegmentScheme
	SegmentHost
)

// Segment is a run of address text sharing one SegmentKind.
type Segment struct {
	Kind SegmentKind
	Text string
}

// AddressSegments splits the classified input into scheme, host and the rest.
// Scheme and host are only marked when the input is a URL.
func AddressSegments(c entity.Classification) []Segment {
	runes := []rune(c.Input)
	if len(runes) == 0 {
		return nil
	}

	kinds := make([]SegmentKind, len(runes))
	mark := func(start, length int, kind SegmentKind) {
		end := min(start+length, len(runes))
		for i := max(start, 0); i < end; i++ {
			kinds[i] = kind
		}
	}
	if c.IsURL {
		if c.HasScheme {
			mark(c.SchemeStart, c.SchemeLen, SegmentScheme)
		}
		if c.HasHost {
			mark(c.HostStart, c.HostLen, SegmentHost)
		}
	}

	var segments []Segment
	for i := 0; i < len(runes); {
		j := i
		for j < len(runes) && kinds[j] == kinds[i] {
			j++
		}
		segments = append(segments, Segment{Kind: kinds[i], Text: string(runes[i:j])})
		i = j
	}
	return segments
}

// HighlightAddress renders the input with its scheme and host styled.
func (t *Theme) HighlightAddress(c entity.Classification) string {
	var sb strings.Builder
	for _, seg := range AddressSegments(c) {
		switch seg.Kind {
		case SegmentScheme:
			sb.WriteString(t.SchemePart.Render(seg.Text))
		case SegmentHost:
			sb.WriteString(t.HostPart.Render(seg.Text))
		default:
			sb.WriteString(t.RestPart.Render(seg.Text))
		}
	}
	return sb.String()
}
