package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tinybrowser/internal/domain/entity"
)

// ClassifyRenderer renders classifier and resolver results.
type ClassifyRenderer struct {
	theme *Theme
}

// NewClassifyRenderer creates a new classify renderer with the given theme.
func NewClassifyRenderer(theme *Theme) *ClassifyRenderer {
	return &ClassifyRenderer{theme: theme}
}

// RenderBadge renders URL or TEXT depending on the classification.
func (r *ClassifyRenderer) RenderBadge(c entity.Classification) string {
	if c.IsURL {
		return r.theme.Badge.Render("URL")
	}
	return r.theme.BadgeMuted.Render("TEXT")
}

// RenderClassification renders one classification as a short block.
func (r *ClassifyRenderer) RenderClassification(c entity.Classification) string {
	keyStyle := r.theme.Subtle
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s %s\n", r.RenderBadge(c), r.theme.HighlightAddress(c)))

	if c.HasScheme {
		sb.WriteString(fmt.Sprintf("  %s %s %s %s\n",
			iconStyle.Render(IconCursor),
			keyStyle.Render("scheme"),
			r.theme.Normal.Render(c.Scheme),
			keyStyle.Render(fmt.Sprintf("[%d,%d)", c.SchemeStart, c.SchemeStart+c.SchemeLen)),
		))
	}
	if c.HasHost {
		sb.WriteString(fmt.Sprintf("  %s %s %s %s\n",
			iconStyle.Render(IconCursor),
			keyStyle.Render("host"),
			r.theme.Normal.Render(c.Host),
			keyStyle.Render(fmt.Sprintf("[%d,%d)", c.HostStart, c.HostStart+c.HostLen)),
		))
	}
	if c.ASCIIHost != "" && c.ASCIIHost != c.Host {
		sb.WriteString(fmt.Sprintf("  %s %s %s\n",
			iconStyle.Render(IconCursor),
			keyStyle.Render("ascii"),
			r.theme.Normal.Render(c.ASCIIHost),
		))
	}
	if c.Normalized != "" {
		sb.WriteString(fmt.Sprintf("  %s %s %s\n",
			iconStyle.Render(IconArrow),
			keyStyle.Render("url"),
			r.theme.Highlight.Render(c.Normalized),
		))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// RenderResolution renders where typed text leads.
func (r *ClassifyRenderer) RenderResolution(res entity.Resolution) string {
	icon := IconGlobe
	switch res.Kind {
	case entity.ResolutionSearch:
		icon = IconSearch
	case entity.ResolutionShortcut:
		icon = IconBolt
	case entity.ResolutionMainPage:
		icon = IconHome
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	line := fmt.Sprintf("%s %s %s",
		iconStyle.Render(icon),
		r.theme.BadgeMuted.Render(string(res.Kind)),
		r.theme.Highlight.Render(res.URL),
	)
	if res.Engine != "" {
		line += " " + r.theme.Subtle.Render("via "+res.Engine)
	}
	return line
}

// RenderError renders an error message.
func (r *ClassifyRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("%s %s", iconStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}
