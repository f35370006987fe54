package terminal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/koscakluka/simon/core/display"
)

const (
	ledOn  = "●"
	ledOff = "·"

	defaultBannerWidth = 40
)

// ledColours maps a brightness level to a shade of red, dimmest first.
var ledColours = [display.MaxBrightness + 1]lipgloss.Color{
	"#3a3a3a",
	"#4a0d0d",
	"#5e1111",
	"#741616",
	"#8b1b1b",
	"#a32020",
	"#ba2626",
	"#d02c2c",
	"#e83333",
	"#ff3b3b",
}

var (
	matrixStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#555555")).
			Padding(0, 1)
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f5c542"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9a9a9a"))
	overStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff3b3b"))
)

func renderMatrix(img display.Image) string {
	rows := make([]string, 0, display.Height)
	for y := range display.Height {
		var sb strings.Builder
		for x := range display.Width {
			if x > 0 {
				sb.WriteByte(' ')
			}
			level := min(img.At(x, y), display.MaxBrightness)
			glyph := ledOn
			if level == 0 {
				glyph = ledOff
			}
			sb.WriteString(lipgloss.NewStyle().Foreground(ledColours[level]).Render(glyph))
		}
		rows = append(rows, sb.String())
	}
	return strings.Join(rows, "\n")
}

func (m model) bannerWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultBannerWidth
}

func (m model) render() string {
	parts := make([]string, 0, 4)
	if m.banner != "" {
		parts = append(parts, bannerStyle.Render(wordwrap.String(m.banner, m.bannerWidth())))
	}

	parts = append(parts, matrixStyle.Render(renderMatrix(m.frame)))

	status := statusStyle
	if m.gameOver {
		status = overStyle
	}
	parts = append(parts, status.Render(wordwrap.String(m.status, m.bannerWidth())))
	parts = append(parts, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}
