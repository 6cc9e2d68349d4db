package handlers

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/imamik/livepipe/internal/orchestration"
)

var (
	colorBlue  = lipgloss.Color("#3b82f6")
	colorDim   = lipgloss.Color("#6b7280")
	colorWhite = lipgloss.Color("#f9fafb")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	keyStyle   = lipgloss.NewStyle().Foreground(colorDim)
	valueStyle = lipgloss.NewStyle().Foreground(colorBlue)
)

// isTerminal reports whether stdout is a terminal.
var isTerminal = func() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// renderResult formats the playback URL and ingest parameters.
// Styling is applied only when styled is set.
func renderResult(result *orchestration.Result, styled bool) string {
	plain := func(s string) string { return s }
	title, key, value := plain, plain, plain
	if styled {
		title = func(s string) string { return titleStyle.Render(s) }
		key = func(s string) string { return keyStyle.Render(s) }
		value = func(s string) string { return valueStyle.Render(s) }
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(title("MediaPackage HLS Endpoint URL"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s\n", value(result.PlaybackURL))

	b.WriteString("\n")
	b.WriteString(title("MediaLive Ingest Parameters"))
	b.WriteString("\n")
	for i, dest := range result.IngestDestinations {
		if len(result.IngestDestinations) > 1 {
			fmt.Fprintf(&b, "  %s\n", key(fmt.Sprintf("Destination %d", i+1)))
		}
		for _, p := range dest.Params() {
			fmt.Fprintf(&b, "  %s %s\n", key(p.Key+":"), value(p.Value))
		}
	}
	return b.String()
}
