package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

var bannerLines = []string{
	`            _   _           _`,
	`  ___  _ __| |_| |__   ___ | | ___   __ _ _   _`,
	` / _ \| '__| __| '_ \ / _ \| |/ _ \ / _' | | | |`,
	`| (_) | |  | |_| | | | (_) | | (_) | (_| | |_| |`,
	` \___/|_|   \__|_| |_|\___/|_|\___/ \__, |\__, |`,
	`                                    |___/ |___/`,
}

var bannerColors = []string{"#34d399", "#2dd4bf", "#22d3ee", "#38bdf8", "#60a5fa", "#818cf8"}

// PrintBanner writes the tool banner followed by the version to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	p := out.ColorProfile()

	fmt.Fprintln(w)
	for i, line := range bannerLines {
		fmt.Fprintln(w, out.String(line).Foreground(p.Color(bannerColors[i])))
	}
	fmt.Fprintln(w, out.String("  v"+strings.TrimSpace(version)).Faint())
	fmt.Fprintln(w)
}
