// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
	colorWhite = lipgloss.Color("255")
)

var (
	// StyleTitle for section headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	// StyleKey for vertex keys.
	StyleKey = lipgloss.NewStyle().Foreground(colorWhite)
	// StyleNumber for counts and weights.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)
	// StyleDim for separators and secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleLabel       = lipgloss.NewStyle().Foreground(colorGray).Width(10)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconArrow   = "→"
)

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, StyleTitle.Render(title))
}

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printFailure(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleLabel.Render(key)+" "+value)
}

// renderKeys joins keys with a dim arrow, e.g. "A → B → C".
func renderKeys(keys []string) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = StyleKey.Render(k)
	}
	return strings.Join(parts, " "+StyleDim.Render(iconArrow)+" ")
}

// renderList joins keys with dim commas.
func renderList(keys []string) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = StyleKey.Render(k)
	}
	return strings.Join(parts, StyleDim.Render(", "))
}
