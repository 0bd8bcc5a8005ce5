package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/pants/pkg/pants"
)

var (
	colorTeal  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorAmber = lipgloss.Color("220")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorTeal)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber  = lipgloss.NewStyle().Foreground(colorTeal)
	styleWarning = lipgloss.NewStyle().Foreground(colorAmber)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	stylePointer = lipgloss.NewStyle().Bold(true).Foreground(colorTeal)

	styleIconSpinner = lipgloss.NewStyle().Foreground(colorTeal)
)

// Status line prefixes.
var (
	iconSuccess = lipgloss.NewStyle().Foreground(colorGreen).Render("✓")
	iconWarning = lipgloss.NewStyle().Foreground(colorAmber).Render("!")
	iconInfo    = lipgloss.NewStyle().Foreground(colorGray).Render("›")
)

func status(w io.Writer, icon, msg string) {
	fmt.Fprintln(w, icon+" "+msg)
}

func printSuccess(w io.Writer, format string, args ...any) {
	status(w, iconSuccess, fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	status(w, iconWarning, styleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(w io.Writer, format string, args ...any) {
	status(w, iconInfo, fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed line below a status line.
func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+styleDim.Render(fmt.Sprintf(format, args...)))
}

func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+styleDim.Render("→")+" "+styleValue.Render(path))
}

// printKeyValue prints key in a fixed-width column. value is written as is
// so callers can pass pre-rendered text.
func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+value)
}

// renderState formats s like State.String with the pointed value
// highlighted.
func renderState[T comparable](s pants.State[T]) string {
	var b strings.Builder
	b.WriteString(styleDim.Render("["))
	for i := range s.Len() {
		if i > 0 {
			b.WriteByte(' ')
		}
		v := fmt.Sprint(s.At(i))
		if i == s.Pointer() {
			b.WriteString(stylePointer.Render("*" + v))
		} else {
			b.WriteString(styleValue.Render(v))
		}
	}
	b.WriteString(styleDim.Render("]"))
	return b.String()
}

// printStats prints the totals of a walk on one dimmed line.
func printStats(w io.Writer, states, edges, depth int, truncated bool) {
	parts := []string{
		plural(states, "state"),
		plural(edges, "edge"),
		fmt.Sprintf("depth %d", depth),
	}
	if truncated {
		parts = append(parts, "truncated")
	}
	fmt.Fprintln(w, "  "+styleDim.Render(strings.Join(parts, " · ")))
}

func plural(n int, noun string) string {
	if n != 1 {
		noun += "s"
	}
	return fmt.Sprintf("%d %s", n, noun)
}
