package ui

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/ray-d-song/golist/pkg/parser"
	"github.com/rivo/tview"
)

var (
	commandToken = regexp.MustCompile(`("(?:[^"\\]|\\.)*"?)|(#.*)|(\S+)|\s+`)
	numberToken  = regexp.MustCompile(`^[+-]?\d+(\.\d+)?$`)
)

// FormatList renders one list as a header line followed by its forward and
// reverse traversals, wrapped to width. A width of zero disables wrapping.
func FormatList(name string, forward, backward []string, width int) []string {
	lines := []string{fmt.Sprintf("[::b]%s[::-] (%d)", tview.Escape(name), len(forward))}
	if len(forward) == 0 {
		return append(lines, "  (empty)")
	}
	lines = append(lines, wrapValues("  -> ", forward, width)...)
	lines = append(lines, wrapValues("  <- ", backward, width)...)
	return lines
}

// wrapValues lays values out after prefix, starting a new indented line
// whenever the next value would overflow width
func wrapValues(prefix string, values []string, width int) []string {
	var lines []string
	indent := strings.Repeat(" ", runewidth.StringWidth(prefix))

	var line strings.Builder
	line.WriteString(prefix)
	lineWidth := runewidth.StringWidth(prefix)
	first := true

	for _, v := range values {
		display := quoteValue(v)
		w := runewidth.StringWidth(display)
		if !first && width > 0 && lineWidth+1+w > width {
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(indent)
			lineWidth = len(indent)
			first = true
		}
		if !first {
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(HighlightValue(display))
		lineWidth += w
		first = false
	}

	return append(lines, line.String())
}

// quoteValue quotes values that would otherwise be ambiguous on screen
func quoteValue(v string) string {
	if v == "" || strings.ContainsAny(v, " \t") {
		return strconv.Quote(v)
	}
	return v
}

// HighlightValue colors a single displayed value
func HighlightValue(v string) string {
	switch {
	case numberToken.MatchString(v):
		return "[#FF8800]" + v + "[-]"
	case strings.HasPrefix(v, `"`):
		return "[#FFFF00]" + tview.Escape(v) + "[-]"
	}
	return tview.Escape(v)
}

// HighlightCommand colors a command line: the verb, numbers, quoted values
// and comments
func HighlightCommand(line string) string {
	var result strings.Builder
	verbSeen := false
	for _, token := range commandToken.FindAllString(line, -1) {
		switch {
		case strings.TrimSpace(token) == "":
			result.WriteString(token)
		case strings.HasPrefix(token, "#"):
			result.WriteString("[#00FF00]" + tview.Escape(token) + "[-]")
		case !verbSeen:
			verbSeen = true
			if parser.Usage(token) != "" {
				result.WriteString("[#0088FF]" + tview.Escape(token) + "[-]")
			} else {
				result.WriteString(tview.Escape(token))
			}
		default:
			result.WriteString(HighlightValue(token))
		}
	}
	return result.String()
}
