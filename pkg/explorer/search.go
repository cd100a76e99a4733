package explorer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ray-d-song/golist/pkg/utils"
	"github.com/rivo/tview"
)

// search asks for a pattern and jumps to its first occurrence
func (e *Explorer) search() {
	e.UI.ShowSearch(func() {
		if e.UI.SearchPattern == "" {
			e.highlightSearchResults(-1)
			return
		}
		e.jumpToMatch(-1, true)
	})
}

// searchNext jumps to the next occurrence of the search pattern
func (e *Explorer) searchNext() {
	if e.UI.SearchPattern == "" {
		return
	}
	row, _ := e.UI.TextArea.GetScrollOffset()
	e.jumpToMatch(row, true)
}

// searchPrev jumps to the previous occurrence of the search pattern
func (e *Explorer) searchPrev() {
	if e.UI.SearchPattern == "" {
		return
	}
	row, _ := e.UI.TextArea.GetScrollOffset()
	e.jumpToMatch(row, false)
}

// jumpToMatch moves to the match after (or before) line pos, wrapping around
func (e *Explorer) jumpToMatch(pos int, forward bool) {
	re, err := regexp.Compile(e.UI.SearchPattern)
	if err != nil {
		e.UI.SetStatus(fmt.Sprintf("Invalid search pattern: %v", err))
		return
	}

	foundIndex, wrapped := findMatch(re, e.plainLines(), pos, forward)
	if foundIndex < 0 {
		e.highlightSearchResults(-1)
		e.UI.StatusBar.Clear()
		fmt.Fprintf(e.UI.StatusBar, "[red]Pattern not found:[-] %s", tview.Escape(e.UI.SearchPattern))
		return
	}
	utils.DebugLog("[INFO:jumpToMatch] Pattern '%s' found at line %d", e.UI.SearchPattern, foundIndex)

	e.highlightSearchResults(foundIndex)
	e.UI.TextArea.ScrollTo(foundIndex, 0)
	status := fmt.Sprintf("Found: %s", strings.TrimSpace(e.plainLines()[foundIndex]))
	if wrapped {
		status += " (wrapped)"
	}
	e.UI.SetStatus(tview.Escape(status))
}

// findMatch returns the index of the first line after pos (or before it when
// searching backwards) that matches re, and whether the search wrapped
// around. It returns -1 when no line matches.
func findMatch(re *regexp.Regexp, lines []string, pos int, forward bool) (int, bool) {
	n := len(lines)
	for step := 1; step <= n; step++ {
		var i int
		if forward {
			i = pos + step
		} else {
			i = pos - step
		}
		wrapped := i < 0 || i >= n
		i = ((i % n) + n) % n
		if re.MatchString(lines[i]) {
			return i, wrapped
		}
	}
	return -1, false
}

// plainLines returns the rendered lines without color tags
func (e *Explorer) plainLines() []string {
	lines := make([]string, len(e.Lines))
	for i, line := range e.Lines {
		lines[i] = stripTags(line)
	}
	return lines
}

var colorTag = regexp.MustCompile(`\[[a-zA-Z0-9_,;: \-\.#]*\]`)

// stripTags removes color tags and unescapes escaped brackets
func stripTags(line string) string {
	return colorTag.ReplaceAllStringFunc(line, func(tag string) string {
		if tag == "[]" {
			return "]"
		}
		return ""
	})
}

// highlightSearchResults writes the rendered lines to the list view with
// every match of the search pattern highlighted. focusedLineIndex is the line
// of the current match.
func (e *Explorer) highlightSearchResults(focusedLineIndex int) {
	var re *regexp.Regexp
	if e.UI.SearchPattern != "" {
		re, _ = regexp.Compile(e.UI.SearchPattern)
	}

	plain := e.plainLines()
	var text strings.Builder
	for i, line := range e.Lines {
		if i > 0 {
			text.WriteByte('\n')
		}
		if re == nil || !re.MatchString(plain[i]) {
			text.WriteString(line)
			continue
		}
		color := "yellow"
		if i == focusedLineIndex {
			color = "green"
		}
		// Matching lines lose their own colors so matches can be marked on
		// the plain text
		text.WriteString(re.ReplaceAllStringFunc(tview.Escape(plain[i]), func(match string) string {
			return fmt.Sprintf("[black:%s]%s[-:-]", color, match)
		}))
	}
	e.UI.TextArea.SetText(text.String())
}
