package explorer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/ray-d-song/golist/pkg/config"
	"github.com/ray-d-song/golist/pkg/parser"
	"github.com/ray-d-song/golist/pkg/session"
	"github.com/ray-d-song/golist/pkg/ui"
	"github.com/ray-d-song/golist/pkg/utils"
	"github.com/rivo/tview"
)

// Explorer is the interactive view over a session
type Explorer struct {
	Session    *session.Session
	Config     *config.Config
	ScriptPath string // Key of the saved state, empty when no script was given
	UI         *ui.UI
	Lines      []string // Rendered lines, used by search
}

// NewExplorer creates a new Explorer instance
func NewExplorer(sess *session.Session, cfg *config.Config, scriptPath string) *Explorer {
	e := &Explorer{
		Session:    sess,
		Config:     cfg,
		ScriptPath: scriptPath,
		UI:         ui.NewUI(),
	}
	e.UI.SetWidth(utils.RenderWidth(80))
	return e
}

// Run renders the session and runs the application until the user quits
func (e *Explorer) Run() error {
	if state, ok := e.Config.GetState(e.ScriptPath); ok {
		e.UI.SetColorScheme(state.ColorScheme)
	}

	e.render()
	e.UI.SetStatus(fmt.Sprintf("%d lists, %s order. Press : to run a command, ? for help", len(e.Session.Names()), e.Session.Order()))
	e.UI.App.SetInputCapture(e.handleKey)

	return e.UI.App.Run()
}

// handleKey is the top level key binding
func (e *Explorer) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		if e.UI.SearchPattern != "" {
			e.UI.SearchPattern = ""
			e.render()
			return nil
		}
		e.quit()
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q':
			e.quit()
			return nil
		case ':':
			e.prompt("")
			return nil
		case '?':
			e.UI.ShowHelp(usageLines())
			return nil
		case 'h':
			e.showHistory()
			return nil
		case 'c':
			e.UI.CycleColorScheme()
			return nil
		case 'r':
			e.render()
			e.UI.SetStatus("Rendered")
			return nil
		case 'o':
			e.toggleOrder()
			return nil
		case '/':
			e.search()
			return nil
		case 'n':
			e.searchNext()
			return nil
		case 'N':
			e.searchPrev()
			return nil
		case 'j':
			e.scrollDown()
			return nil
		case 'k':
			e.scrollUp()
			return nil
		case ' ':
			e.pageDown()
			return nil
		case 'g':
			e.goToStart()
			return nil
		case 'G':
			e.goToEnd()
			return nil
		case '+':
			e.increaseWidth()
			return nil
		case '-':
			e.decreaseWidth()
			return nil
		}
	case tcell.KeyDown:
		e.scrollDown()
		return nil
	case tcell.KeyUp:
		e.scrollUp()
		return nil
	case tcell.KeyPgDn:
		e.pageDown()
		return nil
	case tcell.KeyPgUp:
		e.pageUp()
		return nil
	case tcell.KeyHome:
		e.goToStart()
		return nil
	case tcell.KeyEnd:
		e.goToEnd()
		return nil
	case tcell.KeyCtrlU:
		e.halfPageUp()
		return nil
	case tcell.KeyCtrlD:
		e.halfPageDown()
		return nil
	}
	return event
}

// usageLines returns the usage line of every command
func usageLines() []string {
	verbs := parser.Verbs()
	usage := make([]string, 0, len(verbs))
	for _, verb := range verbs {
		usage = append(usage, parser.Usage(verb))
	}
	return usage
}

// prompt opens the command line prefilled with initial
func (e *Explorer) prompt(initial string) {
	e.UI.ShowPrompt(initial, func(line string) {
		e.Execute(line)
	})
}

// showHistory lists the commands run against the current script
func (e *Explorer) showHistory() {
	state, _ := e.Config.GetState(e.ScriptPath)
	e.UI.ShowHistory(state.History, e.prompt)
}

// Execute runs one command line, records it in the history and re-renders
func (e *Explorer) Execute(line string) {
	result, err := e.Session.ExecLine(line)
	if errors.Is(err, parser.ErrEmptyLine) {
		return
	}
	if err != nil {
		utils.DebugLog("[ERROR:Execute] %s: %v", line, err)
		e.UI.StatusBar.Clear()
		fmt.Fprintf(e.UI.StatusBar, "[red]Error:[-] %s", tview.Escape(err.Error()))
		return
	}

	e.Config.AppendHistory(e.ScriptPath, strings.TrimSpace(line))
	e.render()

	// Only the first line fits in the status bar
	if idx := strings.IndexByte(result, '\n'); idx >= 0 {
		result = result[:idx]
	}
	e.UI.StatusBar.Clear()
	fmt.Fprint(e.UI.StatusBar, tview.Escape(result))
}

// render writes every list to the list view
func (e *Explorer) render() {
	e.Lines = e.Lines[:0]
	for _, name := range e.Session.Names() {
		forward, backward, err := e.Session.Render(name)
		if err != nil {
			utils.DebugLog("[ERROR:render] %v", err)
			continue
		}
		e.Lines = append(e.Lines, ui.FormatList(name, forward, backward, e.UI.Width)...)
		e.Lines = append(e.Lines, "")
	}
	if len(e.Lines) == 0 {
		e.Lines = append(e.Lines, "No lists. Press : and type a command such as: new a 1 2 3")
	}

	row, col := e.UI.TextArea.GetScrollOffset()
	e.highlightSearchResults(-1)
	e.UI.TextArea.ScrollTo(row, col)
	utils.DebugLog("[INFO:render] Rendered %d lines at width %d", len(e.Lines), e.UI.Width)
}

// toggleOrder switches between natural and lexical ordering
func (e *Explorer) toggleOrder() {
	if e.Session.Order() == session.OrderNatural {
		e.Session.SetOrder(session.OrderLexical)
	} else {
		e.Session.SetOrder(session.OrderNatural)
	}
	e.UI.SetStatus(fmt.Sprintf("Order: %s", e.Session.Order()))
}

// saveState saves the explorer state
func (e *Explorer) saveState() {
	state, _ := e.Config.GetState(e.ScriptPath)
	state.ColorScheme = e.UI.ColorScheme
	state.Order = e.Session.Order().String()
	e.Config.SetState(e.ScriptPath, state)
	if e.ScriptPath != "" {
		e.Config.SetLastRun(e.ScriptPath)
	}
	if err := e.Config.Save(); err != nil {
		utils.DebugLog("[ERROR:saveState] Failed to save config: %v", err)
	}
}

// quit saves the state and stops the application
func (e *Explorer) quit() {
	e.saveState()
	e.UI.App.Stop()
}
