package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/ray-d-song/golist/pkg/utils"
	"github.com/rivo/tview"
)

// HelpText lists the key bindings of the explorer
const HelpText = `
Golist - Linked List Explorer

Key Bindings:
    Help             : ?
    Quit             : q         Esc
    Command line     : :
    Command history  : h
    Re-render        : r
    Search           : /
    Next Occurrence  : n
    Prev Occurrence  : N
    Scroll down      : DOWN      j
    Scroll up        : UP        k
    Half screen up   : C-u
    Half screen dn   : C-d
    Page down        : PGDN      SPC
    Page up          : PGUP
    Beginning        : HOME      g
    End              : END       G
    Increase width   : +
    Decrease width   : -
    Toggle order     : o
    Switch colorsch  : c

Commands (type after ':'):
`

// ShowHelp shows the help screen. usage holds one line per command.
func (ui *UI) ShowHelp(usage []string) error {
	helpContent := tview.NewTextView().
		SetDynamicColors(true).
		SetRegions(true).
		SetWordWrap(true)

	text := HelpText
	for _, line := range usage {
		text += "    " + HighlightCommand(line) + "\n"
	}
	text += "\nPress Esc or Enter to close\n"
	helpContent.SetText(text)

	bg, fg := ui.ColorScheme.colors()
	helpContent.SetBackgroundColor(bg)
	helpContent.SetTextColor(fg)

	resetContent := ui.SetTempContent(helpContent)

	var resetCapture func()
	// Set a new input capture function at the application level
	resetCapture = ui.SetCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape, tcell.KeyEnter:
			// Restore the original input capture function
			resetCapture()
			resetContent()
			return nil
		case tcell.KeyUp, tcell.KeyDown, tcell.KeyPgUp, tcell.KeyPgDn:
			// Allow scrolling in the help text
			return event
		case tcell.KeyRune:
			switch event.Rune() {
			case 'q':
				resetCapture()
				resetContent()
				return nil
			case 'j':
				row, col := helpContent.GetScrollOffset()
				helpContent.ScrollTo(row+1, col)
				return nil
			case 'k':
				row, col := helpContent.GetScrollOffset()
				if row > 0 {
					helpContent.ScrollTo(row-1, col)
				}
				return nil
			case 'c':
				ui.CycleColorScheme()
				bg, fg := ui.ColorScheme.colors()
				helpContent.SetBackgroundColor(bg)
				helpContent.SetTextColor(fg)
				return nil
			}
		}
		// Block all other keys
		return nil
	})

	return nil
}

// ShowHistory shows previously run commands, newest first. Selecting one
// calls cb with the command.
func (ui *UI) ShowHistory(history []string, cb func(string)) error {
	utils.DebugLog("[INFO:ShowHistory] Showing %d commands", len(history))
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	if len(history) == 0 {
		list.AddItem("No commands run yet", "", 0, nil)
	}
	for i := len(history) - 1; i >= 0; i-- {
		list.AddItem(HighlightCommand(history[i]), "", 0, nil)
	}
	bg, _ := ui.ColorScheme.colors()
	list.SetBackgroundColor(bg)

	frame := tview.NewFrame(list).
		SetBorders(1, 1, 1, 1, 2, 2).
		AddText("Command History", true, tview.AlignCenter, tcell.ColorWhite).
		AddText("Enter to edit, Esc to cancel", false, tview.AlignCenter, tcell.ColorWhite)

	resetContent := ui.SetTempContent(frame)

	var resetCapture func()
	resetCapture = ui.SetCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape:
			resetCapture()
			resetContent()
			return nil
		case tcell.KeyEnter:
			resetCapture()
			resetContent()
			if len(history) > 0 && cb != nil {
				cb(history[len(history)-1-list.GetCurrentItem()])
			}
			return nil
		case tcell.KeyUp, tcell.KeyDown, tcell.KeyHome, tcell.KeyEnd, tcell.KeyPgUp, tcell.KeyPgDn:
			// Allow navigation in the list
			return event
		case tcell.KeyRune:
			switch event.Rune() {
			case 'q':
				resetCapture()
				resetContent()
				return nil
			case 'j':
				return tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)
			case 'k':
				return tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)
			}
		}
		// Block all other keys
		return nil
	})

	return nil
}

// ShowPrompt shows the command line in place of the status bar, prefilled
// with initial. cb receives the entered line when Enter is pressed.
func (ui *UI) ShowPrompt(initial string, cb func(string)) error {
	utils.DebugLog("[INFO:ShowPrompt] Showing command line")
	ui.CommandInput.SetText(initial)
	resetStatus := ui.SetTempStatus(ui.CommandInput)
	ui.IsPromptMode = true

	resetCapture := ui.SetCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyEscape:
			// Let these keys be handled by the input field's DoneFunc
			return event
		case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete,
			tcell.KeyLeft, tcell.KeyRight, tcell.KeyHome, tcell.KeyEnd:
			// Allow these keys for text editing
			return event
		case tcell.KeyRune:
			// Allow text input
			return event
		default:
			// Block all other keys
			return nil
		}
	})

	ui.CommandInput.SetDoneFunc(func(key tcell.Key) {
		ui.IsPromptMode = false
		resetCapture()
		resetStatus()

		if key == tcell.KeyEnter && cb != nil {
			cb(ui.CommandInput.GetText())
		}
	})

	return nil
}

// ShowSearch shows the search dialog in VIM style
func (ui *UI) ShowSearch(cb func()) error {
	utils.DebugLog("[INFO:ShowSearch] Showing search dialog")
	// Save the current search pattern
	originalSearchPattern := ui.SearchPattern

	// Set the initial search text
	ui.SearchInput.SetText(ui.SearchPattern)

	resetStatus := ui.SetTempStatus(ui.SearchInput)

	ui.IsSearchMode = true

	// Set the input capture function at the application level
	resetCapture := ui.SetCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyEscape:
			// Let these keys be handled by the input field's DoneFunc
			return event
		case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete,
			tcell.KeyLeft, tcell.KeyRight, tcell.KeyHome, tcell.KeyEnd:
			// Allow these keys for text editing
			return event
		case tcell.KeyRune:
			// Allow text input
			return event
		default:
			// Block all other keys
			return nil
		}
	})

	// Set the completion function for the search input
	ui.SearchInput.SetDoneFunc(func(key tcell.Key) {
		ui.IsSearchMode = false
		resetCapture()
		resetStatus()

		if key == tcell.KeyEnter {
			// Search completed, save the search pattern
			ui.SearchPattern = ui.SearchInput.GetText()
			if cb != nil {
				cb()
			}
		} else if key == tcell.KeyEscape {
			// Cancel search, restore the original search pattern
			ui.SearchPattern = originalSearchPattern
		}
	})

	return nil
}
