package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// ColorScheme represents a color scheme
type ColorScheme int

const (
	// DefaultColorScheme is the default color scheme
	DefaultColorScheme ColorScheme = iota
	// DarkColorScheme is the dark color scheme
	DarkColorScheme
	// LightColorScheme is the light color scheme
	LightColorScheme
)

// String returns the name of the color scheme
func (c ColorScheme) String() string {
	switch c {
	case DarkColorScheme:
		return "dark"
	case LightColorScheme:
		return "light"
	}
	return "default"
}

// colors returns the background and text colors of a scheme
func (c ColorScheme) colors() (tcell.Color, tcell.Color) {
	switch c {
	case DarkColorScheme:
		return tcell.ColorDarkSlateGray, tcell.ColorWhite
	case LightColorScheme:
		return tcell.ColorWhite, tcell.ColorBlack
	}
	return tcell.ColorDefault, tcell.ColorDefault
}

// UI represents the user interface
type UI struct {
	App           *tview.Application
	TextArea      *tview.TextView   // Rendered lists
	StatusBar     *tview.TextView
	CommandInput  *tview.InputField // Vim style ':' command line
	SearchInput   *tview.InputField // Vim style '/' search input
	ColorScheme   ColorScheme
	Width         int
	SearchPattern string
	IsSearchMode  bool // Mark if the search mode is active
	IsPromptMode  bool // Mark if the command line is active
}

// NewUI creates a new UI instance
func NewUI() *UI {
	app := tview.NewApplication()
	textArea := tview.NewTextView().
		SetDynamicColors(true).
		SetRegions(true).
		SetWordWrap(true)

	statusBar := tview.NewTextView().
		SetDynamicColors(true).
		SetRegions(true)

	commandInput := tview.NewInputField().
		SetLabel(":").
		SetFieldWidth(0).
		SetFieldBackgroundColor(tcell.ColorDefault)

	searchInput := tview.NewInputField().
		SetLabel("/").
		SetFieldWidth(0).
		SetFieldBackgroundColor(tcell.ColorDefault)

	ui := &UI{
		App:          app,
		TextArea:     textArea,
		StatusBar:    statusBar,
		CommandInput: commandInput,
		SearchInput:  searchInput,
		ColorScheme:  DefaultColorScheme,
		Width:        80,
	}

	app.SetRoot(ui.layout(textArea, statusBar, true), true)

	return ui
}

// layout stacks a content area above a one line status area
func (ui *UI) layout(content, status tview.Primitive, focusContent bool) *tview.Flex {
	return tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(content, 0, 1, focusContent).
		AddItem(status, 1, 0, !focusContent)
}

// restoreLayout puts the list view and status bar back in place
func (ui *UI) restoreLayout() {
	ui.App.SetRoot(ui.layout(ui.TextArea, ui.StatusBar, true), true)
}

// SetCapture replaces the application input capture and returns a function
// that restores the previous one
func (ui *UI) SetCapture(f func(event *tcell.EventKey) *tcell.EventKey) func() {
	originalInputCapture := ui.App.GetInputCapture()
	ui.App.SetInputCapture(f)
	return func() {
		ui.App.SetInputCapture(originalInputCapture)
	}
}

// SetTempContent shows content in place of the list view until the returned
// function is called
func (ui *UI) SetTempContent(content tview.Primitive) func() {
	ui.App.SetRoot(ui.layout(content, ui.StatusBar, true), true)
	return ui.restoreLayout
}

// SetTempStatus shows status in place of the status bar until the returned
// function is called
func (ui *UI) SetTempStatus(status tview.Primitive) func() {
	ui.App.SetRoot(ui.layout(ui.TextArea, status, false), true)
	return ui.restoreLayout
}

// SetColorScheme sets the color scheme
func (ui *UI) SetColorScheme(scheme ColorScheme) {
	ui.ColorScheme = scheme

	bg, fg := scheme.colors()
	ui.TextArea.SetBackgroundColor(bg)
	ui.TextArea.SetTextColor(fg)
	ui.StatusBar.SetBackgroundColor(bg)
	ui.StatusBar.SetTextColor(fg)
	for _, input := range []*tview.InputField{ui.CommandInput, ui.SearchInput} {
		input.SetBackgroundColor(bg)
		input.SetFieldBackgroundColor(bg)
		input.SetLabelColor(fg)
		input.SetFieldTextColor(fg)
	}
}

// CycleColorScheme cycles through the color schemes
func (ui *UI) CycleColorScheme() {
	ui.SetColorScheme((ui.ColorScheme + 1) % 3)
}

// SetStatus sets the status bar text
func (ui *UI) SetStatus(text string) {
	ui.StatusBar.Clear()
	ui.StatusBar.SetText(text)
}

// SetWidth sets the render width, keeping it within sane bounds
func (ui *UI) SetWidth(width int) {
	if width < 20 {
		width = 20
	}
	ui.Width = width
}
