package explorer

// scrollDown scrolls down
func (e *Explorer) scrollDown() {
	row, col := e.UI.TextArea.GetScrollOffset()
	e.UI.TextArea.ScrollTo(row+1, col)
}

// scrollUp scrolls up
func (e *Explorer) scrollUp() {
	row, col := e.UI.TextArea.GetScrollOffset()
	if row > 0 {
		e.UI.TextArea.ScrollTo(row-1, col)
	}
}

// pageDown goes to the next page
func (e *Explorer) pageDown() {
	_, _, _, height := e.UI.TextArea.GetInnerRect()
	row, col := e.UI.TextArea.GetScrollOffset()
	e.UI.TextArea.ScrollTo(row+height, col)
}

// pageUp goes to the previous page
func (e *Explorer) pageUp() {
	_, _, _, height := e.UI.TextArea.GetInnerRect()
	row, col := e.UI.TextArea.GetScrollOffset()
	e.UI.TextArea.ScrollTo(max(row-height, 0), col)
}

// halfPageUp goes up half a page
func (e *Explorer) halfPageUp() {
	_, _, _, height := e.UI.TextArea.GetInnerRect()
	row, col := e.UI.TextArea.GetScrollOffset()
	e.UI.TextArea.ScrollTo(max(row-height/2, 0), col)
}

// halfPageDown goes down half a page
func (e *Explorer) halfPageDown() {
	_, _, _, height := e.UI.TextArea.GetInnerRect()
	row, col := e.UI.TextArea.GetScrollOffset()
	e.UI.TextArea.ScrollTo(row+height/2, col)
}

// goToStart goes to the first list
func (e *Explorer) goToStart() {
	e.UI.TextArea.ScrollToBeginning()
}

// goToEnd goes to the last list
func (e *Explorer) goToEnd() {
	e.UI.TextArea.ScrollToEnd()
}
