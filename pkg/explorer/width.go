package explorer

import "fmt"

// increaseWidth widens the rendering and wraps the lists again
func (e *Explorer) increaseWidth() {
	e.UI.SetWidth(e.UI.Width + 5)
	e.render()
	e.UI.SetStatus(fmt.Sprintf("Width: %d", e.UI.Width))
}

// decreaseWidth narrows the rendering and wraps the lists again
func (e *Explorer) decreaseWidth() {
	e.UI.SetWidth(e.UI.Width - 5)
	e.render()
	e.UI.SetStatus(fmt.Sprintf("Width: %d", e.UI.Width))
}
