package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// CommentBox wraps bubbles/textarea for multi-line feedback comments.
type CommentBox struct {
	Model textarea.Model
}

// NewCommentBox creates a styled comment box.
func NewCommentBox(placeholder string, width, height int) CommentBox {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.CharLimit = 1000
	ta.SetWidth(width)
	ta.SetHeight(height)
	return CommentBox{Model: ta}
}

// Focus gives the box keyboard focus.
func (c *CommentBox) Focus() tea.Cmd {
	return c.Model.Focus()
}

// Blur removes keyboard focus.
func (c *CommentBox) Blur() {
	c.Model.Blur()
}

// Focused reports whether the box has focus.
func (c CommentBox) Focused() bool {
	return c.Model.Focused()
}

// Update handles messages.
func (c CommentBox) Update(msg tea.Msg) (CommentBox, tea.Cmd) {
	var cmd tea.Cmd
	c.Model, cmd = c.Model.Update(msg)
	return c, cmd
}

// View renders the comment box.
func (c CommentBox) View() string {
	return c.Model.View()
}

// Value returns the current text.
func (c CommentBox) Value() string {
	return c.Model.Value()
}
