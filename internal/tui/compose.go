package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-tweet/models"
	"github.com/charmbracelet/bubbles/textarea"
)

const defaultComposeWidth = 60

// composeModel writes a new tweet or edits an existing one.
type composeModel struct {
	editingID  string
	area       textarea.Model
	submitting bool
}

func newComposeModel(tweet *models.TweetResponse) composeModel {
	area := textarea.New()
	area.Placeholder = "What's happening?"
	area.ShowLineNumbers = false
	area.CharLimit = 0
	area.SetWidth(defaultComposeWidth)
	area.SetHeight(4)
	area.Focus()

	m := composeModel{area: area}
	if tweet != nil {
		m.editingID = tweet.ID
		m.area.SetValue(tweet.Content)
	}
	return m
}

func (m composeModel) editing() bool {
	return m.editingID != ""
}

func (m composeModel) content() string {
	return strings.TrimSpace(m.area.Value())
}

// remaining is the number of characters left; negative when over the limit.
func (m composeModel) remaining() int {
	return models.TweetMaxLength - utf8.RuneCountInString(m.content())
}

func (m composeModel) valid() bool {
	return m.content() != "" && m.remaining() >= 0
}

func (m composeModel) View(st styles) string {
	var b strings.Builder
	b.WriteString(m.area.View())
	b.WriteString("\n\n")

	counter := fmt.Sprintf("%d characters left", m.remaining())
	if m.remaining() < 0 {
		b.WriteString(st.err.Render(counter))
	} else {
		b.WriteString(st.meta.Render(counter))
	}
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	}

	title := "NEW TWEET"
	if m.editing() {
		title = "EDIT TWEET"
	}
	return renderPage(st, title, strings.TrimRight(b.String(), "\n"), "ctrl+s: save │ esc: cancel")
}
