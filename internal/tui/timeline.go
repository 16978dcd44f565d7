package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-tweet/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

const ownMarker = "★"

// timelineModel shows either the timeline or the results of a search.
type timelineModel struct {
	tweets  []models.TweetResponse
	idx     int
	loading bool
	spinner spinner.Model
	status  string

	// searchQuery is set while search results are displayed.
	searchQuery string
	searching   bool
	searchInput textinput.Model
}

func newTimelineModel() timelineModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	input := textinput.New()
	input.Placeholder = "search tweets"
	input.CharLimit = models.TweetMaxLength
	input.Width = 40

	return timelineModel{spinner: s, searchInput: input}
}

func (m timelineModel) current() (models.TweetResponse, bool) {
	if len(m.tweets) == 0 || m.idx < 0 || m.idx >= len(m.tweets) {
		return models.TweetResponse{}, false
	}
	return m.tweets[m.idx], true
}

// setTweets replaces the list and keeps the cursor on the tweet it was on
// when that tweet is still present.
func (m timelineModel) setTweets(tweets []models.TweetResponse) timelineModel {
	selected, hadSelection := m.current()
	m.tweets = tweets
	m.idx = 0
	if hadSelection {
		for i, t := range tweets {
			if t.ID == selected.ID {
				m.idx = i
				break
			}
		}
	}
	return m
}

func (m timelineModel) selectID(id string) timelineModel {
	for i, t := range m.tweets {
		if t.ID == id {
			m.idx = i
			return m
		}
	}
	return m
}

func (m timelineModel) View(st styles, user models.PublicUser) string {
	var b strings.Builder

	header := "Signed in as @" + user.Username
	if m.loading {
		header += "  " + m.spinner.View()
	}
	b.WriteString(st.meta.Render(header))
	b.WriteString("\n")

	if m.searching {
		b.WriteString("\nSearch │ [")
		b.WriteString(m.searchInput.View())
		b.WriteString("]\n")
	} else if m.searchQuery != "" {
		b.WriteString("\n")
		b.WriteString(st.meta.Render(fmt.Sprintf("Results for %q (esc: back to timeline)", m.searchQuery)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.loading && len(m.tweets) == 0:
		b.WriteString("Loading...\n")
	case len(m.tweets) == 0 && m.searchQuery != "":
		b.WriteString("Nothing found\n")
	case len(m.tweets) == 0:
		b.WriteString("No tweets yet. Press n to write the first one.\n")
	default:
		for i, t := range m.tweets {
			b.WriteString(renderTweet(st, t, i == m.idx, t.AuthorID == user.ID))
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(st.status.Render(m.status))
		b.WriteString("\n")
	}

	hotKeys := "n: new │ e: edit │ d: delete │ c: copy │ /: search │ r: refresh │ t: theme │ l: log out │ v: about │ q: quit"
	if m.searching {
		hotKeys = "enter: search │ esc: cancel"
	}

	return renderPage(st, "TIMELINE", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func renderTweet(st styles, t models.TweetResponse, selected, own bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}

	author := "@" + t.Username
	if own {
		author = st.own.Render(author + " " + ownMarker)
	}

	meta := formatTime(t.CreatedAt)
	if t.UpdatedAt.After(t.CreatedAt) {
		meta += " (edited " + formatTime(t.UpdatedAt) + ")"
	}

	content := fitText(t.Content, models.TweetMaxLength)
	if selected {
		content = st.selected.Render(content)
	}

	return fmt.Sprintf("%s%s  %s\n  %s\n\n", cursor, author, st.meta.Render(meta), content)
}
