package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-tweet/internal/logger"
	"github.com/MKhiriev/go-tweet/internal/service"
	"github.com/MKhiriev/go-tweet/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenAuth screen = iota
	screenTimeline
	screenCompose
)

const statusTTL = 2 * time.Second

type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	buildInfo models.BuildInfo
	logger    *logger.Logger

	currentScreen screen
	user          models.PublicUser

	auth     authModel
	timeline timelineModel
	compose  composeModel

	theme models.Theme
	st    styles
	width int

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
	showBuildInfo bool
	serverVersion string
}

func newAppModel(ctx context.Context, services *service.ClientServices, buildInfo models.BuildInfo, logger *logger.Logger) appModel {
	theme := services.Session.Theme(ctx)

	m := appModel{
		ctx:           ctx,
		services:      services,
		buildInfo:     buildInfo,
		logger:        logger,
		currentScreen: screenAuth,
		auth:          newAuthModel(),
		timeline:      newTimelineModel(),
		theme:         theme,
		st:            newStyles(theme),
	}

	if user, ok := services.Session.User(); ok {
		m.user = user
		m.currentScreen = screenTimeline
		m.timeline.loading = true
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.currentScreen == screenTimeline {
		return tea.Batch(m.cmdRefresh(), m.timeline.spinner.Tick)
	}
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				id := m.pendingDelete
				m.pendingDelete = ""
				if id == "" {
					return m, nil
				}
				m.timeline.loading = true
				return m, tea.Batch(m.cmdDelete(id), m.timeline.spinner.Tick)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) {
				m.showBuildInfo = false
			}
			return m, nil
		}

	case authDoneMsg:
		if msg.err != nil {
			m.auth = m.auth.reset()
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.auth = newAuthModel()
		m.user = msg.user
		m.currentScreen = screenTimeline
		m.timeline = newTimelineModel()
		m.timeline.loading = true
		return m, tea.Batch(m.cmdRefresh(), m.timeline.spinner.Tick)

	case loggedOutMsg:
		m.user = models.PublicUser{}
		m.currentScreen = screenAuth
		m.auth = newAuthModel()
		m.auth.notice = msg.notice
		m.timeline = newTimelineModel()
		m.showConfirm = false
		m.pendingDelete = ""
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
		}
		return m, textinput.Blink

	case timelineLoadedMsg:
		m.timeline.loading = false
		if msg.err != nil {
			return m.handleError(msg.err)
		}
		m.timeline.searchQuery = ""
		m.timeline = m.timeline.setTweets(msg.tweets)
		return m, nil

	case searchDoneMsg:
		m.timeline.loading = false
		if msg.err != nil {
			return m.handleError(msg.err)
		}
		m.timeline.searchQuery = msg.query
		m.timeline.tweets = msg.tweets
		m.timeline.idx = 0
		return m, nil

	case tweetSavedMsg:
		m.compose.submitting = false
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrNotFound) {
				m.currentScreen = screenTimeline
				m.timeline = m.timeline.setTweets(m.services.TweetService.Timeline())
			}
			return m.handleError(msg.err)
		}
		m.currentScreen = screenTimeline
		m.timeline.searchQuery = ""
		m.timeline = m.timeline.setTweets(m.services.TweetService.Timeline()).selectID(msg.tweet.ID)
		m.timeline.status = "Saved"
		return m, cmdClearStatus()

	case tweetDeletedMsg:
		m.timeline.loading = false
		m.timeline = m.withoutTweet(msg.id)
		if msg.err != nil {
			return m.handleError(msg.err)
		}
		m.timeline.status = "Deleted"
		return m, cmdClearStatus()

	case themeChangedMsg:
		m.theme = msg.theme
		m.st = newStyles(msg.theme)
		if msg.err != nil {
			m.showErrorf("Theme could not be saved")
		}
		return m, nil

	case serverVersionMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("server version request failed")
			m.serverVersion = msgServerVersionUnknown
			return m, nil
		}
		m.serverVersion = msg.version
		return m, nil

	case copiedMsg:
		m.timeline.status = "Copied!"
		return m, cmdClearStatus()

	case copyFailedMsg:
		m.logger.Err(msg.err).Msg("clipboard write failed")
		m.showErrorf("Could not copy to clipboard")
		return m, nil

	case clearStatusMsg:
		m.timeline.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.timeline.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.timeline.spinner, cmd = m.timeline.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if m.currentScreen == screenCompose {
			m.compose.area.SetWidth(m.composeWidth())
		}
		return m, nil
	}

	switch m.currentScreen {
	case screenAuth:
		return m.updateAuth(msg)
	case screenTimeline:
		return m.updateTimeline(msg)
	case screenCompose:
		return m.updateCompose(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenAuth:
		body = m.auth.View(m.st)
	case screenTimeline:
		body = m.timeline.View(m.st, m.user)
	case screenCompose:
		body = m.compose.View(m.st)
	}

	if m.showBuildInfo {
		body = renderBuildInfoWindow(m.st, m.buildInfo, m.serverVersion)
	}
	if m.showConfirm {
		body += "\n\n" + m.confirm.View(m.st)
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View(m.st)
	}

	return m.st.app.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// handleError sends the user back to the auth screen when the session is no
// longer valid and shows the error otherwise.
func (m appModel) handleError(err error) (tea.Model, tea.Cmd) {
	if isSessionLost(err) {
		return m, m.cmdClearSession()
	}
	m.showErrorf(humanizeError(err))
	return m, nil
}

func (m appModel) withoutTweet(id string) timelineModel {
	tl := m.timeline
	if tl.searchQuery == "" {
		return tl.setTweets(m.services.TweetService.Timeline())
	}

	kept := make([]models.TweetResponse, 0, len(tl.tweets))
	for _, t := range tl.tweets {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	return tl.setTweets(kept)
}

func (m appModel) updateAuth(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, tea.Quit
		case key.Matches(keyMsg, keys.tab):
			m.auth = m.auth.move(1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.auth = m.auth.move(-1)
			return m, nil
		case key.Matches(keyMsg, keys.switchMode):
			if m.auth.submitting {
				return m, nil
			}
			m.auth = m.auth.toggleMode()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.auth.submitting {
				return m, nil
			}
			if field := m.auth.missing(); field != "" {
				m.showErrorf(field + " is required")
				return m, nil
			}
			m.auth.submitting = true
			m.auth.notice = ""
			if m.auth.mode == authSignup {
				return m, m.cmdSignup(models.SignupRequest{
					Username: m.auth.username(),
					Email:    m.auth.email(),
					Password: m.auth.password(),
				})
			}
			return m, m.cmdLogin(models.LoginRequest{
				Email:    m.auth.email(),
				Password: m.auth.password(),
			})
		}
	}

	var cmd tea.Cmd
	m.auth.inputs[m.auth.focus], cmd = m.auth.inputs[m.auth.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateTimeline(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.timeline.searching {
		return m.updateSearchInput(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.timeline.idx > 0 {
			m.timeline.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.timeline.idx < len(m.timeline.tweets)-1 {
			m.timeline.idx++
		}
	case key.Matches(keyMsg, keys.newTweet):
		m.openCompose(nil)
		return m, nil
	case key.Matches(keyMsg, keys.edit):
		tweet, ok := m.ownCurrent("edit")
		if !ok {
			return m, nil
		}
		m.openCompose(&tweet)
	case key.Matches(keyMsg, keys.delete):
		tweet, ok := m.ownCurrent("delete")
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = fitText(tweet.Content, 40)
		m.pendingDelete = tweet.ID
	case key.Matches(keyMsg, keys.copy):
		tweet, ok := m.timeline.current()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(tweet.Content)
	case key.Matches(keyMsg, keys.refresh):
		if m.timeline.loading {
			return m, nil
		}
		m.timeline.loading = true
		return m, tea.Batch(m.cmdRefresh(), m.timeline.spinner.Tick)
	case key.Matches(keyMsg, keys.search):
		m.timeline.searching = true
		m.timeline.searchInput.SetValue("")
		return m, m.timeline.searchInput.Focus()
	case key.Matches(keyMsg, keys.esc):
		if m.timeline.searchQuery != "" {
			m.timeline.searchQuery = ""
			m.timeline.idx = 0
			m.timeline = m.timeline.setTweets(m.services.TweetService.Timeline())
		}
	case key.Matches(keyMsg, keys.theme):
		return m, m.cmdSetTheme(m.theme.Toggle())
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = true
		if m.serverVersion == "" {
			return m, m.cmdServerVersion()
		}
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateSearchInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.timeline.searching = false
			m.timeline.searchInput.Blur()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			query := strings.TrimSpace(m.timeline.searchInput.Value())
			if query == "" {
				m.showErrorf(humanizeError(service.ErrEmptySearchQuery))
				return m, nil
			}
			m.timeline.searching = false
			m.timeline.searchInput.Blur()
			m.timeline.loading = true
			return m, tea.Batch(m.cmdSearch(query), m.timeline.spinner.Tick)
		}
	}

	var cmd tea.Cmd
	m.timeline.searchInput, cmd = m.timeline.searchInput.Update(msg)
	return m, cmd
}

func (m *appModel) openCompose(tweet *models.TweetResponse) {
	m.compose = newComposeModel(tweet)
	m.compose.area.SetWidth(m.composeWidth())
	m.currentScreen = screenCompose
}

func (m appModel) composeWidth() int {
	if m.width <= 10 {
		return defaultComposeWidth
	}
	return min(m.width-6, 80)
}

// ownCurrent returns the selected tweet when it belongs to the signed-in
// user and shows an error otherwise.
func (m *appModel) ownCurrent(action string) (models.TweetResponse, bool) {
	tweet, ok := m.timeline.current()
	if !ok {
		return models.TweetResponse{}, false
	}
	if tweet.AuthorID != m.user.ID {
		m.showErrorf("You can only " + action + " your own tweets")
		return models.TweetResponse{}, false
	}
	return tweet, true
}

func (m appModel) updateCompose(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.compose.submitting {
				return m, nil
			}
			m.currentScreen = screenTimeline
			return m, nil
		case key.Matches(keyMsg, keys.submit):
			if m.compose.submitting {
				return m, nil
			}
			if !m.compose.valid() {
				m.showErrorf(humanizeError(service.ErrInvalidTweet))
				return m, nil
			}
			m.compose.submitting = true
			if m.compose.editing() {
				return m, m.cmdUpdate(m.compose.editingID, m.compose.content())
			}
			return m, m.cmdCreate(m.compose.content())
		}
	}

	var cmd tea.Cmd
	m.compose.area, cmd = m.compose.area.Update(msg)
	return m, cmd
}

func (m appModel) cmdLogin(req models.LoginRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		user, err := auth.Login(ctx, req)
		return authDoneMsg{user: user, err: err}
	}
}

func (m appModel) cmdSignup(req models.SignupRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		user, err := auth.Signup(ctx, req)
		return authDoneMsg{user: user, err: err}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		return loggedOutMsg{err: auth.Logout(ctx)}
	}
}

func (m appModel) cmdClearSession() tea.Cmd {
	ctx := m.ctx
	session := m.services.Session
	return func() tea.Msg {
		return loggedOutMsg{notice: msgSessionExpired, err: session.Clear(ctx)}
	}
}

func (m appModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	svc := m.services.TweetService
	return func() tea.Msg {
		tweets, err := svc.Refresh(ctx)
		return timelineLoadedMsg{tweets: tweets, err: err}
	}
}

func (m appModel) cmdSearch(query string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TweetService
	return func() tea.Msg {
		tweets, err := svc.Search(ctx, query)
		return searchDoneMsg{query: query, tweets: tweets, err: err}
	}
}

func (m appModel) cmdCreate(content string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TweetService
	return func() tea.Msg {
		tweet, err := svc.Create(ctx, content)
		return tweetSavedMsg{tweet: tweet, err: err}
	}
}

func (m appModel) cmdUpdate(id, content string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TweetService
	return func() tea.Msg {
		tweet, err := svc.Update(ctx, id, content)
		return tweetSavedMsg{tweet: tweet, err: err}
	}
}

func (m appModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TweetService
	return func() tea.Msg {
		return tweetDeletedMsg{id: id, err: svc.Delete(ctx, id)}
	}
}

func (m appModel) cmdSetTheme(theme models.Theme) tea.Cmd {
	ctx := m.ctx
	session := m.services.Session
	return func() tea.Msg {
		return themeChangedMsg{theme: theme, err: session.SetTheme(ctx, theme)}
	}
}

func (m appModel) cmdServerVersion() tea.Cmd {
	ctx := m.ctx
	svc := m.services.AppInfo
	return func() tea.Msg {
		version, err := svc.ServerVersion(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
