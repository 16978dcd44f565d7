package tui

import (
	"github.com/MKhiriev/go-tweet/models"
)

type authDoneMsg struct {
	user models.PublicUser
	err  error
}

// loggedOutMsg returns the UI to the auth screen. notice is shown there.
type loggedOutMsg struct {
	notice string
	err    error
}

type timelineLoadedMsg struct {
	tweets []models.TweetResponse
	err    error
}

type searchDoneMsg struct {
	query  string
	tweets []models.TweetResponse
	err    error
}

type tweetSavedMsg struct {
	tweet models.TweetResponse
	err   error
}

type tweetDeletedMsg struct {
	id  string
	err error
}

type themeChangedMsg struct {
	theme models.Theme
	err   error
}

type serverVersionMsg struct {
	version string
	err     error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
