package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type authMode int

const (
	authLogin authMode = iota
	authSignup
)

const (
	fieldUsername = iota
	fieldEmail
	fieldPassword
)

// authModel is the login/signup form. The username field is only shown and
// focusable in signup mode.
type authModel struct {
	mode       authMode
	inputs     []textinput.Model
	focus      int
	submitting bool
	notice     string
}

func newAuthModel() authModel {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 20
	username.Width = 40

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254
	email.Width = 40

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 72
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	m := authModel{inputs: []textinput.Model{username, email, password}}
	return m.focusOn(fieldEmail)
}

func (m authModel) fields() []int {
	if m.mode == authSignup {
		return []int{fieldUsername, fieldEmail, fieldPassword}
	}
	return []int{fieldEmail, fieldPassword}
}

func (m authModel) focusOn(field int) authModel {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = field
	m.inputs[field].Focus()
	return m
}

// move shifts focus by delta within the visible fields, wrapping around.
func (m authModel) move(delta int) authModel {
	fields := m.fields()
	pos := 0
	for i, f := range fields {
		if f == m.focus {
			pos = i
		}
	}
	pos = (pos + delta + len(fields)) % len(fields)
	return m.focusOn(fields[pos])
}

func (m authModel) toggleMode() authModel {
	if m.mode == authLogin {
		m.mode = authSignup
		m.notice = ""
		return m.focusOn(fieldUsername)
	}
	m.mode = authLogin
	m.notice = ""
	return m.focusOn(fieldEmail)
}

func (m authModel) username() string { return strings.TrimSpace(m.inputs[fieldUsername].Value()) }
func (m authModel) email() string    { return strings.TrimSpace(m.inputs[fieldEmail].Value()) }
func (m authModel) password() string { return m.inputs[fieldPassword].Value() }

// missing returns the label of the first empty visible field.
func (m authModel) missing() string {
	if m.mode == authSignup && m.username() == "" {
		return "Username"
	}
	if m.email() == "" {
		return "Email"
	}
	if m.password() == "" {
		return "Password"
	}
	return ""
}

// reset clears the password and leaves the rest for a quick retry.
func (m authModel) reset() authModel {
	m.submitting = false
	m.inputs[fieldPassword].SetValue("")
	return m
}

func (m authModel) View(st styles) string {
	var b strings.Builder

	if m.mode == authSignup {
		b.WriteString("Username  │ [")
		b.WriteString(m.inputs[fieldUsername].View())
		b.WriteString("]\n")
	}
	b.WriteString("Email     │ [")
	b.WriteString(m.inputs[fieldEmail].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[fieldPassword].View())
	b.WriteString("]\n")

	action := "Log in"
	title := "LOG IN"
	other := "ctrl+t: sign up instead"
	if m.mode == authSignup {
		action = "Sign up"
		title = "SIGN UP"
		other = "ctrl+t: log in instead"
	}
	if m.submitting {
		action += "..."
	}
	b.WriteString("\n[" + action + "]\n")

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(st.status.Render(m.notice))
		b.WriteString("\n")
	}

	return renderPage(st, title, strings.TrimRight(b.String(), "\n"),
		"tab: next field │ enter: submit │ "+other+" │ esc: quit")
}
