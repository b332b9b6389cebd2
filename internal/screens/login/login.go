package login

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hogword/hogword-cli/internal/api"
	"github.com/hogword/hogword-cli/internal/auth"
	"github.com/hogword/hogword-cli/internal/router"
	"github.com/hogword/hogword-cli/internal/screen"
	"github.com/hogword/hogword-cli/internal/screens/home"
	"github.com/hogword/hogword-cli/internal/ui/components"
	"github.com/hogword/hogword-cli/internal/ui/layout"
	"github.com/hogword/hogword-cli/internal/ui/theme"
)

const (
	fieldEmail = iota
	fieldPassword
)

// authResultMsg is sent when the sign-in request completes.
type authResultMsg struct {
	Email string
	Resp  *api.AuthResponse
	Err   error
}

// LoginScreen collects credentials and signs the user in. Sign-in
// doubles as sign-up: the server creates the account on first use of an
// email address.
type LoginScreen struct {
	deps home.Deps

	email    components.TextInput
	password components.TextInput
	focus    int

	signingIn bool
	errMsg    string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates a new LoginScreen. On success it replaces itself with the
// home screen built from deps.
func New(deps home.Deps) *LoginScreen {
	email := components.NewTextInput("you@example.com", 120)
	password := components.NewPasswordInput("password", 120)
	password.Model.Blur()

	return &LoginScreen{
		deps:     deps,
		email:    email,
		password: password,
	}
}

func (l *LoginScreen) Init() tea.Cmd {
	return l.email.Init()
}

func (l *LoginScreen) Title() string {
	return "Sign in"
}

func (l *LoginScreen) KeyHints() []layout.KeyHint {
	if l.signingIn {
		return nil
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Sign in"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (l *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case authResultMsg:
		return l.handleAuthResult(msg)

	case tea.KeyMsg:
		return l.handleKey(msg)
	}

	return l.forwardToFocused(msg)
}

func (l *LoginScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if l.signingIn {
		return l, nil
	}

	switch msg.String() {
	case "tab", "down":
		return l, l.setFocus((l.focus + 1) % 2)
	case "shift+tab", "up":
		return l, l.setFocus((l.focus + 1) % 2)
	case "enter":
		if l.focus == fieldEmail {
			return l, l.setFocus(fieldPassword)
		}
		return l.submit()
	}

	return l.forwardToFocused(msg)
}

func (l *LoginScreen) forwardToFocused(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	if l.focus == fieldEmail {
		l.email, cmd = l.email.Update(msg)
	} else {
		l.password, cmd = l.password.Update(msg)
	}
	return l, cmd
}

func (l *LoginScreen) setFocus(f int) tea.Cmd {
	l.focus = f
	if f == fieldEmail {
		l.password.Model.Blur()
		return l.email.Model.Focus()
	}
	l.email.Model.Blur()
	return l.password.Model.Focus()
}

func (l *LoginScreen) submit() (screen.Screen, tea.Cmd) {
	email := strings.TrimSpace(l.email.Value())
	password := l.password.Value()

	if email == "" || !strings.Contains(email, "@") {
		l.errMsg = "Enter a valid email address."
		return l, nil
	}
	if password == "" {
		l.errMsg = "Enter a password."
		return l, nil
	}

	l.signingIn = true
	l.errMsg = ""

	client := l.deps.Client
	return l, func() tea.Msg {
		resp, err := client.SignIn(context.Background(), email, password)
		return authResultMsg{Email: email, Resp: resp, Err: err}
	}
}

func (l *LoginScreen) handleAuthResult(msg authResultMsg) (screen.Screen, tea.Cmd) {
	l.signingIn = false

	if msg.Err != nil {
		l.errMsg = signInErrMessage(msg.Err)
		return l, nil
	}

	if err := l.deps.Creds.Save(auth.Credentials{
		AccessToken: msg.Resp.AccessToken,
		Email:       msg.Email,
	}); err != nil {
		l.errMsg = "Signed in, but saving credentials failed: " + err.Error()
		return l, nil
	}

	deps := l.deps
	return l, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home.New(deps)}
	}
}

func signInErrMessage(err error) string {
	if api.IsAuth(err) {
		return "Email or password not accepted."
	}
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		return "The server rejected the sign-in. Try again later."
	}
	return "Could not reach the server. Check your connection."
}

func (l *LoginScreen) View(width, height int) string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Sign in to Hogword")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("New here? Signing in creates your account."))
	b.WriteString("\n\n")

	b.WriteString(fieldLabel("Email", l.focus == fieldEmail))
	b.WriteString("\n")
	b.WriteString(l.email.View())
	b.WriteString("\n\n")

	b.WriteString(fieldLabel("Password", l.focus == fieldPassword))
	b.WriteString("\n")
	b.WriteString(l.password.View())
	b.WriteString("\n\n")

	if l.signingIn {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Signing in..."))
	} else if l.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Error).
			Render(l.errMsg))
	}

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func fieldLabel(label string, focused bool) string {
	if focused {
		return theme.Selected.Render("▸ " + label)
	}
	return theme.Unselected.Render("  " + label)
}
