package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/hogword/hogword-cli/internal/api"
	"github.com/hogword/hogword-cli/internal/auth"
	"github.com/hogword/hogword-cli/internal/router"
	"github.com/hogword/hogword-cli/internal/screen"
	challengescreen "github.com/hogword/hogword-cli/internal/screens/challenge"
	"github.com/hogword/hogword-cli/internal/screens/home"
	"github.com/hogword/hogword-cli/internal/screens/login"
	"github.com/hogword/hogword-cli/internal/screens/welcome"
	"github.com/hogword/hogword-cli/internal/store"
	"github.com/hogword/hogword-cli/internal/ui/layout"
)

// Options carries the wired dependencies for the TUI.
type Options struct {
	Client    *api.Client
	Validator challengescreen.Validator
	Journal   store.JournalRepo // may be nil
	Creds     *auth.Store
	Log       zerolog.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps   home.Deps
	router *router.Router
	log    zerolog.Logger
	width  int
	height int
}

// newAppModel creates a new AppModel. It starts on the home screen when
// stored credentials exist and have not expired, otherwise on login.
func newAppModel(opts Options) AppModel {
	deps := home.Deps{
		Client:    opts.Client,
		Validator: opts.Validator,
		Journal:   opts.Journal,
		Creds:     opts.Creds,
		Log:       opts.Log,
	}

	// The splash hands off to home when stored credentials exist and
	// have not expired, otherwise to login.
	next := func() screen.Screen {
		if _, ok := deps.Creds.Current(); ok && !deps.Creds.TokenExpired(time.Now()) {
			return home.New(deps)
		}
		return login.New(deps)
	}

	return AppModel{
		deps:   deps,
		router: router.New(welcome.New(next)),
		log:    opts.Log,
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case router.SignOutMsg:
		// Credentials are gone or rejected: drop them and restart the
		// stack on the login screen.
		if err := m.deps.Creds.Invalidate(); err != nil {
			m.log.Warn().Err(err).Msg("invalidate credentials failed")
		}
		m.router = router.New(login.New(m.deps))
		return m, m.router.Active().Init()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	account := ""
	if c, ok := m.deps.Creds.Current(); ok {
		account = c.Email
	}

	header := layout.RenderHeader(title, account, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			footerHints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
