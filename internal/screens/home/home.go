package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/hogword/hogword-cli/internal/api"
	"github.com/hogword/hogword-cli/internal/auth"
	"github.com/hogword/hogword-cli/internal/router"
	"github.com/hogword/hogword-cli/internal/screen"
	challengescreen "github.com/hogword/hogword-cli/internal/screens/challenge"
	"github.com/hogword/hogword-cli/internal/screens/journal"
	"github.com/hogword/hogword-cli/internal/screens/placeholder"
	"github.com/hogword/hogword-cli/internal/screens/summary"
	"github.com/hogword/hogword-cli/internal/store"
	"github.com/hogword/hogword-cli/internal/ui/components"
	"github.com/hogword/hogword-cli/internal/ui/theme"
)

// Deps bundles what the menu destinations need. Journal may be nil when
// the local journal could not be opened; the journal entry is disabled
// then and attempts simply are not recorded.
type Deps struct {
	Client    *api.Client
	Validator challengescreen.Validator
	Journal   store.JournalRepo
	Creds     *auth.Store
	Log       zerolog.Logger
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	items := []components.MenuItem{
		{Label: "CHALLENGE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: challengescreen.New(deps.Client, deps.Validator, deps.Journal, deps.Log),
				}
			}
		}},
		{Label: "SUMMARY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: summary.New(deps.Client)}
			}
		}},
		{Label: "JOURNAL", Action: func() tea.Cmd {
			if deps.Journal == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Journal",
						"╌╌ Journal unavailable ╌╌\n\nThe local journal could not be opened.\nAttempts are not being recorded on this machine.")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: journal.New(deps.Journal)}
			}
		}},
		{Label: "LOG OUT", Action: func() tea.Cmd {
			return func() tea.Msg { return router.SignOutMsg{} }
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")

	tagline := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("One word a day keeps the dictionary away.")
	sections = append(sections, tagline)
	sections = append(sections, "")

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
