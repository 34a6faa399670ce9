package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/onboard/internal/wizard"
)

const progressWidth = 40

// Model represents the TUI application state.
type Model struct {
	ctx        context.Context
	loader     Loader
	opts       []wizard.Option
	controller *wizard.Controller
	cursor     int
	width      int
	spinner    spinner.Model
	progress   progress.Model
	help       help.Model
	keys       keyMap
}

// NewModel creates a new TUI model. The wizard starts once loader has produced both datasets;
// opts are passed through to [wizard.NewController].
func NewModel(ctx context.Context, loader Loader, opts ...wizard.Option) *Model {
	return &Model{
		ctx:      ctx,
		loader:   loader,
		opts:     opts,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(progressWidth), progress.WithoutPercentage()),
		help:     help.New(),
		keys:     newKeyMap(),
	}
}

// Run starts a full-screen program for m and blocks until the user quits.
func Run(ctx context.Context, m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

// Init starts the spinner and loads the datasets.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadDatasets(m.ctx, m.loader))
}

// Controller returns the running wizard, or nil while the datasets are loading.
func (m *Model) Controller() *wizard.Controller { return m.controller }

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case datasetsLoadedMsg:
		m.controller = wizard.NewController(msg.topics, msg.newsletters, m.opts...)
		m.cursor = 0
		return m, nil

	case spinner.TickMsg:
		if m.controller != nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) {
			return m, tea.Quit
		}
		if m.controller == nil {
			return m, nil
		}
		return m.handleKeys(msg)
	}

	return m, nil
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.controller
	switch {
	case key.Matches(msg, m.keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.down):
		if m.cursor < m.cardCount()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.toggle), key.Matches(msg, m.keys.confirm):
		if id, ok := m.focused(); ok {
			c.Toggle(id)
		}
	case key.Matches(msg, m.keys.next):
		if c.Next() {
			m.cursor = 0
		}
	case key.Matches(msg, m.keys.back):
		if c.Back() {
			m.cursor = 0
		}
	case key.Matches(msg, m.keys.restart):
		if c.Step() == wizard.StepSummary {
			c.Reset()
			m.cursor = 0
		}
	}
	return m, nil
}

func (m *Model) cardCount() int {
	d, ok := m.controller.Dataset(m.controller.Step())
	if !ok {
		return 0
	}
	return len(d.Choices)
}

// focused returns the choice id under the cursor on a selection step.
func (m *Model) focused() (string, bool) {
	d, ok := m.controller.Dataset(m.controller.Step())
	if !ok || m.cursor < 0 || m.cursor >= len(d.Choices) {
		return "", false
	}
	return d.Choices[m.cursor].ID, true
}

// View renders the UI based on the current wizard step.
func (m *Model) View() string {
	if m.controller == nil {
		return fmt.Sprintf("\n %s Loading topics and newsletters...\n", m.spinner.View())
	}

	v := m.controller.View()

	var b strings.Builder
	b.WriteString(m.renderNav(v.Nav))
	b.WriteString("\n\n")

	switch {
	case v.Selection != nil:
		b.WriteString(m.renderSelection(v.Selection))
	case v.Summary != nil:
		b.WriteString(m.renderSummary(v.Summary))
	}

	b.WriteString("\n")
	b.WriteString(styles.help.Render(m.help.ShortHelpView(m.helpKeys(v.Nav))))
	return b.String()
}

func (m *Model) renderNav(nav wizard.Nav) string {
	label := styles.label.Render(nav.Label)
	return lipgloss.JoinHorizontal(lipgloss.Center, label, "  ", m.progress.ViewAs(float64(nav.Percent)/100))
}

func (m *Model) renderSelection(page *wizard.SelectionPage) string {
	var b strings.Builder
	b.WriteString(styles.title.Render(page.Title))
	b.WriteString("\n")
	b.WriteString(styles.subtitle.Render(page.Subtitle))
	b.WriteString("\n")

	for i, card := range page.Cards {
		b.WriteString(renderCard(card, i == m.cursor))
		b.WriteString("\n")
	}
	return b.String()
}

func renderCard(card wizard.Card, focused bool) string {
	box := "[ ]"
	title := card.Title
	if card.Checked {
		box = styles.checked.Render("[x]")
		title = styles.checked.Render(card.Title)
	}

	head := fmt.Sprintf("%s %s", box, title)
	if card.Badge != "" {
		head = fmt.Sprintf("%s %s", head, styles.badge.Render(card.Badge))
	}
	body := head + "\n    " + styles.muted.Render(card.Description)

	if focused {
		return styles.focused.Render(body)
	}
	return styles.card.Render(body)
}

func (m *Model) renderSummary(page *wizard.SummaryPage) string {
	var b strings.Builder
	b.WriteString(styles.title.Render(page.Title))
	b.WriteString("\n")
	b.WriteString(styles.subtitle.Render(page.Subtitle))
	b.WriteString("\n")

	panels := make([]string, 0, len(page.Panels))
	for _, p := range page.Panels {
		lines := []string{styles.label.Render(p.Label)}
		if len(p.Items) == 0 {
			lines = append(lines, styles.muted.Render(p.Empty))
		}
		for _, item := range p.Items {
			lines = append(lines, "• "+item)
		}
		panels = append(panels, styles.panel.Render(strings.Join(lines, "\n")))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panels...))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) helpKeys(nav wizard.Nav) []key.Binding {
	keys := []key.Binding{}
	if wizard.Step(nav.Step).Selectable() {
		keys = append(keys, m.keys.up, m.keys.down, m.keys.toggle)
	}
	if nav.ShowBack {
		keys = append(keys, m.keys.back)
	}
	if nav.ShowNext {
		keys = append(keys, m.keys.next)
	}
	if wizard.Step(nav.Step) == wizard.StepSummary {
		keys = append(keys, m.keys.restart)
	}
	return append(keys, m.keys.quit)
}
