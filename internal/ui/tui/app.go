package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/workoutlog/internal/domain"
)

type screen int

const (
	screenHome screen = iota
	screenAdd
)

type focus int

const (
	focusWorkout focus = iota
	focusWeight
	focusSubmit
	focusCount
)

type menuItem struct {
	title string
	desc  string
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type toast struct {
	kind domain.NotificationKind
	text string
}

type model struct {
	theme Theme
	deps  Deps

	scr  screen
	menu list.Model

	workout textinput.Model
	weight  textinput.Model
	focus   focus
	form    domain.FormState
	invalid string

	toast toast
}

func Run(deps Deps) error {
	p := tea.NewProgram(wrapSafe(newModel(deps), deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	items := []list.Item{
		menuItem{"Add workout", "Log today's workout and weight"},
		menuItem{"Quit", "Exit workoutlog"},
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "workoutlog"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		scr:   screenHome,
		menu:  l,
	}
}

func newInputs() (textinput.Model, textinput.Model) {
	workout := textinput.New()
	workout.Placeholder = "CHEST DAY"
	workout.Prompt = "› "
	workout.CharLimit = 120

	weight := textinput.New()
	weight.Placeholder = "0"
	weight.Prompt = "› "
	weight.CharLimit = 32

	return workout, weight
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.menu.SetSize(msg.Width-4, msg.Height-12)
		return m, nil

	case submitDoneMsg:
		return m.apply(domain.Reduce(m.form, msg.ev))

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.toast = toast{}
		if m.scr == screenAdd {
			return m.updateAdd(msg)
		}
		return m.updateHome(msg)
	}

	if m.scr == screenHome {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "a":
		return m.navigate(domain.AddRoute)
	case "enter":
		it, ok := m.menu.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		if strings.EqualFold(it.title, "Quit") {
			return m, tea.Quit
		}
		return m.navigate(domain.AddRoute)
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.navigate(domain.HomeRoute)
	case "tab", "down":
		return m.setFocus((m.focus + 1) % focusCount)
	case "shift+tab", "up":
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	case "enter", "ctrl+s":
		// Enter in any field submits, like a form.
		return m.apply(domain.Reduce(m.form, domain.SubmitRequested{}))
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusWorkout:
		before := m.workout.Value()
		m.workout, cmd = m.workout.Update(msg)
		if v := m.workout.Value(); v != before {
			m.invalid = ""
			m.form = domain.Reduce(m.form, domain.WorkoutChanged{Text: v}).State
		}
	case focusWeight:
		before := m.weight.Value()
		m.weight, cmd = m.weight.Update(msg)
		if v := m.weight.Value(); v != before {
			m.invalid = ""
			m.form = domain.Reduce(m.form, domain.WeightChanged{Raw: v}).State
		}
	}
	return m, cmd
}

// apply stores the new form state and runs the transition's effects.
func (m model) apply(tr domain.Transition) (tea.Model, tea.Cmd) {
	m.form = tr.State

	var cmds []tea.Cmd
	for _, eff := range tr.Effects {
		switch e := eff.(type) {
		case domain.EffectSubmit:
			cmds = append(cmds, cmdSubmit(m.deps.Submit, e.Entry))
		case domain.EffectNotify:
			m.toast = toast{kind: e.Kind, text: e.Message}
		case domain.EffectNavigate:
			next, cmd := m.navigate(e.Path)
			m = next.(model)
			cmds = append(cmds, cmd)
		case domain.EffectInvalid:
			m.invalid = e.Field
			target := focusWorkout
			if e.Field == domain.FieldWeight {
				target = focusWeight
			}
			next, cmd := m.setFocus(target)
			m = next.(model)
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

// navigate switches screens by route. Opening the form always starts from a blank state.
func (m model) navigate(path string) (tea.Model, tea.Cmd) {
	switch path {
	case domain.AddRoute:
		if m.configBlocked() {
			m.logger().Warn("tui.add.blocked", "err", m.deps.ConfigErr)
			m.toast = toast{kind: domain.NotifyError, text: userMessage(m.deps.ConfigErr) + ": fix it to add workouts"}
			return m, nil
		}
		m.scr = screenAdd
		m.workout, m.weight = newInputs()
		m.form = domain.FormState{}
		m.invalid = ""
		m.focus = focusSubmit
		return m.setFocus(focusWorkout)
	default:
		m.scr = screenHome
		m.workout.Blur()
		m.weight.Blur()
		return m, nil
	}
}

// configBlocked reports whether workoutlog.yaml exists but could not be used.
// Submitting then would go to the default server instead of the configured one.
func (m model) configBlocked() bool {
	return m.deps.ConfigErr != nil && !domain.IsKind(m.deps.ConfigErr, domain.KindNotFound)
}

func (m model) setFocus(f focus) (tea.Model, tea.Cmd) {
	m.focus = f
	m.workout.Blur()
	m.weight.Blur()

	switch f {
	case focusWorkout:
		return m, m.workout.Focus()
	case focusWeight:
		return m, m.weight.Focus()
	}
	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("workoutlog") + "\n" +
		m.theme.Subtitle.Render("Log today's workout") + "\n"

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • a add workout • q quit")
		return wrap.Render(header + "\n" + m.serverBanner() + "\n\n" +
			m.theme.Card.Render(m.menu.View()) + "\n" + m.renderToast() + help)

	case screenAdd:
		help := m.theme.Help.Render("tab next field • enter submit • esc back")
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.renderForm()) + "\n" + m.renderToast() + help)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}

func (m model) serverBanner() string {
	info := fmt.Sprintf("Server: %s", m.deps.ServerURL)
	if m.deps.Debug && m.deps.LogPath != "" {
		info += "\nLogs: " + m.deps.LogPath
	}
	if m.deps.ConfigErr != nil {
		return m.theme.Card.Render("⚠ " + userMessage(m.deps.ConfigErr) + "\n\n" + m.theme.Help.Render(info))
	}
	return m.theme.Help.Render(info)
}

func (m model) renderForm() string {
	var b strings.Builder

	b.WriteString(m.fieldLabel("Today's Workout", domain.FieldWorkout))
	b.WriteString("\n")
	b.WriteString(m.workout.View())
	b.WriteString("\n\n")

	b.WriteString(m.fieldLabel("Weight", domain.FieldWeight))
	b.WriteString("\n")
	b.WriteString(m.weight.View())
	b.WriteString("\n\n")

	btn := m.theme.Button
	if m.focus == focusSubmit {
		btn = m.theme.Focused
	}
	b.WriteString(btn.Render(m.form.ButtonLabel()))

	return b.String()
}

func (m model) fieldLabel(text, field string) string {
	label := m.theme.Label.Render(text)
	if m.invalid == field {
		label += " " + m.theme.Invalid.Render("(required)")
	}
	return label
}

func (m model) renderToast() string {
	if m.toast.text == "" {
		return ""
	}
	style := m.theme.Success
	if m.toast.kind == domain.NotifyError {
		style = m.theme.Error
	}
	return style.Render(m.toast.text) + "\n"
}
