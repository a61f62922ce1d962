// Package tui hosts the Bubble Tea month view.
package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/almanac-sh/almanac/pkg/category"
	"github.com/almanac-sh/almanac/pkg/event"
	"github.com/almanac-sh/almanac/pkg/ics"
	"github.com/almanac-sh/almanac/pkg/store"
	"github.com/almanac-sh/almanac/pkg/theme"
	"github.com/almanac-sh/almanac/pkg/ui/calendar"
)

// Run launches the month view and blocks until the user quits. The
// calendar file is watched while the view is open so saves from another
// process show up without restarting.
func Run(cal store.Calendar, persistence store.Persistence) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := cal.Watch(ctx)
	if err != nil {
		return err
	}

	active, _ := theme.Find(persistence.Themes(), persistence.ActiveTheme())
	m := New(cal, active)
	m.categories = persistence.Categories()
	m.changes = changes

	_, err = tea.NewProgram(m).Run()
	return err
}

// New constructs a month view anchored on today.
func New(cal store.Calendar, def *theme.Definition) *Model {
	if def == nil {
		def = theme.Default()
	}
	now := time.Now().UTC()
	return &Model{
		cal:      cal,
		styles:   def.Styles(),
		selected: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		today:    time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}
}

type Model struct {
	cal        store.Calendar
	categories []*category.Category
	styles     theme.Styles

	changes <-chan store.ChangeEvent

	index    map[string][]*event.Event
	dropped  int
	selected time.Time
	today    time.Time
	err      error
}

type loadedMsg struct {
	index   map[string][]*event.Event
	dropped int
	err     error
}

type changedMsg struct{}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.load, m.waitForChange)
}

func (m *Model) load() tea.Msg {
	events, dropped, err := m.cal.Load()
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{index: ics.BuildDayIndex(events), dropped: dropped}
}

func (m *Model) waitForChange() tea.Msg {
	if m.changes == nil {
		return nil
	}
	if _, ok := <-m.changes; !ok {
		return nil
	}
	return changedMsg{}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.index = msg.index
			m.dropped = msg.dropped
		}
		return m, nil

	case changedMsg:
		return m, tea.Batch(m.load, m.waitForChange)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.selected = m.selected.AddDate(0, 0, -1)
		case "right", "l":
			m.selected = m.selected.AddDate(0, 0, 1)
		case "up", "k":
			m.selected = m.selected.AddDate(0, 0, -7)
		case "down", "j":
			m.selected = m.selected.AddDate(0, 0, 7)
		case "pgup", "H":
			m.selected = m.selected.AddDate(0, -1, 0)
		case "pgdown", "L":
			m.selected = m.selected.AddDate(0, 1, 0)
		case "t":
			m.selected = m.today
		case "r":
			return m, m.load
		}
	}
	return m, nil
}

func (m *Model) View() string {
	month := time.Date(m.selected.Year(), m.selected.Month(), 1, 0, 0, 0, 0, time.UTC)

	out := m.styles.Title.Render(month.Format("January 2006")) + "\n\n"
	out += calendar.Render(month, m.days(month), calendar.Options{
		HeaderStyle:   m.styles.Header,
		EmptyStyle:    m.styles.Faint,
		EventStyle:    m.styles.Event,
		TodayStyle:    m.styles.Today,
		SelectedStyle: m.styles.Selected,
		ShowHeader:    true,
	})
	out += "\n\n"

	key := event.DayKey(m.selected)
	day := m.index[key]
	out += m.styles.Header.Render(key) + "\n"
	if len(day) == 0 {
		out += m.styles.Faint.Render(" none") + "\n"
	}
	for _, e := range day {
		line := fmt.Sprintf("%s  %s", e.Window(), e.Title)
		if name := category.DisplayName(m.categories, e.CategoryID); name != "" {
			line += m.styles.Faint.Render("  [" + name + "]")
		}
		out += line + "\n"
	}

	if m.err != nil {
		out += "\n" + m.styles.Faint.Render("error: "+m.err.Error()) + "\n"
	}
	if m.dropped > 0 {
		out += "\n" + m.styles.Faint.Render(fmt.Sprintf("%d malformed block(s) dropped on load", m.dropped)) + "\n"
	}

	out += "\n" + m.styles.Faint.Render("←↓↑→ move · H/L month · t today · r reload · q quit") + "\n"
	return out
}

// days builds the per-day render metadata for one month.
func (m *Model) days(month time.Time) []calendar.Day {
	last := month.AddDate(0, 1, -1).Day()
	days := make([]calendar.Day, 0, last)
	for i := 1; i <= last; i++ {
		d := time.Date(month.Year(), month.Month(), i, 0, 0, 0, 0, time.UTC)
		days = append(days, calendar.Day{
			Day:        i,
			HasEvent:   len(m.index[event.DayKey(d)]) > 0,
			IsToday:    event.SameDay(d, m.today),
			IsSelected: event.SameDay(d, m.selected),
		})
	}
	return days
}
